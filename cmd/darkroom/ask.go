// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	askMessage string
	askTimeout time.Duration
	askVerbose bool
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send one message to the gallery agent and print the reply",
	Long: `Send a single message to the gallery agent and print its response.

Examples:
  darkroom ask "show me the beach photos"
  echo "analyze my gallery" | darkroom ask
  darkroom ask --message "remove blurry images" --verbose
`,
	Run: runAskCommand,
}

func init() {
	askCmd.Flags().StringVarP(&askMessage, "message", "m", "", "Message to send (if not provided, reads from args or stdin)")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 2*time.Minute, "Timeout for response")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Print executed tools and token usage to stderr")
}

func runAskCommand(cmd *cobra.Command, args []string) {
	// Determine message source: flag > args > stdin
	var message string
	if askMessage != "" {
		message = askMessage
	} else if len(args) > 0 {
		message = strings.Join(args, " ")
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		message = strings.Join(lines, "\n")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		fmt.Fprintf(os.Stderr, "Error: message cannot be empty\n")
		fmt.Fprintf(os.Stderr, "\nProvide a message via:\n")
		fmt.Fprintf(os.Stderr, "  - Arguments: darkroom ask 'your message'\n")
		fmt.Fprintf(os.Stderr, "  - Flag: darkroom ask --message 'your message'\n")
		fmt.Fprintf(os.Stderr, "  - Stdin: echo 'your message' | darkroom ask\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	ag, cleanup, err := buildAgent(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	result, err := ag.Turn(ctx, message)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if askVerbose {
		printActions(result.Actions)
		fmt.Fprintf(os.Stderr, "[tokens: %d in, %d out]\n", result.Usage.InputTokens, result.Usage.OutputTokens)
	}
	fmt.Println(result.Response)
}
