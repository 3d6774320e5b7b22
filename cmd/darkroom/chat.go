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

	"github.com/spf13/cobra"
	"github.com/teradata-labs/darkroom/pkg/agent"
)

var chatShowActions bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat with the gallery agent",
	Long: `Start an interactive session with the gallery agent. Each line is one
turn; search results are cached so later turns can act on them.

Commands inside the session:
  /reset   clear conversation history (cached searches survive)
  /cache   show result-cache statistics
  exit     leave the session
`,
	Run: runChatCommand,
}

func init() {
	chatCmd.Flags().BoolVar(&chatShowActions, "show-actions", true, "print executed tools between turns")
}

func runChatCommand(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	ag, cleanup, err := buildAgent(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	fmt.Printf("darkroom gallery agent (%s provider). Type 'exit' to quit.\n", config.LLM.Provider)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch input {
		case "exit", "quit":
			return
		case "/reset":
			ag.Reset()
			fmt.Println("(history cleared)")
			continue
		case "/cache":
			printCache(ag.Cache())
			continue
		}

		result, err := ag.Turn(ctx, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if chatShowActions {
			printActions(result.Actions)
		}
		fmt.Println(result.Response)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func printActions(actions []agent.Action) {
	for _, action := range actions {
		if action.Result != nil && !action.Result.Success {
			msg := ""
			if action.Result.Error != nil {
				msg = action.Result.Error.Message
			}
			fmt.Fprintf(os.Stderr, "[tool %s failed: %s]\n", action.Tool, msg)
			continue
		}
		fmt.Fprintf(os.Stderr, "[tool %s]\n", action.Tool)
	}
}
