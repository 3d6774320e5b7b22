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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/darkroom/pkg/shutter/builtin"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Inspect the image gallery without the model",
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all images in the gallery",
	Run:   runGalleryListCommand,
}

var galleryAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print gallery statistics (runs the analyze_gallery tool directly)",
	Run:   runGalleryAnalyzeCommand,
}

func init() {
	galleryCmd.AddCommand(galleryListCmd)
	galleryCmd.AddCommand(galleryAnalyzeCmd)
}

func runGalleryListCommand(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	store, cleanup, err := buildStore(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	images, err := store.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILENAME\tLOCATION\tQUALITY\tTAGS")
	for _, img := range images {
		quality := string(img.Quality)
		if quality == "" {
			quality = "unknown"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			img.ID, img.Filename, img.Location, quality, strings.Join(img.Tags, ","))
	}
	_ = w.Flush()
}

func runGalleryAnalyzeCommand(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	ts, cleanup, err := buildToolset(ctx, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	result, err := ts.Dispatch(ctx, builtin.ActionAnalyze, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !result.Success {
		msg := "analyze failed"
		if result.Error != nil {
			msg = result.Error.Message
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result.Data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
