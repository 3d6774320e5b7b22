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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teradata-labs/darkroom/pkg/resultcache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Show result-cache configuration and statistics",
	Long: `Show the search-result cache configuration. The cache is in-memory
and scoped to a chat session; outside a session this reports the
configured limits and an empty cache. Use /cache inside 'darkroom chat'
to inspect a live session.`,
	Run: runCacheCommand,
}

func runCacheCommand(cmd *cobra.Command, args []string) {
	ts, cleanup, err := buildToolset(context.Background(), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	printCache(ts.Cache())
}

func printCache(cache *resultcache.Cache) {
	printCacheStats(cache.Stats())
	for _, entry := range cache.ValidEntries() {
		fmt.Printf("  %s  %d images  cached %s\n",
			entry.Key, entry.Count, entry.CreatedAt.Format("15:04:05"))
	}
}

func printCacheStats(stats resultcache.Stats) {
	fmt.Printf("Result cache:\n")
	fmt.Printf("  TTL:           %s\n", stats.TTL)
	fmt.Printf("  Entries:       %d (%d valid, %d expired)\n", stats.Entries, stats.Valid, stats.Expired)
	fmt.Printf("  Cached images: %d\n", stats.TotalImages)
}
