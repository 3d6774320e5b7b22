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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teradata-labs/darkroom/internal/log"
	"github.com/teradata-labs/darkroom/internal/version"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "darkroom",
	Short: "Darkroom - photo-gallery agent with cached search results",
	Long: `Darkroom is a demo photo-gallery agent. It exposes a small set of
gallery tools (search, tag, delete, quality filter, related images,
analyze) to an LLM and caches full search results so follow-up actions
can reference images beyond the page that was shown.`,
	Version: version.Get(),
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./darkroom.yaml)")

	// LLM flags
	rootCmd.PersistentFlags().String("provider", "scripted", "LLM provider (scripted, anthropic)")
	rootCmd.PersistentFlags().String("model", "claude-sonnet-4-5-20250929", "Anthropic model")
	rootCmd.PersistentFlags().String("api-key", "", "Anthropic API key (or use ANTHROPIC_API_KEY)")
	rootCmd.PersistentFlags().Int("max-tokens", 4096, "Maximum tokens per request")

	// Gallery flags
	rootCmd.PersistentFlags().String("store", "memory", "gallery store (memory, sqlite)")
	rootCmd.PersistentFlags().String("db", "darkroom.db", "SQLite database path")

	// Cache and tool flags
	rootCmd.PersistentFlags().Int("ttl-minutes", 30, "cached search result lifetime in minutes")
	rootCmd.PersistentFlags().Bool("hard-delete", false, "delete_images removes records instead of reporting them")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("llm.provider", rootCmd.PersistentFlags().Lookup("provider"))
	_ = viper.BindPFlag("llm.model", rootCmd.PersistentFlags().Lookup("model"))
	_ = viper.BindPFlag("llm.api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("llm.max_tokens", rootCmd.PersistentFlags().Lookup("max-tokens"))

	_ = viper.BindPFlag("gallery.store", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("gallery.db_path", rootCmd.PersistentFlags().Lookup("db"))

	_ = viper.BindPFlag("cache.ttl_minutes", rootCmd.PersistentFlags().Lookup("ttl-minutes"))
	_ = viper.BindPFlag("tools.hard_delete", rootCmd.PersistentFlags().Lookup("hard-delete"))

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(galleryCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(config.Logging.Level, config.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}
