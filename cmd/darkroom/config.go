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

	"github.com/spf13/viper"
)

// DefaultConfigFileName is the name of the config file (darkroom.yaml).
const DefaultConfigFileName = "darkroom"

// Config holds all configuration for the darkroom CLI.
// Priority: CLI flags > config file > env vars > defaults
type Config struct {
	// Cache configuration (search-result cache)
	Cache CacheConfig `mapstructure:"cache"`

	// LLM provider configuration
	LLM LLMConfig `mapstructure:"llm"`

	// Gallery store configuration
	Gallery GalleryConfig `mapstructure:"gallery"`

	// Tools configuration
	Tools ToolsConfig `mapstructure:"tools"`

	// Logging configuration
	Logging LoggingConfig `mapstructure:"logging"`
}

// CacheConfig holds result-cache settings.
type CacheConfig struct {
	// TTLMinutes is how long a cached search result stays valid.
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	// Provider selects the chat backend: "scripted" or "anthropic".
	Provider string `mapstructure:"provider"`

	// Model is the Anthropic model id (anthropic provider only).
	Model string `mapstructure:"model"`

	// APIKey is the Anthropic API key (or use DARKROOM_LLM_API_KEY /
	// ANTHROPIC_API_KEY).
	APIKey string `mapstructure:"api_key"`

	// MaxTokens is the maximum tokens per model request.
	MaxTokens int `mapstructure:"max_tokens"`
}

// GalleryConfig holds image-store settings.
type GalleryConfig struct {
	// Store selects the backing store: "memory" or "sqlite".
	Store string `mapstructure:"store"`

	// DBPath is the SQLite database path (sqlite store only).
	DBPath string `mapstructure:"db_path"`
}

// ToolsConfig holds tool-execution settings.
type ToolsConfig struct {
	// MaxBatch limits ids per tag/delete call.
	MaxBatch int `mapstructure:"max_batch"`

	// HardDelete makes delete_images remove records instead of only
	// reporting them.
	HardDelete bool `mapstructure:"hard_delete"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file, environment, and defaults.
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.darkroom")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
		// Config file not found; using defaults + env vars + flags
	}

	viper.SetEnvPrefix("DARKROOM")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("cache.ttl_minutes", 30)

	viper.SetDefault("llm.provider", "scripted")
	viper.SetDefault("llm.model", "claude-sonnet-4-5-20250929")
	viper.SetDefault("llm.max_tokens", 4096)

	viper.SetDefault("gallery.store", "memory")
	viper.SetDefault("gallery.db_path", "darkroom.db")

	viper.SetDefault("tools.max_batch", 100)
	viper.SetDefault("tools.hard_delete", false)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}
