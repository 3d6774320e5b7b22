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
	"time"

	"github.com/teradata-labs/darkroom/pkg/agent"
	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/llm"
	"github.com/teradata-labs/darkroom/pkg/llm/anthropic"
	"github.com/teradata-labs/darkroom/pkg/llm/scripted"
	"github.com/teradata-labs/darkroom/pkg/resultcache"
	"github.com/teradata-labs/darkroom/pkg/shutter/builtin"
)

// buildStore opens the configured gallery store seeded with the demo
// images. The returned cleanup is a no-op for the memory store.
func buildStore(ctx context.Context, cfg *Config) (gallery.Store, func(), error) {
	switch cfg.Gallery.Store {
	case "", "memory":
		return gallery.NewMemoryStore(gallery.SeedImages()...), func() {}, nil
	case "sqlite":
		store, err := gallery.OpenSQLiteStore(cfg.Gallery.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := store.Seed(ctx, gallery.SeedImages()); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("seed sqlite store: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown gallery store %q (want memory or sqlite)", cfg.Gallery.Store)
	}
}

// buildToolset assembles the store, result cache, and gallery tools.
// Commands that never talk to a model use this directly.
func buildToolset(ctx context.Context, cfg *Config) (*builtin.Toolset, func(), error) {
	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	var cacheOpts []resultcache.Option
	if cfg.Cache.TTLMinutes > 0 {
		cacheOpts = append(cacheOpts, resultcache.WithTTL(time.Duration(cfg.Cache.TTLMinutes)*time.Minute))
	}
	cache := resultcache.New(cacheOpts...)

	ts := builtin.NewToolset(store, cache, builtin.Config{
		MaxBatch:   cfg.Tools.MaxBatch,
		HardDelete: cfg.Tools.HardDelete,
	})
	return ts, cleanup, nil
}

func buildProvider(cfg *Config) (llm.LLMProvider, error) {
	switch cfg.LLM.Provider {
	case "", "scripted":
		return scripted.NewDefault(), nil
	case "anthropic":
		return anthropic.NewClient(anthropic.Config{
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: cfg.LLM.MaxTokens,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q (want scripted or anthropic)", cfg.LLM.Provider)
	}
}

// buildAgent wires the full chat stack from config.
func buildAgent(ctx context.Context, cfg *Config) (*agent.Agent, func(), error) {
	ts, cleanup, err := buildToolset(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return agent.New(provider, ts), cleanup, nil
}
