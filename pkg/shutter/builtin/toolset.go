// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package builtin provides the gallery toolset: the fixed set of
// operations the model may invoke against the photo gallery. Dispatch
// runs through a closed ActionKind enum rather than a string-keyed
// handler map, so adding an operation means adding an enum case and
// the compiler flags every switch that has not handled it.
package builtin

import (
	"context"
	"fmt"

	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/resultcache"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

// ActionKind enumerates every gallery operation.
type ActionKind int

const (
	ActionSearch ActionKind = iota
	ActionFilterQuality
	ActionTag
	ActionDelete
	ActionRelated
	ActionAnalyze
)

// actionNames maps kinds to the tool names presented to the model.
var actionNames = map[ActionKind]string{
	ActionSearch:        "search_images",
	ActionFilterQuality: "filter_low_quality_images",
	ActionTag:           "tag_images",
	ActionDelete:        "delete_images",
	ActionRelated:       "get_related_images",
	ActionAnalyze:       "analyze_gallery",
}

// Kinds returns every action kind in declaration order.
func Kinds() []ActionKind {
	return []ActionKind{
		ActionSearch,
		ActionFilterQuality,
		ActionTag,
		ActionDelete,
		ActionRelated,
		ActionAnalyze,
	}
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

const (
	// DefaultMaxBatch caps how many ids a single tag or delete call may
	// touch. Larger requests are clamped and the clamp is reported.
	DefaultMaxBatch = 100

	// DefaultRelatedLimit is how many related records to return when
	// the caller does not ask for a limit.
	DefaultRelatedLimit = 5
)

// Config tunes toolset behavior.
type Config struct {
	// MaxBatch limits ids per mutation call. Zero means DefaultMaxBatch.
	MaxBatch int

	// HardDelete makes delete_images actually remove records from the
	// store and invalidate them in the result cache. When false the
	// tool only reports what would be deleted, which is the historical
	// demonstration behavior.
	HardDelete bool
}

func (c Config) maxBatch() int {
	if c.MaxBatch > 0 {
		return c.MaxBatch
	}
	return DefaultMaxBatch
}

// Toolset binds the gallery store, the query executor, and the result
// cache into the six tools. Every search populates the cache with the
// FULL match set; every response to the model carries only summaries.
type Toolset struct {
	store    gallery.Store
	executor *gallery.Executor
	cache    *resultcache.Cache
	cfg      Config
}

// NewToolset creates the gallery toolset.
func NewToolset(store gallery.Store, cache *resultcache.Cache, cfg Config) *Toolset {
	return &Toolset{
		store:    store,
		executor: gallery.NewExecutor(store),
		cache:    cache,
		cfg:      cfg,
	}
}

// Cache exposes the toolset's result cache.
func (ts *Toolset) Cache() *resultcache.Cache { return ts.cache }

// Tools returns one shutter.Tool per action kind, in declaration order.
func (ts *Toolset) Tools() []shutter.Tool {
	kinds := Kinds()
	tools := make([]shutter.Tool, 0, len(kinds))
	for _, kind := range kinds {
		tools = append(tools, &actionTool{ts: ts, kind: kind})
	}
	return tools
}

// Register registers every tool with the given registry.
func (ts *Toolset) Register(registry *shutter.Registry) {
	for _, tool := range ts.Tools() {
		registry.Register(tool)
	}
}

// KindForName resolves a tool name from the model back to its kind.
func KindForName(name string) (ActionKind, bool) {
	for kind, n := range actionNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// Dispatch routes one action to its handler. The switch is exhaustive
// over ActionKind; an unknown kind can only arise from a bad cast.
func (ts *Toolset) Dispatch(ctx context.Context, kind ActionKind, params map[string]interface{}) (*shutter.Result, error) {
	switch kind {
	case ActionSearch:
		return ts.search(ctx, params)
	case ActionFilterQuality:
		return ts.filterQuality(ctx, params)
	case ActionTag:
		return ts.tag(ctx, params)
	case ActionDelete:
		return ts.delete(ctx, params)
	case ActionRelated:
		return ts.related(ctx, params)
	case ActionAnalyze:
		return ts.analyze(ctx, params)
	default:
		return nil, fmt.Errorf("unhandled action kind %d", int(kind))
	}
}

// actionTool adapts one ActionKind to the shutter.Tool interface.
type actionTool struct {
	ts   *Toolset
	kind ActionKind
}

func (t *actionTool) Name() string {
	return actionNames[t.kind]
}

func (t *actionTool) Description() string {
	return actionDescriptions[t.kind]
}

func (t *actionTool) InputSchema() *shutter.JSONSchema {
	return actionSchemas[t.kind]()
}

func (t *actionTool) Execute(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	return t.ts.Dispatch(ctx, t.kind, params)
}

var actionDescriptions = map[ActionKind]string{
	ActionSearch: "Search the photo gallery by free text, location, tags, and quality. " +
		"Results are paginated; the full match set is retained server-side so follow-up " +
		"operations can reference any matched image id, not just the page shown.",
	ActionFilterQuality: "Identify images at or below a quality threshold " +
		"(excellent, good, poor, blurry). Returns counts and a small sample of the " +
		"images that would be removed.",
	ActionTag: "Add tags to images by id. Tags already present on an image are skipped.",
	ActionDelete: "Delete images by id. Unknown ids are ignored; the response lists " +
		"the ids actually affected.",
	ActionRelated: "Look up images related to the given image id, as recorded in the " +
		"gallery's relation links.",
	ActionAnalyze: "Summarize the whole gallery: totals, quality distribution, " +
		"locations, tag counts, and storage size.",
}

var actionSchemas = map[ActionKind]func() *shutter.JSONSchema{
	ActionSearch:        searchSchema,
	ActionFilterQuality: filterQualitySchema,
	ActionTag:           tagSchema,
	ActionDelete:        deleteSchema,
	ActionRelated:       relatedSchema,
	ActionAnalyze:       analyzeSchema,
}
