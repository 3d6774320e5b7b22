// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package builtin

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teradata-labs/darkroom/internal/log"
	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

func searchSchema() *shutter.JSONSchema {
	min, max := 1.0, float64(gallery.MaxPerPage)
	pageMin := 1.0
	return shutter.NewObjectSchema(
		"Parameters for searching the gallery",
		map[string]*shutter.JSONSchema{
			"query":    shutter.NewStringSchema("Text search across filenames, tags, and locations"),
			"location": shutter.NewStringSchema("Filter by location substring"),
			"tags":     shutter.NewArraySchema("Filter by tags; an image matches if it has ANY of them", shutter.NewStringSchema("tag")),
			"quality": shutter.NewStringSchema("Filter by exact quality level").
				WithEnum("excellent", "good", "poor", "blurry"),
			"page": shutter.NewIntegerSchema("Page number, starting at 1").
				WithRange(&pageMin, nil).WithDefault(1),
			"per_page": shutter.NewIntegerSchema(fmt.Sprintf("Results per page (max %d)", gallery.MaxPerPage)).
				WithRange(&min, &max).WithDefault(gallery.DefaultPerPage),
		},
		nil,
	)
}

// search executes the query, caches the FULL match set, and returns
// only the requested page as summaries. The asymmetry is deliberate:
// the model sees a bounded slice, while later tag/delete/"those ones"
// operations resolve against the complete cached set.
func (ts *Toolset) search(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	query := gallery.SearchQuery{
		Text:     stringParam(params, "query"),
		Location: stringParam(params, "location"),
		Tags:     stringSliceParam(params, "tags"),
		Quality:  gallery.ParseQuality(stringParam(params, "quality")),
		Page:     intParam(params, "page"),
		PerPage:  intParam(params, "per_page"),
	}

	result, err := ts.executor.Execute(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	entry := ts.cache.Put(query, result.Matches, result.Pagination)
	log.Debug("search results cached",
		zap.String("key", entry.Key),
		zap.Int("full_count", entry.Count),
		zap.Int("page_count", len(result.Page)))

	p := result.Pagination
	more := "No more results."
	if p.HasNext {
		more = "Use the page parameter to get more results."
	}
	message := fmt.Sprintf("Found %d total images. Showing %d results on page %d of %d. %s",
		p.TotalCount, len(result.Page), p.Page, p.TotalPages, more)

	return &shutter.Result{
		Success: true,
		Data: map[string]interface{}{
			"message":    message,
			"summary":    gallery.SummarizeAll(result.Page),
			"pagination": p,
		},
		Metadata: map[string]interface{}{
			"cached_full_count": entry.Count,
			"cache_key":         entry.Key,
		},
	}, nil
}
