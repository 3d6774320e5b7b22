// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package builtin

import (
	"context"
	"errors"
	"fmt"

	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

func relatedSchema() *shutter.JSONSchema {
	min := 1.0
	return shutter.NewObjectSchema(
		"Parameters for looking up related images",
		map[string]*shutter.JSONSchema{
			"image_id": shutter.NewStringSchema("Id of the image to find relations for"),
			"limit": shutter.NewIntegerSchema("Maximum number of related images to return").
				WithRange(&min, nil).WithDefault(DefaultRelatedLimit),
		},
		[]string{"image_id"},
	)
}

// related returns up to limit records linked from the given image's
// relations. Relation targets missing from the store are skipped.
func (ts *Toolset) related(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	id := stringParam(params, "image_id")
	limit := intParam(params, "limit")
	if limit < 1 {
		limit = DefaultRelatedLimit
	}

	source, err := ts.store.Get(ctx, id)
	if errors.Is(err, gallery.ErrNotFound) {
		return shutter.ErrorResult("not_found",
			fmt.Sprintf("Image %s not found", id),
			"Use search_images to discover valid image ids"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("related lookup %s: %w", id, err)
	}

	var related []*gallery.Image
	for _, relID := range source.Relations {
		if len(related) >= limit {
			break
		}
		img, err := ts.store.Get(ctx, relID)
		if errors.Is(err, gallery.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("related lookup %s: %w", relID, err)
		}
		related = append(related, img)
	}

	return &shutter.Result{
		Success: true,
		Data: map[string]interface{}{
			"message":        fmt.Sprintf("Found %d related images", len(related)),
			"source_image":   gallery.Summarize(source),
			"related_count":  len(related),
			"related_images": gallery.SummarizeAll(related),
		},
	}, nil
}
