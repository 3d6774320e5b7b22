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

func tagSchema() *shutter.JSONSchema {
	return shutter.NewObjectSchema(
		"Parameters for tagging images",
		map[string]*shutter.JSONSchema{
			"image_ids": shutter.NewArraySchema("Ids of the images to tag", shutter.NewStringSchema("image id")),
			"tags":      shutter.NewArraySchema("Tags to add to each image", shutter.NewStringSchema("tag")),
		},
		[]string{"image_ids", "tags"},
	)
}

// tag appends the given tags to each listed image. Per-tag appends are
// idempotent. Unknown ids are skipped. The id list is clamped to the
// configured batch maximum and the clamp is reported, never erred.
func (ts *Toolset) tag(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	ids := stringSliceParam(params, "image_ids")
	tags := stringSliceParam(params, "tags")

	clamped := false
	if limit := ts.cfg.maxBatch(); len(ids) > limit {
		ids = ids[:limit]
		clamped = true
	}

	updated := 0
	for _, id := range ids {
		err := ts.store.AddTags(ctx, id, tags)
		if errors.Is(err, gallery.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", id, err)
		}
		updated++
	}

	message := fmt.Sprintf("Successfully added tags to %d images.", updated)
	if clamped {
		message += fmt.Sprintf(" Request clamped to the first %d ids.", ts.cfg.maxBatch())
	}

	return &shutter.Result{
		Success: true,
		Data: map[string]interface{}{
			"message":       message,
			"updated_count": updated,
			"tags_added":    tags,
			"image_count":   len(ids),
		},
	}, nil
}
