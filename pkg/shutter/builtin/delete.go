// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package builtin

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/teradata-labs/darkroom/internal/log"
	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

func deleteSchema() *shutter.JSONSchema {
	return shutter.NewObjectSchema(
		"Parameters for deleting images",
		map[string]*shutter.JSONSchema{
			"image_ids": shutter.NewArraySchema("Ids of the images to delete", shutter.NewStringSchema("image id")),
		},
		[]string{"image_ids"},
	)
}

// delete validates the requested ids against the store and reports the
// valid subset as deleted; unknown ids are dropped silently. With
// Config.HardDelete the records are actually removed and invalidated
// in the result cache, so no cached entry can resurrect them. The
// default is report-only.
func (ts *Toolset) delete(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	ids := stringSliceParam(params, "image_ids")

	clamped := false
	if limit := ts.cfg.maxBatch(); len(ids) > limit {
		ids = ids[:limit]
		clamped = true
	}

	var valid []string
	for _, id := range ids {
		_, err := ts.store.Get(ctx, id)
		if errors.Is(err, gallery.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("delete lookup %s: %w", id, err)
		}
		valid = append(valid, id)
	}

	if ts.cfg.HardDelete && len(valid) > 0 {
		if err := ts.store.Delete(ctx, valid); err != nil {
			return nil, fmt.Errorf("delete: %w", err)
		}
		touched := ts.cache.InvalidateIDs(valid)
		log.Info("images deleted",
			zap.Strings("ids", valid),
			zap.Int("cache_entries_touched", touched))
	}

	message := fmt.Sprintf("Successfully deleted %d images.", len(valid))
	if !ts.cfg.HardDelete {
		message = fmt.Sprintf("Marked %d images for deletion (records retained).", len(valid))
	}
	if clamped {
		message += fmt.Sprintf(" Request clamped to the first %d ids.", ts.cfg.maxBatch())
	}

	return &shutter.Result{
		Success: true,
		Data: map[string]interface{}{
			"message":       message,
			"deleted_count": len(valid),
			"deleted_ids":   valid,
			"hard_delete":   ts.cfg.HardDelete,
		},
	}, nil
}
