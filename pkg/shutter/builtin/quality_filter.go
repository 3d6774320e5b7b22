// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package builtin

import (
	"context"
	"fmt"

	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

// maxRemovedSample bounds how many removed images are shown.
const maxRemovedSample = 5

func filterQualitySchema() *shutter.JSONSchema {
	return shutter.NewObjectSchema(
		"Parameters for the quality filter",
		map[string]*shutter.JSONSchema{
			"threshold": shutter.NewStringSchema("Images at or below this quality are flagged for removal").
				WithEnum("excellent", "good", "poor", "blurry").
				WithDefault(string(gallery.QualityPoor)),
		},
		nil,
	)
}

// filterQuality partitions the gallery by quality rank. A record is
// flagged when its rank is at or below the threshold's rank; records
// with unknown quality are always kept. Stateless report, not cached.
func (ts *Toolset) filterQuality(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	threshold := gallery.ParseQuality(stringParam(params, "threshold"))
	if threshold == gallery.QualityUnknown {
		threshold = gallery.QualityPoor
	}

	images, err := ts.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("quality filter: %w", err)
	}

	var removed, kept []*gallery.Image
	for _, img := range images {
		if img.Quality != gallery.QualityUnknown && img.Quality.Rank() <= threshold.Rank() {
			removed = append(removed, img)
		} else {
			kept = append(kept, img)
		}
	}

	sample := removed
	if len(sample) > maxRemovedSample {
		sample = sample[:maxRemovedSample]
	}

	message := fmt.Sprintf("Quality filter analysis: %d images below %s quality, %d images retained. Showing top %d removed.",
		len(removed), threshold, len(kept), len(sample))

	return &shutter.Result{
		Success: true,
		Data: map[string]interface{}{
			"message":        message,
			"removed_count":  len(removed),
			"kept_count":     len(kept),
			"removed_sample": gallery.SummarizeAll(sample),
			"criteria":       fmt.Sprintf("Quality threshold: %s", threshold),
		},
	}, nil
}
