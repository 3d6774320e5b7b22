// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package builtin

import (
	"context"
	"fmt"
	"sort"

	"github.com/teradata-labs/darkroom/pkg/shutter"
)

// maxSampleTags bounds the tag sample in the analysis payload.
const maxSampleTags = 10

func analyzeSchema() *shutter.JSONSchema {
	return shutter.NewObjectSchema("No parameters", nil, nil)
}

// analyze aggregates gallery-wide statistics. Only aggregates leave
// this tool; individual records never do.
func (ts *Toolset) analyze(ctx context.Context, params map[string]interface{}) (*shutter.Result, error) {
	images, err := ts.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	qualityDist := make(map[string]int)
	locationSet := make(map[string]bool)
	tagSet := make(map[string]bool)
	var totalSize int64

	for _, img := range images {
		quality := string(img.Quality)
		if quality == "" {
			quality = "unknown"
		}
		qualityDist[quality]++

		if img.Location != "" {
			locationSet[img.Location] = true
		}
		for _, tag := range img.Tags {
			tagSet[tag] = true
		}
		totalSize += img.Size
	}

	locations := make([]string, 0, len(locationSet))
	for loc := range locationSet {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	allTags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		allTags = append(allTags, tag)
	}
	sort.Strings(allTags)
	sample := allTags
	if len(sample) > maxSampleTags {
		sample = sample[:maxSampleTags]
	}

	var avgSize int64
	if len(images) > 0 {
		avgSize = totalSize / int64(len(images))
	}

	return &shutter.Result{
		Success: true,
		Data: map[string]interface{}{
			"message": fmt.Sprintf("Analyzed %d images in gallery", len(images)),
			"statistics": map[string]interface{}{
				"total_images":         len(images),
				"quality_distribution": qualityDist,
				"locations":            locations,
				"total_unique_tags":    len(allTags),
				"sample_tags":          sample,
				"total_storage_size":   totalSize,
				"average_file_size":    avgSize,
			},
		},
	}, nil
}
