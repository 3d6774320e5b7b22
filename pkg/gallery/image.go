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

// Package gallery holds the photo gallery data model and the read-only
// query executor. The gallery store is the authoritative record source;
// search-result caching lives in pkg/resultcache, on top of this package.
package gallery

import "time"

// Quality is the ordered quality assessment of an image.
// Higher rank means better quality.
type Quality string

const (
	QualityUnknown   Quality = ""
	QualityBlurry    Quality = "blurry"
	QualityPoor      Quality = "poor"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
)

// qualityRanks maps each quality level to its comparison rank.
// Unknown quality ranks at 0 and is never below any threshold.
var qualityRanks = map[Quality]int{
	QualityBlurry:    1,
	QualityPoor:      2,
	QualityGood:      3,
	QualityExcellent: 4,
}

// Rank returns the numeric rank of the quality level (0 for unknown).
func (q Quality) Rank() int {
	return qualityRanks[q]
}

// Valid reports whether q is one of the four known quality levels.
func (q Quality) Valid() bool {
	_, ok := qualityRanks[q]
	return ok
}

// ParseQuality converts a string to a Quality. Unrecognized values map
// to QualityUnknown.
func ParseQuality(s string) Quality {
	q := Quality(s)
	if q.Valid() {
		return q
	}
	return QualityUnknown
}

// Image is one gallery record. Identity (ID) is immutable; Tags may
// grow via the tag operation, duplicates suppressed.
type Image struct {
	ID         string     `json:"id"`
	Filename   string     `json:"filename"`
	Path       string     `json:"path"`
	UploadedAt time.Time  `json:"uploaded_at"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
	Location   string     `json:"location,omitempty"`
	Tags       []string   `json:"tags"`
	Relations  []string   `json:"relations"`
	Quality    Quality    `json:"quality,omitempty"`
	Width      int        `json:"width,omitempty"`
	Height     int        `json:"height,omitempty"`
	Size       int64      `json:"size,omitempty"`
}

// Clone returns a deep copy of the image. Store implementations hand
// out clones so callers cannot mutate authoritative records in place.
func (img *Image) Clone() *Image {
	cp := *img
	cp.Tags = append([]string(nil), img.Tags...)
	cp.Relations = append([]string(nil), img.Relations...)
	if img.CapturedAt != nil {
		t := *img.CapturedAt
		cp.CapturedAt = &t
	}
	return &cp
}

// HasTag reports whether the image carries the exact tag.
func (img *Image) HasTag(tag string) bool {
	for _, t := range img.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
