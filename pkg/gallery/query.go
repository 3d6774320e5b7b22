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
package gallery

import (
	"context"
	"strings"
)

const (
	// DefaultPerPage is the page size used when the caller does not ask
	// for one.
	DefaultPerPage = 5

	// MaxPerPage is the hard cap on page size. Larger requests are
	// clamped, never erred, so a single tool response stays bounded.
	MaxPerPage = 10
)

// SearchQuery is the value object describing one search. It doubles as
// the result cache's key material (see pkg/resultcache).
type SearchQuery struct {
	// Text matches case-insensitively against filename, tags, and
	// location. Empty text matches every record.
	Text string `json:"query"`

	// Location, when set, must be a case-insensitive substring of the
	// record's location.
	Location string `json:"location,omitempty"`

	// Tags, when set, match if ANY requested tag is on the record.
	Tags []string `json:"tags,omitempty"`

	// Quality, when set, must match exactly.
	Quality Quality `json:"quality,omitempty"`

	Page    int `json:"page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

// Normalize returns a copy of the query with pagination defaults and
// the page-size cap applied. Two queries that normalize equal describe
// the same search.
func (q SearchQuery) Normalize() SearchQuery {
	q.Page, q.PerPage = normalizePagination(q.Page, q.PerPage)
	return q
}

// Matches reports whether the record satisfies the query's filters.
// Pagination fields are ignored here.
func (q SearchQuery) Matches(img *Image) bool {
	if q.Text != "" {
		text := strings.ToLower(q.Text)
		hit := strings.Contains(strings.ToLower(img.Filename), text) ||
			strings.Contains(strings.ToLower(img.Location), text)
		if !hit {
			for _, tag := range img.Tags {
				if strings.Contains(strings.ToLower(tag), text) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if q.Location != "" {
		if img.Location == "" || !strings.Contains(strings.ToLower(img.Location), strings.ToLower(q.Location)) {
			return false
		}
	}

	if len(q.Tags) > 0 {
		any := false
		for _, tag := range q.Tags {
			if img.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if q.Quality != QualityUnknown && img.Quality != q.Quality {
		return false
	}

	return true
}

// Pagination describes the slice of the match set actually returned.
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalCount int  `json:"total"`
	TotalPages int  `json:"pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// SearchResult is one executed query: the full match set plus the page
// slice the caller asked for. Callers that show results to a model
// should surface only the page; the full set belongs in the cache.
type SearchResult struct {
	// Matches is the complete unpaginated match set.
	Matches []*Image

	// Page is the requested slice of Matches.
	Page []*Image

	Pagination Pagination
}

// Executor runs search queries over a Store. Read-only: executing a
// query never mutates the store and never touches any cache.
type Executor struct {
	store Store
}

// NewExecutor creates a query executor over the given store.
func NewExecutor(store Store) *Executor {
	return &Executor{store: store}
}

// Execute runs the query and slices the match set per its pagination
// fields. Zero matches is a successful empty result, not an error, and
// a page past the end returns an empty slice with accurate metadata.
func (e *Executor) Execute(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	images, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*Image
	for _, img := range images {
		if query.Matches(img) {
			matches = append(matches, img)
		}
	}

	norm := query.Normalize()
	page, perPage := norm.Page, norm.PerPage

	total := len(matches)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &SearchResult{
		Matches: matches,
		Page:    matches[start:end],
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalCount: total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// normalizePagination applies defaults and the hard page-size cap.
func normalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
