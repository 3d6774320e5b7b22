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

// Package resultcache stores full search-result sets keyed by a
// canonical form of the query that produced them. Entries carry a TTL;
// the cache is the agent's short-term memory of what was searched, so
// later operations (tag, delete, "show me those again") can resolve
// ids against complete match sets instead of re-querying the store.
package resultcache

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/teradata-labs/darkroom/pkg/gallery"
)

// DefaultTTL is how long an entry stays retrievable unless configured
// otherwise.
const DefaultTTL = 30 * time.Minute

// Clock supplies the cache's notion of now. Production code uses
// SystemClock; tests inject their own to pin TTL boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Entry is one cached search. Images always holds the COMPLETE match
// set from execution time, not the page that was shown, so the entry
// can answer for ids beyond the visible slice.
type Entry struct {
	Key        string              `json:"key"`
	Query      gallery.SearchQuery `json:"query"`
	Images     []*gallery.Image    `json:"images"`
	Count      int                 `json:"count"`
	Pagination gallery.Pagination  `json:"pagination"`
	CreatedAt  time.Time           `json:"created_at"`

	// seq orders entries with equal timestamps; later Put wins.
	seq uint64
}

// Cache maps canonical query keys to entries. One entry per key: a
// repeated identical query refreshes the existing entry rather than
// duplicating it. Entries are only ever dropped by the sweep in Put,
// so reads stay cheap and lock-light.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[string]*Entry
	seq     uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the default entry lifetime. Non-positive values
// are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock injects the time source.
func WithClock(clock Clock) Option {
	return func(c *Cache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// New creates an empty cache with DefaultTTL and the system clock.
func New(opts ...Option) *Cache {
	c := &Cache{
		ttl:     DefaultTTL,
		clock:   SystemClock(),
		entries: make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured entry lifetime.
func (c *Cache) TTL() time.Duration { return c.ttl }

// CanonicalKey serializes the query into a stable key: normalized
// pagination, sorted tag list, sorted JSON keys. Identical logical
// queries map to the same key no matter how their arguments arrived.
func CanonicalKey(query gallery.SearchQuery) string {
	q := query.Normalize()

	params := map[string]any{
		"page":     q.Page,
		"per_page": q.PerPage,
	}
	if q.Text != "" {
		params["query"] = q.Text
	}
	if q.Location != "" {
		params["location"] = q.Location
	}
	if len(q.Tags) > 0 {
		tags := append([]string(nil), q.Tags...)
		sort.Strings(tags)
		params["tags"] = tags
	}
	if q.Quality != gallery.QualityUnknown {
		params["quality"] = string(q.Quality)
	}

	// encoding/json writes map keys in sorted order, which is the
	// whole point here.
	raw, _ := json.Marshal(params)
	return string(raw)
}

// Put stores or refreshes the entry for the query and returns it.
// Expired entries are swept on every write so a long-lived process
// does not accumulate dead result sets.
func (c *Cache) Put(query gallery.SearchQuery, images []*gallery.Image, pagination gallery.Pagination) *Entry {
	key := CanonicalKey(query)
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if !c.validAt(e, now) {
			delete(c.entries, k)
		}
	}

	c.seq++
	entry := &Entry{
		Key:        key,
		Query:      query.Normalize(),
		Images:     images,
		Count:      len(images),
		Pagination: pagination,
		CreatedAt:  now,
		seq:        c.seq,
	}
	c.entries[key] = entry
	return entry
}

// Get returns the valid entry for the query, if any. An expired entry
// reads as absent.
func (c *Cache) Get(query gallery.SearchQuery) (*Entry, bool) {
	key := CanonicalKey(query)
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.validAt(e, now) {
		return nil, false
	}
	return e, true
}

// ValidEntries returns all unexpired entries, oldest first (ties by
// insertion order).
func (c *Cache) ValidEntries() []*Entry {
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*Entry
	for _, e := range c.entries {
		if c.validAt(e, now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].seq < out[j].seq
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// MostRecent returns the newest valid entry, or ok=false when the
// cache holds nothing retrievable. Equal timestamps resolve by
// insertion order, newest insertion winning.
func (c *Cache) MostRecent() (*Entry, bool) {
	entries := c.ValidEntries()
	if len(entries) == 0 {
		return nil, false
	}
	return entries[len(entries)-1], true
}

// LookupByIDs scans every valid entry's full match set and returns the
// records whose ids are in the given set. When the same id appears in
// several entries the first occurrence wins, scanning entries oldest
// first, so repeated calls with the same cache state agree.
func (c *Cache) LookupByIDs(ids []string) []*gallery.Image {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	seen := make(map[string]bool, len(ids))
	var out []*gallery.Image
	for _, entry := range c.ValidEntries() {
		for _, img := range entry.Images {
			if want[img.ID] && !seen[img.ID] {
				seen[img.ID] = true
				out = append(out, img)
			}
		}
	}
	return out
}

// InvalidateIDs removes the given record ids from every entry's match
// set, keeping counts consistent, and drops entries left empty. Used
// after a hard delete so the cache never resurrects removed records.
// Returns the number of entries touched.
func (c *Cache) InvalidateIDs(ids []string) int {
	gone := make(map[string]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	touched := 0
	for key, entry := range c.entries {
		kept := entry.Images[:0:0]
		for _, img := range entry.Images {
			if !gone[img.ID] {
				kept = append(kept, img)
			}
		}
		if len(kept) == len(entry.Images) {
			continue
		}
		touched++
		if len(kept) == 0 {
			delete(c.entries, key)
			continue
		}
		entry.Images = kept
		entry.Count = len(kept)
	}
	return touched
}

// Stats is a point-in-time summary of cache occupancy.
type Stats struct {
	Entries     int           `json:"entries"`
	Valid       int           `json:"valid"`
	Expired     int           `json:"expired"`
	TotalImages int           `json:"total_images"`
	TTL         time.Duration `json:"ttl"`
}

// Stats reports occupancy without mutating anything; expired entries
// still count until the next write sweeps them.
func (c *Cache) Stats() Stats {
	now := c.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{Entries: len(c.entries), TTL: c.ttl}
	for _, e := range c.entries {
		if c.validAt(e, now) {
			s.Valid++
			s.TotalImages += len(e.Images)
		} else {
			s.Expired++
		}
	}
	return s
}

// validAt is the single freshness rule: age strictly under TTL.
func (c *Cache) validAt(e *Entry, now time.Time) bool {
	return now.Sub(e.CreatedAt) < c.ttl
}
