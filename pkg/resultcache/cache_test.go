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
package resultcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/darkroom/pkg/gallery"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)}
}

func img(id string) *gallery.Image {
	return &gallery.Image{ID: id, Filename: id + ".jpg"}
}

func TestCanonicalKeyIgnoresArgumentOrder(t *testing.T) {
	a := CanonicalKey(gallery.SearchQuery{Text: "beach", Location: "malibu", Tags: []string{"sunset", "beach"}})
	b := CanonicalKey(gallery.SearchQuery{Tags: []string{"beach", "sunset"}, Location: "malibu", Text: "beach"})
	assert.Equal(t, a, b)
}

func TestCanonicalKeyNormalizesPagination(t *testing.T) {
	implicit := CanonicalKey(gallery.SearchQuery{Text: "beach"})
	explicit := CanonicalKey(gallery.SearchQuery{Text: "beach", Page: 1, PerPage: gallery.DefaultPerPage})
	assert.Equal(t, implicit, explicit)

	other := CanonicalKey(gallery.SearchQuery{Text: "beach", Page: 2})
	assert.NotEqual(t, implicit, other)
}

func TestCanonicalKeyDistinguishesQueries(t *testing.T) {
	a := CanonicalKey(gallery.SearchQuery{Text: "beach"})
	b := CanonicalKey(gallery.SearchQuery{Text: "beach", Quality: gallery.QualityGood})
	assert.NotEqual(t, a, b)
}

func TestPutOverwritesSameQuery(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock))

	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001")}, gallery.Pagination{})
	clock.Advance(time.Minute)
	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001"), img("img_002")}, gallery.Pagination{})

	entries := cache.ValidEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, clock.Now(), entries[0].CreatedAt)
}

func TestTTLBoundary(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock), WithTTL(30*time.Minute))

	query := gallery.SearchQuery{Text: "beach"}
	cache.Put(query, []*gallery.Image{img("img_001")}, gallery.Pagination{})

	clock.Advance(30*time.Minute - time.Second)
	_, ok := cache.Get(query)
	assert.True(t, ok, "just under TTL")

	clock.Advance(2 * time.Second)
	_, ok = cache.Get(query)
	assert.False(t, ok, "just over TTL")
	assert.Empty(t, cache.ValidEntries())
}

func TestMostRecentPrefersLatest(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock))

	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001")}, gallery.Pagination{})
	clock.Advance(time.Minute)
	cache.Put(gallery.SearchQuery{Text: "mountain"}, []*gallery.Image{img("img_004")}, gallery.Pagination{})

	entry, ok := cache.MostRecent()
	require.True(t, ok)
	assert.Equal(t, "mountain", entry.Query.Text)
}

func TestMostRecentTieBreaksByInsertion(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock))

	// Same timestamp for both entries.
	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001")}, gallery.Pagination{})
	cache.Put(gallery.SearchQuery{Text: "city"}, []*gallery.Image{img("img_006")}, gallery.Pagination{})

	entry, ok := cache.MostRecent()
	require.True(t, ok)
	assert.Equal(t, "city", entry.Query.Text)
}

func TestMostRecentEmpty(t *testing.T) {
	cache := New()
	_, ok := cache.MostRecent()
	assert.False(t, ok)

	clock := newFakeClock()
	expired := New(WithClock(clock), WithTTL(time.Minute))
	expired.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001")}, gallery.Pagination{})
	clock.Advance(2 * time.Minute)
	_, ok = expired.MostRecent()
	assert.False(t, ok, "expired entries do not count")
}

func TestLookupByIDs(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock))

	older := img("img_002")
	older.Location = "from older entry"
	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001"), older}, gallery.Pagination{})

	clock.Advance(time.Minute)
	newer := img("img_002")
	newer.Location = "from newer entry"
	cache.Put(gallery.SearchQuery{Text: "people"}, []*gallery.Image{newer, img("img_005")}, gallery.Pagination{})

	found := cache.LookupByIDs([]string{"img_002", "img_005", "img_999"})
	require.Len(t, found, 2)

	// First-seen wins: the older entry's copy of img_002.
	assert.Equal(t, "img_002", found[0].ID)
	assert.Equal(t, "from older entry", found[0].Location)
	assert.Equal(t, "img_005", found[1].ID)
}

func TestLookupByIDsSkipsExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock), WithTTL(10*time.Minute))

	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001")}, gallery.Pagination{})
	clock.Advance(11 * time.Minute)
	cache.Put(gallery.SearchQuery{Text: "city"}, []*gallery.Image{img("img_006")}, gallery.Pagination{})

	found := cache.LookupByIDs([]string{"img_001", "img_006"})
	require.Len(t, found, 1)
	assert.Equal(t, "img_006", found[0].ID)
}

func TestInvalidateIDs(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock))

	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001"), img("img_003")}, gallery.Pagination{})
	cache.Put(gallery.SearchQuery{Text: "blurry"}, []*gallery.Image{img("img_003")}, gallery.Pagination{})

	touched := cache.InvalidateIDs([]string{"img_003"})
	assert.Equal(t, 2, touched)

	entries := cache.ValidEntries()
	require.Len(t, entries, 1, "entry left empty is dropped")
	assert.Equal(t, "beach", entries[0].Query.Text)
	assert.Equal(t, 1, entries[0].Count)
	assert.Equal(t, "img_001", entries[0].Images[0].ID)
	assert.Empty(t, cache.LookupByIDs([]string{"img_003"}))
}

func TestSweepOnWrite(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock), WithTTL(10*time.Minute))

	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001")}, gallery.Pagination{})
	clock.Advance(11 * time.Minute)
	assert.Equal(t, 1, cache.Stats().Expired, "expired but not yet purged")

	cache.Put(gallery.SearchQuery{Text: "city"}, []*gallery.Image{img("img_006")}, gallery.Pagination{})
	stats := cache.Stats()
	assert.Equal(t, 1, stats.Entries, "write swept the expired entry")
	assert.Equal(t, 0, stats.Expired)
}

func TestStats(t *testing.T) {
	clock := newFakeClock()
	cache := New(WithClock(clock), WithTTL(10*time.Minute))

	cache.Put(gallery.SearchQuery{Text: "beach"}, []*gallery.Image{img("img_001"), img("img_002")}, gallery.Pagination{})
	clock.Advance(5 * time.Minute)
	cache.Put(gallery.SearchQuery{Text: "city"}, []*gallery.Image{img("img_006")}, gallery.Pagination{})
	clock.Advance(6 * time.Minute)

	stats := cache.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, 1, stats.Valid)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.TotalImages)
	assert.Equal(t, 10*time.Minute, stats.TTL)
}
