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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest lets the same behavioral suite run against every
// Store implementation.
func storeUnderTest(t *testing.T, name string) Store {
	t.Helper()
	switch name {
	case "memory":
		return NewMemoryStore(SeedImages()...)
	case "sqlite":
		s, err := OpenSQLiteStore(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		require.NoError(t, s.Seed(context.Background(), SeedImages()))
		return s
	default:
		t.Fatalf("unknown store %q", name)
		return nil
	}
}

func TestStoreImplementations(t *testing.T) {
	for _, name := range []string{"memory", "sqlite"} {
		t.Run(name, func(t *testing.T) {
			t.Run("ListPreservesOrder", func(t *testing.T) {
				store := storeUnderTest(t, name)
				images, err := store.List(context.Background())
				require.NoError(t, err)
				assert.Equal(t,
					[]string{"img_001", "img_002", "img_003", "img_004", "img_005", "img_006"},
					ids(images))
			})

			t.Run("GetUnknownID", func(t *testing.T) {
				store := storeUnderTest(t, name)
				_, err := store.Get(context.Background(), "img_999")
				assert.ErrorIs(t, err, ErrNotFound)
			})

			t.Run("AddTagsIdempotent", func(t *testing.T) {
				store := storeUnderTest(t, name)
				ctx := context.Background()

				require.NoError(t, store.AddTags(ctx, "img_001", []string{"golden hour", "beach"}))
				require.NoError(t, store.AddTags(ctx, "img_001", []string{"golden hour"}))

				img, err := store.Get(ctx, "img_001")
				require.NoError(t, err)
				assert.Equal(t,
					[]string{"beach", "sunset", "landscape", "nature", "golden hour"},
					img.Tags)
			})

			t.Run("AddTagsUnknownID", func(t *testing.T) {
				store := storeUnderTest(t, name)
				err := store.AddTags(context.Background(), "img_999", []string{"x"})
				assert.ErrorIs(t, err, ErrNotFound)
			})

			t.Run("DeleteIgnoresUnknownIDs", func(t *testing.T) {
				store := storeUnderTest(t, name)
				ctx := context.Background()

				require.NoError(t, store.Delete(ctx, []string{"img_003", "img_999"}))

				images, err := store.List(ctx)
				require.NoError(t, err)
				assert.Len(t, images, 5)
				_, err = store.Get(ctx, "img_003")
				assert.ErrorIs(t, err, ErrNotFound)
			})
		})
	}
}

func TestMemoryStoreHandsOutClones(t *testing.T) {
	store := NewMemoryStore(SeedImages()...)
	ctx := context.Background()

	img, err := store.Get(ctx, "img_001")
	require.NoError(t, err)
	img.Tags[0] = "mutated"
	img.Filename = "mutated.jpg"

	again, err := store.Get(ctx, "img_001")
	require.NoError(t, err)
	assert.Equal(t, "beach", again.Tags[0])
	assert.Equal(t, "beach_sunset.jpg", again.Filename)
}

func TestSQLiteSeedIsIdempotent(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Seed(ctx, SeedImages()))
	require.NoError(t, s.Seed(ctx, SeedImages()))

	images, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 6)
}

func TestSQLiteRoundTripsOptionalFields(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Seed(ctx, SeedImages()))

	img, err := s.Get(ctx, "img_006")
	require.NoError(t, err)
	assert.Equal(t, "city_lights.jpg", img.Filename)
	assert.Equal(t, QualityExcellent, img.Quality)
	require.NotNil(t, img.CapturedAt)
	assert.Equal(t, []string{"city", "night", "lights", "skyline"}, img.Tags)
	assert.Empty(t, img.Relations)
}
