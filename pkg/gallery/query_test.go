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

func seededExecutor(t *testing.T) *Executor {
	t.Helper()
	return NewExecutor(NewMemoryStore(SeedImages()...))
}

func ids(images []*Image) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.ID)
	}
	return out
}

func TestExecuteTextMatchesFilenameTagsLocation(t *testing.T) {
	exec := seededExecutor(t)
	ctx := context.Background()

	// "beach" appears in filenames and tags of the first three records.
	res, err := exec.Execute(ctx, SearchQuery{Text: "beach"})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_001", "img_002", "img_003"}, ids(res.Matches))

	// "colorado" appears only in locations.
	res, err = exec.Execute(ctx, SearchQuery{Text: "colorado"})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_004", "img_005"}, ids(res.Matches))

	// Case-insensitive.
	res, err = exec.Execute(ctx, SearchQuery{Text: "MALIBU"})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 3)
}

func TestExecuteTagsMatchAny(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{Tags: []string{"selfie", "skyline"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_005", "img_006"}, ids(res.Matches))
}

func TestExecuteQualityExact(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{Quality: QualityExcellent})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_001", "img_004", "img_006"}, ids(res.Matches))
}

func TestExecuteCombinedFiltersAreConjunctive(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{
		Text:    "beach",
		Quality: QualityGood,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_002"}, ids(res.Matches))
}

func TestExecuteEmptyQueryMatchesEverything(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 6)
	assert.Len(t, res.Page, 5, "default page size")
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNext)
	assert.False(t, res.Pagination.HasPrev)
}

func TestExecuteNoMatchesIsSuccess(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{Text: "submarine"})
	require.NoError(t, err)
	assert.Empty(t, res.Matches)
	assert.Empty(t, res.Page)
	assert.Equal(t, 0, res.Pagination.TotalCount)
	assert.Equal(t, 0, res.Pagination.TotalPages)
}

func TestExecutePerPageClamped(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{PerPage: 50})
	require.NoError(t, err)
	assert.Equal(t, MaxPerPage, res.Pagination.PerPage)
	assert.Len(t, res.Page, 6)
}

func TestExecutePageBeyondEnd(t *testing.T) {
	exec := seededExecutor(t)

	res, err := exec.Execute(context.Background(), SearchQuery{Page: 9, PerPage: 2})
	require.NoError(t, err)
	assert.Empty(t, res.Page)
	assert.Len(t, res.Matches, 6, "full match set still present")
	assert.Equal(t, 6, res.Pagination.TotalCount)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrev)
}

func TestExecutePageSlicing(t *testing.T) {
	exec := seededExecutor(t)
	ctx := context.Background()

	first, err := exec.Execute(ctx, SearchQuery{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_001", "img_002"}, ids(first.Page))

	last, err := exec.Execute(ctx, SearchQuery{Page: 3, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"img_005", "img_006"}, ids(last.Page))
	assert.False(t, last.Pagination.HasNext)
}

func TestSummarizeTruncatesTags(t *testing.T) {
	img := &Image{
		ID:       "img_x",
		Filename: "crowded.jpg",
		Location: "somewhere",
		Quality:  QualityGood,
		Tags:     []string{"a", "b", "c", "d", "e", "f", "g"},
	}
	s := Summarize(img)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, s.Tags)

	// Summaries never alias the record's own slice.
	s.Tags[0] = "mutated"
	assert.Equal(t, "a", img.Tags[0])
}
