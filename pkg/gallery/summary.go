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

// MaxSummaryTags bounds how many tags a summary carries, no matter how
// large the record's tag list grows.
const MaxSummaryTags = 5

// Summary is the token-cheap projection of an image shown to the model.
// Full records stay in the result cache; only summaries enter context.
type Summary struct {
	ID       string   `json:"id"`
	Filename string   `json:"filename"`
	Location string   `json:"location,omitempty"`
	Quality  Quality  `json:"quality,omitempty"`
	Tags     []string `json:"tags"`
}

// Summarize projects a full image record down to its summary view.
// Pure function: total over any record, no failure modes.
func Summarize(img *Image) Summary {
	tags := img.Tags
	if len(tags) > MaxSummaryTags {
		tags = tags[:MaxSummaryTags]
	}
	return Summary{
		ID:       img.ID,
		Filename: img.Filename,
		Location: img.Location,
		Quality:  img.Quality,
		Tags:     append([]string(nil), tags...),
	}
}

// SummarizeAll projects a slice of records.
func SummarizeAll(images []*Image) []Summary {
	summaries := make([]Summary, 0, len(images))
	for _, img := range images {
		summaries = append(summaries, Summarize(img))
	}
	return summaries
}
