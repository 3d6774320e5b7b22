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
package agent

import (
	"fmt"
	"strings"

	"github.com/teradata-labs/darkroom/pkg/llm"
	"github.com/teradata-labs/darkroom/pkg/resultcache"
)

// assembleContext builds the message list for a model call: when the
// cache holds a valid entry, ONE system message describing the most
// recent search is prepended so the model can reference prior result
// ids without re-querying. No valid entry adds nothing. Returns the
// token estimate for the injected context.
func (a *Agent) assembleContext() ([]llm.Message, int) {
	entry, ok := a.Cache().MostRecent()
	if !ok {
		return a.history, 0
	}

	note := cacheNote(entry)
	messages := make([]llm.Message, 0, len(a.history)+1)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: note})
	messages = append(messages, a.history...)
	return messages, a.counter.CountTokens(note)
}

// cacheNote renders the context block for the most recent cached search.
func cacheNote(entry *resultcache.Entry) string {
	var b strings.Builder
	b.WriteString("Note: You have access to previously searched images:\n")
	b.WriteString(fmt.Sprintf("- Query: %q\n", entry.Query.Text))
	b.WriteString(fmt.Sprintf("- Results: %d images found\n", entry.Count))
	b.WriteString("- Available filters: location, quality, tags\n\n")
	b.WriteString("You can act on these images with delete_images, tag_images, and " +
		"filter_low_quality_images. Reference image ids from the previous search " +
		"results when performing actions; all matched ids are available, not just " +
		"the page that was shown.")
	return b.String()
}
