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

// Package scripted implements an offline, deterministic LLM provider.
// It maps keywords in the user's message to pre-scripted tool calls and
// composes its final answer from the tool results. It exists so the
// agent can run end-to-end in tests and keyless demos; it is not a
// language model.
package scripted

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/teradata-labs/darkroom/pkg/llm"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

// Rule maps user-message keywords to a scripted reaction. The first
// rule with any keyword present (case-insensitive) wins.
type Rule struct {
	// Keywords trigger the rule when any appears in the user message.
	Keywords []string

	// Calls are the tool calls to request. IDs are assigned by the
	// provider.
	Calls []llm.ToolCall

	// Reply is returned as text when the rule has no calls.
	Reply string
}

// Provider is a deterministic llm.LLMProvider.
type Provider struct {
	mu    sync.Mutex
	rules []Rule
}

// New creates a scripted provider with the given rules.
func New(rules ...Rule) *Provider {
	return &Provider{rules: rules}
}

// NewDefault creates a provider with rules covering the gallery demo
// flows: search, quality filtering, tagging, deletion, relations, and
// gallery analysis.
func NewDefault() *Provider {
	return New(
		Rule{
			Keywords: []string{"blurry", "low quality", "bad photos"},
			Calls: []llm.ToolCall{{
				Name:  "filter_low_quality_images",
				Input: map[string]interface{}{"threshold": "poor"},
			}},
		},
		Rule{
			Keywords: []string{"related"},
			Calls: []llm.ToolCall{{
				Name:  "get_related_images",
				Input: map[string]interface{}{"image_id": "img_001"},
			}},
		},
		Rule{
			Keywords: []string{"analyze", "statistics", "stats", "overview"},
			Calls:    []llm.ToolCall{{Name: "analyze_gallery", Input: map[string]interface{}{}}},
		},
		Rule{
			Keywords: []string{"beach"},
			Calls: []llm.ToolCall{{
				Name:  "search_images",
				Input: map[string]interface{}{"query": "beach"},
			}},
		},
		Rule{
			Keywords: []string{"mountain"},
			Calls: []llm.ToolCall{{
				Name:  "search_images",
				Input: map[string]interface{}{"query": "mountain"},
			}},
		},
		Rule{
			Keywords: []string{"search", "find", "show me"},
			Calls: []llm.ToolCall{{
				Name:  "search_images",
				Input: map[string]interface{}{"query": ""},
			}},
		},
		Rule{
			Keywords: []string{"hello", "hi"},
			Reply:    "Hello! Ask me to search, tag, analyze, or clean up the photo gallery.",
		},
	)
}

// Name returns the provider name.
func (p *Provider) Name() string { return "scripted" }

// Model returns the model identifier.
func (p *Provider) Model() string { return "scripted-v1" }

// Chat inspects the conversation tail. After a tool round it answers
// with text composed from the tool results; otherwise it matches the
// last user message against its rules.
func (p *Provider) Chat(ctx context.Context, messages []llm.Message, tools []shutter.Tool) (*llm.LLMResponse, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("scripted: no messages")
	}

	if messages[len(messages)-1].Role == llm.RoleTool {
		return p.respond(summarizeToolResults(messages)), nil
	}

	userText := lastUserMessage(messages)
	if userText == "" {
		return nil, fmt.Errorf("scripted: no user message to react to")
	}

	lowered := strings.ToLower(userText)
	for _, rule := range p.rules {
		for _, keyword := range rule.Keywords {
			if !strings.Contains(lowered, keyword) {
				continue
			}
			if len(rule.Calls) == 0 {
				return p.respond(rule.Reply), nil
			}
			return p.callTools(rule.Calls), nil
		}
	}

	return p.respond("I can search the gallery, filter by quality, tag, delete, and analyze. What would you like?"), nil
}

func (p *Provider) respond(text string) *llm.LLMResponse {
	return &llm.LLMResponse{
		Content:    text,
		StopReason: "end_turn",
		Usage:      estimateUsage(text),
	}
}

func (p *Provider) callTools(calls []llm.ToolCall) *llm.LLMResponse {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]llm.ToolCall, len(calls))
	for i, call := range calls {
		out[i] = call
		out[i].ID = "toolu_" + uuid.NewString()
		if out[i].Input == nil {
			out[i].Input = map[string]interface{}{}
		}
	}
	return &llm.LLMResponse{
		ToolCalls:  out,
		StopReason: "tool_use",
	}
}

func lastUserMessage(messages []llm.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == llm.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// summarizeToolResults folds the trailing tool messages into a short
// text answer, the way a model would narrate its tool round.
func summarizeToolResults(messages []llm.Message) string {
	var parts []string
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		if msg.Role != llm.RoleTool {
			break
		}
		if msg.ToolResult != nil && !msg.ToolResult.Success {
			detail := "tool failed"
			if msg.ToolResult.Error != nil {
				detail = msg.ToolResult.Error.Message
			}
			parts = append(parts, detail)
			continue
		}
		if text := resultMessage(msg); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "Done."
	}
	// Restore chronological order; the walk above was backwards.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ")
}

func resultMessage(msg llm.Message) string {
	if msg.ToolResult != nil {
		if data, ok := msg.ToolResult.Data.(map[string]interface{}); ok {
			if text, ok := data["message"].(string); ok {
				return text
			}
		}
	}
	return msg.Content
}

// estimateUsage approximates tokens at four characters per token.
func estimateUsage(text string) llm.Usage {
	tokens := len(text) / 4
	return llm.Usage{OutputTokens: tokens, TotalTokens: tokens}
}
