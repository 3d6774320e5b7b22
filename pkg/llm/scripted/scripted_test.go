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
package scripted

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/darkroom/pkg/llm"
	"github.com/teradata-labs/darkroom/pkg/shutter"
)

func TestChatMatchesKeyword(t *testing.T) {
	p := NewDefault()

	resp, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "Show me the beach photos"},
	}, nil)
	require.NoError(t, err)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "search_images", resp.ToolCalls[0].Name)
	assert.Equal(t, "beach", resp.ToolCalls[0].Input["query"])
	assert.Equal(t, "tool_use", resp.StopReason)
	assert.NotEmpty(t, resp.ToolCalls[0].ID)
}

func TestChatToolCallIDsAreUnique(t *testing.T) {
	p := NewDefault()
	ctx := context.Background()
	msgs := []llm.Message{{Role: llm.RoleUser, Content: "beach"}}

	first, err := p.Chat(ctx, msgs, nil)
	require.NoError(t, err)
	second, err := p.Chat(ctx, msgs, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ToolCalls[0].ID, second.ToolCalls[0].ID)
}

func TestChatSummarizesToolResults(t *testing.T) {
	p := NewDefault()

	resp, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "find the beach photos"},
		{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{{ID: "toolu_1", Name: "search_images"}}},
		{
			Role:      llm.RoleTool,
			ToolUseID: "toolu_1",
			ToolResult: &shutter.Result{
				Success: true,
				Data:    map[string]interface{}{"message": "Found 3 total images."},
			},
		},
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.ToolCalls)
	assert.Contains(t, resp.Content, "Found 3 total images.")
	assert.Equal(t, "end_turn", resp.StopReason)
}

func TestChatReportsToolFailure(t *testing.T) {
	p := NewDefault()

	resp, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "related to img_999"},
		{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{{ID: "toolu_1", Name: "get_related_images"}}},
		{
			Role:      llm.RoleTool,
			ToolUseID: "toolu_1",
			ToolResult: &shutter.Result{
				Success: false,
				Error:   &shutter.Error{Code: "not_found", Message: "Image img_999 not found"},
			},
		},
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, resp.Content, "img_999 not found")
}

func TestChatFallback(t *testing.T) {
	p := NewDefault()

	resp, err := p.Chat(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "what is the meaning of life"},
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, resp.ToolCalls)
	assert.NotEmpty(t, resp.Content)
}

func TestChatNoMessages(t *testing.T) {
	p := NewDefault()

	_, err := p.Chat(context.Background(), nil, nil)
	assert.Error(t, err)
}
