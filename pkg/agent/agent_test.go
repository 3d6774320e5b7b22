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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/darkroom/pkg/gallery"
	"github.com/teradata-labs/darkroom/pkg/llm"
	"github.com/teradata-labs/darkroom/pkg/llm/scripted"
	"github.com/teradata-labs/darkroom/pkg/resultcache"
	"github.com/teradata-labs/darkroom/pkg/shutter"
	"github.com/teradata-labs/darkroom/pkg/shutter/builtin"
)

// stubProvider replays a fixed queue of responses and records every
// message list it was handed.
type stubProvider struct {
	queue    []*llm.LLMResponse
	err      error
	received [][]llm.Message
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-v1" }

func (s *stubProvider) Chat(ctx context.Context, messages []llm.Message, tools []shutter.Tool) (*llm.LLMResponse, error) {
	s.received = append(s.received, messages)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.queue) == 0 {
		return &llm.LLMResponse{Content: "done", StopReason: "end_turn"}, nil
	}
	resp := s.queue[0]
	s.queue = s.queue[1:]
	return resp, nil
}

func newTestAgent(provider llm.LLMProvider, cfg builtin.Config) *Agent {
	store := gallery.NewMemoryStore(gallery.SeedImages()...)
	toolset := builtin.NewToolset(store, resultcache.New(), cfg)
	return New(provider, toolset)
}

func TestTurnPlainText(t *testing.T) {
	a := newTestAgent(scripted.NewDefault(), builtin.Config{})

	result, err := a.Turn(context.Background(), "hello there")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Response)
	assert.Empty(t, result.Actions)
	assert.Equal(t, []Step{StepStart, StepProcessInput, StepEnd}, result.Steps)
	assert.Len(t, a.History(), 2)
}

func TestTurnSearchRound(t *testing.T) {
	a := newTestAgent(scripted.NewDefault(), builtin.Config{})

	result, err := a.Turn(context.Background(), "show me the beach photos")
	require.NoError(t, err)

	require.Len(t, result.Actions, 1)
	assert.Equal(t, builtin.ActionSearch, result.Actions[0].Kind)
	assert.True(t, result.Actions[0].Result.Success)
	assert.Contains(t, result.Response, "Found 3 total images")
	assert.Equal(t, []Step{StepStart, StepProcessInput, StepCallTools, StepProcessResults, StepEnd}, result.Steps)

	entry, ok := a.Cache().MostRecent()
	require.True(t, ok)
	assert.Equal(t, 3, entry.Count)
}

func TestCacheNoteInjectedAfterSearch(t *testing.T) {
	stub := &stubProvider{queue: []*llm.LLMResponse{
		{ToolCalls: []llm.ToolCall{{ID: "toolu_1", Name: "search_images",
			Input: map[string]interface{}{"query": "beach"}}}, StopReason: "tool_use"},
		{Content: "three beach photos", StopReason: "end_turn"},
		{Content: "ok", StopReason: "end_turn"},
	}}
	a := newTestAgent(stub, builtin.Config{})
	ctx := context.Background()

	_, err := a.Turn(ctx, "find beach photos")
	require.NoError(t, err)

	// First model call of the first turn: cache empty, no system note.
	require.NotEmpty(t, stub.received)
	assert.NotEqual(t, llm.RoleSystem, stub.received[0][0].Role)

	result, err := a.Turn(ctx, "thanks")
	require.NoError(t, err)
	assert.Positive(t, result.ContextTokens)

	last := stub.received[len(stub.received)-1]
	require.Equal(t, llm.RoleSystem, last[0].Role)
	assert.Contains(t, last[0].Content, `Query: "beach"`)
	assert.Contains(t, last[0].Content, "3 images found")
	assert.Contains(t, last[0].Content, "not just the page that was shown")
}

func TestTurnUnknownToolBecomesFailedAction(t *testing.T) {
	stub := &stubProvider{queue: []*llm.LLMResponse{
		{ToolCalls: []llm.ToolCall{{ID: "toolu_1", Name: "launch_rockets"}}, StopReason: "tool_use"},
		{Content: "sorry", StopReason: "end_turn"},
	}}
	a := newTestAgent(stub, builtin.Config{})

	result, err := a.Turn(context.Background(), "do something weird")
	require.NoError(t, err, "unknown tools are tool-level failures, not turn failures")

	require.Len(t, result.Actions, 1)
	assert.False(t, result.Actions[0].Result.Success)
	assert.Equal(t, "unknown_tool", result.Actions[0].Result.Error.Code)
	assert.Empty(t, result.Err)
	assert.Equal(t, "sorry", result.Response)
}

func TestTurnProviderFailure(t *testing.T) {
	stub := &stubProvider{err: errors.New("connection refused")}
	a := newTestAgent(stub, builtin.Config{})

	result, err := a.Turn(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, result.Err, "connection refused")
	assert.Equal(t, StepEnd, result.Steps[len(result.Steps)-1])
}

func TestSearchThenDeleteAcrossTurns(t *testing.T) {
	stub := &stubProvider{queue: []*llm.LLMResponse{
		{ToolCalls: []llm.ToolCall{{ID: "toolu_1", Name: "search_images",
			Input: map[string]interface{}{"query": "beach"}}}, StopReason: "tool_use"},
		{Content: "found them", StopReason: "end_turn"},
		{ToolCalls: []llm.ToolCall{{ID: "toolu_2", Name: "delete_images",
			Input: map[string]interface{}{"image_ids": []interface{}{"img_003"}}}}, StopReason: "tool_use"},
		{Content: "deleted the blurry one", StopReason: "end_turn"},
	}}
	a := newTestAgent(stub, builtin.Config{HardDelete: true})
	ctx := context.Background()

	_, err := a.Turn(ctx, "find beach photos")
	require.NoError(t, err)
	require.Len(t, a.Cache().LookupByIDs([]string{"img_003"}), 1)

	result, err := a.Turn(ctx, "delete the blurry one")
	require.NoError(t, err)
	require.Len(t, result.Actions, 1)
	assert.Equal(t, builtin.ActionDelete, result.Actions[0].Kind)
	assert.True(t, result.Actions[0].Result.Success)

	// Store mutated and cache invalidated.
	assert.Empty(t, a.Cache().LookupByIDs([]string{"img_003"}))
}

func TestResetClearsHistoryNotCache(t *testing.T) {
	a := newTestAgent(scripted.NewDefault(), builtin.Config{})
	ctx := context.Background()

	_, err := a.Turn(ctx, "search beach")
	require.NoError(t, err)
	require.NotEmpty(t, a.History())

	a.Reset()
	assert.Empty(t, a.History())
	_, ok := a.Cache().MostRecent()
	assert.True(t, ok, "cache survives a history reset")
}

func TestTokenCounterFallbackBehavior(t *testing.T) {
	tc := GetTokenCounter()
	n := tc.CountTokens("the quick brown fox jumps over the lazy dog")
	assert.Positive(t, n)

	msgs := []llm.Message{
		{Role: llm.RoleUser, Content: "hello"},
		{Role: llm.RoleAssistant, Content: "hi"},
	}
	assert.Greater(t, tc.EstimateMessagesTokens(msgs), tc.CountTokens("hello hi"))
}
