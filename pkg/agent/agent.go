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

// Package agent runs the conversational control loop over the gallery
// toolset. One user turn passes through a small fixed state machine:
// start, process_input, then optionally a single call_tools /
// process_results round, then end. Multi-step tool chains within one
// user turn are deliberately unsupported; a follow-up user message
// starts the next round, with the result cache bridging the gap.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teradata-labs/darkroom/internal/log"
	"github.com/teradata-labs/darkroom/pkg/llm"
	"github.com/teradata-labs/darkroom/pkg/resultcache"
	"github.com/teradata-labs/darkroom/pkg/shutter"
	"github.com/teradata-labs/darkroom/pkg/shutter/builtin"
)

// Step names the states of one turn.
type Step string

const (
	StepStart          Step = "start"
	StepProcessInput   Step = "process_input"
	StepCallTools      Step = "call_tools"
	StepProcessResults Step = "process_results"
	StepEnd            Step = "end"
)

// Action is one executed tool call within a turn, resolved to its
// typed kind.
type Action struct {
	Kind   builtin.ActionKind
	Tool   string
	Input  map[string]interface{}
	Result *shutter.Result
}

// TurnResult is the outcome of one user turn.
type TurnResult struct {
	// Response is the final assistant text.
	Response string

	// Actions are the tool calls executed this turn, in order.
	Actions []Action

	// Steps traces the states the turn passed through.
	Steps []Step

	// Usage sums provider-reported token usage across model calls.
	Usage llm.Usage

	// ContextTokens is the tiktoken estimate of the injected cache
	// context, which the provider does not report separately.
	ContextTokens int

	// Err records a provider failure. Tool-level failures do not set
	// it; they travel inside Actions as failed Results.
	Err string
}

// Agent owns the conversation history, the toolset, and the result
// cache for one session.
type Agent struct {
	provider llm.LLMProvider
	toolset  *builtin.Toolset
	registry *shutter.Registry
	executor *shutter.Executor
	counter  *TokenCounter
	history  []llm.Message
}

// New creates an agent over the given provider and toolset.
func New(provider llm.LLMProvider, toolset *builtin.Toolset) *Agent {
	registry := shutter.NewRegistry()
	toolset.Register(registry)

	return &Agent{
		provider: provider,
		toolset:  toolset,
		registry: registry,
		executor: shutter.NewExecutor(registry),
		counter:  GetTokenCounter(),
	}
}

// Cache exposes the session's result cache.
func (a *Agent) Cache() *resultcache.Cache { return a.toolset.Cache() }

// History returns the conversation so far.
func (a *Agent) History() []llm.Message { return a.history }

// Reset clears the conversation history. The result cache is not
// cleared; its entries expire on their own TTL.
func (a *Agent) Reset() { a.history = nil }

// Turn processes one user message end to end.
func (a *Agent) Turn(ctx context.Context, input string) (*TurnResult, error) {
	result := &TurnResult{Steps: []Step{StepStart, StepProcessInput}}

	a.history = append(a.history, llm.Message{
		Role:      llm.RoleUser,
		Content:   input,
		Timestamp: time.Now(),
	})

	resp, err := a.chat(ctx, result)
	if err != nil {
		result.Err = err.Error()
		result.Steps = append(result.Steps, StepEnd)
		return result, err
	}

	if len(resp.ToolCalls) == 0 {
		a.appendAssistant(resp)
		result.Response = resp.Content
		result.Steps = append(result.Steps, StepEnd)
		return result, nil
	}

	result.Steps = append(result.Steps, StepCallTools)
	a.appendAssistant(resp)
	a.runToolCalls(ctx, resp.ToolCalls, result)

	result.Steps = append(result.Steps, StepProcessResults)
	final, err := a.chat(ctx, result)
	if err != nil {
		result.Err = err.Error()
		result.Steps = append(result.Steps, StepEnd)
		return result, err
	}
	a.appendAssistant(final)
	result.Response = final.Content
	result.Steps = append(result.Steps, StepEnd)
	return result, nil
}

// chat assembles the context and calls the provider, accumulating
// usage into the turn result.
func (a *Agent) chat(ctx context.Context, result *TurnResult) (*llm.LLMResponse, error) {
	messages, contextTokens := a.assembleContext()
	result.ContextTokens += contextTokens

	resp, err := a.provider.Chat(ctx, messages, a.registry.ListTools())
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", a.provider.Name(), err)
	}

	result.Usage.InputTokens += resp.Usage.InputTokens
	result.Usage.OutputTokens += resp.Usage.OutputTokens
	result.Usage.TotalTokens += resp.Usage.TotalTokens
	return resp, nil
}

// runToolCalls executes the model's tool round. Unknown tool names and
// failed executions become failed Results handed back to the model;
// only infrastructure errors abort the loop.
func (a *Agent) runToolCalls(ctx context.Context, calls []llm.ToolCall, result *TurnResult) {
	for _, call := range calls {
		var res *shutter.Result

		kind, known := builtin.KindForName(call.Name)
		if !known {
			res = shutter.ErrorResult("unknown_tool",
				fmt.Sprintf("no such tool: %s", call.Name),
				"Use only the tools listed in the request")
			log.Warn("model requested unknown tool", zap.String("tool", call.Name))
		} else {
			var err error
			res, err = a.executor.Execute(ctx, call.Name, call.Input)
			if err != nil {
				res = shutter.ErrorResult("execution_failed", err.Error(), "")
			}
		}

		result.Actions = append(result.Actions, Action{
			Kind:   kind,
			Tool:   call.Name,
			Input:  call.Input,
			Result: res,
		})

		a.history = append(a.history, llm.Message{
			Role:       llm.RoleTool,
			Content:    renderResult(res),
			ToolUseID:  call.ID,
			ToolResult: res,
			Timestamp:  time.Now(),
		})
	}
}

func (a *Agent) appendAssistant(resp *llm.LLMResponse) {
	a.history = append(a.history, llm.Message{
		Role:       llm.RoleAssistant,
		Content:    resp.Content,
		ToolCalls:  resp.ToolCalls,
		Timestamp:  time.Now(),
		TokenCount: resp.Usage.OutputTokens,
	})
}

// renderResult serializes a tool result for the model.
func renderResult(res *shutter.Result) string {
	if res.Success {
		raw, err := json.Marshal(res.Data)
		if err != nil {
			return fmt.Sprintf("%v", res.Data)
		}
		return string(raw)
	}
	if res.Error != nil {
		raw, _ := json.Marshal(map[string]interface{}{
			"error":      res.Error.Code,
			"message":    res.Error.Message,
			"suggestion": res.Error.Suggestion,
		})
		return string(raw)
	}
	return `{"error":"unknown"}`
}
