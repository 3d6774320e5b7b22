// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package llm contains the provider-neutral conversation types and the
// LLMProvider interface. Concrete providers live in subpackages so the
// agent never imports a vendor SDK directly.
package llm

import (
	"context"
	"time"

	"github.com/teradata-labs/darkroom/pkg/shutter"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall represents a tool invocation requested by the model.
type ToolCall struct {
	// ID is a unique identifier for this tool call
	ID string

	// Name is the tool name
	Name string

	// Input contains the tool parameters as decoded JSON
	Input map[string]interface{}
}

// Message represents a single message in the conversation.
type Message struct {
	// Role is the message sender (user, assistant, tool)
	Role string

	// Content is the message text
	Content string

	// ToolCalls contains tool invocations (if role is assistant)
	ToolCalls []ToolCall

	// ToolUseID matches a tool result to the tool_use block that
	// requested it (if role is tool)
	ToolUseID string

	// ToolResult contains tool execution result (if role is tool)
	ToolResult *shutter.Result

	// Timestamp when the message was created
	Timestamp time.Time

	// TokenCount for accounting
	TokenCount int
}

// Usage tracks model token usage.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// LLMResponse represents a response from the model.
type LLMResponse struct {
	// Content is the text response (if no tool calls)
	Content string

	// ToolCalls contains requested tool executions
	ToolCalls []ToolCall

	// StopReason indicates why the model stopped
	StopReason string

	// Usage tracks token usage
	Usage Usage
}

// LLMProvider defines the interface for model backends. The provider
// receives the registered tools so it can expose them to the model in
// its own wire format.
type LLMProvider interface {
	// Chat sends a conversation to the model and returns the response
	Chat(ctx context.Context, messages []Message, tools []shutter.Tool) (*LLMResponse, error)

	// Name returns the provider name
	Name() string

	// Model returns the model identifier
	Model() string
}
