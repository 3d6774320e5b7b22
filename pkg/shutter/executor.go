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
package shutter

import (
	"context"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/teradata-labs/darkroom/internal/log"
)

// Executor executes tools with argument validation, timing, and error
// normalization. Tool errors come back as failed Results, never as Go
// errors, so the control loop can hand them to the model verbatim.
type Executor struct {
	registry *Registry
}

// NewExecutor creates a new tool executor.
func NewExecutor(registry *Registry) *Executor {
	return &Executor{registry: registry}
}

// Execute executes a tool by name with the given parameters.
func (e *Executor) Execute(ctx context.Context, toolName string, params map[string]interface{}) (*Result, error) {
	tool, ok := e.registry.Get(toolName)
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", toolName)
	}
	return e.ExecuteWithTool(ctx, tool, params)
}

// ExecuteWithTool executes a specific tool instance (not from registry).
func (e *Executor) ExecuteWithTool(ctx context.Context, tool Tool, params map[string]interface{}) (*Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	if err := validateArguments(tool, params); err != nil {
		log.Warn("tool arguments rejected",
			zap.String("tool", tool.Name()),
			zap.Error(err))
		return &Result{
			Success: false,
			Error: &Error{
				Code:       "invalid_arguments",
				Message:    err.Error(),
				Retryable:  true,
				Suggestion: "Check the tool's input schema and resend with corrected arguments",
			},
		}, nil
	}

	start := time.Now()
	result, err := tool.Execute(ctx, params)
	duration := time.Since(start)

	if err != nil {
		log.Error("tool execution failed",
			zap.String("tool", tool.Name()),
			zap.Duration("duration", duration),
			zap.Error(err))
		return &Result{
			Success:         false,
			Error:           &Error{Code: "execution_failed", Message: err.Error(), Retryable: false},
			ExecutionTimeMs: duration.Milliseconds(),
		}, nil
	}

	if result == nil {
		result = &Result{Success: true}
	}
	// Executor timing is authoritative even if the tool set its own.
	result.ExecutionTimeMs = duration.Milliseconds()

	log.Debug("tool executed",
		zap.String("tool", tool.Name()),
		zap.Bool("success", result.Success),
		zap.Int64("duration_ms", result.ExecutionTimeMs))
	return result, nil
}

// validateArguments validates params against the tool's input schema.
func validateArguments(tool Tool, params map[string]interface{}) error {
	schema := tool.InputSchema()
	if schema == nil {
		return nil // No schema = no validation
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	argsLoader := gojsonschema.NewGoLoader(params)

	result, err := gojsonschema.Validate(schemaLoader, argsLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		errors := make([]string, len(result.Errors()))
		for i, err := range result.Errors() {
			errors[i] = err.String()
		}
		return fmt.Errorf("invalid arguments: %v", errors)
	}

	return nil
}
