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

import "context"

// mockTool is a configurable Tool for tests in this package.
type mockTool struct {
	name        string
	description string
	schema      *JSONSchema
	executeFn   func(ctx context.Context, params map[string]interface{}) (*Result, error)
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return m.description }

func (m *mockTool) InputSchema() *JSONSchema {
	return m.schema
}

func (m *mockTool) Execute(ctx context.Context, params map[string]interface{}) (*Result, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, params)
	}
	return &Result{Success: true, Data: "ok"}, nil
}
