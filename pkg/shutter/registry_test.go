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
	"sync"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	tool := &mockTool{name: "test", description: "test tool"}

	reg.Register(tool)

	got, ok := reg.Get("test")
	if !ok {
		t.Fatal("Expected tool to be registered")
	}
	if got.Name() != "test" {
		t.Errorf("Expected name 'test', got %s", got.Name())
	}
}

func TestRegistry_Get_NotFound(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Get("nonexistent")
	if ok {
		t.Error("Expected tool to not exist")
	}
}

func TestRegistry_Register_Replaces(t *testing.T) {
	reg := NewRegistry()

	reg.Register(&mockTool{name: "test", description: "first"})
	reg.Register(&mockTool{name: "test", description: "second"})

	if reg.Count() != 1 {
		t.Errorf("Expected 1 tool, got %d", reg.Count())
	}

	got, _ := reg.Get("test")
	if got.Description() != "second" {
		t.Errorf("Expected replacement tool, got %s", got.Description())
	}
}

func TestRegistry_List_Sorted(t *testing.T) {
	reg := NewRegistry()

	reg.Register(&mockTool{name: "charlie"})
	reg.Register(&mockTool{name: "alpha"})
	reg.Register(&mockTool{name: "bravo"})

	list := reg.List()
	want := []string{"alpha", "bravo", "charlie"}
	if len(list) != len(want) {
		t.Fatalf("Expected %d tools, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i] != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, list[i])
		}
	}
}

func TestRegistry_Unregister(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockTool{name: "test"})

	reg.Unregister("test")

	if _, ok := reg.Get("test"); ok {
		t.Error("Expected tool to be removed")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register(&mockTool{name: "shared"})
		}()
		go func() {
			defer wg.Done()
			reg.Get("shared")
			reg.List()
		}()
	}
	wg.Wait()

	if reg.Count() != 1 {
		t.Errorf("Expected 1 tool after concurrent registration, got %d", reg.Count())
	}
}
