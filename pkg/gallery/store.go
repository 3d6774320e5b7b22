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

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a record id does not exist in the store.
var ErrNotFound = errors.New("gallery: image not found")

// Store is the authoritative record source. The query executor and the
// tool layer only ever touch the gallery through this interface, so a
// database-backed gallery can replace the in-memory seed set without
// changing either.
type Store interface {
	// List returns all records in stable order.
	List(ctx context.Context) ([]*Image, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Image, error)

	// AddTags appends each tag not already present on the record.
	// Idempotent per tag. Returns ErrNotFound for unknown ids.
	AddTags(ctx context.Context, id string, tags []string) error

	// Delete removes the records with the given ids. Unknown ids are
	// ignored. Only invoked when hard delete is enabled.
	Delete(ctx context.Context, ids []string) error
}

// MemoryStore is the in-process Store used by the demonstration
// gallery. Thread-safe.
type MemoryStore struct {
	mu     sync.RWMutex
	order  []string
	images map[string]*Image
}

// NewMemoryStore creates a store holding the given records.
func NewMemoryStore(images ...*Image) *MemoryStore {
	s := &MemoryStore{
		images: make(map[string]*Image, len(images)),
	}
	for _, img := range images {
		if _, ok := s.images[img.ID]; ok {
			continue
		}
		s.order = append(s.order, img.ID)
		s.images[img.ID] = img.Clone()
	}
	return s
}

// List returns clones of all records in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]*Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Image, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.images[id].Clone())
	}
	return out, nil
}

// Get returns a clone of the record with the given id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.images[id]
	if !ok {
		return nil, ErrNotFound
	}
	return img.Clone(), nil
}

// AddTags appends each tag not already on the record.
func (s *MemoryStore) AddTags(ctx context.Context, id string, tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	img, ok := s.images[id]
	if !ok {
		return ErrNotFound
	}
	for _, tag := range tags {
		if !img.HasTag(tag) {
			img.Tags = append(img.Tags, tag)
		}
	}
	return nil
}

// Delete removes the given ids. Unknown ids are ignored.
func (s *MemoryStore) Delete(ctx context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if drop[id] {
			delete(s.images, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return nil
}

// Count returns the number of records in the store.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}
