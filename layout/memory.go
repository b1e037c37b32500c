// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/memory.go
// Summary: In-memory layout store used by tests and ephemeral sessions.

package layout

import "sync"

// MemoryStore keeps records in a map. It never fails.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	saves   map[string]int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
		saves:   make(map[string]int),
	}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), data...)
	s.saves[key]++
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

// SaveCount reports how many times key has been written.
func (s *MemoryStore) SaveCount(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves[key]
}
