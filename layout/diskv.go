// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/diskv.go
// Summary: diskv-backed layout store with a small read cache.

package layout

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvStore keeps each record as a flat file managed by diskv.
type DiskvStore struct {
	d *diskv.Diskv
}

// NewDiskvStore roots the store at basePath. diskv creates directories lazily.
func NewDiskvStore(basePath string) *DiskvStore {
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 256 * 1024,
	})}
}

func (s *DiskvStore) Load(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, ErrNotFound
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("diskv read %s: %w", key, err)
	}
	return data, nil
}

func (s *DiskvStore) Save(key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("diskv write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

func (s *DiskvStore) Close() error { return nil }
