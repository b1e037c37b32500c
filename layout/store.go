// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/store.go
// Summary: Key-value contract for persisted desktop layout records.
// Usage: Backends implement Store; the window manager talks to Records.

package layout

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Keys of the three independently loadable layout records.
const (
	KeyOpenWindows = "openWindows"
	KeyGeometry    = "windowGeometry"
	KeyIconLayout  = "desktopIconLayout"
)

// Keys lists every record key in a stable order.
var Keys = []string{KeyOpenWindows, KeyGeometry, KeyIconLayout}

// ErrNotFound is returned by Load when no record has been saved under the key.
var ErrNotFound = errors.New("layout record not found")

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown layout backend")

// Store persists opaque layout records. Every Save replaces the whole record.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Open creates the named backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(dir)
	case BackendDiskv:
		return NewDiskvStore(filepath.Join(dir, "diskv")), nil
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(dir, "layout.db"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
