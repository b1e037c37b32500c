// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"errors"
	"testing"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileStore(dir + "/file")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	sqlite, err := NewSQLiteStore(dir + "/sqlite/layout.db")
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   file,
		"diskv":  NewDiskvStore(dir + "/diskv"),
		"sqlite": sqlite,
	}
}

func TestStoreBackends(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Load(KeyGeometry); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound on empty store, got %v", err)
			}

			if err := store.Save(KeyGeometry, []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := store.Save(KeyGeometry, []byte(`{"b":2}`)); err != nil {
				t.Fatalf("Save overwrite: %v", err)
			}
			data, err := store.Load(KeyGeometry)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(data) != `{"b":2}` {
				t.Fatalf("expected full replacement, got %s", data)
			}

			if _, err := store.Load(KeyIconLayout); !errors.Is(err, ErrNotFound) {
				t.Fatalf("records must be independent, got %v", err)
			}

			if err := store.Delete(KeyGeometry); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := store.Load(KeyGeometry); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
			if err := store.Delete(KeyGeometry); err != nil {
				t.Fatalf("Delete of missing key should succeed: %v", err)
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("redis", t.TempDir()); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestOpenSQLitePersistsAcrossHandles(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(BackendSQLite, dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Save(KeyOpenWindows, []byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	store.Close()

	reopened, err := Open(BackendSQLite, dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	data, err := reopened.Load(KeyOpenWindows)
	if err != nil || string(data) != `[]` {
		t.Fatalf("expected persisted record, got %q (%v)", data, err)
	}
}
