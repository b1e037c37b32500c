// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
	"github.com/framegrace/texeldesk/wm"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-backend", "sqlite", "-layout-dir", "/tmp/x", "-reset", "-open", "clock,notes"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.backend != "sqlite" || opts.layoutDir != "/tmp/x" || !opts.reset || opts.open != "clock,notes" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if _, err := parseFlags([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, id := range []string{"clock", "notes", "mail"} {
		if err := reg.Register(registry.Feature{ID: id, Title: strings.ToUpper(id[:1]) + id[1:], DefaultWidth: 20}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}
	return reg
}

func TestOpenStartupOnlyOnEmptyDesktop(t *testing.T) {
	store := layout.NewMemoryStore()
	reg := testRegistry(t)

	m := wm.NewManager(reg, store, wm.Options{})
	openStartup(m, []string{"clock", "notes"}, "")
	if got := len(m.Windows()); got != 2 {
		t.Fatalf("expected 2 startup windows, got %d", got)
	}

	restored := wm.NewManager(reg, store, wm.Options{})
	openStartup(restored, []string{"mail"}, " mail , ")
	if !restored.IsOpen("mail") || len(restored.Windows()) != 3 {
		t.Fatalf("expected restored windows plus -open, got %d", len(restored.Windows()))
	}

	restored.Close("mail")
	again := wm.NewManager(reg, store, wm.Options{})
	openStartup(again, []string{"mail"}, "")
	if again.IsOpen("mail") {
		t.Fatalf("startup features must not be added to a restored desktop")
	}
}

func TestResetLayout(t *testing.T) {
	store := layout.NewMemoryStore()
	m := wm.NewManager(testRegistry(t), store, wm.Options{})
	m.Open("clock", nil)

	if err := resetLayout(store); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, key := range layout.Keys {
		if _, err := store.Load(key); !errors.Is(err, layout.ErrNotFound) {
			t.Fatalf("expected %s to be gone, got %v", key, err)
		}
	}
	if got := len(wm.NewManager(testRegistry(t), store, wm.Options{}).Windows()); got != 0 {
		t.Fatalf("expected empty desktop after reset, got %d windows", got)
	}
}
