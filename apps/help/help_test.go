// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package help

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/registry"
)

func testRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register(registry.Feature{ID: "mail", Title: "Mail", Hotkey: "m"})
	reg.Register(registry.Feature{ID: "clock", Title: "Clock", Hotkey: "c"})
	reg.Register(registry.Feature{ID: "notes", Title: "Notes"})
	return reg
}

func TestHotkeysFollowOverrides(t *testing.T) {
	section := hotkeySection(testRegistry(), map[string]string{"mail": "", "notes": "N"})
	if len(section.entries) != 2 {
		t.Fatalf("expected 2 bound hotkeys, got %+v", section.entries)
	}
	if section.entries[0].key != "c" || section.entries[0].desc != "Toggle Clock" {
		t.Fatalf("unexpected first entry %+v", section.entries[0])
	}
	if section.entries[1].key != "n" || section.entries[1].desc != "Toggle Notes" {
		t.Fatalf("unexpected second entry %+v", section.entries[1])
	}

	empty := hotkeySection(registry.New(), nil)
	if len(empty.entries) != 1 || empty.entries[0].desc != "No hotkeys bound" {
		t.Fatalf("expected placeholder entry, got %+v", empty.entries)
	}
}

func TestScrollStaysInRange(t *testing.T) {
	h := New(testRegistry(), nil)
	h.height = 4
	total := h.PreferredHeight(40)

	if h.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatalf("runes should not be consumed")
	}
	h.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if h.Offset() != 0 {
		t.Fatalf("offset went negative: %d", h.Offset())
	}
	for i := 0; i < total*2; i++ {
		h.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	}
	if got, want := h.Offset(), total-4; got != want {
		t.Fatalf("expected offset clamped to %d, got %d", want, got)
	}
	h.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if h.Offset() != 0 {
		t.Fatalf("home should reset the offset, got %d", h.Offset())
	}
}
