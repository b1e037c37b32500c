// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/help/help.go
// Summary: Help window listing desktop gestures and feature hotkeys.
// Notes: Hotkeys are read from the registry when the window mounts.

package help

import (
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/driver"
	"github.com/framegrace/texeldesk/registry"
)

// helpEntry represents a key-description pair.
type helpEntry struct {
	key  string
	desc string
}

// helpSection represents a titled section with entries.
type helpSection struct {
	title   string
	entries []helpEntry
}

var desktopSection = helpSection{
	title: "Desktop",
	entries: []helpEntry{
		{"Click icon", "Open feature"},
		{"Drag icon", "Move icon"},
		{"Right-click x2", "Auto-arrange icons"},
		{"Drag title", "Move window"},
		{"Drag ◢", "Resize window"},
		{"F1/Ctrl+Space", "Open launcher"},
		{"Esc", "Close active window"},
		{"Ctrl+Q", "Quit"},
	},
}

// Help shows a scrollable two-column reference.
type Help struct {
	mu       sync.RWMutex
	sections []helpSection
	offset   int
	height   int
}

// New builds the help content. overrides maps feature ids to configured
// hotkeys and wins over the registry's defaults; an empty value unbinds.
func New(reg *registry.Registry, overrides map[string]string) *Help {
	return &Help{sections: []helpSection{desktopSection, hotkeySection(reg, overrides)}}
}

func hotkeySection(reg *registry.Registry, overrides map[string]string) helpSection {
	section := helpSection{title: "Hotkeys"}
	if reg == nil {
		return section
	}
	for _, f := range reg.Features() {
		key := f.Hotkey
		if override, ok := overrides[f.ID]; ok {
			key = strings.ToLower(override)
		}
		if key == "" {
			continue
		}
		section.entries = append(section.entries, helpEntry{key: key, desc: "Toggle " + f.Title})
	}
	sort.SliceStable(section.entries, func(i, j int) bool {
		return section.entries[i].key < section.entries[j].key
	})
	if len(section.entries) == 0 {
		section.entries = []helpEntry{{"-", "No hotkeys bound"}}
	}
	return section
}

// lines flattens the sections into rows. Section titles have an empty key.
func (h *Help) lines() []helpEntry {
	var out []helpEntry
	for i, section := range h.sections {
		if i > 0 {
			out = append(out, helpEntry{})
		}
		out = append(out, helpEntry{desc: section.title})
		out = append(out, section.entries...)
	}
	return out
}

func (h *Help) keyWidth() int {
	width := 0
	for _, section := range h.sections {
		for _, entry := range section.entries {
			width = max(width, len([]rune(entry.key)))
		}
	}
	return width + 2
}

// PreferredHeight fits every row.
func (h *Help) PreferredHeight(width int) int {
	return len(h.lines())
}

// Offset is the index of the first visible row.
func (h *Help) Offset() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.offset
}

// HandleKey scrolls with the arrow and page keys.
func (h *Help) HandleKey(ev *tcell.EventKey) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	page := max(1, h.height-1)
	switch ev.Key() {
	case tcell.KeyUp:
		h.scrollLocked(-1)
	case tcell.KeyDown:
		h.scrollLocked(1)
	case tcell.KeyPgUp:
		h.scrollLocked(-page)
	case tcell.KeyPgDn:
		h.scrollLocked(page)
	case tcell.KeyHome:
		h.offset = 0
	default:
		return false
	}
	return true
}

func (h *Help) scrollLocked(delta int) {
	limit := max(0, len(h.lines())-max(1, h.height))
	h.offset = min(max(0, h.offset+delta), limit)
}

func (h *Help) Draw(cv *driver.Canvas) {
	h.mu.Lock()
	h.height = cv.Height()
	h.scrollLocked(0)
	offset := h.offset
	h.mu.Unlock()

	titleStyle := cv.Style.Bold(true).Underline(true)
	keyStyle := cv.Style.Foreground(tcell.PaletteColor(6))
	keyWidth := h.keyWidth()

	lines := h.lines()
	for y := 0; y < cv.Height() && offset+y < len(lines); y++ {
		entry := lines[offset+y]
		if entry.key == "" {
			cv.Print(1, y, entry.desc, titleStyle)
			continue
		}
		// Keys are right-aligned in their column.
		pad := keyWidth - len([]rune(entry.key)) - 1
		cv.Print(1+pad, y, entry.key, keyStyle)
		cv.Print(1+keyWidth, y, entry.desc, cv.Style)
	}
}
