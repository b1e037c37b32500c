// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package notes

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/registry"
)

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestEditingCapturesInput(t *testing.T) {
	n := New(registry.Props{}, config.Config{})
	if n.CapturesInput() {
		t.Fatalf("notes should not capture input before editing")
	}
	if n.HandleKey(key(tcell.KeyRune, 'm')) {
		t.Fatalf("runes outside edit mode should fall through")
	}

	n.Click(2, 3)
	if !n.CapturesInput() {
		t.Fatalf("click in the body should start editing")
	}
	for _, r := range "hi" {
		n.HandleKey(key(tcell.KeyRune, r))
	}
	n.HandleKey(key(tcell.KeyEnter, 0))
	n.HandleKey(key(tcell.KeyRune, 'x'))
	n.HandleKey(key(tcell.KeyBackspace2, 0))
	n.HandleKey(key(tcell.KeyBackspace2, 0))
	n.HandleKey(key(tcell.KeyRune, '!'))
	if got := n.Text(); got != "hi!" {
		t.Fatalf("text %q", got)
	}

	n.HandleKey(key(tcell.KeyEscape, 0))
	if n.CapturesInput() {
		t.Fatalf("escape should leave edit mode")
	}
}

func TestPagesReportTab(t *testing.T) {
	var tabs []string
	n := New(registry.Props{Tab: "2", OnTabChange: func(tab string) { tabs = append(tabs, tab) }}, config.Config{})
	if n.Page() != 2 {
		t.Fatalf("expected page 2 from the saved tab, got %d", n.Page())
	}
	n.HandleKey(key(tcell.KeyTab, 0))
	n.Click(1, 0)
	if len(tabs) != 2 || tabs[0] != "3" || tabs[1] != "1" {
		t.Fatalf("tab changes %v", tabs)
	}
}

func TestLineLimitAndPaste(t *testing.T) {
	n := New(registry.Props{}, config.Config{"notes": map[string]interface{}{"max_lines": 2}})
	n.HandlePaste([]byte("a\nb\nc"))
	if got := n.Text(); got != "a\nb" {
		t.Fatalf("expected paste clipped at two lines, got %q", got)
	}
	if h := n.PreferredHeight(20); h != 4 {
		t.Fatalf("preferred height %d", h)
	}
}
