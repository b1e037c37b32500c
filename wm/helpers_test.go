// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package wm

import (
	"testing"
	"time"

	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
)

var desktopViewport = Viewport{Width: 1024, Height: 768}

type paramsContent struct {
	updates []registry.Params
	stopped bool
}

func (c *paramsContent) UpdateParams(p registry.Params) { c.updates = append(c.updates, p) }
func (c *paramsContent) Stop()                          { c.stopped = true }

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	features := []registry.Feature{
		{ID: "mail", Title: "Mail", DefaultWidth: 480, Hotkey: "m", Factory: func(registry.Props) interface{} { return &paramsContent{} }},
		{ID: "notes", Title: "Notes", DefaultWidth: 400, Hotkey: "n"},
		{ID: "clock", Title: "Clock", DefaultWidth: 300},
	}
	for _, f := range features {
		if err := reg.Register(f); err != nil {
			t.Fatalf("register %s: %v", f.ID, err)
		}
	}
	return reg
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestDesktop(t *testing.T, store layout.Store, vp Viewport) *Desktop {
	t.Helper()
	return NewDesktop(testRegistry(t), store, Options{Viewport: vp})
}

func pointer(d *Desktop, kind PointerKind, x, y int) Hit {
	return d.HandlePointer(PointerEvent{Kind: kind, Pos: Point{X: x, Y: y}})
}

// drag performs a full down/move/up gesture.
func drag(d *Desktop, fromX, fromY, toX, toY int) {
	pointer(d, PointerDown, fromX, fromY)
	pointer(d, PointerMove, (fromX+toX)/2, (fromY+toY)/2)
	pointer(d, PointerMove, toX, toY)
	pointer(d, PointerUp, toX, toY)
}

func keyRune(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }
