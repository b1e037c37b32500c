// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/canvas.go
// Summary: Clipped drawing surface handed to window content.

package driver

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldesk/wm"
)

// Renderable content draws itself into its window body.
type Renderable interface {
	Draw(c *Canvas)
}

// KeyHandler content receives keys the desktop did not consume.
type KeyHandler interface {
	HandleKey(ev *tcell.EventKey) bool
}

// InputCapturer content reports whether a text input inside it has focus.
// While it does, desktop hotkeys are suppressed.
type InputCapturer interface {
	CapturesInput() bool
}

// Clicker content receives primary clicks in body-local cells.
type Clicker interface {
	Click(x, y int)
}

// PasteHandler content receives bracketed paste data.
type PasteHandler interface {
	HandlePaste(data []byte)
}

// Canvas is a window body. Coordinates are body-local; writes outside the
// body are dropped.
type Canvas struct {
	screen ScreenDriver
	rect   wm.Rect
	clip   wm.Rect
	// Style is the body background.
	Style tcell.Style
	// Scale is the window's font scale; content may pick a denser or roomier
	// layout from it.
	Scale float64
	// Active is set when the window has focus.
	Active bool
}

func newCanvas(screen ScreenDriver, rect, clip wm.Rect, style tcell.Style) *Canvas {
	return &Canvas{screen: screen, rect: rect, clip: clip, Style: style, Scale: 1}
}

// Width is the body width in cells.
func (c *Canvas) Width() int { return c.rect.Width }

// Height is the body height in cells.
func (c *Canvas) Height() int { return c.rect.Height }

// SetCell writes one rune at body-local x, y.
func (c *Canvas) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.rect.Width || y >= c.rect.Height {
		return
	}
	p := wm.Point{X: c.rect.Left + x, Y: c.rect.Top + y}
	if !c.clip.Contains(p) {
		return
	}
	c.screen.SetContent(p.X, p.Y, r, nil, style)
}

// Print writes s starting at x, y and returns the cells used. Wide runes take
// two cells.
func (c *Canvas) Print(x, y int, s string, style tcell.Style) int {
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.rect.Width {
			break
		}
		c.SetCell(x, y, r, style)
		if w == 2 {
			c.SetCell(x+1, y, ' ', style)
		}
		x += w
	}
	return x - start
}

// PrintCentered writes s centred on row y.
func (c *Canvas) PrintCentered(y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, c.rect.Width, "…")
	x := (c.rect.Width - runewidth.StringWidth(s)) / 2
	c.Print(max(0, x), y, s, style)
}

// Fill paints the whole body.
func (c *Canvas) Fill(r rune, style tcell.Style) {
	for y := 0; y < c.rect.Height; y++ {
		for x := 0; x < c.rect.Width; x++ {
			c.SetCell(x, y, r, style)
		}
	}
}
