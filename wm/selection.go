// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/selection.go
// Summary: Desktop marquee selection box. Visual only: nothing is selected.

package wm

type selectionBox struct {
	d       *Desktop
	anchor  Point
	current Point
}

func (g *selectionBox) Kind() GestureKind { return GestureSelection }

func (g *selectionBox) Move(p Point) { g.current = p }

func (g *selectionBox) End(Point) {
	g.d.selection = nil
}

// Rect is the normalized marquee rectangle.
func (g *selectionBox) Rect() Rect {
	return RectFromPoints(g.anchor, g.current)
}
