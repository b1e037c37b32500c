// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/drag.go
// Summary: Window move and resize gesture sessions.

package wm

// holds reports whether w is still the open entity for its id. A window
// closed (and maybe reopened) mid-gesture no longer is.
func (m *Manager) holds(w *Window) bool {
	_, cur := m.find(w.ID)
	return cur == w
}

// windowDrag moves a window by its title bar. The pointer-to-origin offset is
// fixed at pointer-down.
type windowDrag struct {
	m      *Manager
	w      *Window
	offset Point
	last   Geometry
}

func newWindowDrag(m *Manager, w *Window, p Point) *windowDrag {
	return &windowDrag{
		m:      m,
		w:      w,
		offset: p.Sub(w.Geometry.Position),
		last:   w.Geometry,
	}
}

func (g *windowDrag) Kind() GestureKind { return GestureWindowDrag }

func (g *windowDrag) Move(p Point) {
	mt, vp := g.m.metrics, g.m.viewport
	h := g.w.naturalHeight(g.last, mt, vp)
	g.last.Position = mt.ClampPosition(p.Sub(g.offset), g.last.Size.Width, h, vp)
	preview := g.last
	g.w.preview = &preview
}

func (g *windowDrag) End(p Point) {
	if !g.m.holds(g.w) {
		return
	}
	g.Move(p)
	pos := g.last.Position
	g.m.UpdateGeometry(g.w.ID, GeometryUpdate{Position: &pos})
}

// windowResize drags the bottom-right handle. The top-left stays fixed and an
// auto height becomes concrete at pointer-down.
type windowResize struct {
	m     *Manager
	w     *Window
	start Point
	origW int
	origH int
	last  Geometry
}

func newWindowResize(m *Manager, w *Window, p Point) *windowResize {
	frame := w.Frame(m.metrics, m.viewport)
	last := w.Geometry
	last.Size = Size{Width: frame.Width, Height: frame.Height}
	return &windowResize{
		m:     m,
		w:     w,
		start: p,
		origW: frame.Width,
		origH: frame.Height,
		last:  last,
	}
}

func (g *windowResize) Kind() GestureKind { return GestureWindowResize }

func (g *windowResize) Move(p Point) {
	d := p.Sub(g.start)
	width, height := g.m.metrics.ClampSize(g.origW+d.X, g.origH+d.Y, g.last.Position, g.m.viewport)
	g.last.Size = Size{Width: width, Height: height}
	preview := g.last
	g.w.preview = &preview
}

func (g *windowResize) End(p Point) {
	if !g.m.holds(g.w) {
		return
	}
	g.Move(p)
	size := g.last.Size
	g.m.UpdateGeometry(g.w.ID, GeometryUpdate{Size: &size})
}
