// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/window.go
// Summary: Window entity owned by the manager.

package wm

import "github.com/framegrace/texeldesk/registry"

// Window is the manager's record of one open window. The id equals the
// feature id.
type Window struct {
	ID      string
	Title   string
	Feature *registry.Feature
	// Content is whatever the feature factory mounted. Opaque to the manager.
	Content  interface{}
	Geometry Geometry
	State    State
	Params   registry.Params
	Tab      string

	// preview is the in-flight geometry of a drag or resize; never persisted.
	preview *Geometry
}

// IsMinimized reports whether the window is minimized.
func (w *Window) IsMinimized() bool {
	_, ok := w.State.(StateMinimized)
	return ok
}

// IsMaximized reports whether the window is maximized.
func (w *Window) IsMaximized() bool {
	_, ok := w.State.(StateMaximized)
	return ok
}

// Live returns the geometry to render: the gesture preview if one is in
// flight, else the stored geometry.
func (w *Window) Live() Geometry {
	if w.preview != nil {
		return *w.preview
	}
	return w.Geometry
}

// naturalHeight is the height a window wants independent of where it sits:
// the concrete height, or for auto height the content's measurement (else the
// metrics fallback) bounded by the work area.
func (w *Window) naturalHeight(g Geometry, m Metrics, vp Viewport) int {
	if !g.Size.AutoHeight {
		return g.Size.Height
	}
	h := m.AutoHeight
	if measurer, ok := w.Content.(registry.Measurer); ok {
		if preferred := measurer.PreferredHeight(g.Size.Width); preferred > 0 {
			h = preferred + m.TitleBarHeight
		}
	}
	return max(m.MinHeight, min(h, vp.Height-m.TaskbarHeight-m.MinY(vp)))
}

// renderedHeight is naturalHeight cut off at the taskbar for the window's
// current position.
func (w *Window) renderedHeight(g Geometry, m Metrics, vp Viewport) int {
	h := w.naturalHeight(g, m, vp)
	if !g.Size.AutoHeight {
		return h
	}
	return max(m.MinHeight, min(h, vp.Height-m.TaskbarHeight-g.Position.Y))
}

// Frame is the rectangle the window occupies on screen.
func (w *Window) Frame(m Metrics, vp Viewport) Rect {
	if w.IsMaximized() {
		return m.WorkArea(vp)
	}
	g := w.Live()
	return Rect{
		Left:   g.Position.X,
		Top:    g.Position.Y,
		Width:  g.Size.Width,
		Height: w.renderedHeight(g, m, vp),
	}
}

// FontScale is the body text scale for the current width.
func (w *Window) FontScale(m Metrics, vp Viewport) float64 {
	return m.FontScale(w.Frame(m, vp).Width, w.Feature.Width())
}

// Chrome regions inside a window frame.
func titleBar(frame Rect, m Metrics) Rect {
	return Rect{Left: frame.Left, Top: frame.Top, Width: frame.Width, Height: m.TitleBarHeight}
}

// Body is the content area below the title bar.
func Body(frame Rect, m Metrics) Rect {
	return Rect{
		Left:   frame.Left,
		Top:    frame.Top + m.TitleBarHeight,
		Width:  frame.Width,
		Height: max(0, frame.Height-m.TitleBarHeight),
	}
}

// Button identifies a title-bar control.
type Button int

const (
	ButtonNone Button = iota
	ButtonMinimize
	ButtonMaximize
	ButtonClose
)

// ButtonRect returns the rectangle of a title-bar control. Controls sit at the
// right end of the title bar: minimize, maximize, close.
func ButtonRect(frame Rect, b Button, m Metrics) Rect {
	slot := 0
	switch b {
	case ButtonClose:
		slot = 1
	case ButtonMaximize:
		slot = 2
	case ButtonMinimize:
		slot = 3
	default:
		return Rect{}
	}
	return Rect{
		Left:   frame.Right() - slot*m.ButtonWidth,
		Top:    frame.Top,
		Width:  m.ButtonWidth,
		Height: m.TitleBarHeight,
	}
}

// ResizeHandle returns the bottom-right resize handle.
func ResizeHandle(frame Rect, m Metrics) Rect {
	return Rect{
		Left:   frame.Right() - m.ResizeHandleSize,
		Top:    frame.Bottom() - m.ResizeHandleSize,
		Width:  m.ResizeHandleSize,
		Height: m.ResizeHandleSize,
	}
}
