// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/geometry.go
// Summary: Geometry primitives, desktop metrics and viewport clamping.

package wm

import "time"

// Point is a position in viewport units.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Size is a window size. AutoHeight means "size to content" until the user
// resizes the window.
type Size struct {
	Width      int
	Height     int
	AutoHeight bool
}

// Geometry is a window's position and size.
type Geometry struct {
	Position Point
	Size     Size
}

// Rect is a normalized rectangle.
type Rect struct {
	Left, Top, Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right() && p.Y >= r.Top && p.Y < r.Bottom()
}

// RectFromPoints normalizes the rectangle spanned by two corners.
func RectFromPoints(a, b Point) Rect {
	left, right := a.X, b.X
	if right < left {
		left, right = right, left
	}
	top, bottom := a.Y, b.Y
	if bottom < top {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Viewport is the visible desktop area, taskbar included.
type Viewport struct {
	Width, Height int
}

// Metrics holds the fixed layout constants of the desktop.
type Metrics struct {
	TaskbarHeight int
	// Viewports narrower than MobileBreakpoint use mobile layout.
	MobileBreakpoint int
	MobileTopBar     int
	MobileMargin     int

	MinWidth  int
	MinHeight int

	TitleBarHeight   int
	ButtonWidth      int
	ResizeHandleSize int

	// New windows without saved geometry open at Origin + Stagger*openCount.
	OriginX, OriginY int
	Stagger          int
	// AutoHeight is the rendered height of an auto-height window whose
	// content cannot measure itself.
	AutoHeight int

	IconWidth, IconHeight  int
	IconCellWidth          int
	IconCellHeight         int
	IconMargin             int
	DragThreshold          int
	ArrangeInterval        time.Duration
	TaskbarEntryWidth      int
	TaskbarStartWidth      int
	LauncherWidth          int
	LauncherVisibleResults int

	MinScale, MaxScale float64
}

// DefaultMetrics returns pixel metrics suited to a browser-sized viewport.
func DefaultMetrics() Metrics {
	return Metrics{
		TaskbarHeight:          40,
		MobileBreakpoint:       768,
		MobileTopBar:           56,
		MobileMargin:           8,
		MinWidth:               200,
		MinHeight:              100,
		TitleBarHeight:         32,
		ButtonWidth:            28,
		ResizeHandleSize:       16,
		OriginX:                50,
		OriginY:                50,
		Stagger:                30,
		AutoHeight:             400,
		IconWidth:              72,
		IconHeight:             80,
		IconCellWidth:          96,
		IconCellHeight:         100,
		IconMargin:             16,
		DragThreshold:          5,
		ArrangeInterval:        400 * time.Millisecond,
		TaskbarEntryWidth:      160,
		TaskbarStartWidth:      64,
		LauncherWidth:          320,
		LauncherVisibleResults: 8,
		MinScale:               0.75,
		MaxScale:               1.25,
	}
}

// Mobile reports whether vp is below the mobile breakpoint.
func (m Metrics) Mobile(vp Viewport) bool {
	return vp.Width < m.MobileBreakpoint
}

// MinY is the smallest y a window or icon may occupy.
func (m Metrics) MinY(vp Viewport) int {
	if m.Mobile(vp) {
		return m.MobileTopBar
	}
	return 0
}

// WorkArea is the rectangle a maximized window fills: the viewport minus the
// taskbar and, on mobile, the status bar.
func (m Metrics) WorkArea(vp Viewport) Rect {
	top := m.MinY(vp)
	return Rect{Left: 0, Top: top, Width: vp.Width, Height: max(0, vp.Height-m.TaskbarHeight-top)}
}

// Taskbar is the strip along the bottom of the viewport.
func (m Metrics) Taskbar(vp Viewport) Rect {
	return Rect{Left: 0, Top: vp.Height - m.TaskbarHeight, Width: vp.Width, Height: m.TaskbarHeight}
}

// clamp bounds v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ClampPosition keeps a window of the given rendered size inside the viewport:
// x in [0, vw-w], y in [minY, vh-taskbar-h].
func (m Metrics) ClampPosition(p Point, width, height int, vp Viewport) Point {
	return Point{
		X: clamp(p.X, 0, vp.Width-width),
		Y: clamp(p.Y, m.MinY(vp), vp.Height-m.TaskbarHeight-height),
	}
}

// ClampSize applies the minimum size floor and keeps the bottom-right edge of
// a window anchored at origin inside the work area.
func (m Metrics) ClampSize(width, height int, origin Point, vp Viewport) (int, int) {
	width = max(m.MinWidth, min(width, vp.Width-origin.X))
	height = max(m.MinHeight, min(height, vp.Height-m.TaskbarHeight-origin.Y))
	return width, height
}

// FontScale derives the content text scale from the ratio of the current
// width to the feature's default width.
func (m Metrics) FontScale(width, defaultWidth int) float64 {
	if defaultWidth <= 0 || width <= 0 {
		return 1
	}
	scale := float64(width) / float64(defaultWidth)
	if scale < m.MinScale {
		return m.MinScale
	}
	if scale > m.MaxScale {
		return m.MaxScale
	}
	return scale
}
