// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/gesture.go
// Summary: Pointer events and the single-slot gesture dispatcher.
// Notes: A gesture session lives from pointer-down to pointer-up. Only one
// session exists at a time; it commits exactly once, on release.

package wm

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// PointerSource distinguishes mouse from touch input. Both go through the
// same gesture math.
type PointerSource int

const (
	SourceMouse PointerSource = iota
	SourceTouch
)

// PointerEvent is one pointer sample in viewport coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Source PointerSource
	Pos    Point
}

// GestureKind names the four gesture classes.
type GestureKind int

const (
	GestureWindowDrag GestureKind = iota
	GestureWindowResize
	GestureIconDrag
	GestureSelection
)

func (k GestureKind) String() string {
	switch k {
	case GestureWindowDrag:
		return "window-drag"
	case GestureWindowResize:
		return "window-resize"
	case GestureIconDrag:
		return "icon-drag"
	case GestureSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// Gesture is an in-flight gesture session.
type Gesture interface {
	Kind() GestureKind
	// Move updates view-local state only.
	Move(p Point)
	// End commits the last computed state.
	End(p Point)
}

// GestureDispatcher holds at most one active gesture.
type GestureDispatcher struct {
	current Gesture
}

// Begin starts g unless another gesture is active.
func (d *GestureDispatcher) Begin(g Gesture) bool {
	if d.current != nil || g == nil {
		return false
	}
	d.current = g
	return true
}

// Move forwards a pointer move to the active gesture.
func (d *GestureDispatcher) Move(p Point) bool {
	if d.current == nil {
		return false
	}
	d.current.Move(p)
	return true
}

// End finishes the active gesture. The slot is cleared before End runs so a
// commit can never fire twice.
func (d *GestureDispatcher) End(p Point) bool {
	g := d.current
	if g == nil {
		return false
	}
	d.current = nil
	g.End(p)
	return true
}

// Current returns the active gesture, or nil.
func (d *GestureDispatcher) Current() Gesture { return d.current }

// Active reports whether a gesture is in flight.
func (d *GestureDispatcher) Active() bool { return d.current != nil }
