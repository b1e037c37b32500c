// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/state.go
// Summary: Per-window lifecycle state as a closed set of variants.

package wm

// State is the lifecycle state of an open window. It is one of StateOpen,
// StateMinimized or StateMaximized; closed windows have no entity at all.
type State interface {
	kind() string
}

// StateOpen is a visible window at its stored geometry.
type StateOpen struct{}

// StateMinimized is hidden; only its taskbar entry remains.
type StateMinimized struct{}

// StateMaximized fills the work area. RestoreTo is the geometry it returns
// to; maximizing never changes the stored geometry.
type StateMaximized struct {
	RestoreTo Geometry
}

func (StateOpen) kind() string      { return "open" }
func (StateMinimized) kind() string { return "minimized" }
func (StateMaximized) kind() string { return "maximized" }

// StateName returns "open", "minimized" or "maximized".
func StateName(s State) string {
	if s == nil {
		return "open"
	}
	return s.kind()
}
