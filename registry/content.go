// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/content.go
// Summary: Contract between the window manager and mounted feature content.

package registry

// Params is the extra-parameter bag handed to content on open and merged on
// subsequent opens of the same feature.
type Params map[string]interface{}

// Clone returns a shallow copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every key of other into p, overwriting existing keys.
func (p Params) Merge(other Params) {
	for k, v := range other {
		p[k] = v
	}
}

// Props is the fixed prop set every mounted content receives. The window
// manager forwards Session untouched.
type Props struct {
	WindowID    string
	ExtraParams Params
	Tab         string
	Session     map[string]interface{}

	OnClose       func()
	OnTitleChange func(title string)
	OnTabChange   func(tab string)
	// Refresh asks the host to redraw; safe to call from any goroutine.
	Refresh func()
}

// ContentFactory mounts a feature's content. The returned value is opaque to
// the window manager; renderers type-assert it to what they can draw.
type ContentFactory func(props Props) interface{}

// ParamsReceiver is implemented by content that wants to see extra parameters
// merged into an already-open window.
type ParamsReceiver interface {
	UpdateParams(params Params)
}

// Stopper is implemented by content holding resources released on close.
type Stopper interface {
	Stop()
}

// Measurer is implemented by content that can report its natural height for
// windows whose height is still "auto".
type Measurer interface {
	PreferredHeight(width int) int
}
