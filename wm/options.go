// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/options.go
// Summary: Construction options for the manager and desktop.

package wm

import "time"

// GridCell is a column/row slot of the auto-arrange template.
type GridCell struct {
	Col, Row int
}

// Options configures a Manager or Desktop.
type Options struct {
	// Metrics defaults to DefaultMetrics when zero.
	Metrics  Metrics
	Viewport Viewport
	// Session is host data forwarded to every mounted content.
	Session map[string]interface{}
	// Refresh is handed to content as Props.Refresh.
	Refresh func()
	// Now is the clock used for the auto-arrange double trigger.
	Now func() time.Time
	// ArrangeTemplate is the curated auto-arrange layout keyed by feature id.
	ArrangeTemplate map[string]GridCell
	// Hotkeys overrides feature hotkeys: feature id -> single key. An empty
	// key unbinds.
	Hotkeys map[string]string
}

func (o Options) withDefaults() Options {
	if o.Metrics == (Metrics{}) {
		o.Metrics = DefaultMetrics()
	}
	if o.Viewport == (Viewport{}) {
		o.Viewport = Viewport{Width: 1024, Height: 768}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
