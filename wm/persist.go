// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/persist.go
// Summary: Conversion between window entities and persisted layout records.

package wm

import (
	"log"

	"github.com/framegrace/texeldesk/layout"
)

func toRecord(g Geometry, tab string) layout.Geometry {
	h := layout.Height{Value: g.Size.Height}
	if g.Size.AutoHeight {
		h = layout.AutoHeight
	}
	return layout.Geometry{
		Position: layout.Point{X: g.Position.X, Y: g.Position.Y},
		Size:     layout.Size{Width: g.Size.Width, Height: h},
		Tab:      tab,
	}
}

func fromRecord(rec layout.Geometry) Geometry {
	return Geometry{
		Position: Point{X: rec.Position.X, Y: rec.Position.Y},
		Size: Size{
			Width:      rec.Size.Width,
			Height:     rec.Size.Height.Value,
			AutoHeight: rec.Size.Height.Auto,
		},
	}
}

func (m *Manager) saveOpenWindows() {
	open := make([]layout.OpenWindow, 0, len(m.windows))
	for _, w := range m.windows {
		rec := layout.OpenWindow{ID: w.ID, IsMinimized: w.IsMinimized()}
		if len(w.Params) > 0 {
			rec.ExtraParams = map[string]interface{}(w.Params.Clone())
		}
		open = append(open, rec)
	}
	if err := m.records.SaveOpenWindows(open); err != nil {
		log.Printf("WindowManager: Failed to save open windows: %v", err)
	}
}

func (m *Manager) saveGeometry() {
	if err := m.records.SaveGeometry(m.geometry); err != nil {
		log.Printf("WindowManager: Failed to save window geometry: %v", err)
	}
}
