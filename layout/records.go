// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/records.go
// Summary: Typed JSON codec for the open-window, geometry, and icon records.
// Notes: Missing or malformed records read back as "no saved state".

package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
)

// Point is a top-left coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Height is either a concrete value or "auto" (size to content).
type Height struct {
	Value int
	Auto  bool
}

// AutoHeight is the "size to content" sentinel.
var AutoHeight = Height{Auto: true}

func (h Height) MarshalJSON() ([]byte, error) {
	if h.Auto {
		return []byte(`"auto"`), nil
	}
	return json.Marshal(h.Value)
}

func (h *Height) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*h = AutoHeight
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != "auto" {
			return fmt.Errorf("invalid height %q", s)
		}
		*h = AutoHeight
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid height %v", f)
	}
	*h = Height{Value: int(math.Round(f))}
	return nil
}

// Size is a persisted window size.
type Size struct {
	Width  int    `json:"width"`
	Height Height `json:"height"`
}

// Geometry is the last known placement of a window, plus the last active tab
// for multi-tab content.
type Geometry struct {
	Position Point  `json:"position"`
	Size     Size   `json:"size"`
	Tab      string `json:"tab,omitempty"`
}

// OpenWindow is one entry of the open-window record.
type OpenWindow struct {
	ID          string                 `json:"id"`
	IsMinimized bool                   `json:"isMinimized"`
	ExtraParams map[string]interface{} `json:"extraParams,omitempty"`
}

// Records reads and writes the three layout records through a Store.
type Records struct {
	store Store
}

// NewRecords wraps store.
func NewRecords(store Store) *Records {
	return &Records{store: store}
}

// Store returns the underlying backend.
func (r *Records) Store() Store {
	return r.store
}

func (r *Records) load(key string, v interface{}) bool {
	data, err := r.store.Load(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("Layout: Failed to load %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Layout: Ignoring malformed %s record: %v", key, err)
		return false
	}
	return true
}

func (r *Records) save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return r.store.Save(key, data)
}

// OpenWindows returns the saved open-window list in open order. Entries with an
// empty or repeated id are dropped.
func (r *Records) OpenWindows() []OpenWindow {
	var raw []OpenWindow
	if !r.load(KeyOpenWindows, &raw) {
		return nil
	}
	seen := make(map[string]bool, len(raw))
	out := make([]OpenWindow, 0, len(raw))
	for _, w := range raw {
		if w.ID == "" || seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		out = append(out, w)
	}
	return out
}

// SaveOpenWindows replaces the open-window record.
func (r *Records) SaveOpenWindows(windows []OpenWindow) error {
	if windows == nil {
		windows = []OpenWindow{}
	}
	return r.save(KeyOpenWindows, windows)
}

// Geometry returns the saved per-window geometry. Entries with a non-positive
// width or concrete height are dropped.
func (r *Records) Geometry() map[string]Geometry {
	raw := make(map[string]Geometry)
	if !r.load(KeyGeometry, &raw) {
		return make(map[string]Geometry)
	}
	for id, g := range raw {
		if g.Size.Width <= 0 || (!g.Size.Height.Auto && g.Size.Height.Value <= 0) {
			delete(raw, id)
		}
	}
	return raw
}

// SaveGeometry replaces the geometry record.
func (r *Records) SaveGeometry(geometry map[string]Geometry) error {
	if geometry == nil {
		geometry = map[string]Geometry{}
	}
	return r.save(KeyGeometry, geometry)
}

// IconLayout returns the saved desktop icon positions.
func (r *Records) IconLayout() map[string]Point {
	raw := make(map[string]Point)
	if !r.load(KeyIconLayout, &raw) {
		return make(map[string]Point)
	}
	return raw
}

// SaveIconLayout replaces the icon layout record.
func (r *Records) SaveIconLayout(icons map[string]Point) error {
	if icons == nil {
		icons = map[string]Point{}
	}
	return r.save(KeyIconLayout, icons)
}
