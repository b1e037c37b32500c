// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/icons.go
// Summary: Desktop icon layout, icon drag gesture and auto-arrange.

package wm

import (
	"log"
	"time"

	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
)

// IconPlacement is one rendered desktop icon.
type IconPlacement struct {
	Feature  *registry.Feature
	Rect     Rect
	Dragging bool
}

// Icons owns the desktop icon layout. Positions persist independently of
// windows; features without a saved position use a grid default by index.
type Icons struct {
	m         *Manager
	positions map[string]Point
	template  map[string]GridCell
	now       func() time.Time

	lastTrigger time.Time
	dragID      string
	dragPos     Point
}

func newIcons(m *Manager, template map[string]GridCell, now func() time.Time) *Icons {
	positions := make(map[string]Point)
	for id, p := range m.records.IconLayout() {
		positions[id] = Point{X: p.X, Y: p.Y}
	}
	return &Icons{
		m:         m,
		positions: positions,
		template:  template,
		now:       now,
	}
}

func (ic *Icons) gridTop() int {
	return ic.m.metrics.MinY(ic.m.viewport) + ic.m.metrics.IconMargin
}

// rowsPerColumn is how many icons fit in one grid column.
func (ic *Icons) rowsPerColumn() int {
	mt, vp := ic.m.metrics, ic.m.viewport
	if mt.IconCellHeight <= 0 {
		return 1
	}
	avail := vp.Height - mt.TaskbarHeight - ic.gridTop()
	return max(1, avail/mt.IconCellHeight)
}

func (ic *Icons) cellPosition(c GridCell) Point {
	mt := ic.m.metrics
	return Point{
		X: mt.IconMargin + c.Col*mt.IconCellWidth,
		Y: ic.gridTop() + c.Row*mt.IconCellHeight,
	}
}

// DefaultPosition is the grid slot for the index-th visible feature, filled
// column by column.
func (ic *Icons) DefaultPosition(index int) Point {
	rows := ic.rowsPerColumn()
	return ic.cellPosition(GridCell{Col: index / rows, Row: index % rows})
}

// Position returns where the icon for id is drawn.
func (ic *Icons) Position(id string) Point {
	if ic.dragID == id {
		return ic.dragPos
	}
	if p, ok := ic.positions[id]; ok {
		return p
	}
	for i, f := range ic.m.registry.Visible() {
		if f.ID == id {
			return ic.DefaultPosition(i)
		}
	}
	return Point{}
}

// Placements returns every visible icon in registry order.
func (ic *Icons) Placements() []IconPlacement {
	mt := ic.m.metrics
	visible := ic.m.registry.Visible()
	out := make([]IconPlacement, 0, len(visible))
	for i, f := range visible {
		p, ok := ic.positions[f.ID]
		if !ok {
			p = ic.DefaultPosition(i)
		}
		if ic.dragID == f.ID {
			p = ic.dragPos
		}
		out = append(out, IconPlacement{
			Feature:  f,
			Rect:     Rect{Left: p.X, Top: p.Y, Width: mt.IconWidth, Height: mt.IconHeight},
			Dragging: ic.dragID == f.ID,
		})
	}
	return out
}

// hit returns the topmost icon under p.
func (ic *Icons) hit(p Point) *registry.Feature {
	placements := ic.Placements()
	for i := len(placements) - 1; i >= 0; i-- {
		if placements[i].Rect.Contains(p) {
			return placements[i].Feature
		}
	}
	return nil
}

// clampIcon keeps an icon on screen; on mobile it also stays below the
// status bar.
func (ic *Icons) clampIcon(p Point) Point {
	mt, vp := ic.m.metrics, ic.m.viewport
	return Point{
		X: clamp(p.X, 0, vp.Width-mt.IconWidth),
		Y: clamp(p.Y, mt.MinY(vp), vp.Height-mt.TaskbarHeight-mt.IconHeight),
	}
}

// Move places the icon for id and persists the layout.
func (ic *Icons) Move(id string, p Point) {
	ic.positions[id] = ic.clampIcon(p)
	ic.save()
	ic.m.broadcast(EventIconsMoved, id)
}

// AutoArrange replaces the whole layout with the template. Features missing
// from the template fill overflow columns to its right.
func (ic *Icons) AutoArrange() {
	rows := ic.rowsPerColumn()
	overflowCol := 0
	for _, c := range ic.template {
		overflowCol = max(overflowCol, c.Col+1)
	}

	positions := make(map[string]Point)
	overflow := 0
	for _, f := range ic.m.registry.Visible() {
		cell, ok := ic.template[f.ID]
		if !ok {
			cell = GridCell{Col: overflowCol + overflow/rows, Row: overflow % rows}
			overflow++
		}
		positions[f.ID] = ic.cellPosition(cell)
	}
	ic.positions = positions
	ic.save()
	log.Printf("Desktop: Auto-arranged %d icons (%d overflow)", len(positions), overflow)
	ic.m.broadcast(EventIconsMoved, "")
}

// ContextTrigger records a context-menu trigger on the desktop. Two triggers
// within the arrange interval auto-arrange the icons.
func (ic *Icons) ContextTrigger() bool {
	now := ic.now()
	if !ic.lastTrigger.IsZero() && now.Sub(ic.lastTrigger) <= ic.m.metrics.ArrangeInterval {
		ic.lastTrigger = time.Time{}
		ic.AutoArrange()
		return true
	}
	ic.lastTrigger = now
	return false
}

func (ic *Icons) save() {
	out := make(map[string]layout.Point, len(ic.positions))
	for id, p := range ic.positions {
		out[id] = layout.Point{X: p.X, Y: p.Y}
	}
	if err := ic.m.records.SaveIconLayout(out); err != nil {
		log.Printf("Desktop: Failed to save icon layout: %v", err)
	}
}

// iconDrag moves an icon, or opens its feature when the pointer never
// crosses the drag threshold.
type iconDrag struct {
	ic       *Icons
	id       string
	start    Point
	origin   Point
	dragging bool
}

func newIconDrag(ic *Icons, id string, p Point) *iconDrag {
	return &iconDrag{ic: ic, id: id, start: p, origin: ic.Position(id)}
}

func (g *iconDrag) Kind() GestureKind { return GestureIconDrag }

func (g *iconDrag) Move(p Point) {
	d := p.Sub(g.start)
	threshold := g.ic.m.metrics.DragThreshold
	if !g.dragging && (abs(d.X) > threshold || abs(d.Y) > threshold) {
		g.dragging = true
		g.ic.dragID = g.id
	}
	if g.dragging {
		g.ic.dragPos = g.ic.clampIcon(g.origin.Add(d))
	}
}

func (g *iconDrag) End(p Point) {
	g.Move(p)
	if !g.dragging {
		g.ic.m.Open(g.id, nil)
		return
	}
	pos := g.ic.dragPos
	g.ic.dragID = ""
	g.ic.Move(g.id, pos)
}
