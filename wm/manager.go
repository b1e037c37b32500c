// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/manager.go
// Summary: Window manager owning window entities, focus and persistence.
// Usage: Created by Desktop; gestures, taskbar and hotkeys call into it.

package wm

import (
	"log"

	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
)

// GeometryUpdate is a committed drag or resize. Nil fields are left as is.
type GeometryUpdate struct {
	Position *Point
	Size     *Size
}

// Manager owns the open windows. Exactly one entity exists per open feature
// id, and the active window is never minimized.
type Manager struct {
	registry *registry.Registry
	records  *layout.Records
	metrics  Metrics
	viewport Viewport
	session  map[string]interface{}
	refresh  func()

	windows  []*Window
	active   string
	geometry map[string]layout.Geometry
	events   *EventDispatcher
}

// NewManager reads the persisted layout once and rebuilds the windows that
// were open, skipping ids the registry no longer knows.
func NewManager(reg *registry.Registry, store layout.Store, opts Options) *Manager {
	opts = opts.withDefaults()
	m := &Manager{
		registry: reg,
		records:  layout.NewRecords(store),
		metrics:  opts.Metrics,
		viewport: opts.Viewport,
		session:  opts.Session,
		refresh:  opts.Refresh,
		events:   NewEventDispatcher(),
	}
	m.geometry = m.records.Geometry()
	m.restore()
	return m
}

func (m *Manager) restore() {
	for _, rec := range m.records.OpenWindows() {
		feature, ok := m.registry.Lookup(rec.ID)
		if !ok {
			log.Printf("WindowManager: Dropping saved window for unknown feature %q", rec.ID)
			continue
		}
		w := m.newWindow(feature, registry.Params(rec.ExtraParams))
		if rec.IsMinimized {
			w.State = StateMinimized{}
		}
		m.windows = append(m.windows, w)
	}
	for i := len(m.windows) - 1; i >= 0; i-- {
		if !m.windows[i].IsMinimized() {
			m.active = m.windows[i].ID
			break
		}
	}
	if len(m.windows) > 0 {
		log.Printf("WindowManager: Restored %d windows, active=%q", len(m.windows), m.active)
	}
}

// newWindow builds and mounts an entity. Placement uses the saved geometry
// when present, else the staggered default; mobile viewports force near
// full-width placement.
func (m *Manager) newWindow(feature *registry.Feature, params registry.Params) *Window {
	merged := feature.Params.Clone()
	merged.Merge(params)

	w := &Window{
		ID:      feature.ID,
		Title:   feature.Title,
		Feature: feature,
		State:   StateOpen{},
		Params:  merged,
	}

	saved, hasSaved := m.geometry[feature.ID]
	if hasSaved {
		w.Tab = saved.Tab
	}
	w.Content = m.mount(w)

	vp, mt := m.viewport, m.metrics
	var g Geometry
	switch {
	case mt.Mobile(vp):
		g = Geometry{
			Position: Point{X: mt.MobileMargin, Y: mt.MobileTopBar + mt.MobileMargin},
			Size:     Size{Width: vp.Width - 2*mt.MobileMargin, AutoHeight: true},
		}
	case hasSaved:
		g = fromRecord(saved)
	default:
		n := len(m.windows)
		g = Geometry{
			Position: Point{X: mt.OriginX + mt.Stagger*n, Y: mt.OriginY + mt.Stagger*n},
			Size:     Size{Width: feature.Width(), AutoHeight: true},
		}
	}
	w.Geometry = m.sanitize(w, g)
	return w
}

func (m *Manager) mount(w *Window) interface{} {
	if w.Feature.Factory == nil {
		return nil
	}
	refresh := m.refresh
	if refresh == nil {
		refresh = func() {}
	}
	id := w.ID
	return w.Feature.Factory(registry.Props{
		WindowID:      id,
		ExtraParams:   w.Params.Clone(),
		Tab:           w.Tab,
		Session:       m.session,
		OnClose:       func() { m.Close(id) },
		OnTitleChange: func(title string) { m.rename(w, title) },
		OnTabChange:   func(tab string) { m.SetWindowTab(id, tab) },
		Refresh:       refresh,
	})
}

// sanitize clamps g so the window lies inside the viewport and respects the
// minimum size. Invalid geometry is never stored.
func (m *Manager) sanitize(w *Window, g Geometry) Geometry {
	vp, mt := m.viewport, m.metrics
	g.Size.Width = clamp(g.Size.Width, mt.MinWidth, vp.Width)
	if !g.Size.AutoHeight {
		g.Size.Height = clamp(g.Size.Height, mt.MinHeight, vp.Height-mt.TaskbarHeight-mt.MinY(vp))
	}
	// Position is clamped against the full height so an auto-height window
	// moves up rather than shrinking.
	h := w.naturalHeight(g, mt, vp)
	g.Position = mt.ClampPosition(g.Position, g.Size.Width, h, vp)
	return g
}

func (m *Manager) find(id string) (int, *Window) {
	for i, w := range m.windows {
		if w.ID == id {
			return i, w
		}
	}
	return -1, nil
}

func (m *Manager) broadcast(t EventType, id string) {
	m.events.Broadcast(Event{Type: t, WindowID: id})
}

func (m *Manager) setActive(id string) {
	if m.active == id {
		return
	}
	m.active = id
	m.broadcast(EventActiveChanged, id)
}

// Open opens the feature's window, or unminimizes, merges params into and
// activates the existing one. Unknown ids are ignored.
func (m *Manager) Open(id string, params registry.Params) bool {
	feature, ok := m.registry.Lookup(id)
	if !ok {
		return false
	}

	if _, w := m.find(id); w != nil {
		if w.IsMinimized() {
			w.State = StateOpen{}
			m.broadcast(EventWindowRestored, id)
		}
		if len(params) > 0 {
			w.Params.Merge(params)
			if receiver, ok := w.Content.(registry.ParamsReceiver); ok {
				receiver.UpdateParams(w.Params.Clone())
			}
			m.broadcast(EventParamsMerged, id)
		}
		m.setActive(id)
		m.saveOpenWindows()
		return true
	}

	w := m.newWindow(feature, params)
	m.windows = append(m.windows, w)
	m.broadcast(EventWindowOpened, id)
	m.setActive(id)
	m.saveOpenWindows()
	return true
}

// Close destroys the window. Its last committed geometry is kept for the
// next open.
func (m *Manager) Close(id string) {
	i, w := m.find(id)
	if w == nil {
		return
	}
	m.windows = append(m.windows[:i], m.windows[i+1:]...)
	if stopper, ok := w.Content.(registry.Stopper); ok {
		stopper.Stop()
	}
	m.broadcast(EventWindowClosed, id)
	if m.active == id {
		m.setActive("")
	}
	m.saveOpenWindows()
}

// ToggleMinimize flips the minimized flag. Minimizing the active window
// clears the active id; minimizing a maximized window drops maximization.
func (m *Manager) ToggleMinimize(id string) {
	_, w := m.find(id)
	if w == nil {
		return
	}
	if w.IsMinimized() {
		w.State = StateOpen{}
		m.broadcast(EventWindowRestored, id)
	} else {
		if mx, ok := w.State.(StateMaximized); ok {
			w.Geometry = mx.RestoreTo
		}
		w.preview = nil
		w.State = StateMinimized{}
		m.broadcast(EventWindowMinimized, id)
		if m.active == id {
			m.setActive("")
		}
	}
	m.saveOpenWindows()
}

// Focus makes the window active without touching its minimized flag. A
// minimized window cannot be active, so focusing one does nothing.
func (m *Manager) Focus(id string) bool {
	_, w := m.find(id)
	if w == nil || w.IsMinimized() {
		return false
	}
	m.setActive(id)
	return true
}

// ToggleMaximize switches between the stored geometry and the work area.
// Maximized state is view-only and never persisted.
func (m *Manager) ToggleMaximize(id string) {
	_, w := m.find(id)
	if w == nil {
		return
	}
	switch s := w.State.(type) {
	case StateMaximized:
		w.Geometry = s.RestoreTo
		w.State = StateOpen{}
		m.broadcast(EventWindowRestored, id)
	case StateOpen:
		w.preview = nil
		w.State = StateMaximized{RestoreTo: w.Geometry}
		m.broadcast(EventWindowMaximized, id)
	}
}

// UpdateGeometry commits a finished drag or resize and persists it.
func (m *Manager) UpdateGeometry(id string, update GeometryUpdate) {
	_, w := m.find(id)
	if w == nil || w.IsMaximized() {
		return
	}
	g := w.Geometry
	if update.Position != nil {
		g.Position = *update.Position
	}
	if update.Size != nil {
		g.Size = *update.Size
	}
	w.Geometry = m.sanitize(w, g)
	w.preview = nil
	m.geometry[id] = toRecord(w.Geometry, w.Tab)
	m.saveGeometry()
	m.broadcast(EventGeometryCommitted, id)
}

// RenameWindow changes a window's title.
func (m *Manager) RenameWindow(id, title string) {
	if _, w := m.find(id); w != nil {
		m.rename(w, title)
	}
}

func (m *Manager) rename(w *Window, title string) {
	if w.Title == title {
		return
	}
	w.Title = title
	m.broadcast(EventTitleChanged, w.ID)
}

// SetWindowTab records the last active tab of multi-tab content.
func (m *Manager) SetWindowTab(id, tab string) {
	_, w := m.find(id)
	if w == nil || w.Tab == tab {
		return
	}
	w.Tab = tab
	m.geometry[id] = toRecord(w.Geometry, tab)
	m.saveGeometry()
	m.broadcast(EventTabChanged, id)
}

// SetViewport updates the bounds used by later placements and gestures. Open
// windows keep their geometry.
func (m *Manager) SetViewport(vp Viewport) {
	if vp == m.viewport {
		return
	}
	m.viewport = vp
	m.broadcast(EventViewportChanged, "")
}

// Window returns the open window with id.
func (m *Manager) Window(id string) (*Window, bool) {
	_, w := m.find(id)
	return w, w != nil
}

// Windows returns the open windows in open order.
func (m *Manager) Windows() []*Window {
	return append([]*Window(nil), m.windows...)
}

// StackOrder returns the visible windows bottom to top: open order, with the
// active window raised.
func (m *Manager) StackOrder() []*Window {
	out := make([]*Window, 0, len(m.windows))
	var top *Window
	for _, w := range m.windows {
		if w.IsMinimized() {
			continue
		}
		if w.ID == m.active {
			top = w
			continue
		}
		out = append(out, w)
	}
	if top != nil {
		out = append(out, top)
	}
	return out
}

// Active returns the active window id, or "".
func (m *Manager) Active() string { return m.active }

// ActiveWindow returns the active window, or nil.
func (m *Manager) ActiveWindow() *Window {
	_, w := m.find(m.active)
	return w
}

// IsOpen reports whether a window for id exists.
func (m *Manager) IsOpen(id string) bool {
	_, w := m.find(id)
	return w != nil
}

// SavedGeometry returns the last committed geometry for id, open or not.
func (m *Manager) SavedGeometry(id string) (Geometry, bool) {
	rec, ok := m.geometry[id]
	if !ok {
		return Geometry{}, false
	}
	return fromRecord(rec), true
}

// Metrics returns the layout constants.
func (m *Manager) Metrics() Metrics { return m.metrics }

// Viewport returns the current viewport.
func (m *Manager) Viewport() Viewport { return m.viewport }

// Registry returns the feature registry.
func (m *Manager) Registry() *registry.Registry { return m.registry }

// Records returns the persisted layout records.
func (m *Manager) Records() *layout.Records { return m.records }

// Subscribe registers a listener for state changes.
func (m *Manager) Subscribe(listener Listener) { m.events.Subscribe(listener) }
