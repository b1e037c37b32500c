// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/desktop.go
// Summary: Desktop surface routing pointer and key input.
// Usage: Hosts create one Desktop and feed it PointerEvent and KeyEvent
// values from their event loop, then draw what it reports.

package wm

import (
	"log"

	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
)

// HitKind names the region under a point.
type HitKind int

const (
	HitDesktop HitKind = iota
	HitLauncher
	HitLauncherResult
	HitStartButton
	HitTaskbar
	HitTaskbarEntry
	HitWindowButton
	HitResizeHandle
	HitTitleBar
	HitWindowBody
	HitIcon
)

// Hit is the result of a hit test, topmost region first.
type Hit struct {
	Kind      HitKind
	WindowID  string
	FeatureID string
	Button    Button
	Index     int
}

// Desktop ties the window manager to icons, taskbar, hotkeys, the launcher
// and the gesture dispatcher.
type Desktop struct {
	manager  *Manager
	icons    *Icons
	hotkeys  *HotkeyRouter
	launcher *Launcher
	gestures GestureDispatcher

	selection *selectionBox
}

// NewDesktop builds the manager from the persisted layout and binds feature
// hotkeys, applying opts.Hotkeys overrides on top.
func NewDesktop(reg *registry.Registry, store layout.Store, opts Options) *Desktop {
	opts = opts.withDefaults()
	m := NewManager(reg, store, opts)
	d := &Desktop{
		manager:  m,
		icons:    newIcons(m, opts.ArrangeTemplate, opts.Now),
		hotkeys:  NewHotkeyRouter(),
		launcher: newLauncher(m),
	}
	for _, f := range reg.Features() {
		if f.Hotkey == "" {
			continue
		}
		if err := d.hotkeys.Bind(f.ID, f.Hotkey); err != nil {
			log.Printf("Desktop: %v", err)
		}
	}
	for id, key := range opts.Hotkeys {
		if _, ok := reg.Lookup(id); !ok {
			log.Printf("Desktop: Hotkey override for unknown feature %q", id)
			continue
		}
		if err := d.hotkeys.Bind(id, key); err != nil {
			log.Printf("Desktop: %v", err)
		}
	}
	return d
}

// Manager returns the window manager.
func (d *Desktop) Manager() *Manager { return d.manager }

// Icons returns the desktop icon layout.
func (d *Desktop) Icons() *Icons { return d.icons }

// Hotkeys returns the hotkey router.
func (d *Desktop) Hotkeys() *HotkeyRouter { return d.hotkeys }

// Launcher returns the launcher overlay.
func (d *Desktop) Launcher() *Launcher { return d.launcher }

// Gesture returns the in-flight gesture, or nil.
func (d *Desktop) Gesture() Gesture { return d.gestures.Current() }

// SelectionRect returns the marquee rectangle while a selection is drawn.
func (d *Desktop) SelectionRect() (Rect, bool) {
	if d.selection == nil {
		return Rect{}, false
	}
	return d.selection.Rect(), true
}

// SetViewport forwards a host resize to the manager.
func (d *Desktop) SetViewport(vp Viewport) { d.manager.SetViewport(vp) }

// HitTest finds the topmost region under p: launcher, taskbar, windows from
// the top of the stack, icons, then the bare desktop.
func (d *Desktop) HitTest(p Point) Hit {
	m := d.manager
	mt, vp := m.metrics, m.viewport

	if d.launcher.IsOpen() && d.launcher.Rect().Contains(p) {
		if i := d.launcher.resultAt(p); i >= 0 {
			return Hit{Kind: HitLauncherResult, Index: i}
		}
		return Hit{Kind: HitLauncher}
	}

	if mt.Taskbar(vp).Contains(p) {
		if d.StartButton().Contains(p) {
			return Hit{Kind: HitStartButton}
		}
		for i, e := range d.TaskbarEntries() {
			if e.Rect.Contains(p) {
				return Hit{Kind: HitTaskbarEntry, WindowID: e.ID, Index: i}
			}
		}
		return Hit{Kind: HitTaskbar}
	}

	stack := m.StackOrder()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		frame := w.Frame(mt, vp)
		if !frame.Contains(p) {
			continue
		}
		for _, b := range []Button{ButtonClose, ButtonMaximize, ButtonMinimize} {
			if ButtonRect(frame, b, mt).Contains(p) {
				return Hit{Kind: HitWindowButton, WindowID: w.ID, Button: b}
			}
		}
		if !w.IsMaximized() && ResizeHandle(frame, mt).Contains(p) {
			return Hit{Kind: HitResizeHandle, WindowID: w.ID}
		}
		if titleBar(frame, mt).Contains(p) {
			return Hit{Kind: HitTitleBar, WindowID: w.ID}
		}
		return Hit{Kind: HitWindowBody, WindowID: w.ID}
	}

	if f := d.icons.hit(p); f != nil {
		return Hit{Kind: HitIcon, FeatureID: f.ID}
	}
	return Hit{Kind: HitDesktop}
}

// HandlePointer routes one pointer sample and returns the hit for a
// pointer-down. While a gesture is in flight, further downs are ignored and
// moves and ups belong to it.
func (d *Desktop) HandlePointer(ev PointerEvent) Hit {
	switch ev.Kind {
	case PointerMove:
		d.gestures.Move(ev.Pos)
		return Hit{}
	case PointerUp:
		d.gestures.End(ev.Pos)
		return Hit{}
	}

	if d.gestures.Active() {
		return Hit{}
	}
	hit := d.HitTest(ev.Pos)
	if d.launcher.IsOpen() {
		switch hit.Kind {
		case HitLauncher, HitLauncherResult, HitStartButton:
		default:
			d.launcher.Close()
			return hit
		}
	}
	d.pointerDown(hit, ev.Pos)
	return hit
}

func (d *Desktop) pointerDown(hit Hit, p Point) {
	m := d.manager
	switch hit.Kind {
	case HitLauncherResult:
		d.launcher.Launch(hit.Index)
	case HitStartButton:
		d.launcher.Toggle()
	case HitTaskbarEntry:
		d.ClickTaskbar(hit.WindowID)
	case HitWindowButton:
		switch hit.Button {
		case ButtonClose:
			m.Close(hit.WindowID)
		case ButtonMinimize:
			m.ToggleMinimize(hit.WindowID)
		case ButtonMaximize:
			m.Focus(hit.WindowID)
			m.ToggleMaximize(hit.WindowID)
		}
	case HitResizeHandle:
		m.Focus(hit.WindowID)
		w, _ := m.Window(hit.WindowID)
		d.gestures.Begin(newWindowResize(m, w, p))
	case HitTitleBar:
		m.Focus(hit.WindowID)
		if w, _ := m.Window(hit.WindowID); !w.IsMaximized() {
			d.gestures.Begin(newWindowDrag(m, w, p))
		}
	case HitWindowBody:
		m.Focus(hit.WindowID)
	case HitIcon:
		d.gestures.Begin(newIconDrag(d.icons, hit.FeatureID, p))
	case HitDesktop:
		d.selection = &selectionBox{d: d, anchor: p, current: p}
		d.gestures.Begin(d.selection)
	}
}

// ContextMenu handles a secondary click. On the bare desktop it counts
// toward the auto-arrange double trigger.
func (d *Desktop) ContextMenu(p Point) bool {
	if d.gestures.Active() || d.HitTest(p).Kind != HitDesktop {
		return false
	}
	return d.icons.ContextTrigger()
}

// HandleKey routes a global keydown and reports whether it was consumed.
// The launcher sees keys first; with a text input focused nothing else
// fires. Escape closes the active window.
func (d *Desktop) HandleKey(ev KeyEvent) bool {
	if d.launcher.HandleKey(ev) {
		return true
	}
	if ev.InputFocused {
		return false
	}
	m := d.manager
	switch ev.Key {
	case KeyEscape:
		if id := m.Active(); id != "" {
			m.Close(id)
			return true
		}
	case KeyLauncher:
		d.launcher.Open()
		return true
	case KeyRune:
		if ev.Modified {
			return false
		}
		id, ok := d.hotkeys.Resolve(ev.Rune)
		if !ok {
			return false
		}
		if w, open := m.Window(id); open && m.Active() == id && !w.IsMinimized() {
			m.Close(id)
		} else {
			m.Open(id, nil)
		}
		return true
	}
	return false
}
