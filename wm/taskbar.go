// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/taskbar.go
// Summary: Taskbar entries and the minimize/restore/focus toggle.

package wm

// TaskbarEntry is one open window on the taskbar.
type TaskbarEntry struct {
	ID        string
	Title     string
	Minimized bool
	Active    bool
	Rect      Rect
}

// StartButton is the launcher button at the left end of the taskbar.
func (d *Desktop) StartButton() Rect {
	mt, vp := d.manager.metrics, d.manager.viewport
	bar := mt.Taskbar(vp)
	return Rect{Left: bar.Left, Top: bar.Top, Width: min(mt.TaskbarStartWidth, vp.Width), Height: bar.Height}
}

// TaskbarEntries lists every open window, minimized or not, in open order.
// Entries shrink evenly when they do not fit at full width.
func (d *Desktop) TaskbarEntries() []TaskbarEntry {
	mt, vp := d.manager.metrics, d.manager.viewport
	windows := d.manager.windows
	if len(windows) == 0 {
		return nil
	}
	start := d.StartButton()
	avail := vp.Width - start.Width
	width := mt.TaskbarEntryWidth
	if width*len(windows) > avail {
		width = max(1, avail/len(windows))
	}

	out := make([]TaskbarEntry, 0, len(windows))
	for i, w := range windows {
		out = append(out, TaskbarEntry{
			ID:        w.ID,
			Title:     w.Title,
			Minimized: w.IsMinimized(),
			Active:    w.ID == d.manager.active,
			Rect:      Rect{Left: start.Right() + i*width, Top: start.Top, Width: width, Height: start.Height},
		})
	}
	return out
}

// ClickTaskbar restores and focuses a minimized window, minimizes the active
// window, and focuses any other.
func (d *Desktop) ClickTaskbar(id string) {
	m := d.manager
	w, ok := m.Window(id)
	if !ok {
		return
	}
	switch {
	case w.IsMinimized():
		m.ToggleMinimize(id)
		m.Focus(id)
	case m.active == id:
		m.ToggleMinimize(id)
	default:
		m.Focus(id)
	}
}
