// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/launcher.go
// Summary: Launcher overlay with fuzzy feature search.
// Notes: The launcher is the modal-like overlay Escape dismisses before any
// window.

package wm

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/framegrace/texeldesk/registry"
)

// featureSource adapts visible features to fuzzy.Source, matching on title.
type featureSource []*registry.Feature

func (s featureSource) String(i int) string { return s[i].Title }
func (s featureSource) Len() int            { return len(s) }

// Launcher is the feature search overlay.
type Launcher struct {
	m        *Manager
	open     bool
	query    string
	results  []*registry.Feature
	selected int
}

func newLauncher(m *Manager) *Launcher {
	return &Launcher{m: m}
}

// IsOpen reports whether the overlay is shown.
func (l *Launcher) IsOpen() bool { return l.open }

// Open shows the overlay with an empty query.
func (l *Launcher) Open() {
	if l.open {
		return
	}
	l.open = true
	l.setQuery("")
}

// Close hides the overlay.
func (l *Launcher) Close() {
	if !l.open {
		return
	}
	l.open = false
	l.query = ""
	l.results = nil
	l.selected = 0
	l.m.broadcast(EventLauncherChanged, "")
}

// Toggle opens or closes the overlay.
func (l *Launcher) Toggle() {
	if l.open {
		l.Close()
	} else {
		l.Open()
	}
}

// Query returns the current search text.
func (l *Launcher) Query() string { return l.query }

// Results returns the matching features, best first.
func (l *Launcher) Results() []*registry.Feature {
	return append([]*registry.Feature(nil), l.results...)
}

// Selected returns the highlighted result index.
func (l *Launcher) Selected() int { return l.selected }

// SetQuery replaces the search text.
func (l *Launcher) SetQuery(q string) {
	if !l.open {
		return
	}
	l.setQuery(q)
}

func (l *Launcher) setQuery(q string) {
	l.query = q
	l.results = l.search(q)
	l.selected = 0
	l.m.broadcast(EventLauncherChanged, "")
}

// search ranks visible features against q. Title prefix matches come first,
// then fuzzy score; an empty query lists everything in registry order.
func (l *Launcher) search(q string) []*registry.Feature {
	visible := featureSource(l.m.registry.Visible())
	if q == "" {
		return visible
	}
	matches := fuzzy.FindFrom(q, visible)
	lower := strings.ToLower(q)
	sort.SliceStable(matches, func(i, j int) bool {
		pi := strings.HasPrefix(strings.ToLower(matches[i].Str), lower)
		pj := strings.HasPrefix(strings.ToLower(matches[j].Str), lower)
		if pi != pj {
			return pi
		}
		return matches[i].Score > matches[j].Score
	})
	out := make([]*registry.Feature, 0, len(matches))
	for _, match := range matches {
		out = append(out, visible[match.Index])
	}
	return out
}

// Launch opens the feature at index and closes the overlay.
func (l *Launcher) Launch(index int) bool {
	if index < 0 || index >= len(l.results) {
		return false
	}
	id := l.results[index].ID
	l.Close()
	return l.m.Open(id, nil)
}

// HandleKey consumes a key while the overlay is open.
func (l *Launcher) HandleKey(ev KeyEvent) bool {
	if !l.open {
		return false
	}
	switch ev.Key {
	case KeyEscape, KeyLauncher:
		l.Close()
	case KeyEnter:
		l.Launch(l.selected)
	case KeyUp:
		if l.selected > 0 {
			l.selected--
			l.m.broadcast(EventLauncherChanged, "")
		}
	case KeyDown:
		if l.selected < len(l.results)-1 {
			l.selected++
			l.m.broadcast(EventLauncherChanged, "")
		}
	case KeyBackspace:
		if r := []rune(l.query); len(r) > 0 {
			l.setQuery(string(r[:len(r)-1]))
		}
	case KeyRune:
		if ev.Rune != 0 {
			l.setQuery(l.query + string(ev.Rune))
		}
	}
	return true
}

// Rect is the overlay frame: a search row plus the visible results, sitting
// above the taskbar at its left edge.
func (l *Launcher) Rect() Rect {
	mt, vp := l.m.metrics, l.m.viewport
	rows := 1 + min(len(l.results), mt.LauncherVisibleResults)
	h := rows * mt.TitleBarHeight
	bar := mt.Taskbar(vp)
	return Rect{Left: 0, Top: max(0, bar.Top-h), Width: min(mt.LauncherWidth, vp.Width), Height: h}
}

// ResultRect is the row of the index-th visible result.
func (l *Launcher) ResultRect(index int) Rect {
	r := l.Rect()
	row := l.m.metrics.TitleBarHeight
	return Rect{Left: r.Left, Top: r.Top + (index+1)*row, Width: r.Width, Height: row}
}

// resultAt returns the result index under p.
func (l *Launcher) resultAt(p Point) int {
	n := min(len(l.results), l.m.metrics.LauncherVisibleResults)
	for i := 0; i < n; i++ {
		if l.ResultRect(i).Contains(p) {
			return i
		}
	}
	return -1
}
