// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/desktop.go
// Summary: Typed views of the desktop sections for the window manager.

package config

import (
	"path/filepath"

	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/wm"
)

// Metrics builds window manager metrics from the "desktop" section. Missing
// keys keep the cell defaults.
func (c Config) Metrics() wm.Metrics {
	const s = "desktop"
	d := systemDefaults
	def := func(key string) int { return d.GetInt(s, key, 0) }
	get := func(key string) int { return c.GetInt(s, key, def(key)) }

	return wm.Metrics{
		TaskbarHeight:          get("taskbar_height"),
		MobileBreakpoint:       get("mobile_breakpoint"),
		MobileTopBar:           get("mobile_top_bar"),
		MobileMargin:           get("mobile_margin"),
		MinWidth:               get("min_width"),
		MinHeight:              get("min_height"),
		TitleBarHeight:         get("title_bar_height"),
		ButtonWidth:            get("button_width"),
		ResizeHandleSize:       get("resize_handle_size"),
		OriginX:                get("origin_x"),
		OriginY:                get("origin_y"),
		Stagger:                get("stagger"),
		AutoHeight:             get("auto_height"),
		IconWidth:              get("icon_width"),
		IconHeight:             get("icon_height"),
		IconCellWidth:          get("icon_cell_width"),
		IconCellHeight:         get("icon_cell_height"),
		IconMargin:             get("icon_margin"),
		DragThreshold:          get("drag_threshold"),
		ArrangeInterval:        c.GetDuration(s, "arrange_interval_ms", d.GetDuration(s, "arrange_interval_ms", 0)),
		TaskbarEntryWidth:      get("taskbar_entry_width"),
		TaskbarStartWidth:      get("taskbar_start_width"),
		LauncherWidth:          get("launcher_width"),
		LauncherVisibleResults: get("launcher_visible_results"),
		MinScale:               c.GetFloat(s, "min_scale", d.GetFloat(s, "min_scale", 1)),
		MaxScale:               c.GetFloat(s, "max_scale", d.GetFloat(s, "max_scale", 1)),
	}
}

// Hotkeys returns the feature id to key overrides.
func (c Config) Hotkeys() map[string]string {
	return c.GetStringMap("hotkeys")
}

// ArrangeTemplate returns the curated auto-arrange grid. Entries without a
// usable column and row are skipped; System() has already reported them.
func (c Config) ArrangeTemplate() map[string]wm.GridCell {
	section := c.Section("arrange")
	out := make(map[string]wm.GridCell, len(section))
	for id := range section {
		cell := section.cell(id)
		if cell == nil {
			continue
		}
		out[id] = *cell
	}
	return out
}

func (s Section) cell(key string) *wm.GridCell {
	raw, ok := s[key].(map[string]interface{})
	if !ok {
		return nil
	}
	entry := Config{"cell": raw}
	col := entry.GetInt("cell", "col", -1)
	row := entry.GetInt("cell", "row", -1)
	if col < 0 || row < 0 {
		return nil
	}
	return &wm.GridCell{Col: col, Row: row}
}

// Storage returns the layout store backend and directory. An empty directory
// means <config dir>/layout.
func (c Config) Storage() (backend, dir string) {
	backend = c.GetString("storage", "backend", layout.BackendFile)
	dir = c.GetString("storage", "dir", "")
	if dir == "" {
		if root, err := Dir(); err == nil {
			dir = filepath.Join(root, "layout")
		}
	}
	return backend, dir
}

// Startup lists the features to open when no layout was saved.
func (c Config) Startup() []string {
	return c.GetStringSlice("startup")
}

// Theme returns the colour overrides of the terminal driver.
func (c Config) Theme() map[string]string {
	return c.GetStringMap("theme")
}
