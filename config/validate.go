// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/validate.go
// Summary: Load-time checks of the desktop sections of texeldesk.json.
// Notes: Repairs are made in memory only; the user's file is never rewritten.

package config

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/framegrace/texeldesk/layout"
)

// systemDefaults is the fully backfilled built-in desktop configuration.
var systemDefaults = func() Config {
	cfg := make(Config)
	applySystemDefaults(cfg)
	return cfg
}()

// Desktop metrics that may legitimately be zero.
var zeroMetrics = map[string]bool{
	"origin_x":       true,
	"origin_y":       true,
	"stagger":        true,
	"mobile_top_bar": true,
	"mobile_margin":  true,
	"icon_margin":    true,
	"drag_threshold": true,
}

var backends = map[string]bool{
	layout.BackendMemory: true,
	layout.BackendFile:   true,
	layout.BackendDiskv:  true,
	layout.BackendSQLite: true,
}

// validateSystem repairs cfg in place and describes each repair.
func validateSystem(cfg Config) []string {
	var problems []string
	report := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	validateDesktop(cfg.Section("desktop"), report)
	validateHotkeys(cfg.Section("hotkeys"), report)
	validateArrange(cfg.Section("arrange"), report)
	validateStorage(cfg.Section("storage"), report)
	validateStartup(cfg, report)
	return problems
}

func validateDesktop(s Section, report func(string, ...interface{})) {
	if s == nil {
		return
	}
	def := systemDefaults.Section("desktop")
	for _, key := range sortedKeys(def) {
		if key == "min_scale" || key == "max_scale" {
			continue
		}
		n, ok := asInt(s[key])
		if ok && (n > 0 || n == 0 && zeroMetrics[key]) {
			continue
		}
		report("desktop.%s: %v is not a usable size, using %v", key, s[key], def[key])
		s[key] = def[key]
	}

	minScale, minOK := asFloat(s["min_scale"])
	maxScale, maxOK := asFloat(s["max_scale"])
	if !minOK || !maxOK || minScale <= 0 || maxScale < minScale {
		report("desktop: scale range %v..%v is invalid, using %v..%v",
			s["min_scale"], s["max_scale"], def["min_scale"], def["max_scale"])
		s["min_scale"] = def["min_scale"]
		s["max_scale"] = def["max_scale"]
	}

	// An icon cell smaller than its icon makes auto-arrange overlap icons.
	for _, pair := range [][2]string{{"icon_cell_width", "icon_width"}, {"icon_cell_height", "icon_height"}} {
		cell, _ := asInt(s[pair[0]])
		icon, _ := asInt(s[pair[1]])
		if cell < icon {
			report("desktop.%s: %d is smaller than %s, using %d", pair[0], cell, pair[1], icon)
			s[pair[0]] = icon
		}
	}
}

// A hotkey is a single character; "" unbinds the feature's default key.
func validateHotkeys(s Section, report func(string, ...interface{})) {
	for _, id := range sortedKeys(s) {
		key, ok := s[id].(string)
		if ok && utf8.RuneCountInString(key) <= 1 {
			continue
		}
		report("hotkeys.%s: %v is not a single key, ignored", id, s[id])
		delete(s, id)
	}
}

func validateArrange(s Section, report func(string, ...interface{})) {
	taken := make(map[[2]int]string)
	for _, id := range sortedKeys(s) {
		cell := s.cell(id)
		if cell == nil {
			report("arrange.%s: needs whole col and row >= 0, ignored", id)
			delete(s, id)
			continue
		}
		at := [2]int{cell.Col, cell.Row}
		if other, dup := taken[at]; dup {
			report("arrange.%s: cell %d,%d already holds %s, ignored", id, cell.Col, cell.Row, other)
			delete(s, id)
			continue
		}
		taken[at] = id
	}
}

func validateStorage(s Section, report func(string, ...interface{})) {
	if s == nil {
		return
	}
	backend, _ := s["backend"].(string)
	if backends[backend] {
		return
	}
	report("storage.backend: %v is not a known backend, using %s", s["backend"], layout.BackendFile)
	s["backend"] = layout.BackendFile
}

func validateStartup(cfg Config, report func(string, ...interface{})) {
	list, ok := cfg["startup"].([]interface{})
	if !ok {
		report("startup: %v is not a list, ignored", cfg["startup"])
		cfg["startup"] = []interface{}{}
		return
	}
	kept := make([]interface{}, 0, len(list))
	for _, item := range list {
		if id, ok := item.(string); ok && id != "" {
			kept = append(kept, id)
			continue
		}
		report("startup: %v is not a feature id, ignored", item)
	}
	cfg["startup"] = kept
}

func sortedKeys(s Section) []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
