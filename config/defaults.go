// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for desktop and feature configuration files.
// Notes: Desktop metrics are in terminal cells.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"startup": []interface{}{},
	})
	cfg.RegisterDefaults("desktop", Section{
		"taskbar_height":           1,
		"mobile_breakpoint":        60,
		"mobile_top_bar":           1,
		"mobile_margin":            1,
		"min_width":                20,
		"min_height":               5,
		"title_bar_height":         1,
		"button_width":             3,
		"resize_handle_size":       1,
		"origin_x":                 4,
		"origin_y":                 2,
		"stagger":                  2,
		"auto_height":              12,
		"icon_width":               10,
		"icon_height":              3,
		"icon_cell_width":          12,
		"icon_cell_height":         4,
		"icon_margin":              1,
		"drag_threshold":           1,
		"arrange_interval_ms":      400,
		"taskbar_entry_width":      18,
		"taskbar_start_width":      8,
		"launcher_width":           32,
		"launcher_visible_results": 8,
		"min_scale":                0.75,
		"max_scale":                1.25,
	})
	cfg.RegisterDefaults("hotkeys", Section{})
	cfg.RegisterDefaults("arrange", Section{
		"clock": map[string]interface{}{"col": 0, "row": 0},
		"notes": map[string]interface{}{"col": 0, "row": 1},
		"mail":  map[string]interface{}{"col": 0, "row": 2},
	})
	cfg.RegisterDefaults("storage", Section{
		"backend": "file",
		"dir":     "",
	})
	cfg.RegisterDefaults("theme", Section{
		"desktop":         "#1e1e2e",
		"window":          "#313244",
		"text":            "#cdd6f4",
		"title_active":    "#89b4fa",
		"title_inactive":  "#45475a",
		"taskbar":         "#181825",
		"icon":            "#a6e3a1",
		"selection":       "#f9e2af",
		"launcher":        "#313244",
		"launcher_select": "#f5c2e7",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "clock":
		cfg.RegisterDefaults("clock", Section{
			"format":      "15:04:05",
			"show_date":   true,
			"date_format": "Mon Jan 2 2006",
		})
	case "notes":
		cfg.RegisterDefaults("notes", Section{
			"max_lines": 200,
		})
	case "mail":
		cfg.RegisterDefaults("mail", Section{
			"mailbox": "inbox",
		})
	}
}
