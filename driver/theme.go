// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/theme.go
// Summary: Colours of the terminal desktop.

package driver

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the resolved colours of every desktop element.
type Theme struct {
	Desktop        tcell.Color
	Window         tcell.Color
	Text           tcell.Color
	TitleActive    tcell.Color
	TitleInactive  tcell.Color
	Taskbar        tcell.Color
	Icon           tcell.Color
	Selection      tcell.Color
	Launcher       tcell.Color
	LauncherSelect tcell.Color
}

// DefaultTheme is a dark palette that works on 256-colour terminals.
func DefaultTheme() Theme {
	return Theme{
		Desktop:        tcell.GetColor("#1e1e2e"),
		Window:         tcell.GetColor("#313244"),
		Text:           tcell.GetColor("#cdd6f4"),
		TitleActive:    tcell.GetColor("#89b4fa"),
		TitleInactive:  tcell.GetColor("#45475a"),
		Taskbar:        tcell.GetColor("#181825"),
		Icon:           tcell.GetColor("#a6e3a1"),
		Selection:      tcell.GetColor("#f9e2af"),
		Launcher:       tcell.GetColor("#313244"),
		LauncherSelect: tcell.GetColor("#f5c2e7"),
	}
}

// ParseTheme applies colour overrides keyed by element name on top of the
// default theme. Unknown names and unparsable colours are logged and skipped.
func ParseTheme(overrides map[string]string) Theme {
	theme := DefaultTheme()
	slots := map[string]*tcell.Color{
		"desktop":         &theme.Desktop,
		"window":          &theme.Window,
		"text":            &theme.Text,
		"title_active":    &theme.TitleActive,
		"title_inactive":  &theme.TitleInactive,
		"taskbar":         &theme.Taskbar,
		"icon":            &theme.Icon,
		"selection":       &theme.Selection,
		"launcher":        &theme.Launcher,
		"launcher_select": &theme.LauncherSelect,
	}
	for name, value := range overrides {
		slot, ok := slots[name]
		if !ok {
			log.Printf("Driver: Unknown theme colour %q", name)
			continue
		}
		color := tcell.GetColor(value)
		if color == tcell.ColorDefault {
			log.Printf("Driver: Cannot parse colour %q for %s", value, name)
			continue
		}
		*slot = color
	}
	return theme
}

func (t Theme) desktop() tcell.Style {
	return tcell.StyleDefault.Background(t.Desktop).Foreground(t.Text)
}

func (t Theme) window() tcell.Style {
	return tcell.StyleDefault.Background(t.Window).Foreground(t.Text)
}

func (t Theme) title(active bool) tcell.Style {
	if active {
		return tcell.StyleDefault.Background(t.TitleActive).Foreground(t.Desktop).Bold(true)
	}
	return tcell.StyleDefault.Background(t.TitleInactive).Foreground(t.Text)
}

func (t Theme) taskbar() tcell.Style {
	return tcell.StyleDefault.Background(t.Taskbar).Foreground(t.Text)
}

func (t Theme) icon(dragging bool) tcell.Style {
	style := tcell.StyleDefault.Background(t.Desktop).Foreground(t.Icon)
	if dragging {
		style = style.Reverse(true)
	}
	return style
}

func (t Theme) selection() tcell.Style {
	return tcell.StyleDefault.Background(t.Desktop).Foreground(t.Selection)
}

func (t Theme) launcher(selected bool) tcell.Style {
	if selected {
		return tcell.StyleDefault.Background(t.LauncherSelect).Foreground(t.Desktop)
	}
	return tcell.StyleDefault.Background(t.Launcher).Foreground(t.Text)
}
