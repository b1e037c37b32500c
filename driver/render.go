// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/render.go
// Summary: Draws the desktop, icons, windows, taskbar and overlays to a
// screen.
// Notes: Painter's order: desktop, icons, windows bottom to top, selection
// box, taskbar, launcher.

package driver

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldesk/wm"
)

type labelKey struct {
	text  string
	width int
}

// Renderer paints a wm.Desktop onto a ScreenDriver.
type Renderer struct {
	screen ScreenDriver
	theme  Theme
	labels *lru.Cache[labelKey, string]
}

// NewRenderer creates a renderer with a bounded label cache.
func NewRenderer(screen ScreenDriver, theme Theme) *Renderer {
	labels, _ := lru.New[labelKey, string](512)
	return &Renderer{screen: screen, theme: theme, labels: labels}
}

// label truncates text to width cells, memoized since titles rarely change
// between frames.
func (r *Renderer) label(text string, width int) string {
	if width <= 0 {
		return ""
	}
	key := labelKey{text: text, width: width}
	if s, ok := r.labels.Get(key); ok {
		return s
	}
	s := runewidth.Truncate(text, width, "…")
	r.labels.Add(key, s)
	return s
}

func (r *Renderer) fill(rect wm.Rect, ch rune, style tcell.Style) {
	for y := rect.Top; y < rect.Bottom(); y++ {
		for x := rect.Left; x < rect.Right(); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// text writes s at x, y without exceeding limit cells and returns the cells
// used.
func (r *Renderer) text(x, y, limit int, s string, style tcell.Style) int {
	used := 0
	for _, ch := range r.label(s, limit) {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.screen.SetContent(x+used, y, ch, nil, style)
		if w == 2 {
			r.screen.SetContent(x+used+1, y, ' ', nil, style)
		}
		used += w
	}
	return used
}

// Draw paints one full frame.
func (r *Renderer) Draw(d *wm.Desktop) {
	m := d.Manager()
	vp := m.Viewport()
	r.fill(wm.Rect{Width: vp.Width, Height: vp.Height}, ' ', r.theme.desktop())

	r.drawIcons(d)
	for _, w := range m.StackOrder() {
		r.drawWindow(d, w)
	}
	if sel, ok := d.SelectionRect(); ok {
		r.drawSelection(sel)
	}
	r.drawTaskbar(d)
	if d.Launcher().IsOpen() {
		r.drawLauncher(d)
	}
	r.screen.Show()
}

func (r *Renderer) drawIcons(d *wm.Desktop) {
	for _, p := range d.Icons().Placements() {
		style := r.theme.icon(p.Dragging)
		glyph := p.Feature.Icon
		if glyph == "" {
			glyph = "[" + strings.ToUpper(firstRune(p.Feature.Title)) + "]"
		}
		rect := p.Rect
		r.centered(rect.Left, rect.Top, rect.Width, glyph, style)
		if rect.Height > 1 {
			r.centered(rect.Left, rect.Top+1, rect.Width, p.Feature.Title, style)
		}
		if rect.Height > 2 {
			if k, ok := d.Hotkeys().Binding(p.Feature.ID); ok {
				r.centered(rect.Left, rect.Top+2, rect.Width, "("+string(k)+")", style.Dim(true))
			}
		}
	}
}

func (r *Renderer) centered(left, y, width int, s string, style tcell.Style) {
	s = r.label(s, width)
	x := left + (width-runewidth.StringWidth(s))/2
	r.text(x, y, width, s, style)
}

func firstRune(s string) string {
	for _, ch := range s {
		return string(ch)
	}
	return "?"
}

func (r *Renderer) drawWindow(d *wm.Desktop, w *wm.Window) {
	m := d.Manager()
	mt, vp := m.Metrics(), m.Viewport()
	frame := w.Frame(mt, vp)
	active := m.Active() == w.ID

	title := wm.Rect{Left: frame.Left, Top: frame.Top, Width: frame.Width, Height: mt.TitleBarHeight}
	titleStyle := r.theme.title(active)
	r.fill(title, ' ', titleStyle)
	r.text(frame.Left+1, frame.Top, frame.Width-3*mt.ButtonWidth-1, w.Title, titleStyle)

	buttons := []struct {
		b     wm.Button
		glyph string
	}{
		{wm.ButtonMinimize, "_"},
		{wm.ButtonMaximize, "□"},
		{wm.ButtonClose, "x"},
	}
	if w.IsMaximized() {
		buttons[1].glyph = "❐"
	}
	for _, btn := range buttons {
		rect := wm.ButtonRect(frame, btn.b, mt)
		r.centered(rect.Left, rect.Top, rect.Width, btn.glyph, titleStyle)
	}

	body := wm.Body(frame, mt)
	bodyStyle := r.theme.window()
	r.fill(body, ' ', bodyStyle)
	if content, ok := w.Content.(Renderable); ok {
		canvas := newCanvas(r.screen, body, mt.WorkArea(vp), bodyStyle)
		canvas.Scale = w.FontScale(mt, vp)
		canvas.Active = active
		content.Draw(canvas)
	} else if body.Height > 0 {
		r.centered(body.Left, body.Top+body.Height/2, body.Width, w.Title, bodyStyle.Dim(true))
	}

	if !w.IsMaximized() {
		handle := wm.ResizeHandle(frame, mt)
		r.screen.SetContent(handle.Right()-1, handle.Bottom()-1, '◢', nil, bodyStyle)
	}
}

func (r *Renderer) drawSelection(sel wm.Rect) {
	if sel.Width <= 0 || sel.Height <= 0 {
		return
	}
	style := r.theme.selection()
	right, bottom := sel.Right()-1, sel.Bottom()-1
	for x := sel.Left; x <= right; x++ {
		r.screen.SetContent(x, sel.Top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := sel.Top; y <= bottom; y++ {
		r.screen.SetContent(sel.Left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(sel.Left, sel.Top, '┌', nil, style)
	r.screen.SetContent(right, sel.Top, '┐', nil, style)
	r.screen.SetContent(sel.Left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawTaskbar(d *wm.Desktop) {
	m := d.Manager()
	bar := m.Metrics().Taskbar(m.Viewport())
	style := r.theme.taskbar()
	r.fill(bar, ' ', style)

	start := d.StartButton()
	startStyle := style.Bold(true)
	if d.Launcher().IsOpen() {
		startStyle = startStyle.Reverse(true)
	}
	r.fill(start, ' ', startStyle)
	r.text(start.Left+1, start.Top, start.Width-1, "☰ Start", startStyle)

	for _, e := range d.TaskbarEntries() {
		entryStyle := style
		title := e.Title
		switch {
		case e.Active:
			entryStyle = style.Reverse(true)
		case e.Minimized:
			entryStyle = style.Dim(true)
			title = "_" + title
		}
		r.fill(e.Rect, ' ', entryStyle)
		r.text(e.Rect.Left+1, e.Rect.Top, e.Rect.Width-2, title, entryStyle)
	}
}

func (r *Renderer) drawLauncher(d *wm.Desktop) {
	l := d.Launcher()
	box := l.Rect()
	r.fill(box, ' ', r.theme.launcher(false))
	r.text(box.Left+1, box.Top, box.Width-2, "> "+l.Query()+"▏", r.theme.launcher(false).Bold(true))

	visible := d.Manager().Metrics().LauncherVisibleResults
	for i, f := range l.Results() {
		if i >= visible {
			break
		}
		row := l.ResultRect(i)
		style := r.theme.launcher(i == l.Selected())
		r.fill(row, ' ', style)
		label := f.Title
		if f.Icon != "" {
			label = f.Icon + " " + label
		}
		r.text(row.Left+2, row.Top, row.Width-3, label, style)
	}
}
