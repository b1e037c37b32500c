// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/input.go
// Summary: Translates tcell mouse and key events into desktop input.

package driver

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/wm"
)

// pointerState turns tcell's button masks into down/move/up transitions.
type pointerState struct {
	primary   bool
	secondary bool
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := wm.Point{X: x, Y: y}
	buttons := ev.Buttons()

	primary := buttons&tcell.ButtonPrimary != 0
	switch {
	case primary && !d.pointer.primary:
		d.pointer.primary = true
		hit := d.desk.HandlePointer(wm.PointerEvent{Kind: wm.PointerDown, Pos: p})
		if hit.Kind == wm.HitWindowBody {
			d.clickContent(hit.WindowID, p)
		}
	case primary:
		d.desk.HandlePointer(wm.PointerEvent{Kind: wm.PointerMove, Pos: p})
	case d.pointer.primary:
		d.pointer.primary = false
		d.desk.HandlePointer(wm.PointerEvent{Kind: wm.PointerUp, Pos: p})
	}

	secondary := buttons&tcell.ButtonSecondary != 0
	if secondary && !d.pointer.secondary {
		d.desk.ContextMenu(p)
	}
	d.pointer.secondary = secondary
}

func (d *Driver) clickContent(id string, p wm.Point) {
	m := d.desk.Manager()
	w, ok := m.Window(id)
	if !ok {
		return
	}
	clicker, ok := w.Content.(Clicker)
	if !ok {
		return
	}
	body := wm.Body(w.Frame(m.Metrics(), m.Viewport()), m.Metrics())
	clicker.Click(p.X-body.Left, p.Y-body.Top)
}

// translateKey maps a tcell key to the desktop's key classes. Ctrl+Space and
// F1 toggle the launcher.
func translateKey(ev *tcell.EventKey) wm.KeyEvent {
	out := wm.KeyEvent{
		Key:      wm.KeyOther,
		Modified: ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0,
	}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = wm.KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = wm.KeyEscape
	case tcell.KeyEnter:
		out.Key = wm.KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = wm.KeyBackspace
	case tcell.KeyUp:
		out.Key = wm.KeyUp
	case tcell.KeyDown:
		out.Key = wm.KeyDown
	case tcell.KeyCtrlSpace, tcell.KeyF1:
		out.Key = wm.KeyLauncher
	}
	return out
}

// handleKey offers a key to the desktop first, then to the active content.
func (d *Driver) handleKey(ev *tcell.EventKey) {
	content := d.activeContent()
	kev := translateKey(ev)
	if capturer, ok := content.(InputCapturer); ok {
		kev.InputFocused = capturer.CapturesInput()
	}
	if d.desk.HandleKey(kev) {
		return
	}
	if handler, ok := content.(KeyHandler); ok {
		handler.HandleKey(ev)
	}
}

func (d *Driver) handlePaste(data []byte) {
	if handler, ok := d.activeContent().(PasteHandler); ok {
		handler.HandlePaste(data)
	}
}

func (d *Driver) activeContent() interface{} {
	if w := d.desk.Manager().ActiveWindow(); w != nil {
		return w.Content
	}
	return nil
}
