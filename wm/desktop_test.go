// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package wm

import (
	"testing"
	"time"

	"github.com/framegrace/texeldesk/layout"
)

func TestIconClickOpensFeature(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)

	if hit := pointer(d, PointerDown, 20, 20); hit.Kind != HitIcon || hit.FeatureID != "mail" {
		t.Fatalf("expected mail icon, got %+v", hit)
	}
	pointer(d, PointerMove, 25, 20)
	pointer(d, PointerUp, 25, 20)

	if !d.Manager().IsOpen("mail") {
		t.Fatalf("click within the threshold should open mail")
	}
	if p := d.Icons().Position("mail"); p != (Point{X: 16, Y: 16}) {
		t.Fatalf("icon moved to %+v", p)
	}
}

func TestIconDragMovesIcon(t *testing.T) {
	store := layout.NewMemoryStore()
	d := newTestDesktop(t, store, desktopViewport)

	drag(d, 20, 120, 320, 420)

	if d.Manager().IsOpen("notes") {
		t.Fatalf("dragging an icon must not open it")
	}
	if p := d.Icons().Position("notes"); p != (Point{X: 316, Y: 416}) {
		t.Fatalf("notes icon at %+v", p)
	}
	saved := d.Manager().Records().IconLayout()
	if saved["notes"] != (layout.Point{X: 316, Y: 416}) {
		t.Fatalf("icon layout not persisted: %+v", saved)
	}
}

func TestIconDragClampsBelowMobileTopBar(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), Viewport{Width: 600, Height: 800})
	if p := d.Icons().Position("mail"); p != (Point{X: 16, Y: 72}) {
		t.Fatalf("mobile default position %+v", p)
	}

	drag(d, 20, 80, 20, -400)

	if p := d.Icons().Position("mail"); p != (Point{X: 16, Y: 56}) {
		t.Fatalf("expected icon under the top bar, got %+v", p)
	}
}

func TestAutoArrangeOnDoubleTrigger(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	d := NewDesktop(testRegistry(t), layout.NewMemoryStore(), Options{
		Viewport:        desktopViewport,
		Now:             clock.Now,
		ArrangeTemplate: map[string]GridCell{"clock": {Col: 0, Row: 0}, "mail": {Col: 0, Row: 1}},
	})
	d.Icons().Move("mail", Point{X: 600, Y: 300})

	empty := Point{X: 500, Y: 300}
	if d.ContextMenu(empty) {
		t.Fatalf("a single trigger must not arrange")
	}
	clock.Advance(time.Second)
	if d.ContextMenu(empty) {
		t.Fatalf("triggers a second apart must not arrange")
	}
	clock.Advance(200 * time.Millisecond)
	if !d.ContextMenu(empty) {
		t.Fatalf("expected the double trigger to arrange")
	}

	want := map[string]Point{
		"clock": {X: 16, Y: 16},
		"mail":  {X: 16, Y: 116},
		"notes": {X: 112, Y: 16},
	}
	for id, p := range want {
		if got := d.Icons().Position(id); got != p {
			t.Fatalf("%s at %+v, want %+v", id, got, p)
		}
	}
	if n := len(d.Manager().Records().IconLayout()); n != 3 {
		t.Fatalf("expected the whole layout persisted, got %d entries", n)
	}
}

func TestContextMenuOverWindowIsIgnored(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	d.Manager().Open("mail", nil)
	if d.ContextMenu(Point{X: 100, Y: 100}) || d.ContextMenu(Point{X: 100, Y: 100}) {
		t.Fatalf("context trigger over a window counted toward arrange")
	}
}

func TestTaskbarClickCycle(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	m := d.Manager()
	m.Open("mail", nil)
	m.Open("notes", nil)

	entries := d.TaskbarEntries()
	if len(entries) != 2 || entries[0].ID != "mail" || !entries[1].Active {
		t.Fatalf("unexpected taskbar entries %+v", entries)
	}
	mailEntry := entries[0].Rect
	click := func() {
		pointer(d, PointerDown, mailEntry.Left+2, mailEntry.Top+2)
		pointer(d, PointerUp, mailEntry.Left+2, mailEntry.Top+2)
	}

	click()
	if m.Active() != "mail" {
		t.Fatalf("first click should focus mail, active=%q", m.Active())
	}
	click()
	if w, _ := m.Window("mail"); !w.IsMinimized() || m.Active() != "" {
		t.Fatalf("second click should minimize mail")
	}
	if e := d.TaskbarEntries()[0]; !e.Minimized {
		t.Fatalf("minimized window missing from the taskbar")
	}
	click()
	if w, _ := m.Window("mail"); w.IsMinimized() || m.Active() != "mail" {
		t.Fatalf("third click should restore and focus mail")
	}
}

func TestHotkeyTogglesActiveWindow(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	m := d.Manager()
	m.Open("mail", nil)
	drag(d, 100, 60, 150, 90)

	if !d.HandleKey(keyRune('m')) || m.IsOpen("mail") {
		t.Fatalf("hotkey should close the active mail window")
	}
	if !d.HandleKey(keyRune('m')) || !m.IsOpen("mail") {
		t.Fatalf("hotkey should reopen mail")
	}
	w, _ := m.Window("mail")
	if w.Geometry.Position != (Point{X: 100, Y: 80}) {
		t.Fatalf("mail reopened at %+v, want last persisted geometry", w.Geometry.Position)
	}
}

func TestHotkeyOpensWhenNotActive(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	m := d.Manager()
	m.Open("mail", nil)
	m.Open("notes", nil)

	d.HandleKey(keyRune('M'))
	if !m.IsOpen("mail") || m.Active() != "mail" {
		t.Fatalf("hotkey on an inactive window should focus it, active=%q", m.Active())
	}

	m.ToggleMinimize("notes")
	d.HandleKey(keyRune('n'))
	if w, _ := m.Window("notes"); w.IsMinimized() || m.Active() != "notes" {
		t.Fatalf("hotkey should restore a minimized window")
	}
}

func TestHotkeysSuppressed(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	m := d.Manager()

	if d.HandleKey(KeyEvent{Key: KeyRune, Rune: 'm', InputFocused: true}) || m.IsOpen("mail") {
		t.Fatalf("hotkey fired while an input was focused")
	}
	if d.HandleKey(KeyEvent{Key: KeyRune, Rune: 'm', Modified: true}) || m.IsOpen("mail") {
		t.Fatalf("hotkey fired with a modifier held")
	}
	if d.HandleKey(keyRune('z')) {
		t.Fatalf("unbound key consumed")
	}
}

func TestHotkeyOverrides(t *testing.T) {
	d := NewDesktop(testRegistry(t), layout.NewMemoryStore(), Options{
		Viewport: desktopViewport,
		Hotkeys:  map[string]string{"mail": "", "clock": "n"},
	})
	if _, ok := d.Hotkeys().Resolve('m'); ok {
		t.Fatalf("mail hotkey should be unbound")
	}
	if id, _ := d.Hotkeys().Resolve('n'); id != "clock" {
		t.Fatalf("n bound to %q, want clock", id)
	}
	if _, ok := d.Hotkeys().Binding("notes"); ok {
		t.Fatalf("notes kept a key that moved to clock")
	}
	if err := d.Hotkeys().Bind("notes", "ab"); err == nil {
		t.Fatalf("expected an error for a multi-key binding")
	}
}

func TestEscapeClosesOverlayFirst(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	m := d.Manager()
	m.Open("mail", nil)
	d.HandleKey(KeyEvent{Key: KeyLauncher})

	esc := KeyEvent{Key: KeyEscape}
	d.HandleKey(esc)
	if d.Launcher().IsOpen() || !m.IsOpen("mail") {
		t.Fatalf("first escape should only close the launcher")
	}
	d.HandleKey(esc)
	if m.IsOpen("mail") {
		t.Fatalf("second escape should close the active window")
	}
	if d.HandleKey(esc) {
		t.Fatalf("escape with nothing to close was consumed")
	}
}

func TestLauncherSearchAndLaunch(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	l := d.Launcher()

	d.HandleKey(KeyEvent{Key: KeyLauncher})
	if !l.IsOpen() || len(l.Results()) != 3 {
		t.Fatalf("expected all features listed, got %d", len(l.Results()))
	}
	for _, r := range "mai" {
		d.HandleKey(keyRune(r))
	}
	if res := l.Results(); len(res) != 1 || res[0].ID != "mail" {
		t.Fatalf("unexpected results for %q", l.Query())
	}
	d.HandleKey(KeyEvent{Key: KeyBackspace})
	if l.Query() != "ma" {
		t.Fatalf("backspace left %q", l.Query())
	}
	d.HandleKey(KeyEvent{Key: KeyEnter})
	if l.IsOpen() || !d.Manager().IsOpen("mail") {
		t.Fatalf("enter should launch mail and close the launcher")
	}
}

func TestLauncherPointer(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	l := d.Launcher()
	start := d.StartButton()

	if hit := pointer(d, PointerDown, start.Left+2, start.Top+2); hit.Kind != HitStartButton {
		t.Fatalf("expected the start button, got %+v", hit)
	}
	pointer(d, PointerUp, start.Left+2, start.Top+2)
	if !l.IsOpen() {
		t.Fatalf("start button should open the launcher")
	}

	row := l.ResultRect(1)
	pointer(d, PointerDown, row.Left+2, row.Top+2)
	pointer(d, PointerUp, row.Left+2, row.Top+2)
	if l.IsOpen() || !d.Manager().IsOpen("notes") {
		t.Fatalf("clicking the second result should launch notes")
	}

	l.Open()
	pointer(d, PointerDown, 900, 300)
	pointer(d, PointerUp, 900, 300)
	if l.IsOpen() {
		t.Fatalf("click outside should close the launcher")
	}
	if _, ok := d.SelectionRect(); ok || d.Gesture() != nil {
		t.Fatalf("dismissing click started a gesture")
	}
}

func TestSelectionBoxIsNormalized(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)

	pointer(d, PointerDown, 500, 300)
	pointer(d, PointerMove, 400, 200)
	r, ok := d.SelectionRect()
	if !ok || r != (Rect{Left: 400, Top: 200, Width: 100, Height: 100}) {
		t.Fatalf("selection %+v ok=%v", r, ok)
	}
	pointer(d, PointerUp, 400, 200)
	if _, ok := d.SelectionRect(); ok {
		t.Fatalf("selection not discarded on release")
	}
}

func TestHitTestOrder(t *testing.T) {
	d := newTestDesktop(t, layout.NewMemoryStore(), desktopViewport)
	m := d.Manager()
	m.Open("mail", nil)

	w, _ := m.Window("mail")
	f := w.Frame(m.Metrics(), m.Viewport())
	closeBtn := ButtonRect(f, ButtonClose, m.Metrics())

	cases := []struct {
		p    Point
		kind HitKind
	}{
		{Point{X: closeBtn.Left + 1, Y: closeBtn.Top + 1}, HitWindowButton},
		{Point{X: 100, Y: 60}, HitTitleBar},
		{Point{X: 100, Y: 200}, HitWindowBody},
		{Point{X: f.Right() - 2, Y: f.Bottom() - 2}, HitResizeHandle},
		{Point{X: 600, Y: 740}, HitTaskbar},
		{Point{X: 900, Y: 500}, HitDesktop},
	}
	for _, tc := range cases {
		if got := d.HitTest(tc.p); got.Kind != tc.kind {
			t.Fatalf("hit at %+v = %v, want %v", tc.p, got.Kind, tc.kind)
		}
	}

	pointer(d, PointerDown, closeBtn.Left+1, closeBtn.Top+1)
	pointer(d, PointerUp, closeBtn.Left+1, closeBtn.Top+1)
	if m.IsOpen("mail") {
		t.Fatalf("close button did not close the window")
	}
}
