// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/driver.go
// Summary: Terminal event loop hosting a wm.Desktop on a tcell screen.
// Usage: Create with New, pass Refresh to wm.Options, then call Run.

package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/registry"
	"github.com/framegrace/texeldesk/wm"
)

type quitSignal struct{}

// Driver owns the screen and feeds the desktop. All desktop access happens on
// the Run goroutine; content refreshes from other goroutines arrive as
// interrupt events.
type Driver struct {
	screen   ScreenDriver
	renderer *Renderer
	refresh  chan struct{}
	desk     *wm.Desktop
	pointer  pointerState

	inPaste bool
	paste   []byte
}

// New creates a driver for screen.
func New(screen ScreenDriver, theme Theme) *Driver {
	return &Driver{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
		refresh:  make(chan struct{}, 1),
	}
}

// Refresh requests a redraw. Safe to call from any goroutine; extra requests
// coalesce.
func (d *Driver) Refresh() {
	select {
	case d.refresh <- struct{}{}:
	default:
	}
}

// Attach binds the desktop the driver renders and routes input to.
func (d *Driver) Attach(desk *wm.Desktop) {
	d.desk = desk
	desk.Manager().Subscribe(wm.ListenerFunc(func(e wm.Event) {
		switch e.Type {
		case wm.EventWindowOpened, wm.EventWindowClosed:
			log.Printf("Driver: %s %s", e.Type, e.WindowID)
		}
	}))
}

// Run initialises the screen and processes events until Ctrl+C, Ctrl+Q or
// ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	if d.desk == nil {
		return fmt.Errorf("driver: no desktop attached")
	}
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer d.screen.Fini()
	d.screen.Clear()
	d.screen.EnableMouse()
	defer d.screen.DisableMouse()
	d.screen.EnablePaste()
	d.screen.HideCursor()
	defer d.stopContent()

	d.resize()
	d.draw()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-d.refresh:
				d.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-ctx.Done():
				d.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
				return
			case <-done:
				return
			}
		}
	}()

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !d.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent processes one screen event and redraws. It returns false when
// the loop should exit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventInterrupt:
		if _, quit := tev.Data().(quitSignal); quit {
			return false
		}
	case *tcell.EventResize:
		d.resize()
	case *tcell.EventPaste:
		if tev.Start() {
			d.inPaste = true
			d.paste = nil
		} else if tev.End() {
			d.inPaste = false
			if len(d.paste) > 0 {
				d.handlePaste(d.paste)
			}
			d.paste = nil
		}
		return true
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyCtrlC || tev.Key() == tcell.KeyCtrlQ {
			return false
		}
		if d.inPaste {
			switch tev.Key() {
			case tcell.KeyRune:
				d.paste = append(d.paste, string(tev.Rune())...)
			case tcell.KeyEnter:
				d.paste = append(d.paste, '\n')
			}
			return true
		}
		d.handleKey(tev)
	case *tcell.EventMouse:
		d.handleMouse(tev)
	}
	d.draw()
	return true
}

func (d *Driver) resize() {
	w, h := d.screen.Size()
	d.desk.SetViewport(wm.Viewport{Width: w, Height: h})
}

func (d *Driver) draw() {
	d.renderer.Draw(d.desk)
}

// stopContent stops content goroutines on exit. Windows stay in the saved
// layout.
func (d *Driver) stopContent() {
	for _, w := range d.desk.Manager().Windows() {
		if stopper, ok := w.Content.(registry.Stopper); ok {
			stopper.Stop()
		}
	}
}
