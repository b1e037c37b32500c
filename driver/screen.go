// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: driver/screen.go
// Summary: Screen abstraction over tcell used by the terminal desktop.
// Usage: Wrap a real or simulation tcell.Screen with NewTcellScreenDriver.

package driver

import "github.com/gdamore/tcell/v2"

// ScreenDriver is the subset of tcell.Screen the desktop needs.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	Clear()
	HideCursor()
	Show()
	EnableMouse()
	DisableMouse()
	EnablePaste()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error { return d.screen.Init() }

func (d *TcellScreenDriver) Fini() { d.screen.Fini() }

func (d *TcellScreenDriver) Size() (int, int) { return d.screen.Size() }

func (d *TcellScreenDriver) SetStyle(style tcell.Style) { d.screen.SetStyle(style) }

func (d *TcellScreenDriver) Clear() { d.screen.Clear() }

func (d *TcellScreenDriver) HideCursor() { d.screen.HideCursor() }

func (d *TcellScreenDriver) Show() { d.screen.Show() }

// EnableMouse turns on button and drag reporting.
func (d *TcellScreenDriver) EnableMouse() {
	d.screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)
}

func (d *TcellScreenDriver) DisableMouse() { d.screen.DisableMouse() }

func (d *TcellScreenDriver) EnablePaste() { d.screen.EnablePaste() }

func (d *TcellScreenDriver) PollEvent() tcell.Event { return d.screen.PollEvent() }

func (d *TcellScreenDriver) PostEvent(ev tcell.Event) error { return d.screen.PostEvent(ev) }

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellScreenDriver) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return d.screen.GetContent(x, y)
}

// Underlying exposes the wrapped tcell.Screen.
func (d *TcellScreenDriver) Underlying() tcell.Screen {
	return d.screen
}
