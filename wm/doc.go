/*
Package wm implements the desktop window manager core: open windows with their
lifecycle state, focus, drag and resize gestures clamped to the viewport,
desktop icons with persisted positions, the taskbar, per-feature hotkeys, the
launcher overlay and the desktop selection box.

The package is renderer-agnostic. A host feeds it pointer and key events and
draws what Desktop reports; geometry is in abstract integer units (pixels for a
browser host, cells for the terminal driver).

Desktop is not safe for concurrent use. Drive it from a single event loop.

Example usage:

	reg := registry.New()
	reg.Register(registry.Feature{ID: "mail", Title: "Mail", DefaultWidth: 480})

	desk := wm.NewDesktop(reg, layout.NewMemoryStore(), wm.Options{
		Viewport: wm.Viewport{Width: 1024, Height: 768},
	})
	desk.Manager().Open("mail", registry.Params{"userId": 42})
	desk.HandlePointer(wm.PointerEvent{Kind: wm.PointerDown, Pos: wm.Point{X: 120, Y: 60}})
*/
package wm
