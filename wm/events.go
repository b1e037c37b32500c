// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/events.go
// Summary: Event dispatcher broadcasting window manager state changes.
// Usage: Renderers subscribe to redraw; the manager broadcasts after every mutation.

package wm

import "sync"

// EventType names a manager state change.
type EventType int

const (
	EventWindowOpened EventType = iota
	EventWindowClosed
	EventWindowMinimized
	EventWindowRestored
	EventWindowMaximized
	EventParamsMerged
	EventActiveChanged
	EventGeometryCommitted
	EventTitleChanged
	EventTabChanged
	EventIconsMoved
	EventLauncherChanged
	EventViewportChanged
)

var eventNames = map[EventType]string{
	EventWindowOpened:      "window-opened",
	EventWindowClosed:      "window-closed",
	EventWindowMinimized:   "window-minimized",
	EventWindowRestored:    "window-restored",
	EventWindowMaximized:   "window-maximized",
	EventParamsMerged:      "params-merged",
	EventActiveChanged:     "active-changed",
	EventGeometryCommitted: "geometry-committed",
	EventTitleChanged:      "title-changed",
	EventTabChanged:        "tab-changed",
	EventIconsMoved:        "icons-moved",
	EventLauncherChanged:   "launcher-changed",
	EventViewportChanged:   "viewport-changed",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is a state change notification. WindowID is empty for desktop-level
// events.
type Event struct {
	Type     EventType
	WindowID string
}

// Listener receives manager events synchronously, on the goroutine that
// mutated the desktop.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// EventDispatcher fans manager events out to subscribers in subscription
// order.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher returns a dispatcher with no subscribers.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe appends listener. There is no unsubscribe; listeners live as
// long as the desktop.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Broadcast delivers event to a snapshot of the subscribers, so a listener
// may subscribe another without deadlocking.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners...)
	d.mu.RUnlock()
	for _, l := range listeners {
		l.OnEvent(event)
	}
}
