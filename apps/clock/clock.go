// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/clock/clock.go
// Summary: Clock window content ticking once per second.

package clock

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/driver"
	"github.com/framegrace/texeldesk/registry"
)

// Clock shows the current time and, optionally, the date.
type Clock struct {
	mu         sync.RWMutex
	now        func() time.Time
	current    time.Time
	format     string
	dateFormat string
	showDate   bool

	refresh  func()
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a clock configured from the "clock" section of cfg. The ticker
// starts immediately.
func New(props registry.Props, cfg config.Config) *Clock {
	c := newClock(props, cfg, time.Now)
	go c.run(time.Second)
	return c
}

func newClock(props registry.Props, cfg config.Config, now func() time.Time) *Clock {
	refresh := props.Refresh
	if refresh == nil {
		refresh = func() {}
	}
	c := &Clock{
		now:        now,
		format:     cfg.GetString("clock", "format", "15:04:05"),
		dateFormat: cfg.GetString("clock", "date_format", "Mon Jan 2 2006"),
		showDate:   cfg.GetBool("clock", "show_date", true),
		refresh:    refresh,
		stop:       make(chan struct{}),
	}
	c.tick()
	return c
}

func (c *Clock) tick() {
	c.mu.Lock()
	c.current = c.now()
	c.mu.Unlock()
}

func (c *Clock) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.tick()
			c.refresh()
		case <-c.stop:
			return
		}
	}
}

// Stop ends the ticker.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// PreferredHeight fits the time, the date and a blank line either side.
func (c *Clock) PreferredHeight(width int) int {
	if c.showDate {
		return 4
	}
	return 3
}

// Draw centres the time in the body. Narrow windows drop the seconds.
func (c *Clock) Draw(cv *driver.Canvas) {
	c.mu.RLock()
	current := c.current
	c.mu.RUnlock()

	format := c.format
	if cv.Scale < 1 {
		format = "15:04"
	}
	style := cv.Style.Foreground(tcell.PaletteColor(6)).Bold(true)

	y := (cv.Height() - 1) / 2
	if c.showDate && cv.Height() > 2 {
		y = (cv.Height() - 2) / 2
	}
	cv.PrintCentered(y, current.Format(format), style)
	if c.showDate && y+1 < cv.Height() {
		cv.PrintCentered(y+1, current.Format(c.dateFormat), cv.Style)
	}
}
