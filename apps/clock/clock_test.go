// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package clock

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/driver"
	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
	"github.com/framegrace/texeldesk/wm"
)

func fixedNow() time.Time { return time.Date(2025, 3, 4, 9, 8, 7, 0, time.UTC) }

func TestClockDrawsConfiguredFormat(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(40, 12)

	var c *Clock
	reg := registry.New()
	reg.Register(registry.Feature{ID: "clock", Title: "Clock", DefaultWidth: 24, Factory: func(p registry.Props) interface{} {
		c = newClock(p, config.Config{"clock": map[string]interface{}{"show_date": false}}, fixedNow)
		return c
	}})
	desk := wm.NewDesktop(reg, layout.NewMemoryStore(), wm.Options{
		Metrics:  config.Config{}.Metrics(),
		Viewport: wm.Viewport{Width: 40, Height: 12},
	})
	desk.Manager().Open("clock", nil)
	driver.NewRenderer(driver.NewTcellScreenDriver(sim), driver.DefaultTheme()).Draw(desk)

	w, _ := desk.Manager().Window("clock")
	frame := w.Frame(desk.Manager().Metrics(), desk.Manager().Viewport())
	if frame.Height != 5 {
		t.Fatalf("expected the minimum height to win over the measured one, got %d", frame.Height)
	}
	// Body is 4 rows starting at frame.Top+1; the time sits on its second row.
	row := frame.Top + 1 + 1
	got := ""
	for x := frame.Left; x < frame.Right(); x++ {
		ch, _, _, _ := sim.GetContent(x, row)
		if ch != ' ' && ch != 0 {
			got += string(ch)
		}
	}
	if got != "09:08:07" {
		t.Fatalf("expected 09:08:07, got %q", got)
	}
	c.Stop()
	c.Stop()
}

func TestClockTickRefreshes(t *testing.T) {
	refreshed := make(chan struct{}, 1)
	c := newClock(registry.Props{Refresh: func() {
		select {
		case refreshed <- struct{}{}:
		default:
		}
	}}, config.Config{}, time.Now)
	go c.run(5 * time.Millisecond)
	defer c.Stop()

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("ticker never asked for a refresh")
	}
}
