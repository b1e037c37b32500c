// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/framegrace/texeldesk/layout"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "deskctl-config")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", home)
	color.NoColor = true
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

func seedStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	store, err := layout.NewFileStore(dir)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	records := layout.NewRecords(store)
	if err := records.SaveOpenWindows([]layout.OpenWindow{
		{ID: "clock"},
		{ID: "mail", IsMinimized: true, ExtraParams: map[string]interface{}{"userId": 42}},
	}); err != nil {
		t.Fatalf("save windows: %v", err)
	}
	if err := records.SaveGeometry(map[string]layout.Geometry{
		"clock": {Position: layout.Point{X: 3, Y: 4}, Size: layout.Size{Width: 20, Height: layout.Height{Value: 8}}},
		"mail":  {Position: layout.Point{X: 9, Y: 2}, Size: layout.Size{Width: 40, Height: layout.AutoHeight}, Tab: "sent"},
	}); err != nil {
		t.Fatalf("save geometry: %v", err)
	}
	if err := records.SaveIconLayout(map[string]layout.Point{"clock": {X: 30, Y: 10}}); err != nil {
		t.Fatalf("save icons: %v", err)
	}
	return dir
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("deskctl %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestShowTables(t *testing.T) {
	dir := seedStore(t)
	out := execute(t, "show", "--backend", "file", "--state-dir", dir)

	for _, want := range []string{"Open windows - 2", "minimized", `{"userId":42}`, "3,4", "20x8", "40xauto", "sent", "Icons - 1", "30,10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestShowRaw(t *testing.T) {
	dir := seedStore(t)
	out := execute(t, "show", "--raw", "--backend", "file", "--state-dir", dir)

	for _, want := range []string{"# " + layout.KeyOpenWindows, "# " + layout.KeyIconLayout, `"height": "auto"`, `"isMinimized": true`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStateDirFromEnvironment(t *testing.T) {
	dir := seedStore(t)
	t.Setenv("DESKCTL_BACKEND", "file")
	t.Setenv("DESKCTL_STATE_DIR", dir)

	out := execute(t, "show")
	if !strings.Contains(out, "Open windows - 2") {
		t.Fatalf("expected env state dir to be used:\n%s", out)
	}
}

func TestResetSelectedRecords(t *testing.T) {
	dir := seedStore(t)
	execute(t, "reset", "--icons", "--backend", "file", "--state-dir", dir)

	store, _ := layout.NewFileStore(dir)
	if _, err := store.Load(layout.KeyIconLayout); !errors.Is(err, layout.ErrNotFound) {
		t.Fatalf("expected icon layout deleted, got %v", err)
	}
	if _, err := store.Load(layout.KeyOpenWindows); err != nil {
		t.Fatalf("expected open windows kept, got %v", err)
	}

	execute(t, "reset", "--backend", "file", "--state-dir", dir)
	for _, key := range layout.Keys {
		if _, err := store.Load(key); !errors.Is(err, layout.ErrNotFound) {
			t.Fatalf("expected %s deleted, got %v", key, err)
		}
	}
}

func TestResetKeys(t *testing.T) {
	if got := resetKeys(false, false, false); len(got) != len(layout.Keys) {
		t.Fatalf("expected all keys, got %v", got)
	}
	got := resetKeys(false, true, true)
	if len(got) != 2 || got[0] != layout.KeyOpenWindows || got[1] != layout.KeyGeometry {
		t.Fatalf("unexpected keys %v", got)
	}
}

func TestArrangeKeepsWindows(t *testing.T) {
	dir := seedStore(t)
	execute(t, "arrange", "--backend", "file", "--state-dir", dir, "--width", "80", "--height", "24")

	store, _ := layout.NewFileStore(dir)
	records := layout.NewRecords(store)
	icons := records.IconLayout()
	want := map[string]layout.Point{
		"clock": {X: 1, Y: 1},
		"notes": {X: 1, Y: 5},
		"mail":  {X: 1, Y: 9},
	}
	for id, p := range want {
		if icons[id] != p {
			t.Fatalf("expected %s at %+v, got %+v (all %v)", id, p, icons[id], icons)
		}
	}
	if got := len(records.OpenWindows()); got != 2 {
		t.Fatalf("arrange must not touch open windows, got %d", got)
	}
	if g := records.Geometry()["clock"]; g.Position != (layout.Point{X: 3, Y: 4}) {
		t.Fatalf("arrange must not touch geometry, got %+v", g)
	}
}
