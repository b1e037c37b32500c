// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterKeepsOrder(t *testing.T) {
	reg := New()
	reg.Register(Feature{ID: "mail", Title: "Mail"})
	reg.Register(Feature{ID: "clock", Title: "Clock", Hidden: true})
	reg.Register(Feature{ID: "notes", Title: "Notes", Hotkey: "N"})
	reg.Register(Feature{ID: "mail", Title: "Mailbox"})

	all := reg.Features()
	if len(all) != 3 || all[0].ID != "mail" || all[1].ID != "clock" || all[2].ID != "notes" {
		t.Fatalf("unexpected order: %+v", all)
	}
	if all[0].Title != "Mailbox" {
		t.Errorf("re-register should replace descriptor, got %q", all[0].Title)
	}
	if all[2].Hotkey != "n" {
		t.Errorf("hotkey should be lowercased, got %q", all[2].Hotkey)
	}

	visible := reg.Visible()
	if len(visible) != 2 || visible[1].ID != "notes" {
		t.Fatalf("hidden feature should be excluded: %+v", visible)
	}

	if err := reg.Register(Feature{}); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestFeatureWidthFallback(t *testing.T) {
	f := &Feature{ID: "x"}
	if f.Width() != DefaultWidth {
		t.Fatalf("expected default width, got %d", f.Width())
	}
	f.DefaultWidth = 640
	if f.Width() != 640 {
		t.Fatalf("expected 640, got %d", f.Width())
	}
}

func TestScanWrappers(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "inbox", "manifest.json"),
		`{"id":"inbox","title":"Inbox","wraps":"mail","params":{"folder":"inbox"},"hotkey":"i"}`)
	writeFile(t, filepath.Join(base, "sent", "manifest.toml"), `
id = "sent"
title = "Sent"
wraps = "mail"
default_width = 720

[params]
folder = "sent"
`)
	writeFile(t, filepath.Join(base, "broken", "manifest.json"), `{"id":"broken","title":"Broken"}`)
	writeFile(t, filepath.Join(base, "orphan", "manifest.json"), `{"id":"orphan","title":"Orphan","wraps":"missing"}`)

	reg := New()
	mounted := ""
	reg.Register(Feature{
		ID:           "mail",
		Title:        "Mail",
		Icon:         "@",
		DefaultWidth: 500,
		Params:       Params{"folder": "all", "compact": true},
		Factory: func(p Props) interface{} {
			mounted = p.WindowID
			return nil
		},
	})

	if err := reg.Scan(base); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if reg.Count() != 3 {
		t.Fatalf("expected mail + 2 wrappers, got %d", reg.Count())
	}

	inbox, ok := reg.Lookup("inbox")
	if !ok {
		t.Fatal("inbox not registered")
	}
	if inbox.Icon != "@" || inbox.DefaultWidth != 500 || inbox.Hotkey != "i" {
		t.Errorf("wrapper should inherit icon/width: %+v", inbox)
	}
	if inbox.Params["folder"] != "inbox" || inbox.Params["compact"] != true {
		t.Errorf("unexpected wrapper params: %+v", inbox.Params)
	}
	inbox.Factory(Props{WindowID: "inbox"})
	if mounted != "inbox" {
		t.Errorf("wrapper should reuse wrapped factory")
	}

	sent, _ := reg.Lookup("sent")
	if sent == nil || sent.DefaultWidth != 720 || sent.Params["folder"] != "sent" {
		t.Errorf("unexpected toml wrapper: %+v", sent)
	}

	if _, ok := reg.Lookup("broken"); ok {
		t.Error("manifest without wraps should be rejected")
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if err := New().Scan(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
}

func TestParamsMerge(t *testing.T) {
	p := Params{"a": 1, "b": 2}
	clone := p.Clone()
	clone.Merge(Params{"b": 3, "c": 4})
	if p["b"] != 2 {
		t.Fatal("clone must not alias the original")
	}
	if clone["a"] != 1 || clone["b"] != 3 || clone["c"] != 4 {
		t.Fatalf("unexpected merge result: %+v", clone)
	}
}

func TestBuiltInProviders(t *testing.T) {
	RegisterBuiltInProvider(func(*Registry) Feature {
		return Feature{ID: "provided", Title: "Provided"}
	})
	reg := New()
	RegisterBuiltIns(reg)
	if _, ok := reg.Lookup("provided"); !ok {
		t.Fatal("provider feature not registered")
	}
}
