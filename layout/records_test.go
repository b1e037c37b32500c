// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHeightJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Height
	}{
		{`"auto"`, AutoHeight},
		{`null`, AutoHeight},
		{`240`, Height{Value: 240}},
		{`240.6`, Height{Value: 241}},
	}
	for _, tt := range tests {
		var h Height
		if err := json.Unmarshal([]byte(tt.in), &h); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if h != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, h, tt.want)
		}
	}

	var bad Height
	if err := json.Unmarshal([]byte(`"tall"`), &bad); err == nil {
		t.Fatal("expected error for non-auto string height")
	}

	out, _ := json.Marshal(Size{Width: 300, Height: AutoHeight})
	if string(out) != `{"width":300,"height":"auto"}` {
		t.Fatalf("unexpected size encoding: %s", out)
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	records := NewRecords(NewMemoryStore())

	open := []OpenWindow{
		{ID: "mail", ExtraParams: map[string]interface{}{"userId": float64(42)}},
		{ID: "clock", IsMinimized: true},
	}
	geometry := map[string]Geometry{
		"mail":  {Position: Point{X: 80, Y: 60}, Size: Size{Width: 400, Height: Height{Value: 300}}},
		"admin": {Position: Point{X: 10, Y: 10}, Size: Size{Width: 500, Height: AutoHeight}, Tab: "users"},
	}
	icons := map[string]Point{"mail": {X: 20, Y: 20}}

	if err := records.SaveOpenWindows(open); err != nil {
		t.Fatal(err)
	}
	if err := records.SaveGeometry(geometry); err != nil {
		t.Fatal(err)
	}
	if err := records.SaveIconLayout(icons); err != nil {
		t.Fatal(err)
	}

	if got := records.OpenWindows(); !reflect.DeepEqual(got, open) {
		t.Errorf("open windows = %+v, want %+v", got, open)
	}
	if got := records.Geometry(); !reflect.DeepEqual(got, geometry) {
		t.Errorf("geometry = %+v, want %+v", got, geometry)
	}
	if got := records.IconLayout(); !reflect.DeepEqual(got, icons) {
		t.Errorf("icons = %+v, want %+v", got, icons)
	}
}

func TestRecordsMalformedFallsBack(t *testing.T) {
	store := NewMemoryStore()
	store.Save(KeyOpenWindows, []byte(`{not json`))
	store.Save(KeyGeometry, []byte(`[1,2,3]`))
	store.Save(KeyIconLayout, []byte(`"nope"`))

	records := NewRecords(store)
	if got := records.OpenWindows(); got != nil {
		t.Errorf("expected nil open windows, got %+v", got)
	}
	if got := records.Geometry(); len(got) != 0 {
		t.Errorf("expected empty geometry, got %+v", got)
	}
	if got := records.IconLayout(); len(got) != 0 {
		t.Errorf("expected empty icon layout, got %+v", got)
	}
}

func TestRecordsDropInvalidEntries(t *testing.T) {
	store := NewMemoryStore()
	store.Save(KeyOpenWindows, []byte(`[{"id":"a"},{"id":""},{"id":"a","isMinimized":true},{"id":"b"}]`))
	store.Save(KeyGeometry, []byte(`{"a":{"position":{"x":1,"y":1},"size":{"width":0,"height":10}},"b":{"position":{"x":1,"y":1},"size":{"width":10,"height":"auto"}}}`))

	records := NewRecords(store)
	open := records.OpenWindows()
	if len(open) != 2 || open[0].ID != "a" || open[0].IsMinimized || open[1].ID != "b" {
		t.Fatalf("unexpected open windows: %+v", open)
	}
	geometry := records.Geometry()
	if _, ok := geometry["a"]; ok {
		t.Error("zero-width geometry should be dropped")
	}
	if g, ok := geometry["b"]; !ok || !g.Size.Height.Auto {
		t.Errorf("expected auto-height geometry for b, got %+v", g)
	}
}
