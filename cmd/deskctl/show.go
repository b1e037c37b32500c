// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/deskctl/show.go
// Summary: Lists saved windows, geometry and icon positions.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/framegrace/texeldesk/layout"
)

const rawStyle = "catppuccin-mocha"

func addShow(topLevel *cobra.Command, s *settings) {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved layout records.",
		Example: `
deskctl show
deskctl show --raw
DESKCTL_BACKEND=sqlite deskctl show
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := s.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			if raw {
				return showRaw(cmd.OutOrStdout(), store)
			}
			showTables(cmd.OutOrStdout(), layout.NewRecords(store))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored JSON records")
	topLevel.AddCommand(cmd)
}

func heading(w io.Writer, title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Fprint(w, title)
	_, _ = c.Fprintf(w, " - %d\n", count)
}

func showTables(w io.Writer, records *layout.Records) {
	bold := color.New(color.Bold)

	windows := records.OpenWindows()
	heading(w, "Open windows", len(windows))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("State"), bold.Sprint("Params"))
	for _, win := range windows {
		state := "open"
		if win.IsMinimized {
			state = "minimized"
		}
		tbl.AddRow(win.ID, state, formatParams(win.ExtraParams))
	}
	fmt.Fprintln(w, tbl)
	fmt.Fprintln(w)

	geometry := records.Geometry()
	heading(w, "Geometry", len(geometry))
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Position"), bold.Sprint("Size"), bold.Sprint("Tab"))
	for _, id := range sortedKeys(geometry) {
		g := geometry[id]
		height := "auto"
		if !g.Size.Height.Auto {
			height = strconv.Itoa(g.Size.Height.Value)
		}
		tbl.AddRow(id,
			fmt.Sprintf("%d,%d", g.Position.X, g.Position.Y),
			fmt.Sprintf("%dx%s", g.Size.Width, height),
			g.Tab)
	}
	fmt.Fprintln(w, tbl)
	fmt.Fprintln(w)

	icons := records.IconLayout()
	heading(w, "Icons", len(icons))
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Position"))
	for _, id := range sortedKeys(icons) {
		p := icons[id]
		tbl.AddRow(id, fmt.Sprintf("%d,%d", p.X, p.Y))
	}
	fmt.Fprintln(w, tbl)
}

// showRaw prints each stored record as indented JSON, highlighted unless
// colour output is disabled.
func showRaw(w io.Writer, store layout.Store) error {
	for _, key := range layout.Keys {
		data, err := store.Load(key)
		if errors.Is(err, layout.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", key, err)
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			out.Reset()
			out.Write(data)
		}
		out.WriteByte('\n')

		_, _ = color.New(color.Bold).Fprintf(w, "# %s\n", key)
		if color.NoColor {
			if _, err := w.Write(out.Bytes()); err != nil {
				return err
			}
			continue
		}
		if err := quick.Highlight(w, out.String(), "json", "terminal256", rawStyle); err != nil {
			return fmt.Errorf("highlight %s: %w", key, err)
		}
	}
	return nil
}

func formatParams(params map[string]interface{}) string {
	if len(params) == 0 {
		return ""
	}
	data, err := json.Marshal(params)
	if err != nil {
		return "?"
	}
	return string(data)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
