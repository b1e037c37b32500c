// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/deskctl/reset.go
// Summary: Deletes saved layout records.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framegrace/texeldesk/layout"
)

func addReset(topLevel *cobra.Command, s *settings) {
	var icons, windows, geometry bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete saved layout records. Without flags every record is deleted.",
		Example: `
deskctl reset
deskctl reset --icons
deskctl reset --windows --geometry
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := resetKeys(icons, windows, geometry)
			store, err := s.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			for _, key := range keys {
				if err := store.Delete(key); err != nil {
					return fmt.Errorf("delete %s: %w", key, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", key)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&icons, "icons", false, "delete the desktop icon layout")
	cmd.Flags().BoolVar(&windows, "windows", false, "delete the open window list")
	cmd.Flags().BoolVar(&geometry, "geometry", false, "delete saved window geometry")
	topLevel.AddCommand(cmd)
}

func resetKeys(icons, windows, geometry bool) []string {
	if !icons && !windows && !geometry {
		return layout.Keys
	}
	var keys []string
	if windows {
		keys = append(keys, layout.KeyOpenWindows)
	}
	if geometry {
		keys = append(keys, layout.KeyGeometry)
	}
	if icons {
		keys = append(keys, layout.KeyIconLayout)
	}
	return keys
}
