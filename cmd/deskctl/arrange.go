// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/deskctl/arrange.go
// Summary: Applies the auto-arrange template to the saved icon layout.

package main

import (
	"fmt"
	"log"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	_ "github.com/framegrace/texeldesk/apps/clock"
	_ "github.com/framegrace/texeldesk/apps/help"
	_ "github.com/framegrace/texeldesk/apps/mail"
	_ "github.com/framegrace/texeldesk/apps/notes"
	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/layout"
	"github.com/framegrace/texeldesk/registry"
	"github.com/framegrace/texeldesk/wm"
)

// iconStore exposes only the icon layout of a store, so building a desktop
// over it never mounts the saved windows.
type iconStore struct {
	layout.Store
}

func (s iconStore) Load(key string) ([]byte, error) {
	if key != layout.KeyIconLayout {
		return nil, layout.ErrNotFound
	}
	return s.Store.Load(key)
}

func (s iconStore) Save(key string, data []byte) error {
	if key != layout.KeyIconLayout {
		return fmt.Errorf("iconStore: read-only record %s", key)
	}
	return s.Store.Save(key, data)
}

func addArrange(topLevel *cobra.Command, s *settings) {
	var width, height int

	cmd := &cobra.Command{
		Use:   "arrange",
		Short: "Reset desktop icons to the auto-arrange template.",
		Example: `
deskctl arrange
deskctl arrange --height 50
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("viewport must be positive, got %dx%d", width, height)
			}
			store, err := s.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			reg := registry.New()
			registry.RegisterBuiltIns(reg)
			if dir, err := config.FeaturesDir(); err == nil {
				if err := reg.Scan(dir); err != nil {
					log.Printf("Registry: Failed to scan %s: %v", dir, err)
				}
			}

			cfg := config.System()
			desk := wm.NewDesktop(reg, iconStore{Store: store}, wm.Options{
				Metrics:         cfg.Metrics(),
				Viewport:        wm.Viewport{Width: width, Height: height},
				ArrangeTemplate: cfg.ArrangeTemplate(),
			})
			desk.Icons().AutoArrange()

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("ID", "Position")
			for _, p := range desk.Icons().Placements() {
				tbl.AddRow(p.Feature.ID, fmt.Sprintf("%d,%d", p.Rect.Left, p.Rect.Top))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "viewport width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "viewport height in cells")
	topLevel.AddCommand(cmd)
}
