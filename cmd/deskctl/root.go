// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/deskctl/root.go
// Summary: Root command, shared flags and store selection.
// Notes: Flags win over DESKCTL_* environment variables, which win over
//   deskctl.yaml in the config dir, which wins over texeldesk.json storage.

package main

import (
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/layout"
)

// settings resolves deskctl options for one invocation.
type settings struct {
	v *viper.Viper
}

func newSettings() *settings {
	v := viper.New()
	backend, dir := config.System().Storage()
	v.SetDefault("backend", backend)
	v.SetDefault("state-dir", dir)
	v.SetConfigName("deskctl")
	v.SetEnvPrefix("DESKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if root, err := config.Dir(); err == nil {
		v.AddConfigPath(root)
	}
	return &settings{v: v}
}

func (s *settings) readConfig() error {
	if err := s.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read deskctl config: %w", err)
		}
	}
	return nil
}

func (s *settings) backend() string {
	return s.v.GetString("backend")
}

func (s *settings) stateDir() (string, error) {
	return homedir.Expand(s.v.GetString("state-dir"))
}

// openStore opens the layout store the desktop would use.
func (s *settings) openStore() (layout.Store, error) {
	dir, err := s.stateDir()
	if err != nil {
		return nil, fmt.Errorf("expand state dir: %w", err)
	}
	store, err := layout.Open(s.backend(), dir)
	if err != nil {
		return nil, fmt.Errorf("open %s store in %s: %w", s.backend(), dir, err)
	}
	return store, nil
}

func newRootCommand() *cobra.Command {
	s := newSettings()

	cmd := &cobra.Command{
		Use:           "deskctl",
		Short:         "Inspect and reset the saved texeldesk layout.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.readConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("backend", "", "layout store backend: file, diskv, sqlite or memory")
	flags.String("state-dir", "", "directory holding the saved layout (~ is expanded)")
	_ = s.v.BindPFlag("backend", flags.Lookup("backend"))
	_ = s.v.BindPFlag("state-dir", flags.Lookup("state-dir"))

	addShow(cmd, s)
	addReset(cmd, s)
	addArrange(cmd, s)
	return cmd
}
