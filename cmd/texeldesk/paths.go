// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldesk/paths.go
// Summary: Standard paths for texeldesk state and log files.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/framegrace/texeldesk/config"
)

// Paths holds standard file paths for texeldesk
type Paths struct {
	ConfigDir   string // ~/.config/texeldesk
	FeaturesDir string // ~/.config/texeldesk/features
	LogPath     string // ~/.config/texeldesk/logs/texeldesk.log
	PanicPath   string // ~/.config/texeldesk/logs/panic.log
}

// GetPaths returns the standard paths for texeldesk files
func GetPaths() (*Paths, error) {
	configDir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("get config directory: %w", err)
	}
	logDir := filepath.Join(configDir, "logs")

	return &Paths{
		ConfigDir:   configDir,
		FeaturesDir: filepath.Join(configDir, "features"),
		LogPath:     filepath.Join(logDir, "texeldesk.log"),
		PanicPath:   filepath.Join(logDir, "panic.log"),
	}, nil
}

// EnsureLogDir creates the log directory if it doesn't exist
func (p *Paths) EnsureLogDir() error {
	return os.MkdirAll(filepath.Dir(p.LogPath), 0o750)
}
