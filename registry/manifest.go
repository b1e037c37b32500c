// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: Feature manifest structure for wrapper features on disk.
// Usage: Each feature directory carries manifest.json or manifest.toml.

package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FeatureType specifies how a feature's content is produced.
type FeatureType string

const (
	// FeatureTypeBuiltIn uses a factory compiled into the binary.
	FeatureTypeBuiltIn FeatureType = "built-in"

	// FeatureTypeWrapper reuses a built-in factory with preset parameters.
	// Example: "inbox" = mail with {"folder": "inbox"}
	FeatureTypeWrapper FeatureType = "wrapper"
)

// Manifest describes a feature loaded from disk.
type Manifest struct {
	ID           string      `json:"id" toml:"id"`
	Title        string      `json:"title" toml:"title"`
	Icon         string      `json:"icon" toml:"icon"`
	DefaultWidth int         `json:"defaultWidth,omitempty" toml:"default_width"`
	Hidden       bool        `json:"hidden,omitempty" toml:"hidden"`
	Hotkey       string      `json:"hotkey,omitempty" toml:"hotkey"`
	Type         FeatureType `json:"type,omitempty" toml:"type"`

	// Wraps names the built-in feature whose content is reused.
	Wraps string `json:"wraps,omitempty" toml:"wraps"`

	// Params are preset extra parameters; open-time parameters win.
	Params map[string]interface{} `json:"params,omitempty" toml:"params"`
}

// LoadManifest reads manifest.json, falling back to manifest.toml, from dir.
func LoadManifest(dir string) (*Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		data, err = os.ReadFile(filepath.Join(dir, "manifest.toml"))
		if err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	if m.Type == "" {
		m.Type = FeatureTypeWrapper
	}
	return &m, nil
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("id cannot be empty")
	}
	if m.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len([]rune(m.Hotkey)) > 1 {
		return fmt.Errorf("hotkey must be a single key, got %q", m.Hotkey)
	}

	switch m.Type {
	case FeatureTypeWrapper:
		if m.Wraps == "" {
			return fmt.Errorf("wrapper feature must specify 'wraps' field")
		}
		if m.Wraps == m.ID {
			return fmt.Errorf("wrapper feature cannot wrap itself")
		}
	case FeatureTypeBuiltIn:
		return fmt.Errorf("built-in features are registered in code")
	default:
		return fmt.Errorf("unknown feature type: %s", m.Type)
	}
	return nil
}
