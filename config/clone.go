// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helpers for config maps.

package config

// Clone returns a copy of the config. Sections and nested maps are copied so
// edits to the clone never reach the cached defaults.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		switch v := value.(type) {
		case map[string]interface{}:
			clone[name] = cloneSection(v)
		case Section:
			clone[name] = cloneSection(v)
		default:
			clone[name] = v
		}
	}
	return clone
}

func cloneSection(src map[string]interface{}) Section {
	out := make(Section, len(src))
	for key, value := range src {
		if nested, ok := value.(map[string]interface{}); ok {
			out[key] = map[string]interface{}(cloneSection(nested))
			continue
		}
		out[key] = value
	}
	return out
}
