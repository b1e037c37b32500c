// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Loading: seed missing files from embedded defaults, backfill
// missing keys, validate the desktop sections.

package config

import "log"

// loadFile reads path. A missing or empty file is seeded from the embedded
// defaults of name and written back; a malformed one degrades to defaults in
// memory and is left untouched for the user to fix.
func loadFile(path, name string, backfill func(Config)) (Config, error) {
	cfg, exists, err := readConfig(path)
	if err != nil {
		log.Printf("Config: %v", err)
		cfg = embeddedDefaults(name)
		backfill(cfg)
		return cfg, err
	}

	seed := !exists || len(cfg) == 0
	if seed {
		cfg = embeddedDefaults(name)
	}
	backfill(cfg)

	if seed {
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: Failed to write defaults to %s: %v", path, err)
			return cfg, err
		}
		log.Printf("Config: Wrote defaults to %s", path)
		return cfg, nil
	}
	log.Printf("Config: Loaded %s", path)
	return cfg, nil
}

func loadSystemLocked() (Config, error) {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		cfg := make(Config)
		applySystemDefaults(cfg)
		return cfg, err
	}
	cfg, err := loadFile(path, "", applySystemDefaults)
	for _, problem := range validateSystem(cfg) {
		log.Printf("Config: %s: %s", systemConfigName, problem)
	}
	return cfg, err
}

func loadFeatureLocked(feature string) (Config, error) {
	path, err := appConfigPath(feature)
	if err != nil {
		return nil, err
	}
	return loadFile(path, feature, func(cfg Config) { applyAppDefaults(feature, cfg) })
}
