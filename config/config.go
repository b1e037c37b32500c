// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Process-wide desktop and per-feature configuration.
// Usage: System() for texeldesk.json, App(id) for apps/<id>/config.json.
// Both load lazily on first use and are read-only afterwards.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const systemConfigName = "texeldesk.json"

// Config is a parsed config file: section name to section, plus a few
// top-level values such as "startup".
type Config map[string]interface{}

// Section is one object inside a config file.
type Section map[string]interface{}

var (
	mu       sync.RWMutex
	once     sync.Once
	system   Config
	features map[string]Config
	loadErr  error
)

// Err reports why texeldesk.json could not be read, if it could not. The
// desktop still runs on defaults in that case.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the validated desktop configuration.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// App returns the configuration of one feature, loading it on first use.
func App(feature string) Config {
	if feature == "" {
		return nil
	}
	once.Do(initStore)

	mu.RLock()
	cfg, ok := features[feature]
	mu.RUnlock()
	if ok {
		return cfg
	}

	mu.Lock()
	defer mu.Unlock()
	if cfg, ok := features[feature]; ok {
		return cfg
	}
	cfg, err := loadFeatureLocked(feature)
	if err != nil {
		log.Printf("Config: Feature %q falls back to defaults: %v", feature, err)
		cfg = make(Config)
		applyAppDefaults(feature, cfg)
	}
	features[feature] = cfg
	return cfg
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	features = make(map[string]Config)
	system, loadErr = loadSystemLocked()
}

// readConfig returns exists=false for a missing file and a parse error for a
// malformed one.
func readConfig(path string) (cfg Config, exists bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, true, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// writeConfig replaces path through a temp file so a crash never leaves a
// half-written config behind.
func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
