// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Ordered feature registry consumed by the window manager.
// Usage: Built-ins register in code; wrapper features are scanned from disk.

package registry

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultWidth is used for features that do not declare one.
const DefaultWidth = 480

// Feature is one registrable unit of content.
type Feature struct {
	ID           string
	Title        string
	Icon         string
	DefaultWidth int
	// Hidden features get no desktop icon but can still be opened.
	Hidden bool
	// Hotkey is a single lowercase key, or empty.
	Hotkey  string
	Factory ContentFactory
	// Params are preset extra parameters (wrapper features).
	Params Params
}

// Width returns the feature's default width, falling back to DefaultWidth.
func (f *Feature) Width() int {
	if f.DefaultWidth > 0 {
		return f.DefaultWidth
	}
	return DefaultWidth
}

// Registry keeps features in registration order.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	features map[string]*Feature
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		features: make(map[string]*Feature),
	}
}

// Register adds a feature. Re-registering an id replaces the descriptor but
// keeps its original position.
func (r *Registry) Register(f Feature) error {
	if f.ID == "" {
		return fmt.Errorf("feature id is required")
	}
	f.Hotkey = strings.ToLower(f.Hotkey)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.features[f.ID]; !exists {
		r.order = append(r.order, f.ID)
	}
	r.features[f.ID] = &f
	return nil
}

// Scan loads wrapper features from subdirectories of baseDir. A missing
// directory is not an error.
func (r *Registry) Scan(baseDir string) error {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		log.Printf("Registry: Feature directory does not exist: %s", baseDir)
		return nil
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("read feature directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(baseDir, entry.Name())
		if err := r.loadWrapper(dir); err != nil {
			log.Printf("Registry: Failed to load feature from %s: %v", dir, err)
			continue
		}
		loaded++
	}

	log.Printf("Registry: Loaded %d wrapper features, %d total", loaded, r.Count())
	return nil
}

func (r *Registry) loadWrapper(dir string) error {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}

	wrapped, ok := r.Lookup(manifest.Wraps)
	if !ok {
		return fmt.Errorf("wrapped feature not found: %s", manifest.Wraps)
	}

	width := manifest.DefaultWidth
	if width == 0 {
		width = wrapped.DefaultWidth
	}
	icon := manifest.Icon
	if icon == "" {
		icon = wrapped.Icon
	}

	params := wrapped.Params.Clone()
	params.Merge(manifest.Params)

	return r.Register(Feature{
		ID:           manifest.ID,
		Title:        manifest.Title,
		Icon:         icon,
		DefaultWidth: width,
		Hidden:       manifest.Hidden,
		Hotkey:       manifest.Hotkey,
		Factory:      wrapped.Factory,
		Params:       params,
	})
}

// Lookup returns the feature registered under id.
func (r *Registry) Lookup(id string) (*Feature, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.features[id]
	return f, ok
}

// Features returns every feature in registration order.
func (r *Registry) Features() []*Feature {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Feature, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.features[id])
	}
	return out
}

// Visible returns the features that get a desktop icon, in order.
func (r *Registry) Visible() []*Feature {
	all := r.Features()
	out := all[:0]
	for _, f := range all {
		if !f.Hidden {
			out = append(out, f)
		}
	}
	return out
}

// Count returns the number of registered features.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
