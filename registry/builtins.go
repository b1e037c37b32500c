// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/builtins.go
// Summary: Supports init-time registration of built-in features.

package registry

import (
	"log"
	"sync"
)

// BuiltInProvider returns a feature descriptor for a registry instance.
type BuiltInProvider func(reg *Registry) Feature

var (
	builtInMu        sync.RWMutex
	builtInProviders []BuiltInProvider
)

// RegisterBuiltInProvider registers an init-time built-in provider.
func RegisterBuiltInProvider(provider BuiltInProvider) {
	if provider == nil {
		return
	}
	builtInMu.Lock()
	builtInProviders = append(builtInProviders, provider)
	builtInMu.Unlock()
}

// RegisterBuiltIns registers all init-time built-ins into the provided registry.
func RegisterBuiltIns(reg *Registry) {
	if reg == nil {
		return
	}
	builtInMu.RLock()
	providers := append([]BuiltInProvider(nil), builtInProviders...)
	builtInMu.RUnlock()

	for _, provider := range providers {
		feature := provider(reg)
		if err := reg.Register(feature); err != nil {
			log.Printf("Registry: Skipping built-in: %v", err)
		}
	}
}
