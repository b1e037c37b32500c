// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wm/hotkeys.go
// Summary: Per-feature single-key bindings.

package wm

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Key classifies a key event.
type Key int

const (
	KeyRune Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	// KeyLauncher toggles the launcher overlay.
	KeyLauncher
	KeyOther
)

// KeyEvent is a global keydown.
type KeyEvent struct {
	Key  Key
	Rune rune
	// Ctrl or Alt held; bound hotkeys only fire on plain keys.
	Modified bool
	// InputFocused is set when a text input inside content holds focus.
	InputFocused bool
}

// HotkeyRouter maps features to single lowercase keys. A key belongs to at
// most one feature; binding it again moves it.
type HotkeyRouter struct {
	byFeature map[string]rune
	byKey     map[rune]string
}

// NewHotkeyRouter creates an empty router.
func NewHotkeyRouter() *HotkeyRouter {
	return &HotkeyRouter{
		byFeature: make(map[string]rune),
		byKey:     make(map[rune]string),
	}
}

// Bind assigns key to featureID. An empty key removes the binding.
func (r *HotkeyRouter) Bind(featureID, key string) error {
	if key == "" {
		r.Unbind(featureID)
		return nil
	}
	k, size := utf8.DecodeRuneInString(key)
	if size != len(key) || k == utf8.RuneError {
		return fmt.Errorf("hotkey for %s must be a single key, got %q", featureID, key)
	}
	k = unicode.ToLower(k)

	r.Unbind(featureID)
	if prev, ok := r.byKey[k]; ok {
		delete(r.byFeature, prev)
	}
	r.byFeature[featureID] = k
	r.byKey[k] = featureID
	return nil
}

// Unbind removes featureID's binding.
func (r *HotkeyRouter) Unbind(featureID string) {
	if k, ok := r.byFeature[featureID]; ok {
		delete(r.byKey, k)
		delete(r.byFeature, featureID)
	}
}

// Resolve returns the feature bound to k, case-insensitively.
func (r *HotkeyRouter) Resolve(k rune) (string, bool) {
	id, ok := r.byKey[unicode.ToLower(k)]
	return id, ok
}

// Binding returns the key bound to featureID.
func (r *HotkeyRouter) Binding(featureID string) (rune, bool) {
	k, ok := r.byFeature[featureID]
	return k, ok
}
