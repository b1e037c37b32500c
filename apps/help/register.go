// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/help/register.go
// Summary: Registers the help feature with the texeldesk registry.

package help

import (
	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) registry.Feature {
		return registry.Feature{
			ID:           "help",
			Title:        "Help",
			Icon:         "?",
			DefaultWidth: 40,
			Hotkey:       "h",
			Factory: func(props registry.Props) interface{} {
				return New(reg, config.System().Hotkeys())
			},
		}
	})
}
