// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/notes/register.go
// Summary: Registers the notes feature with the texeldesk registry.

package notes

import (
	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) registry.Feature {
		return registry.Feature{
			ID:           "notes",
			Title:        "Notes",
			DefaultWidth: 36,
			Hotkey:       "n",
			Factory: func(props registry.Props) interface{} {
				return New(props, config.App("notes"))
			},
		}
	})
}
