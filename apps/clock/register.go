// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/clock/register.go
// Summary: Registers the clock feature with the texeldesk registry.

package clock

import (
	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) registry.Feature {
		return registry.Feature{
			ID:           "clock",
			Title:        "Clock",
			DefaultWidth: 24,
			Hotkey:       "c",
			Factory: func(props registry.Props) interface{} {
				return New(props, config.App("clock"))
			},
		}
	})
}
