// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/mail/register.go
// Summary: Registers the mail feature with the texeldesk registry.

package mail

import (
	"github.com/framegrace/texeldesk/config"
	"github.com/framegrace/texeldesk/registry"
)

func init() {
	registry.RegisterBuiltInProvider(func(reg *registry.Registry) registry.Feature {
		return registry.Feature{
			ID:           "mail",
			Title:        "Mail",
			DefaultWidth: 44,
			Hotkey:       "m",
			Factory: func(props registry.Props) interface{} {
				return New(props, config.App("mail"))
			},
		}
	})
}
