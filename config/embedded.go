// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parsed copies of the config files embedded in the defaults package.

package config

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/framegrace/texeldesk/defaults"
)

var (
	embeddedMu sync.Mutex
	// embedded caches parsed files by feature id; "" is texeldesk.json.
	embedded = make(map[string]Config)
)

// embeddedDefaults returns a private copy of the embedded file for name, or
// an empty config when the feature ships none.
func embeddedDefaults(name string) Config {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()

	cfg, ok := embedded[name]
	if !ok {
		var data []byte
		var err error
		if name == "" {
			data, err = defaults.SystemConfig()
		} else {
			data, err = defaults.AppConfig(name)
		}
		if err == nil {
			if err := json.Unmarshal(data, &cfg); err != nil {
				log.Printf("Config: Embedded defaults for %q are malformed: %v", name, err)
				cfg = nil
			}
		}
		embedded[name] = cfg
	}
	if cfg == nil {
		return make(Config)
	}
	return Clone(cfg)
}
