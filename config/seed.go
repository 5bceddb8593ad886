// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/seed.go
// Summary: Parses the embedded default files used to seed a fresh config directory.

package config

import (
	"encoding/json"
	"log"

	"github.com/framegrace/texelgrad/defaults"
)

// seedConfig returns a fresh copy of the embedded defaults for app, or of
// texelgrad.json when app is empty. Apps without an embedded file get an
// empty config.
func seedConfig(app string) Config {
	var (
		data []byte
		err  error
	)
	if app == "" {
		data, err = defaults.SystemConfig()
	} else {
		data, err = defaults.AppConfig(app)
	}
	if err != nil {
		return make(Config)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil || cfg == nil {
		log.Printf("Config: embedded defaults for %q are invalid: %v", app, err)
		return make(Config)
	}
	return cfg
}
