// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Process-wide cache of texelgrad.json and the per-app config files.
// Usage: System() and App(name) load lazily; SetApp overlays command-line values in memory.

package config

import "sync"

const systemConfigName = "texelgrad.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu     sync.Mutex
	system Config
	apps   map[string]Config
)

// System returns the system configuration, loading it on first use.
func System() Config {
	mu.Lock()
	defer mu.Unlock()
	if system == nil {
		system = loadSystemLocked()
	}
	return system
}

// App returns the config for a named app (apps/<app>/config.json).
func App(name string) Config {
	if name == "" {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	if cfg, ok := apps[name]; ok {
		return cfg
	}
	cfg := loadAppLocked(name)
	if apps == nil {
		apps = make(map[string]Config)
	}
	apps[name] = cfg
	return cfg
}

// SetApp replaces the cached app config with a copy of cfg. Nothing is written.
func SetApp(name string, cfg Config) {
	if name == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if apps == nil {
		apps = make(map[string]Config)
	}
	if cfg == nil {
		cfg = make(Config)
	}
	apps[name] = Clone(cfg)
}

// Reset drops all cached configuration; the next access reloads from disk.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	system = nil
	apps = nil
}
