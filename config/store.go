// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Reads config files, seeding missing ones from the embedded defaults.
// Notes: A file that fails to parse is reported and never rewritten.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

func loadSystemLocked() Config {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: no system config location: %v", err)
		cfg := make(Config)
		applySystemDefaults(cfg)
		return cfg
	}
	return loadFile(path, "", applySystemDefaults)
}

func loadAppLocked(name string) Config {
	fill := func(cfg Config) { applyAppDefaults(name, cfg) }
	path, err := appConfigPath(name)
	if err != nil {
		log.Printf("Config: no location for app %q: %v", name, err)
		cfg := make(Config)
		fill(cfg)
		return cfg
	}
	return loadFile(path, name, fill)
}

// loadFile returns the config at path with fill applied. A missing or empty
// file is replaced by the embedded defaults for app ("" is the system file).
func loadFile(path, app string, fill func(Config)) Config {
	cfg, err := readConfig(path)
	switch {
	case errors.Is(err, fs.ErrNotExist), err == nil && len(cfg) == 0:
		cfg = seedConfig(app)
		fill(cfg)
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: could not write defaults to %s: %v", path, err)
		} else {
			log.Printf("Config: wrote defaults to %s", path)
		}
	case err != nil:
		log.Printf("Config: %v, using defaults", err)
		cfg = make(Config)
		fill(cfg)
	default:
		fill(cfg)
		log.Printf("Config: loaded %s", path)
	}
	return cfg
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func writeConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
