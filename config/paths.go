// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Locates texelgrad.json and apps/<app>/config.json.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// systemPathOverride replaces the default system config location when set.
var systemPathOverride string

// UseSystemPath points the store at an explicit texelgrad.json and drops any
// cached state. App configs are resolved relative to its directory.
func UseSystemPath(path string) {
	mu.Lock()
	systemPathOverride = path
	mu.Unlock()
	Reset()
}

func configRoot() (string, error) {
	if systemPathOverride != "" {
		return filepath.Dir(systemPathOverride), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelgrad"), nil
}

func systemConfigPath() (string, error) {
	if systemPathOverride != "" {
		return systemPathOverride, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

func appConfigPath(app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("app name is required")
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "apps", app, "config.json"), nil
}
