// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Loosely typed lookups over decoded JSON sections.
// Notes: JSON numbers decode as float64; values written from Go may be ints or strings.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. The empty name is the top level.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	return asSection(c[sectionName])
}

func asSection(v interface{}) Section {
	switch s := v.(type) {
	case Section:
		return s
	case map[string]interface{}:
		return Section(s)
	}
	return nil
}

// RegisterDefaults fills the keys of defaults missing from the section,
// creating the section when needed.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || len(defaults) == 0 {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section, len(defaults))
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(sectionName, key string) (interface{}, bool) {
	v, ok := c.Section(sectionName)[key]
	return v, ok
}

// GetString returns a string value, or defaultValue when missing or not a string.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	if s, ok := c.lookupString(sectionName, key); ok {
		return s
	}
	return defaultValue
}

func (c Config) lookupString(sectionName, key string) (string, bool) {
	v, _ := c.lookup(sectionName, key)
	s, ok := v.(string)
	return s, ok
}

// GetFloat returns a numeric value; numeric strings are accepted.
func (c Config) GetFloat(sectionName, key string, defaultValue float64) float64 {
	v, _ := c.lookup(sectionName, key)
	if f, ok := toFloat(v); ok {
		return f
	}
	return defaultValue
}

// GetInt is GetFloat truncated toward zero.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	v, _ := c.lookup(sectionName, key)
	if i, ok := v.(int); ok {
		return i
	}
	if f, ok := toFloat(v); ok {
		return int(f)
	}
	return defaultValue
}

// GetBool accepts booleans, strconv.ParseBool strings and numbers (non-zero is true).
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	v, _ := c.lookup(sectionName, key)
	if b, ok := v.(bool); ok {
		return b
	}
	if s, ok := v.(string); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		return defaultValue
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return defaultValue
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
