// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Deep copies of config trees.

package config

// Clone returns a deep copy of cfg. Nested objects become Sections and lists
// are copied element by element, so edits to the copy never reach cfg.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	return Config(cloneMap(cfg))
}

func cloneMap(m map[string]interface{}) Section {
	out := make(Section, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Section:
		return cloneMap(val)
	case Config:
		return cloneMap(val)
	case map[string]interface{}:
		return cloneMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
