// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/config.go
// Summary: Effect specs parsed from configuration and typed accessors for their parameters.
// Notes: Malformed values fall back to the effect's defaults rather than failing.

package effects

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/framegrace/texelgrad/paint"
)

type EffectConfig map[string]interface{}

// EffectSpec names an effect and carries its parameter overrides.
type EffectSpec struct {
	ID     string
	Config EffectConfig
}

// ParseEffectSpecs reads a list of {"id": ..., params...} objects. raw may be a
// JSON string, a decoded []interface{}, or []map[string]interface{}.
func ParseEffectSpecs(raw interface{}) ([]EffectSpec, error) {
	var entries []map[string]interface{}
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		if err := json.Unmarshal([]byte(v), &entries); err != nil {
			return nil, fmt.Errorf("effects: parse specs: %w", err)
		}
	case []interface{}:
		bytes, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("effects: parse specs: %w", err)
		}
		if err := json.Unmarshal(bytes, &entries); err != nil {
			return nil, fmt.Errorf("effects: parse specs: %w", err)
		}
	case []map[string]interface{}:
		entries = v
	default:
		return nil, fmt.Errorf("effects: unsupported spec list type %T", raw)
	}
	specs := make([]EffectSpec, 0, len(entries))
	for _, entry := range entries {
		idVal, _ := entry["id"].(string)
		if idVal == "" {
			continue
		}
		cfg := make(EffectConfig)
		for k, v := range entry {
			if k == "id" {
				continue
			}
			cfg[k] = v
		}
		specs = append(specs, EffectSpec{ID: idVal, Config: cfg})
	}
	return specs, nil
}

func parseFloatOrDefault(cfg EffectConfig, key string, fallback float64) float64 {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				return parsed
			}
		}
	}
	return fallback
}

func parseIntOrDefault(cfg EffectConfig, key string, fallback int) int {
	v := parseFloatOrDefault(cfg, key, float64(fallback))
	if v != v || v < 0 {
		return fallback
	}
	return int(v)
}

func parseBoolOrDefault(cfg EffectConfig, key string, fallback bool) bool {
	if cfg == nil {
		return fallback
	}
	switch v := cfg[key].(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func parseDurationOrDefault(cfg EffectConfig, key string, fallbackMS int64) time.Duration {
	if cfg == nil {
		return time.Duration(fallbackMS) * time.Millisecond
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case int:
			return time.Duration(v) * time.Millisecond
		case int64:
			return time.Duration(v) * time.Millisecond
		case float64:
			return time.Duration(v * float64(time.Millisecond))
		case string:
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				return time.Duration(parsed) * time.Millisecond
			}
			if parsed, err := time.ParseDuration(v); err == nil {
				return parsed
			}
		}
	}
	return time.Duration(fallbackMS) * time.Millisecond
}

func parseEasingOrDefault(cfg EffectConfig, key string, fallback EasingFunc) EasingFunc {
	if cfg == nil {
		return fallback
	}
	name, ok := cfg[key].(string)
	if !ok || name == "" {
		return fallback
	}
	fn, err := EasingByName(name)
	if err != nil {
		log.Printf("Effects: %v, using default", err)
		return fallback
	}
	return fn
}

func parseRepeatOrDefault(cfg EffectConfig, key string, fallback RepeatMode) RepeatMode {
	if cfg == nil {
		return fallback
	}
	name, ok := cfg[key].(string)
	if !ok {
		return fallback
	}
	mode, ok := ParseRepeatMode(name)
	if !ok {
		log.Printf("Effects: unknown repeat mode %q, using default", name)
		return fallback
	}
	return mode
}

// parseColorsOrDefault reads a list of hex colours. Any bad entry rejects the list.
func parseColorsOrDefault(cfg EffectConfig, key string, fallback []paint.Color) []paint.Color {
	if cfg == nil {
		return fallback
	}
	list, ok := cfg[key].([]interface{})
	if !ok || len(list) == 0 {
		return fallback
	}
	out := make([]paint.Color, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return fallback
		}
		c, err := paint.Hex(s)
		if err != nil {
			log.Printf("Effects: %v, using default colours", err)
			return fallback
		}
		out = append(out, c)
	}
	return out
}

// animatorFromConfig applies duration_ms/easing/repeat overrides under prefix.
func animatorFromConfig(cfg EffectConfig, prefix string, def Animator) Animator {
	a := def
	a.Duration = parseDurationOrDefault(cfg, prefix+"duration_ms", def.Duration.Milliseconds())
	a.Easing = parseEasingOrDefault(cfg, prefix+"easing", def.Easing)
	a.Repeat = parseRepeatOrDefault(cfg, prefix+"repeat", def.Repeat)
	return a
}
