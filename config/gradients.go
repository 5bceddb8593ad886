// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/gradients.go
// Summary: Typed views of texelgrad.json and the gradients app sections.

package config

import "fmt"

// Section names of apps/gradients/config.json.
const (
	GradientsSection = "gradients"
	EffectsSection   = "gradients.effects"
	ThemeSection     = "theme_overrides"
)

// Gradients is the screen section of the gradients app config.
type Gradients struct {
	Layout       string
	FPS          int
	Supersample  int
	LogicalWidth float64
	ClipCircle   bool
	BoxCells     int
	Background   string
}

// DefaultGradients mirrors the embedded apps/gradients/config.json.
func DefaultGradients() Gradients {
	return Gradients{
		Layout:       "list",
		FPS:          30,
		Supersample:  2,
		LogicalWidth: 300,
		ClipCircle:   true,
		BoxCells:     24,
		Background:   "#000000",
	}
}

func (g Gradients) section() Section {
	return Section{
		"layout":        g.Layout,
		"fps":           g.FPS,
		"supersample":   g.Supersample,
		"logical_width": g.LogicalWidth,
		"clip_circle":   g.ClipCircle,
		"box_cells":     g.BoxCells,
		"background":    g.Background,
	}
}

// Gradients reads the screen section; missing or mistyped keys keep their defaults.
func (c Config) Gradients() Gradients {
	def := DefaultGradients()
	s := GradientsSection
	return Gradients{
		Layout:       c.GetString(s, "layout", def.Layout),
		FPS:          c.GetInt(s, "fps", def.FPS),
		Supersample:  c.GetInt(s, "supersample", def.Supersample),
		LogicalWidth: c.GetFloat(s, "logical_width", def.LogicalWidth),
		ClipCircle:   c.GetBool(s, "clip_circle", def.ClipCircle),
		BoxCells:     c.GetInt(s, "box_cells", def.BoxCells),
		Background:   c.GetString(s, "background", def.Background),
	}
}

// SetGradients replaces the screen section with g.
func (c Config) SetGradients(g Gradients) {
	c[GradientsSection] = g.section()
}

// EffectEntries returns the objects of the effects list in order, each
// carrying a string "id". A missing list yields nil; a malformed one an error.
func (c Config) EffectEntries() ([]Section, error) {
	raw, ok := c.lookup(EffectsSection, "list")
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s.list: want a list, got %T", EffectsSection, raw)
	}
	out := make([]Section, 0, len(items))
	for i, item := range items {
		entry := asSection(item)
		if entry == nil {
			return nil, fmt.Errorf("%s.list[%d]: want an object, got %T", EffectsSection, i, item)
		}
		if id, _ := entry["id"].(string); id == "" {
			return nil, fmt.Errorf("%s.list[%d]: missing id", EffectsSection, i)
		}
		out = append(out, entry)
	}
	return out, nil
}

// ThemeOverrides returns the theme_overrides section, or nil.
func (c Config) ThemeOverrides() Section {
	return c.Section(ThemeSection)
}

// DefaultApp is the app cmd/texelgrad starts.
func (c Config) DefaultApp() string {
	return c.GetString("", "defaultApp", GradientsSection)
}

// LogFile is where logs go when no -log flag is given; empty discards them.
func (c Config) LogFile() string {
	return c.GetString("", "log_file", "")
}
