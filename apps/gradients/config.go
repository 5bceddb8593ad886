// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gradients/config.go
// Summary: Turns the gradients app config into screen options and effect specs.

package gradients

import (
	"log"

	"github.com/framegrace/texelgrad/config"
	"github.com/framegrace/texelgrad/internal/effects"
	"github.com/framegrace/texelgrad/internal/theming"
	"github.com/framegrace/texelgrad/paint"
)

// AppName is the config and devshell name of the screen.
const AppName = config.GradientsSection

// OptionsFromConfig overlays cfg onto the defaults. Bad values are logged and
// replaced by defaults.
func OptionsFromConfig(cfg config.Config) (Options, []effects.EffectSpec) {
	opts := DefaultOptions()
	g := cfg.Gradients()
	layout, err := ParseLayout(g.Layout)
	if err != nil {
		log.Printf("Gradients: %v, using list", err)
	}
	opts.Layout = layout
	opts.FPS = g.FPS
	opts.Supersample = g.Supersample
	opts.LogicalWidth = g.LogicalWidth
	opts.ClipCircle = g.ClipCircle
	opts.BoxCells = g.BoxCells
	if c, err := paint.Hex(g.Background); err != nil {
		log.Printf("Gradients: %v, using black", err)
	} else {
		opts.Background = c
	}
	opts.Theme = theming.WithOverrides(opts.Theme, cfg.ThemeOverrides())

	entries, err := cfg.EffectEntries()
	if err != nil {
		log.Printf("Gradients: %v, using the default effects", err)
		return opts, nil
	}
	list := make([]map[string]interface{}, len(entries))
	for i, entry := range entries {
		list[i] = entry
	}
	specs, err := effects.ParseEffectSpecs(list)
	if err != nil {
		log.Printf("Gradients: %v, using the default effects", err)
		return opts, nil
	}
	return opts, specs
}
