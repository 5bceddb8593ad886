// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Fills keys missing from loaded files so hand-edited configs stay usable.

package config

func applySystemDefaults(cfg Config) {
	cfg.RegisterDefaults("", Section{
		"defaultApp": GradientsSection,
		"log_file":   "",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if app != GradientsSection {
		return
	}
	cfg.RegisterDefaults(GradientsSection, DefaultGradients().section())
	cfg.RegisterDefaults(EffectsSection, Section{"list": defaultEffectList()})
}

func defaultEffectList() []interface{} {
	return []interface{}{
		map[string]interface{}{"id": "rotating-linear"},
		map[string]interface{}{"id": "vertical-linear", "blur": 16},
		map[string]interface{}{"id": "parabola-wave", "vignette": true},
		map[string]interface{}{"id": "parabola-carousel", "blur": 16, "vignette": false},
	}
}
