// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/theme.go
// Summary: Text colours of the gradients screen, with per-app overrides from config.

package theming

import (
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrad/config"
)

// Theme holds the colours used around the effect boxes.
type Theme struct {
	Title     tcell.Color
	Subtitle  tcell.Color
	Indicator tcell.Color
	Active    tcell.Color
	Hint      tcell.Color
}

// Default is white titles over a dim grey for secondary text.
func Default() Theme {
	return Theme{
		Title:     tcell.ColorWhite,
		Subtitle:  tcell.NewHexColor(0x9AA4AF),
		Indicator: tcell.NewHexColor(0x9AA4AF),
		Active:    tcell.ColorWhite,
		Hint:      tcell.ColorWhite,
	}
}

// ForApp returns the default theme merged with the app's theme_overrides section.
func ForApp(app string) Theme {
	base := Default()
	if app == "" {
		return base
	}
	return WithOverrides(base, config.App(app).ThemeOverrides())
}

// WithOverrides replaces the colours named in overrides. Values are hex
// strings ("#rrggbb") or tcell colour names; unknown keys and bad values are
// logged and ignored.
func WithOverrides(base Theme, overrides config.Section) Theme {
	slots := map[string]*tcell.Color{
		"title":     &base.Title,
		"subtitle":  &base.Subtitle,
		"indicator": &base.Indicator,
		"active":    &base.Active,
		"hint":      &base.Hint,
	}
	for key, raw := range overrides {
		slot, ok := slots[key]
		if !ok {
			log.Printf("Theme: unknown colour %q", key)
			continue
		}
		s, _ := raw.(string)
		c, ok := parseColor(s)
		if !ok {
			log.Printf("Theme: bad colour %v for %q", raw, key)
			continue
		}
		*slot = c
	}
	return base
}

func parseColor(s string) (tcell.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return tcell.ColorDefault, false
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}
