// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paint/color.go
// Summary: Straight-alpha colours with go-colorful backed parsing and blending.

package paint

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) sRGB colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{1, 1, 1, 0}
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
)

// Hex parses "#RRGGBB" or "#RGB" into an opaque colour.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("paint: parse colour %q: %w", s, err)
	}
	return FromColorful(c, 1), nil
}

// MustHex is Hex for package-level palettes; it panics on malformed input.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a go-colorful colour with the given alpha.
func FromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: Clamp01(alpha)}
}

// Colorful drops alpha and returns the go-colorful representation.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// Mix interpolates straight sRGB components and alpha.
func (c Color) Mix(o Color, t float64) Color {
	t = Clamp01(t)
	rgb := c.Colorful().BlendRgb(o.Colorful(), t)
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: Lerp(c.A, o.A, t)}
}

// Hex formats the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// RGBA8 returns 8-bit straight components, rounded.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(Clamp01(v)*255 + 0.5)
}
