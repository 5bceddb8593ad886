// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/palettes.go
// Summary: Carousel palettes and the wrap-around palette index.

package effects

import "github.com/framegrace/texelgrad/paint"

// Palette is a four-colour gradient, light to dark.
type Palette [4]paint.Color

// Colors returns the palette as a slice.
func (p Palette) Colors() []paint.Color { return p[:] }

func mustPalette(hex ...string) Palette {
	var p Palette
	for i := range p {
		p[i] = paint.MustHex(hex[i])
	}
	return p
}

// CarouselPalettes cycles warm orange, olive, red, sky, violet, mint.
var CarouselPalettes = []Palette{
	mustPalette("#FFFFFF", "#FFD8A0", "#FF7A00", "#7A1400"),
	mustPalette("#FFFFFF", "#EFE7B0", "#6A6A00", "#1A1A1A"),
	mustPalette("#FFFFFF", "#FFE9B8", "#FF3D00", "#4A0A00"),
	mustPalette("#FFFFFF", "#D7F0FF", "#40C4FF", "#003A66"),
	mustPalette("#FFFFFF", "#E7E1FF", "#7C4DFF", "#1A0033"),
	mustPalette("#FFFFFF", "#DFF7E8", "#69F0AE", "#003319"),
}

// PaletteIndex wraps any index, negative included, into [0, n).
func PaletteIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
