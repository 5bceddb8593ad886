// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/halfblock.go
// Summary: Shows raster images in a cell buffer using upper half-block glyphs.
// Notes: Each cell carries two vertically stacked pixels: fg is the top one, bg the bottom.

package texel

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// UpperHalfBlock is drawn with the top pixel as foreground.
const UpperHalfBlock = '▀'

// PixelRows returns the image height needed to fill rows cells.
func PixelRows(rows int) int { return rows * 2 }

// TrueColor converts an NRGBA pixel to a tcell colour, composited over bg.
func TrueColor(c color.NRGBA, bg color.NRGBA) tcell.Color {
	if c.A == 255 {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	a := int32(c.A)
	mix := func(s, d uint8) int32 { return (int32(s)*a + int32(d)*(255-a) + 127) / 255 }
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

// BlitHalfBlocks draws img into buf with its top-left corner at cell (x, y).
// Pixel rows 2k and 2k+1 land in cell row y+k. A missing last pixel row uses bg.
func BlitHalfBlocks(buf [][]Cell, x, y int, img *image.NRGBA, bg color.NRGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	fill := tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		cy := y + (py-b.Min.Y)/2
		if cy < 0 || cy >= len(buf) {
			continue
		}
		row := buf[cy]
		for px := b.Min.X; px < b.Max.X; px++ {
			cx := x + px - b.Min.X
			if cx < 0 || cx >= len(row) {
				continue
			}
			top := TrueColor(img.NRGBAAt(px, py), bg)
			bottom := fill
			if py+1 < b.Max.Y {
				bottom = TrueColor(img.NRGBAAt(px, py+1), bg)
			}
			row[cx] = Cell{
				Ch:    UpperHalfBlock,
				Style: tcell.StyleDefault.Foreground(top).Background(bottom),
			}
		}
	}
}
