// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gradients/card.go
// Summary: A captioned effect box: title, dim subtitle, and the rasterized effect.
// Notes: 1 cell shows 1×2 pixels, so a box of 2n×n cells is square in pixels.

package gradients

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgrad/internal/effects"
	"github.com/framegrace/texelgrad/paint"
	"github.com/framegrace/texelgrad/raster"
	"github.com/framegrace/texelgrad/texel"
)

const maxSubtitleLines = 3

type card struct {
	effect   effects.Effect
	renderer raster.Renderer
}

// cardGeometry is the cell layout of one card for a given width.
type cardGeometry struct {
	subtitle []string
	boxCols  int
	boxRows  int
}

// rows is the card height without the trailing gap.
func (g cardGeometry) rows() int {
	return 1 + len(g.subtitle) + g.boxRows
}

func (c *card) geometry(textWidth, boxRows int) cardGeometry {
	if boxRows < 1 {
		boxRows = 1
	}
	return cardGeometry{
		subtitle: wrapText(c.effect.Subtitle(), textWidth, maxSubtitleLines),
		boxCols:  boxRows * 2,
		boxRows:  boxRows,
	}
}

// draw paints the card with its top-left corner at (x, y). Rows outside buf
// are clipped by the cell writers.
func (c *card) draw(buf [][]texel.Cell, x, y, textWidth int, g cardGeometry, o Options) {
	bg := o.tcellBackground()
	title := tcell.StyleDefault.Bold(true).Foreground(o.Theme.Title).Background(bg)
	drawText(buf, x, y, textWidth, c.effect.Title(), title)
	sub := tcell.StyleDefault.Foreground(o.Theme.Subtitle).Background(bg)
	for i, line := range g.subtitle {
		drawText(buf, x, y+1+i, textWidth, line, sub)
	}
	boxY := y + 1 + len(g.subtitle)
	if boxY >= len(buf) || boxY+g.boxRows <= 0 {
		return
	}

	side := o.LogicalWidth
	frame := c.effect.Paint(paint.Size{W: side, H: side})
	img := c.renderer.Render(frame, g.boxCols, texel.PixelRows(g.boxRows), raster.Options{
		Background:  o.Background,
		Supersample: o.Supersample,
		CircleMask:  o.ClipCircle,
	})
	r, gg, b, _ := o.Background.RGBA8()
	texel.BlitHalfBlocks(buf, x, boxY, img, color.NRGBA{R: r, G: gg, B: b, A: 255})
}
