// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/canvas.go
// Summary: CPU rasterizer executing paint fill commands into a float colour buffer.
// Usage: Render(frame, w, h, opts) for one-shot use, or keep a Canvas per card and Reset it.
// Notes: Pixels are sampled at their centres, so slice clips that share an edge
// partition the pixel columns exactly.

package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/framegrace/texelgrad/paint"
)

// Canvas is a pixel buffer addressed in surface units.
type Canvas struct {
	w, h   int
	sx, sy float64
	pix    []paint.Color
}

// NewCanvas allocates a w×h pixel canvas that maps size onto its pixels.
func NewCanvas(w, h int, size paint.Size) *Canvas {
	c := &Canvas{}
	c.Reset(w, h, size, paint.Transparent)
	return c
}

// Reset resizes the canvas if needed and fills it with bg.
func (c *Canvas) Reset(w, h int, size paint.Size, bg paint.Color) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if cap(c.pix) < w*h {
		c.pix = make([]paint.Color, w*h)
	}
	c.pix = c.pix[:w*h]
	c.w, c.h = w, h
	c.sx, c.sy = 0, 0
	if size.W > 0 {
		c.sx = float64(w) / size.W
	}
	if size.H > 0 {
		c.sy = float64(h) / size.H
	}
	for i := range c.pix {
		c.pix[i] = bg
	}
}

// Bounds returns the pixel dimensions.
func (c *Canvas) Bounds() (int, int) { return c.w, c.h }

// At returns the straight-alpha colour of pixel (x, y).
func (c *Canvas) At(x, y int) paint.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return paint.Transparent
	}
	return c.pix[y*c.w+x]
}

// pixelSpan returns the half-open pixel range whose centres fall in [lo, hi).
func pixelSpan(lo, hi, scale float64, limit int) (int, int) {
	a := int(math.Ceil(lo*scale - 0.5))
	b := int(math.Ceil(hi*scale - 0.5))
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

// Fill executes a single command.
func (c *Canvas) Fill(cmd paint.FillCommand) {
	if cmd.Brush == nil || c.sx == 0 || c.sy == 0 {
		return
	}
	alpha := paint.Clamp01(cmd.Alpha)
	if alpha == 0 || cmd.Clip.Empty() {
		return
	}
	clip := cmd.Clip
	if cmd.Circle != nil {
		clip = clip.Intersect(cmd.Circle.Bounds())
		if clip.Empty() {
			return
		}
	}
	x0, x1 := pixelSpan(clip.X0, clip.X1, c.sx, c.w)
	y0, y1 := pixelSpan(clip.Y0, clip.Y1, c.sy, c.h)
	for py := y0; py < y1; py++ {
		sy := (float64(py) + 0.5) / c.sy
		row := c.pix[py*c.w : (py+1)*c.w]
		for px := x0; px < x1; px++ {
			p := paint.Point{X: (float64(px) + 0.5) / c.sx, Y: sy}
			if cmd.Circle != nil && !cmd.Circle.Contains(p) {
				continue
			}
			src := cmd.Brush.ColorAt(p)
			row[px] = Over(row[px], src, alpha)
		}
	}
}

// Draw executes every command of a frame in order. Blur is not applied here.
func (c *Canvas) Draw(frame paint.Frame) {
	for _, cmd := range frame.Commands {
		c.Fill(cmd)
	}
}

// Over composites src at the given opacity onto dst (straight alpha).
func Over(dst, src paint.Color, opacity float64) paint.Color {
	sa := src.A * opacity
	if sa >= 1 {
		return src.WithAlpha(1)
	}
	if sa <= 0 {
		return dst
	}
	da := dst.A * (1 - sa)
	outA := sa + da
	if outA <= 0 {
		return paint.Transparent
	}
	return paint.Color{
		R: (src.R*sa + dst.R*da) / outA,
		G: (src.G*sa + dst.G*da) / outA,
		B: (src.B*sa + dst.B*da) / outA,
		A: outA,
	}
}

// Image converts the buffer to an NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			r, g, b, a := c.pix[y*c.w+x].RGBA8()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
