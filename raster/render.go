// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: raster/render.go
// Summary: One-shot frame rendering with blur post-process, resampling, and circular masking.

package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/framegrace/texelgrad/paint"
)

// Options controls how a frame is turned into an image.
type Options struct {
	// Background is painted before the first command.
	Background paint.Color
	// Supersample renders at this multiple of the target size and scales down.
	Supersample int
	// CircleMask replaces everything outside the inscribed circle with Background.
	CircleMask bool
}

// DefaultOptions renders on opaque black with 2x supersampling.
func DefaultOptions() Options {
	return Options{Background: paint.Black, Supersample: 2}
}

// Renderer keeps its canvas between frames so per-frame allocations stay small.
type Renderer struct {
	canvas Canvas
}

// Render rasterizes frame into a w×h image.
func (r *Renderer) Render(frame paint.Frame, w, h int, opts Options) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	r.canvas.Reset(w*ss, h*ss, frame.Size, opts.Background)
	if !frame.Size.Empty() {
		r.canvas.Draw(frame)
	}
	img := r.canvas.Image()

	if frame.Blur > 0 && !frame.Size.Empty() {
		sigma := frame.Blur * float64(w*ss) / frame.Size.W
		img = imaging.Blur(img, sigma)
	}
	if ss > 1 {
		img = Resample(img, w, h)
	}
	if opts.CircleMask {
		MaskCircle(img, opts.Background)
	}
	return img
}

// Render is a convenience wrapper around a throwaway Renderer.
func Render(frame paint.Frame, w, h int, opts Options) *image.NRGBA {
	var r Renderer
	return r.Render(frame, w, h, opts)
}

// Resample scales src to w×h with bilinear filtering.
func Resample(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// MaskCircle paints bg over every pixel whose centre lies outside the circle
// inscribed in the image bounds.
func MaskCircle(img *image.NRGBA, bg paint.Color) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	radius := math.Min(w, h) / 2
	cx, cy := w/2, h/2
	r8, g8, b8, a8 := bg.RGBA8()
	fill := color.NRGBA{R: r8, G: g8, B: b8, A: a8}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := float64(y-b.Min.Y) + 0.5 - cy
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x-b.Min.X) + 0.5 - cx
			if dx*dx+dy*dy > radius*radius {
				img.SetNRGBA(x, y, fill)
			}
		}
	}
}
