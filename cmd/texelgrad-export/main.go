// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelgrad-export/main.go
// Summary: Renders frames of one gradient effect to PNG files.
// Usage: texelgrad-export -effect parabola-carousel -frames 60 -out /tmp/frames

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/framegrace/texelgrad/internal/effects"
	"github.com/framegrace/texelgrad/paint"
	"github.com/framegrace/texelgrad/raster"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type exportOptions struct {
	effect  string
	size    paint.Size
	scale   float64
	at      time.Duration
	frames  int
	fps     int
	out     string
	palette int
	raster  raster.Options
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	paths, err := export(opts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func parseFlags(args []string) (exportOptions, error) {
	fs := flag.NewFlagSet("texelgrad-export", flag.ContinueOnError)
	effectID := fs.String("effect", effects.CarouselID, "effect id: "+strings.Join(effects.RegisteredIDs(), ", "))
	size := fs.String("size", "300x300", "surface size in logical units, WxH")
	scale := fs.Float64("scale", 1, "pixels per logical unit")
	at := fs.Duration("at", 0, "time of the first frame after the effect starts")
	frames := fs.Int("frames", 1, "number of frames to write")
	fps := fs.Int("fps", 30, "frame rate of the synthetic clock")
	out := fs.String("out", ".", "output directory")
	palette := fs.Int("palette", 0, "starting palette of the carousel")
	circle := fs.Bool("circle", true, "mask the frame to the inscribed circle")
	supersample := fs.Int("supersample", 2, "render at this multiple and scale down")
	if err := fs.Parse(args); err != nil {
		return exportOptions{}, err
	}

	sz, err := parseSize(*size)
	if err != nil {
		return exportOptions{}, err
	}
	switch {
	case *scale <= 0:
		return exportOptions{}, fmt.Errorf("scale must be positive, got %g", *scale)
	case *frames <= 0:
		return exportOptions{}, fmt.Errorf("frames must be positive, got %d", *frames)
	case *fps <= 0:
		return exportOptions{}, fmt.Errorf("fps must be positive, got %d", *fps)
	case *at < 0:
		return exportOptions{}, fmt.Errorf("at must not be negative, got %v", *at)
	}

	ro := raster.DefaultOptions()
	ro.Supersample = max(1, *supersample)
	ro.CircleMask = *circle
	return exportOptions{
		effect:  *effectID,
		size:    sz,
		scale:   *scale,
		at:      *at,
		frames:  *frames,
		fps:     *fps,
		out:     *out,
		palette: *palette,
		raster:  ro,
	}, nil
}

// parseSize reads "WxH" in logical units.
func parseSize(s string) (paint.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return paint.Size{}, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return paint.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return paint.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return paint.Size{}, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return paint.Size{W: w, H: h}, nil
}

// frameTimes returns the synthetic clock readings for each frame.
func frameTimes(start time.Time, at time.Duration, frames, fps int) []time.Time {
	out := make([]time.Time, frames)
	for k := range out {
		out[k] = start.Add(at + time.Duration(k)*time.Second/time.Duration(fps))
	}
	return out
}

func framePath(dir, effectID string, k int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%04d.png", effectID, k))
}

func export(opts exportOptions) ([]string, error) {
	spec := effects.EffectSpec{ID: opts.effect, Config: effects.EffectConfig{}}
	if opts.effect == effects.CarouselID {
		spec.Config["palette"] = opts.palette
	}
	eff, err := effects.Create(spec)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	pxW := max(1, int(opts.size.W*opts.scale+0.5))
	pxH := max(1, int(opts.size.H*opts.scale+0.5))

	start := time.Unix(0, 0)
	eff.Start(start)
	defer eff.Stop()

	var r raster.Renderer
	paths := make([]string, 0, opts.frames)
	for k, now := range frameTimes(start, opts.at, opts.frames, opts.fps) {
		eff.Update(now)
		img := r.Render(eff.Paint(opts.size), pxW, pxH, opts.raster)
		path := framePath(opts.out, opts.effect, k)
		if err := imaging.Save(img, path); err != nil {
			return paths, fmt.Errorf("save frame %d: %w", k, err)
		}
		paths = append(paths, path)
	}
	log.Printf("Export: wrote %d frames of %s", len(paths), opts.effect)
	return paths, nil
}
