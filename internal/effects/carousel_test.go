// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/framegrace/texelgrad/paint"
	"github.com/framegrace/texelgrad/raster"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestParabolaContinuousAcrossPhases(t *testing.T) {
	const r = 126.0
	for _, boundary := range []float64{phaseOneEnd, phaseTwoEnd} {
		before := ParabolaAt(boundary-1e-9, r)
		after := ParabolaAt(boundary+1e-9, r)
		if before.Phase == after.Phase {
			t.Fatalf("expected a phase change at %v", boundary)
		}
		got := []float64{after.K, after.VertexY, after.HalfWidth, after.EdgeDrop, after.Engage * after.A}
		want := []float64{before.K, before.VertexY, before.HalfWidth, before.EdgeDrop, before.Engage * before.A}
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
			t.Fatalf("jump at u=%v (-before +after):\n%s", boundary, diff)
		}
	}
}

func TestParabolaCurvatureGrowsWithinPhases(t *testing.T) {
	const r = 126.0
	prev := ParabolaAt(0, r)
	for i := 1; i <= 1000; i++ {
		s := ParabolaAt(float64(i)/1000, r)
		if s.Engage*s.A+1e-12 < prev.Engage*prev.A {
			t.Fatalf("curvature decreased at u=%v", float64(i)/1000)
		}
		if s.VertexY+1e-12 < prev.VertexY || s.K+1e-12 < prev.K {
			t.Fatalf("vertex or k moved backwards at u=%v", float64(i)/1000)
		}
		prev = s
	}
}

func TestCarouselStartRevealsNothing(t *testing.T) {
	size := paint.Size{W: 300, H: 300}
	r := CarouselRadius(size)
	if diff := cmp.Diff(126.0, r, approx); diff != "" {
		t.Fatalf("radius: %s", diff)
	}
	s := ParabolaAt(0, r)
	want := ParabolaState{Phase: 1, K: 0, VertexY: 0, HalfWidth: 132.3, EdgeDrop: 12.6, A: 12.6 / (132.3 * 132.3)}
	if diff := cmp.Diff(want, s, approx); diff != "" {
		t.Fatalf("state at u=0 (-want +got):\n%s", diff)
	}
	for x := 0.0; x <= 2*r; x += 3 {
		if y := s.Boundary(x, r); y != 0 {
			t.Fatalf("boundary(%v) = %v at u=0", x, y)
		}
	}
	frame := CarouselFrame(size, 0, 0, DefaultCarouselOptions())
	if len(frame.Commands) != 1 {
		t.Fatalf("u=0 should only paint the current gradient, got %d commands", len(frame.Commands))
	}
	if frame.Commands[0].Circle == nil {
		t.Fatalf("base fill must be clipped to the circle")
	}
}

func TestCarouselEndRevealsWholeCircle(t *testing.T) {
	size := paint.Size{W: 300, H: 300}
	r := CarouselRadius(size)
	s := ParabolaAt(1, r)
	if s.Phase != 3 || math.Abs(s.K-2) > 1e-9 {
		t.Fatalf("u=1 should be the end of phase 3, got %+v", s)
	}
	if diff := cmp.Diff(2.35*r, s.VertexY, approx); diff != "" {
		t.Fatalf("vertexY at u=1: %s", diff)
	}
	for x := 0.0; x <= 2*r; x += 3 {
		if y := s.Boundary(x, r); y != 2*r {
			t.Fatalf("boundary(%v) = %v, want %v", x, y, 2*r)
		}
	}

	opts := DefaultCarouselOptions()
	frame := CarouselFrame(size, 1, 0, opts)
	hard := 0
	for _, cmd := range frame.Commands[1:] {
		if cmd.Circle == nil {
			t.Fatalf("reveal command escaped the circle clip")
		}
		if cmd.Alpha == 1 {
			hard++
			if math.Abs(cmd.Clip.Y0-24) > 1e-9 || math.Abs(cmd.Clip.Y1-276) > 1e-9 {
				t.Fatalf("hard reveal should span the circle height, got %+v", cmd.Clip)
			}
		}
	}
	if hard != opts.Slices {
		t.Fatalf("hard reveals = %d, want %d", hard, opts.Slices)
	}
}

func TestCarouselLoopIsSeamless(t *testing.T) {
	size := paint.Size{W: 60, H: 60}
	opts := DefaultCarouselOptions()
	opts.Blur = 0
	render := raster.Options{Background: paint.Black, Supersample: 1}
	for i := 0; i < len(CarouselPalettes); i++ {
		end := raster.Render(CarouselFrame(size, 1, i, opts), 30, 30, render)
		next := raster.Render(CarouselFrame(size, 0, i+1, opts), 30, 30, render)
		for p := 0; p < len(end.Pix); p++ {
			d := int(end.Pix[p]) - int(next.Pix[p])
			if d < -1 || d > 1 {
				t.Fatalf("palette %d: byte %d differs (%d vs %d)", i, p, end.Pix[p], next.Pix[p])
			}
		}
	}

	a := CarouselFrame(size, 1, 2, opts)
	b := CarouselFrame(size, 0, 3, opts)
	endBrush := a.Commands[len(a.Commands)-1].Brush.(paint.LinearGradient)
	startBrush := b.Commands[0].Brush.(paint.LinearGradient)
	if diff := cmp.Diff(startBrush, endBrush); diff != "" {
		t.Fatalf("brush mismatch across the seam (-start +end):\n%s", diff)
	}
}

func TestCarouselSliceBandsAndOrder(t *testing.T) {
	size := paint.Size{W: 300, H: 300}
	r := CarouselRadius(size)
	const (
		left        = 24.0
		top, bottom = 24.0, 276.0
		featherPx   = 18.0
		glowUp      = 18.0
		glowDown    = 26.0
	)
	opts := DefaultCarouselOptions()
	frame := CarouselFrame(size, 0.5, 0, opts)
	cmds := frame.Commands
	if len(cmds) == 0 || cmds[0].Alpha != 1 || cmds[0].Clip != size.Bounds() {
		t.Fatalf("first command should be the full current fill")
	}
	next := opts.Palettes[1].Colors()[0]

	check := func(cmd paint.FillCommand, x0, x1, y0, y1, alpha float64, what string) {
		t.Helper()
		want := []float64{x0, y0, x1, y1, alpha}
		got := []float64{cmd.Clip.X0, cmd.Clip.Y0, cmd.Clip.X1, cmd.Clip.Y1, cmd.Alpha}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", what, diff)
		}
		if cmd.Circle == nil {
			t.Fatalf("%s escaped the circle clip", what)
		}
		lg, ok := cmd.Brush.(paint.LinearGradient)
		if !ok || lg.Stops[0].Color != next {
			t.Fatalf("%s should paint the next palette", what)
		}
	}

	state := ParabolaAt(0.5, r)
	sliceW := 2 * r / float64(opts.Slices)
	idx, groups := 1, 0
	for i := 0; i < opts.Slices; i++ {
		y := state.Boundary((float64(i)+0.5)*sliceW, r)
		if y <= 0.5 {
			continue
		}
		groups++
		x0, x1 := left+float64(i)*sliceW, left+float64(i+1)*sliceW
		y1 := top + y
		// 1 hard reveal, 9 feather bands, 11 glow bands (the 12th has alpha 0).
		if idx+21 > len(cmds) {
			t.Fatalf("slice %d: ran out of commands at %d", i, idx)
		}
		check(cmds[idx], x0, x1, top, y1, 1, "hard reveal")
		idx++
		for s := 1; s <= 9; s++ {
			check(cmds[idx], x0, x1, top, math.Min(y1+float64(s)*featherPx/9, bottom),
				float64(s)/9*0.16, "feather band")
			idx++
		}
		for g := 1; g <= 11; g++ {
			tg := float64(g) / 12
			check(cmds[idx], x0, x1, math.Max(y1-glowUp*tg, top), math.Min(y1+glowDown*tg, bottom),
				(1-tg)*(1-tg)*0.22, "glow band")
			idx++
		}
	}
	if groups == 0 {
		t.Fatalf("mid-sweep should reveal some slices")
	}
	if idx != len(cmds) {
		t.Fatalf("%d trailing commands after %d slice groups", len(cmds)-idx, groups)
	}
	for _, cmd := range cmds {
		if !(cmd.Alpha > 0) {
			t.Fatalf("zero-alpha band recorded: %+v", cmd.Clip)
		}
	}
}

func TestCarouselSlicesSkipShallowColumns(t *testing.T) {
	size := paint.Size{W: 300, H: 300}
	opts := DefaultCarouselOptions()
	frame := CarouselFrame(size, 0.5, 0, opts)
	if len(frame.Commands) <= 1 {
		t.Fatalf("mid sweep should reveal something")
	}
	r := CarouselRadius(size)
	for _, cmd := range frame.Commands[1:] {
		if cmd.Clip.Y1-150+r <= 0.5 {
			t.Fatalf("command below the reveal threshold: %+v", cmd.Clip)
		}
	}
	if frame.Blur != 16 {
		t.Fatalf("card blur = %v", frame.Blur)
	}
}

func TestCarouselVignetteOptional(t *testing.T) {
	size := paint.Size{W: 100, H: 100}
	opts := DefaultCarouselOptions()
	plain := CarouselFrame(size, 0, 0, opts)
	opts.Vignette = true
	withVignette := CarouselFrame(size, 0, 0, opts)
	if len(withVignette.Commands) != len(plain.Commands)+1 {
		t.Fatalf("vignette should add exactly one command")
	}
	if _, ok := withVignette.Commands[len(withVignette.Commands)-1].Brush.(paint.RadialGradient); !ok {
		t.Fatalf("last command should be the radial vignette")
	}
}

func TestPaletteIndexWraps(t *testing.T) {
	s := NewCarouselState(0, 6)
	want := []int{0, 1, 2, 3, 4, 5, 0, 1}
	for i, w := range want {
		if s.Index() != w {
			t.Fatalf("step %d: index %d, want %d", i, s.Index(), w)
		}
		s.Advance()
	}
	if PaletteIndex(-1, 6) != 5 || PaletteIndex(13, 6) != 1 || PaletteIndex(3, 0) != 0 {
		t.Fatalf("PaletteIndex wrap failed")
	}
}

func TestCarouselEffectAdvancesOncePerSweep(t *testing.T) {
	eff, err := Create(EffectSpec{ID: CarouselID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	carousel := eff.(*carouselEffect)
	start := time.Unix(100, 0)
	sweep := 5600 * time.Millisecond

	eff.Start(start)
	if carousel.PaletteIndex() != 0 {
		t.Fatalf("start index = %d", carousel.PaletteIndex())
	}
	eff.Update(start.Add(sweep / 2))
	if carousel.PaletteIndex() != 0 {
		t.Fatalf("index advanced mid sweep")
	}
	eff.Update(start.Add(sweep + time.Millisecond))
	if carousel.PaletteIndex() != 1 {
		t.Fatalf("index after one sweep = %d", carousel.PaletteIndex())
	}
	// A stalled frame clock must not skip advances.
	eff.Update(start.Add(4*sweep + time.Millisecond))
	if carousel.PaletteIndex() != 4 {
		t.Fatalf("index after four sweeps = %d", carousel.PaletteIndex())
	}
	eff.Update(start.Add(7*sweep + time.Millisecond))
	if carousel.PaletteIndex() != 1 {
		t.Fatalf("index should wrap, got %d", carousel.PaletteIndex())
	}

	eff.Stop()
	eff.Start(start)
	if carousel.PaletteIndex() != 0 {
		t.Fatalf("restart should begin at the first palette")
	}
}
