// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/wave.go
// Summary: Sliced gradient displaced by a breathing parabola plus two interfering sine waves.
// Notes: Harmonic multipliers are integers so the loop closes: t=1 paints the same frame as t=0.

package effects

import (
	"math"
	"time"

	"github.com/framegrace/texelgrad/paint"
)

const WaveID = "parabola-wave"

var waveStops = []paint.ColorStop{
	{Offset: 0.00, Color: paint.MustHex("#B08A00")},
	{Offset: 0.55, Color: paint.MustHex("#1A1A1A")},
	{Offset: 0.78, Color: paint.MustHex("#E00000")},
	{Offset: 1.00, Color: paint.MustHex("#F06400")},
}

// WaveParams holds the shape constants of the wave. Lengths are fractions of
// the surface width or height.
type WaveParams struct {
	Slices int

	VertexLow, VertexHigh float64 // vertex range, fractions of H
	DropWide, DropNarrow  float64 // parabola depth over the full width, fractions of H
	Breathing             float64 // horizontal centre swing, fraction of W
	A1, A2                float64 // wave amplitudes, fractions of H
	Freq1, Freq2          float64 // spatial frequencies across the width
	GlobalDy              float64 // whole-band vertical sway, fraction of H
	DriftShift            float64 // brush x shift per unit drift, fraction of W
	Span                  float64 // brush length, fraction of H

	// Temporal harmonics of the breathing, second wave and sway terms.
	BreathHarmonic, Wave2Harmonic, SwayHarmonic float64

	Vignette       bool
	VignetteRadius float64 // fraction of min(W, H)
}

// DefaultWaveParams returns the showcase shape.
func DefaultWaveParams() WaveParams {
	return WaveParams{
		Slices:         180,
		VertexLow:      0.18,
		VertexHigh:     0.82,
		DropWide:       0.18,
		DropNarrow:     0.72,
		Breathing:      0.06,
		A1:             0.10,
		A2:             0.05,
		Freq1:          2.4,
		Freq2:          1.3,
		GlobalDy:       0.08,
		DriftShift:     0.18,
		Span:           1.35,
		BreathHarmonic: 1,
		Wave2Harmonic:  1,
		SwayHarmonic:   1,
		Vignette:       true,
		VignetteRadius: 0.62,
	}
}

// WaveOffsets returns the brush centre shiftY of every slice at time t.
func WaveOffsets(size paint.Size, t float64, p WaveParams) []float64 {
	if size.Empty() || p.Slices <= 0 {
		return nil
	}
	w, h := size.W, size.H
	twoPi := 2 * math.Pi
	sliceW := w / float64(p.Slices)

	vertexY := paint.Lerp(p.VertexLow*h, p.VertexHigh*h, paint.Sin01(twoPi*t))
	cx := w/2 + p.Breathing*w*math.Sin(twoPi*t*p.BreathHarmonic)
	kWide := 4 * p.DropWide * h / (w * w)
	kNarrow := 4 * p.DropNarrow * h / (w * w)
	k := paint.Lerp(kWide, kNarrow, paint.Sin01(twoPi*t+math.Pi/2))
	phase1 := twoPi * t
	phase2 := twoPi * t * p.Wave2Harmonic
	globalDy := p.GlobalDy * h * math.Sin(twoPi*t*p.SwayHarmonic)

	out := make([]float64, p.Slices)
	for i := range out {
		x0 := float64(i) * sliceW
		x1 := float64(i+1) * sliceW
		xm := (x0 + x1) / 2
		d := xm - cx
		wave := p.A1*h*math.Sin(phase1+(xm/w)*twoPi*p.Freq1) +
			p.A2*h*math.Sin(phase2+(xm/w)*twoPi*p.Freq2)
		out[i] = vertexY - k*d*d + wave + globalDy
	}
	return out
}

// WaveFrame paints the wave at time t with horizontal drift in [-1, 1].
func WaveFrame(size paint.Size, t, drift float64, p WaveParams) paint.Frame {
	rec := paint.NewRecorder(size)
	offsets := WaveOffsets(size, t, p)
	if offsets == nil {
		return rec.Frame()
	}
	w, h := size.W, size.H
	sliceW := w / float64(p.Slices)
	dx := drift * p.DriftShift * w
	half := p.Span * h / 2
	for i, shiftY := range offsets {
		x0 := float64(i) * sliceW
		x1 := float64(i+1) * sliceW
		xm := (x0 + x1) / 2
		rec.Fill(paint.Rect{X0: x0, Y0: 0, X1: x1, Y1: h}, paint.LinearGradient{
			Stops: waveStops,
			Start: paint.Point{X: xm + dx, Y: shiftY - half},
			End:   paint.Point{X: xm + dx, Y: shiftY + half},
		}, 1)
	}
	if p.Vignette {
		rec.FillAll(paint.RadialGradient{
			Stops:  paint.EvenStops(paint.Transparent, paint.White),
			Center: size.Center(),
			Radius: p.VignetteRadius * size.MinSide(),
		}, 1)
	}
	return rec.Frame()
}

type waveEffect struct {
	effectBase
	params WaveParams
}

func newWaveEffect(cfg EffectConfig) *waveEffect {
	p := DefaultWaveParams()
	p.Slices = parseIntOrDefault(cfg, "slices", p.Slices)
	p.Vignette = parseBoolOrDefault(cfg, "vignette", p.Vignette)
	p.BreathHarmonic = math.Round(parseFloatOrDefault(cfg, "breath_harmonic", p.BreathHarmonic))
	p.Wave2Harmonic = math.Round(parseFloatOrDefault(cfg, "wave2_harmonic", p.Wave2Harmonic))
	p.SwayHarmonic = math.Round(parseFloatOrDefault(cfg, "sway_harmonic", p.SwayHarmonic))

	e := &waveEffect{
		effectBase: newEffectBase(WaveID,
			"3) Sinusoid",
			"Cyclic sinusoid oscillation"),
		params: p,
	}
	e.timeline.Add("t", animatorFromConfig(cfg, "", Animator{
		From:     0,
		To:       1,
		Duration: 5200 * time.Millisecond,
		Easing:   EaseLinear,
		Repeat:   RepeatRestart,
	}))
	e.timeline.Add("drift", animatorFromConfig(cfg, "drift_", Animator{
		From:     -1,
		To:       1,
		Duration: 2400 * time.Millisecond,
		Easing:   EaseLinear,
		Repeat:   RepeatReverse,
	}))
	return e
}

func (e *waveEffect) Paint(size paint.Size) paint.Frame {
	return WaveFrame(size, e.timeline.Get("t"), e.timeline.Get("drift"), e.params)
}

func init() {
	Register(WaveID, func(cfg EffectConfig) (Effect, error) {
		return newWaveEffect(cfg), nil
	})
}
