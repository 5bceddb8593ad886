// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/carousel.go
// Summary: Palette carousel revealed through a descending parabolic mask inside a circle.
// Usage: CarouselFrame paints one instant; the registered effect drives u and the palette index.
// Notes: u=1 with palette i paints the same pixels as u=0 with palette i+1, so the loop has no seam.

package effects

import (
	"math"
	"time"

	"github.com/framegrace/texelgrad/paint"
)

const CarouselID = "parabola-carousel"

// Sweep schedule, as fractions of u.
const (
	phaseOneEnd = 0.22
	phaseTwoEnd = 0.82
)

// ParabolaState is the mask geometry at one instant, in circle-local units
// where x and y run over [0, 2r].
type ParabolaState struct {
	Phase     int
	K         float64
	VertexY   float64
	HalfWidth float64
	EdgeDrop  float64
	A         float64
	// Engage scales the branches in; 0 at u=0, 1 from the end of phase one.
	Engage float64
}

// ParabolaAt evaluates the three-phase sweep for u in [0, 1] and circle radius r.
func ParabolaAt(u, r float64) ParabolaState {
	u = paint.Clamp01(u)
	pathLen := 2.35 * r
	hwWide := 1.05 * r
	hwNarrow := 0.42 * r
	hwMid := paint.Lerp(hwWide, hwNarrow, 0.45)
	hwLate := paint.Lerp(hwWide, hwNarrow, 0.85)

	var s ParabolaState
	switch {
	case u <= phaseOneEnd:
		t := paint.Smoothstep(u / phaseOneEnd)
		s.Phase = 1
		s.K = paint.Lerp(0, 0.66, t)
		s.VertexY = 0
		s.HalfWidth = paint.Lerp(hwWide, hwMid, t)
		s.Engage = t
	case u <= phaseTwoEnd:
		t := paint.Smoothstep((u - phaseOneEnd) / (phaseTwoEnd - phaseOneEnd))
		s.Phase = 2
		s.K = paint.Lerp(0.66, 1.4, t)
		s.VertexY = paint.Lerp(0, 0.70*pathLen, t)
		s.HalfWidth = paint.Lerp(hwMid, hwLate, t)
		s.Engage = 1
	default:
		t := paint.Smoothstep((u - phaseTwoEnd) / (1 - phaseTwoEnd))
		s.Phase = 3
		s.K = paint.Lerp(1.4, 2.0, t)
		s.VertexY = paint.Lerp(0.70*pathLen, pathLen, t)
		s.HalfWidth = paint.Lerp(hwLate, hwNarrow, t)
		s.Engage = 1
	}
	s.EdgeDrop = paint.Lerp(0.10*r, 0.78*r, paint.Clamp01(s.K/2))
	if s.HalfWidth > 0 {
		s.A = s.EdgeDrop / (s.HalfWidth * s.HalfWidth)
	}
	return s
}

// Boundary returns the reveal depth below the top of the circle at local x.
func (s ParabolaState) Boundary(lx, r float64) float64 {
	d := lx - r
	return paint.Clamp(s.VertexY+s.Engage*s.A*d*d, 0, 2*r)
}

// CarouselOptions tunes the carousel rendering.
type CarouselOptions struct {
	Slices       int
	FeatherSteps int
	GlowSteps    int
	Vignette     bool
	Blur         float64
	Palettes     []Palette
}

// DefaultCarouselOptions matches the showcase card.
func DefaultCarouselOptions() CarouselOptions {
	return CarouselOptions{
		Slices:       280,
		FeatherSteps: 9,
		GlowSteps:    12,
		Blur:         16,
		Palettes:     CarouselPalettes,
	}
}

// CarouselRadius is the radius of the carousel circle on a surface.
func CarouselRadius(size paint.Size) float64 { return 0.42 * size.MinSide() }

// CarouselFrame paints sweep progress u with palette index as the current
// gradient and index+1 as the one being revealed.
func CarouselFrame(size paint.Size, u float64, index int, opts CarouselOptions) paint.Frame {
	rec := paint.NewRecorder(size)
	palettes := opts.Palettes
	if size.Empty() || len(palettes) == 0 {
		return rec.Frame()
	}
	r := CarouselRadius(size)
	if !(r > 0) {
		return rec.Frame()
	}
	center := size.Center()
	left, top := center.X-r, center.Y-r
	right, bottom := center.X+r, center.Y+r

	cur := palettes[PaletteIndex(index, len(palettes))]
	nxt := palettes[PaletteIndex(index+1, len(palettes))]

	// Direction drift is periodic in u; reducing u keeps u=1 and u=0 bit-identical.
	du := u - math.Floor(u)
	dx := 0.16 * r * math.Sin(2*math.Pi*du)
	dy := 0.10 * r * math.Cos(2*math.Pi*du)
	start := paint.Point{X: left + dx, Y: top + dy}
	end := paint.Point{X: right + dx, Y: bottom + dy}
	curBrush := paint.LinearGradient{Stops: paint.EvenStops(cur.Colors()...), Start: start, End: end}
	nxtBrush := paint.LinearGradient{Stops: paint.EvenStops(nxt.Colors()...), Start: start, End: end}

	state := ParabolaAt(u, r)

	slices := opts.Slices
	if slices <= 0 {
		slices = 1
	}
	sliceW := 2 * r / float64(slices)
	featherPx := math.Max(18, 0.085*r)
	glowUp := math.Max(18, 0.10*r)
	glowDown := math.Max(26, 0.16*r)

	rec.ClipCircle(paint.Circle{Center: center, Radius: r}, func() {
		rec.FillAll(curBrush, 1)

		for i := 0; i < slices; i++ {
			lx0 := float64(i) * sliceW
			lx1 := float64(i+1) * sliceW
			y := state.Boundary((lx0+lx1)/2, r)
			if y <= 0.5 {
				continue
			}
			x0, x1 := left+lx0, left+lx1
			y1 := top + y

			rec.Fill(paint.Rect{X0: x0, Y0: top, X1: x1, Y1: y1}, nxtBrush, 1)

			if n := opts.FeatherSteps; n > 0 {
				step := featherPx / float64(n)
				for s := 1; s <= n; s++ {
					alpha := float64(s) / float64(n) * 0.16
					bot := math.Min(y1+float64(s)*step, bottom)
					rec.Fill(paint.Rect{X0: x0, Y0: top, X1: x1, Y1: bot}, nxtBrush, alpha)
				}
			}

			if n := opts.GlowSteps; n > 0 {
				for g := 1; g <= n; g++ {
					tg := float64(g) / float64(n)
					falloff := 1 - tg
					alpha := falloff * falloff * 0.22
					gTop := math.Max(y1-glowUp*tg, top)
					gBot := math.Min(y1+glowDown*tg, bottom)
					rec.Fill(paint.Rect{X0: x0, Y0: gTop, X1: x1, Y1: gBot}, nxtBrush, alpha)
				}
			}
		}

		if opts.Vignette {
			rec.FillAll(paint.RadialGradient{
				Stops:  paint.EvenStops(paint.Transparent, paint.White),
				Center: center,
				Radius: 1.28 * r,
			}, 1)
		}
	})
	rec.SetBlur(opts.Blur)
	return rec.Frame()
}

// CarouselState owns the current palette index.
type CarouselState struct {
	index int
	n     int
}

// NewCarouselState starts at palette start of n.
func NewCarouselState(start, n int) *CarouselState {
	return &CarouselState{index: PaletteIndex(start, n), n: n}
}

// Index is the palette fully visible at u=0.
func (s *CarouselState) Index() int { return s.index }

// Next is the palette being revealed.
func (s *CarouselState) Next() int { return PaletteIndex(s.index+1, s.n) }

// Advance moves to the next palette.
func (s *CarouselState) Advance() { s.index = PaletteIndex(s.index+1, s.n) }

type carouselEffect struct {
	effectBase
	opts      CarouselOptions
	start     int
	state     *CarouselState
	lastCycle int64
}

func newCarouselEffect(cfg EffectConfig) *carouselEffect {
	opts := DefaultCarouselOptions()
	opts.Slices = parseIntOrDefault(cfg, "slices", opts.Slices)
	opts.FeatherSteps = parseIntOrDefault(cfg, "feather_steps", opts.FeatherSteps)
	opts.GlowSteps = parseIntOrDefault(cfg, "glow_steps", opts.GlowSteps)
	opts.Vignette = parseBoolOrDefault(cfg, "vignette", opts.Vignette)
	opts.Blur = parseFloatOrDefault(cfg, "blur", opts.Blur)
	start := parseIntOrDefault(cfg, "palette", 0)

	e := &carouselEffect{
		effectBase: newEffectBase(CarouselID,
			"4) Paraboloid",
			"The coefficient k sets how fast the branches grow (wider or narrower) and moves "+
				"the parabola vertex. One leaves, the next begins. 0 <= k <= 2"),
		opts:  opts,
		start: start,
		state: NewCarouselState(start, len(opts.Palettes)),
	}
	e.timeline.Add("u", animatorFromConfig(cfg, "", Animator{
		From:     0,
		To:       1,
		Duration: 5600 * time.Millisecond,
		Easing:   EaseSweep,
		Repeat:   RepeatRestart,
	}))
	return e
}

func (e *carouselEffect) Start(now time.Time) {
	e.state = NewCarouselState(e.start, len(e.opts.Palettes))
	e.lastCycle = 0
	e.effectBase.Start(now)
}

func (e *carouselEffect) Stop() {
	e.effectBase.Stop()
	e.state = NewCarouselState(e.start, len(e.opts.Palettes))
	e.lastCycle = 0
}

// Update advances the palette once per completed sweep, however many frames
// were dropped in between.
func (e *carouselEffect) Update(now time.Time) {
	e.effectBase.Update(now)
	cycle := e.timeline.Cycle("u")
	for ; e.lastCycle < cycle; e.lastCycle++ {
		e.state.Advance()
	}
}

// PaletteIndex reports the palette currently fully visible.
func (e *carouselEffect) PaletteIndex() int { return e.state.Index() }

func (e *carouselEffect) Paint(size paint.Size) paint.Frame {
	return CarouselFrame(size, e.timeline.Get("u"), e.state.Index(), e.opts)
}

func init() {
	Register(CarouselID, func(cfg EffectConfig) (Effect, error) {
		return newCarouselEffect(cfg), nil
	})
}
