// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/rotating.go
// Summary: Linear gradient whose axis spins around the surface centre.

package effects

import (
	"math"
	"time"

	"github.com/framegrace/texelgrad/paint"
)

const RotatingID = "rotating-linear"

var rotatingColors = []paint.Color{
	paint.MustHex("#FF5252"),
	paint.MustHex("#40C4FF"),
	paint.MustHex("#69F0AE"),
}

// RotatingAxis returns the gradient axis for an angle in degrees. The axis is
// the diagonal-length segment through the centre pointing along the angle.
func RotatingAxis(size paint.Size, deg float64) (start, end paint.Point) {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	theta := deg * math.Pi / 180
	halfDiag := math.Hypot(size.W, size.H) / 2
	v := paint.Point{X: math.Cos(theta), Y: math.Sin(theta)}.Scale(halfDiag)
	c := size.Center()
	return c.Sub(v), c.Add(v)
}

// RotatingFrame paints the whole surface with the rotating gradient at deg.
func RotatingFrame(size paint.Size, deg float64, colors []paint.Color) paint.Frame {
	rec := paint.NewRecorder(size)
	if size.Empty() {
		return rec.Frame()
	}
	if len(colors) == 0 {
		colors = rotatingColors
	}
	start, end := RotatingAxis(size, deg)
	rec.FillAll(paint.LinearGradient{
		Stops: paint.EvenStops(colors...),
		Start: start,
		End:   end,
	}, 1)
	return rec.Frame()
}

type rotatingEffect struct {
	effectBase
	colors []paint.Color
}

func newRotatingEffect(cfg EffectConfig) *rotatingEffect {
	e := &rotatingEffect{
		effectBase: newEffectBase(RotatingID,
			"1) Rotating linear gradient",
			"LinearGradient: the direction spins around the centre"),
		colors: parseColorsOrDefault(cfg, "colors", rotatingColors),
	}
	e.timeline.Add("deg", animatorFromConfig(cfg, "", Animator{
		From:     0,
		To:       360,
		Duration: 2200 * time.Millisecond,
		Easing:   EaseLinear,
		Repeat:   RepeatRestart,
	}))
	return e
}

func (e *rotatingEffect) Paint(size paint.Size) paint.Frame {
	return RotatingFrame(size, e.timeline.Get("deg"), e.colors)
}

func init() {
	Register(RotatingID, func(cfg EffectConfig) (Effect, error) {
		return newRotatingEffect(cfg), nil
	})
}
