// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/vertical.go
// Summary: Repeat-tiled vertical gradient scrolling up and down, softened by a blur.

package effects

import (
	"time"

	"github.com/framegrace/texelgrad/paint"
)

const VerticalID = "vertical-linear"

const defaultVerticalBlur = 16

var verticalColors = []paint.Color{
	paint.MustHex("#B08A00"),
	paint.MustHex("#1A1A1A"),
	paint.MustHex("#E00000"),
	paint.MustHex("#F06400"),
}

// VerticalOffset is the gradient shift for t in [-1, 1].
func VerticalOffset(size paint.Size, t float64) float64 {
	return t * 0.55 * size.H
}

// VerticalFrame paints the scrolling gradient at t with the given blur sigma.
func VerticalFrame(size paint.Size, t, blur float64, colors []paint.Color) paint.Frame {
	rec := paint.NewRecorder(size)
	if size.Empty() {
		return rec.Frame()
	}
	if len(colors) == 0 {
		colors = verticalColors
	}
	dy := VerticalOffset(size, t)
	rec.FillAll(paint.LinearGradient{
		Stops: paint.EvenStops(colors...),
		Start: paint.Point{X: size.W / 2, Y: dy},
		End:   paint.Point{X: size.W / 2, Y: size.H + dy},
		Tile:  paint.TileRepeat,
	}, 1)
	rec.SetBlur(blur)
	return rec.Frame()
}

type verticalEffect struct {
	effectBase
	blur   float64
	colors []paint.Color
}

func newVerticalEffect(cfg EffectConfig) *verticalEffect {
	e := &verticalEffect{
		effectBase: newEffectBase(VerticalID,
			"2) Vertical linear",
			"Y shift (up and down)"),
		blur:   parseFloatOrDefault(cfg, "blur", defaultVerticalBlur),
		colors: parseColorsOrDefault(cfg, "colors", verticalColors),
	}
	e.timeline.Add("t", animatorFromConfig(cfg, "", Animator{
		From:     -1,
		To:       1,
		Duration: 2500 * time.Millisecond,
		Easing:   EaseLinear,
		Repeat:   RepeatRestart,
	}))
	return e
}

func (e *verticalEffect) Paint(size paint.Size) paint.Frame {
	return VerticalFrame(size, e.timeline.Get("t"), e.blur, e.colors)
}

func init() {
	Register(VerticalID, func(cfg EffectConfig) (Effect, error) {
		return newVerticalEffect(cfg), nil
	})
}
