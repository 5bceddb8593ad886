// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paint/brush.go
// Summary: Gradient brushes evaluated per sample point by the rasterizer.

package paint

import "math"

// Brush produces a colour for a point in surface units.
type Brush interface {
	ColorAt(p Point) Color
}

// TileMode controls how a gradient continues past its end points.
type TileMode int

const (
	// TileClamp repeats the edge colours.
	TileClamp TileMode = iota
	// TileRepeat restarts the gradient every period.
	TileRepeat
	// TileMirror reflects the gradient every period.
	TileMirror
)

func (m TileMode) String() string {
	switch m {
	case TileRepeat:
		return "repeat"
	case TileMirror:
		return "mirror"
	default:
		return "clamp"
	}
}

// apply normalises t into [0, 1] according to the tile mode.
func (m TileMode) apply(t float64) float64 {
	switch m {
	case TileRepeat:
		t -= math.Floor(t)
	case TileMirror:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = Clamp01(t)
	}
	return t
}

// ColorStop places a colour at an offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// EvenStops spreads colours evenly over [0, 1].
func EvenStops(colors ...Color) []ColorStop {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: offset, Color: c}
	}
	return stops
}

// sampleStops looks up t in stops, which must be sorted by offset.
func sampleStops(stops []ColorStop, t float64) Color {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return lo.Color.Mix(hi.Color, (t-lo.Offset)/span)
	}
	return last.Color
}

// Solid fills with a single colour.
type Solid struct {
	Color Color
}

func (s Solid) ColorAt(Point) Color { return s.Color }

// LinearGradient interpolates stops along the axis Start→End.
type LinearGradient struct {
	Stops      []ColorStop
	Start, End Point
	Tile       TileMode
}

// Project returns the normalised axis position of p (0 at Start, 1 at End),
// before tiling.
func (g LinearGradient) Project(p Point) float64 {
	d := g.End.Sub(g.Start)
	den := d.Dot(d)
	if den == 0 {
		return 0
	}
	return p.Sub(g.Start).Dot(d) / den
}

func (g LinearGradient) ColorAt(p Point) Color {
	return sampleStops(g.Stops, g.Tile.apply(g.Project(p)))
}

// RadialGradient interpolates stops outward from Center; Radius maps to offset 1.
type RadialGradient struct {
	Stops  []ColorStop
	Center Point
	Radius float64
	Tile   TileMode
}

func (g RadialGradient) ColorAt(p Point) Color {
	if g.Radius <= 0 {
		return sampleStops(g.Stops, 1)
	}
	d := p.Sub(g.Center)
	return sampleStops(g.Stops, g.Tile.apply(math.Sqrt(d.Dot(d))/g.Radius))
}
