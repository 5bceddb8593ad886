// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paint/geom.go
// Summary: Surface geometry primitives and the scalar helpers shared by every effect.
// Usage: Effects describe frames in surface units; the rasterizer maps them to pixels.

package paint

import "math"

// Point is a position in surface units.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Size is the extent of a drawing surface. A fresh Size is supplied every frame.
type Size struct {
	W, H float64
}

// Empty reports whether the surface has no drawable area.
func (s Size) Empty() bool {
	return !(s.W > 0 && s.H > 0) || math.IsInf(s.W, 0) || math.IsInf(s.H, 0)
}

// Center returns the midpoint of the surface.
func (s Size) Center() Point { return Point{s.W / 2, s.H / 2} }

// Bounds returns the full-surface rectangle.
func (s Size) Bounds() Rect { return Rect{0, 0, s.W, s.H} }

// MinSide returns min(W, H).
func (s Size) MinSide() float64 { return math.Min(s.W, s.H) }

// Rect is an axis-aligned rectangle. Points on the left and top edges are inside,
// points on the right and bottom edges are not, so adjacent slices never overlap.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Empty reports whether r covers no area. NaN coordinates count as empty.
func (r Rect) Empty() bool {
	return !(r.X1 > r.X0) || !(r.Y1 > r.Y0)
}

// Width returns X1 - X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Intersect returns the overlap of r and o. The result may be Empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		X0: math.Max(r.X0, o.X0),
		Y0: math.Max(r.Y0, o.Y0),
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
	}
}

// Circle is a disc used as an additional clip region.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p is inside or on the circle.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Clamp limits x to [lo, hi]. NaN maps to lo.
func Clamp(x, lo, hi float64) float64 {
	if !(x >= lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float64) float64 { return Clamp(x, 0, 1) }

// Smoothstep is t²(3-2t) on the clamped input.
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Sin01 maps sin(x) into [0, 1].
func Sin01(x float64) float64 {
	return (math.Sin(x) + 1) * 0.5
}
