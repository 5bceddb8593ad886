// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paint/command.go
// Summary: Fill commands, frames, and the recorder effects paint into.
// Usage: An effect builds a Recorder per frame, issues fills, and returns Frame().

package paint

// FillCommand fills the intersection of Clip and the optional Circle with Brush
// at opacity Alpha.
type FillCommand struct {
	Clip   Rect
	Circle *Circle
	Brush  Brush
	Alpha  float64
}

// Frame is the complete output of one paint invocation.
type Frame struct {
	Size     Size
	Commands []FillCommand
	// Blur is a Gaussian sigma in surface units applied after all fills.
	Blur float64
}

// Recorder collects fill commands, dropping the ones that cannot draw anything.
type Recorder struct {
	size   Size
	circle *Circle
	cmds   []FillCommand
	blur   float64
}

// NewRecorder starts an empty frame for the given surface.
func NewRecorder(size Size) *Recorder {
	return &Recorder{size: size}
}

// Size returns the surface the recorder was created for.
func (r *Recorder) Size() Size { return r.size }

// ClipCircle runs fn with every fill additionally clipped to c.
func (r *Recorder) ClipCircle(c Circle, fn func()) {
	prev := r.circle
	clip := c
	r.circle = &clip
	fn()
	r.circle = prev
}

// Fill records a fill of clip with b at the given alpha. Empty clips, clips
// outside the surface, and non-positive alpha are no-ops.
func (r *Recorder) Fill(clip Rect, b Brush, alpha float64) {
	if b == nil || !(alpha > 0) {
		return
	}
	clip = clip.Intersect(r.size.Bounds())
	if clip.Empty() {
		return
	}
	r.cmds = append(r.cmds, FillCommand{
		Clip:   clip,
		Circle: r.circle,
		Brush:  b,
		Alpha:  Clamp01(alpha),
	})
}

// FillAll fills the whole surface.
func (r *Recorder) FillAll(b Brush, alpha float64) {
	r.Fill(r.size.Bounds(), b, alpha)
}

// SetBlur requests a post-process blur with the given sigma.
func (r *Recorder) SetBlur(sigma float64) {
	if sigma < 0 {
		sigma = 0
	}
	r.blur = sigma
}

// Frame returns the recorded frame. The recorder should not be reused.
func (r *Recorder) Frame() Frame {
	return Frame{Size: r.size, Commands: r.cmds, Blur: r.blur}
}
