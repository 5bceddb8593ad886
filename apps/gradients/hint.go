// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/gradients/hint.go
// Summary: One-shot bouncing down-arrow shown on the first pager page.

package gradients

import (
	"time"

	"github.com/framegrace/texelgrad/internal/effects"
)

const (
	hintGlyph   = '▼'
	hintBounces = 3
)

// scrollHint bounces a few times, then hides for good. Paging away hides it too.
type scrollHint struct {
	anim      effects.Animator
	started   bool
	dismissed bool
}

func newScrollHint() *scrollHint {
	return &scrollHint{anim: effects.Animator{
		From:     0,
		To:       1,
		Duration: 450 * time.Millisecond,
		Easing:   effects.EaseOutQuad,
		Repeat:   effects.RepeatReverse,
	}}
}

// offset returns the bounce height in rows and whether the hint is visible.
func (h *scrollHint) offset(now time.Time) (int, bool) {
	if h.dismissed {
		return 0, false
	}
	if !h.started {
		h.anim.Start(now)
		h.started = true
	}
	s := h.anim.Sample(now)
	// A bounce is one way down and one way back.
	if s.Cycle >= 2*hintBounces {
		h.dismiss()
		return 0, false
	}
	if s.Value >= 0.5 {
		return 1, true
	}
	return 0, true
}

func (h *scrollHint) dismiss() {
	h.dismissed = true
	h.anim.Stop()
}
