// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"math"
	"testing"
	"time"
)

func TestAnimatorRestartWraps(t *testing.T) {
	start := time.Unix(1000, 0)
	a := Animator{From: 0, To: 360, Duration: 2 * time.Second, Easing: EaseLinear}
	a.Start(start)

	s := a.Sample(start.Add(500 * time.Millisecond))
	if math.Abs(s.Value-90) > 1e-9 || s.Cycle != 0 {
		t.Fatalf("quarter sample = %+v", s)
	}
	s = a.Sample(start.Add(2500 * time.Millisecond))
	if math.Abs(s.Value-90) > 1e-9 || s.Cycle != 1 {
		t.Fatalf("restart sample = %+v", s)
	}
	s = a.Sample(start.Add(6 * time.Second))
	if s.Value != 0 || s.Cycle != 3 {
		t.Fatalf("cycle boundary should snap to From, got %+v", s)
	}
}

func TestAnimatorReversePingPongs(t *testing.T) {
	start := time.Unix(0, 0)
	a := Animator{From: -1, To: 1, Duration: time.Second, Repeat: RepeatReverse}
	a.Start(start)

	if s := a.Sample(start.Add(250 * time.Millisecond)); math.Abs(s.Value+0.5) > 1e-9 {
		t.Fatalf("forward leg = %v", s.Value)
	}
	if s := a.Sample(start.Add(1250 * time.Millisecond)); math.Abs(s.Value-0.5) > 1e-9 || s.Cycle != 1 {
		t.Fatalf("reverse leg = %+v", s)
	}
	if s := a.Sample(start.Add(2250 * time.Millisecond)); math.Abs(s.Value+0.5) > 1e-9 {
		t.Fatalf("third leg = %v", s.Value)
	}
}

func TestAnimatorEdgeCases(t *testing.T) {
	start := time.Unix(50, 0)
	a := Animator{From: 2, To: 5, Duration: time.Second, Easing: EaseInQuad}
	if s := a.Sample(start); s.Value != 2 {
		t.Fatalf("unstarted animator should sample From, got %v", s.Value)
	}
	a.Start(start)
	if s := a.Sample(start.Add(-time.Second)); s.Value != 2 {
		t.Fatalf("time before start should sample From, got %v", s.Value)
	}
	if s := a.Sample(start.Add(500 * time.Millisecond)); math.Abs(s.Value-2.75) > 1e-9 {
		t.Fatalf("easing not applied: %v", s.Value)
	}

	z := Animator{From: 0, To: 1}
	z.Start(start)
	if s := z.Sample(start.Add(time.Hour)); s.Value != 1 {
		t.Fatalf("zero duration should sample To, got %v", s.Value)
	}
}

func TestTimelineCachesSamples(t *testing.T) {
	start := time.Unix(0, 0)
	tl := NewTimeline()
	tl.Add("x", Animator{From: 0, To: 10, Duration: 10 * time.Second})
	if tl.Running() {
		t.Fatalf("timeline should not run before Start")
	}
	tl.Start(start)
	if tl.Get("x") != 0 {
		t.Fatalf("initial sample = %v", tl.Get("x"))
	}
	tl.Update(start.Add(3 * time.Second))
	if math.Abs(tl.Get("x")-3) > 1e-9 {
		t.Fatalf("updated sample = %v", tl.Get("x"))
	}
	tl.Update(start.Add(13 * time.Second))
	if tl.Cycle("x") != 1 {
		t.Fatalf("cycle = %d", tl.Cycle("x"))
	}
	tl.Stop()
	if tl.Running() || tl.Get("x") != 0 || tl.Cycle("x") != 0 {
		t.Fatalf("stop should discard time state")
	}
	if tl.Get("missing") != 0 {
		t.Fatalf("unknown key should read 0")
	}
}
