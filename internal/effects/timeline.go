// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Looping animators and a keyed timeline holding an effect's time parameters.
// Usage: Effects register one Animator per parameter, the manager calls Update once per frame.
// Notes: Not safe for concurrent use; everything runs on the render goroutine.

package effects

import (
	"math"
	"time"
)

// RepeatMode selects what happens when an animator reaches the end of its range.
type RepeatMode int

const (
	// RepeatRestart snaps back to From at the start of every cycle.
	RepeatRestart RepeatMode = iota
	// RepeatReverse plays odd cycles backwards (ping-pong).
	RepeatReverse
)

func (m RepeatMode) String() string {
	switch m {
	case RepeatReverse:
		return "reverse"
	default:
		return "restart"
	}
}

// ParseRepeatMode maps "restart"/"reverse" to a RepeatMode.
func ParseRepeatMode(s string) (RepeatMode, bool) {
	switch s {
	case "restart", "":
		return RepeatRestart, true
	case "reverse", "pingpong":
		return RepeatReverse, true
	}
	return RepeatRestart, false
}

// Sample is the value of an animator at a point in time.
type Sample struct {
	Value float64
	// Cycle counts the cycles completed since Start.
	Cycle int64
}

// Animator loops a value between From and To forever.
type Animator struct {
	From, To float64
	Duration time.Duration
	Easing   EasingFunc
	Repeat   RepeatMode

	start   time.Time
	running bool
}

// Start anchors the animator at now.
func (a *Animator) Start(now time.Time) {
	a.start = now
	a.running = true
}

// Stop discards the time anchor; the next Start begins at From again.
func (a *Animator) Stop() {
	a.running = false
	a.start = time.Time{}
}

// Running reports whether Start was called since the last Stop.
func (a *Animator) Running() bool { return a.running }

// Sample evaluates the animator at now. A stopped animator samples From.
func (a *Animator) Sample(now time.Time) Sample {
	if !a.running || now.Before(a.start) {
		return Sample{Value: a.From}
	}
	if a.Duration <= 0 {
		return Sample{Value: a.To}
	}
	elapsed := now.Sub(a.start)
	cycle := int64(elapsed / a.Duration)
	frac := float64(elapsed%a.Duration) / float64(a.Duration)
	if a.Repeat == RepeatReverse && cycle%2 == 1 {
		frac = 1 - frac
	}
	easing := a.Easing
	if easing == nil {
		easing = EaseLinear
	}
	eased := easing(frac)
	if math.IsNaN(eased) || math.IsInf(eased, 0) {
		eased = frac
	}
	return Sample{Value: a.From + (a.To-a.From)*eased, Cycle: cycle}
}

// Timeline groups the animators of one effect under string keys and caches the
// sample taken by the last Update so Paint observes one consistent instant.
type Timeline struct {
	animators map[string]*Animator
	order     []string
	samples   map[string]Sample
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{
		animators: make(map[string]*Animator),
		samples:   make(map[string]Sample),
	}
}

// Add registers an animator under key, replacing any previous one.
func (tl *Timeline) Add(key string, a Animator) {
	if _, exists := tl.animators[key]; !exists {
		tl.order = append(tl.order, key)
	}
	anim := a
	tl.animators[key] = &anim
	tl.samples[key] = Sample{Value: a.From}
}

// Animator returns the animator for key, or nil.
func (tl *Timeline) Animator(key string) *Animator {
	return tl.animators[key]
}

// Start anchors every animator at now and samples the initial frame.
func (tl *Timeline) Start(now time.Time) {
	for _, key := range tl.order {
		tl.animators[key].Start(now)
	}
	tl.Update(now)
}

// Stop discards all time state. Cached samples fall back to each From value.
func (tl *Timeline) Stop() {
	for _, key := range tl.order {
		a := tl.animators[key]
		a.Stop()
		tl.samples[key] = Sample{Value: a.From}
	}
}

// Running reports whether the timeline has been started.
func (tl *Timeline) Running() bool {
	for _, key := range tl.order {
		if tl.animators[key].Running() {
			return true
		}
	}
	return false
}

// Update samples every animator at now.
func (tl *Timeline) Update(now time.Time) {
	for _, key := range tl.order {
		tl.samples[key] = tl.animators[key].Sample(now)
	}
}

// Get returns the value cached by the last Update for key (0 when unknown).
func (tl *Timeline) Get(key string) float64 {
	return tl.samples[key].Value
}

// Cycle returns the completed cycle count cached for key.
func (tl *Timeline) Cycle(key string) int64 {
	return tl.samples[key].Cycle
}

// Sample returns the full cached sample for key.
func (tl *Timeline) Sample(key string) Sample {
	return tl.samples[key]
}
