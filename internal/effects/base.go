// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/base.go
// Summary: Shared identity and timeline plumbing embedded by every gradient effect.

package effects

import "time"

type effectBase struct {
	id       string
	title    string
	subtitle string
	timeline *Timeline
}

func newEffectBase(id, title, subtitle string) effectBase {
	return effectBase{id: id, title: title, subtitle: subtitle, timeline: NewTimeline()}
}

func (b *effectBase) ID() string       { return b.id }
func (b *effectBase) Title() string    { return b.title }
func (b *effectBase) Subtitle() string { return b.subtitle }

func (b *effectBase) Start(now time.Time)  { b.timeline.Start(now) }
func (b *effectBase) Stop()                { b.timeline.Stop() }
func (b *effectBase) Active() bool         { return b.timeline.Running() }
func (b *effectBase) Update(now time.Time) { b.timeline.Update(now) }

// Timeline exposes the animators, mostly for tests and the exporter.
func (b *effectBase) Timeline() *Timeline { return b.timeline }
