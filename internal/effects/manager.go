// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/manager.go
// Summary: Tracks the effects currently on screen and advances their timelines per frame.
// Notes: Attaching starts an effect from its first frame; detaching discards its time state.

package effects

import (
	"log"
	"time"
)

type Manager struct {
	attached []Effect
	byID     map[string]Effect
}

func NewManager() *Manager {
	return &Manager{
		attached: make([]Effect, 0),
		byID:     make(map[string]Effect),
	}
}

// Attach starts eff at now. Attaching an already attached effect is a no-op.
func (m *Manager) Attach(eff Effect, now time.Time) {
	if m == nil || eff == nil {
		return
	}
	if _, ok := m.byID[eff.ID()]; ok {
		return
	}
	eff.Start(now)
	m.attached = append(m.attached, eff)
	m.byID[eff.ID()] = eff
	log.Printf("Effects: attached %s", eff.ID())
}

// Detach stops the effect with the given ID and forgets it.
func (m *Manager) Detach(id string) {
	if m == nil {
		return
	}
	eff, ok := m.byID[id]
	if !ok {
		return
	}
	eff.Stop()
	delete(m.byID, id)
	for i, e := range m.attached {
		if e == eff {
			m.attached = append(m.attached[:i], m.attached[i+1:]...)
			break
		}
	}
	log.Printf("Effects: detached %s", id)
}

// DetachAll stops every attached effect.
func (m *Manager) DetachAll() {
	if m == nil {
		return
	}
	for len(m.attached) > 0 {
		m.Detach(m.attached[0].ID())
	}
}

// Update samples every attached effect at now. It reports whether any effect
// is still animating, which is always true for the looping gradients.
func (m *Manager) Update(now time.Time) bool {
	if m == nil {
		return false
	}
	needsFrame := false
	for _, eff := range m.attached {
		eff.Update(now)
		if eff.Active() {
			needsFrame = true
		}
	}
	return needsFrame
}

// Attached reports whether the effect with id is attached.
func (m *Manager) Attached(id string) bool {
	if m == nil {
		return false
	}
	_, ok := m.byID[id]
	return ok
}

// Effects returns the attached effects in attach order.
func (m *Manager) Effects() []Effect {
	if m == nil {
		return nil
	}
	return append([]Effect(nil), m.attached...)
}
