// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/registry.go
// Summary: Global registry of gradient effect factories keyed by effect ID.
// Usage: Effects register themselves from init; the screen and exporter call Create.

package effects

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Factory constructs an effect given its configuration map.
type Factory func(EffectConfig) (Effect, error)

// Register associates an effect ID with a factory. It panics on duplicate IDs.
func Register(id string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[id]; exists {
		panic("effects: duplicate registration for " + id)
	}
	registry[id] = factory
}

// Lookup fetches a factory by ID.
func Lookup(id string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[id]
	return f, ok
}

// RegisteredIDs returns the set of effect identifiers currently registered, sorted.
func RegisteredIDs() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create builds the effect described by spec.
func Create(spec EffectSpec) (Effect, error) {
	factory, ok := Lookup(spec.ID)
	if !ok {
		return nil, fmt.Errorf("effects: unknown effect %q", spec.ID)
	}
	eff, err := factory(spec.Config)
	if err != nil {
		return nil, fmt.Errorf("effects: create %q: %w", spec.ID, err)
	}
	return eff, nil
}

// DefaultSpecs lists the showcase effects in display order.
func DefaultSpecs() []EffectSpec {
	return []EffectSpec{
		{ID: RotatingID},
		{ID: VerticalID},
		{ID: WaveID},
		{ID: CarouselID},
	}
}
