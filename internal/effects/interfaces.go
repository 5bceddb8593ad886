// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/interfaces.go
// Summary: Effect contract shared by the gradient effects, the manager and the screen.

package effects

import (
	"time"

	"github.com/framegrace/texelgrad/paint"
)

// Effect is an animated gradient that can paint itself onto a surface.
//
// Update samples the effect's animators; Paint must only read the state the
// last Update produced so that painting twice yields identical frames.
type Effect interface {
	ID() string
	Title() string
	Subtitle() string
	Start(now time.Time)
	Stop()
	Active() bool
	Update(now time.Time)
	Paint(size paint.Size) paint.Frame
}
