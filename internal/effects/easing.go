// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/easing.go
// Summary: Easing curves used by effect animators, including CSS-style cubic beziers.

package effects

import (
	"fmt"
	"math"
	"strings"
)

// EasingFunc maps progress [0,1] to eased progress [0,1].
type EasingFunc func(progress float64) float64

// Common easing functions
var (
	// EaseLinear - No easing, constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseSmoothstep - Smooth S-curve
	EaseSmoothstep EasingFunc = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// EaseSmootherstep - Even smoother S-curve with zero derivatives at 0 and 1
	EaseSmootherstep EasingFunc = func(t float64) float64 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	EaseInQuad EasingFunc = func(t float64) float64 {
		return t * t
	}

	EaseOutQuad EasingFunc = func(t float64) float64 {
		return t * (2.0 - t)
	}

	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	EaseInCubic EasingFunc = func(t float64) float64 {
		return t * t * t
	}

	EaseOutCubic EasingFunc = func(t float64) float64 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}

	// EaseSweep is the carousel curve: slow start, fast finish.
	EaseSweep = CubicBezier(0.22, 0.12, 0.18, 1)
)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2).
// The curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most curves.
		for n := 0; n < 8; n++ {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection keeps the solution inside [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for n := 0; n < 20; n++ {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var namedEasings = map[string]EasingFunc{
	"linear":            EaseLinear,
	"smoothstep":        EaseSmoothstep,
	"smootherstep":      EaseSmootherstep,
	"ease-in-quad":      EaseInQuad,
	"ease-out-quad":     EaseOutQuad,
	"ease-in-out":       EaseInOutQuad,
	"ease-in-cubic":     EaseInCubic,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
	"sweep":             EaseSweep,
}

// EasingByName resolves a config name. Besides the named curves it accepts
// "cubic-bezier(x1, y1, x2, y2)".
func EasingByName(name string) (EasingFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if fn, ok := namedEasings[name]; ok {
		return fn, nil
	}
	if strings.HasPrefix(name, "cubic-bezier(") && strings.HasSuffix(name, ")") {
		var x1, y1, x2, y2 float64
		args := strings.TrimSuffix(strings.TrimPrefix(name, "cubic-bezier("), ")")
		args = strings.ReplaceAll(args, " ", "")
		if _, err := fmt.Sscanf(args, "%g,%g,%g,%g", &x1, &y1, &x2, &y2); err != nil {
			return nil, fmt.Errorf("effects: bad cubic-bezier %q: %w", name, err)
		}
		if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
			return nil, fmt.Errorf("effects: cubic-bezier x control points must be in [0,1]: %q", name)
		}
		return CubicBezier(x1, y1, x2, y2), nil
	}
	return nil, fmt.Errorf("effects: unknown easing %q", name)
}
