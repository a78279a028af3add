package interaction

import gomath "math"

// Reveal progress bounds. The upper bound is half a turn so the value can be
// fed straight into the dissolve shader as a phase.
const (
	ProgressMin = 0.0
	ProgressMax = gomath.Pi
)

// Default reveal rates in progress units per second.
const (
	DefaultRiseRate = 7.0
	DefaultFallRate = 8.0
)

// Animator moves reveal progress toward 0 or π once per frame. Rise and fall
// rates are independent.
type Animator struct {
	RiseRate float64
	FallRate float64

	progress float64
}

// NewAnimator creates an animator at progress 0.
func NewAnimator(rise, fall float64) *Animator {
	return &Animator{RiseRate: rise, FallRate: fall}
}

// Advance steps progress by dt seconds toward the bound selected by target
// and returns the new value. It never overshoots; negative dt is ignored.
func (a *Animator) Advance(target bool, dt float64) float64 {
	if dt <= 0 {
		return a.progress
	}
	if target {
		a.progress = gomath.Min(a.progress+dt*a.RiseRate, ProgressMax)
	} else {
		a.progress = gomath.Max(a.progress-dt*a.FallRate, ProgressMin)
	}
	return a.progress
}

// Progress returns the current value in [0, π].
func (a *Animator) Progress() float64 {
	return a.progress
}

// Fraction returns progress normalized to [0, 1].
func (a *Animator) Fraction() float64 {
	return a.progress / ProgressMax
}
