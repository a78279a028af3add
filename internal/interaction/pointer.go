// Package interaction implements the hover/reveal engine for the tooth
// model: pointer sampling, hit classification, reveal animation, region
// resolution and highlight composition.
package interaction

import (
	gomath "math"
	"time"

	"github.com/Faultbox/toothview/pkg/math"
)

// DefaultDebounce is the coalescing window for pointer samples.
const DefaultDebounce = 5 * time.Millisecond

// RawPointer is a pointer-move event as reported by the input surface:
// position in viewport pixels plus the current viewport size.
type RawPointer struct {
	X, Y          float64
	Width, Height int
}

// Valid reports whether the event carries usable coordinates and a non-empty
// viewport. NaN marks a missing coordinate.
func (r RawPointer) Valid() bool {
	if gomath.IsNaN(r.X) || gomath.IsNaN(r.Y) || gomath.IsInf(r.X, 0) || gomath.IsInf(r.Y, 0) {
		return false
	}
	return r.Width > 0 && r.Height > 0
}

// PointerState is the pointer position in normalized device coordinates.
type PointerState struct {
	X, Y float32
}

// NDC returns the position as a vector.
func (p PointerState) NDC() math.Vec2 {
	return math.Vec2{X: p.X, Y: p.Y}
}

// Normalize converts a raw event to device-independent coordinates with y
// pointing up. Malformed events return false.
func Normalize(raw RawPointer) (PointerState, bool) {
	if !raw.Valid() {
		return PointerState{}, false
	}
	return PointerState{
		X: float32(raw.X/float64(raw.Width)*2 - 1),
		Y: float32(-(raw.Y/float64(raw.Height))*2 + 1),
	}, true
}

// Debouncer coalesces samples into a single pending slot. Every Push
// replaces the slot and moves the deadline to now+Window; Poll releases the
// slot once the deadline has passed. Only the newest sample survives.
type Debouncer struct {
	Window time.Duration

	pending  PointerState
	deadline time.Time
	armed    bool
}

// NewDebouncer creates a debouncer. A non-positive window releases samples
// on the next Poll.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{Window: window}
}

// Push stores p, cancelling any sample still waiting.
func (d *Debouncer) Push(p PointerState, now time.Time) {
	d.pending = p
	d.deadline = now.Add(d.Window)
	d.armed = true
}

// Poll returns the pending sample if its deadline has passed.
func (d *Debouncer) Poll(now time.Time) (PointerState, bool) {
	if !d.armed || now.Before(d.deadline) {
		return PointerState{}, false
	}
	d.armed = false
	return d.pending, true
}

// Pending reports whether a sample is waiting.
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Cancel drops the pending sample.
func (d *Debouncer) Cancel() {
	d.armed = false
}

// Sampler turns raw pointer events into debounced PointerStates.
type Sampler struct {
	debounce *Debouncer
}

// NewSampler creates a sampler with the given debounce window.
func NewSampler(window time.Duration) *Sampler {
	return &Sampler{debounce: NewDebouncer(window)}
}

// Sample normalizes raw and queues it. Malformed events are dropped and
// leave any pending sample untouched.
func (s *Sampler) Sample(raw RawPointer, now time.Time) bool {
	p, ok := Normalize(raw)
	if !ok {
		return false
	}
	s.debounce.Push(p, now)
	return true
}

// Poll releases the coalesced sample once the window has elapsed.
func (s *Sampler) Poll(now time.Time) (PointerState, bool) {
	return s.debounce.Poll(now)
}

// Cancel drops any pending sample.
func (s *Sampler) Cancel() {
	s.debounce.Cancel()
}
