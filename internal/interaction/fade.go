package interaction

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/toothview/internal/region"
)

// DefaultFadeDuration is how long a newly hovered region takes to fade in.
const DefaultFadeDuration = 250 * time.Millisecond

// RegionFade is the transient opacity of the current region's highlight and
// overlay. A region change is a hard cut: opacity drops to 0 and fades in
// again for the new region. No region means no opacity.
type RegionFade struct {
	duration float32
	region   region.ID
	tween    *gween.Tween
	opacity  float32
}

// NewRegionFade creates a fade with the given fade-in duration.
func NewRegionFade(d time.Duration) *RegionFade {
	return &RegionFade{duration: float32(d.Seconds())}
}

// Switch records the current region. It returns true when the region changed
// and the opacity was reset.
func (f *RegionFade) Switch(id region.ID) bool {
	if id == f.region {
		return false
	}
	f.region = id
	f.opacity = 0
	f.tween = nil
	if id == region.None {
		return true
	}
	if f.duration <= 0 {
		f.opacity = 1
		return true
	}
	f.tween = gween.New(0, 1, f.duration, ease.OutQuad)
	return true
}

// Update advances the fade by dt seconds and returns the opacity.
func (f *RegionFade) Update(dt float64) float32 {
	if f.tween == nil || dt <= 0 {
		return f.opacity
	}
	v, finished := f.tween.Update(float32(dt))
	f.opacity = v
	if finished {
		f.opacity = 1
		f.tween = nil
	}
	return f.opacity
}

// Opacity returns the current opacity in [0, 1].
func (f *RegionFade) Opacity() float32 {
	return f.opacity
}

// Region returns the region the fade belongs to.
func (f *RegionFade) Region() region.ID {
	return f.region
}
