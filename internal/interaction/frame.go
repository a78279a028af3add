package interaction

import "github.com/Faultbox/toothview/internal/region"

// Frame is the fully derived visual state for one rendered frame. It is
// rebuilt from engine state on every tick, never patched in place.
type Frame struct {
	// Progress is the reveal progress in [0, π]; it feeds the dissolve shader.
	Progress float64
	Hover    HoverState
	Bundle   region.Bundle

	// HighlightOpacity is the region fade, reset to 0 on every region change.
	HighlightOpacity float32
	// OverlayOpacity combines the region fade with reveal progress.
	OverlayOpacity float32

	ShowOverlay bool
	ShowImage   bool
	ShowBorder  bool

	Materials []Assignment
}

func derive(progress float64, hover HoverState, fade float32, bundle region.Bundle, materials []Assignment) Frame {
	f := Frame{
		Progress:         progress,
		Hover:            hover,
		Bundle:           bundle,
		HighlightOpacity: fade,
		OverlayOpacity:   fade * float32(progress/ProgressMax),
		Materials:        materials,
	}
	f.ShowOverlay = !bundle.IsDefault() && f.OverlayOpacity > 0
	f.ShowImage = f.ShowOverlay && bundle.ImageVisible
	f.ShowBorder = f.ShowOverlay && bundle.BorderVisible
	return f
}
