package interaction

import (
	"github.com/Faultbox/toothview/internal/engine/picking"
	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
	"github.com/Faultbox/toothview/pkg/math"
)

// HoverState is the result of classifying one pointer sample. Region is only
// set while RevealTarget is true.
type HoverState struct {
	RevealTarget bool
	Region       region.ID
}

// CameraProvider turns a normalized pointer position into a world ray. It
// returns false while no camera is mounted.
type CameraProvider interface {
	Unproject(ndc math.Vec2) (picking.Ray, bool)
}

// SceneProvider exposes the pickable meshes.
type SceneProvider interface {
	Meshes() []*scene.Node
}

// Resolver maps mesh names to canonical region ids.
type Resolver interface {
	Resolve(meshName string) region.ID
}

// Classify derives the hover state from nearest-first hits. The front layer
// must be nearest for anything to count; the inner region is the first
// back-layer hit behind it.
func Classify(hits []picking.Hit, r Resolver) HoverState {
	if len(hits) == 0 || hits[0].Back() {
		return HoverState{}
	}
	state := HoverState{RevealTarget: true}
	for _, h := range hits[1:] {
		if h.Back() {
			state.Region = r.Resolve(h.Name())
			break
		}
	}
	return state
}

// HitTester casts pointer rays into the scene.
type HitTester struct {
	Camera   CameraProvider
	Scene    SceneProvider
	Resolver Resolver
}

// Test classifies the scene under p. ok is false when the camera or scene is
// not available yet; callers skip the sample in that case.
func (t *HitTester) Test(p PointerState) (state HoverState, ok bool) {
	if t.Camera == nil || t.Scene == nil || t.Resolver == nil {
		return HoverState{}, false
	}
	ray, ok := t.Camera.Unproject(p.NDC())
	if !ok {
		return HoverState{}, false
	}
	return Classify(picking.Cast(ray, t.Scene.Meshes()), t.Resolver), true
}
