package camera

import (
	"github.com/Faultbox/toothview/internal/engine/picking"
	"github.com/Faultbox/toothview/pkg/math"
)

// Mount holds the active camera. It is empty until the viewer attaches a
// camera and again after Detach, which makes unprojection report
// unavailability instead of failing.
type Mount struct {
	cam *OrbitCamera
}

// Attach makes cam the active camera.
func (m *Mount) Attach(cam *OrbitCamera) {
	m.cam = cam
}

// Detach clears the active camera.
func (m *Mount) Detach() {
	m.cam = nil
}

// Camera returns the active camera, or nil.
func (m *Mount) Camera() *OrbitCamera {
	return m.cam
}

// Unproject delegates to the active camera. ok is false while none is attached.
func (m *Mount) Unproject(ndc math.Vec2) (picking.Ray, bool) {
	if m.cam == nil {
		return picking.Ray{}, false
	}
	return m.cam.Unproject(ndc)
}
