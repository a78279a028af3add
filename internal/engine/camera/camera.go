// Package camera provides the orbit camera that frames the tooth model.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toothview/internal/engine/picking"
	"github.com/Faultbox/toothview/pkg/math"
)

// OrbitCamera orbits around a center point with a perspective projection.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from center
	Pitch    float32 // Vertical angle, radians
	Yaw      float32 // Horizontal angle, radians

	// Projection
	FOV    float32 // Vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera sized for the tooth model.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        12.0,
		Pitch:           0.2,
		FOV:             math32.Pi / 4,
		Aspect:          16.0 / 9.0,
		Near:            0.1,
		Far:             100.0,
		MinDistance:     4.0,
		MaxDistance:     40.0,
		MinPitch:        -1.2,
		MaxPitch:        1.2,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * math32.Cos(c.Pitch) * math32.Sin(c.Yaw)
	y := c.Distance * math32.Sin(c.Pitch)
	z := c.Distance * math32.Cos(c.Pitch) * math32.Cos(c.Yaw)
	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Unproject turns a normalized device coordinate into a world-space ray.
// ok is false when the view-projection cannot be inverted.
func (c *OrbitCamera) Unproject(ndc math.Vec2) (picking.Ray, bool) {
	inv, ok := c.ViewProjection().Inverse()
	if !ok {
		return picking.Ray{}, false
	}
	return picking.FromNDC(ndc, inv), true
}

// SetViewport updates the aspect ratio after a resize.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.Aspect = float32(width) / float32(height)
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = math32.Max(c.MinPitch, math32.Min(c.MaxPitch, c.Pitch))
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math32.Max(c.MinDistance, math32.Min(c.MaxDistance, c.Distance))
}

// FitToBounds centers the camera on a bounding box and backs off far enough
// to keep it in view.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)
	radius := max.Sub(min).Length() / 2
	c.Distance = radius / math32.Sin(c.FOV/2)
	c.Distance = math32.Max(c.MinDistance, math32.Min(c.MaxDistance, c.Distance))
}
