// Package picking provides ray casting against the scene's mesh nodes.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toothview/internal/scene"
	"github.com/Faultbox/toothview/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// FromNDC unprojects a normalized device coordinate into a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func FromNDC(ndc math.Vec2, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.MulVec4(math.Vec4{ndc.X, ndc.Y, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndc.X, ndc.Y, 1.0, 1.0})

	// Perspective divide
	near := perspectiveDivide(nearWorld)
	far := perspectiveDivide(farWorld)

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func perspectiveDivide(v math.Vec4) math.Vec3 {
	if v[3] != 0 {
		return math.Vec3{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]}
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box scene.Bounds) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

const triangleEpsilon = 1e-7

// IntersectTriangle is a two-sided Möller–Trumbore test. Both faces count
// because front-layer shells render double-sided.
func (r Ray) IntersectTriangle(tri scene.Triangle) (t float32, hit bool) {
	edge1 := tri[1].Sub(tri[0])
	edge2 := tri[2].Sub(tri[0])
	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math32.Abs(det) < triangleEpsilon {
		return 0, false // parallel
	}
	inv := 1 / det

	s := r.Origin.Sub(tri[0])
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = edge2.Dot(q) * inv
	if t <= triangleEpsilon {
		return 0, false // behind origin
	}
	return t, true
}
