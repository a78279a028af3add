package picking

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/toothview/internal/scene"
	"github.com/Faultbox/toothview/pkg/math"
)

func TestIntersectAABB(t *testing.T) {
	box := scene.Bounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"straight on", Ray{math.Vec3{Z: 5}, math.Vec3{Z: -1}}, true, 4},
		{"miss", Ray{math.Vec3{X: 3, Z: 5}, math.Vec3{Z: -1}}, false, 0},
		{"inside returns exit", Ray{math.Vec3{}, math.Vec3{Z: -1}}, true, 1},
		{"pointing away", Ray{math.Vec3{Z: 5}, math.Vec3{Z: 1}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectAABB(box)
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.wantT, got, 1e-5)
			}
		})
	}
}

func TestIntersectTriangleTwoSided(t *testing.T) {
	tri := scene.Triangle{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 1}}

	front := Ray{math.Vec3{Z: 3}, math.Vec3{Z: -1}}
	got, ok := front.IntersectTriangle(tri)
	require.True(t, ok)
	assert.InDelta(t, 3, got, 1e-5)

	back := Ray{math.Vec3{Z: -2}, math.Vec3{Z: 1}}
	got, ok = back.IntersectTriangle(tri)
	require.True(t, ok)
	assert.InDelta(t, 2, got, 1e-5)

	_, ok = Ray{math.Vec3{X: 5, Z: 3}, math.Vec3{Z: -1}}.IntersectTriangle(tri)
	assert.False(t, ok)
}

func TestFromNDCCenterLooksAtTarget(t *testing.T) {
	proj := math.Perspective(float32(gomath.Pi/3), 1, 0.1, 100)
	view := math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.Vec3{Y: 1})
	inv, ok := proj.Mul(view).Inverse()
	require.True(t, ok)

	r := FromNDC(math.Vec2{}, inv)
	assert.InDelta(t, 0, r.Direction.X, 1e-4)
	assert.InDelta(t, 0, r.Direction.Y, 1e-4)
	assert.InDelta(t, -1, r.Direction.Z, 1e-4)
	assert.InDelta(t, 9.9, r.Origin.Z, 1e-3)

	up := FromNDC(math.Vec2{Y: 0.5}, inv)
	assert.Greater(t, up.Direction.Y, float32(0))
}

func TestCastOrdersNearestFirst(t *testing.T) {
	nodes := []scene.Node{
		{Kind: scene.KindMesh, Name: "inner", Back: true,
			Geometry: scene.Box(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})},
		{Kind: scene.KindMesh, Name: "outer",
			Geometry: scene.Box(math.Vec3{X: -2, Y: -2, Z: -2}, math.Vec3{X: 2, Y: 2, Z: 2})},
		{Kind: scene.KindMesh, Name: "aside",
			Geometry: scene.Box(math.Vec3{X: 5, Y: 5, Z: 5}, math.Vec3{X: 6, Y: 6, Z: 6})},
		{Kind: scene.KindGroup, Name: "group"},
	}
	s := scene.New(nodes, nil)

	hits := Cast(Ray{math.Vec3{Z: 10}, math.Vec3{Z: -1}}, s.Meshes())
	require.Len(t, hits, 2)
	assert.Equal(t, "outer", hits[0].Name())
	assert.False(t, hits[0].Back())
	assert.InDelta(t, 8, hits[0].Distance, 1e-4)
	assert.Equal(t, "inner", hits[1].Name())
	assert.True(t, hits[1].Back())

	assert.Empty(t, Cast(Ray{math.Vec3{X: 20, Z: 10}, math.Vec3{Z: -1}}, s.Meshes()))
}

func TestRayAt(t *testing.T) {
	r := Ray{math.Vec3{X: 1}, math.Vec3{Y: 1}}
	assert.Equal(t, math.Vec3{X: 1, Y: 2}, r.At(2))
}
