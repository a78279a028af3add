// Package debug provides debug visualization and capture utilities.
package debug

import "github.com/Faultbox/toothview/internal/scene"

// BoundsWireframeVertexCount is the number of vertices for one box wireframe
// (12 edges × 2 endpoints).
const BoundsWireframeVertexCount = 24

// DefaultBoundsPadding keeps the wireframe off the mesh surface.
const DefaultBoundsPadding = 0.02

// BoundsWireframe returns GL_LINES vertices, [x, y, z] each, outlining b
// grown by padding on every side.
func BoundsWireframe(b scene.Bounds, padding float32) []float32 {
	minX, minY, minZ := b.Min.X-padding, b.Min.Y-padding, b.Min.Z-padding
	maxX, maxY, maxZ := b.Max.X+padding, b.Max.Y+padding, b.Max.Z+padding

	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
