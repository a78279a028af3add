// Package math provides float32 vector and matrix types for the viewer.
package math

// Vec2 is a 2D vector. Pointer positions in normalized device coordinates
// use it with both components in [-1, 1].
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// InNDC reports whether both components lie within the [-1, 1] clip range.
func (v Vec2) InNDC() bool {
	return v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1
}
