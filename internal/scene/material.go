package scene

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Material describes how a mesh is shaded. It is a plain value: meshes that
// share a template each hold their own copy, so deriving a tinted variant for
// one mesh can never leak into its siblings.
type Material struct {
	Template    string
	Color       Color
	Roughness   float32
	DoubleSided bool
	Dissolve    bool // driven by reveal progress in the shader
}

// WithColor returns a copy of m with its color replaced.
func (m Material) WithColor(c Color) Material {
	m.Color = c
	return m
}
