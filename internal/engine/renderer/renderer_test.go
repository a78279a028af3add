package renderer

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/toothview/internal/interaction"
	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
	"github.com/Faultbox/toothview/pkg/math"
)

func TestMeshVerticesFlatNormals(t *testing.T) {
	tri := scene.Triangle{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	v := meshVertices([]scene.Triangle{tri})
	require.Len(t, v, 3*floatsPerVertex)

	for i := 0; i < 3; i++ {
		n := v[i*floatsPerVertex+3 : i*floatsPerVertex+6]
		assert.InDelta(t, 0, n[0], 1e-6)
		assert.InDelta(t, 0, n[1], 1e-6)
		assert.InDelta(t, 1, n[2], 1e-6)
	}
	assert.Equal(t, float32(1), v[floatsPerVertex])
}

func TestMeshVerticesBox(t *testing.T) {
	box := scene.Box(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})
	assert.Len(t, meshVertices(box), 12*3*floatsPerVertex)
}

func TestBuildOverlayDefaultBundleIsEmpty(t *testing.T) {
	g := buildOverlay(region.DefaultBundle)
	assert.Empty(t, g.Line)
	assert.Empty(t, g.Border)
	assert.Empty(t, g.Image)
}

func TestBuildOverlay(t *testing.T) {
	table, err := region.LoadDefault()
	require.NoError(t, err)
	enamel := table.Lookup("enamel_back")
	require.False(t, enamel.IsDefault())

	g := buildOverlay(enamel)

	// Two segments through the three leader points.
	require.Len(t, g.Line, 12)
	assert.Equal(t, []float32{0, 3, 0, 0, 3, 0.1}, g.Line[:6])
	assert.Equal(t, []float32{0, 3, 0.1, 3.5, 3, 0.1}, g.Line[6:])

	assert.Len(t, g.Border, 4*6)
	assert.Len(t, g.Image, 6*3)

	c := enamel.BorderPosition
	for i := 0; i < len(g.Border); i += 3 {
		assert.InDelta(t, enamel.BorderGeometry[0]/2, gomath.Abs(float64(g.Border[i]-c.X)), 1e-5)
		assert.InDelta(t, enamel.BorderGeometry[1]/2, gomath.Abs(float64(g.Border[i+1]-c.Y)), 1e-5)
	}
}

func TestBuildOverlayHiddenParts(t *testing.T) {
	b := region.Bundle{
		Name:     "Gum",
		LinePath: [3]math.Vec3{{X: 0}, {X: 1}, {X: 2}},
	}
	g := buildOverlay(b)
	assert.Len(t, g.Line, 12)
	assert.Empty(t, g.Border)
	assert.Empty(t, g.Image)
}

func TestDrawListOrder(t *testing.T) {
	front := &scene.Node{ID: 0, Name: "enamel_front", Material: scene.Material{Dissolve: true}}
	back := &scene.Node{ID: 1, Name: "pulp_back", Back: true}
	tinted := scene.Material{Color: scene.RGB(255, 128, 128)}

	f := interaction.Frame{
		Progress:  1,
		Materials: []interaction.Assignment{{Node: back, Material: tinted, Highlighted: true}},
	}
	items := drawList(f, []*scene.Node{front, back})

	require.Len(t, items, 2)
	assert.Same(t, back, items[0].node)
	assert.Equal(t, tinted, items[0].material)
	assert.Same(t, front, items[1].node)
}

func TestDrawListDropsFullyDissolved(t *testing.T) {
	front := &scene.Node{ID: 0, Material: scene.Material{Dissolve: true}}
	solid := &scene.Node{ID: 1}

	f := interaction.Frame{Progress: interaction.ProgressMax}
	items := drawList(f, []*scene.Node{front, solid})

	require.Len(t, items, 1)
	assert.Same(t, solid, items[0].node)
}
