package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
)

func TestComposeHighlightsWholeAliasGroup(t *testing.T) {
	sc := testScene()
	c := Compositor{Resolver: testContent(), Color: DefaultHighlight}

	out := c.Compose(sc.Meshes(), region.Nerves)
	require.Len(t, out, len(sc.BackMeshes()))

	highlighted := 0
	for _, a := range out {
		isNerve := a.Node.Material.Template == "nerve"
		assert.Equal(t, isNerve, a.Highlighted, a.Node.Name)
		if isNerve {
			highlighted++
			assert.Equal(t, scene.RGB(255, 128, 128), a.Material.Color)
		} else {
			assert.Equal(t, a.Node.Material, a.Material)
		}
	}
	assert.Equal(t, 3, highlighted)
}

func TestComposeDoesNotMutateSharedTemplate(t *testing.T) {
	sc := testScene()
	c := Compositor{Resolver: testContent(), Color: DefaultHighlight}

	c.Compose(sc.Meshes(), region.Nerves)
	for _, n := range sc.BackMeshes() {
		if n.Material.Template == "nerve" {
			assert.Equal(t, nerveMat.Color, n.Material.Color, n.Name)
		}
	}
}

func TestComposeNoRegion(t *testing.T) {
	sc := testScene()
	c := Compositor{Resolver: testContent(), Color: DefaultHighlight}
	for _, a := range c.Compose(sc.Meshes(), region.None) {
		assert.False(t, a.Highlighted)
		assert.Equal(t, a.Node.Material, a.Material)
	}
}

func TestComposeSkipsFrontLayer(t *testing.T) {
	sc := testScene()
	c := Compositor{Resolver: testContent(), Color: DefaultHighlight}
	for _, a := range c.Compose(sc.Meshes(), "enamel_front") {
		assert.True(t, a.Node.Back)
		assert.False(t, a.Highlighted)
	}
}
