package interaction

import (
	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
)

// DefaultHighlight is the warm red tint of the hovered region.
var DefaultHighlight = scene.RGB(255, 128, 128)

// Assignment is the material a back-layer mesh should be drawn with.
type Assignment struct {
	Node        *scene.Node
	Material    scene.Material
	Highlighted bool
}

// Compositor derives per-mesh materials for the back layer.
type Compositor struct {
	Resolver Resolver
	Color    scene.Color
}

// Compose returns one assignment per back-layer mesh in meshes. Meshes whose
// canonical region equals current get a copy of their material tinted with
// the highlight color; all others keep their material unchanged. The nodes'
// own materials are never modified.
func (c *Compositor) Compose(meshes []*scene.Node, current region.ID) []Assignment {
	out := make([]Assignment, 0, len(meshes))
	for _, n := range meshes {
		if !n.Back {
			continue
		}
		a := Assignment{Node: n, Material: n.Material}
		if current != region.None && c.Resolver.Resolve(n.Name) == current {
			a.Material = n.Material.WithColor(c.Color)
			a.Highlighted = true
		}
		out = append(out, a)
	}
	return out
}
