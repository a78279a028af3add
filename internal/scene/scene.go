// Package scene holds the authored tooth scene: tagged nodes, material
// templates and the mesh geometry used for ray picking.
package scene

import (
	"github.com/Faultbox/toothview/pkg/math"
)

// Kind discriminates scene nodes. It is assigned when the manifest is loaded
// so consumers switch on it instead of inspecting node types at runtime.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindLine
	KindText
)

var kindNames = map[string]Kind{
	"group": KindGroup,
	"mesh":  KindMesh,
	"line":  KindLine,
	"text":  KindText,
}

// String returns the manifest spelling of the kind.
func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// Triangle is a world-space triangle.
type Triangle [3]math.Vec3

// Bounds is an axis-aligned bounding box in world space.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Node is a single entry of the scene graph.
type Node struct {
	ID       int
	Kind     Kind
	Name     string
	Back     bool // inner anatomical layer; authored, never computed
	Material Material
	Geometry []Triangle
	Bounds   Bounds
}

// IsMesh reports whether the node takes part in ray picking.
func (n *Node) IsMesh() bool {
	return n.Kind == KindMesh && len(n.Geometry) > 0
}

// Scene is an immutable collection of nodes plus the material templates
// they were built from.
type Scene struct {
	nodes     []Node
	meshes    []*Node
	templates map[string]Material
}

// New builds a scene from nodes. IDs are reassigned to the node index.
func New(nodes []Node, templates map[string]Material) *Scene {
	s := &Scene{
		nodes:     make([]Node, len(nodes)),
		templates: make(map[string]Material, len(templates)),
	}
	copy(s.nodes, nodes)
	for name, m := range templates {
		s.templates[name] = m
	}
	for i := range s.nodes {
		s.nodes[i].ID = i
		if s.nodes[i].IsMesh() {
			s.nodes[i].Bounds = boundsOf(s.nodes[i].Geometry)
			s.meshes = append(s.meshes, &s.nodes[i])
		}
	}
	return s
}

// Nodes returns every node in authoring order.
func (s *Scene) Nodes() []Node {
	return s.nodes
}

// Meshes returns the pickable mesh nodes, front and back layers alike.
func (s *Scene) Meshes() []*Node {
	return s.meshes
}

// BackMeshes returns only the back-layer mesh nodes.
func (s *Scene) BackMeshes() []*Node {
	var out []*Node
	for _, n := range s.meshes {
		if n.Back {
			out = append(out, n)
		}
	}
	return out
}

// Template returns a copy of the named material template.
func (s *Scene) Template(name string) (Material, bool) {
	m, ok := s.templates[name]
	return m, ok
}

// Bounds returns the union of all mesh bounds.
func (s *Scene) Bounds() Bounds {
	if len(s.meshes) == 0 {
		return Bounds{}
	}
	b := s.meshes[0].Bounds
	for _, n := range s.meshes[1:] {
		b.Min = b.Min.Min(n.Bounds.Min)
		b.Max = b.Max.Max(n.Bounds.Max)
	}
	return b
}

func boundsOf(tris []Triangle) Bounds {
	b := Bounds{Min: tris[0][0], Max: tris[0][0]}
	for _, tri := range tris {
		for _, p := range tri {
			b.Min = b.Min.Min(p)
			b.Max = b.Max.Max(p)
		}
	}
	return b
}

// Box returns the 12 triangles of an axis-aligned box, wound outward.
func Box(min, max math.Vec3) []Triangle {
	p := [8]math.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
	quads := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	tris := make([]Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Triangle{p[q[0]], p[q[1]], p[q[2]]},
			Triangle{p[q[0]], p[q[2]], p[q[3]]},
		)
	}
	return tris
}
