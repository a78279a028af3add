package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/toothview/pkg/math"
)

// DefaultManifest is the tooth scene shipped with the viewer.
//
//go:embed data/tooth.yaml
var DefaultManifest []byte

var (
	// ErrEmptyScene is returned when a manifest has no pickable meshes.
	ErrEmptyScene = errors.New("scene has no meshes")
	// ErrUnknownKind is returned for a node kind outside group/mesh/line/text.
	ErrUnknownKind = errors.New("unknown node kind")
)

type manifest struct {
	Materials map[string]materialDoc `yaml:"materials"`
	Nodes     []nodeDoc              `yaml:"nodes"`
}

type materialDoc struct {
	Color       [3]uint8 `yaml:"color"`
	Roughness   float32  `yaml:"roughness"`
	DoubleSided bool     `yaml:"double_sided"`
	Dissolve    bool     `yaml:"dissolve"`
}

type boxDoc struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type nodeDoc struct {
	Name      string          `yaml:"name"`
	Kind      string          `yaml:"kind"`
	Back      bool            `yaml:"back"`
	Material  string          `yaml:"material"`
	Position  [3]float32      `yaml:"position"`
	Box       *boxDoc         `yaml:"box"`
	Triangles [][3][3]float32 `yaml:"triangles"`
}

// LoadDefault parses the embedded tooth manifest.
func LoadDefault() (*Scene, error) {
	return Parse(DefaultManifest)
}

// Load reads a manifest from path. An empty path loads the embedded default.
func Load(path string) (*Scene, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from manifest YAML.
func Parse(data []byte) (*Scene, error) {
	var doc manifest
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	templates := make(map[string]Material, len(doc.Materials))
	for name, m := range doc.Materials {
		c := RGB(m.Color[0], m.Color[1], m.Color[2])
		templates[name] = Material{
			Template:    name,
			Color:       c,
			Roughness:   m.Roughness,
			DoubleSided: m.DoubleSided,
			Dissolve:    m.Dissolve,
		}
	}

	nodes := make([]Node, 0, len(doc.Nodes))
	meshes := 0
	for i, nd := range doc.Nodes {
		kind, ok := kindNames[nd.Kind]
		if !ok {
			return nil, fmt.Errorf("node %d (%s): %w %q", i, nd.Name, ErrUnknownKind, nd.Kind)
		}
		n := Node{Kind: kind, Name: nd.Name, Back: nd.Back}
		if kind == KindMesh {
			mat, ok := templates[nd.Material]
			if !ok {
				return nil, fmt.Errorf("node %s: unknown material %q", nd.Name, nd.Material)
			}
			n.Material = mat
			n.Geometry = geometryOf(nd)
			if len(n.Geometry) > 0 {
				meshes++
			}
		}
		nodes = append(nodes, n)
	}
	if meshes == 0 {
		return nil, ErrEmptyScene
	}
	return New(nodes, templates), nil
}

func geometryOf(nd nodeDoc) []Triangle {
	offset := math.V3(nd.Position)
	var tris []Triangle
	if nd.Box != nil {
		tris = append(tris, Box(math.V3(nd.Box.Min).Add(offset), math.V3(nd.Box.Max).Add(offset))...)
	}
	for _, t := range nd.Triangles {
		tris = append(tris, Triangle{
			math.V3(t[0]).Add(offset),
			math.V3(t[1]).Add(offset),
			math.V3(t[2]).Add(offset),
		})
	}
	return tris
}
