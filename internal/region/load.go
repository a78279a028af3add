package region

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/toothview/pkg/math"
)

// DefaultContent is the region content shipped with the viewer.
//
//go:embed data/regions.yaml
var DefaultContent []byte

// ErrInvalidLinePath is returned when a leader line does not have exactly
// three points.
var ErrInvalidLinePath = errors.New("leader line must have 3 points")

type contentDoc struct {
	Aliases map[string]string    `yaml:"aliases"`
	Regions map[string]bundleDoc `yaml:"regions"`
}

type bundleDoc struct {
	Name           string       `yaml:"name"`
	Image          string       `yaml:"image"`
	Line           [][3]float32 `yaml:"line"`
	Text           [3]float32   `yaml:"text"`
	ImagePosition  [3]float32   `yaml:"image_position"`
	ImageScale     [2]float32   `yaml:"image_scale"`
	BorderPosition [3]float32   `yaml:"border_position"`
	BorderGeometry [3]float32   `yaml:"border_geometry"`
	ImageVisible   bool         `yaml:"image_visible"`
	BorderVisible  bool         `yaml:"border_visible"`
}

// LoadDefault parses the embedded content table.
func LoadDefault() (*Table, error) {
	return Parse(DefaultContent)
}

// Load reads a content table from path. An empty path loads the embedded
// default.
func Load(path string) (*Table, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	return t, nil
}

// Parse builds a table from content YAML. The nerve aliases are always
// present; the document may add more or override them.
func Parse(data []byte) (*Table, error) {
	var doc contentDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	aliases := DefaultAliases()
	for name, id := range doc.Aliases {
		aliases[name] = ID(id)
	}

	bundles := make(map[ID]Bundle, len(doc.Regions))
	for id, bd := range doc.Regions {
		if len(bd.Line) != 3 {
			return nil, fmt.Errorf("region %s: %w (got %d)", id, ErrInvalidLinePath, len(bd.Line))
		}
		bundles[ID(id)] = Bundle{
			Name:           bd.Name,
			Image:          bd.Image,
			LinePath:       [3]math.Vec3{math.V3(bd.Line[0]), math.V3(bd.Line[1]), math.V3(bd.Line[2])},
			TextPosition:   math.V3(bd.Text),
			ImagePosition:  math.V3(bd.ImagePosition),
			ImageScale:     bd.ImageScale,
			BorderPosition: math.V3(bd.BorderPosition),
			BorderGeometry: bd.BorderGeometry,
			ImageVisible:   bd.ImageVisible,
			BorderVisible:  bd.BorderVisible,
		}
	}
	return NewTable(aliases, bundles), nil
}
