package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/toothview/pkg/math"
)

func TestLoadDefault(t *testing.T) {
	s, err := LoadDefault()
	require.NoError(t, err)

	// Group, line and text nodes never show up as pickable meshes.
	for _, n := range s.Meshes() {
		assert.Equal(t, KindMesh, n.Kind, "node %s", n.Name)
		assert.Len(t, n.Geometry, 12, "box geometry for %s", n.Name)
	}
	assert.Less(t, len(s.Meshes()), len(s.Nodes()))

	var front, back int
	for _, n := range s.Meshes() {
		if n.Back {
			back++
		} else {
			front++
		}
	}
	assert.Equal(t, 2, front)
	assert.Equal(t, len(s.BackMeshes()), back)

	names := map[string]bool{}
	for _, n := range s.BackMeshes() {
		names[n.Name] = true
	}
	for _, want := range []string{"nerve_blue_back", "nerve_yellow_back", "nerve_red_back", "bone_back"} {
		assert.True(t, names[want], "missing back mesh %s", want)
	}
}

func TestMeshIDsFollowNodeIndex(t *testing.T) {
	s, err := LoadDefault()
	require.NoError(t, err)
	for i, n := range s.Nodes() {
		assert.Equal(t, i, n.ID)
	}
}

func TestParseBoundsWithPosition(t *testing.T) {
	data := []byte(`
materials:
  plain: {color: [255, 0, 0]}
nodes:
  - name: cube
    kind: mesh
    material: plain
    position: [10, 0, 0]
    box: {min: [-1, -1, -1], max: [1, 1, 1]}
`)
	s, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, s.Meshes(), 1)

	b := s.Meshes()[0].Bounds
	assert.Equal(t, math.Vec3{X: 9, Y: -1, Z: -1}, b.Min)
	assert.Equal(t, math.Vec3{X: 11, Y: 1, Z: 1}, b.Max)
	assert.Equal(t, b, s.Bounds())
	assert.Equal(t, RGB(255, 0, 0), s.Meshes()[0].Material.Color)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "no meshes",
			yaml:    "nodes:\n  - {name: root, kind: group}\n",
			wantErr: ErrEmptyScene,
		},
		{
			name:    "unknown kind",
			yaml:    "nodes:\n  - {name: cam, kind: camera}\n",
			wantErr: ErrUnknownKind,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("nodes:\n  - {name: m, kind: mesh, material: missing, box: {min: [0,0,0], max: [1,1,1]}}\n"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, DefaultManifest, 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Meshes())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTemplateIsACopy(t *testing.T) {
	s, err := LoadDefault()
	require.NoError(t, err)

	m, ok := s.Template("bone")
	require.True(t, ok)
	m.Color = RGB(0, 0, 0)

	again, _ := s.Template("bone")
	assert.NotEqual(t, m.Color, again.Color)
	assert.Equal(t, RGB(0, 0, 0), again.WithColor(RGB(0, 0, 0)).Color)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "mesh", KindMesh.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
