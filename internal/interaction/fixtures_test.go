package interaction

import (
	"github.com/Faultbox/toothview/internal/engine/picking"
	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
	"github.com/Faultbox/toothview/pkg/math"
)

// orthoCamera shoots rays straight down -Z; NDC maps to world X/Y times 5.
type orthoCamera struct {
	unavailable bool
}

func (c *orthoCamera) Unproject(ndc math.Vec2) (picking.Ray, bool) {
	if c.unavailable {
		return picking.Ray{}, false
	}
	return picking.Ray{
		Origin:    math.Vec3{X: ndc.X * 5, Y: ndc.Y * 5, Z: 10},
		Direction: math.Vec3{Z: -1},
	}, true
}

func box(name string, back bool, minX, maxX, half float32, mat scene.Material) scene.Node {
	return scene.Node{
		Kind:     scene.KindMesh,
		Name:     name,
		Back:     back,
		Material: mat,
		Geometry: scene.Box(math.Vec3{X: minX, Y: -half, Z: -half}, math.Vec3{X: maxX, Y: half, Z: half}),
	}
}

var (
	shellMat = scene.Material{Template: "shell", Color: scene.RGB(240, 240, 230), Dissolve: true}
	nerveMat = scene.Material{Template: "nerve", Color: scene.RGB(70, 110, 220)}
	dentMat  = scene.Material{Template: "dentin", Color: scene.RGB(230, 205, 150)}
	boneMat  = scene.Material{Template: "bone", Color: scene.RGB(225, 215, 195)}
)

// Pointer x positions (NDC) aimed at the fixture meshes.
const (
	aimShellOnly float32 = -0.3 // x=-1.5, inside the shell, no inner mesh
	aimNerves    float32 = 0    // x=0, blue nerve
	aimRedNerve  float32 = 0.08 // x=0.4, red nerve
	aimDentin    float32 = 0.25 // x=1.25
	aimBoneOnly  float32 = 0.7  // x=3.5, outside the shell
	aimNothing   float32 = 0.95 // x=4.75
)

func testScene() *scene.Scene {
	return scene.New([]scene.Node{
		{Kind: scene.KindGroup, Name: "root"},
		box("enamel_front", false, -2, 2, 2, shellMat),
		box("nerve_blue_back", true, -0.3, 0.3, 0.5, nerveMat),
		box("nerve_red_back", true, 0.3, 0.6, 0.5, nerveMat),
		box("nerve_yellow_back", true, -0.9, -0.6, 0.5, nerveMat),
		box("dentin_back", true, 1, 1.5, 1, dentMat),
		box("bone_back", true, 3, 4, 1, boneMat),
	}, nil)
}

func testContent() *region.Table {
	line := [3]math.Vec3{{}, {Z: 0.1}, {X: 1, Z: 0.1}}
	return region.NewTable(region.DefaultAliases(), map[region.ID]region.Bundle{
		region.Nerves: {Name: "Nerves", LinePath: line, ImageVisible: true, BorderVisible: true},
		"dentin_back": {Name: "Dentin", LinePath: line, ImageVisible: true},
	})
}

func at(x float32) PointerState {
	return PointerState{X: x}
}
