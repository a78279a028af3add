// Package renderer draws the tooth scene and the region overlay with OpenGL.
package renderer

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/toothview/internal/engine/debug"
	"github.com/Faultbox/toothview/internal/engine/lighting"
	"github.com/Faultbox/toothview/internal/interaction"
	"github.com/Faultbox/toothview/internal/logger"
	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/internal/scene"
	"github.com/Faultbox/toothview/pkg/math"
)

var (
	//go:embed shaders/mesh.vert
	meshVertSrc string
	//go:embed shaders/mesh.frag
	meshFragSrc string
	//go:embed shaders/overlay.vert
	overlayVertSrc string
	//go:embed shaders/overlay.frag
	overlayFragSrc string
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// Background is the clear color.
	Background scene.Color
	// OverlayColor tints the leader line and border.
	OverlayColor scene.Color
	Light        lighting.Sun
}

// DefaultConfig returns the viewer's standard look.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:        width,
		Height:       height,
		Background:   scene.Color{R: 0.1, G: 0.1, B: 0.15, A: 1},
		OverlayColor: scene.Color{R: 1, G: 1, B: 1, A: 1},
		Light:        lighting.DefaultSun,
	}
}

// View is the camera state for one frame.
type View struct {
	ViewProj math.Mat4
	Eye      math.Vec3
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram    *program
	overlayProgram *program

	meshes  map[int]*gpuMesh
	overlay struct {
		bundle region.Bundle
		line   *lineBuffer
		border *lineBuffer
		image  *lineBuffer
	}
	bounds     *lineBuffer
	showBounds bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[int]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	bg := cfg.Background
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)

	var err error
	if r.meshProgram, err = compileProgram("mesh", meshVertSrc, meshFragSrc); err != nil {
		return nil, err
	}
	if r.overlayProgram, err = compileProgram("overlay", overlayVertSrc, overlayFragSrc); err != nil {
		r.meshProgram.delete()
		return nil, err
	}

	r.overlay.line = newLineBuffer()
	r.overlay.border = newLineBuffer()
	r.overlay.image = newLineBuffer()
	r.bounds = newLineBuffer()

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload replaces the GPU copies of the scene's meshes.
func (r *Renderer) Upload(sc *scene.Scene) {
	r.releaseMeshes()

	var bounds []float32
	for _, n := range sc.Meshes() {
		m := uploadMesh(n.Geometry)
		r.meshes[n.ID] = &m
		bounds = append(bounds, debug.BoundsWireframe(n.Bounds, debug.DefaultBoundsPadding)...)
	}
	r.bounds.set(bounds)

	r.log.Debug("scene uploaded", zap.Int("meshes", len(r.meshes)))
}

// ToggleBounds switches the mesh bounding-box wireframe on or off.
func (r *Renderer) ToggleBounds() bool {
	r.showBounds = !r.showBounds
	return r.showBounds
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMeshes()
	for _, b := range []*lineBuffer{r.overlay.line, r.overlay.border, r.overlay.image, r.bounds} {
		if b != nil {
			b.delete()
		}
	}
	r.meshProgram.delete()
	r.overlayProgram.delete()
}

func (r *Renderer) releaseMeshes() {
	for id, m := range r.meshes {
		m.delete()
		delete(r.meshes, id)
	}
}

// Resize handles framebuffer resize. Sizes are drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame: back-layer meshes with their composed materials,
// front-layer meshes with the dissolve driven by f.Progress, then the
// region overlay.
func (r *Renderer) Draw(f interaction.Frame, front []*scene.Node, view View) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.meshProgram
	p.use()
	gl.UniformMatrix4fv(p.uniform("uViewProj"), 1, false, view.ViewProj.Ptr())
	gl.Uniform3f(p.uniform("uCameraPos"), view.Eye.X, view.Eye.Y, view.Eye.Z)
	gl.Uniform1f(p.uniform("uProgress"), float32(f.Progress))
	light := r.config.Light.Direction()
	gl.Uniform3f(p.uniform("uLightDir"), light.X, light.Y, light.Z)

	for _, item := range drawList(f, front) {
		m, ok := r.meshes[item.node.ID]
		if !ok {
			continue
		}
		mat := item.material
		if mat.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
		}
		c := mat.Color
		gl.Uniform4f(p.uniform("uColor"), c.R, c.G, c.B, c.A)
		gl.Uniform1f(p.uniform("uRoughness"), mat.Roughness)
		dissolve := int32(0)
		if mat.Dissolve {
			dissolve = 1
		}
		gl.Uniform1i(p.uniform("uDissolve"), dissolve)
		m.draw()
	}
	gl.Disable(gl.CULL_FACE)

	r.drawOverlay(f, view)
}

func (r *Renderer) drawOverlay(f interaction.Frame, view View) {
	if f.Bundle != r.overlay.bundle {
		g := buildOverlay(f.Bundle)
		r.overlay.line.set(g.Line)
		r.overlay.border.set(g.Border)
		r.overlay.image.set(g.Image)
		r.overlay.bundle = f.Bundle
	}

	p := r.overlayProgram
	p.use()
	gl.UniformMatrix4fv(p.uniform("uViewProj"), 1, false, view.ViewProj.Ptr())

	gl.Enable(gl.BLEND)
	defer gl.Disable(gl.BLEND)

	if r.showBounds {
		gl.Uniform4f(p.uniform("uColor"), 0.2, 1, 0.3, 0.6)
		r.bounds.draw(gl.LINES)
	}

	if !f.ShowOverlay {
		return
	}
	c := r.config.OverlayColor
	a := c.A * f.OverlayOpacity

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	gl.Uniform4f(p.uniform("uColor"), c.R, c.G, c.B, a)
	r.overlay.line.draw(gl.LINES)
	if f.ShowBorder {
		r.overlay.border.draw(gl.LINES)
	}
	if f.ShowImage {
		gl.Uniform4f(p.uniform("uColor"), 0.85, 0.85, 0.9, 0.35*a)
		r.overlay.image.draw(gl.TRIANGLES)
	}
}

// ReadPixels returns the current framebuffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

type drawItem struct {
	node     *scene.Node
	material scene.Material
}

// drawList orders a frame's meshes: back-layer assignments first, then the
// front layer. Dissolving meshes are dropped once fully revealed.
func drawList(f interaction.Frame, front []*scene.Node) []drawItem {
	items := make([]drawItem, 0, len(f.Materials)+len(front))
	for _, a := range f.Materials {
		items = append(items, drawItem{node: a.Node, material: a.Material})
	}
	for _, n := range front {
		if n.Back {
			continue
		}
		if n.Material.Dissolve && f.Progress >= interaction.ProgressMax {
			continue
		}
		items = append(items, drawItem{node: n, material: n.Material})
	}
	return items
}
