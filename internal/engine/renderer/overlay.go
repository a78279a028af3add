package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/toothview/internal/region"
	"github.com/Faultbox/toothview/pkg/math"
)

// overlayGeometry is the world-space geometry of a region overlay. Line and
// Border are GL_LINES pairs; Image is a GL_TRIANGLES quad.
type overlayGeometry struct {
	Line   []float32
	Border []float32
	Image  []float32
}

func buildOverlay(b region.Bundle) overlayGeometry {
	var g overlayGeometry
	if b.IsDefault() {
		return g
	}

	p := b.LinePath
	g.Line = appendSegment(g.Line, p[0], p[1])
	g.Line = appendSegment(g.Line, p[1], p[2])

	if b.BorderVisible {
		c := b.BorderPosition
		hw, hh := b.BorderGeometry[0]/2, b.BorderGeometry[1]/2
		tl := math.Vec3{X: c.X - hw, Y: c.Y + hh, Z: c.Z}
		tr := math.Vec3{X: c.X + hw, Y: c.Y + hh, Z: c.Z}
		br := math.Vec3{X: c.X + hw, Y: c.Y - hh, Z: c.Z}
		bl := math.Vec3{X: c.X - hw, Y: c.Y - hh, Z: c.Z}
		g.Border = appendSegment(g.Border, tl, tr)
		g.Border = appendSegment(g.Border, tr, br)
		g.Border = appendSegment(g.Border, br, bl)
		g.Border = appendSegment(g.Border, bl, tl)
	}

	if b.ImageVisible {
		c := b.ImagePosition
		hw, hh := b.ImageScale[0]/2, b.ImageScale[1]/2
		tl := math.Vec3{X: c.X - hw, Y: c.Y + hh, Z: c.Z}
		tr := math.Vec3{X: c.X + hw, Y: c.Y + hh, Z: c.Z}
		br := math.Vec3{X: c.X + hw, Y: c.Y - hh, Z: c.Z}
		bl := math.Vec3{X: c.X - hw, Y: c.Y - hh, Z: c.Z}
		for _, v := range []math.Vec3{tl, bl, br, tl, br, tr} {
			g.Image = append(g.Image, v.X, v.Y, v.Z)
		}
	}
	return g
}

func appendSegment(dst []float32, a, b math.Vec3) []float32 {
	return append(dst, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
}

// lineBuffer is a position-only vertex buffer rewritten when the overlay
// changes.
type lineBuffer struct {
	vao, vbo uint32
	count    int32
}

func newLineBuffer() *lineBuffer {
	b := &lineBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

func (b *lineBuffer) set(vertices []float32) {
	b.count = int32(len(vertices) / 3)
	if b.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *lineBuffer) draw(mode uint32) {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(mode, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *lineBuffer) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
}
