package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/toothview/internal/scene"
)

// floatsPerVertex is position (3) + normal (3).
const floatsPerVertex = 6

// meshVertices flattens triangles into interleaved position/normal data with
// one flat normal per face.
func meshVertices(tris []scene.Triangle) []float32 {
	out := make([]float32, 0, len(tris)*3*floatsPerVertex)
	for _, t := range tris {
		n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Normalize()
		for _, v := range t {
			out = append(out, v.X, v.Y, v.Z, n.X, n.Y, n.Z)
		}
	}
	return out
}

// gpuMesh is an uploaded triangle list.
type gpuMesh struct {
	vao, vbo uint32
	count    int32
}

func uploadMesh(tris []scene.Triangle) gpuMesh {
	vertices := meshVertices(tris)
	m := gpuMesh{count: int32(len(vertices) / floatsPerVertex)}
	if m.count == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	*m = gpuMesh{}
}
