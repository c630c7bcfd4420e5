// Package mesh uploads triangle geometry to the GPU and draws it.
// Geometry generation lives elsewhere; this package only owns the GL side of
// a mesh's lifetime.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// Vertex is the interleaved vertex layout shared by every render pass.
// Sway is a displacement weight: 0 for rigid geometry, rising toward 1 at the
// free end of blades that the vertex shaders animate. Both the depth pass and
// the lighting pass apply the same displacement, keeping shadows attached to
// the visible silhouette.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
	Sway     float32
}

// Geometry is CPU-side triangle data ready for upload.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Append merges other into g, offsetting indices.
func (g *Geometry) Append(other Geometry) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		g.Indices = append(g.Indices, base+idx)
	}
}

// Swaying reports whether any vertex carries a displacement weight.
func (g *Geometry) Swaying() bool {
	for _, v := range g.Vertices {
		if v.Sway != 0 {
			return true
		}
	}
	return false
}

// Mesh is an uploaded GPU mesh. The caller owns its lifetime and must call
// Destroy when done.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	// Min and Max bound the raw vertex positions, before Model is applied.
	Min, Max [3]float32

	// Model places the mesh in the world.
	Model mathx.Mat4

	// CastsShadow controls participation in the depth pass.
	CastsShadow bool
}

// Upload creates GPU buffers for the geometry and records its bounds.
func Upload(geo Geometry) *Mesh {
	m := &Mesh{
		Model:       mathx.Identity(),
		CastsShadow: true,
	}
	m.computeBounds(geo.Vertices)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*vertexSize, unsafe.Pointer(&geo.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// Color
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)
	// Sway weight
	gl.VertexAttribPointerWithOffset(3, 1, gl.FLOAT, false, int32(vertexSize), 9*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, unsafe.Pointer(&geo.Indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(geo.Indices))
	gl.BindVertexArray(0)

	return m
}

func (m *Mesh) computeBounds(vertices []Vertex) {
	if len(vertices) == 0 {
		return
	}
	m.Min = vertices[0].Position
	m.Max = vertices[0].Position
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < m.Min[i] {
				m.Min[i] = v.Position[i]
			}
			if v.Position[i] > m.Max[i] {
				m.Max[i] = v.Position[i]
			}
		}
	}
}

// Draw issues the draw call. The caller binds the program and uniforms.
func (m *Mesh) Draw() {
	if m.vao == 0 || m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
