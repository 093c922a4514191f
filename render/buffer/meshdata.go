// Package buffer lays out meshes and images for GPU upload.
package buffer

import (
	m "github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/polymesh/mesh"
)

// MeshVertexFloats is the number of float32 values per interleaved vertex:
// position (3), normal (3), uv (2).
const MeshVertexFloats = 3 + 3 + 2

// MeshVertexBytes is the stride of one interleaved vertex.
const MeshVertexBytes = MeshVertexFloats * 4

// MeshData is an interleaved vertex buffer with triangle indices.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// NewMeshData interleaves a flattened mesh. Missing texture
// coordinates become (0, 0).
func NewMeshData(flat mesh.Flat) MeshData {
	data := MeshData{
		Vertices: make([]float32, 0, flat.Corners()*MeshVertexFloats),
		Indices:  make([]uint32, 0, flat.Corners()),
	}

	corner := make(map[uint32]uint32, flat.Corners())
	for _, i := range flat.Indices {
		if _, ok := corner[i]; ok {
			continue
		}
		p := m.Vec3{flat.Positions[i*3], flat.Positions[i*3+1], flat.Positions[i*3+2]}
		n := m.Vec3{flat.Normals[i*3], flat.Normals[i*3+1], flat.Normals[i*3+2]}
		var uv m.Vec2
		if len(flat.TexCoords) > 0 {
			uv = m.Vec2{flat.TexCoords[i*2], flat.TexCoords[i*2+1]}
		}
		corner[i] = data.Vertex(p, n, uv)
	}

	for k := 0; k+2 < len(flat.Indices); k += 3 {
		data.Triangle(corner[flat.Indices[k]], corner[flat.Indices[k+1]], corner[flat.Indices[k+2]])
	}
	return data
}

// Vertex appends an interleaved vertex and returns its index.
func (data *MeshData) Vertex(p, n m.Vec3, uv m.Vec2) uint32 {
	index := uint32(len(data.Vertices) / MeshVertexFloats)
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	data.Vertices = append(data.Vertices, p[:]...)
	data.Vertices = append(data.Vertices, n[:]...)
	data.Vertices = append(data.Vertices, uv[:]...)
	return index
}

func (data *MeshData) Triangle(a, b, c uint32) {
	data.Indices = append(data.Indices, a, b, c)
}

// VertexCount returns the number of interleaved vertices.
func (data *MeshData) VertexCount() int { return len(data.Vertices) / MeshVertexFloats }
