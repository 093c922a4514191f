// Package mesh implements an indexed triangle mesh with deduplicated
// vertices and faces, Cartesian/spherical coordinate conversion and
// midpoint subdivision.
//
// A Construct is built incrementally: positions and normals go into
// append-only pools, vertices reference pool indices, faces reference
// vertex indices. Every reference is validated when it is added, so a
// Construct never holds a face or vertex pointing at missing data.
//
// A Construct is not safe for concurrent mutation.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MidpointFunc is called during subdivision for every newly created
// midpoint vertex, with the indices of the vertex and its two parents.
type MidpointFunc func(index, a, b int)

// Construct is a triangle mesh: position and normal pools, a vertex table
// and a face table.
type Construct struct {
	coords CoordinateType

	positions []mgl64.Vec3
	normals   []mgl64.Vec3

	vertices    []Vertex
	vertexIndex map[Vertex]int

	faces     []Face
	faceIndex map[Face]int

	midpointHooks []MidpointFunc
}

// New returns an empty Cartesian construct.
func New() *Construct {
	return &Construct{
		coords:      Cartesian,
		vertexIndex: make(map[Vertex]int),
		faceIndex:   make(map[Face]int),
	}
}

// AddVertexPosition appends a position and returns its index.
func (c *Construct) AddVertexPosition(x, y, z float64) int {
	c.positions = append(c.positions, mgl64.Vec3{x, y, z})
	return len(c.positions) - 1
}

// AddVertexNormal appends a normal and returns its index.
func (c *Construct) AddVertexNormal(x, y, z float64) int {
	c.normals = append(c.normals, mgl64.Vec3{x, y, z})
	return len(c.normals) - 1
}

// AddVertex adds v and returns its index. If an equal vertex exists,
// its index is returned and nothing is added.
func (c *Construct) AddVertex(v Vertex) (int, error) {
	if v.Position < 0 || v.Position >= len(c.positions) {
		return -1, fmt.Errorf("%w: position %d of %v, have %d positions", ErrInvalidReference, v.Position, v, len(c.positions))
	}
	if v.Normal < 0 || v.Normal >= len(c.normals) {
		return -1, fmt.Errorf("%w: normal %d of %v, have %d normals", ErrInvalidReference, v.Normal, v, len(c.normals))
	}

	if index, ok := c.vertexIndex[v]; ok {
		return index, nil
	}
	c.vertices = append(c.vertices, v)
	index := len(c.vertices) - 1
	c.vertexIndex[v] = index
	return index, nil
}

// AddFace adds the triangle (i1, i2, i3) of vertex indices and returns the
// face index. Rotations of an existing face return the existing index.
func (c *Construct) AddFace(i1, i2, i3 int) (int, error) {
	for _, i := range [3]int{i1, i2, i3} {
		if i < 0 || i >= len(c.vertices) {
			return -1, fmt.Errorf("%w: vertex %d, have %d vertices", ErrInvalidReference, i, len(c.vertices))
		}
	}

	face, err := NewFace(c.vertices[i1], c.vertices[i2], c.vertices[i3])
	if err != nil {
		return -1, err
	}
	return c.addFace(face), nil
}

func (c *Construct) addFace(face Face) int {
	key := face.key()
	if index, ok := c.faceIndex[key]; ok {
		return index
	}
	c.faces = append(c.faces, face)
	index := len(c.faces) - 1
	c.faceIndex[key] = index
	return index
}

// OnMidpoint registers fn to be called for every vertex created by Subdivide.
func (c *Construct) OnMidpoint(fn MidpointFunc) {
	c.midpointHooks = append(c.midpointHooks, fn)
}

// CoordinateType returns the representation of the pooled vectors.
func (c *Construct) CoordinateType() CoordinateType { return c.coords }

// PositionCount returns the size of the position pool.
func (c *Construct) PositionCount() int { return len(c.positions) }

// NormalCount returns the size of the normal pool.
func (c *Construct) NormalCount() int { return len(c.normals) }

// VertexCount returns the number of distinct vertices.
func (c *Construct) VertexCount() int { return len(c.vertices) }

// FaceCount returns the number of distinct faces.
func (c *Construct) FaceCount() int { return len(c.faces) }

// Position returns the pooled position i in the current coordinate type.
func (c *Construct) Position(i int) mgl64.Vec3 { return c.positions[i] }

// Normal returns the pooled normal i in the current coordinate type.
func (c *Construct) Normal(i int) mgl64.Vec3 { return c.normals[i] }

// Vertex returns vertex i.
func (c *Construct) Vertex(i int) Vertex { return c.vertices[i] }

// Face returns face i.
func (c *Construct) Face(i int) Face { return c.faces[i] }

// VertexIndex returns the index of v, if present.
func (c *Construct) VertexIndex(v Vertex) (int, bool) {
	index, ok := c.vertexIndex[v]
	return index, ok
}

// Vertices returns a copy of the vertex table.
func (c *Construct) Vertices() []Vertex {
	return append([]Vertex(nil), c.vertices...)
}

// Faces returns a copy of the face table.
func (c *Construct) Faces() []Face {
	return append([]Face(nil), c.faces...)
}

// Clone returns a deep copy of c. Midpoint hooks are not copied.
func (c *Construct) Clone() *Construct {
	clone := &Construct{
		coords:      c.coords,
		positions:   append([]mgl64.Vec3(nil), c.positions...),
		normals:     append([]mgl64.Vec3(nil), c.normals...),
		vertices:    append([]Vertex(nil), c.vertices...),
		vertexIndex: make(map[Vertex]int, len(c.vertexIndex)),
		faces:       append([]Face(nil), c.faces...),
		faceIndex:   make(map[Face]int, len(c.faceIndex)),
	}
	for v, i := range c.vertexIndex {
		clone.vertexIndex[v] = i
	}
	for f, i := range c.faceIndex {
		clone.faceIndex[f] = i
	}
	return clone
}
