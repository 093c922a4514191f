package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Wrapped is a Construct with a texture coordinate per vertex.
//
// Subdividing a Wrapped assigns every midpoint vertex the mean of its
// parents' texture coordinates, so every vertex of a fully textured mesh
// stays textured.
type Wrapped struct {
	*Construct

	uvs map[int]mgl64.Vec2
}

// NewWrapped returns an empty textured construct.
func NewWrapped() *Wrapped {
	w := &Wrapped{
		Construct: New(),
		uvs:       make(map[int]mgl64.Vec2),
	}
	w.Construct.OnMidpoint(w.interpolate)
	return w
}

// Wrap takes ownership of c and textures every existing vertex with
// uv(position), the position given in Cartesian form.
func Wrap(c *Construct, uv func(mgl64.Vec3) mgl64.Vec2) *Wrapped {
	w := &Wrapped{
		Construct: c,
		uvs:       make(map[int]mgl64.Vec2, len(c.vertices)),
	}
	for i, v := range c.vertices {
		w.uvs[i] = uv(c.cartesian(c.positions[v.Position]))
	}
	c.OnMidpoint(w.interpolate)
	return w
}

// SphericalUV maps a direction from the origin to u along the azimuth and
// v along the inclination, both in [0, 1].
func SphericalUV(p mgl64.Vec3) mgl64.Vec2 {
	polar := ToPolar(p)
	return mgl64.Vec2{polar[2]/(2*math.Pi) + 0.5, polar[1] / math.Pi}
}

// AddVertexTextureCoordinate sets the texture coordinate of a vertex,
// replacing any previous one.
func (w *Wrapped) AddVertexTextureCoordinate(vertex int, u, v float64) error {
	if vertex < 0 || vertex >= w.VertexCount() {
		return fmt.Errorf("%w: vertex %d, have %d vertices", ErrInvalidReference, vertex, w.VertexCount())
	}
	w.uvs[vertex] = mgl64.Vec2{u, v}
	return nil
}

// TextureCoordinate returns the texture coordinate of a vertex.
func (w *Wrapped) TextureCoordinate(vertex int) (mgl64.Vec2, bool) {
	uv, ok := w.uvs[vertex]
	return uv, ok
}

// TextureCoordinateCount returns the number of textured vertices.
func (w *Wrapped) TextureCoordinateCount() int { return len(w.uvs) }

func (w *Wrapped) interpolate(index, a, b int) {
	uvA, okA := w.uvs[a]
	uvB, okB := w.uvs[b]
	if !okA || !okB {
		panic(fmt.Errorf("%w: midpoint %d of vertices %d and %d", ErrMissingTextureCoordinate, index, a, b))
	}
	w.uvs[index] = uvA.Add(uvB).Mul(0.5)
}

// Flatten unrolls the mesh like Construct.Flatten and also fills
// TexCoords. Vertices without a texture coordinate get (0, 0).
func (w *Wrapped) Flatten() Flat {
	flat := w.Construct.Flatten()
	flat.TexCoords = make([]float32, 0, len(w.faces)*3*2)
	for _, face := range w.faces {
		for _, v := range face.Vertices() {
			uv := w.uvs[w.vertexIndex[v]]
			flat.TexCoords = append(flat.TexCoords, float32(uv[0]), float32(uv[1]))
		}
	}
	return flat
}
