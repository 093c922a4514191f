// Package icosahedron generates regular icosahedron meshes.
package icosahedron

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/adinfit/polymesh/mesh"
)

// Shading selects how normals are assigned.
type Shading int

const (
	// Smooth shares one vertex per corner with the normal pointing away
	// from the center.
	Smooth Shading = iota
	// Flat gives every face its own three vertices carrying the face normal.
	Flat
)

func (s Shading) String() string {
	switch s {
	case Smooth:
		return "smooth"
	case Flat:
		return "flat"
	}
	return fmt.Sprintf("Shading(%d)", int(s))
}

// ParseShading parses "smooth" or "flat".
func ParseShading(s string) (Shading, error) {
	switch s {
	case "smooth":
		return Smooth, nil
	case "flat":
		return Flat, nil
	}
	return 0, fmt.Errorf("%w: shading %q", mesh.ErrInvalidArgument, s)
}

var phi = (1 + math.Sqrt(5)) / 2

var corners = [12]mgl64.Vec3{
	{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
	{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
	{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
}

// faces are counter-clockwise seen from outside.
var faces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// Generate builds an icosahedron whose vertices lie at distance radius
// from the origin.
func Generate(radius float64, shading Shading) (*mesh.Construct, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: radius %v", mesh.ErrInvalidArgument, radius)
	}

	c := mesh.New()
	for _, p := range corners {
		p = p.Normalize().Mul(radius)
		c.AddVertexPosition(p[0], p[1], p[2])
	}

	var err error
	switch shading {
	case Smooth:
		err = smooth(c)
	case Flat:
		err = flat(c)
	default:
		return nil, fmt.Errorf("%w: %v", mesh.ErrInvalidArgument, shading)
	}
	if err != nil {
		return nil, err
	}

	mesh.Logger().Debug("icosahedron: generated",
		"radius", radius, "shading", shading,
		"vertices", c.VertexCount(), "faces", c.FaceCount())
	return c, nil
}

func smooth(c *mesh.Construct) error {
	for i := range corners {
		n := c.Position(i).Normalize()
		normal := c.AddVertexNormal(n[0], n[1], n[2])
		if _, err := c.AddVertex(mesh.Vertex{Position: i, Normal: normal}); err != nil {
			return err
		}
	}
	for _, f := range faces {
		if _, err := c.AddFace(f[0], f[1], f[2]); err != nil {
			return err
		}
	}
	return nil
}

func flat(c *mesh.Construct) error {
	for _, f := range faces {
		p0, p1, p2 := c.Position(f[0]), c.Position(f[1]), c.Position(f[2])
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		normal := c.AddVertexNormal(n[0], n[1], n[2])

		var corner [3]int
		for k, p := range f {
			index, err := c.AddVertex(mesh.Vertex{Position: p, Normal: normal})
			if err != nil {
				return err
			}
			corner[k] = index
		}
		if _, err := c.AddFace(corner[0], corner[1], corner[2]); err != nil {
			return err
		}
	}
	return nil
}

// Icosahedron memoizes Generate for a radius and shading.
// Changing either parameter regenerates the mesh on the next call to Mesh.
type Icosahedron struct {
	radius  float64
	shading Shading

	dirty     bool
	construct *mesh.Construct
}

// Default returns a smooth icosahedron of radius 1.
func Default() *Icosahedron {
	return &Icosahedron{radius: 1, shading: Smooth, dirty: true}
}

// New returns an icosahedron with the given parameters.
func New(radius float64, shading Shading) (*Icosahedron, error) {
	ico := Default()
	if err := ico.SetRadius(radius); err != nil {
		return nil, err
	}
	if err := ico.SetShading(shading); err != nil {
		return nil, err
	}
	return ico, nil
}

func (ico *Icosahedron) Radius() float64  { return ico.radius }
func (ico *Icosahedron) Shading() Shading { return ico.shading }

// SetRadius changes the radius. Invalid values leave ico unchanged.
func (ico *Icosahedron) SetRadius(radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fmt.Errorf("%w: radius %v", mesh.ErrInvalidArgument, radius)
	}
	if radius != ico.radius {
		ico.radius = radius
		ico.dirty = true
	}
	return nil
}

// SetShading changes the shading. Invalid values leave ico unchanged.
func (ico *Icosahedron) SetShading(shading Shading) error {
	if shading != Smooth && shading != Flat {
		return fmt.Errorf("%w: %v", mesh.ErrInvalidArgument, shading)
	}
	if shading != ico.shading {
		ico.shading = shading
		ico.dirty = true
	}
	return nil
}

// Mesh returns a copy of the cached construct, generating it first if
// needed. Callers may mutate the result freely.
func (ico *Icosahedron) Mesh() *mesh.Construct {
	if ico.dirty || ico.construct == nil {
		c, err := Generate(ico.radius, ico.shading)
		if err != nil {
			// parameters are validated by the setters
			panic(err)
		}
		ico.construct = c
		ico.dirty = false
	}
	return ico.construct.Clone()
}
