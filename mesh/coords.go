package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// CoordinateType is the representation used for every pooled vector.
type CoordinateType int

const (
	// Cartesian vectors are (x, y, z).
	Cartesian CoordinateType = iota
	// Polar vectors are (r, θ, φ): radius, inclination from +Z and
	// azimuth in the XY plane, in radians.
	Polar
)

func (t CoordinateType) String() string {
	switch t {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	}
	return fmt.Sprintf("CoordinateType(%d)", int(t))
}

// SetCoordinateType converts every pooled position and normal to t.
// Converting to the current type does nothing.
func (c *Construct) SetCoordinateType(t CoordinateType) error {
	var convert func(mgl64.Vec3) mgl64.Vec3
	switch t {
	case Cartesian:
		convert = ToCartesian
	case Polar:
		convert = ToPolar
	default:
		return fmt.Errorf("%w: coordinate type %v", ErrInvalidArgument, t)
	}
	if t == c.coords {
		return nil
	}

	for i, p := range c.positions {
		c.positions[i] = convert(p)
	}
	for i, n := range c.normals {
		c.normals[i] = convert(n)
	}

	Logger().Debug("mesh: converted coordinates",
		"from", c.coords, "to", t,
		"positions", len(c.positions), "normals", len(c.normals))
	c.coords = t
	return nil
}

// ToPolar converts a Cartesian vector to (r, θ, φ).
// The zero vector maps to the zero vector.
func ToPolar(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	r, theta, phi := mgl64.CartesianToSpherical(v)
	return mgl64.Vec3{r, theta, phi}
}

// ToCartesian converts (r, θ, φ) to a Cartesian vector.
func ToCartesian(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.SphericalToCartesian(v[0], v[1], v[2])
}

// cartesian returns v as a Cartesian vector, whatever the pool representation.
func (c *Construct) cartesian(v mgl64.Vec3) mgl64.Vec3 {
	if c.coords == Polar {
		return ToCartesian(v)
	}
	return v
}

// native converts a Cartesian vector into the pool representation.
func (c *Construct) native(v mgl64.Vec3) mgl64.Vec3 {
	if c.coords == Polar {
		return ToPolar(v)
	}
	return v
}
