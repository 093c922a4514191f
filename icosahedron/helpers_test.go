package icosahedron

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// vecNear reports whether a and b differ by at most tolerance in every component.
func vecNear(a, b mgl64.Vec3, tolerance float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}
