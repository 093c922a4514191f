package mesh

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

func uvNear(a, b mgl64.Vec2, tolerance float64) bool {
	return math.Abs(a[0]-b[0]) <= tolerance && math.Abs(a[1]-b[1]) <= tolerance
}
