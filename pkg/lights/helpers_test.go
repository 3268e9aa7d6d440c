package lights

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

const tolerance = 1e-9

// stubOccluder records shadow queries and answers with a fixed result
type stubOccluder struct {
	blocked bool
	calls   int
	last    struct {
		point, direction math.Vec3
		maxDistance      float64
	}
}

func (s *stubOccluder) IsOccluded(point, direction math.Vec3, maxDistance float64) bool {
	s.calls++
	s.last.point = point
	s.last.direction = direction
	s.last.maxDistance = maxDistance
	return s.blocked
}

func assertVec(t *testing.T, label string, got, expected math.Vec3) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, expected.X, tolerance) ||
		!scalar.EqualWithinAbs(got.Y, expected.Y, tolerance) ||
		!scalar.EqualWithinAbs(got.Z, expected.Z, tolerance) {
		t.Errorf("%s: expected %v, got %v", label, expected, got)
	}
}
