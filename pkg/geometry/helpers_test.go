package geometry

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

const tolerance = 1e-9

func assertVec(t *testing.T, label string, got, expected math.Vec3) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, expected.X, tolerance) ||
		!scalar.EqualWithinAbs(got.Y, expected.Y, tolerance) ||
		!scalar.EqualWithinAbs(got.Z, expected.Z, tolerance) {
		t.Errorf("%s: expected %v, got %v", label, expected, got)
	}
}

func assertFloat(t *testing.T, label string, got, expected float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got, expected, tolerance) {
		t.Errorf("%s: expected %f, got %f", label, expected, got)
	}
}
