package material

import (
	stdmath "math"
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

var upPoint = ShadePoint{
	Point:   math.Vec3{},
	Normal:  math.NewVec3(0, 1, 0),
	ViewDir: math.NewVec3(0, 1, 0),
}

func TestTotalIrradiance(t *testing.T) {
	incident := []Incident{
		{Direction: math.NewVec3(0, 1, 0), Color: math.NewVec3(0.1, 0.2, 0.3)},
		{Direction: math.NewVec3(1, 0, 0), Color: math.NewVec3(0.4, 0.0, 0.1)},
	}
	assertVec(t, "sum", TotalIrradiance(incident), math.NewVec3(0.5, 0.2, 0.4))
	assertVec(t, "empty", TotalIrradiance(nil), math.Vec3{})
}

func TestLambertian_Shade(t *testing.T) {
	lambertian := NewLambertian(math.NewVec3(0.5, 1.0, 0.0))

	tests := []struct {
		name     string
		incident []Incident
		expected math.Vec3
	}{
		{"no lights", nil, math.Vec3{}},
		{"one light", []Incident{{Color: math.NewVec3(0.04, 0.04, 0.04)}}, math.NewVec3(0.02, 0.04, 0)},
		{"two lights", []Incident{
			{Color: math.NewVec3(1, 1, 1)},
			{Color: math.NewVec3(1, 0, 1)},
		}, math.NewVec3(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "shade", lambertian.Shade(upPoint, tt.incident), tt.expected)
		})
	}
}

func TestLambertian_Textured(t *testing.T) {
	checker := NewCheckerboard(math.NewVec3(1, 1, 1), math.NewVec3(0, 0, 0), 1.0)
	lambertian := NewTexturedLambertian(checker)
	incident := []Incident{{Color: math.NewVec3(1, 1, 1)}}

	even := ShadePoint{Point: math.NewVec3(0.5, 0.5, 0.5), Normal: math.NewVec3(0, 1, 0)}
	odd := ShadePoint{Point: math.NewVec3(1.5, 0.5, 0.5), Normal: math.NewVec3(0, 1, 0)}

	assertVec(t, "even check", lambertian.Shade(even, incident), math.NewVec3(1, 1, 1))
	assertVec(t, "odd check", lambertian.Shade(odd, incident), math.Vec3{})
}

func TestCheckerboard_NegativeCoordinates(t *testing.T) {
	checker := NewCheckerboard(math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0), 2.0)

	// floor(-0.5/2) = -1, so the cube at the origin's negative side is odd
	assertVec(t, "negative x", checker.Evaluate(math.NewVec3(-0.5, 0.5, 0.5)), math.NewVec3(0, 1, 0))
	assertVec(t, "positive", checker.Evaluate(math.NewVec3(0.5, 0.5, 0.5)), math.NewVec3(1, 0, 0))

	flat := NewCheckerboard(math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0), 0)
	assertVec(t, "zero size", flat.Evaluate(math.NewVec3(7, 7, 7)), math.NewVec3(1, 0, 0))
}

func TestPhong_Shade(t *testing.T) {
	phong := NewPhong(math.NewVec3(0.5, 0.5, 0.5), math.NewVec3(1, 1, 1), 10)

	t.Run("mirror direction gives full highlight", func(t *testing.T) {
		// Light straight above, viewer straight above: reflection hits the eye
		incident := []Incident{{Direction: math.NewVec3(0, 1, 0), Color: math.NewVec3(1, 1, 1)}}
		assertVec(t, "shade", phong.Shade(upPoint, incident), math.NewVec3(1.5, 1.5, 1.5))
	})

	t.Run("off-mirror highlight decays", func(t *testing.T) {
		dir := math.NewVec3(1, 1, 0).Normalize()
		incident := []Incident{{Direction: dir, Color: math.NewVec3(1, 1, 1)}}
		// reflection is (-1,1,0)/sqrt2, cos to view (0,1,0) = 1/sqrt2
		highlight := stdmath.Pow(1/stdmath.Sqrt2, 10)
		expected := 0.5 + highlight
		assertVec(t, "shade", phong.Shade(upPoint, incident), math.NewVec3(expected, expected, expected))
	})

	t.Run("shadowed light adds nothing", func(t *testing.T) {
		incident := []Incident{{Direction: math.NewVec3(0, 1, 0)}}
		assertVec(t, "shade", phong.Shade(upPoint, incident), math.Vec3{})
	})
}

func TestEmissive_IgnoresLighting(t *testing.T) {
	emissive := NewEmissive(math.NewVec3(2, 3, 4))

	assertVec(t, "unlit", emissive.Shade(upPoint, nil), math.NewVec3(2, 3, 4))
	lit := []Incident{{Direction: math.NewVec3(0, 1, 0), Color: math.NewVec3(9, 9, 9)}}
	assertVec(t, "lit", emissive.Shade(upPoint, lit), math.NewVec3(2, 3, 4))
}

func TestImageTexture_Evaluate(t *testing.T) {
	red := math.NewVec3(1, 0, 0)
	green := math.NewVec3(0, 1, 0)
	blue := math.NewVec3(0, 0, 1)
	white := math.NewVec3(1, 1, 1)
	tex := NewImageTexture(2, 2, []math.Vec3{red, green, blue, white}, 2)

	tests := []struct {
		name     string
		point    math.Vec3
		expected math.Vec3
	}{
		{"top left", math.NewVec3(0.5, 0, 0.5), red},
		{"top right", math.NewVec3(1.5, 0, 0.5), green},
		{"bottom left", math.NewVec3(0.5, 0, 1.5), blue},
		{"bottom right", math.NewVec3(1.5, 7, 1.5), white},
		{"wraps positive", math.NewVec3(2.5, 0, 0.5), red},
		{"wraps negative", math.NewVec3(-0.5, 0, -0.5), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "color", tex.Evaluate(tt.point), tt.expected)
		})
	}
}

func TestImageTexture_Empty(t *testing.T) {
	tex := NewImageTexture(0, 0, nil, 1)
	assertVec(t, "empty", tex.Evaluate(math.NewVec3(1, 2, 3)), math.Vec3{})
}
