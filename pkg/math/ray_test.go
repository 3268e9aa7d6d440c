package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, -4, 0))

	if !vecEqual(ray.Direction, NewVec3(0, -1, 0)) {
		t.Errorf("Expected unit direction (0,-1,0), got %v", ray.Direction)
	}
	if ray.TMin != Epsilon {
		t.Errorf("Expected TMin %g, got %g", Epsilon, ray.TMin)
	}
	if !math.IsInf(ray.TMax, 1) {
		t.Errorf("Expected unbounded TMax, got %g", ray.TMax)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 10, 0), NewVec3(0, -1, 0))
	p := ray.At(9)
	if !vecEqual(p, NewVec3(0, 1, 0)) {
		t.Errorf("Expected (0,1,0), got %v", p)
	}
}

func TestRay_InRange(t *testing.T) {
	ray := NewRayInterval(Vec3{}, NewVec3(1, 0, 0), 0, 5)

	tests := []struct {
		name     string
		t        float64
		expected bool
	}{
		{"zero is below epsilon", 0, false},
		{"just below epsilon", Epsilon / 2, false},
		{"at epsilon", Epsilon, true},
		{"inside", 2.5, true},
		{"at tMax", 5, true},
		{"beyond tMax", 5.0001, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ray.InRange(tt.t); got != tt.expected {
				t.Errorf("InRange(%g) = %t, expected %t", tt.t, got, tt.expected)
			}
		})
	}
}

func TestRay_WithTMax(t *testing.T) {
	ray := NewRay(Vec3{}, NewVec3(0, 0, 1))
	narrowed := ray.WithTMax(3)

	if !scalar.EqualWithinAbs(narrowed.TMax, 3, tolerance) {
		t.Errorf("Expected TMax 3, got %g", narrowed.TMax)
	}
	if !math.IsInf(ray.TMax, 1) {
		t.Error("WithTMax must not modify the original ray")
	}
}

func TestRay_IsDegenerate(t *testing.T) {
	if !NewRay(Vec3{}, Vec3{}).IsDegenerate() {
		t.Error("Zero direction ray should be degenerate")
	}
	if !NewRayInterval(Vec3{}, NewVec3(1, 0, 0), 2, 1).IsDegenerate() {
		t.Error("Empty interval ray should be degenerate")
	}
	if NewRay(Vec3{}, NewVec3(1, 0, 0)).IsDegenerate() {
		t.Error("Unit ray should not be degenerate")
	}
}
