package geometry

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Sphere represents a sphere shape
type Sphere struct {
	center   math.Vec3
	radius   float64
	material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center math.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		center:   center,
		radius:   radius,
		material: mat,
	}
}

// Center returns the sphere's center
func (s *Sphere) Center() math.Vec3 { return s.center }

// Radius returns the sphere's radius
func (s *Sphere) Radius() float64 { return s.radius }

// Material returns the sphere's material
func (s *Sphere) Material() material.Material { return s.material }

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray math.Ray) (*HitRecord, bool) {
	if s.radius <= 0 || ray.IsDegenerate() {
		return nil, false
	}

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: at² + 2(halfB)t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := stdmath.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !ray.InRange(root) {
		root = (-halfB + sqrtD) / a
		if !ray.InRange(root) {
			return nil, false
		}
	}

	hit := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Shape:    s,
		Material: s.material,
	}
	hit.setFaceNormal(ray, s.NormalAt(hit.Point))

	return hit, true
}

// NormalAt returns (point - center) / radius
func (s *Sphere) NormalAt(point math.Vec3) math.Vec3 {
	if s.radius <= 0 {
		return math.Vec3{}
	}
	return point.Subtract(s.center).Multiply(1.0 / s.radius)
}
