package geometry

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	point    math.Vec3 // A point on the plane
	normal   math.Vec3 // Unit normal, zero for a degenerate plane
	material material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal math.Vec3, mat material.Material) *Plane {
	return &Plane{
		point:    point,
		normal:   normal.Normalize(),
		material: mat,
	}
}

// Material returns the plane's material
func (p *Plane) Material() material.Material { return p.material }

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray math.Ray) (*HitRecord, bool) {
	t, ok := intersectPlane(ray, p.point, p.normal)
	if !ok {
		return nil, false
	}

	hit := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Shape:    p,
		Material: p.material,
	}
	hit.setFaceNormal(ray, p.normal)

	return hit, true
}

// NormalAt returns the plane normal; it is the same everywhere
func (p *Plane) NormalAt(point math.Vec3) math.Vec3 {
	return p.normal
}

// intersectPlane solves (origin + t*dir - point) · normal = 0 inside the ray interval
func intersectPlane(ray math.Ray, point, normal math.Vec3) (float64, bool) {
	if normal.IsZero() || ray.IsDegenerate() {
		return 0, false
	}

	denominator := ray.Direction.Dot(normal)
	// Parallel to the plane
	if stdmath.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := point.Subtract(ray.Origin).Dot(normal) / denominator
	if !ray.InRange(t) {
		return 0, false
	}
	return t, true
}
