package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Disc represents a flat circular disc
type Disc struct {
	center   math.Vec3
	normal   math.Vec3
	radius   float64
	material material.Material
}

// NewDisc creates a new disc
func NewDisc(center, normal math.Vec3, radius float64, mat material.Material) *Disc {
	return &Disc{
		center:   center,
		normal:   normal.Normalize(),
		radius:   radius,
		material: mat,
	}
}

// Material returns the disc's material
func (d *Disc) Material() material.Material { return d.material }

// Hit implements the Shape interface
func (d *Disc) Hit(ray math.Ray) (*HitRecord, bool) {
	if d.radius <= 0 {
		return nil, false
	}

	t, ok := intersectPlane(ray, d.center, d.normal)
	if !ok {
		return nil, false
	}

	hitPoint := ray.At(t)
	if hitPoint.Subtract(d.center).LengthSquared() > d.radius*d.radius {
		return nil, false
	}

	hit := &HitRecord{
		T:        t,
		Point:    hitPoint,
		Shape:    d,
		Material: d.material,
	}
	hit.setFaceNormal(ray, d.normal)

	return hit, true
}

// NormalAt returns the disc normal
func (d *Disc) NormalAt(point math.Vec3) math.Vec3 {
	return d.normal
}
