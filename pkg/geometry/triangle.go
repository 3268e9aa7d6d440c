package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Triangle represents a single triangle defined by three vertices.
// Winding is counter-clockwise around the normal.
type Triangle struct {
	v0, v1, v2 math.Vec3
	normal     math.Vec3 // Cached normal, zero for a degenerate triangle
	material   material.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 math.Vec3, mat material.Material) *Triangle {
	return &Triangle{
		v0:       v0,
		v1:       v1,
		v2:       v2,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		material: mat,
	}
}

// Vertices returns the three corners in winding order
func (t *Triangle) Vertices() (math.Vec3, math.Vec3, math.Vec3) {
	return t.v0, t.v1, t.v2
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material { return t.material }

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray math.Ray) (*HitRecord, bool) {
	const epsilon = 1e-8

	if t.normal.IsZero() || ray.IsDegenerate() {
		return nil, false
	}

	edge1 := t.v1.Subtract(t.v0)
	edge2 := t.v2.Subtract(t.v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	dist := f * edge2.Dot(q)
	if !ray.InRange(dist) {
		return nil, false
	}

	hit := &HitRecord{
		T:        dist,
		Point:    ray.At(dist),
		Shape:    t,
		Material: t.material,
	}
	hit.setFaceNormal(ray, t.normal)

	return hit, true
}

// NormalAt returns the face normal
func (t *Triangle) NormalAt(point math.Vec3) math.Vec3 {
	return t.normal
}
