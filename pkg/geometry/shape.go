package geometry

import (
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// HitRecord contains information about a ray-object intersection.
// It lives only as long as one shading evaluation.
type HitRecord struct {
	T         float64           // Distance along the ray
	Point     math.Vec3         // Point of intersection
	Normal    math.Vec3         // Outward unit normal at the intersection
	FrontFace bool              // Whether the ray arrived from outside
	Shape     Shape             // The intersected primitive
	Material  material.Material // Material of the intersected primitive, may be nil
}

// setFaceNormal stores the outward normal and records which side was hit
func (h *HitRecord) setFaceNormal(ray math.Ray, outwardNormal math.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	h.Normal = outwardNormal
}

// ShadingNormal returns the normal flipped to face the incoming ray
func (h *HitRecord) ShadingNormal() math.Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// Shape is a single intersectable surface
type Shape interface {
	// Hit returns the nearest intersection inside the ray's interval,
	// or false when the ray misses. Degenerate shapes and rays never hit.
	Hit(ray math.Ray) (*HitRecord, bool)

	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point math.Vec3) math.Vec3
}
