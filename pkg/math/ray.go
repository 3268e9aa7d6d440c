package math

import "math"

// Epsilon is the smallest distance at which an intersection counts.
// A ray leaving a surface must not hit that surface again at t ~ 0.
const Epsilon = 1e-4

// Ray is a half-line with a valid parametric interval [TMin, TMax]
type Ray struct {
	Origin    Vec3
	Direction Vec3 // unit length, or zero for a degenerate ray
	TMin      float64
	TMax      float64
}

// NewRay creates a ray over [Epsilon, +Inf) with a normalized direction
func NewRay(origin, direction Vec3) Ray {
	return NewRayInterval(origin, direction, Epsilon, math.Inf(1))
}

// NewRayInterval creates a ray restricted to [tMin, tMax]
func NewRayInterval(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      tMin,
		TMax:      tMax,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InRange reports whether t lies inside the ray's interval.
// The lower bound is never below Epsilon.
func (r Ray) InRange(t float64) bool {
	return t >= max(r.TMin, Epsilon) && t <= r.TMax
}

// WithTMax returns a copy of the ray with a tighter upper bound
func (r Ray) WithTMax(tMax float64) Ray {
	r.TMax = tMax
	return r
}

// IsDegenerate reports whether the ray has no usable direction
// or an empty interval
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero() || max(r.TMin, Epsilon) > r.TMax
}
