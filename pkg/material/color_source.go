package material

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point math.Vec3) math.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color math.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color math.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point math.Vec3) math.Vec3 {
	return s.Color
}

// Checkerboard alternates two colors on a 3D grid of cubes
type Checkerboard struct {
	Even, Odd math.Vec3
	Size      float64 // Edge length of one check
}

// NewCheckerboard creates a procedural checkerboard with checks of the given size
func NewCheckerboard(even, odd math.Vec3, size float64) *Checkerboard {
	return &Checkerboard{Even: even, Odd: odd, Size: size}
}

// Evaluate picks the color of the cube containing point
func (c *Checkerboard) Evaluate(point math.Vec3) math.Vec3 {
	if c.Size <= 0 {
		return c.Even
	}
	ix := int(stdmath.Floor(point.X / c.Size))
	iy := int(stdmath.Floor(point.Y / c.Size))
	iz := int(stdmath.Floor(point.Z / c.Size))
	if (ix+iy+iz)&1 == 0 {
		return c.Even
	}
	return c.Odd
}
