package material

import "github.com/df07/go-scene-raytracer/pkg/math"

// Emissive represents a self-lit surface. It ignores incoming light.
type Emissive struct {
	Emission math.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission math.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Shade returns the emission regardless of lighting
func (e *Emissive) Shade(point ShadePoint, incident []Incident) math.Vec3 {
	return e.Emission
}
