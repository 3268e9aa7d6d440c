package material

import "github.com/df07/go-scene-raytracer/pkg/math"

// Material turns the light arriving at a surface point into outgoing color
type Material interface {
	// Shade returns the color leaving the surface toward the viewer.
	// incident holds one entry per light, in scene light order.
	Shade(point ShadePoint, incident []Incident) math.Vec3
}

// ShadePoint is the surface geometry a material needs
type ShadePoint struct {
	Point   math.Vec3 // Surface point
	Normal  math.Vec3 // Unit surface normal
	ViewDir math.Vec3 // Unit direction FROM the surface TO the viewer
}

// Incident is the light one emitter delivers to the surface
type Incident struct {
	Direction math.Vec3 // Unit direction FROM the surface TO the light
	Color     math.Vec3 // Already includes falloff, cosine and shadowing
}

// TotalIrradiance sums the incident colors in order
func TotalIrradiance(incident []Incident) math.Vec3 {
	var sum math.Vec3
	for _, in := range incident {
		sum = sum.Add(in.Color)
	}
	return sum
}
