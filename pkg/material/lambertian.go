package material

import "github.com/df07/go-scene-raytracer/pkg/math"

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo math.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Shade filters the summed incident light by the albedo.
// The cosine term is already part of each incident color.
func (l *Lambertian) Shade(point ShadePoint, incident []Incident) math.Vec3 {
	return l.Albedo.Evaluate(point.Point).MultiplyVec(TotalIrradiance(incident))
}
