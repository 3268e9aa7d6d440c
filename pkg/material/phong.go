package material

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Phong is a diffuse base with a view-dependent highlight
type Phong struct {
	Diffuse   ColorSource
	Specular  math.Vec3 // Highlight color
	Shininess float64   // Phong exponent, larger is tighter
}

// NewPhong creates a Phong material with a solid diffuse color
func NewPhong(diffuse, specular math.Vec3, shininess float64) *Phong {
	return &Phong{
		Diffuse:   NewSolidColor(diffuse),
		Specular:  specular,
		Shininess: shininess,
	}
}

// Shade adds a specular lobe around the mirror direction of each light
func (p *Phong) Shade(point ShadePoint, incident []Incident) math.Vec3 {
	albedo := p.Diffuse.Evaluate(point.Point)

	var result math.Vec3
	for _, in := range incident {
		if in.Color.IsZero() {
			continue
		}
		result = result.Add(albedo.MultiplyVec(in.Color))

		reflected := in.Direction.Negate().Reflect(point.Normal)
		if cosAlpha := reflected.Dot(point.ViewDir); cosAlpha > 0 {
			highlight := stdmath.Pow(cosAlpha, p.Shininess)
			result = result.Add(p.Specular.MultiplyVec(in.Color).Multiply(highlight))
		}
	}
	return result
}
