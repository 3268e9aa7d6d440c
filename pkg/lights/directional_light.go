package lights

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

// DirectionalLight is an infinitely distant emitter such as the sun.
// It has no distance falloff.
type DirectionalLight struct {
	toLight   math.Vec3 // unit vector from the scene toward the light
	color     math.Vec3
	intensity float64
}

// NewDirectionalLight creates a light travelling along direction
func NewDirectionalLight(direction, color math.Vec3, intensity float64) *DirectionalLight {
	return &DirectionalLight{
		toLight:   direction.Normalize().Negate(),
		color:     color,
		intensity: intensity,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Illuminate implements the Light interface
func (dl *DirectionalLight) Illuminate(point, normal math.Vec3, occluder Occluder) Contribution {
	contribution := Contribution{Direction: dl.toLight, Distance: stdmath.Inf(1)}
	if dl.toLight.IsZero() {
		return contribution
	}

	cosTheta := normal.Dot(dl.toLight)
	if cosTheta <= 0 {
		return contribution
	}
	if occluded(occluder, point, dl.toLight, contribution.Distance) {
		return contribution
	}

	contribution.Color = dl.color.Multiply(dl.intensity * cosTheta)
	return contribution
}
