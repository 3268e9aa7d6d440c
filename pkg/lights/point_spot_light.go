package lights

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

// PointSpotLight is a point light restricted to a cone with a soft edge
type PointSpotLight struct {
	position        math.Vec3 // Light position in world space
	direction       math.Vec3 // Normalized direction vector (from -> to)
	color           math.Vec3
	intensity       float64
	cosTotalWidth   float64 // Cosine of total cone angle (outer edge)
	cosFalloffStart float64 // Cosine of falloff start angle (inner cone)
}

// NewPointSpotLight creates a new point spot light
// from: light position
// to: point the light is aimed at
// coneAngleDegrees: total cone angle in degrees
// coneDeltaAngleDegrees: falloff transition angle in degrees
func NewPointSpotLight(from, to, color math.Vec3, intensity, coneAngleDegrees, coneDeltaAngleDegrees float64) *PointSpotLight {
	totalWidthRadians := coneAngleDegrees * stdmath.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * stdmath.Pi / 180.0

	return &PointSpotLight{
		position:        from,
		direction:       to.Subtract(from).Normalize(),
		color:           color,
		intensity:       intensity,
		cosTotalWidth:   stdmath.Cos(totalWidthRadians),
		cosFalloffStart: stdmath.Cos(falloffStartRadians),
	}
}

// Position returns the light's position
func (sl *PointSpotLight) Position() math.Vec3 { return sl.position }

// Direction returns the cone axis
func (sl *PointSpotLight) Direction() math.Vec3 { return sl.direction }

func (sl *PointSpotLight) Type() LightType {
	return LightTypePoint
}

// Illuminate implements the Light interface
func (sl *PointSpotLight) Illuminate(point, normal math.Vec3, occluder Occluder) Contribution {
	toPoint := point.Subtract(sl.position).Normalize()
	attenuation := sl.falloff(sl.direction.Dot(toPoint))
	if attenuation == 0 {
		// Still report the geometry so callers can tell where the light is
		toLight := sl.position.Subtract(point)
		return Contribution{Direction: toLight.Normalize(), Distance: toLight.Length()}
	}

	emission := sl.color.Multiply(sl.intensity * attenuation)
	return illuminateFromPosition(sl.position, emission, point, normal, occluder)
}

// falloff returns the cone attenuation for the cosine of the angle between
// the cone axis and the direction to the shaded point
func (sl *PointSpotLight) falloff(cosAngle float64) float64 {
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}
