package lights

import "github.com/df07/go-scene-raytracer/pkg/math"

// PointLight emits uniformly in every direction from a single position
type PointLight struct {
	position  math.Vec3
	color     math.Vec3
	intensity float64
}

// NewPointLight creates a point light; color is the normalized tint and
// intensity scales it
func NewPointLight(position, color math.Vec3, intensity float64) *PointLight {
	return &PointLight{
		position:  position,
		color:     color,
		intensity: intensity,
	}
}

// Position returns the light's position
func (pl *PointLight) Position() math.Vec3 { return pl.position }

// Color returns the light's tint
func (pl *PointLight) Color() math.Vec3 { return pl.color }

// Intensity returns the light's scalar intensity
func (pl *PointLight) Intensity() float64 { return pl.intensity }

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Illuminate implements the Light interface with inverse-square falloff and
// Lambert's cosine law
func (pl *PointLight) Illuminate(point, normal math.Vec3, occluder Occluder) Contribution {
	return illuminateFromPosition(pl.position, pl.color.Multiply(pl.intensity), point, normal, occluder)
}

// illuminateFromPosition evaluates a point emitter of the given radiant color
func illuminateFromPosition(position, emission, point, normal math.Vec3, occluder Occluder) Contribution {
	toLight := position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return Contribution{}
	}
	direction := toLight.Multiply(1.0 / distance)

	contribution := Contribution{Direction: direction, Distance: distance}

	cosTheta := normal.Dot(direction)
	if cosTheta <= 0 {
		return contribution
	}
	if occluded(occluder, point, direction, distance) {
		return contribution
	}

	contribution.Color = emission.Multiply(cosTheta / (distance * distance))
	return contribution
}
