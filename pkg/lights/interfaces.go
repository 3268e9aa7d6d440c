package lights

import "github.com/df07/go-scene-raytracer/pkg/math"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is an emitter that contributes color at a surface point
type Light interface {
	Type() LightType

	// Illuminate returns the contribution of this light at point, whose
	// surface normal is normal. The contribution is zero when the surface
	// faces away from the light or when occluder reports a blocker.
	Illuminate(point, normal math.Vec3, occluder Occluder) Contribution
}

// Occluder answers shadow-ray queries. A scene implements it; lights cannot
// import the scene package.
type Occluder interface {
	// IsOccluded reports whether anything lies along direction from point
	// closer than maxDistance. maxDistance may be +Inf.
	IsOccluded(point, direction math.Vec3, maxDistance float64) bool
}

// Contribution is what one light delivers to one surface point
type Contribution struct {
	Color     math.Vec3 // Color contribution, zero when shadowed or back-facing
	Direction math.Vec3 // Unit direction FROM the surface point TO the light
	Distance  float64   // Distance to the light, +Inf for directional lights
}

// IsZero reports whether the contribution adds nothing
func (c Contribution) IsZero() bool {
	return c.Color.IsZero()
}

// occluded treats a nil occluder as an empty scene
func occluded(occluder Occluder, point, direction math.Vec3, maxDistance float64) bool {
	return occluder != nil && occluder.IsOccluded(point, direction, maxDistance)
}
