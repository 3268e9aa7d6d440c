package renderer

import (
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/lights"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Scene is what shading needs from a scene; *scene.Scene implements it
type Scene interface {
	lights.Occluder
	NearestHit(ray math.Ray) (*geometry.HitRecord, bool)
	LightCount() int
	Light(i int) lights.Light
}

// Background returns the color for rays that hit nothing
type Background func(ray math.Ray) math.Vec3

// GradientBackground blends bottom to top by the ray's vertical direction
func GradientBackground(topColor, bottomColor math.Vec3) Background {
	return func(ray math.Ray) math.Vec3 {
		unitDirection := ray.Direction.Normalize()
		// Map y from [-1,1] to [0,1]
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
	}
}

// SolidBackground returns the same color for every miss
func SolidBackground(color math.Vec3) Background {
	return func(math.Ray) math.Vec3 { return color }
}

// defaultMaterial shades shapes created without a material
var defaultMaterial material.Material = material.NewLambertian(math.NewVec3(1, 1, 1))

// Contributions evaluates every light at a surface point, in scene light order
func Contributions(s Scene, point, normal math.Vec3) []lights.Contribution {
	contributions := make([]lights.Contribution, s.LightCount())
	for i := range contributions {
		contributions[i] = s.Light(i).Illuminate(point, normal, s)
	}
	return contributions
}

// Irradiance sums the contributions of every light at a surface point.
// A scene without lights gives zero.
func Irradiance(s Scene, point, normal math.Vec3) math.Vec3 {
	var sum math.Vec3
	for _, c := range Contributions(s, point, normal) {
		sum = sum.Add(c.Color)
	}
	return sum
}

// Shade evaluates one primary ray: nearest hit, per-light contributions,
// then the hit material. Misses get the background color, or black when
// background is nil.
func Shade(s Scene, ray math.Ray, background Background) math.Vec3 {
	hit, ok := s.NearestHit(ray)
	if !ok {
		if background == nil {
			return math.Vec3{}
		}
		return background(ray)
	}
	return shadeHit(s, ray, hit)
}

func shadeHit(s Scene, ray math.Ray, hit *geometry.HitRecord) math.Vec3 {
	normal := hit.ShadingNormal()

	contributions := Contributions(s, hit.Point, normal)
	incident := make([]material.Incident, len(contributions))
	for i, c := range contributions {
		incident[i] = material.Incident{Direction: c.Direction, Color: c.Color}
	}

	mat := hit.Material
	if mat == nil {
		mat = defaultMaterial
	}

	return mat.Shade(material.ShadePoint{
		Point:   hit.Point,
		Normal:  normal,
		ViewDir: ray.Direction.Negate(),
	}, incident)
}
