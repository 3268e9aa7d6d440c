package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/lights"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// Builder collects shapes and lights before a Scene is sealed.
// A Builder is not safe for concurrent use.
type Builder struct {
	shapes []geometry.Shape
	lights []lights.Light
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AddShape appends shapes in order
func (b *Builder) AddShape(shapes ...geometry.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// AddLight appends lights in order
func (b *Builder) AddLight(lts ...lights.Light) *Builder {
	b.lights = append(b.lights, lts...)
	return b
}

// AddSphere adds a sphere to the scene
func (b *Builder) AddSphere(center math.Vec3, radius float64, mat material.Material) *Builder {
	return b.AddShape(geometry.NewSphere(center, radius, mat))
}

// AddGroundPlane adds a horizontal plane at height y facing up
func (b *Builder) AddGroundPlane(y float64, mat material.Material) *Builder {
	return b.AddShape(geometry.NewPlane(math.NewVec3(0, y, 0), math.NewVec3(0, 1, 0), mat))
}

// AddPointLight adds a point light to the scene
func (b *Builder) AddPointLight(position, color math.Vec3, intensity float64) *Builder {
	return b.AddLight(lights.NewPointLight(position, color, intensity))
}

// AddSpotLight adds a point spot light aimed from -> to
func (b *Builder) AddSpotLight(from, to, color math.Vec3, intensity, coneAngleDegrees, coneDeltaAngleDegrees float64) *Builder {
	return b.AddLight(lights.NewPointSpotLight(from, to, color, intensity, coneAngleDegrees, coneDeltaAngleDegrees))
}

// AddDirectionalLight adds a sun-like light travelling along direction
func (b *Builder) AddDirectionalLight(direction, color math.Vec3, intensity float64) *Builder {
	return b.AddLight(lights.NewDirectionalLight(direction, color, intensity))
}

// Build seals the collected members into a Scene and empties the builder,
// so the members belong to exactly one scene. On error the builder keeps
// its members.
func (b *Builder) Build() (*Scene, error) {
	s, err := New(b.shapes, b.lights)
	if err != nil {
		return nil, err
	}
	b.shapes = nil
	b.lights = nil
	return s, nil
}
