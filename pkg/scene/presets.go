package scene

import (
	"errors"
	"fmt"
	stdmath "math"
	"sort"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

// View is the camera placement a preset recommends
type View struct {
	LookFrom math.Vec3
	LookAt   math.Vec3
	Up       math.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// Preset is a ready-made scene with a matching view
type Preset struct {
	Name  string
	Scene *Scene
	View  View
}

var presets = map[string]func() (*Preset, error){
	"default":   NewDefaultScene,
	"spotlight": NewSpotlightScene,
}

// PresetNames returns the names accepted by LoadPreset, sorted
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPreset builds the named preset
func LoadPreset(name string) (*Preset, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, PresetNames())
	}
	return build()
}

// NewDefaultScene creates three spheres on a checkered ground lit by two point lights
func NewDefaultScene() (*Preset, error) {
	ground := material.NewTexturedLambertian(material.NewCheckerboard(
		math.NewVec3(0.8, 0.8, 0.8),
		math.NewVec3(0.3, 0.3, 0.3),
		1.0,
	))
	red := material.NewLambertian(math.NewVec3(0.65, 0.25, 0.2))
	blue := material.NewPhong(math.NewVec3(0.1, 0.2, 0.5), math.NewVec3(0.6, 0.6, 0.6), 32)
	gold := material.NewPhong(math.NewVec3(0.8, 0.6, 0.2), math.NewVec3(1, 1, 1), 64)

	s, err := NewBuilder().
		AddGroundPlane(0, ground).
		AddSphere(math.NewVec3(0, 0.5, -1), 0.5, red).
		AddSphere(math.NewVec3(-1, 0.5, -1), 0.5, blue).
		AddSphere(math.NewVec3(1, 0.5, -1), 0.5, gold).
		AddPointLight(math.NewVec3(2, 4, 1), math.NewVec3(1.0, 0.95, 0.9), 20).
		AddPointLight(math.NewVec3(-3, 2, 2), math.NewVec3(0.6, 0.7, 1.0), 6).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build default scene: %w", err)
	}

	return &Preset{
		Name:  "default",
		Scene: s,
		View: View{
			LookFrom: math.NewVec3(0, 0.75, 2),
			LookAt:   math.NewVec3(0, 0.5, -1),
			Up:       math.NewVec3(0, 1, 0),
			VFov:     40,
		},
	}, nil
}

// NewSpotlightScene lights a pyramid and a disc with a spot light and a dim sun
func NewSpotlightScene() (*Preset, error) {
	floor := material.NewLambertian(math.NewVec3(0.7, 0.7, 0.7))
	stone := material.NewLambertian(math.NewVec3(0.8, 0.5, 0.3))
	pad := material.NewLambertian(math.NewVec3(0.2, 0.6, 0.3))
	lamp := material.NewEmissive(math.NewVec3(1, 0.9, 0.6))

	apex := math.NewVec3(0, 1.2, -2)
	a := math.NewVec3(-0.8, 0, -1.2)
	b := math.NewVec3(0.8, 0, -1.2)
	c := math.NewVec3(0.8, 0, -2.8)
	d := math.NewVec3(-0.8, 0, -2.8)

	s, err := NewBuilder().
		AddGroundPlane(0, floor).
		AddShape(
			geometry.NewTriangle(a, b, apex, stone),
			geometry.NewTriangle(b, c, apex, stone),
			geometry.NewTriangle(c, d, apex, stone),
			geometry.NewTriangle(d, a, apex, stone),
			geometry.NewDisc(math.NewVec3(1.6, 0.01, -1.5), math.NewVec3(0, 1, 0), 0.5, pad),
		).
		AddSphere(math.NewVec3(0, 3, -2), 0.1, lamp).
		AddSpotLight(math.NewVec3(0, 2.8, -1.2), math.NewVec3(0, 0, -2), math.NewVec3(1, 0.9, 0.6), 12, 40, 10).
		AddDirectionalLight(math.NewVec3(-1, -2, -1), math.NewVec3(0.4, 0.5, 0.7), 0.3).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build spotlight scene: %w", err)
	}

	return &Preset{
		Name:  "spotlight",
		Scene: s,
		View: View{
			LookFrom: math.NewVec3(0, 1.5, 2.5),
			LookAt:   math.NewVec3(0, 0.6, -2),
			Up:       math.NewVec3(0, 1, 0),
			VFov:     45,
		},
	}, nil
}

// ErrEmptyMesh is returned when a mesh scene is requested without triangles
var ErrEmptyMesh = errors.New("scene: mesh has no triangles")

// groundOffset is how far below the mesh the ground sits, relative to the
// mesh's bounding radius
const groundOffset = 1e-3

// NewMeshScene places a loaded triangle mesh on a ground plane just under its
// bounding box. Lights and camera scale with the mesh so any model is framed.
// A nil ground uses a checkerboard sized to the mesh.
func NewMeshScene(triangles []*geometry.Triangle, ground material.ColorSource) (*Preset, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	lo := math.NewVec3(stdmath.Inf(1), stdmath.Inf(1), stdmath.Inf(1))
	hi := lo.Negate()
	for _, tri := range triangles {
		if tri == nil {
			continue
		}
		v0, v1, v2 := tri.Vertices()
		for _, v := range []math.Vec3{v0, v1, v2} {
			lo = math.NewVec3(min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z))
			hi = math.NewVec3(max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z))
		}
	}

	center := lo.Add(hi).Multiply(0.5)
	radius := hi.Subtract(lo).Length() / 2
	if radius == 0 {
		radius = 1
	}

	if ground == nil {
		ground = material.NewCheckerboard(
			math.NewVec3(0.8, 0.8, 0.8),
			math.NewVec3(0.3, 0.3, 0.3),
			radius/2,
		)
	}

	// Sunk slightly so faces on the mesh's underside never tie with the ground
	groundY := lo.Y - groundOffset*radius
	b := NewBuilder().AddGroundPlane(groundY, material.NewTexturedLambertian(ground))
	for _, tri := range triangles {
		b.AddShape(tri)
	}
	b.AddPointLight(center.Add(math.NewVec3(2, 3, 2).Multiply(radius)), math.NewVec3(1, 0.95, 0.9), 25*radius*radius).
		AddDirectionalLight(math.NewVec3(1, -1, -0.5), math.NewVec3(0.5, 0.6, 0.8), 0.25)

	s, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh scene: %w", err)
	}

	return &Preset{
		Name:  "mesh",
		Scene: s,
		View: View{
			LookFrom: center.Add(math.NewVec3(0, 0.6, 3).Multiply(radius)),
			LookAt:   center,
			Up:       math.NewVec3(0, 1, 0),
			VFov:     40,
		},
	}, nil
}
