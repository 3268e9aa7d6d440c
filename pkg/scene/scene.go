package scene

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync/atomic"

	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/lights"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

var (
	ErrNilShape  = errors.New("scene: nil shape")
	ErrNilLight  = errors.New("scene: nil light")
	ErrDuplicate = errors.New("scene: member added more than once")
	ErrClosed    = errors.New("scene: already closed")
)

// Releaser is implemented by shapes and lights that hold resources.
// Close calls Release exactly once per member.
type Releaser interface {
	Release()
}

// Scene is a sealed set of shapes and lights. It owns every member: once a
// member is handed to New it must not be used elsewhere, and Close releases it.
//
// All query methods are read-only and safe for concurrent use. Close is not;
// it must not overlap any query.
type Scene struct {
	shapes []geometry.Shape
	lights []lights.Light
	closed atomic.Bool
}

// New creates a scene that takes ownership of shapes and lights.
// Both slices are copied. A nil entry or a member listed twice fails the
// whole construction; in that case ownership stays with the caller.
func New(shapes []geometry.Shape, lts []lights.Light) (*Scene, error) {
	seen := make(map[memberKey]struct{}, len(shapes)+len(lts))

	for i, shape := range shapes {
		if isNil(shape) {
			return nil, fmt.Errorf("shape %d: %w", i, ErrNilShape)
		}
		if !track(seen, shape) {
			return nil, fmt.Errorf("shape %d (%T): %w", i, shape, ErrDuplicate)
		}
	}
	for i, light := range lts {
		if isNil(light) {
			return nil, fmt.Errorf("light %d: %w", i, ErrNilLight)
		}
		if !track(seen, light) {
			return nil, fmt.Errorf("light %d (%T): %w", i, light, ErrDuplicate)
		}
	}

	return &Scene{
		shapes: slices.Clone(shapes),
		lights: slices.Clone(lts),
	}, nil
}

// NearestHit returns the closest intersection along ray, scanning every shape
// in order. When two shapes report the same distance either may be returned.
func (s *Scene) NearestHit(ray math.Ray) (*geometry.HitRecord, bool) {
	if ray.IsDegenerate() {
		return nil, false
	}

	var closest *geometry.HitRecord
	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray); ok {
			closest = hit
			ray = ray.WithTMax(hit.T)
		}
	}
	return closest, closest != nil
}

// IsOccluded reports whether any shape lies along direction from point before
// maxDistance. Both ends are pulled in by math.Epsilon so neither the surface
// at point nor a surface at the light counts as a blocker.
func (s *Scene) IsOccluded(point, direction math.Vec3, maxDistance float64) bool {
	shadow := math.NewRayInterval(point, direction, math.Epsilon, maxDistance-math.Epsilon)
	if shadow.IsDegenerate() {
		return false
	}

	for _, shape := range s.shapes {
		if _, ok := shape.Hit(shadow); ok {
			return true
		}
	}
	return false
}

// Shapes returns a copy of the shape sequence
func (s *Scene) Shapes() []geometry.Shape {
	return slices.Clone(s.shapes)
}

// Lights returns a copy of the light sequence
func (s *Scene) Lights() []lights.Light {
	return slices.Clone(s.lights)
}

// ShapeCount returns the number of shapes in the scene
func (s *Scene) ShapeCount() int { return len(s.shapes) }

// LightCount returns the number of lights in the scene
func (s *Scene) LightCount() int { return len(s.lights) }

// Light returns the i-th light without copying the sequence
func (s *Scene) Light(i int) lights.Light { return s.lights[i] }

// Closed reports whether Close has run
func (s *Scene) Closed() bool { return s.closed.Load() }

// Close releases every member exactly once, shapes first, each in sequence
// order, and drops all references. Afterwards the scene behaves as empty.
// A second call returns ErrClosed.
func (s *Scene) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	for _, shape := range s.shapes {
		if r, ok := shape.(Releaser); ok {
			r.Release()
		}
	}
	for _, light := range s.lights {
		if r, ok := light.(Releaser); ok {
			r.Release()
		}
	}

	s.shapes = nil
	s.lights = nil
	return nil
}

// memberKey identifies a pointer-like member by type and address
type memberKey struct {
	typ  reflect.Type
	addr uintptr
}

// track records v and reports false if it was already present.
// Value types cannot alias, so only pointer-like members are tracked.
func track(seen map[memberKey]struct{}, v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		// Distinct zero-size values may share an address
		if rv.Type().Elem().Size() == 0 {
			return true
		}
	case reflect.Map, reflect.Chan:
	default:
		return true
	}

	key := memberKey{typ: rv.Type(), addr: rv.Pointer()}
	if _, dup := seen[key]; dup {
		return false
	}
	seen[key] = struct{}{}
	return true
}

// isNil catches both nil interfaces and interfaces holding a nil pointer
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
