package renderer

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

// CameraConfig places a pinhole camera
type CameraConfig struct {
	LookFrom    math.Vec3 // Eye position
	LookAt      math.Vec3 // Point the camera looks at
	Up          math.Vec3 // World up direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// Camera generates primary rays
type Camera struct {
	origin          math.Vec3
	lowerLeftCorner math.Vec3
	horizontal      math.Vec3
	vertical        math.Vec3
	forward         math.Vec3
}

// NewCamera creates a pinhole camera with a unit focal length
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * stdmath.Pi / 180.0
	viewportHeight := 2.0 * stdmath.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		forward:         w.Negate(),
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the bottom-left of the image.
func (c *Camera) GetRay(s, t float64) math.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return math.NewRay(c.origin, direction)
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() math.Vec3 {
	return c.forward
}
