package material

import (
	stdmath "math"

	"github.com/df07/go-scene-raytracer/pkg/math"
)

// ImageTexture projects a 2D image onto the XZ plane, tiling every Scale units
type ImageTexture struct {
	Width  int
	Height int
	Pixels []math.Vec3 // Row-major: Pixels[y*Width + x]
	Scale  float64
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []math.Vec3, scale float64) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
		Scale:  scale,
	}
}

// Evaluate samples the texture below point using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(point math.Vec3) math.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return math.Vec3{}
	}
	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}

	// Wrap to [0, 1)
	u := point.X / scale
	v := point.Z / scale
	u -= stdmath.Floor(u)
	v -= stdmath.Floor(v)

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)
	return t.Pixels[y*t.Width+x]
}
