package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/math"
)

var ErrInvalidConfig = errors.New("renderer: invalid config")

// Config contains rendering configuration
type Config struct {
	Width       int       // Image width in pixels
	Height      int       // Image height in pixels
	Gamma       float64   // Output gamma, 2.0 approximates sRGB
	TopColor    math.Vec3 // Background color straight up
	BottomColor math.Vec3 // Background color straight down
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:       400,
		Height:      225,
		Gamma:       2.0,
		TopColor:    math.NewVec3(0.5, 0.7, 1.0),
		BottomColor: math.NewVec3(1.0, 1.0, 1.0),
	}
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate checks the image dimensions and gamma
func (c Config) Validate() error {
	if c.Width < 1 || c.Width > 8192 {
		return fmt.Errorf("%w: width %d must be between 1 and 8192", ErrInvalidConfig, c.Width)
	}
	if c.Height < 1 || c.Height > 8192 {
		return fmt.Errorf("%w: height %d must be between 1 and 8192", ErrInvalidConfig, c.Height)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("%w: gamma %f must be positive", ErrInvalidConfig, c.Gamma)
	}
	return nil
}

// Raytracer renders a scene one primary ray per pixel
type Raytracer struct {
	scene      Scene
	camera     *Camera
	config     Config
	background Background
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, camera *Camera, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      scene,
		camera:     camera,
		config:     config,
		background: GradientBackground(config.TopColor, config.BottomColor),
		logger:     logger,
	}, nil
}

// RayColor returns the linear color seen along a primary ray
func (rt *Raytracer) RayColor(ray math.Ray) math.Vec3 {
	return Shade(rt.scene, ray, rt.background)
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func (rt *Raytracer) vec3ToColor(colorVec math.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(rt.config.Gamma).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders the full image through pixel centers
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{TotalPixels: width * height}

	rt.logger.Printf("Rendering %dx%d, %d lights...\n", width, height, rt.scene.LightCount())
	start := time.Now()

	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			s := (float64(i) + 0.5) / float64(width)
			t := (float64(j) + 0.5) / float64(height)
			ray := rt.camera.GetRay(s, t)

			stats.PrimaryRays++
			var colorVec math.Vec3
			if hit, ok := rt.scene.NearestHit(ray); ok {
				stats.Hits++
				colorVec = shadeHit(rt.scene, ray, hit)
			} else {
				colorVec = rt.background(ray)
			}

			img.SetRGBA(i, height-1-j, rt.vec3ToColor(colorVec))
		}
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v (%d/%d primary rays hit)\n", stats.Duration, stats.Hits, stats.PrimaryRays)

	return img, stats
}
