package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/material"
	"github.com/df07/go-scene-raytracer/pkg/math"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int
	height    int
	format    string
	outDir    string
	meshFile  string
	texture   string
}

var (
	errUnknownFormat      = errors.New("unknown output format")
	errTextureWithoutMesh = errors.New("-texture requires -mesh")
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: "+strings.Join(scene.PresetNames(), ", "))
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	format := flag.String("format", "png", "Output format: png, bmp or tiff")
	outDir := flag.String("out", "output", "Output directory")
	meshFile := flag.String("mesh", "", "PLY file to render instead of a preset scene")
	texture := flag.String("texture", "", "Image tiled over the ground of a -mesh scene (png, jpeg, bmp, tiff, webp)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Scene Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
		return
	}

	logger := core.NewDefaultLogger()
	filename, err := run(options{
		sceneType: *sceneType,
		width:     *width,
		height:    *height,
		format:    *format,
		outDir:    *outDir,
		meshFile:  *meshFile,
		texture:   *texture,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", filename)
}

// createScene builds the named preset scene
func createScene(sceneType string) (*scene.Preset, error) {
	return scene.LoadPreset(sceneType)
}

// createMeshScene loads a PLY mesh and an optional ground texture
func createMeshScene(meshFile, textureFile string, logger core.Logger) (*scene.Preset, error) {
	mesh, err := loaders.LoadPLY(meshFile)
	if err != nil {
		return nil, err
	}
	logger.Printf("Loaded mesh: %d vertices, %d triangles\n", len(mesh.Vertices), len(mesh.Faces))

	var ground material.ColorSource
	if textureFile != "" {
		img, err := loaders.LoadImage(textureFile)
		if err != nil {
			return nil, err
		}
		ground = img.Texture(1)
	}

	surface := material.NewPhong(math.NewVec3(0.7, 0.7, 0.75), math.NewVec3(0.3, 0.3, 0.3), 16)
	return scene.NewMeshScene(mesh.Triangles(surface), ground)
}

// run renders one image and returns the path it was written to
func run(opts options, logger core.Logger) (string, error) {
	ext, err := formatExtension(opts.format)
	if err != nil {
		return "", err
	}

	var preset *scene.Preset
	switch {
	case opts.meshFile != "":
		preset, err = createMeshScene(opts.meshFile, opts.texture, logger)
	case opts.texture != "":
		err = errTextureWithoutMesh
	default:
		preset, err = createScene(opts.sceneType)
	}
	if err != nil {
		return "", err
	}
	defer func() {
		if err := preset.Scene.Close(); err != nil {
			logger.Printf("Failed to release scene: %v\n", err)
		}
	}()

	logger.Printf("Using %s scene (%d shapes, %d lights)...\n",
		preset.Name, preset.Scene.ShapeCount(), preset.Scene.LightCount())

	config := renderer.DefaultConfig()
	config.Width = opts.width
	config.Height = opts.height
	if err := config.Validate(); err != nil {
		return "", err
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    preset.View.LookFrom,
		LookAt:      preset.View.LookAt,
		Up:          preset.View.Up,
		VFov:        preset.View.VFov,
		AspectRatio: config.AspectRatio(),
	})

	raytracer, err := renderer.NewRaytracer(preset.Scene, camera, config, logger)
	if err != nil {
		return "", err
	}
	img, stats := raytracer.RenderPass()
	logger.Printf("Hit ratio %.1f%%, average luminance %.3f\n",
		100*stats.HitRatio(), renderer.CalculateAverageLuminance(img))

	// Create output directory for this scene type
	outputDir := filepath.Join(opts.outDir, preset.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, ext))

	if err := writeImage(filename, img, opts.format); err != nil {
		return "", err
	}
	return filename, nil
}

// writeImage encodes img into a new file. A failed close is reported, since
// the encoder's last writes may still be buffered.
func writeImage(filename string, img image.Image, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := encodeImage(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	return nil
}

// formatExtension maps an output format to its file extension
func formatExtension(format string) (string, error) {
	switch format {
	case "png", "bmp":
		return format, nil
	case "tiff", "tif":
		return "tiff", nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownFormat, format)
}

// encodeImage writes img to w in the given format
func encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", errUnknownFormat, format)
}
