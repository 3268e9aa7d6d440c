package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"spotlight scene", "spotlight", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if preset != nil {
					t.Errorf("Expected nil preset for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			defer preset.Scene.Close()
			if preset.Scene.ShapeCount() == 0 {
				t.Errorf("Scene '%s' has no shapes", tt.sceneType)
			}
		})
	}
}

func TestEncodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	decoders := map[string]func(*bytes.Buffer) (image.Image, error){
		"png":  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		"bmp":  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		"tiff": func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encodeImage(&buf, img, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Bounds() != img.Bounds() {
				t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
			}
			r, g, b, _ := decoded.At(1, 1).RGBA()
			if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
				t.Errorf("Pixel mismatch: got (%d,%d,%d)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncodeImage_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := encodeImage(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1)), "gif")
	if !errors.Is(err, errUnknownFormat) {
		t.Errorf("Expected errUnknownFormat, got %v", err)
	}
	if _, err := formatExtension("jpeg"); !errors.Is(err, errUnknownFormat) {
		t.Errorf("Expected errUnknownFormat, got %v", err)
	}
}

func TestRun(t *testing.T) {
	outDir := t.TempDir()
	var logs bytes.Buffer

	filename, err := run(options{
		sceneType: "default",
		width:     16,
		height:    9,
		format:    "tif",
		outDir:    outDir,
	}, core.NewWriterLogger(&logs))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if filepath.Dir(filename) != filepath.Join(outDir, "default") {
		t.Errorf("Unexpected output location %s", filename)
	}
	if !strings.HasSuffix(filename, ".tiff") {
		t.Errorf("Expected .tiff extension, got %s", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	defer file.Close()

	img, err := tiff.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a valid TIFF: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %v", img.Bounds())
	}
	if !strings.Contains(logs.String(), "Using default scene") {
		t.Errorf("Expected scene log, got %q", logs.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"bad format", options{sceneType: "default", width: 4, height: 4, format: "gif", outDir: t.TempDir()}},
		{"bad scene", options{sceneType: "missing", width: 4, height: 4, format: "png", outDir: t.TempDir()}},
		{"bad size", options{sceneType: "default", width: 0, height: 4, format: "png", outDir: t.TempDir()}},
		{"texture without mesh", options{sceneType: "default", width: 4, height: 4, format: "png", outDir: t.TempDir(), texture: "ground.png"}},
		{"missing mesh", options{width: 4, height: 4, format: "png", outDir: t.TempDir(), meshFile: "missing.ply"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(tt.opts, core.NopLogger{}); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

const testPyramid = `ply
format ascii 1.0
element vertex 5
property float x
property float y
property float z
element face 5
property list uchar int vertex_indices
end_header
-1 0 -1
1 0 -1
1 0 1
-1 0 1
0 1.5 0
4 0 1 2 3
3 0 4 1
3 1 4 2
3 2 4 3
3 3 4 0
`

func TestRun_Mesh(t *testing.T) {
	dir := t.TempDir()
	meshFile := filepath.Join(dir, "pyramid.ply")
	if err := os.WriteFile(meshFile, []byte(testPyramid), 0644); err != nil {
		t.Fatal(err)
	}

	textureFile := filepath.Join(dir, "ground.bmp")
	f, err := os.Create(textureFile)
	if err != nil {
		t.Fatal(err)
	}
	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tex.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	if err := bmp.Encode(f, tex); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var logs bytes.Buffer
	filename, err := run(options{
		width:    12,
		height:   8,
		format:   "png",
		outDir:   filepath.Join(dir, "out"),
		meshFile: meshFile,
		texture:  textureFile,
	}, core.NewWriterLogger(&logs))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if filepath.Base(filepath.Dir(filename)) != "mesh" {
		t.Errorf("Expected output under mesh/, got %s", filename)
	}
	if !strings.Contains(logs.String(), "5 vertices, 6 triangles") {
		t.Errorf("Expected mesh log, got %q", logs.String())
	}
}

func TestWriteImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))

	tests := []struct {
		name        string
		filename    string
		format      string
		expectError bool
	}{
		{"png written", filepath.Join(dir, "out.png"), "png", false},
		{"bmp written", filepath.Join(dir, "out.bmp"), "bmp", false},
		{"missing directory", filepath.Join(dir, "missing", "out.png"), "png", true},
		{"unknown format", filepath.Join(dir, "out.gif"), "gif", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeImage(tt.filename, img, tt.format)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			// The file must be complete once writeImage returns
			data, err := os.ReadFile(tt.filename)
			if err != nil {
				t.Fatalf("Output not readable: %v", err)
			}
			var decoded image.Image
			if tt.format == "png" {
				decoded, err = png.Decode(bytes.NewReader(data))
			} else {
				decoded, err = bmp.Decode(bytes.NewReader(data))
			}
			if err != nil {
				t.Fatalf("Output does not decode: %v", err)
			}
			if decoded.Bounds() != img.Bounds() {
				t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
			}
		})
	}
}

func TestRun_ReleasesScene(t *testing.T) {
	var logs bytes.Buffer
	_, err := run(options{
		sceneType: "spotlight",
		width:     4,
		height:    4,
		format:    "png",
		outDir:    t.TempDir(),
	}, core.NewWriterLogger(&logs))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(logs.String(), "Failed to release scene") {
		t.Errorf("Scene close reported an error: %q", logs.String())
	}
}
