package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about one render pass
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	PrimaryRays int           // Camera rays cast
	Hits        int           // Camera rays that hit geometry
	Duration    time.Duration // Wall time of the pass
}

// HitRatio returns the fraction of primary rays that hit geometry
func (s RenderStats) HitRatio() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.PrimaryRays)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an
// image, in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}
