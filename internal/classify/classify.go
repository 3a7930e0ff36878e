// Package classify buckets an image by its spatial variation pattern.
// The category drives the PNG scanline filter choice: content that changes
// slowly along one axis compresses better under the predictor matching
// that axis.
package classify

import (
	"image"

	"github.com/disintegration/imaging"
)

// Category describes the dominant variation pattern of an image.
type Category int

const (
	SimpleGraphics Category = iota
	HorizontalGraphics
	VerticalPattern
	SmoothPhoto
	ComplexGeometry
	Mixed
)

func (c Category) String() string {
	switch c {
	case SimpleGraphics:
		return "simple-graphics"
	case HorizontalGraphics:
		return "horizontal-graphics"
	case VerticalPattern:
		return "vertical-pattern"
	case SmoothPhoto:
		return "smooth-photo"
	case ComplexGeometry:
		return "complex-geometry"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// smallImageMax is the side length at or below which an image is assumed
// icon-like and classified without sampling.
const smallImageMax = 64

// Classify samples pixel deltas along both axes and returns the content
// category. It is deterministic: the same buffer always yields the same
// category.
func Classify(img image.Image) Category {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= smallImageMax && height <= smallImageMax {
		return SimpleGraphics
	}

	// imaging.Clone always yields an NRGBA copy anchored at (0,0), so the
	// sampling loops below can index raw pixels directly.
	rgba := imaging.Clone(img)

	// Target sample count per axis; the per-axis pixel step derives from it.
	sampleSize := min(width, height) / 4
	if sampleSize < 10 {
		sampleSize = 10
	}
	stepX := width / sampleSize
	if stepX < 1 {
		stepX = 1
	}
	stepY := height / sampleSize
	if stepY < 1 {
		stepY = 1
	}

	var horizontal, vertical uint64
	var samples uint64

	for y := 0; y < height; y += stepY {
		for x := 1; x < width; x += stepX {
			horizontal += pixelDiff(rgba, x, y, x-1, y)
			samples++
		}
	}
	for y := 1; y < height; y += stepY {
		for x := 0; x < width; x += stepX {
			vertical += pixelDiff(rgba, x, y, x, y-1)
		}
	}

	if samples == 0 {
		return SimpleGraphics
	}

	// Both averages are normalized by the horizontal sample count; the
	// vertical pass shares it rather than keeping its own tally.
	avgH := horizontal / samples
	avgV := vertical / samples

	switch {
	case avgH < avgV/2:
		return HorizontalGraphics
	case avgV < avgH/2:
		return VerticalPattern
	case avgH < 10 && avgV < 10:
		return SmoothPhoto
	case avgH > 50 && avgV > 50:
		return Mixed
	default:
		return ComplexGeometry
	}
}

// pixelDiff sums the absolute per-channel differences (R, G, B, A) between
// two pixels of an NRGBA image.
func pixelDiff(img *image.NRGBA, x1, y1, x2, y2 int) uint64 {
	i := img.PixOffset(x1, y1)
	j := img.PixOffset(x2, y2)
	var total uint64
	for c := 0; c < 4; c++ {
		d := int(img.Pix[i+c]) - int(img.Pix[j+c])
		if d < 0 {
			d = -d
		}
		total += uint64(d)
	}
	return total
}
