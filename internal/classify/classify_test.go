package classify

import (
	"image"
	"image/color"
	"testing"
)

// fill builds an NRGBA test image where each pixel is computed from its
// coordinates.
func fill(w, h int, at func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, at(x, y))
		}
	}
	return img
}

func TestClassify_SmallImagesAreSimple(t *testing.T) {
	// Anything at or under 64x64 skips sampling entirely, even a noisy
	// checkerboard.
	img := fill(64, 64, func(x, y int) color.NRGBA {
		if (x+y)%2 == 0 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})
	if got := Classify(img); got != SimpleGraphics {
		t.Errorf("64x64 checkerboard: got %v, want simple-graphics", got)
	}
}

func TestClassify_DegenerateGeometry(t *testing.T) {
	// One pixel wide: no horizontal neighbor pairs exist to sample.
	img := fill(1, 100, func(x, y int) color.NRGBA {
		return color.NRGBA{R: uint8(y), A: 255}
	})
	if got := Classify(img); got != SimpleGraphics {
		t.Errorf("1x100 strip: got %v, want simple-graphics", got)
	}
}

func TestClassify_HorizontalBands(t *testing.T) {
	// Alternating black/white rows: zero change along rows, large change
	// between rows.
	img := fill(200, 200, func(x, y int) color.NRGBA {
		if y%2 == 0 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})
	if got := Classify(img); got != HorizontalGraphics {
		t.Errorf("row bands: got %v, want horizontal-graphics", got)
	}
}

func TestClassify_VerticalStripes(t *testing.T) {
	img := fill(200, 200, func(x, y int) color.NRGBA {
		if x%2 == 0 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})
	if got := Classify(img); got != VerticalPattern {
		t.Errorf("column stripes: got %v, want vertical-pattern", got)
	}
}

func TestClassify_SolidIsSmooth(t *testing.T) {
	img := fill(200, 200, func(x, y int) color.NRGBA {
		return color.NRGBA{R: 120, G: 130, B: 140, A: 255}
	})
	if got := Classify(img); got != SmoothPhoto {
		t.Errorf("solid color: got %v, want smooth-photo", got)
	}
}

func TestClassify_CheckerboardIsMixed(t *testing.T) {
	img := fill(200, 200, func(x, y int) color.NRGBA {
		if (x+y)%2 == 0 {
			return color.NRGBA{A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	})
	if got := Classify(img); got != Mixed {
		t.Errorf("checkerboard: got %v, want mixed", got)
	}
}

func TestClassify_ModerateVariation(t *testing.T) {
	// Per-pixel deltas of ~24 on one channel in each direction: too much
	// for smooth, too little for mixed, no dominant axis.
	img := fill(200, 200, func(x, y int) color.NRGBA {
		return color.NRGBA{
			R: uint8(x % 2 * 24),
			G: uint8(y % 2 * 24),
			A: 255,
		}
	})
	if got := Classify(img); got != ComplexGeometry {
		t.Errorf("moderate variation: got %v, want complex-geometry", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	img := fill(128, 96, func(x, y int) color.NRGBA {
		return color.NRGBA{
			R: uint8(x * 7 % 256),
			G: uint8(y * 11 % 256),
			B: uint8((x ^ y) % 256),
			A: 255,
		}
	})
	first := Classify(img)
	for i := 0; i < 5; i++ {
		if got := Classify(img); got != first {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}
