// Package policy maps a conversion request (target format, quality, content
// category, source layout) to concrete encoder options. It decides how to
// encode; the encoders decide nothing.
package policy

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/pixforge/pixforge/internal/classify"
)

// ErrUnsupportedTarget is returned by Decide for formats outside the
// target allowlist.
var ErrUnsupportedTarget = errors.New("unsupported target format")

// ColorLayout is the channel composition of a pixel buffer.
type ColorLayout int

const (
	LayoutGray ColorLayout = iota
	LayoutGrayAlpha
	LayoutRGB
	LayoutRGBA
	LayoutOther
)

func (l ColorLayout) String() string {
	switch l {
	case LayoutGray:
		return "gray"
	case LayoutGrayAlpha:
		return "gray+alpha"
	case LayoutRGB:
		return "rgb"
	case LayoutRGBA:
		return "rgba"
	default:
		return "other"
	}
}

// Compression is the PNG compression effort bucket.
type Compression int

const (
	CompressionFast Compression = iota
	CompressionDefault
	CompressionBest
)

func (c Compression) String() string {
	switch c {
	case CompressionFast:
		return "fast"
	case CompressionDefault:
		return "default"
	default:
		return "best"
	}
}

// FilterStrategy is the PNG scanline predictor choice.
type FilterStrategy int

const (
	FilterNone FilterStrategy = iota
	FilterSub
	FilterUp
	FilterAverage
	FilterPaeth
	FilterAdaptive
)

func (f FilterStrategy) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterSub:
		return "sub"
	case FilterUp:
		return "up"
	case FilterAverage:
		return "average"
	case FilterPaeth:
		return "paeth"
	default:
		return "adaptive"
	}
}

// EncodeOptions bundles everything an encoder needs. Fully determined by
// Decide's inputs; encoders must not consult anything else.
type EncodeOptions struct {
	Quality      int
	Compression  Compression
	Filter       FilterStrategy
	Layout       ColorLayout
	TargetWidth  int
	TargetHeight int
}

// icoMaxSide is the largest dimension the ICO container accepts per entry.
const icoMaxSide = 256

// Decide computes encoder options for the given target format. The format
// string is matched case-insensitively; "jpg" is an alias for "jpeg".
// Unknown formats fail with ErrUnsupportedTarget.
func Decide(target string, quality int, category classify.Category, layout ColorLayout, width, height int) (EncodeOptions, error) {
	opts := EncodeOptions{
		Quality:      quality,
		Layout:       layout,
		TargetWidth:  width,
		TargetHeight: height,
	}

	switch strings.ToLower(target) {
	case "jpeg", "jpg":
		// JPEG has no alpha channel; the buffer is flattened to RGB and
		// quality feeds the encoder directly.
		opts.Layout = LayoutRGB

	case "png":
		opts.Compression = pngCompression(quality)
		opts.Filter = pngFilter(category)
		opts.Layout = pngLayout(layout)

	case "webp":
		// Lossy WebP encodes from RGBA at the given quality.
		opts.Layout = LayoutRGBA

	case "gif":
		// Palette-based encode of the pixels as they are; no quality knob.

	case "ico":
		if width > icoMaxSide || height > icoMaxSide {
			opts.TargetWidth = icoMaxSide
			opts.TargetHeight = icoMaxSide
		}

	default:
		return EncodeOptions{}, fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}

	return opts, nil
}

// pngCompression buckets quality into a compression effort level. Qualities
// above 80 stay in the Best bucket; the scale saturates there.
func pngCompression(quality int) Compression {
	switch {
	case quality <= 20:
		return CompressionFast
	case quality <= 60:
		return CompressionDefault
	default:
		return CompressionBest
	}
}

// pngFilter picks the scanline predictor matching the content's variation
// pattern. Every category is handled explicitly.
func pngFilter(category classify.Category) FilterStrategy {
	switch category {
	case classify.SimpleGraphics:
		return FilterNone
	case classify.HorizontalGraphics:
		return FilterSub
	case classify.VerticalPattern:
		return FilterUp
	case classify.SmoothPhoto:
		return FilterAverage
	case classify.ComplexGeometry:
		return FilterPaeth
	case classify.Mixed:
		return FilterAdaptive
	}
	return FilterAdaptive
}

// pngLayout preserves the source layout when PNG supports it and
// normalizes everything else to RGBA.
func pngLayout(layout ColorLayout) ColorLayout {
	switch layout {
	case LayoutGray, LayoutGrayAlpha, LayoutRGB, LayoutRGBA:
		return layout
	default:
		return LayoutRGBA
	}
}

// LayoutOf inspects a decoded image's concrete type and reports its channel
// layout. Go's stdlib decoders never produce a gray+alpha buffer, but the
// layout stays in the enum because PNG encoding distinguishes it.
func LayoutOf(img image.Image) ColorLayout {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return LayoutGray
	case *image.YCbCr:
		return LayoutRGB
	case *image.RGBA, *image.RGBA64, *image.NRGBA, *image.NRGBA64:
		return LayoutRGBA
	default:
		return LayoutOther
	}
}
