package encoder

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pixforge/pixforge/internal/policy"
)

// PNGEncoder encodes images to PNG using Go's standard library.
//
// The compression bucket maps directly onto png.CompressionLevel. The filter
// strategy is decided per image, but image/png chooses scanline filters
// internally per row; the strategy is carried in the options for encoders
// that can honor it and stays visible in verbose output.
type PNGEncoder struct{}

func (e *PNGEncoder) Format() string    { return "png" }
func (e *PNGEncoder) Extension() string { return "png" }
func (e *PNGEncoder) Available() bool   { return true }

func (e *PNGEncoder) Encode(img image.Image, opts policy.EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024) // pre-alloc 512KB

	enc := &png.Encoder{CompressionLevel: compressionLevel(opts.Compression)}
	if err := enc.Encode(&buf, normalizeLayout(img, opts.Layout)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressionLevel(c policy.Compression) png.CompressionLevel {
	switch c {
	case policy.CompressionFast:
		return png.BestSpeed
	case policy.CompressionDefault:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
