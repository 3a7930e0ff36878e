package encoder

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/pixforge/pixforge/internal/policy"
)

// JPEGEncoder encodes images to JPEG using Go's standard library.
// The alpha channel is always discarded; JPEG has none.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string    { return "jpeg" }
func (e *JPEGEncoder) Extension() string { return "jpeg" }
func (e *JPEGEncoder) Available() bool   { return true }

func (e *JPEGEncoder) Encode(img image.Image, opts policy.EncodeOptions) ([]byte, error) {
	// Quality feeds the encoder directly; image/jpeg itself clamps to 1-100.
	quality := opts.Quality
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	buf.Grow(256 * 1024) // pre-alloc 256KB — avoids repeated grow for typical photos

	flat := normalizeLayout(img, policy.LayoutRGB)
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
