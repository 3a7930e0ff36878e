package encoder

import (
	"bytes"
	"image"
	"image/gif"

	"github.com/pixforge/pixforge/internal/policy"
)

// GIFEncoder encodes images to GIF using Go's standard library.
// GIF is palette-based and has no quality parameter; the pixels are
// quantized to a 256-color palette as they are.
type GIFEncoder struct{}

func (e *GIFEncoder) Format() string    { return "gif" }
func (e *GIFEncoder) Extension() string { return "gif" }
func (e *GIFEncoder) Available() bool   { return true }

func (e *GIFEncoder) Encode(img image.Image, _ policy.EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(128 * 1024)

	if err := gif.Encode(&buf, img, &gif.Options{NumColors: 256}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
