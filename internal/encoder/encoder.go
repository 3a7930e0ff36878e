package encoder

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/pixforge/pixforge/internal/policy"
)

// Encoder encodes a pixel buffer to a specific output format.
type Encoder interface {
	// Format returns the output format name (e.g. "jpeg", "webp", "png").
	Format() string

	// Encode converts the image to bytes using the decided options.
	Encode(img image.Image, opts policy.EncodeOptions) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}

// normalizeLayout converts the buffer to the channel layout the policy
// decided on. Buffers already in the right layout pass through untouched.
func normalizeLayout(img image.Image, layout policy.ColorLayout) image.Image {
	switch layout {
	case policy.LayoutGray:
		if g, ok := img.(*image.Gray); ok {
			return g
		}
		g := image.NewGray(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		draw.Draw(g, g.Bounds(), img, img.Bounds().Min, draw.Src)
		return g

	case policy.LayoutRGB:
		// No bare RGB buffer type exists in image/*; YCbCr and Gray carry
		// no alpha already, everything else is flattened to opaque NRGBA.
		switch img.(type) {
		case *image.YCbCr, *image.Gray, *image.Gray16:
			return img
		}
		flat := imaging.Clone(img)
		for i := 3; i < len(flat.Pix); i += 4 {
			flat.Pix[i] = 0xFF
		}
		return flat

	case policy.LayoutRGBA, policy.LayoutGrayAlpha:
		// Gray+alpha has no stdlib buffer type; NRGBA is the closest
		// superset and PNG still round-trips the alpha channel.
		if n, ok := img.(*image.NRGBA); ok {
			return n
		}
		return imaging.Clone(img)

	default:
		return img
	}
}
