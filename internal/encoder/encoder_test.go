package encoder

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/webp"

	"github.com/pixforge/pixforge/internal/policy"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 100,
				A: uint8(128 + x%128),
			})
		}
	}
	return img
}

func TestPNGEncoder_RoundTrip(t *testing.T) {
	enc := &PNGEncoder{}
	img := testImage(40, 30)

	data, err := enc.Encode(img, policy.EncodeOptions{
		Compression: policy.CompressionDefault,
		Layout:      policy.LayoutRGBA,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %v", decoded.Bounds())
	}
}

func TestPNGEncoder_PreservesGray(t *testing.T) {
	enc := &PNGEncoder{}
	gray := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 3)
	}

	data, err := enc.Encode(gray, policy.EncodeOptions{
		Compression: policy.CompressionBest,
		Layout:      policy.LayoutGray,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := decoded.(*image.Gray); !ok {
		t.Errorf("grayscale not preserved: decoded as %T", decoded)
	}
}

func TestJPEGEncoder_StripsAlpha(t *testing.T) {
	enc := &JPEGEncoder{}
	img := testImage(32, 32) // partially transparent source

	data, err := enc.Encode(img, policy.EncodeOptions{Quality: 85, Layout: policy.LayoutRGB})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// JPEG decodes to YCbCr or Gray; either way no alpha channel survives.
	switch decoded.(type) {
	case *image.YCbCr, *image.Gray:
	default:
		t.Errorf("unexpected decoded type %T", decoded)
	}
	r := decoded.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if _, _, _, a := decoded.At(x, y).RGBA(); a != 0xFFFF {
				t.Fatalf("pixel (%d,%d) not opaque after jpeg round trip", x, y)
			}
		}
	}
}

func TestGIFEncoder_RoundTrip(t *testing.T) {
	enc := &GIFEncoder{}
	data, err := enc.Encode(testImage(20, 20), policy.EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := gif.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 20 {
		t.Errorf("width: got %d", decoded.Bounds().Dx())
	}
}

func TestICOEncoder_MagicBytes(t *testing.T) {
	enc := &ICOEncoder{}
	data, err := enc.Encode(testImage(32, 32), policy.EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) < 6 {
		t.Fatalf("output too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:4], []byte{0x00, 0x00, 0x01, 0x00}) {
		t.Errorf("missing ICO header: % x", data[:4])
	}
}

func TestWebPEncoder_RoundTrip(t *testing.T) {
	enc := &WebPEncoder{}
	if !enc.Available() {
		t.Skip("cwebp not installed")
	}

	// An 800x600 RGBA gradient at quality 80 must come back as a
	// decodable image with the same dimensions.
	img := image.NewNRGBA(image.Rect(0, 0, 800, 600))
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / 800), G: uint8(y * 255 / 600), B: 80, A: 255,
			})
		}
	}

	data, err := enc.Encode(img, policy.EncodeOptions{Quality: 80, Layout: policy.LayoutRGBA})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatal("output is not a WebP container")
	}

	decoded, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 800 || decoded.Bounds().Dy() != 600 {
		t.Errorf("dimensions: got %dx%d, want 800x600",
			decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if enc := r.Get("PNG"); enc == nil || enc.Format() != "png" {
		t.Error("case-insensitive lookup failed for PNG")
	}
	if enc := r.Get("jpg"); enc == nil || enc.Format() != "jpeg" {
		t.Error("jpg alias did not resolve to the jpeg encoder")
	}
	if enc := r.Get("avif"); enc != nil {
		t.Errorf("unknown format returned encoder %v", enc.Format())
	}

	statuses := r.Formats()
	if len(statuses) != 5 {
		t.Errorf("registered formats: got %d, want 5", len(statuses))
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{"PNG": "png", "jpg": "jpeg", "JPG": "jpeg", "WebP": "webp"}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q): got %q, want %q", in, got, want)
		}
	}
}
