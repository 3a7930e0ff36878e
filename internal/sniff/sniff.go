// Package sniff identifies image formats from file content rather than
// trusting the file extension. A file is only eligible for conversion when
// both the extension allowlist and the content signature agree.
package sniff

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format is a content-detected image format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatWebP
	FormatICO
	FormatBMP
	FormatTIFF
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatWebP:
		return "webp"
	case FormatICO:
		return "ico"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatSVG:
		return "svg"
	default:
		return "unknown"
	}
}

// HeaderLen is how many leading bytes Detect wants to see. Fewer than
// minHeaderLen bytes can never identify a format.
const (
	HeaderLen    = 16
	minHeaderLen = 4
)

// signature pairs a magic-byte prefix with an optional secondary check for
// formats whose prefix alone is ambiguous (RIFF containers, GIF versions).
type signature struct {
	prefix []byte
	format Format
	verify func(buf []byte) bool
}

// signatures is checked in order; first match wins.
var signatures = []signature{
	{prefix: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, format: FormatPNG},
	{prefix: []byte{0xFF, 0xD8, 0xFF}, format: FormatJPEG},
	{prefix: []byte{0x47, 0x49, 0x46, 0x38}, format: FormatGIF, verify: verifyGIF},
	{prefix: []byte{0x52, 0x49, 0x46, 0x46}, format: FormatWebP, verify: verifyWebP},
	{prefix: []byte{0x00, 0x00, 0x01, 0x00}, format: FormatICO},
	{prefix: []byte{0x42, 0x4D}, format: FormatBMP},
	{prefix: []byte{0x49, 0x49, 0x2A, 0x00}, format: FormatTIFF},
	{prefix: []byte{0x4D, 0x4D, 0x00, 0x2A}, format: FormatTIFF},
}

// verifyWebP requires the RIFF payload tag at bytes 8..12 to be "WEBP";
// a bare RIFF prefix could be WAV, AVI, or anything else.
func verifyWebP(buf []byte) bool {
	return len(buf) >= 12 && string(buf[8:12]) == "WEBP"
}

// verifyGIF requires a full GIF87a/GIF89a version field.
func verifyGIF(buf []byte) bool {
	return len(buf) >= 6 &&
		string(buf[0:4]) == "GIF8" &&
		(buf[4] == '7' || buf[4] == '9') &&
		buf[5] == 'a'
}

// Detect inspects the leading bytes of a file and returns the format they
// identify, or FormatUnknown. Buffers shorter than four bytes never match.
func Detect(buf []byte) Format {
	if len(buf) < minHeaderLen {
		return FormatUnknown
	}

	for _, sig := range signatures {
		if !hasPrefix(buf, sig.prefix) {
			continue
		}
		if sig.verify != nil && !sig.verify(buf) {
			return FormatUnknown
		}
		return sig.format
	}

	// SVG is text, not magic bytes: valid UTF-8 starting with an XML
	// prolog or an <svg> root element.
	if utf8.Valid(buf) {
		head := strings.ToLower(string(buf))
		if strings.HasPrefix(head, "<?xml") || strings.HasPrefix(head, "<svg") {
			return FormatSVG
		}
	}

	return FormatUnknown
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}

// SniffFile reads the file header and detects its format.
func SniffFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	buf := make([]byte, HeaderLen)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return FormatUnknown, err
	}
	return Detect(buf[:n]), nil
}

// imageExtensions lists extensions that may carry image content. Files with
// other extensions are rejected without opening them.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpeg": true,
	".jpg":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".ico":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".avif": true,
	".heic": true,
	".heif": true,
}

// HasImageExtension reports whether the path's extension is on the allowlist.
// Extensionless files pass: they may still be images, content decides.
func HasImageExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return true
	}
	return imageExtensions[ext]
}

// Eligible reports whether path should be treated as a convertible image:
// the extension must be plausible AND the content must carry a known
// signature. An allowlisted extension on a non-image file is not enough.
func Eligible(path string) (Format, bool) {
	if !HasImageExtension(path) {
		return FormatUnknown, false
	}
	format, err := SniffFile(path)
	if err != nil || format == FormatUnknown {
		return FormatUnknown, false
	}
	return format, true
}
