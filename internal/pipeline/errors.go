package pipeline

import "errors"

// Per-file error kinds. Each failure wraps one of these with the input path
// for context, so callers can branch with errors.Is while users still see
// which file broke.
var (
	// ErrUnsupportedInput means the file failed the eligibility gate:
	// either the extension is not plausible or the content carries no
	// known image signature.
	ErrUnsupportedInput = errors.New("unsupported input")

	// ErrUnsupportedConversion means the source format is recognized but
	// cannot be converted (SVG is vector, this pipeline is raster-only).
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	ErrDecodeFailed = errors.New("decode failed")
	ErrEncodeFailed = errors.New("encode failed")
	ErrWriteFailed  = errors.New("write failed")

	// ErrDirCreate covers output directory creation, both the batch root
	// and per-file parents.
	ErrDirCreate = errors.New("directory creation failed")
)
