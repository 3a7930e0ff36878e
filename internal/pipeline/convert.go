package pipeline

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pixforge/pixforge/internal/classify"
	"github.com/pixforge/pixforge/internal/hasher"
	"github.com/pixforge/pixforge/internal/policy"
	"github.com/pixforge/pixforge/internal/sniff"
)

// outcome describes one successfully written output file.
type outcome struct {
	Output     string
	OutputSize int64
	Hash       string
}

// ConvertFile converts a single file. If output is an existing directory the
// output filename is derived from the input with the extension replaced;
// otherwise output is used literally. Returns the resolved output path.
func (p *Pipeline) ConvertFile(input, output string) (string, error) {
	out, err := p.convert(input, output)
	if err != nil {
		return "", err
	}
	return out.Output, nil
}

// convert runs the per-file state machine: sniff, decode, classify, decide,
// encode, write. It fails fast at the first broken stage and writes the
// output only after the encoded bytes exist in memory, so a failed encode
// never leaves a partial file behind.
func (p *Pipeline) convert(input, output string) (outcome, error) {
	format, ok := sniff.Eligible(input)
	if !ok {
		return outcome{}, fmt.Errorf("%w: %s", ErrUnsupportedInput, input)
	}
	// SVG is rejected whether the content says so or the file merely
	// declares it via its extension; vector sources stay out of this
	// raster pipeline either way.
	if format == sniff.FormatSVG || strings.EqualFold(filepath.Ext(input), ".svg") {
		return outcome{}, fmt.Errorf("%w: svg not supported: %s", ErrUnsupportedConversion, input)
	}

	img, err := decodeFile(input)
	if err != nil {
		return outcome{}, fmt.Errorf("%w: %s: %v", ErrDecodeFailed, input, err)
	}

	outPath := p.resolveOutput(input, output)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return outcome{}, fmt.Errorf("%w: %s: %v", ErrDirCreate, filepath.Dir(outPath), err)
	}

	data, err := p.encode(input, img)
	if err != nil {
		if errors.Is(err, policy.ErrUnsupportedTarget) {
			return outcome{}, err
		}
		return outcome{}, fmt.Errorf("%w: %s: %v", ErrEncodeFailed, input, err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return outcome{}, fmt.Errorf("%w: %s: %v", ErrWriteFailed, outPath, err)
	}

	return outcome{
		Output:     outPath,
		OutputSize: int64(len(data)),
		Hash:       hasher.ContentHash(data, 16),
	}, nil
}

// encode classifies the buffer, asks the policy for options, resizes when
// the policy says so, and runs the target encoder.
func (p *Pipeline) encode(input string, img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	category := classify.Classify(img)
	layout := policy.LayoutOf(img)

	opts, err := policy.Decide(p.target, p.cfg.Quality, category, layout, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	p.logf("%s: %dx%d %s, category=%s, filter=%s",
		input, bounds.Dx(), bounds.Dy(), layout, category, opts.Filter)

	if opts.TargetWidth != bounds.Dx() || opts.TargetHeight != bounds.Dy() {
		p.logf("%s: resizing to %dx%d", input, opts.TargetWidth, opts.TargetHeight)
		img = imaging.Resize(img, opts.TargetWidth, opts.TargetHeight, imaging.Lanczos)
	}

	enc := p.registry.Get(p.target)
	if enc == nil {
		return nil, fmt.Errorf("no encoder available for %s", p.target)
	}
	return enc.Encode(img, opts)
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// resolveOutput maps the requested output location to a concrete file path.
func (p *Pipeline) resolveOutput(input, output string) string {
	info, err := os.Stat(output)
	if err == nil && info.IsDir() {
		return filepath.Join(output, changeExt(filepath.Base(input), p.extension))
	}
	return output
}

// changeExt replaces name's extension with ext (no dot). Extensionless
// names just gain the new extension.
func changeExt(name, ext string) string {
	old := filepath.Ext(name)
	return strings.TrimSuffix(name, old) + "." + ext
}
