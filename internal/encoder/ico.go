package encoder

import (
	"bytes"
	"image"

	ico "github.com/Kodeworks/golang-image-ico"

	"github.com/pixforge/pixforge/internal/policy"
)

// ICOEncoder writes a single-entry ICO container. The pipeline has already
// downscaled the image to at most 256x256 per the policy's resize rule.
type ICOEncoder struct{}

func (e *ICOEncoder) Format() string    { return "ico" }
func (e *ICOEncoder) Extension() string { return "ico" }
func (e *ICOEncoder) Available() bool   { return true }

func (e *ICOEncoder) Encode(img image.Image, _ policy.EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
