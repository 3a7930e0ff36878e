package encoder

import (
	"fmt"
	"strings"
)

// Registry holds all encoders keyed by normalized format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with every known encoder registered.
// Availability is probed lazily on Get/Available.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		&PNGEncoder{},
		&JPEGEncoder{},
		&GIFEncoder{},
		&WebPEncoder{},
		&ICOEncoder{},
	}
	for _, enc := range all {
		r.encoders[enc.Format()] = enc
	}

	return r
}

// Normalize lowercases a format name and folds aliases ("jpg" -> "jpeg").
func Normalize(format string) string {
	format = strings.ToLower(format)
	if format == "jpg" {
		format = "jpeg"
	}
	return format
}

// Get returns an encoder for the given format, or nil if unknown or not
// currently usable.
func (r *Registry) Get(format string) Encoder {
	enc := r.encoders[Normalize(format)]
	if enc == nil || !enc.Available() {
		return nil
	}
	return enc
}

// Formats returns all registered format names in priority order, with
// availability flags.
func (r *Registry) Formats() []FormatStatus {
	var result []FormatStatus
	for _, f := range []string{"png", "jpeg", "gif", "webp", "ico"} {
		if enc, ok := r.encoders[f]; ok {
			result = append(result, FormatStatus{Name: f, Available: enc.Available()})
		}
	}
	return result
}

// FormatStatus reports whether a registered encoder is usable right now.
type FormatStatus struct {
	Name      string
	Available bool
}

// String returns a summary of usable encoders.
func (r *Registry) String() string {
	var avail []string
	for _, fs := range r.Formats() {
		if fs.Available {
			avail = append(avail, fs.Name)
		}
	}
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
