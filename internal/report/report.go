// Package report captures the outcome of a conversion run as JSON, one
// entry per input file plus aggregate totals.
package report

import (
	"encoding/json"
	"os"
	"time"
)

// Report is the top-level JSON document written after a run.
type Report struct {
	GeneratedAt string  `json:"generated_at"`
	Target      string  `json:"target"`
	Quality     int     `json:"quality"`
	Workers     int     `json:"workers,omitempty"`
	Totals      Totals  `json:"totals"`
	Files       []Entry `json:"files"`
}

// Entry records what happened to one input file. The size fields are set on
// converted entries only, so the byte totals mean the same thing as the
// printed summary's compression ratio.
type Entry struct {
	Input      string `json:"input"`
	Output     string `json:"output,omitempty"`
	Status     string `json:"status"` // "converted" or "skipped"
	Reason     string `json:"reason,omitempty"`
	Hash       string `json:"hash,omitempty"` // xxhash64 of the output bytes
	InputSize  int64  `json:"input_size,omitempty"`
	OutputSize int64  `json:"output_size,omitempty"`
}

// Totals aggregates the run.
type Totals struct {
	Converted   int   `json:"converted"`
	Skipped     int   `json:"skipped"`
	InputBytes  int64 `json:"input_bytes"`
	OutputBytes int64 `json:"output_bytes"`
}

// New creates an empty report for the given run parameters.
func New(target string, quality, workers int) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Target:      target,
		Quality:     quality,
		Workers:     workers,
	}
}

// Add appends an entry and updates the totals.
func (r *Report) Add(e Entry) {
	r.Files = append(r.Files, e)
	switch e.Status {
	case StatusConverted:
		r.Totals.Converted++
	case StatusSkipped:
		r.Totals.Skipped++
	}
	r.Totals.InputBytes += e.InputSize
	r.Totals.OutputBytes += e.OutputSize
}

// Entry status values.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
)

// WriteJSON serializes the report to a file.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
