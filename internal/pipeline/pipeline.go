// Package pipeline orchestrates conversions: a per-file state machine
// (sniff, decode, classify, decide, encode, write) and a batch runner that
// mirrors a directory tree and never aborts on a single bad file.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pixforge/pixforge/internal/encoder"
	"github.com/pixforge/pixforge/internal/report"
)

// Config holds the parameters of a conversion run.
type Config struct {
	// TargetFormat is the output format; aliases are folded ("jpg"->"jpeg").
	TargetFormat string
	// Quality is the 0-100 encoder quality knob.
	Quality int
	// Workers bounds batch parallelism; 0 means NumCPU. Single-file
	// conversion ignores it.
	Workers int
	Verbose bool
}

// Pipeline converts files according to one Config.
type Pipeline struct {
	cfg       Config
	target    string
	extension string
	registry  *encoder.Registry
}

// Stats counts the outcome of a batch run.
type Stats struct {
	Converted   int
	Skipped     int
	InputBytes  int64
	OutputBytes int64
}

// TotalFailure reports the distinguished "nothing converted" outcome: files
// were seen, none succeeded. Not an error, only a reporting state.
func (s Stats) TotalFailure() bool {
	return s.Converted == 0 && s.Skipped > 0
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	target := encoder.Normalize(cfg.TargetFormat)
	return &Pipeline{
		cfg:       cfg,
		target:    target,
		extension: target,
		registry:  encoder.NewRegistry(),
	}
}

// logf prints a verbose diagnostic to stderr.
func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[pixforge] "+format+"\n", args...)
	}
}

// fileResult pairs a scanned source with its conversion outcome.
type fileResult struct {
	src Source
	out outcome
	err error
}

// Run converts every eligible file under inputDir, mirroring relative paths
// under outputDir with the extension replaced. Per-file failures are counted
// as skipped and never stop the batch. The returned report carries one entry
// per file.
func (p *Pipeline) Run(inputDir, outputDir string) (Stats, *report.Report, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Stats{}, nil, fmt.Errorf("%w: %s: %v", ErrDirCreate, outputDir, err)
	}

	sources, err := ScanFiles(inputDir)
	if err != nil {
		return Stats{}, nil, fmt.Errorf("scan %s: %w", inputDir, err)
	}
	p.logf("found %d files under %s", len(sources), inputDir)
	p.logf("%s", p.registry.String())

	// Conversions are independent; only the tally below is shared, and it
	// runs after all workers finish.
	results := make([]fileResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outPath := filepath.Join(outputDir, changeExt(s.RelPath, p.extension))
			out, err := p.convert(s.AbsPath, outPath)
			results[idx] = fileResult{src: s, out: out, err: err}
		}(i, src)
	}
	wg.Wait()

	var stats Stats
	rep := report.New(p.target, p.cfg.Quality, p.cfg.Workers)
	for _, r := range results {
		if r.err != nil {
			fmt.Printf("skip: %s (%v)\n", r.src.RelPath, r.err)
			stats.Skipped++
			rep.Add(report.Entry{
				Input:  r.src.RelPath,
				Status: report.StatusSkipped,
				Reason: r.err.Error(),
			})
			continue
		}
		fmt.Printf("converted: %s -> %s\n", r.src.RelPath, r.out.Output)
		stats.Converted++
		stats.InputBytes += r.src.Size
		stats.OutputBytes += r.out.OutputSize
		rep.Add(report.Entry{
			Input:      r.src.RelPath,
			Output:     r.out.Output,
			Status:     report.StatusConverted,
			Hash:       r.out.Hash,
			InputSize:  r.src.Size,
			OutputSize: r.out.OutputSize,
		})
	}

	return stats, rep, nil
}
