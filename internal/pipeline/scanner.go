package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Source is a regular file discovered under the input directory. Eligibility
// is checked later, per file, so that ineligible files are counted as
// skipped instead of silently vanishing from the tally.
type Source struct {
	// AbsPath is the path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the input directory.
	RelPath string
	// Size is the file size in bytes.
	Size int64
}

// ScanFiles walks the input directory and returns every regular file,
// skipping hidden directories.
func ScanFiles(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(inputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: relPath,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
