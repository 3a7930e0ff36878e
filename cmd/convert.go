package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixforge/pixforge/internal/pipeline"
)

// supportedTargets is the closed allowlist of output formats, matched
// case-insensitively before any file is touched.
var supportedTargets = []string{"png", "jpeg", "jpg", "gif", "webp", "ico"}

var (
	convertTo      string
	convertOut     string
	convertQuality int
	convertWorkers int
	convertReport  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert an image file or a directory of images",
	Long: `Converts a single image file, or every image under a directory tree,
to the target format. Directory runs mirror the input tree's relative
paths under the output directory with the extension replaced.

Files are gated on both extension and content signature; misnamed
non-image files are skipped, and one bad file never aborts a batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target format (png, jpeg, jpg, gif, webp, ico)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file or directory (default: next to input)")
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", 80, "quality 0-100")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", 0, "parallel workers for directory runs (0 = NumCPU)")
	convertCmd.Flags().StringVar(&convertReport, "report", "", "write a JSON run report to this path")
	convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	input := args[0]

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input path not found: %s", input)
	}
	if err := validateTarget(convertTo); err != nil {
		return err
	}
	if convertQuality < 0 || convertQuality > 100 {
		return fmt.Errorf("quality must be between 0 and 100, got %d", convertQuality)
	}

	output := resolveOutput(input, info.IsDir(), convertOut)

	logVerbose("input:   %s", input)
	logVerbose("output:  %s", output)
	logVerbose("format:  %s", strings.ToUpper(convertTo))
	logVerbose("quality: %d%%", convertQuality)

	p := pipeline.New(pipeline.Config{
		TargetFormat: convertTo,
		Quality:      convertQuality,
		Workers:      convertWorkers,
		Verbose:      verbose,
	})

	if !info.IsDir() {
		out, err := p.ConvertFile(input, output)
		if err != nil {
			return err
		}
		fmt.Printf("converted: %s -> %s\n", input, out)
		return nil
	}

	stats, rep, err := p.Run(input, output)
	if err != nil {
		return err
	}

	printSummary(stats)

	if convertReport != "" {
		if err := rep.WriteJSON(convertReport); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logVerbose("report:  %s", convertReport)
	}
	return nil
}

func validateTarget(format string) error {
	lower := strings.ToLower(format)
	for _, t := range supportedTargets {
		if lower == t {
			return nil
		}
	}
	return fmt.Errorf("unsupported target format %q (supported: %s)",
		format, strings.Join(supportedTargets, ", "))
}

// resolveOutput applies the default output locations: a file converts next
// to itself, a directory converts into <parent>/pixforge_output.
func resolveOutput(input string, isDir bool, out string) string {
	if out != "" {
		return out
	}
	parent := filepath.Dir(input)
	if isDir {
		return filepath.Join(parent, "pixforge_output")
	}
	return parent
}

func printSummary(stats pipeline.Stats) {
	fmt.Println()
	if stats.TotalFailure() {
		fmt.Printf("nothing converted: all %d files skipped\n", stats.Skipped)
		return
	}
	fmt.Printf("done: %d converted, %d skipped\n", stats.Converted, stats.Skipped)
	if stats.InputBytes > 0 {
		ratio := float64(stats.OutputBytes) / float64(stats.InputBytes) * 100
		fmt.Printf("size: %s -> %s (%.1f%% of original)\n",
			formatBytes(stats.InputBytes), formatBytes(stats.OutputBytes), ratio)
	}
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
