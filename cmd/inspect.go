package cmd

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pixforge/pixforge/internal/hasher"
	"github.com/pixforge/pixforge/internal/sniff"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Sniff a file's content format and print what was found",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory; inspect takes a single file", path)
	}

	format, err := sniff.SniffFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	hash, err := hasher.HashFile(path, 16)
	if err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}

	fmt.Printf("  File:    %s\n", path)
	fmt.Printf("  Size:    %s\n", formatBytes(info.Size()))
	fmt.Printf("  Format:  %s\n", format)
	fmt.Printf("  Hash:    %s\n", hash)

	if format != sniff.FormatUnknown && format != sniff.FormatSVG {
		if f, err := os.Open(path); err == nil {
			cfg, _, cfgErr := image.DecodeConfig(f)
			f.Close()
			if cfgErr == nil {
				fmt.Printf("  Pixels:  %dx%d\n", cfg.Width, cfg.Height)
			}
		}
	}

	eligible := "no"
	if _, ok := sniff.Eligible(path); ok {
		eligible = "yes"
	}
	fmt.Printf("  Convertible: %s\n", eligible)
	return nil
}
