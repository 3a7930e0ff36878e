package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixforge/pixforge/internal/encoder"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List target formats and encoder availability",
	Long: `Lists every target format pixforge can write and whether its encoder
is usable on this machine. WebP encoding shells out to cwebp and shows
as unavailable when the binary is not installed.`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(_ *cobra.Command, _ []string) error {
	registry := encoder.NewRegistry()

	fmt.Println("  Target formats:")
	for _, fs := range registry.Formats() {
		mark := "✓"
		note := ""
		if !fs.Available {
			mark = "✗"
			note = "  (cwebp not found in PATH)"
		}
		fmt.Printf("    %s %s%s\n", mark, fs.Name, note)
	}
	fmt.Println()
	fmt.Println("  \"jpg\" is accepted as an alias for jpeg.")
	return nil
}
