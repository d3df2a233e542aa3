package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davesmith10/imgweave/internal/config"
	"github.com/davesmith10/imgweave/internal/resample"
)

var (
	cfg     = config.DefaultConfig()
	cfgPath string
)

var rootCmd = &cobra.Command{
	Use:   "imgweave <image1> <image2> <output>",
	Short: "Interleave the pixels of two same-format images into one",
	Long: `Interleave the pixels of two same-format images into one.

The larger image is resized to the smaller one with a triangle filter, then
pixels are taken alternately: even pixels from image1, odd pixels from image2.
The output is written in the inputs' format.`,
	Args:          cobra.ExactArgs(3),
	RunE:          runWeave,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.imgweave/config.toml)")
	rootCmd.Flags().StringVar(&cfg.Resampler, "resampler", cfg.Resampler, fmt.Sprintf("triangle-filter implementation %v", resample.Names()))
	rootCmd.Flags().StringVar(&cfg.SizeCheck, "size-check", cfg.SizeCheck, "output buffer check: capacity or exact")
	rootCmd.Flags().IntVar(&cfg.JPEGQuality, "jpeg-quality", cfg.JPEGQuality, "JPEG quality (1-100) when writing JPEG output")
	rootCmd.Flags().BoolVar(&cfg.Sidecar, "sidecar", cfg.Sidecar, "write a JSON sidecar next to the output")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "imgweave:", err)
		os.Exit(1)
	}
}
