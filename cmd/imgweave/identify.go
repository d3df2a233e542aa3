package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davesmith10/imgweave/internal/codec"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image's format and dimensions",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	info, err := codec.New().Probe(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", info.Path)
	fmt.Fprintf(out, "Format:     %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "RGBA bytes: %d\n", info.Width*info.Height*4)
	fmt.Fprintf(out, "File size:  %d bytes (%.1f MB)\n", info.Size, float64(info.Size)/(1024*1024))
	if !codec.Supported(info.Format) {
		fmt.Fprintln(out, "Output:     not writable in this format")
	}
	return nil
}
