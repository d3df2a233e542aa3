package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/davesmith10/imgweave/internal/config"
	"github.com/davesmith10/imgweave/internal/logging"
	"github.com/davesmith10/imgweave/internal/pipeline"
	"github.com/davesmith10/imgweave/internal/resample"
)

// logOutput receives the run log. Errors are not logged here; main prints
// the returned error once.
var logOutput io.Writer = os.Stderr

type weaveMeta struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Format  string `json:"format"`
	Image1  string `json:"image1"`
	Image2  string `json:"image2"`
	Resizer string `json:"resampler"`
}

func runWeave(cmd *cobra.Command, args []string) error {
	cfg.Image1, cfg.Image2, cfg.Output = args[0], args[1], args[2]

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := config.Resolve(&cfg, cfgFile, changed); err != nil {
		return err
	}

	log, err := logging.NewWithWriter(logOutput, cfg.LogLevel)
	if err != nil {
		return err
	}

	resizer, err := resample.New(cfg.Resampler)
	if err != nil {
		return err
	}

	c := codec.New()
	c.JPEGQuality = cfg.JPEGQuality

	result, err := pipeline.Run(pipeline.Options{
		Image1:     cfg.Image1,
		Image2:     cfg.Image2,
		Output:     cfg.Output,
		Codec:      c,
		Resizer:    resizer,
		SizePolicy: cfg.SizePolicy(),
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("weave: %w", err)
	}

	if cfg.Sidecar {
		metaPath, err := writeSidecar(result, cfg)
		if err != nil {
			return err
		}
		log.Info().Str("path", metaPath).Msg("sidecar written")
	}

	log.Info().
		Str("output", result.Output).
		Str("format", string(result.Format)).
		Stringer("size", result.Target).
		Msg("woven")
	return nil
}

// writeSidecar stores run metadata as <output-without-extension>.json.
func writeSidecar(result *pipeline.Result, cfg config.Config) (string, error) {
	meta := weaveMeta{
		Width:   result.Target.Width,
		Height:  result.Target.Height,
		Format:  string(result.Format),
		Image1:  cfg.Image1,
		Image2:  cfg.Image2,
		Resizer: cfg.Resampler,
	}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	metaPath := strings.TrimSuffix(result.Output, filepath.Ext(result.Output)) + ".json"
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return "", fmt.Errorf("writing sidecar: %w", err)
	}
	return metaPath, nil
}
