package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davesmith10/imgweave/internal/codec"
	"github.com/davesmith10/imgweave/internal/config"
	"github.com/davesmith10/imgweave/internal/ir"
	"github.com/davesmith10/imgweave/internal/pipeline"
)

func TestIdentify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	img := &ir.Image{Width: 3, Height: 2, Pixels: make([]byte, 24), Format: codec.PNG}
	if err := codec.New().Encode(path, img); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	identifyCmd.SetOut(&out)
	if err := runIdentify(identifyCmd, []string{path}); err != nil {
		t.Fatalf("identify: %v", err)
	}
	for _, want := range []string{"Format:     png", "Dimensions: 3 x 2", "RGBA bytes: 24"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestWriteSidecar(t *testing.T) {
	dir := t.TempDir()
	c := config.DefaultConfig()
	c.Image1, c.Image2 = "a.png", "b.png"
	res := &pipeline.Result{
		Target: ir.Dimensions{Width: 4, Height: 3},
		Format: codec.PNG,
		Output: filepath.Join(dir, "woven.png"),
	}

	path, err := writeSidecar(res, c)
	if err != nil {
		t.Fatalf("writeSidecar: %v", err)
	}
	if path != filepath.Join(dir, "woven.json") {
		t.Errorf("sidecar path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var meta weaveMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("sidecar is not JSON: %v", err)
	}
	if meta.Width != 4 || meta.Height != 3 || meta.Format != "png" || meta.Resizer != c.Resampler {
		t.Errorf("unexpected sidecar: %+v", meta)
	}
}

func TestWeaveFailureNotLogged(t *testing.T) {
	for _, k := range []string{"IMGWEAVE_RESAMPLER", "IMGWEAVE_SIZE_CHECK", "IMGWEAVE_JPEG_QUALITY", "IMGWEAVE_SIDECAR", "IMGWEAVE_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	c := codec.New()
	in1 := filepath.Join(dir, "a.png")
	in2 := filepath.Join(dir, "b.bmp")
	for path, f := range map[string]ir.Format{in1: codec.PNG, in2: codec.BMP} {
		img := &ir.Image{Width: 2, Height: 2, Pixels: bytes.Repeat([]byte{10, 20, 30, 255}, 4), Format: f}
		if err := c.Encode(path, img); err != nil {
			t.Fatal(err)
		}
	}

	var logBuf bytes.Buffer
	prevOut, prevPath, prevCfg := logOutput, cfgPath, cfg
	logOutput = &logBuf
	cfgPath = filepath.Join(dir, "none.toml")
	cfg = config.DefaultConfig()
	t.Cleanup(func() { logOutput, cfgPath, cfg = prevOut, prevPath, prevCfg })

	err := runWeave(rootCmd, []string{in1, in2, filepath.Join(dir, "out.png")})
	if !errors.Is(err, pipeline.ErrDifferentImageFormats) {
		t.Fatalf("runWeave error = %v, want ErrDifferentImageFormats", err)
	}
	if strings.Contains(logBuf.String(), "different formats") || strings.Contains(logBuf.String(), "ERR") {
		t.Errorf("failure was logged as well as returned:\n%s", logBuf.String())
	}
}
