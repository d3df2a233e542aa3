package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/davesmith10/imgweave/internal/interleave"
	"github.com/davesmith10/imgweave/internal/ir"
	"github.com/davesmith10/imgweave/internal/output"
	"github.com/davesmith10/imgweave/internal/resample"
)

// Codec reads and writes image files.
type Codec interface {
	Decode(path string) (*ir.Image, error)
	Encode(path string, img *ir.Image) error
}

// Options controls a weave run.
type Options struct {
	Image1 string // first source image; supplies even pixels
	Image2 string // second source image; supplies odd pixels
	Output string // destination path

	Codec      Codec
	Resizer    resample.Resizer
	SizePolicy output.SizePolicy
	Logger     zerolog.Logger
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Target ir.Dimensions
	Format ir.Format
	Output string
	Bytes  int // length of the combined pixel buffer
}

// Run executes the full pipeline: decode both inputs → check formats →
// pick target size → resize the larger image → interleave → write.
func Run(opts Options) (*Result, error) {
	log := opts.Logger

	// 1. Decode
	img1, err := opts.Codec.Decode(opts.Image1)
	if err != nil {
		return nil, fail(Loaded, fmt.Errorf("decode image 1: %w", err))
	}
	img2, err := opts.Codec.Decode(opts.Image2)
	if err != nil {
		return nil, fail(Loaded, fmt.Errorf("decode image 2: %w", err))
	}
	log.Debug().
		Str("image1", opts.Image1).Stringer("size1", img1.Dimensions()).Str("format1", string(img1.Format)).
		Str("image2", opts.Image2).Stringer("size2", img2.Dimensions()).Str("format2", string(img2.Format)).
		Msg("images loaded")

	if img1.Format != img2.Format {
		return nil, fail(Reconciled, fmt.Errorf("%w: %q vs %q", ErrDifferentImageFormats, img1.Format, img2.Format))
	}

	// 2. Target size
	target := resample.Reconcile(img1.Dimensions(), img2.Dimensions())
	log.Info().Int("width", target.Width).Int("height", target.Height).Msg("target dimensions")

	// 3. Normalize
	img1, img2, err = resample.Normalize(img1, img2, target, opts.Resizer)
	if err != nil {
		return nil, fail(Normalized, err)
	}

	// 4. Interleave
	combined, err := interleave.Merge(img1.Pixels, img2.Pixels)
	if err != nil {
		return nil, fail(Merged, err)
	}
	log.Debug().Int("bytes", len(combined)).Msg("pixels interleaved")

	// 5. Assemble
	desc := output.Assemble(target.Width, target.Height, opts.Output, img1.Format, opts.SizePolicy)
	if err := desc.Attach(combined); err != nil {
		return nil, fail(Assembled, err)
	}

	// 6. Write
	if err := desc.Write(opts.Codec); err != nil {
		return nil, fail(Written, err)
	}
	log.Debug().Str("output", opts.Output).Msg("output written")

	return &Result{
		Target: target,
		Format: img1.Format,
		Output: opts.Output,
		Bytes:  len(combined),
	}, nil
}
