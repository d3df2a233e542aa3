package resample

import (
	"errors"
	"fmt"

	"github.com/davesmith10/imgweave/internal/ir"
)

// ErrResizeLength is returned when a resizer produces a buffer whose length
// does not match the target dimensions.
var ErrResizeLength = errors.New("resample: resized buffer has wrong length")

// Normalize brings a and b to target. An image already at the target size is
// returned as is; any other is replaced by a resized copy carrying the same
// format. With a target from Reconcile exactly one image is resized, or none
// when both already share the same size.
func Normalize(a, b *ir.Image, target ir.Dimensions, r Resizer) (*ir.Image, *ir.Image, error) {
	a, err := fitTo(a, target, r)
	if err != nil {
		return nil, nil, err
	}
	b, err = fitTo(b, target, r)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func fitTo(img *ir.Image, target ir.Dimensions, r Resizer) (*ir.Image, error) {
	if img.Dimensions() == target {
		return img, nil
	}
	pixels, err := r.Resize(img.Pixels, img.Width, img.Height, target.Width, target.Height)
	if err != nil {
		return nil, fmt.Errorf("resize %s -> %s: %w", img.Dimensions(), target, err)
	}
	if len(pixels) != target.BufferLen() {
		return nil, fmt.Errorf("%w: %s -> %s gave %d bytes, want %d",
			ErrResizeLength, img.Dimensions(), target, len(pixels), target.BufferLen())
	}
	return &ir.Image{
		Width:  target.Width,
		Height: target.Height,
		Pixels: pixels,
		Format: img.Format,
	}, nil
}
