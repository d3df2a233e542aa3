package ir

import (
	"errors"
	"fmt"
	"math"
)

// Format is the on-disk encoding an image was decoded from ("png", "jpeg",
// ...). The pipeline only compares formats for equality.
type Format string

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// Pixels returns the pixel count. It is computed in 64 bits so that large
// images do not overflow on 32-bit platforms.
func (d Dimensions) Pixels() int64 {
	return int64(d.Width) * int64(d.Height)
}

// ErrTooLarge is returned for dimensions whose RGBA buffer length does not
// fit in an int.
var ErrTooLarge = errors.New("ir: image too large for an in-memory buffer")

// CheckedBufferLen returns the byte length of an RGBA buffer of these
// dimensions, or ErrTooLarge when it exceeds math.MaxInt on this platform.
func (d Dimensions) CheckedBufferLen() (int, error) {
	w, h := int64(d.Width), int64(d.Height)
	if w > 0 && h > 0 && w > int64(math.MaxInt)/4/h {
		return 0, fmt.Errorf("%w: %s", ErrTooLarge, d)
	}
	return int(w * h * 4), nil
}

// BufferLen returns the byte length of an RGBA buffer of these dimensions.
// It returns 0 when the length does not fit in an int; dimensions taken from
// a validated Image always fit.
func (d Dimensions) BufferLen() int {
	n, err := d.CheckedBufferLen()
	if err != nil {
		return 0
	}
	return n
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Image is the intermediate representation passed between the codec, the
// resampler and the interleaver. Pixels are stored as interleaved,
// non-premultiplied R,G,B,A bytes (4 bytes per pixel, row-major order).
type Image struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 4
	Format Format
}

// Dimensions returns the image size.
func (img *Image) Dimensions() Dimensions {
	return Dimensions{Width: img.Width, Height: img.Height}
}

// Validate checks that the image has a positive size and a pixel buffer of
// exactly Width*Height*4 bytes.
func (img *Image) Validate() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", img.Width, img.Height)
	}
	want, err := img.Dimensions().CheckedBufferLen()
	if err != nil {
		return err
	}
	if len(img.Pixels) != want {
		return fmt.Errorf("expected %d bytes for %dx%d RGBA, got %d", want, img.Width, img.Height, len(img.Pixels))
	}
	return nil
}
