// Package interleave combines two equally sized RGBA buffers by taking
// whole pixels alternately from each source.
package interleave

import (
	"errors"
	"fmt"
)

// PixelSize is the number of bytes in one RGBA pixel unit.
const PixelSize = 4

var (
	// ErrLengthMismatch is returned when the two buffers differ in length.
	ErrLengthMismatch = errors.New("interleave: buffer lengths differ")

	// ErrUnaligned is returned when a buffer length is not a whole number
	// of pixels.
	ErrUnaligned = errors.New("interleave: buffer length is not a multiple of 4")
)

// Merge returns a new buffer in which pixel n is copied from a when its byte
// offset is a multiple of 8 and from b otherwise, i.e. even pixels come from
// a and odd pixels from b. Neither input is modified.
func Merge(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a)%PixelSize != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnaligned, len(a))
	}

	combined := make([]byte, len(a))
	for i := 0; i < len(a); i += PixelSize {
		src := b
		if i%(2*PixelSize) == 0 {
			src = a
		}
		copy(combined[i:i+PixelSize], src[i:i+PixelSize])
	}
	return combined, nil
}
