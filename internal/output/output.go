// Package output holds the combined image between the interleaver and the
// encoder and guards its size against the declared dimensions.
package output

import (
	"errors"
	"fmt"

	"github.com/davesmith10/imgweave/internal/ir"
)

var (
	// ErrBufferTooSizeMismatch is returned by Attach when a buffer does not
	// fit the descriptor under its size policy.
	ErrBufferTooSizeMismatch = errors.New("output: buffer size does not fit image dimensions")

	// ErrNotAttached is returned by Write when no buffer has been attached.
	ErrNotAttached = errors.New("output: no pixel data attached")
)

// SizePolicy decides which buffer lengths Attach accepts.
type SizePolicy int

const (
	// PolicyCapacity accepts any buffer no longer than Width*Height*4.
	// Shorter buffers pass and produce a truncated image on write.
	PolicyCapacity SizePolicy = iota

	// PolicyExact accepts only buffers of exactly Width*Height*4 bytes.
	PolicyExact
)

// ParseSizePolicy converts "capacity" or "exact" to a SizePolicy.
func ParseSizePolicy(s string) (SizePolicy, error) {
	switch s {
	case "capacity":
		return PolicyCapacity, nil
	case "exact":
		return PolicyExact, nil
	default:
		return 0, fmt.Errorf("unknown size check: %q (valid: capacity, exact)", s)
	}
}

func (p SizePolicy) String() string {
	switch p {
	case PolicyCapacity:
		return "capacity"
	case PolicyExact:
		return "exact"
	default:
		return fmt.Sprintf("SizePolicy(%d)", int(p))
	}
}

// Encoder writes an RGBA image to a named destination.
type Encoder interface {
	Encode(path string, img *ir.Image) error
}

// Descriptor describes the image about to be written.
type Descriptor struct {
	Name   string
	Width  int
	Height int
	Format ir.Format
	Policy SizePolicy

	capacity int
	data     []byte
	attached bool
}

// Assemble creates a descriptor for a width x height image written to name.
func Assemble(width, height int, name string, format ir.Format, policy SizePolicy) *Descriptor {
	return &Descriptor{
		Name:     name,
		Width:    width,
		Height:   height,
		Format:   format,
		Policy:   policy,
		capacity: ir.Dimensions{Width: width, Height: height}.BufferLen(),
	}
}

// Capacity returns the number of bytes the declared dimensions hold.
func (d *Descriptor) Capacity() int {
	return d.capacity
}

// Data returns the attached buffer, or nil.
func (d *Descriptor) Data() []byte {
	return d.data
}

// Attach adopts buf as the image data, replacing anything attached before.
func (d *Descriptor) Attach(buf []byte) error {
	switch d.Policy {
	case PolicyExact:
		if len(buf) != d.capacity {
			return fmt.Errorf("%w: got %d bytes, want exactly %d for %dx%d",
				ErrBufferTooSizeMismatch, len(buf), d.capacity, d.Width, d.Height)
		}
	default:
		if len(buf) > d.capacity {
			return fmt.Errorf("%w: got %d bytes, capacity %d for %dx%d",
				ErrBufferTooSizeMismatch, len(buf), d.capacity, d.Width, d.Height)
		}
	}
	d.data = buf
	d.attached = true
	return nil
}

// Write hands the attached image to enc.
func (d *Descriptor) Write(enc Encoder) error {
	if !d.attached {
		return ErrNotAttached
	}
	return enc.Encode(d.Name, &ir.Image{
		Width:  d.Width,
		Height: d.Height,
		Pixels: d.data,
		Format: d.Format,
	})
}
