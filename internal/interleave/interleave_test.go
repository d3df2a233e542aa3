package interleave

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestMergeAlternatesPixels(t *testing.T) {
	a := []byte{
		10, 11, 12, 13, // pixel 0
		14, 15, 16, 17, // pixel 1
	}
	b := []byte{
		20, 21, 22, 23,
		24, 25, 26, 27,
	}

	got, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	want := []byte{10, 11, 12, 13, 24, 25, 26, 27}
	if !bytes.Equal(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeRandomBuffers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, pixels := range []int{0, 1, 2, 3, 7, 64, 1001} {
		a := make([]byte, pixels*PixelSize)
		b := make([]byte, pixels*PixelSize)
		rng.Read(a)
		rng.Read(b)
		origA := append([]byte(nil), a...)
		origB := append([]byte(nil), b...)

		got, err := Merge(a, b)
		if err != nil {
			t.Fatalf("[%d px] Merge: %v", pixels, err)
		}
		if len(got) != len(a) {
			t.Fatalf("[%d px] len = %d, want %d", pixels, len(got), len(a))
		}
		for p := 0; p < pixels; p++ {
			off := p * PixelSize
			src := b
			if p%2 == 0 {
				src = a
			}
			if !bytes.Equal(got[off:off+PixelSize], src[off:off+PixelSize]) {
				t.Fatalf("[%d px] pixel %d taken from wrong source", pixels, p)
			}
		}
		if !bytes.Equal(a, origA) || !bytes.Equal(b, origB) {
			t.Fatalf("[%d px] inputs were modified", pixels)
		}
	}
}

func TestMergeReturnsFreshBuffer(t *testing.T) {
	a := []byte{1, 2, 3, 4}
	b := []byte{5, 6, 7, 8}
	got, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	got[0] = 99
	if a[0] != 1 {
		t.Error("output aliases input a")
	}
}

func TestMergePreconditions(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want error
	}{
		{"length mismatch", make([]byte, 8), make([]byte, 4), ErrLengthMismatch},
		{"unaligned", make([]byte, 6), make([]byte, 6), ErrUnaligned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(tt.a, tt.b)
			if !errors.Is(err, tt.want) {
				t.Errorf("Merge error = %v, want %v", err, tt.want)
			}
		})
	}
}
