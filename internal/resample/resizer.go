package resample

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resizer scales a tightly packed RGBA buffer to new dimensions.
// Implementations use a triangle (bilinear) filter.
type Resizer interface {
	Resize(pixels []byte, width, height, targetWidth, targetHeight int) ([]byte, error)
}

// ResizerFunc adapts a plain function to the Resizer interface.
type ResizerFunc func(pixels []byte, width, height, targetWidth, targetHeight int) ([]byte, error)

// Resize calls f.
func (f ResizerFunc) Resize(pixels []byte, width, height, targetWidth, targetHeight int) ([]byte, error) {
	return f(pixels, width, height, targetWidth, targetHeight)
}

// Resampler names accepted by New.
const (
	Imaging = "imaging"
	XDraw   = "xdraw"
	NFNT    = "nfnt"
)

// Default is the resampler used when none is configured.
const Default = Imaging

// ErrUnknownResampler is returned by New for an unrecognised name.
var ErrUnknownResampler = errors.New("resample: unknown resampler")

var resizers = map[string]Resizer{
	Imaging: ResizerFunc(resizeImaging),
	XDraw:   ResizerFunc(resizeXDraw),
	NFNT:    ResizerFunc(resizeNFNT),
}

// New returns the named resizer.
func New(name string) (Resizer, error) {
	r, ok := resizers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownResampler, name, Names())
	}
	return r, nil
}

// Names lists the available resamplers in sorted order.
func Names() []string {
	names := make([]string, 0, len(resizers))
	for n := range resizers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func wrapNRGBA(pixels []byte, width, height int) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// packedPix returns the tightly packed RGBA bytes of img, copying when the
// resizer handed back something other than a fresh, packed NRGBA.
func packedPix(img image.Image, src *image.NRGBA) []byte {
	if n, ok := img.(*image.NRGBA); ok && n != src && n.Rect.Min == (image.Point{}) && n.Stride == n.Rect.Dx()*4 {
		return n.Pix[:n.Rect.Dy()*n.Stride]
	}
	return imaging.Clone(img).Pix
}

func resizeImaging(pixels []byte, width, height, targetWidth, targetHeight int) ([]byte, error) {
	src := wrapNRGBA(pixels, width, height)
	return imaging.Resize(src, targetWidth, targetHeight, imaging.Linear).Pix, nil
}

func resizeXDraw(pixels []byte, width, height, targetWidth, targetHeight int) ([]byte, error) {
	src := wrapNRGBA(pixels, width, height)
	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst.Pix, nil
}

func resizeNFNT(pixels []byte, width, height, targetWidth, targetHeight int) ([]byte, error) {
	src := wrapNRGBA(pixels, width, height)
	out := resize.Resize(uint(targetWidth), uint(targetHeight), src, resize.Bilinear)
	return packedPix(out, src), nil
}
