// Package codec reads and writes image files as tightly packed RGBA buffers.
//
// Decoding detects the format from file content. PNG, JPEG and GIF come from
// the standard library, BMP and TIFF from golang.org/x/image and WebP from
// github.com/chai2010/webp. The detected format name is carried on the image
// so the output can be written in the same encoding.
package codec

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/davesmith10/imgweave/internal/ir"
)

// Format names as reported by image.Decode.
const (
	PNG  ir.Format = "png"
	JPEG ir.Format = "jpeg"
	GIF  ir.Format = "gif"
	BMP  ir.Format = "bmp"
	TIFF ir.Format = "tiff"
	WebP ir.Format = "webp"
)

// ErrUnsupportedFormat is returned when an image cannot be encoded in the
// requested format.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

var imagingFormats = map[ir.Format]imaging.Format{
	PNG:  imaging.PNG,
	JPEG: imaging.JPEG,
	GIF:  imaging.GIF,
	BMP:  imaging.BMP,
	TIFF: imaging.TIFF,
}

// Codec decodes and encodes image files on the local filesystem.
type Codec struct {
	// JPEGQuality is used when writing JPEG output (1-100).
	JPEGQuality int
}

// New returns a Codec with default settings.
func New() *Codec {
	return &Codec{JPEGQuality: 95}
}

// Info describes an image file without its pixels.
type Info struct {
	Path   string
	Format ir.Format
	Width  int
	Height int
	Size   int64 // file size in bytes
}

// Decode reads the image at path and converts it to non-premultiplied RGBA.
// WebP is decoded straight into RGBA bytes by libwebp, which already yields
// unassociated alpha, so it skips the conversion.
func (c *Codec) Decode(path string) (*ir.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	if ir.Format(name) == WebP {
		m, err := webp.DecodeRGBA(data)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		return &ir.Image{
			Width:  m.Rect.Dx(),
			Height: m.Rect.Dy(),
			Pixels: m.Pix,
			Format: WebP,
		}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	rgba := imaging.Clone(src)
	return &ir.Image{
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
		Pixels: rgba.Pix,
		Format: ir.Format(name),
	}, nil
}

// Probe reads only the header of the image at path.
func (c *Codec) Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	cfg, name, err := image.DecodeConfig(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read header of %s", path)
	}
	return &Info{
		Path:   path,
		Format: ir.Format(name),
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   st.Size(),
	}, nil
}

// Encode writes img to path in img.Format, creating parent directories as
// needed. A file left behind by a failed encode is removed.
func (c *Codec) Encode(path string, img *ir.Image) error {
	if err := img.Validate(); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	if !Supported(img.Format) {
		return errors.Wrapf(ErrUnsupportedFormat, "encode %s as %q", path, img.Format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	err = c.encodeTo(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "encode %s", path)
	}
	return nil
}

func (c *Codec) encodeTo(w io.Writer, img *ir.Image) error {
	nrgba := &image.NRGBA{
		Pix:    img.Pixels,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	if img.Format == WebP {
		// libwebp reads the bytes as unassociated alpha; handing it an
		// *image.RGBA over the same buffer stops the package from
		// premultiplying, and Exact keeps RGB under transparent pixels.
		straight := &image.RGBA{Pix: nrgba.Pix, Stride: nrgba.Stride, Rect: nrgba.Rect}
		return webp.Encode(w, straight, &webp.Options{Lossless: true, Exact: true})
	}
	return imaging.Encode(w, nrgba, imagingFormats[img.Format], imaging.JPEGQuality(c.JPEGQuality))
}

// Supported reports whether Encode can write format f.
func Supported(f ir.Format) bool {
	if f == WebP {
		return true
	}
	_, ok := imagingFormats[f]
	return ok
}
