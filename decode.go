package pix

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	// Codecs registered for Decode. The stdlib trio plus the extended
	// formats from golang.org/x/image (WebP is decode-only upstream).
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FromImage creates a pixmap from any image.Image, copying the pixels and
// converting them to packed non-premultiplied ARGB.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}

	// x/image/draw handles the color model conversion; packing the
	// resulting NRGBA bytes is then a straight loop.
	staging := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Copy(staging, image.Point{}, img, bounds, draw.Src, nil)
	for i := range p.data {
		o := i * 4
		p.data[i] = ARGBFast(
			uint32(staging.Pix[o+3]),
			uint32(staging.Pix[o+0]),
			uint32(staging.Pix[o+1]),
			uint32(staging.Pix[o+2]),
		)
	}
	return p
}

// Decode reads an encoded image from r and converts it into a pixmap.
// The format is detected automatically among the registered codecs:
// PNG, JPEG, GIF, BMP, TIFF and WebP by default. Additional formats can be
// added the usual way with image.RegisterFormat.
func Decode(r io.Reader) (*Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode: %w", err)
	}
	p := FromImage(img)
	Logger().Debug("pix: image decoded",
		"format", format, "width", p.Width(), "height", p.Height())
	return p, nil
}

// Load reads the image file at the given path into a pixmap.
// The file content is decoded with Decode.
func Load(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("pix: load: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// WritePNG encodes the pixmap as PNG to w.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return png.Encode(w, p.ToNRGBA())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return p.WritePNG(f)
}
