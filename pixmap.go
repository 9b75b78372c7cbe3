package pix

import (
	"image"
	"image/color"
)

// Pixmap is a rectangular pixel buffer of packed 32-bit ARGB values.
//
// Pixel data is stored row-major in a single []uint32 slice, one value per
// pixel (index y*width + x). A Pixmap either owns its storage or wraps a
// caller-provided slice (see NewPixmapFrom); in both cases all operations
// work directly on that storage.
//
// Thread safety: concurrent reads are safe. Concurrent writes require
// external synchronization, or disjoint pixel sets per goroutine as with
// ForEachParallel.
type Pixmap struct {
	width  int
	height int
	data   []uint32
	shared bool
}

// NewPixmap creates a new pixmap with the given dimensions, filled with
// zero (fully transparent black).
// Returns ErrInvalidDimensions if either dimension is negative or the
// pixel count overflows the int range.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	if width != 0 && n/width != height {
		return nil, ErrInvalidDimensions
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint32, n),
	}, nil
}

// NewPixmapFrom creates a pixmap that wraps existing pixel data without
// copying. The pixmap and the caller share the same storage: writes through
// either are visible through the other. The caller must ensure data remains
// valid for the lifetime of the pixmap.
// Returns ErrDimensionMismatch if len(data) != width*height.
func NewPixmapFrom(width, height int, data []uint32) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	if width != 0 && n/width != height {
		return nil, ErrInvalidDimensions
	}
	if len(data) != n {
		return nil, ErrDimensionMismatch
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   data,
		shared: true,
	}, nil
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Len returns the number of pixels in the pixmap.
func (p *Pixmap) Len() int {
	return len(p.data)
}

// Data returns the raw pixel data (packed ARGB, row-major).
// Modifying the slice modifies the pixmap.
func (p *Pixmap) Data() []uint32 {
	return p.data
}

// Shared reports whether the pixmap wraps caller-provided storage
// (created with NewPixmapFrom) rather than owning its own.
func (p *Pixmap) Shared() bool {
	return p.shared
}

// Value returns the packed pixel value at (x, y).
// No bounds checks are performed: coordinates outside the pixmap either
// read some other pixel or panic, depending on the resulting index.
// Use Sample for boundary-checked access.
func (p *Pixmap) Value(x, y int) uint32 {
	return p.data[y*p.width+x]
}

// SetValue sets the packed pixel value at (x, y).
// No bounds checks are performed, as with Value.
func (p *Pixmap) SetValue(x, y int, v uint32) {
	p.data[y*p.width+x] = v
}

// BoundaryMode selects how Sample treats coordinates outside the pixmap.
//
// The named constants occupy the low value range. Any other value is
// returned verbatim as a literal fallback color, so a fallback that happens
// to equal one of the constants is indistinguishable from that mode. Keep
// literal fallback colors out of the low range; opaque colors (alpha 0xff)
// are always safe.
type BoundaryMode uint32

const (
	// BoundaryZero returns zero (fully transparent black) outside the pixmap.
	BoundaryZero BoundaryMode = 0

	// BoundaryClamp repeats the nearest edge pixel.
	BoundaryClamp BoundaryMode = 1

	// BoundaryWrap tiles the pixmap, repeating it across the plane.
	BoundaryWrap BoundaryMode = 2

	// BoundaryMirror reflects the pixmap at its edges, alternating
	// direction so neighboring tiles are mirror images.
	BoundaryMirror BoundaryMode = 3
)

// Sample returns the packed pixel value at (x, y), resolving out-of-bounds
// coordinates according to mode. Coordinates inside the pixmap always read
// the pixel directly.
func (p *Pixmap) Sample(x, y int, mode BoundaryMode) uint32 {
	if x >= 0 && y >= 0 && x < p.width && y < p.height {
		return p.Value(x, y)
	}
	switch mode {
	case BoundaryZero:
		return 0
	case BoundaryClamp:
		if x < 0 {
			x = 0
		} else if x >= p.width {
			x = p.width - 1
		}
		if y < 0 {
			y = 0
		} else if y >= p.height {
			y = p.height - 1
		}
		return p.Value(x, y)
	case BoundaryWrap:
		x = (p.width + x%p.width) % p.width
		y = (p.height + y%p.height) % p.height
		return p.Value(x, y)
	case BoundaryMirror:
		if x < 0 {
			x = -x - 1
		}
		if x/p.width%2 == 1 {
			x = p.width - 1 - x%p.width
		} else {
			x = x % p.width
		}
		if y < 0 {
			y = -y - 1
		}
		if y/p.height%2 == 1 {
			y = p.height - 1 - y%p.height
		} else {
			y = y % p.height
		}
		return p.Value(x, y)
	default:
		// Any unnamed mode doubles as the fallback color.
		return uint32(mode)
	}
}

// SampleBilinear returns the bilinearly interpolated pixel value at the
// normalized coordinates (u, v), both in [0, 1]. (0,0) is the top-left
// pixel center and (1,1) the bottom-right one: u maps to the pixel
// coordinate u*(width-1).
//
// The four neighboring pixels are clamped to the last row and column at the
// high edge, never wrapped. Each channel is interpolated independently with
// the fractional parts as weights. Coordinates outside [0, 1] violate the
// caller contract; the result is then undefined and may panic.
func (p *Pixmap) SampleBilinear(u, v float64) uint32 {
	fx := u * float64(p.width-1)
	fy := v * float64(p.height-1)
	x0 := int(fx)
	y0 := int(fy)
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := x0
	if x0+1 < p.width {
		x1 = x0 + 1
	}
	y1 := y0
	if y0+1 < p.height {
		y1 = y0 + 1
	}

	c00 := p.Value(x0, y0)
	c10 := p.Value(x1, y0)
	c01 := p.Value(x0, y1)
	c11 := p.Value(x1, y1)

	a := uint32(lerp2D(float64(A(c00)), float64(A(c10)), float64(A(c01)), float64(A(c11)), tx, ty))
	r := uint32(lerp2D(float64(R(c00)), float64(R(c10)), float64(R(c01)), float64(R(c11)), tx, ty))
	g := uint32(lerp2D(float64(G(c00)), float64(G(c10)), float64(G(c01)), float64(G(c11)), tx, ty))
	b := uint32(lerp2D(float64(B(c00)), float64(B(c10)), float64(B(c01)), float64(B(c11)), tx, ty))
	return ARGBFast(a, r, g, b)
}

// CopyArea copies the w*h area of this pixmap with origin (x, y) into dst
// at (dstX, dstY) and returns dst. If dst is nil, a new pixmap of exactly
// the area's size is created and the destination offset is ignored.
//
// The source area must lie entirely inside this pixmap or CopyArea returns
// ErrAreaBounds without copying anything. The destination offset may be
// negative or otherwise place the area partially outside dst; only the
// intersection of the area and dst is copied.
func (p *Pixmap) CopyArea(x, y, w, h int, dst *Pixmap, dstX, dstY int) (*Pixmap, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > p.width || y+h > p.height {
		return nil, ErrAreaBounds
	}
	if dst == nil {
		dst = &Pixmap{width: w, height: h, data: make([]uint32, w*h)}
		dstX, dstY = 0, 0
	}
	if x == 0 && dstX == 0 && w == dst.width && w == p.width {
		// Full-width rows are one contiguous block.
		if dstY < 0 {
			y -= dstY
			h += dstY
			dstY = 0
		}
		h = min(h, dst.height-dstY)
		if w > 0 && h > 0 {
			copy(dst.data[dstY*w:(dstY+h)*w], p.data[y*w:(y+h)*w])
		}
		return dst, nil
	}
	if dstX < 0 {
		// Shrink the area by the overlap and translate its origin.
		x -= dstX
		w += dstX
		dstX = 0
	}
	if dstY < 0 {
		y -= dstY
		h += dstY
		dstY = 0
	}
	w = min(w, dst.width-dstX)
	h = min(h, dst.height-dstY)
	if w > 0 && h > 0 {
		for i := 0; i < h; i++ {
			srcOff := (y+i)*p.width + x
			dstOff := (dstY+i)*dst.width + dstX
			copy(dst.data[dstOff:dstOff+w], p.data[srcOff:srcOff+w])
		}
	}
	return dst, nil
}

// Fill sets every pixel to the given packed value.
func (p *Pixmap) Fill(v uint32) {
	for i := range p.data {
		p.data[i] = v
	}
}

// Clone creates a deep copy of the pixmap. The copy always owns its
// storage, even when the original wraps shared data.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint32, len(p.data))
	copy(data, p.data)
	return &Pixmap{
		width:  p.width,
		height: p.height,
		data:   data,
	}
}

// At implements the image.Image interface. The returned color reflects the
// pixmap's current content, so the pixmap can be handed to any consumer of
// image.Image as a live, zero-copy view. Out-of-bounds coordinates return
// the zero color.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	c := p.data[y*p.width+x]
	return color.NRGBA{R: uint8(R(c)), G: uint8(G(c)), B: uint8(B(c)), A: uint8(A(c))}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
// Pixel values are non-premultiplied, so the model is color.NRGBAModel.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToNRGBA converts the pixmap to a new image.NRGBA, copying the pixels.
func (p *Pixmap) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	i := 0
	for _, c := range p.data {
		img.Pix[i+0] = uint8(R(c))
		img.Pix[i+1] = uint8(G(c))
		img.Pix[i+2] = uint8(B(c))
		img.Pix[i+3] = uint8(A(c))
		i += 4
	}
	return img
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
