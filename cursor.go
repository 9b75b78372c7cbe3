package pix

import "fmt"

// Cursor addresses a single pixel of a Pixmap by linear index. It owns no
// pixel storage; reads and writes go straight to the pixmap it was created
// for.
//
// A cursor is cheap to re-seek. Allocate one and move it with SetIndex or
// SetPosition instead of creating a cursor per pixel; the traversal methods
// (ForEach and friends) do exactly that.
//
// No bounds checks are performed anywhere on the cursor. A cursor seeked
// outside the pixmap reads or writes some other pixel or panics, depending
// on the resulting index.
type Cursor struct {
	p   *Pixmap
	idx int
}

// Cursor creates a cursor for this pixmap at index 0.
func (p *Pixmap) Cursor() *Cursor {
	return &Cursor{p: p}
}

// CursorAt creates a cursor for this pixmap at position (x, y).
func (p *Pixmap) CursorAt(x, y int) *Cursor {
	return &Cursor{p: p, idx: y*p.width + x}
}

// Pixmap returns the pixmap this cursor addresses.
func (c *Cursor) Pixmap() *Pixmap {
	return c.p
}

// Index returns the linear index of the addressed pixel.
func (c *Cursor) Index() int {
	return c.idx
}

// SetIndex moves the cursor to the given linear index.
func (c *Cursor) SetIndex(i int) {
	c.idx = i
}

// X returns the x coordinate of the addressed pixel.
func (c *Cursor) X() int {
	return c.idx % c.p.width
}

// Y returns the y coordinate of the addressed pixel.
func (c *Cursor) Y() int {
	return c.idx / c.p.width
}

// SetPosition moves the cursor to position (x, y).
func (c *Cursor) SetPosition(x, y int) {
	c.idx = y*c.p.width + x
}

// XNorm returns the x coordinate normalized to [0, 1], where 0 is the left
// and 1 the right boundary of the pixmap.
// For pixmaps that are only one pixel wide, XNorm returns NaN.
func (c *Cursor) XNorm() float64 {
	return float64(c.X()) / float64(c.p.width-1)
}

// YNorm returns the y coordinate normalized to [0, 1], where 0 is the upper
// and 1 the lower boundary of the pixmap.
// For pixmaps that are only one pixel high, YNorm returns NaN.
func (c *Cursor) YNorm() float64 {
	return float64(c.Y()) / float64(c.p.height-1)
}

// Value returns the packed pixel value at the cursor.
func (c *Cursor) Value() uint32 {
	return c.p.data[c.idx]
}

// SetValue sets the packed pixel value at the cursor.
func (c *Cursor) SetValue(v uint32) {
	c.p.data[c.idx] = v
}

// A returns the alpha channel at the cursor.
func (c *Cursor) A() uint32 { return A(c.Value()) }

// R returns the red channel at the cursor.
func (c *Cursor) R() uint32 { return R(c.Value()) }

// G returns the green channel at the cursor.
func (c *Cursor) G() uint32 { return G(c.Value()) }

// B returns the blue channel at the cursor.
func (c *Cursor) B() uint32 { return B(c.Value()) }

// ANorm returns the alpha channel at the cursor normalized to [0, 1].
func (c *Cursor) ANorm() float64 { return ANorm(c.Value()) }

// RNorm returns the red channel at the cursor normalized to [0, 1].
func (c *Cursor) RNorm() float64 { return RNorm(c.Value()) }

// GNorm returns the green channel at the cursor normalized to [0, 1].
func (c *Cursor) GNorm() float64 { return GNorm(c.Value()) }

// BNorm returns the blue channel at the cursor normalized to [0, 1].
func (c *Cursor) BNorm() float64 { return BNorm(c.Value()) }

// SetA sets the alpha channel at the cursor, leaving the other channels
// untouched. The value is truncated to 8 bits.
func (c *Cursor) SetA(a uint32) {
	c.SetValue(c.Value()&0x00ffffff | a<<24&0xff000000)
}

// SetR sets the red channel at the cursor, leaving the other channels
// untouched. The value is truncated to 8 bits.
func (c *Cursor) SetR(r uint32) {
	c.SetValue(c.Value()&0xff00ffff | r<<16&0x00ff0000)
}

// SetG sets the green channel at the cursor, leaving the other channels
// untouched. The value is truncated to 8 bits.
func (c *Cursor) SetG(g uint32) {
	c.SetValue(c.Value()&0xffff00ff | g<<8&0x0000ff00)
}

// SetB sets the blue channel at the cursor, leaving the other channels
// untouched. The value is truncated to 8 bits.
func (c *Cursor) SetB(b uint32) {
	c.SetValue(c.Value()&0xffffff00 | b&0x000000ff)
}

// SetARGB sets all four channels at the cursor. Channel values are
// truncated to 8 bits.
func (c *Cursor) SetARGB(a, r, g, b uint32) {
	c.SetValue(ARGB(a, r, g, b))
}

// SetRGB sets an opaque color at the cursor (alpha 0xff). Channel values
// are truncated to 8 bits.
func (c *Cursor) SetRGB(r, g, b uint32) {
	c.SetValue(RGB(r, g, b))
}

// SetRGBKeepAlpha sets the color channels at the cursor without altering
// the present alpha value. Channel values are truncated to 8 bits.
func (c *Cursor) SetRGBKeepAlpha(r, g, b uint32) {
	c.SetValue(c.Value()&0xff000000 | ARGB(0, r, g, b))
}

// SetARGBNorm sets all four channels at the cursor from normalized values
// in [0, 1]. Values outside that range produce malformed results.
func (c *Cursor) SetARGBNorm(a, r, g, b float64) {
	c.SetValue(ARGBNorm(a, r, g, b))
}

// SetRGBNorm sets an opaque color at the cursor from normalized values in
// [0, 1]. Values outside that range produce malformed results.
func (c *Cursor) SetRGBNorm(r, g, b float64) {
	c.SetValue(RGBNorm(r, g, b))
}

// SetRGBNormKeepAlpha sets the color channels at the cursor from normalized
// values in [0, 1] without altering the present alpha value.
func (c *Cursor) SetRGBNormKeepAlpha(r, g, b float64) {
	c.SetRGBKeepAlpha(uint32(r*0xff), uint32(g*0xff), uint32(b*0xff))
}

// Luminance returns the perceived brightness of the pixel at the cursor in
// [0, 255] (BT.709 weights).
func (c *Cursor) Luminance() int {
	return Luminance(c.Value())
}

// Gray returns the weighted average of the color channels at the cursor.
// See the package level Gray for the weight semantics.
func (c *Cursor) Gray(redWeight, greenWeight, blueWeight int) int {
	return Gray(c.Value(), redWeight, greenWeight, blueWeight)
}

// String returns a short debug description of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor at %d (%d,%d)", c.Index(), c.X(), c.Y())
}
