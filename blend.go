package pix

import "math"

// BlendFunc computes the blended value of two 8-bit channel values, for
// example the red channels of two pixels. The first argument is the bottom
// (destination) value, the second the top (source) value; the result is
// again 8 bit.
//
// Custom functions can be used everywhere a BlendMode can: BlendFunc
// carries the same Blend, BlendARGB, Blending and AlphaBlending methods.
type BlendFunc func(bottom, top uint8) uint8

// BlendMode identifies one of the built-in per-channel blend functions.
// The formulas in the constant docs treat channel values as fractions of
// 255, so "1" means a channel value of 255.
type BlendMode uint8

const (
	// BlendNormal keeps the top value. Formula: f(b,t) = t
	BlendNormal BlendMode = iota

	// BlendAverage averages both values. Formula: f(b,t) = (b+t)/2
	BlendAverage

	// BlendMultiply multiplies both values, darkening the image.
	// Formula: f(b,t) = b*t
	BlendMultiply

	// BlendScreen is the inverse of multiply, brightening the image.
	// Formula: f(b,t) = 1-(1-b)*(1-t)
	BlendScreen

	// BlendDarken keeps the smaller value. Formula: f(b,t) = min(b,t)
	BlendDarken

	// BlendBrighten keeps the larger value. Formula: f(b,t) = max(b,t)
	BlendBrighten

	// BlendDifference takes the distance of both values.
	// Formula: f(b,t) = |b-t|
	BlendDifference

	// BlendAddition sums both values, clamping at white.
	// Formula: f(b,t) = min(b+t, 1)
	BlendAddition

	// BlendSubtraction sums both values and subtracts white, clamping at
	// black. Formula: f(b,t) = max(b+t-1, 0)
	BlendSubtraction

	// BlendReflect brightens the bottom by the top, like light reflected
	// off a glossy surface. Formula: f(b,t) = min(b²/(1-t), 1)
	BlendReflect

	// BlendOverlay multiplies or screens depending on the bottom value:
	// dark areas get darker, bright areas brighter.
	// Formula: f(b,t) = 2*b*t for b < 1/2, else 1-2*(1-b)*(1-t)
	BlendOverlay

	// BlendHardLight multiplies or screens depending on the top value;
	// overlay with the roles of bottom and top exchanged.
	// Formula: f(b,t) = 2*b*t for t < 1/2, else 1-2*(1-b)*(1-t)
	BlendHardLight

	// BlendSoftLight interpolates between multiply and screen by the
	// bottom value, a softened hard light.
	// Formula: f(b,t) = (1-b)*multiply(b,t) + b*screen(b,t)
	BlendSoftLight

	// BlendDodge divides the bottom by the inverse of the top,
	// brightening the image. Formula: f(b,t) = min(b/(1-t), 1)
	BlendDodge
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendAverage:
		return "Average"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendDarken:
		return "Darken"
	case BlendBrighten:
		return "Brighten"
	case BlendDifference:
		return "Difference"
	case BlendAddition:
		return "Addition"
	case BlendSubtraction:
		return "Subtraction"
	case BlendReflect:
		return "Reflect"
	case BlendOverlay:
		return "Overlay"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendDodge:
		return "Dodge"
	default:
		return "Unknown"
	}
}

// Func returns the per-channel blend function of the mode.
// Unknown modes fall back to BlendNormal.
func (m BlendMode) Func() BlendFunc {
	switch m {
	case BlendNormal:
		return blendNormal
	case BlendAverage:
		return blendAverage
	case BlendMultiply:
		return blendMultiply
	case BlendScreen:
		return blendScreen
	case BlendDarken:
		return blendDarken
	case BlendBrighten:
		return blendBrighten
	case BlendDifference:
		return blendDifference
	case BlendAddition:
		return blendAddition
	case BlendSubtraction:
		return blendSubtraction
	case BlendReflect:
		return blendReflect
	case BlendOverlay:
		return blendOverlay
	case BlendHardLight:
		return blendHardLight
	case BlendSoftLight:
		return blendSoftLight
	case BlendDodge:
		return blendDodge
	default:
		return blendNormal
	}
}

// Blend blends the color channels of two packed values and returns an
// opaque result (alpha 0xff). The alpha channels of both inputs are
// ignored; use BlendARGB for alpha-aware blending.
func (m BlendMode) Blend(bottom, top uint32) uint32 {
	return m.Func().Blend(bottom, top)
}

// BlendARGB blends two packed values respecting both alpha channels and
// the given blend opacity; see BlendFunc.BlendARGB for the exact
// semantics.
func (m BlendMode) BlendARGB(bottom, top uint32, opacity float64) uint32 {
	return m.Func().BlendARGB(bottom, top, opacity)
}

// Blending returns a visitor that blends the pixels of top into the pixmap
// it is applied to, ignoring alpha; see BlendFunc.Blending.
func (m BlendMode) Blending(top *Pixmap, xOff, yOff int) Visitor {
	return m.Func().Blending(top, xOff, yOff)
}

// AlphaBlending returns a visitor that blends the pixels of top into the
// pixmap it is applied to, respecting alpha; see BlendFunc.AlphaBlending.
func (m BlendMode) AlphaBlending(top *Pixmap, xOff, yOff int, opacity float64) Visitor {
	return m.Func().AlphaBlending(top, xOff, yOff, opacity)
}

// Blend blends the color channels of two packed values with fn and returns
// an opaque result (alpha 0xff). The alpha channels of both inputs are
// ignored.
func (fn BlendFunc) Blend(bottom, top uint32) uint32 {
	return RGBFast(
		uint32(fn(uint8(R(bottom)), uint8(R(top)))),
		uint32(fn(uint8(G(bottom)), uint8(G(top)))),
		uint32(fn(uint8(B(bottom)), uint8(B(top)))),
	)
}

// BlendARGB blends two packed values respecting both alpha channels and
// the given blend opacity in [0, 1].
//
// The result's alpha is min(opacity*topAlpha + bottomAlpha, 255): blending
// something onto the pixel can only make it more opaque. The effective
// occlusion of the blended color is opacity*topAlpha/255, so a half
// transparent top pixel blended with opacity 0.5 influences the result by
// a factor of 0.25, and each color channel comes out as
//
//	occlusion*fn(bottom, top) + (1-occlusion)*bottom
//
// With opacity 1 and a fully opaque top pixel this reduces to Blend with
// alpha 255.
func (fn BlendFunc) BlendARGB(bottom, top uint32, opacity float64) uint32 {
	topA := float64(A(top))
	a := math.Min(opacity*topA+float64(A(bottom)), 0xff)

	opacity *= topA / 255
	transparency := 1 - opacity

	r := opacity*float64(fn(uint8(R(bottom)), uint8(R(top)))) + float64(R(bottom))*transparency
	g := opacity*float64(fn(uint8(G(bottom)), uint8(G(top)))) + float64(G(bottom))*transparency
	b := opacity*float64(fn(uint8(B(bottom)), uint8(B(top)))) + float64(B(bottom))*transparency

	return ARGBFast(uint32(a), uint32(r), uint32(g), uint32(b))
}

// Blending returns a visitor that blends the pixels of top into the pixmap
// it is applied to. top is placed at offset (xOff, yOff); pixels without a
// counterpart in top keep their value. Alpha is ignored and results are
// opaque.
//
//	bottom.ForEach(pix.BlendMultiply.Blending(top, 0, 0))
func (fn BlendFunc) Blending(top *Pixmap, xOff, yOff int) Visitor {
	return func(c *Cursor) {
		x := c.X() - xOff
		y := c.Y() - yOff
		if x >= 0 && y >= 0 && x < top.width && y < top.height {
			c.SetValue(fn.Blend(c.Value(), top.Value(x, y)))
		}
	}
}

// AlphaBlending returns a visitor that blends the pixels of top into the
// pixmap it is applied to, respecting the alpha of both pixels and the
// given blend opacity (see BlendFunc.BlendARGB). top is placed at offset
// (xOff, yOff); pixels without a counterpart in top keep their value.
func (fn BlendFunc) AlphaBlending(top *Pixmap, xOff, yOff int, opacity float64) Visitor {
	return func(c *Cursor) {
		x := c.X() - xOff
		y := c.Y() - yOff
		if x >= 0 && y >= 0 && x < top.width && y < top.height {
			c.SetValue(fn.BlendARGB(c.Value(), top.Value(x, y), opacity))
		}
	}
}

func blendNormal(b, t uint8) uint8 { return t }

func blendAverage(b, t uint8) uint8 {
	return uint8((int(b) + int(t)) / 2)
}

func blendMultiply(b, t uint8) uint8 {
	return uint8(int(b) * int(t) / 255)
}

func blendScreen(b, t uint8) uint8 {
	return uint8(255 - (255-int(b))*(255-int(t))/255)
}

func blendDarken(b, t uint8) uint8 {
	if b < t {
		return b
	}
	return t
}

func blendBrighten(b, t uint8) uint8 {
	if b > t {
		return b
	}
	return t
}

func blendDifference(b, t uint8) uint8 {
	if b > t {
		return b - t
	}
	return t - b
}

func blendAddition(b, t uint8) uint8 {
	if s := int(b) + int(t); s < 255 {
		return uint8(s)
	}
	return 255
}

func blendSubtraction(b, t uint8) uint8 {
	if s := int(b) + int(t) - 255; s > 0 {
		return uint8(s)
	}
	return 0
}

func blendReflect(b, t uint8) uint8 {
	if v := int(b) * int(b) / max(255-int(t), 1); v < 255 {
		return uint8(v)
	}
	return 255
}

func blendOverlay(b, t uint8) uint8 {
	if b < 128 {
		return uint8(int(b) * int(t) / 128)
	}
	return uint8(255 - (255-int(b))*(255-int(t))/128)
}

func blendHardLight(b, t uint8) uint8 {
	if t < 128 {
		return uint8(int(b) * int(t) / 128)
	}
	return uint8(255 - (255-int(b))*(255-int(t))/128)
}

func blendSoftLight(b, t uint8) uint8 {
	bi, ti := int(b), int(t)
	m := bi * ti / 255
	return uint8(m + bi*(255-(255-bi)*(255-ti)/255-m)/255)
}

func blendDodge(b, t uint8) uint8 {
	if v := int(b) * 255 / max(255-int(t), 1); v < 255 {
		return uint8(v)
	}
	return 255
}
