package pix

// Packed pixel values are 32-bit ARGB: alpha occupies bits 24-31, red 16-23,
// green 8-15 and blue 0-7. All packing and extraction helpers in this file
// operate on that layout.

// ARGB packs four 8-bit channel values into a single pixel value.
// Inputs wider than 8 bits are truncated to their low byte, so the result
// is always well formed.
func ARGB(a, r, g, b uint32) uint32 {
	return (a&0xff)<<24 | (r&0xff)<<16 | (g&0xff)<<8 | b&0xff
}

// ARGBFast packs four channel values without masking them first.
// It saves the masking work of ARGB when the inputs are already known to
// fit in 8 bits; values outside [0, 255] corrupt neighboring channels.
func ARGBFast(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}

// ARGBClamp packs four channel values, clamping each to [0, 255] first.
// This is the safe choice for results of arithmetic that may overshoot.
func ARGBClamp(a, r, g, b int) uint32 {
	return ARGBFast(clampChannel(a), clampChannel(r), clampChannel(g), clampChannel(b))
}

// RGB packs three 8-bit channel values into an opaque pixel value
// (alpha 0xff). Inputs wider than 8 bits are truncated to their low byte.
func RGB(r, g, b uint32) uint32 {
	return 0xff000000 | (r&0xff)<<16 | (g&0xff)<<8 | b&0xff
}

// RGBFast packs three channel values into an opaque pixel value without
// masking. Values outside [0, 255] corrupt neighboring channels.
func RGBFast(r, g, b uint32) uint32 {
	return 0xff000000 | r<<16 | g<<8 | b
}

// RGBClamp packs three channel values into an opaque pixel value,
// clamping each to [0, 255] first.
func RGBClamp(r, g, b int) uint32 {
	return 0xff000000 | clampChannel(r)<<16 | clampChannel(g)<<8 | clampChannel(b)
}

// ARGBNorm packs four normalized channel values in [0, 1] into a pixel
// value. Each component is scaled by 255 and truncated; values outside
// [0, 1] are not clamped and produce malformed results.
func ARGBNorm(a, r, g, b float64) uint32 {
	return ARGBFast(uint32(a*0xff), uint32(r*0xff), uint32(g*0xff), uint32(b*0xff))
}

// RGBNorm packs three normalized channel values in [0, 1] into an opaque
// pixel value. Values outside [0, 1] are not clamped and produce malformed
// results.
func RGBNorm(r, g, b float64) uint32 {
	return RGBFast(uint32(r*0xff), uint32(g*0xff), uint32(b*0xff))
}

// A returns the alpha channel of a packed pixel value.
func A(c uint32) uint32 { return c >> 24 & 0xff }

// R returns the red channel of a packed pixel value.
func R(c uint32) uint32 { return c >> 16 & 0xff }

// G returns the green channel of a packed pixel value.
func G(c uint32) uint32 { return c >> 8 & 0xff }

// B returns the blue channel of a packed pixel value.
func B(c uint32) uint32 { return c & 0xff }

// ANorm returns the alpha channel of a packed pixel value normalized to [0, 1].
func ANorm(c uint32) float64 { return float64(A(c)) / 0xff }

// RNorm returns the red channel of a packed pixel value normalized to [0, 1].
func RNorm(c uint32) float64 { return float64(R(c)) / 0xff }

// GNorm returns the green channel of a packed pixel value normalized to [0, 1].
func GNorm(c uint32) float64 { return float64(G(c)) / 0xff }

// BNorm returns the blue channel of a packed pixel value normalized to [0, 1].
func BNorm(c uint32) float64 { return float64(B(c)) / 0xff }

// CombineChannels packs an arbitrary number of equally wide channels into a
// single value. Channels are laid out most significant first, so the last
// argument ends up in the least significant bits:
//
//	CombineChannels(8, a, r, g, b) == ARGBFast(a, r, g, b)
//	CombineChannels(5, r, g, b)    // 15-bit RGB
//
// Channel values are not masked to bitsPerChannel; oversized values corrupt
// neighboring channels. This is a general-purpose helper, not tuned for
// speed; use the fixed ARGB packers on hot paths.
func CombineChannels(bitsPerChannel int, channels ...uint32) uint32 {
	var v uint32
	shift := 0
	for i := len(channels) - 1; i >= 0; i-- {
		v |= channels[i] << shift
		shift += bitsPerChannel
	}
	return v
}

// Channel extracts numBits bits starting at startBit from a packed value:
//
//	Channel(c, 16, 8) == R(c)
//	Channel(c, 10, 5)  // middle channel of 15-bit RGB
//
// Like CombineChannels, this is general-purpose rather than fast.
func Channel(c uint32, startBit, numBits int) uint32 {
	return c >> startBit & (1<<numBits - 1)
}

// Gray returns the weighted average of the red, green and blue channels.
// The weights are free to be negative, which makes Gray usable for channel
// differences and similar arithmetic; the result is then unbounded.
// Gray panics with a divide-by-zero error when the weights sum to zero.
func Gray(c uint32, redWeight, greenWeight, blueWeight int) int {
	return (int(R(c))*redWeight + int(G(c))*greenWeight + int(B(c))*blueWeight) /
		(redWeight + greenWeight + blueWeight)
}

// Luminance returns the perceived brightness of a packed pixel value in
// [0, 255], using the BT.709 weights 2126, 7152 and 722.
func Luminance(c uint32) int {
	return Gray(c, 2126, 7152, 722)
}

// clampChannel restricts a channel value to [0, 255].
func clampChannel(v int) uint32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}
