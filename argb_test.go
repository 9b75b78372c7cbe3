package pix

import (
	"math"
	"testing"
)

// TestARGB verifies channel layout and truncation of oversized inputs.
func TestARGB(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint32
		want       uint32
	}{
		{"black transparent", 0, 0, 0, 0, 0x00000000},
		{"white opaque", 255, 255, 255, 255, 0xffffffff},
		{"distinct channels", 0x80, 0x40, 0x20, 0x10, 0x80402010},
		{"oversized truncated", 0x1ff, 0x2aa, 0x355, 0x4cc, 0xffaa55cc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGB(tt.a, tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ARGB(%#x, %#x, %#x, %#x) = %#08x, want %#08x",
					tt.a, tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestARGBFast verifies that for in-range inputs the fast packer agrees
// with the masking one.
func TestARGBFast(t *testing.T) {
	values := []uint32{0, 1, 0x7f, 0x80, 0xfe, 0xff}
	for _, a := range values {
		for _, c := range values {
			got := ARGBFast(a, c, c, c)
			want := ARGB(a, c, c, c)
			if got != want {
				t.Fatalf("ARGBFast(%d, %d, %d, %d) = %#08x, want %#08x", a, c, c, c, got, want)
			}
		}
	}
}

// TestARGBClamp verifies clamping of out-of-range channel values.
func TestARGBClamp(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b int
		want       uint32
	}{
		{"in range", 10, 20, 30, 40, 0x0a141e28},
		{"negative clamped to 0", -1, -500, 30, 40, 0x00001e28},
		{"oversized clamped to 255", 300, 256, 1000, 40, 0xffffff28},
		{"all low", -1, -1, -1, -1, 0x00000000},
		{"all high", 999, 999, 999, 999, 0xffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGBClamp(tt.a, tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ARGBClamp(%d, %d, %d, %d) = %#08x, want %#08x",
					tt.a, tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestRGB verifies that the RGB packers always produce full alpha.
func TestRGB(t *testing.T) {
	if got := RGB(0x40, 0x20, 0x10); got != 0xff402010 {
		t.Errorf("RGB(0x40, 0x20, 0x10) = %#08x, want 0xff402010", got)
	}
	if got := RGB(0x140, 0x120, 0x110); got != 0xff402010 {
		t.Errorf("RGB with oversized inputs = %#08x, want 0xff402010 (truncated)", got)
	}
	if got := RGBFast(0x40, 0x20, 0x10); got != 0xff402010 {
		t.Errorf("RGBFast(0x40, 0x20, 0x10) = %#08x, want 0xff402010", got)
	}
	if got := RGBClamp(-5, 300, 0x10); got != 0xff00ff10 {
		t.Errorf("RGBClamp(-5, 300, 0x10) = %#08x, want 0xff00ff10", got)
	}
}

// TestARGBNorm verifies scaling of normalized channel values.
func TestARGBNorm(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b float64
		want       uint32
	}{
		{"all zero", 0, 0, 0, 0, 0x00000000},
		{"all one", 1, 1, 1, 1, 0xffffffff},
		{"half truncates down", 1, 0.5, 0, 0, 0xff7f0000},
		{"mixed", 1, 0, 0.2, 1, 0xff0033ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ARGBNorm(tt.a, tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ARGBNorm(%v, %v, %v, %v) = %#08x, want %#08x",
					tt.a, tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}

	if got := RGBNorm(0.5, 0, 1); got != 0xff7f00ff {
		t.Errorf("RGBNorm(0.5, 0, 1) = %#08x, want 0xff7f00ff", got)
	}
}

// TestChannelExtractors verifies A, R, G, B round-trip with ARGB.
func TestChannelExtractors(t *testing.T) {
	c := ARGB(0x80, 0x40, 0x20, 0x10)

	if got := A(c); got != 0x80 {
		t.Errorf("A(%#08x) = %#x, want 0x80", c, got)
	}
	if got := R(c); got != 0x40 {
		t.Errorf("R(%#08x) = %#x, want 0x40", c, got)
	}
	if got := G(c); got != 0x20 {
		t.Errorf("G(%#08x) = %#x, want 0x20", c, got)
	}
	if got := B(c); got != 0x10 {
		t.Errorf("B(%#08x) = %#x, want 0x10", c, got)
	}

	// Round trip across all channel positions.
	for _, v := range []uint32{0, 1, 127, 128, 254, 255} {
		c := ARGB(v, v, v, v)
		if A(c) != v || R(c) != v || G(c) != v || B(c) != v {
			t.Errorf("round trip of %d: got (%d, %d, %d, %d)", v, A(c), R(c), G(c), B(c))
		}
	}
}

// TestChannelNorm verifies the normalized extractors.
func TestChannelNorm(t *testing.T) {
	if got := ANorm(0xff000000); got != 1 {
		t.Errorf("ANorm(0xff000000) = %v, want 1", got)
	}
	if got := ANorm(0); got != 0 {
		t.Errorf("ANorm(0) = %v, want 0", got)
	}

	c := ARGB(51, 102, 153, 204) // multiples of 51 = 255/5
	eps := 1e-12
	for name, tc := range map[string]struct{ got, want float64 }{
		"ANorm": {ANorm(c), 0.2},
		"RNorm": {RNorm(c), 0.4},
		"GNorm": {GNorm(c), 0.6},
		"BNorm": {BNorm(c), 0.8},
	} {
		if math.Abs(tc.got-tc.want) > eps {
			t.Errorf("%s(%#08x) = %v, want %v", name, c, tc.got, tc.want)
		}
	}
}

// TestCombineChannels verifies the general packer against the fixed
// ARGB layout and a non-byte channel width.
func TestCombineChannels(t *testing.T) {
	if got, want := CombineChannels(8, 0x80, 0x40, 0x20, 0x10), ARGBFast(0x80, 0x40, 0x20, 0x10); got != want {
		t.Errorf("CombineChannels(8, ...) = %#08x, want %#08x", got, want)
	}

	// 15-bit RGB with 5 bits per channel.
	got := CombineChannels(5, 0b11111, 0b00000, 0b10101)
	want := uint32(0b11111_00000_10101)
	if got != want {
		t.Errorf("CombineChannels(5, ...) = %#b, want %#b", got, want)
	}

	// No channels packs to zero.
	if got := CombineChannels(8); got != 0 {
		t.Errorf("CombineChannels(8) = %#x, want 0", got)
	}
}

// TestChannel verifies arbitrary-position extraction.
func TestChannel(t *testing.T) {
	c := uint32(0x80402010)

	if got := Channel(c, 24, 8); got != A(c) {
		t.Errorf("Channel(c, 24, 8) = %#x, want A(c) = %#x", got, A(c))
	}
	if got := Channel(c, 16, 8); got != R(c) {
		t.Errorf("Channel(c, 16, 8) = %#x, want R(c) = %#x", got, R(c))
	}
	if got := Channel(c, 8, 8); got != G(c) {
		t.Errorf("Channel(c, 8, 8) = %#x, want G(c) = %#x", got, G(c))
	}
	if got := Channel(c, 0, 8); got != B(c) {
		t.Errorf("Channel(c, 0, 8) = %#x, want B(c) = %#x", got, B(c))
	}

	// 15-bit RGB decomposition round-trips with CombineChannels.
	v := CombineChannels(5, 0b11010, 0b00110, 0b10001)
	if got := Channel(v, 10, 5); got != 0b11010 {
		t.Errorf("Channel(v, 10, 5) = %#b, want 0b11010", got)
	}
	if got := Channel(v, 5, 5); got != 0b00110 {
		t.Errorf("Channel(v, 5, 5) = %#b, want 0b00110", got)
	}
	if got := Channel(v, 0, 5); got != 0b10001 {
		t.Errorf("Channel(v, 0, 5) = %#b, want 0b10001", got)
	}
}

// TestGray verifies weighted averaging, including negative weights. The
// result is not clamped and the weight sum is not validated, so mixed signs
// can leave [0, 255] and a zero sum panics.
func TestGray(t *testing.T) {
	tests := []struct {
		name       string
		c          uint32
		rw, gw, bw int
		want       int
	}{
		{"equal weights average", RGB(30, 60, 90), 1, 1, 1, 60},
		{"red only", RGB(200, 60, 90), 1, 0, 0, 200},
		{"green only", RGB(200, 60, 90), 0, 1, 0, 60},
		{"blue only", RGB(200, 60, 90), 0, 0, 1, 90},
		{"negative weight difference", RGB(100, 50, 0), 2, -1, 0, 150},
		{"mixed signs exceed byte range", RGB(255, 0, 0), 2, -1, 0, 510},
		{"white", RGB(255, 255, 255), 3, 2, 1, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gray(tt.c, tt.rw, tt.gw, tt.bw); got != tt.want {
				t.Errorf("Gray(%#08x, %d, %d, %d) = %d, want %d",
					tt.c, tt.rw, tt.gw, tt.bw, got, tt.want)
			}
		})
	}

	t.Run("zero weight sum panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Gray() did not panic with weights summing to zero")
			}
		}()

		_ = Gray(RGB(10, 20, 30), 0, 0, 0)
	})
}

// TestLuminance verifies the BT.709 weighting.
func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    uint32
		want int
	}{
		{"black", RGB(0, 0, 0), 0},
		{"white", RGB(255, 255, 255), 255},
		{"pure red", RGB(255, 0, 0), 54},
		{"pure green", RGB(0, 255, 0), 182},
		{"pure blue", RGB(0, 0, 255), 18},
		{"alpha ignored", ARGB(0, 255, 255, 255), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.c); got != tt.want {
				t.Errorf("Luminance(%#08x) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}
