package pix

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// testNRGBA builds a small image with a deterministic pixel pattern
// covering opaque and semi-transparent pixels.
func testNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 40),
				G: uint8(y * 30),
				B: uint8((x + y) * 20),
				A: uint8(255 - x*y),
			})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	img := testNRGBA(4, 3)

	p := FromImage(img)

	if p.Width() != 4 || p.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", p.Width(), p.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := img.NRGBAAt(x, y)
			want := ARGB(uint32(c.A), uint32(c.R), uint32(c.G), uint32(c.B))
			if got := p.Value(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Images whose bounds do not start at the origin map to pixmap (0, 0).
	img := image.NewNRGBA(image.Rect(5, 3, 8, 5))
	img.SetNRGBA(5, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(7, 4, color.NRGBA{R: 40, G: 50, B: 60, A: 255})

	p := FromImage(img)

	if p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", p.Width(), p.Height())
	}
	if got := p.Value(0, 0); got != ARGB(255, 10, 20, 30) {
		t.Errorf("pixel (0, 0) = %#08x, want %#08x", got, ARGB(255, 10, 20, 30))
	}
	if got := p.Value(2, 1); got != ARGB(255, 40, 50, 60) {
		t.Errorf("pixel (2, 1) = %#08x, want %#08x", got, ARGB(255, 40, 50, 60))
	}
}

func TestFromImage_ConvertsColorModels(t *testing.T) {
	// A grayscale source goes through the usual color conversion.
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 100})
	img.SetGray(1, 0, color.Gray{Y: 200})

	p := FromImage(img)

	if got := p.Value(0, 0); got != RGB(100, 100, 100) {
		t.Errorf("pixel (0, 0) = %#08x, want %#08x", got, RGB(100, 100, 100))
	}
	if got := p.Value(1, 0); got != RGB(200, 200, 200) {
		t.Errorf("pixel (1, 0) = %#08x, want %#08x", got, RGB(200, 200, 200))
	}
}

func TestDecode_PNG(t *testing.T) {
	img := testNRGBA(6, 4)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() = %v", err)
	}

	p, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}

	if p.Width() != 6 || p.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 6x4", p.Width(), p.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			c := img.NRGBAAt(x, y)
			want := ARGB(uint32(c.A), uint32(c.R), uint32(c.G), uint32(c.B))
			if got := p.Value(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not an image")))
	if err == nil {
		t.Fatal("Decode() = nil error for garbage input")
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("Decode() = %v, want wrapped image.ErrFormat", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if err == nil {
		t.Fatal("Load() = nil error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	p, _ := NewPixmap(5, 5)
	for i := range p.Data() {
		p.Data()[i] = ARGB(uint32(255-i), uint32(i*9), uint32(i*5), uint32(i*3))
	}

	var buf bytes.Buffer
	if err := p.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}

	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if back.Width() != p.Width() || back.Height() != p.Height() {
		t.Fatalf("dimensions = %dx%d, want %dx%d",
			back.Width(), back.Height(), p.Width(), p.Height())
	}
	for i := range p.Data() {
		if back.Data()[i] != p.Data()[i] {
			t.Fatalf("pixel %d = %#08x, want %#08x (PNG is lossless)",
				i, back.Data()[i], p.Data()[i])
		}
	}
}

func TestSavePNG_LoadRoundTrip(t *testing.T) {
	p, _ := NewPixmap(8, 6)
	for i := range p.Data() {
		p.Data()[i] = ARGB(uint32(i*4+7), uint32(i*11), uint32(i*13), uint32(i*17))
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	for i := range p.Data() {
		if back.Data()[i] != p.Data()[i] {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, back.Data()[i], p.Data()[i])
		}
	}
}
