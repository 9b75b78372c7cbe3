// Package pix provides a fast and easy to use pixel buffer for image
// processing in pure Go.
//
// # Overview
//
// pix stores an image as packed 32-bit ARGB values in a single slice and
// builds everything else on top of that one representation: cursor-based
// pixel access, sequential and parallel visitor traversal, boundary-aware
// sampling, bilinear interpolation and per-channel blending. It trades the
// generality of the standard image packages for directness; there is
// exactly one pixel format and no abstraction between the API and the
// backing memory.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	img, err := pix.Load("input.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Invert every pixel, keeping alpha.
//	img.ForEachParallel(func(c *pix.Cursor) {
//		c.SetRGBKeepAlpha(255-c.R(), 255-c.G(), 255-c.B())
//	})
//
//	img.SavePNG("output.png")
//
// # Pixel Format
//
// Every pixel value is non-premultiplied 32-bit ARGB: alpha occupies bits
// 24-31, red 16-23, green 8-15 and blue 0-7. 0xff00ff00 is opaque green,
// 0x80ff0000 half transparent red. The package level helpers (ARGB, RGB,
// A, R, G, B and friends) pack and unpack this layout in truncating,
// clamping and unchecked variants; CombineChannels and Channel handle
// layouts other than 8-bit ARGB.
//
// # Concurrency
//
// ForEachParallel and ForEachAreaParallel split the pixel range into
// partitions and run them fork/join style on a shared work-stealing worker
// pool. Every pixel is visited exactly once per traversal and each
// partition is visited in ascending order by a single worker; there is no
// ordering across partitions. SetWorkers configures the pool size.
//
// Everything else is safe for concurrent reads; writes require external
// synchronization.
//
// # Interop
//
// A Pixmap implements image.Image as a live, zero-copy view of its pixels,
// so it can be passed directly to image consumers such as the encoders.
// FromImage, Decode and Load convert from arbitrary image.Image values and
// the registered image codecs; NewPixmapFrom wraps existing pixel memory
// without copying.
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
