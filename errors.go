package pix

import "errors"

// Common errors for pixmap operations.
var (
	// ErrInvalidDimensions is returned when a requested width or height is
	// negative, or when width*height overflows the int range.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrDimensionMismatch is returned when wrapping existing pixel data
	// whose length does not equal width*height.
	ErrDimensionMismatch = errors.New("pix: data length does not match dimensions")

	// ErrAreaBounds is returned when a rectangular area is empty or does not
	// lie entirely inside the pixmap it refers to.
	ErrAreaBounds = errors.New("pix: area not within pixmap bounds")
)
