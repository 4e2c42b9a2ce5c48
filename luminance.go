package barscan

import (
	"errors"

	"github.com/corvidlabs/barscan/bitutil"
)

// ErrUnsupportedOperation is returned when a capability a LuminanceSource
// declines to implement (crop, rotate) is invoked anyway.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// LuminanceSource provides access to greyscale luminance values for an image.
// Pixel value 0 is darkest, 0xFF is brightest.
type LuminanceSource interface {
	// Row returns a row of luminance data. If row is non-nil and large enough,
	// it should be reused.
	Row(y int, row []byte) []byte

	// Column returns a column of luminance data, top to bottom.
	Column(x int, col []byte) []byte

	// Matrix returns the entire luminance matrix, row-major.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int

	// Invert returns a source with luminance inverted (255-v per pixel).
	Invert() LuminanceSource
}

// cropper is an optional LuminanceSource capability. Implementations that
// cannot crop simply do not implement it; callers detect this with a type
// assertion rather than a runtime error.
type cropper interface {
	Crop(left, top, width, height int) (LuminanceSource, error)
}

// rotator is an optional LuminanceSource capability for 1D readers that try
// reading a barcode oriented vertically or at 45 degrees.
type rotator interface {
	RotateCCW() (LuminanceSource, error)
	RotateCCW45() (LuminanceSource, error)
}

// Binarizer converts luminance data to 1-bit black/white data.
type Binarizer interface {
	// BlackRow returns a row of black/white values.
	BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error)

	// BlackMatrix returns the 2D matrix of black/white values.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// LuminanceSource returns the underlying LuminanceSource.
	LuminanceSource() LuminanceSource

	// WithSource returns a Binarizer of the same kind over a different source.
	// Used by BinaryBitmap.Crop/RotateCounterClockwise so callers never need a
	// type switch over concrete binarizer packages.
	WithSource(source LuminanceSource) Binarizer

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}
