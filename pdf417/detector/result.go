// Package detector implements PDF417 barcode detection in binary images.
package detector

import (
	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/bitutil"
)

// PDF417DetectorResult encapsulates the results of detecting one or more
// PDF417 barcodes in an image.
type PDF417DetectorResult struct {
	Bits     *bitutil.BitMatrix
	Points   [][]*barscan.ResultPoint
	Rotation int
}
