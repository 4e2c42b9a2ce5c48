// Package aztec provides Aztec barcode reading and writing.
package aztec

import (
	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/aztec/decoder"
	"github.com/corvidlabs/barscan/aztec/detector"
)

// Reader decodes Aztec barcodes from binary images.
type Reader struct{}

// NewReader creates a new Aztec Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Decode locates and decodes an Aztec barcode in the given image.
func (r *Reader) Decode(image *barscan.BinaryBitmap, opts *barscan.DecodeOptions) (*barscan.Result, error) {
	matrix, err := image.BlackMatrix()
	if err != nil {
		return nil, err
	}

	detResult, err := detector.Detect(matrix, false)
	if err != nil {
		if err != barscan.ErrNotFound {
			return nil, err
		}
		detResult, err = detector.Detect(matrix, true)
		if err != nil {
			return nil, err
		}
	}

	// Convert detector result to decoder input.
	ddata := &decoder.AztecDetectorResult{
		Bits:         detResult.Bits,
		Points:       detResult.Points,
		Compact:      detResult.Compact,
		NbDataBlocks: detResult.NbDataBlocks,
		NbLayers:     detResult.NbLayers,
	}

	dr, err := decoder.Decode(ddata)
	if err != nil {
		return nil, err
	}

	result := barscan.NewResult(dr.Text, dr.RawBytes, detResult.Points, barscan.FormatAztec)
	result.PutMetadata(barscan.MetadataSymbologyIdentifier, "]z0")
	return result, nil
}

// Reset resets internal state.
func (r *Reader) Reset() {}

// Compile-time check.
var _ barscan.Reader = (*Reader)(nil)
