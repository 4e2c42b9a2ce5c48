// Package internal holds the DecoderResult type shared by every
// symbology's bitstream decoder before it's wrapped into a public
// barscan.Result.
package internal

// unsetStructuredAppend marks a DecoderResult as carrying no structured
// append sequence.
const unsetStructuredAppend = -1

// DecoderResult is what a symbology decoder hands back after turning a
// sampled bit matrix into text: the raw payload bytes, the decoded text,
// any ECI-delimited byte segments, and whatever error-correction/
// structured-append bookkeeping that symbology tracks.
type DecoderResult struct {
	RawBytes                       []byte
	NumBits                        int
	Text                           string
	ByteSegments                   [][]byte
	ECLevel                        string
	ErrorsCorrected                int
	Erasures                       int
	Other                          interface{}
	StructuredAppendParity         int
	StructuredAppendSequenceNumber int
	SymbologyModifier              int
}

// NewDecoderResult builds a DecoderResult with no structured append info.
func NewDecoderResult(rawBytes []byte, text string, byteSegments [][]byte, ecLevel string) *DecoderResult {
	return NewDecoderResultFull(rawBytes, text, byteSegments, ecLevel, unsetStructuredAppend, unsetStructuredAppend, 0)
}

// NewDecoderResultFull builds a DecoderResult carrying structured append
// sequence/parity and a symbology modifier digit.
func NewDecoderResultFull(rawBytes []byte, text string, byteSegments [][]byte,
	ecLevel string, saSequence, saParity, symbologyModifier int) *DecoderResult {
	return &DecoderResult{
		RawBytes:                       rawBytes,
		NumBits:                        bitLength(rawBytes),
		Text:                           text,
		ByteSegments:                   byteSegments,
		ECLevel:                        ecLevel,
		StructuredAppendParity:         saParity,
		StructuredAppendSequenceNumber: saSequence,
		SymbologyModifier:              symbologyModifier,
	}
}

func bitLength(rawBytes []byte) int {
	return 8 * len(rawBytes)
}

// HasStructuredAppend reports whether this result carries a valid
// structured append sequence/parity pair.
func (d *DecoderResult) HasStructuredAppend() bool {
	return d.StructuredAppendParity >= 0 && d.StructuredAppendSequenceNumber >= 0
}
