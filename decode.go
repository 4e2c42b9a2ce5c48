package barscan

// ResultPointCallback is invoked for every candidate point a detector
// considers, when NeedResultPointCallback is set. It is informational only;
// the pipeline does not change behavior based on the callback's return.
type ResultPointCallback func(point ResultPoint)

// DecodeOptions configures barcode decoding behavior. It is the Go expression
// of the reader "Hints" bag: every field is optional and a nil *DecodeOptions
// is equivalent to the zero value.
type DecodeOptions struct {
	// Other is an opaque passthrough value. The core never reads it; it
	// exists so a caller-supplied result parser (§4.10) can thread extra
	// context through a decode call.
	Other interface{}

	// PureBarcode hints that the image contains only the barcode with minimal
	// border and no rotation; detectors may skip the general finder search.
	PureBarcode bool

	// TryHarder enables spending more time looking for barcodes: more scan
	// rows, more rotations, and a different reader ordering (§4.9).
	TryHarder bool

	// PossibleFormats limits which formats to look for. Empty means "all".
	PossibleFormats []Format

	// CharacterSet specifies the fallback character set to use when decoding
	// a byte segment that carries no explicit ECI.
	CharacterSet string

	// AllowedLengths restricts the set of valid barcode lengths for certain
	// 1D formats (EAN/UPC extensions, RSS).
	AllowedLengths []int

	// AssumeCode39CheckDigit requires and strips a Code 39 mod-43 check digit.
	AssumeCode39CheckDigit bool

	// AssumeGS1 interprets FNC1 as a GS1 Application Identifier separator.
	AssumeGS1 bool

	// ReturnCodabarStartEnd includes the Codabar start/stop characters in the
	// decoded text instead of stripping them.
	ReturnCodabarStartEnd bool

	// NeedResultPointCallback, when set, is invoked for every result point a
	// detector considers, successful or not.
	NeedResultPointCallback ResultPointCallback

	// AllowedEANExtensions restricts which of {0, 2, 5} extension lengths are
	// accepted after a UPC/EAN symbol.
	AllowedEANExtensions []int

	// AlsoInverted retries the full reader sequence against a pixel-inverted
	// copy of the image if the first pass finds nothing.
	AlsoInverted bool

	// TelepenAsNumeric interprets Telepen payload bytes as pairs of decimal
	// digits rather than full ASCII.
	TelepenAsNumeric bool
}

// Reader decodes barcodes from a BinaryBitmap.
type Reader interface {
	// Decode attempts to decode a barcode from the image.
	Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error)

	// Reset resets any internal state.
	Reset()
}
