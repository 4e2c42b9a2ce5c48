package barscan

import "fmt"

// MultiFormatReader is a factory/dispatcher that selects appropriate Reader
// implementations based on format hints and "try harder" policy (§4.9):
//
//  1. If PossibleFormats is set, only those formats are tried; otherwise all
//     registered formats are tried.
//  2. If TryHarder is false, 1D readers run before 2D readers; if true, 2D
//     readers run first and the (slower) 1D pass runs last.
//  3. Within the 2D group, each of QR, Micro QR, Data Matrix, Aztec, PDF417,
//     and MaxiCode gets exactly one pass, in that fixed order.
//  4. If AlsoInverted is set and nothing matched, the black matrix is flipped
//     in place and the same ordered sequence is retried; a match picked up
//     this way is tagged IsInverted=true.
//  5. First success wins; if every reader fails, NotFound is surfaced.
type MultiFormatReader struct {
	readers []Reader
}

// NewMultiFormatReader creates a new multi-format reader.
func NewMultiFormatReader() *MultiFormatReader {
	return &MultiFormatReader{}
}

// Decode attempts to decode a barcode from the given image using all
// registered format readers, per the ordering rules in §4.9.
func (r *MultiFormatReader) Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error) {
	if r.readers == nil {
		r.readers = buildReaders(opts)
	}
	for _, reader := range r.readers {
		result, err := reader.Decode(image, opts)
		if err == nil {
			return result, nil
		}
	}
	if opts != nil && opts.AlsoInverted {
		matrix, err := image.BlackMatrix()
		if err == nil {
			matrix.FlipAll()
			defer matrix.FlipAll() // restore: the caller owns this BinaryBitmap
			for _, reader := range r.readers {
				result, err := reader.Decode(image, opts)
				if err == nil {
					result.PutMetadata(MetadataIsInverted, true)
					return result, nil
				}
			}
		}
	}
	return nil, ErrNotFound
}

// DecodeWithFormat attempts to decode a barcode of the given format.
func (r *MultiFormatReader) DecodeWithFormat(image *BinaryBitmap, format Format, opts *DecodeOptions) (*Result, error) {
	if opts == nil {
		opts = &DecodeOptions{}
	}
	opts.PossibleFormats = []Format{format}
	readers := buildReaders(opts)
	for _, reader := range readers {
		result, err := reader.Decode(image, opts)
		if err == nil {
			return result, nil
		}
	}
	return nil, fmt.Errorf("no barcode of format %s found: %w", format, ErrNotFound)
}

// Reset resets all internal readers.
func (r *MultiFormatReader) Reset() {
	for _, reader := range r.readers {
		reader.Reset()
	}
	r.readers = nil
}

// readerFactory is a function that creates a Reader. This is used as an
// extension point so format-specific packages can register themselves.
type readerFactory func(opts *DecodeOptions) Reader

var readerFactories = map[Format]readerFactory{}

// RegisterReader registers a reader factory for the given format. This should
// be called from an init() function in format-specific packages.
func RegisterReader(format Format, factory readerFactory) {
	readerFactories[format] = factory
}

// buildReaders creates readers in the deterministic order required by §4.9.
// Multiple one-D formats share a single MultiFormatOneDReader instance, so
// the factory is invoked at most once per "slot" (the 1D slot, or each
// distinct 2D format).
func buildReaders(opts *DecodeOptions) []Reader {
	wanted := formatFilter(opts)

	var oneD, twoD []Reader
	oneDAdded := false

	for _, f := range oneDFormats {
		if !wanted(f) {
			continue
		}
		if !oneDAdded {
			if factory, ok := readerFactories[f]; ok {
				oneD = append(oneD, factory(opts))
			}
			oneDAdded = true
		}
	}

	for _, f := range twoDFormats {
		if !wanted(f) {
			continue
		}
		if factory, ok := readerFactories[f]; ok {
			twoD = append(twoD, factory(opts))
		}
	}

	if opts != nil && opts.TryHarder {
		return append(twoD, oneD...)
	}
	return append(oneD, twoD...)
}

// formatFilter returns a predicate selecting which formats buildReaders
// should instantiate. An empty PossibleFormats list means "every format with
// a registered reader".
func formatFilter(opts *DecodeOptions) func(Format) bool {
	if opts == nil || len(opts.PossibleFormats) == 0 {
		return func(Format) bool { return true }
	}
	allowed := make(map[Format]bool, len(opts.PossibleFormats))
	for _, f := range opts.PossibleFormats {
		allowed[f] = true
	}
	return func(f Format) bool { return allowed[f] }
}
