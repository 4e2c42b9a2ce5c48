// Package barscan is a pure Go port of the ZXing barcode library.
package barscan

import (
	"math"
	"time"

	"github.com/corvidlabs/barscan/bitutil"
)

// Format represents a barcode format.
type Format int

const (
	FormatQRCode Format = iota
	FormatMicroQRCode
	FormatPDF417
	FormatCode128
	FormatCode39
	FormatCode93
	FormatEAN13
	FormatEAN8
	FormatUPCA
	FormatUPCE
	FormatUPCEANExtension
	FormatITF
	FormatCodabar
	FormatDataMatrix
	FormatAztec
	FormatMaxiCode
	FormatRSS14
	FormatRSSExpanded
	FormatTelepen
	FormatDXFilmEdge
)

// String returns the name of the barcode format.
func (f Format) String() string {
	switch f {
	case FormatQRCode:
		return "QR_CODE"
	case FormatMicroQRCode:
		return "MICRO_QR_CODE"
	case FormatPDF417:
		return "PDF_417"
	case FormatCode128:
		return "CODE_128"
	case FormatCode39:
		return "CODE_39"
	case FormatCode93:
		return "CODE_93"
	case FormatEAN13:
		return "EAN_13"
	case FormatEAN8:
		return "EAN_8"
	case FormatUPCA:
		return "UPC_A"
	case FormatUPCE:
		return "UPC_E"
	case FormatUPCEANExtension:
		return "UPC_EAN_EXTENSION"
	case FormatITF:
		return "ITF"
	case FormatCodabar:
		return "CODABAR"
	case FormatDataMatrix:
		return "DATA_MATRIX"
	case FormatAztec:
		return "AZTEC"
	case FormatMaxiCode:
		return "MAXICODE"
	case FormatRSS14:
		return "RSS_14"
	case FormatRSSExpanded:
		return "RSS_EXPANDED"
	case FormatTelepen:
		return "TELEPEN"
	case FormatDXFilmEdge:
		return "DX_FILM_EDGE"
	default:
		return "UNKNOWN"
	}
}

// oneDFormats lists every format handled by a row-walking 1D reader. The
// multi-format 1D reader in package oned tries its readers in its own order,
// not in the order of this list.
var oneDFormats = []Format{
	FormatCode128,
	FormatCode39,
	FormatCode93,
	FormatEAN13,
	FormatEAN8,
	FormatUPCA,
	FormatUPCE,
	FormatITF,
	FormatCodabar,
	FormatRSS14,
	FormatRSSExpanded,
	FormatTelepen,
	FormatDXFilmEdge,
}

// twoDFormats lists every format handled by a perspective-detector reader, in
// the order each gets its one pass per §4.9.
var twoDFormats = []Format{
	FormatQRCode,
	FormatMicroQRCode,
	FormatDataMatrix,
	FormatAztec,
	FormatPDF417,
	FormatMaxiCode,
}

// Is1D reports whether f is decoded by a row-walking 1D reader rather than a
// 2D perspective detector.
func (f Format) Is1D() bool {
	for _, o := range oneDFormats {
		if o == f {
			return true
		}
	}
	return false
}

// ResultMetadataKey identifies a type of metadata about a barcode result.
type ResultMetadataKey int

const (
	MetadataOther ResultMetadataKey = iota
	MetadataOrientation
	MetadataByteSegments
	MetadataErrorCorrectionLevel
	MetadataErrorsCorrected
	MetadataErasuresCorrected
	MetadataIssueNumber
	MetadataSuggestedPrice
	MetadataPossibleCountry
	MetadataUPCEANExtension
	MetadataPDF417ExtraMetadata
	MetadataStructuredAppendSequence
	MetadataStructuredAppendParity
	MetadataSymbologyIdentifier
	MetadataIsMirrored
	MetadataContentType
	MetadataIsInverted
	MetadataFilteredClosed
	MetadataFilteredResolution
)

// ResultPoint represents a point of interest in an image.
type ResultPoint struct {
	X, Y float64
}

// Distance returns the distance between two points.
func Distance(a, b ResultPoint) float64 {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))
}

// CrossProductZ computes the z component of the cross product between vectors
// (bX-aX, bY-aY) and (cX-aX, cY-aY).
func CrossProductZ(a, b, c ResultPoint) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// OrderBestPatterns orders three points as pointA, pointB, pointC, where
// pointA is the point opposite the longest side (BC is the largest distance)
// and pointB and pointC are ordered so that CrossProductZ(A, B, C) >= 0.
func OrderBestPatterns(patterns [3]ResultPoint) [3]ResultPoint {
	d01 := Distance(patterns[0], patterns[1])
	d12 := Distance(patterns[1], patterns[2])
	d02 := Distance(patterns[0], patterns[2])

	var pointA, pointB, pointC ResultPoint
	if d12 >= d01 && d12 >= d02 {
		pointA = patterns[0]
		pointB = patterns[1]
		pointC = patterns[2]
	} else if d02 >= d01 && d02 >= d12 {
		pointA = patterns[1]
		pointB = patterns[0]
		pointC = patterns[2]
	} else {
		pointA = patterns[2]
		pointB = patterns[0]
		pointC = patterns[1]
	}

	// Use cross product to determine if pointB and pointC should be swapped
	if CrossProductZ(pointA, pointB, pointC) < 0 {
		pointB, pointC = pointC, pointB
	}

	return [3]ResultPoint{pointA, pointB, pointC}
}

// Result encapsulates the result of decoding a barcode.
type Result struct {
	Text      string
	RawBytes  []byte
	NumBits   int
	Points    []ResultPoint
	Format    Format
	Metadata  map[ResultMetadataKey]interface{}
	Timestamp time.Time
}

// NewResult creates a new Result with the given text, format, and points.
func NewResult(text string, rawBytes []byte, points []ResultPoint, format Format) *Result {
	numBits := 0
	if rawBytes != nil {
		numBits = 8 * len(rawBytes)
	}
	return &Result{
		Text:      text,
		RawBytes:  rawBytes,
		NumBits:   numBits,
		Points:    points,
		Format:    format,
		Metadata:  make(map[ResultMetadataKey]interface{}),
		Timestamp: time.Now(),
	}
}

// PutMetadata adds a metadata key/value pair.
func (r *Result) PutMetadata(key ResultMetadataKey, value interface{}) {
	r.Metadata[key] = value
}

// AddResultPoints appends additional result points.
func (r *Result) AddResultPoints(points []ResultPoint) {
	r.Points = append(r.Points, points...)
}

// BinaryBitmap represents a bitmap of binary (black/white) values.
type BinaryBitmap struct {
	binarizer Binarizer
	matrix    *bitutil.BitMatrix
}

// NewBinaryBitmap creates a new BinaryBitmap from the given Binarizer.
func NewBinaryBitmap(binarizer Binarizer) *BinaryBitmap {
	return &BinaryBitmap{binarizer: binarizer}
}

// Width returns the width of the bitmap.
func (b *BinaryBitmap) Width() int {
	return b.binarizer.Width()
}

// Height returns the height of the bitmap.
func (b *BinaryBitmap) Height() int {
	return b.binarizer.Height()
}

// BlackRow returns a row of black/white values.
func (b *BinaryBitmap) BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error) {
	return b.binarizer.BlackRow(y, row)
}

// IsCropSupported reports whether the underlying source can be cropped.
func (b *BinaryBitmap) IsCropSupported() bool {
	_, ok := b.binarizer.LuminanceSource().(cropper)
	return ok
}

// Crop returns a new BinaryBitmap restricted to the given rectangle of the
// underlying source, reusing the same kind of Binarizer. Returns nil if
// cropping is unsupported or the rectangle is degenerate.
func (b *BinaryBitmap) Crop(left, top, width, height int) *BinaryBitmap {
	c, ok := b.binarizer.LuminanceSource().(cropper)
	if !ok || width <= 0 || height <= 0 {
		return nil
	}
	cropped, err := c.Crop(left, top, width, height)
	if err != nil {
		return nil
	}
	return NewBinaryBitmap(b.binarizer.WithSource(cropped))
}

// IsRotateSupported reports whether the underlying source can be rotated.
func (b *BinaryBitmap) IsRotateSupported() bool {
	_, ok := b.binarizer.LuminanceSource().(rotator)
	return ok
}

// RotateCounterClockwise returns a new BinaryBitmap rotated 90 degrees
// counterclockwise, or nil if rotation is unsupported.
func (b *BinaryBitmap) RotateCounterClockwise() *BinaryBitmap {
	rot, ok := b.binarizer.LuminanceSource().(rotator)
	if !ok {
		return nil
	}
	rotated, err := rot.RotateCCW()
	if err != nil {
		return nil
	}
	return NewBinaryBitmap(b.binarizer.WithSource(rotated))
}

// BlackMatrix returns the 2D matrix of black/white values.
func (b *BinaryBitmap) BlackMatrix() (*bitutil.BitMatrix, error) {
	if b.matrix != nil {
		return b.matrix, nil
	}
	m, err := b.binarizer.BlackMatrix()
	if err != nil {
		return nil, err
	}
	b.matrix = m
	return m, nil
}
