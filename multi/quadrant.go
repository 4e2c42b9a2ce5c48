package multi

import (
	barscan "github.com/corvidlabs/barscan"
)

// quadrantOverlap is the fraction of each dimension a quadrant crop extends
// past the image's half-way point, so a barcode straddling the boundary
// between two quadrants still falls entirely within at least one of them.
const quadrantOverlap = 0.1

// QuadrantMultipleBarcodeReader locates multiple barcodes in a single image
// by partitioning it into five overlapping regions, four corners plus a
// center quadrant sized and positioned the same way, and running a
// single-barcode delegate on each. Matches are translated back to the
// original image's coordinate space and deduplicated by payload text plus
// format, since the same symbol can be picked up by more than one
// overlapping quadrant.
type QuadrantMultipleBarcodeReader struct {
	delegate barscan.Reader
}

// NewQuadrantMultipleBarcodeReader creates a reader that delegates each
// quadrant's decode attempt to delegate.
func NewQuadrantMultipleBarcodeReader(delegate barscan.Reader) *QuadrantMultipleBarcodeReader {
	return &QuadrantMultipleBarcodeReader{delegate: delegate}
}

type quadrant struct {
	left, top, width, height int
}

func (r *QuadrantMultipleBarcodeReader) quadrants(width, height int) []quadrant {
	halfW := width / 2
	halfH := height / 2
	overW := int(float64(width) * quadrantOverlap)
	overH := int(float64(height) * quadrantOverlap)

	qw := halfW + overW
	qh := halfH + overH
	if qw > width {
		qw = width
	}
	if qh > height {
		qh = height
	}

	centerLeft := (width - qw) / 2
	centerTop := (height - qh) / 2

	return []quadrant{
		{0, 0, qw, qh},                    // top-left
		{width - qw, 0, qw, qh},           // top-right
		{0, height - qh, qw, qh},          // bottom-left
		{width - qw, height - qh, qw, qh}, // bottom-right
		{centerLeft, centerTop, qw, qh},   // center
	}
}

// DecodeMultiple attempts to decode all barcodes present across the image's
// five quadrants.
func (r *QuadrantMultipleBarcodeReader) DecodeMultiple(image *barscan.BinaryBitmap, opts *barscan.DecodeOptions) ([]*barscan.Result, error) {
	width, height := image.Width(), image.Height()

	type found struct {
		key    string
		result *barscan.Result
	}
	var results []found

	tryQuadrant := func(q quadrant) {
		if q.width <= 0 || q.height <= 0 {
			return
		}
		cropped := image
		if !(q.left == 0 && q.top == 0 && q.width == width && q.height == height) {
			cropped = image.Crop(q.left, q.top, q.width, q.height)
			if cropped == nil {
				return
			}
		}
		result, err := r.delegate.Decode(cropped, opts)
		if err != nil {
			return
		}
		translated := translateResultPoints(result, q.left, q.top)
		key := translated.Format.String() + "\x00" + translated.Text
		for _, existing := range results {
			if existing.key == key {
				return
			}
		}
		results = append(results, found{key: key, result: translated})
	}

	for _, q := range r.quadrants(width, height) {
		tryQuadrant(q)
	}

	if len(results) == 0 {
		return nil, barscan.ErrNotFound
	}
	out := make([]*barscan.Result, len(results))
	for i, f := range results {
		out[i] = f.result
	}
	return out, nil
}
