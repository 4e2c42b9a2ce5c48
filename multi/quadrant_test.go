package multi_test

import (
	"image"
	"image/color"
	"testing"

	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/binarizer"
	"github.com/corvidlabs/barscan/multi"
)

// stubReader returns a fixed result whenever the bitmap it's handed has a
// black top-left pixel, and NotFound otherwise. This exercises the quadrant
// partitioning and dedup logic without needing a real barcode image.
type stubReader struct {
	text   string
	format barscan.Format
}

func (s *stubReader) Decode(img *barscan.BinaryBitmap, opts *barscan.DecodeOptions) (*barscan.Result, error) {
	matrix, err := img.BlackMatrix()
	if err != nil {
		return nil, err
	}
	if !matrix.Get(0, 0) {
		return nil, barscan.ErrNotFound
	}
	return barscan.NewResult(s.text, nil, []barscan.ResultPoint{{X: 0, Y: 0}}, s.format), nil
}

func (s *stubReader) Reset() {}

// blackCornerBitmap builds a width x height image whose left half is black
// and right half is white, a strong enough bimodal histogram for the global
// binarizer to threshold reliably. The top-left pixel of any crop starting
// in the left half comes out black.
func blackCornerBitmap(t *testing.T, width, height int) *barscan.BinaryBitmap {
	t.Helper()
	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := byte(0xFF)
			if x < width/2 {
				v = 0x00
			}
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}
	source := barscan.NewGrayImageLuminanceSource(gray)
	return barscan.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))
}

func TestQuadrantDecodeMultipleFindsCornerMatch(t *testing.T) {
	bitmap := blackCornerBitmap(t, 200, 200)
	reader := multi.NewQuadrantMultipleBarcodeReader(&stubReader{text: "HELLO", format: barscan.FormatQRCode})

	results, err := reader.DecodeMultiple(bitmap, nil)
	if err != nil {
		t.Fatalf("DecodeMultiple: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	for _, r := range results {
		if r.Text != "HELLO" {
			t.Errorf("Text = %q, want HELLO", r.Text)
		}
	}
}

func TestQuadrantDecodeMultipleDedupes(t *testing.T) {
	// The top-left and center quadrants overlap near the origin when the
	// image is small, so the same marked pixel can be picked up by more
	// than one quadrant; results must be deduped by format+text.
	bitmap := blackCornerBitmap(t, 50, 50)
	reader := multi.NewQuadrantMultipleBarcodeReader(&stubReader{text: "DUP", format: barscan.FormatQRCode})

	results, err := reader.DecodeMultiple(bitmap, nil)
	if err != nil {
		t.Fatalf("DecodeMultiple: %v", err)
	}
	seen := map[string]bool{}
	for _, r := range results {
		key := r.Format.String() + ":" + r.Text
		if seen[key] {
			t.Fatalf("duplicate result for key %q", key)
		}
		seen[key] = true
	}
}

func TestQuadrantDecodeMultipleNotFound(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 100, 100))
	for i := range gray.Pix {
		gray.Pix[i] = 0xFF
	}
	source := barscan.NewGrayImageLuminanceSource(gray)
	bitmap := barscan.NewBinaryBitmap(binarizer.NewGlobalHistogram(source))

	reader := multi.NewQuadrantMultipleBarcodeReader(&stubReader{text: "X", format: barscan.FormatQRCode})
	if _, err := reader.DecodeMultiple(bitmap, nil); err != barscan.ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
