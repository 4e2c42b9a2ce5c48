package barscan_test

import (
	"testing"

	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/binarizer"

	// Import format packages to trigger init() registration.
	_ "github.com/corvidlabs/barscan/oned"
	_ "github.com/corvidlabs/barscan/pdf417"
	_ "github.com/corvidlabs/barscan/qrcode"
)

func encodeAndDecode(t *testing.T, content string, format barscan.Format, width, height int) string {
	t.Helper()

	// Encode
	matrix, err := barscan.Encode(content, format, width, height, nil)
	if err != nil {
		t.Fatalf("Encode(%s, %s) failed: %v", content, format, err)
	}
	if matrix.Width() == 0 || matrix.Height() == 0 {
		t.Fatalf("encoded matrix is empty")
	}

	// Convert to image
	img := barscan.BitMatrixToImage(matrix)

	// Create binary bitmap via binarizer pipeline
	source := barscan.NewGrayImageLuminanceSource(img)
	bin := binarizer.NewGlobalHistogram(source)
	bitmap := barscan.NewBinaryBitmap(bin)

	// Decode - use PureBarcode since we're decoding from a clean render
	opts := &barscan.DecodeOptions{
		PossibleFormats: []barscan.Format{format},
		PureBarcode:     true,
	}
	result, err := barscan.Decode(bitmap, opts)
	if err != nil {
		t.Fatalf("Decode(%s) failed: %v", format, err)
	}

	return result.Text
}

func TestRoundTripQRCode(t *testing.T) {
	content := "Hello, World!"
	decoded := encodeAndDecode(t, content, barscan.FormatQRCode, 400, 400)
	if decoded != content {
		t.Errorf("QR round-trip: got %q, want %q", decoded, content)
	}
}

func TestRoundTripQRCodeNumeric(t *testing.T) {
	content := "1234567890"
	decoded := encodeAndDecode(t, content, barscan.FormatQRCode, 200, 200)
	if decoded != content {
		t.Errorf("QR numeric round-trip: got %q, want %q", decoded, content)
	}
}

func TestRoundTripCode128(t *testing.T) {
	content := "Hello123"
	decoded := encodeAndDecode(t, content, barscan.FormatCode128, 300, 100)
	if decoded != content {
		t.Errorf("Code128 round-trip: got %q, want %q", decoded, content)
	}
}

func TestRoundTripCode39(t *testing.T) {
	content := "HELLO"
	decoded := encodeAndDecode(t, content, barscan.FormatCode39, 300, 100)
	if decoded != content {
		t.Errorf("Code39 round-trip: got %q, want %q", decoded, content)
	}
}

func TestRoundTripEAN13(t *testing.T) {
	content := "5901234123457"
	decoded := encodeAndDecode(t, content, barscan.FormatEAN13, 500, 100)
	if decoded != content {
		t.Errorf("EAN-13 round-trip: got %q, want %q", decoded, content)
	}
}

func TestRoundTripEAN8(t *testing.T) {
	content := "96385074"
	decoded := encodeAndDecode(t, content, barscan.FormatEAN8, 300, 100)
	if decoded != content {
		t.Errorf("EAN-8 round-trip: got %q, want %q", decoded, content)
	}
}

func TestRoundTripUPCA(t *testing.T) {
	content := "012345678905"
	// UPC-A is encoded as EAN-13 with leading 0; the UPC-A reader strips that
	// 0 again, so the decoder returns the 12-digit UPC-A string.
	decoded := encodeAndDecode(t, content, barscan.FormatUPCA, 500, 100)
	expected := content // "012345678905"
	if decoded != expected {
		t.Errorf("UPC-A round-trip: got %q, want %q", decoded, expected)
	}
}

func TestRoundTripUPCE(t *testing.T) {
	content := "01234565"
	decoded := encodeAndDecode(t, content, barscan.FormatUPCE, 400, 100)
	if decoded != content {
		t.Errorf("UPC-E round-trip: got %q, want %q", decoded, content)
	}
}

func TestEncodeTopLevelAPI(t *testing.T) {
	// Test that the top-level Encode works for all writable formats
	formats := []struct {
		format  barscan.Format
		content string
		width   int
		height  int
	}{
		{barscan.FormatQRCode, "Test", 200, 200},
		{barscan.FormatPDF417, "Test", 400, 200},
		{barscan.FormatCode128, "Test", 300, 100},
		{barscan.FormatCode39, "TEST", 300, 100},
		{barscan.FormatEAN13, "5901234123457", 300, 100},
		{barscan.FormatEAN8, "96385074", 300, 100},
		{barscan.FormatUPCA, "012345678905", 300, 100},
		{barscan.FormatUPCE, "01234565", 300, 100},
	}
	for _, tc := range formats {
		t.Run(tc.format.String(), func(t *testing.T) {
			matrix, err := barscan.Encode(tc.content, tc.format, tc.width, tc.height, nil)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if matrix.Width() == 0 || matrix.Height() == 0 {
				t.Fatal("empty result")
			}
		})
	}
}

func TestMultiFormatReaderOrderedDispatch(t *testing.T) {
	// With PossibleFormats restricted to a single 1D and a single 2D format,
	// MultiFormatReader must still find the 2D barcode regardless of which
	// group (1D or 2D) runs first, since both are tried within one Decode call.
	content := "Hello, World!"
	matrix, err := barscan.Encode(content, barscan.FormatQRCode, 300, 300, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	img := barscan.BitMatrixToImage(matrix)
	source := barscan.NewGrayImageLuminanceSource(img)

	for _, tryHarder := range []bool{false, true} {
		bin := binarizer.NewGlobalHistogram(source)
		bitmap := barscan.NewBinaryBitmap(bin)
		reader := barscan.NewMultiFormatReader()
		opts := &barscan.DecodeOptions{
			PossibleFormats: []barscan.Format{barscan.FormatCode128, barscan.FormatQRCode},
			PureBarcode:     true,
			TryHarder:       tryHarder,
		}
		result, err := reader.Decode(bitmap, opts)
		if err != nil {
			t.Fatalf("Decode(TryHarder=%v) failed: %v", tryHarder, err)
		}
		if result.Text != content {
			t.Errorf("TryHarder=%v: got %q, want %q", tryHarder, result.Text, content)
		}
	}
}

func TestMultiFormatReaderAlsoInverted(t *testing.T) {
	content := "INVERTED"
	matrix, err := barscan.Encode(content, barscan.FormatQRCode, 300, 300, nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	matrix.FlipAll() // simulate a light-on-dark render
	img := barscan.BitMatrixToImage(matrix)
	source := barscan.NewGrayImageLuminanceSource(img)

	// Without AlsoInverted, the inverted render should not decode.
	bin := binarizer.NewGlobalHistogram(source)
	bitmap := barscan.NewBinaryBitmap(bin)
	reader := barscan.NewMultiFormatReader()
	opts := &barscan.DecodeOptions{
		PossibleFormats: []barscan.Format{barscan.FormatQRCode},
		PureBarcode:     true,
	}
	if _, err := reader.Decode(bitmap, opts); err == nil {
		t.Fatal("expected inverted render to fail without AlsoInverted")
	}

	// With AlsoInverted, the same reader should retry on the flipped matrix
	// and tag the result IsInverted.
	reader.Reset()
	opts.AlsoInverted = true
	result, err := reader.Decode(bitmap, opts)
	if err != nil {
		t.Fatalf("Decode with AlsoInverted failed: %v", err)
	}
	if result.Text != content {
		t.Errorf("got %q, want %q", result.Text, content)
	}
	if inverted, _ := result.Metadata[barscan.MetadataIsInverted].(bool); !inverted {
		t.Errorf("expected IsInverted metadata to be true")
	}
}

func TestImageLuminanceSource(t *testing.T) {
	// Encode a QR code, convert to image, verify luminance source properties
	matrix, err := barscan.Encode("test", barscan.FormatQRCode, 100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	img := barscan.BitMatrixToImage(matrix)
	source := barscan.NewGrayImageLuminanceSource(img)

	if source.Width() != img.Bounds().Dx() {
		t.Errorf("width: got %d, want %d", source.Width(), img.Bounds().Dx())
	}
	if source.Height() != img.Bounds().Dy() {
		t.Errorf("height: got %d, want %d", source.Height(), img.Bounds().Dy())
	}

	lum := source.Matrix()
	if len(lum) != source.Width()*source.Height() {
		t.Errorf("matrix length: got %d, want %d", len(lum), source.Width()*source.Height())
	}

	row := source.Row(0, nil)
	if len(row) != source.Width() {
		t.Errorf("row length: got %d, want %d", len(row), source.Width())
	}
}
