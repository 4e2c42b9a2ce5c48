package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/binarizer"
	"github.com/corvidlabs/barscan/multi"
	"github.com/corvidlabs/barscan/result"

	// Register all format readers.
	_ "github.com/corvidlabs/barscan/aztec"
	_ "github.com/corvidlabs/barscan/datamatrix"
	_ "github.com/corvidlabs/barscan/maxicode"
	_ "github.com/corvidlabs/barscan/oned"
	_ "github.com/corvidlabs/barscan/pdf417"
	_ "github.com/corvidlabs/barscan/qrcode"
)

func main() {
	tryHarder := flag.Bool("try-harder", false, "spend more time looking for barcodes")
	pure := flag.Bool("pure", false, "hint that the image is a clean barcode render with minimal border")
	multiFlag := flag.Bool("multi", false, "scan for more than one barcode per image")
	parse := flag.Bool("parse", false, "print the structured result parse alongside the raw text")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: barcodescan [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "Detect and decode barcodes in image files (PNG, JPEG, GIF).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		results, err := scanFile(path, *tryHarder, *pure, *multiFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			exitCode = 1
			continue
		}
		if len(results) == 0 {
			fmt.Fprintf(os.Stderr, "%s: no barcodes found\n", path)
			exitCode = 1
			continue
		}
		for _, r := range results {
			if flag.NArg() > 1 {
				fmt.Printf("%s: ", path)
			}
			fmt.Printf("[%s] %s\n", r.Format, r.Text)
			if *parse {
				if parsed := result.Parse(r); parsed != nil {
					fmt.Printf("  -> %s\n", parsed.DisplayResult())
				}
			}
		}
	}
	os.Exit(exitCode)
}

// allFormats lists every format to attempt.
var allFormats = []barscan.Format{
	barscan.FormatQRCode,
	barscan.FormatPDF417,
	barscan.FormatAztec,
	barscan.FormatDataMatrix,
	barscan.FormatMaxiCode,
	barscan.FormatCode128,
	barscan.FormatCode39,
	barscan.FormatCode93,
	barscan.FormatEAN13,
	barscan.FormatEAN8,
	barscan.FormatUPCA,
	barscan.FormatUPCE,
	barscan.FormatITF,
	barscan.FormatCodabar,
	barscan.FormatRSS14,
	barscan.FormatRSSExpanded,
	barscan.FormatTelepen,
	barscan.FormatDXFilmEdge,
}

func scanFile(path string, tryHarder, pure, multiBarcode bool) ([]*barscan.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	source := barscan.NewImageLuminanceSource(img)
	opts := &barscan.DecodeOptions{
		TryHarder:       tryHarder,
		PureBarcode:     pure,
		PossibleFormats: allFormats,
	}

	// Try GlobalHistogram binarizer first (fast, works well for clean images),
	// then fall back to Hybrid binarizer (local adaptive thresholding, better
	// for photographs with uneven lighting). This mirrors the Java ZXing
	// MultiFormatReader retry strategy.
	bitmaps := []*barscan.BinaryBitmap{
		barscan.NewBinaryBitmap(binarizer.NewGlobalHistogram(source)),
		barscan.NewBinaryBitmap(binarizer.NewHybrid(source)),
	}

	var results []*barscan.Result
	seen := map[string]bool{}

	for _, bitmap := range bitmaps {
		var found []*barscan.Result
		if multiBarcode {
			reader := multi.NewQuadrantMultipleBarcodeReader(barscan.NewMultiFormatReader())
			decoded, err := reader.DecodeMultiple(bitmap, opts)
			if err == nil {
				found = decoded
			}
		} else {
			decoded, err := tryDecode(bitmap, opts)
			if err == nil {
				found = []*barscan.Result{decoded}
			}
		}
		for _, decoded := range found {
			key := fmt.Sprintf("%s:%s", decoded.Format, decoded.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, decoded)
		}
	}

	return results, nil
}

// tryDecode calls barscan.Decode but recovers from panics that decoders may
// raise on malformed input, converting them to errors.
func tryDecode(bitmap *barscan.BinaryBitmap, opts *barscan.DecodeOptions) (result *barscan.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return barscan.Decode(bitmap, opts)
}
