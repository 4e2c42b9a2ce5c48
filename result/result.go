// Package result turns a decoded barcode Result into a typed ParsedResult,
// inspecting the text prefix and the symbology it came from (§4.10). Parsers
// are tried in a fixed order; the first match wins. A nil return is not an
// error — it means none of the registered parsers recognized the text.
package result

import (
	barscan "github.com/corvidlabs/barscan"
)

// Type identifies which kind of ParsedResult a Parse call produced.
type Type int

const (
	TypeText Type = iota
	TypeURI
	TypeAddressBook
	TypeEmailAddress
	TypeProduct
	TypeExpandedProduct
	TypeGeo
	TypeTel
	TypeSMS
	TypeCalendar
	TypeWifi
	TypeISBN
	TypeVIN
)

// Parsed is a typed, normalized view of a decoded barcode payload.
type Parsed interface {
	// Type reports which concrete kind this value holds.
	Type() Type

	// DisplayResult renders a human-readable summary of the parsed fields.
	DisplayResult() string
}

// parseFunc attempts to recognize result's text as one particular kind of
// structured payload; it returns nil if the text doesn't match.
type parseFunc func(r *barscan.Result) Parsed

// order mirrors zxing's ResultParser.PARSERS: more specific prefixes first,
// falling back to plain text last.
var order = []parseFunc{
	parseVIN,
	parseBookmark,
	parseAddressBook,
	parseEmailAddress,
	parseGeo,
	parseTel,
	parseSMS,
	parseCalendar,
	parseWifi,
	parseExpandedProduct,
	parseISBN,
	parseProduct,
	parseURI,
}

// Parse runs every registered parser over r in order and returns the first
// match, or nil if r's text isn't recognized as any structured format — in
// which case the caller should treat it as plain text.
func Parse(r *barscan.Result) Parsed {
	if r == nil {
		return nil
	}
	for _, p := range order {
		if parsed := p(r); parsed != nil {
			return parsed
		}
	}
	return nil
}

// TextResult is the fallback: plain, unstructured text.
type TextResult struct {
	Text string
}

func (t *TextResult) Type() Type            { return TypeText }
func (t *TextResult) DisplayResult() string { return t.Text }
