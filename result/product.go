package result

import (
	"regexp"
	"strconv"
	"strings"

	barscan "github.com/corvidlabs/barscan"
)

// ProductResult is a recognized UPC/EAN product code.
type ProductResult struct {
	RawText             string
	NormalizedProductID string
}

func (p *ProductResult) Type() Type            { return TypeProduct }
func (p *ProductResult) DisplayResult() string { return p.NormalizedProductID }

var productFormats = map[barscan.Format]bool{
	barscan.FormatUPCA: true,
	barscan.FormatUPCE: true,
	barscan.FormatEAN8: true,
	barscan.FormatEAN13: true,
}

// parseProduct recognizes plain UPC/EAN symbologies and normalizes UPC-E to
// its 12-digit UPC-A form.
func parseProduct(r *barscan.Result) Parsed {
	if !productFormats[r.Format] {
		return nil
	}
	text := r.Text
	for _, c := range text {
		if c < '0' || c > '9' {
			return nil
		}
	}
	normalized := text
	if r.Format == barscan.FormatUPCE {
		if expanded, ok := expandUPCE(text); ok {
			normalized = expanded
		}
	}
	return &ProductResult{RawText: text, NormalizedProductID: normalized}
}

// expandUPCE expands a 6 or 8-digit UPC-E string into its 12-digit UPC-A
// equivalent, following the standard zero-suppression rules keyed on the
// last digit of the compressed form.
func expandUPCE(upce string) (string, bool) {
	digits := upce
	if len(digits) == 8 {
		digits = digits[1:7]
	} else if len(digits) != 6 {
		return "", false
	}
	lastChar := digits[5]
	var middle string
	switch lastChar {
	case '0', '1', '2':
		middle = digits[2:3] + string(lastChar) + "0000" + digits[3:5]
	case '3':
		middle = digits[2:4] + "00000" + digits[4:5]
	case '4':
		middle = digits[2:5] + "00000"
	default:
		middle = digits[2:5] + "0000" + string(lastChar)
	}
	expanded := digits[0:2] + middle
	sum := 0
	for i, c := range expanded {
		d := int(c - '0')
		if i%2 == 0 {
			sum += d * 3
		} else {
			sum += d
		}
	}
	check := (10 - sum%10) % 10
	return expanded + strconv.Itoa(check), true
}

// ISBNResult is a recognized ISBN-13, derived from an EAN-13 symbol whose
// GS1 prefix is 978 or 979 (the Bookland range).
type ISBNResult struct {
	ISBN string
}

func (i *ISBNResult) Type() Type            { return TypeISBN }
func (i *ISBNResult) DisplayResult() string { return i.ISBN }

// parseISBN recognizes an EAN-13 symbol in the Bookland (978/979) prefix
// range as an ISBN.
func parseISBN(r *barscan.Result) Parsed {
	if r.Format != barscan.FormatEAN13 {
		return nil
	}
	text := r.Text
	if len(text) != 13 {
		return nil
	}
	if !strings.HasPrefix(text, "978") && !strings.HasPrefix(text, "979") {
		return nil
	}
	return &ISBNResult{ISBN: text}
}

// ExpandedProductResult is a GS1 Application Identifier payload decoded from
// an RSS-Expanded (or Data Matrix/QR carrying GS1 data) symbol, per the AI
// field table: fixed keys for the common logistics/product fields plus an
// overflow map for AIs this parser doesn't specifically recognize.
type ExpandedProductResult struct {
	RawText         string
	ProductID       string
	SSCC            string
	LotNumber       string
	ProductionDate  string
	PackagingDate   string
	BestBeforeDate  string
	ExpirationDate  string
	Weight          string
	WeightType      string
	WeightIncrement string
	Price           string
	PriceIncrement  string
	PriceCurrency   string
	UncommonAIs     map[string]string
}

func (e *ExpandedProductResult) Type() Type { return TypeExpandedProduct }
func (e *ExpandedProductResult) DisplayResult() string {
	var b strings.Builder
	if e.ProductID != "" {
		b.WriteString(e.ProductID)
	}
	if e.Weight != "" {
		b.WriteString(" ")
		b.WriteString(e.Weight)
	}
	if e.Price != "" {
		b.WriteString(" ")
		b.WriteString(e.PriceCurrency)
		b.WriteString(e.Price)
	}
	return b.String()
}

const (
	weightKilogram = "KG"
	weightPound    = "LB"
)

var aiFieldRE = regexp.MustCompile(`\((\d{2,4})\)([^(]*)`)

// parseExpandedProduct recognizes text already in the "(AI)value(AI)value"
// bracketed form that parseFieldsInGeneralPurpose produces when decoding a
// GS1-flagged RSS-Expanded symbol.
func parseExpandedProduct(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.HasPrefix(text, "(") {
		return nil
	}
	matches := aiFieldRE.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	res := &ExpandedProductResult{RawText: text, UncommonAIs: make(map[string]string)}
	for _, m := range matches {
		ai, value := m[1], m[2]
		switch ai {
		case "01":
			res.ProductID = value
		case "00":
			res.SSCC = value
		case "10":
			res.LotNumber = value
		case "11":
			res.ProductionDate = value
		case "13":
			res.PackagingDate = value
		case "15":
			res.BestBeforeDate = value
		case "17":
			res.ExpirationDate = value
		case "3100", "3101", "3102", "3103", "3104", "3105", "3106", "3107", "3108", "3109":
			res.Weight = value
			res.WeightType = weightKilogram
			res.WeightIncrement = ai[len(ai)-1:]
		case "3200", "3201", "3202", "3203", "3204", "3205", "3206", "3207", "3208", "3209":
			res.Weight = value
			res.WeightType = weightPound
			res.WeightIncrement = ai[len(ai)-1:]
		case "3920", "3921", "3922", "3923":
			res.Price = value
		case "3930", "3931", "3932", "3933":
			if len(value) >= 3 {
				res.PriceCurrency = value[:3]
				res.Price = value[3:]
			}
		default:
			res.UncommonAIs[ai] = value
		}
	}
	return res
}
