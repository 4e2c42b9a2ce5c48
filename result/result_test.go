package result_test

import (
	"testing"

	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/result"
)

func TestParseVIN(t *testing.T) {
	r := barscan.NewResult("1M8GDM9AXKP042788", nil, nil, barscan.FormatCode39)
	parsed := result.Parse(r)
	vin, ok := parsed.(*result.VINResult)
	if !ok {
		t.Fatalf("expected *result.VINResult, got %T", parsed)
	}
	if vin.CountryCode != "US" {
		t.Errorf("country code = %q, want US", vin.CountryCode)
	}
	if vin.ModelYear != 1989 {
		t.Errorf("model year = %d, want 1989", vin.ModelYear)
	}
}

func TestParseVINRejectsSwaps(t *testing.T) {
	base := "1M8GDM9AXKP042788"
	rejected, total := 0, 0
	alphabet := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for i := range base {
		for _, c := range alphabet {
			if byte(c) == base[i] {
				continue
			}
			total++
			swapped := base[:i] + string(c) + base[i+1:]
			r := barscan.NewResult(swapped, nil, nil, barscan.FormatCode39)
			if _, ok := result.Parse(r).(*result.VINResult); !ok {
				rejected++
			}
		}
	}
	rate := float64(rejected) / float64(total)
	if rate < 0.95 {
		t.Errorf("rejection rate = %.3f, want >= 0.95", rate)
	}
}

func TestParseVINWrongFormat(t *testing.T) {
	r := barscan.NewResult("1M8GDM9AXKP042788", nil, nil, barscan.FormatQRCode)
	if _, ok := result.Parse(r).(*result.VINResult); ok {
		t.Errorf("VIN should not match a non-Code39 format")
	}
}

func TestParseBookmark(t *testing.T) {
	r := barscan.NewResult(`MEBKM:TITLE:Example;URL:http\://example.com;;`, nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	uri, ok := parsed.(*result.URIResult)
	if !ok {
		t.Fatalf("expected *result.URIResult, got %T", parsed)
	}
	if uri.URI != "http://example.com" {
		t.Errorf("URI = %q", uri.URI)
	}
	if uri.Title != "Example" {
		t.Errorf("Title = %q", uri.Title)
	}
}

func TestParseBareURI(t *testing.T) {
	r := barscan.NewResult("https://example.com/path", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	uri, ok := parsed.(*result.URIResult)
	if !ok {
		t.Fatalf("expected *result.URIResult, got %T", parsed)
	}
	if uri.URI != "https://example.com/path" {
		t.Errorf("URI = %q", uri.URI)
	}
}

func TestParseAddressBook(t *testing.T) {
	r := barscan.NewResult("MECARD:N:Doe,John;TEL:5551234;EMAIL:j@example.com;;", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	ab, ok := parsed.(*result.AddressBookResult)
	if !ok {
		t.Fatalf("expected *result.AddressBookResult, got %T", parsed)
	}
	if len(ab.Names) != 1 || ab.Names[0] != "Doe John" {
		t.Errorf("Names = %v", ab.Names)
	}
	if len(ab.Phones) != 1 || ab.Phones[0] != "5551234" {
		t.Errorf("Phones = %v", ab.Phones)
	}
}

func TestParseMailto(t *testing.T) {
	r := barscan.NewResult("mailto:j@example.com?subject=Hi", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	e, ok := parsed.(*result.EmailAddressResult)
	if !ok {
		t.Fatalf("expected *result.EmailAddressResult, got %T", parsed)
	}
	if len(e.To) != 1 || e.To[0] != "j@example.com" {
		t.Errorf("To = %v", e.To)
	}
	if e.Subject != "Hi" {
		t.Errorf("Subject = %q", e.Subject)
	}
}

func TestParseGeo(t *testing.T) {
	r := barscan.NewResult("geo:37.786971,-122.399677", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	geo, ok := parsed.(*result.GeoResult)
	if !ok {
		t.Fatalf("expected *result.GeoResult, got %T", parsed)
	}
	if geo.Latitude != 37.786971 || geo.Longitude != -122.399677 {
		t.Errorf("lat/lon = %v,%v", geo.Latitude, geo.Longitude)
	}
}

func TestParseTel(t *testing.T) {
	r := barscan.NewResult("tel:+15551234567", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	tel, ok := parsed.(*result.TelResult)
	if !ok {
		t.Fatalf("expected *result.TelResult, got %T", parsed)
	}
	if tel.Number != "+15551234567" {
		t.Errorf("Number = %q", tel.Number)
	}
}

func TestParseSMS(t *testing.T) {
	r := barscan.NewResult("smsto:5551234:hello", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	sms, ok := parsed.(*result.SMSResult)
	if !ok {
		t.Fatalf("expected *result.SMSResult, got %T", parsed)
	}
	if sms.Number != "5551234" || sms.Body != "hello" {
		t.Errorf("Number/Body = %q/%q", sms.Number, sms.Body)
	}
}

func TestParseCalendar(t *testing.T) {
	text := "BEGIN:VEVENT\nSUMMARY:Meeting\nDTSTART:20260801T090000Z\nDTEND:20260801T100000Z\nEND:VEVENT"
	r := barscan.NewResult(text, nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	cal, ok := parsed.(*result.CalendarResult)
	if !ok {
		t.Fatalf("expected *result.CalendarResult, got %T", parsed)
	}
	if cal.Summary != "Meeting" {
		t.Errorf("Summary = %q", cal.Summary)
	}
}

func TestParseWifi(t *testing.T) {
	r := barscan.NewResult("WIFI:S:MyNetwork;T:WPA;P:secret123;;", nil, nil, barscan.FormatQRCode)
	parsed := result.Parse(r)
	wifi, ok := parsed.(*result.WifiResult)
	if !ok {
		t.Fatalf("expected *result.WifiResult, got %T", parsed)
	}
	if wifi.SSID != "MyNetwork" || wifi.Password != "secret123" {
		t.Errorf("SSID/Password = %q/%q", wifi.SSID, wifi.Password)
	}
}

func TestParseProduct(t *testing.T) {
	r := barscan.NewResult("012345678905", nil, nil, barscan.FormatUPCA)
	parsed := result.Parse(r)
	p, ok := parsed.(*result.ProductResult)
	if !ok {
		t.Fatalf("expected *result.ProductResult, got %T", parsed)
	}
	if p.NormalizedProductID != "012345678905" {
		t.Errorf("NormalizedProductID = %q", p.NormalizedProductID)
	}
}

func TestParseISBN(t *testing.T) {
	r := barscan.NewResult("9780306406157", nil, nil, barscan.FormatEAN13)
	parsed := result.Parse(r)
	isbn, ok := parsed.(*result.ISBNResult)
	if !ok {
		t.Fatalf("expected *result.ISBNResult, got %T", parsed)
	}
	if isbn.ISBN != "9780306406157" {
		t.Errorf("ISBN = %q", isbn.ISBN)
	}
}

func TestParseExpandedProduct(t *testing.T) {
	r := barscan.NewResult("(01)00012345678905(10)ABC123(3102)000150", nil, nil, barscan.FormatRSSExpanded)
	parsed := result.Parse(r)
	ep, ok := parsed.(*result.ExpandedProductResult)
	if !ok {
		t.Fatalf("expected *result.ExpandedProductResult, got %T", parsed)
	}
	if ep.ProductID != "00012345678905" {
		t.Errorf("ProductID = %q", ep.ProductID)
	}
	if ep.LotNumber != "ABC123" {
		t.Errorf("LotNumber = %q", ep.LotNumber)
	}
	if ep.Weight != "000150" || ep.WeightType != "KG" {
		t.Errorf("Weight/WeightType = %q/%q", ep.Weight, ep.WeightType)
	}
}

func TestParseFallsBackToText(t *testing.T) {
	r := barscan.NewResult("just some plain text", nil, nil, barscan.FormatQRCode)
	if parsed := result.Parse(r); parsed != nil {
		t.Errorf("expected nil for unrecognized text, got %T", parsed)
	}
}
