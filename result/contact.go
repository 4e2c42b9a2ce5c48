package result

import (
	"strconv"
	"strings"

	barscan "github.com/corvidlabs/barscan"
)

// AddressBookResult is a recognized MECARD or vCard contact record.
type AddressBookResult struct {
	Names      []string
	Phones     []string
	Emails     []string
	Addresses  []string
	Org        string
	Note       string
}

func (a *AddressBookResult) Type() Type { return TypeAddressBook }
func (a *AddressBookResult) DisplayResult() string {
	var parts []string
	parts = append(parts, a.Names...)
	parts = append(parts, a.Phones...)
	parts = append(parts, a.Emails...)
	return strings.Join(parts, "\n")
}

// parseAddressBook recognizes the DoCoMo "MECARD:" contact format, e.g.
// "MECARD:N:Doe,John;TEL:5551234;EMAIL:j@example.com;;".
func parseAddressBook(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.HasPrefix(text, "MECARD:") {
		return nil
	}
	res := &AddressBookResult{}
	if n := matchDoCoMoField("N:", text); n != "" {
		res.Names = append(res.Names, strings.ReplaceAll(n, ",", " "))
	}
	for _, tel := range matchDoCoMoFields("TEL:", text) {
		res.Phones = append(res.Phones, tel)
	}
	for _, email := range matchDoCoMoFields("EMAIL:", text) {
		res.Emails = append(res.Emails, email)
	}
	if adr := matchDoCoMoField("ADR:", text); adr != "" {
		res.Addresses = append(res.Addresses, adr)
	}
	res.Org = matchDoCoMoField("ORG:", text)
	res.Note = matchDoCoMoField("NOTE:", text)
	if len(res.Names) == 0 && len(res.Phones) == 0 && len(res.Emails) == 0 {
		return nil
	}
	return res
}

// matchDoCoMoFields returns every occurrence of a repeatable DoCoMo field
// (TEL and EMAIL may appear more than once in a single MECARD record).
func matchDoCoMoFields(prefix, text string) []string {
	var out []string
	rest := text
	for {
		idx := strings.Index(rest, prefix)
		if idx < 0 {
			break
		}
		rest = rest[idx:]
		val := matchDoCoMoField(prefix, rest)
		out = append(out, val)
		rest = rest[len(prefix):]
		if next := strings.Index(rest, ";"); next >= 0 {
			rest = rest[next+1:]
		} else {
			break
		}
	}
	return out
}

// EmailAddressResult is a recognized mailto: URI or MATMSG payload.
type EmailAddressResult struct {
	To      []string
	Subject string
	Body    string
}

func (e *EmailAddressResult) Type() Type { return TypeEmailAddress }
func (e *EmailAddressResult) DisplayResult() string {
	var b strings.Builder
	b.WriteString(strings.Join(e.To, ";"))
	if e.Subject != "" {
		b.WriteString("\n")
		b.WriteString(e.Subject)
	}
	if e.Body != "" {
		b.WriteString("\n")
		b.WriteString(e.Body)
	}
	return b.String()
}

// parseEmailAddress recognizes "mailto:", a bare address, and the DoCoMo
// "MATMSG:" message-composition format.
func parseEmailAddress(r *barscan.Result) Parsed {
	text := r.Text
	switch {
	case strings.HasPrefix(text, "mailto:") || strings.HasPrefix(text, "MAILTO:"):
		rest := text[len("mailto:"):]
		addr, query, _ := strings.Cut(rest, "?")
		res := &EmailAddressResult{To: []string{addr}}
		for _, kv := range strings.Split(query, "&") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				continue
			}
			switch strings.ToLower(k) {
			case "subject":
				res.Subject = v
			case "body":
				res.Body = v
			}
		}
		return res
	case strings.HasPrefix(text, "MATMSG:"):
		to := matchDoCoMoField("TO:", text)
		if to == "" {
			return nil
		}
		return &EmailAddressResult{
			To:      []string{to},
			Subject: matchDoCoMoField("SUB:", text),
			Body:    matchDoCoMoField("BODY:", text),
		}
	case isBasicEmailAddress(text):
		return &EmailAddressResult{To: []string{text}}
	}
	return nil
}

func isBasicEmailAddress(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}

// TelResult is a recognized "tel:" URI.
type TelResult struct {
	Number string
}

func (t *TelResult) Type() Type            { return TypeTel }
func (t *TelResult) DisplayResult() string { return t.Number }

func parseTel(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.HasPrefix(text, "tel:") && !strings.HasPrefix(text, "TEL:") {
		return nil
	}
	number := text[len("tel:"):]
	if number == "" {
		return nil
	}
	return &TelResult{Number: number}
}

// SMSResult is a recognized "sms:" or "smsto:" URI.
type SMSResult struct {
	Number string
	Body   string
}

func (s *SMSResult) Type() Type            { return TypeSMS }
func (s *SMSResult) DisplayResult() string { return s.Number }

func parseSMS(r *barscan.Result) Parsed {
	text := r.Text
	var rest string
	switch {
	case strings.HasPrefix(text, "sms:"):
		rest = text[len("sms:"):]
	case strings.HasPrefix(text, "smsto:"):
		rest = text[len("smsto:"):]
	default:
		return nil
	}
	number, body, _ := strings.Cut(rest, ":")
	if number == "" {
		return nil
	}
	return &SMSResult{Number: number, Body: body}
}

// GeoResult is a recognized "geo:" URI.
type GeoResult struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

func (g *GeoResult) Type() Type { return TypeGeo }
func (g *GeoResult) DisplayResult() string {
	return strconv.FormatFloat(g.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(g.Longitude, 'f', -1, 64)
}

func parseGeo(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.HasPrefix(text, "geo:") {
		return nil
	}
	coords, _, _ := strings.Cut(text[len("geo:"):], "?")
	parts := strings.Split(coords, ",")
	if len(parts) < 2 {
		return nil
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil
	}
	res := &GeoResult{Latitude: lat, Longitude: lon}
	if len(parts) >= 3 {
		if alt, err := strconv.ParseFloat(parts[2], 64); err == nil {
			res.Altitude = alt
		}
	}
	return res
}

// CalendarResult is a recognized iCalendar VEVENT payload.
type CalendarResult struct {
	Summary  string
	Start    string
	End      string
	Location string
}

func (c *CalendarResult) Type() Type            { return TypeCalendar }
func (c *CalendarResult) DisplayResult() string { return c.Summary }

func parseCalendar(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.Contains(text, "BEGIN:VEVENT") {
		return nil
	}
	res := &CalendarResult{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.ToUpper(strings.SplitN(key, ";", 2)[0]) {
		case "SUMMARY":
			res.Summary = val
		case "DTSTART":
			res.Start = val
		case "DTEND":
			res.End = val
		case "LOCATION":
			res.Location = val
		}
	}
	if res.Summary == "" && res.Start == "" {
		return nil
	}
	return res
}

// WifiResult is a recognized "WIFI:" network-join payload.
type WifiResult struct {
	SSID       string
	Password   string
	Encryption string
	Hidden     bool
}

func (w *WifiResult) Type() Type            { return TypeWifi }
func (w *WifiResult) DisplayResult() string { return w.SSID }

func parseWifi(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.HasPrefix(text, "WIFI:") {
		return nil
	}
	ssid := matchDoCoMoField("S:", text)
	if ssid == "" {
		return nil
	}
	return &WifiResult{
		SSID:       ssid,
		Password:   matchDoCoMoField("P:", text),
		Encryption: matchDoCoMoField("T:", text),
		Hidden:     matchDoCoMoField("H:", text) == "true",
	}
}
