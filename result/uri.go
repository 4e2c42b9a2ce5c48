package result

import (
	"strings"

	barscan "github.com/corvidlabs/barscan"
)

// URIResult is a recognized URL or URI, optionally carrying a title supplied
// by a MEBKM bookmark wrapper.
type URIResult struct {
	URI   string
	Title string
}

func (u *URIResult) Type() Type { return TypeURI }
func (u *URIResult) DisplayResult() string {
	if u.Title != "" {
		return u.Title + "\n" + u.URI
	}
	return u.URI
}

// parseBookmark recognizes the DoCoMo "MEBKM:" bookmark wrapper, e.g.
// "MEBKM:TITLE:Example;URL:http\://example.com;;".
func parseBookmark(r *barscan.Result) Parsed {
	text := r.Text
	if !strings.HasPrefix(text, "MEBKM:") {
		return nil
	}
	title := matchSingleDoCoMoField("TITLE:", text)
	rawURI := matchDoCoMoField("URL:", text)
	if rawURI == "" {
		return nil
	}
	if !isBasicallyValidURI(rawURI) {
		return nil
	}
	return &URIResult{URI: rawURI, Title: title}
}

// parseURI recognizes a bare URI: a scheme-qualified string with no internal
// whitespace, or a bare "www."-prefixed host.
func parseURI(r *barscan.Result) Parsed {
	text := strings.TrimSpace(r.Text)
	if !isBasicallyValidURI(text) {
		return nil
	}
	if !strings.Contains(text, ":") && !strings.HasPrefix(text, "www.") {
		return nil
	}
	return &URIResult{URI: text}
}

// isBasicallyValidURI applies zxing's lightweight validity test: no interior
// whitespace, and either a recognizable "scheme:" prefix or a "www."/host
// with a dot before any path/query separator.
func isBasicallyValidURI(uri string) bool {
	if strings.ContainsAny(uri, " \t\r\n") {
		return false
	}
	colon := strings.Index(uri, ":")
	if colon > 0 {
		scheme := uri[:colon]
		for _, c := range scheme {
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.') {
				return false
			}
		}
		return true
	}
	return strings.HasPrefix(uri, "www.") && strings.Contains(uri, ".")
}

// matchDoCoMoField extracts the value following prefix up to the next
// unescaped ';', per the DoCoMo field convention ("\;" and "\\" are escaped).
func matchDoCoMoField(prefix, text string) string {
	idx := strings.Index(text, prefix)
	if idx < 0 {
		return ""
	}
	start := idx + len(prefix)
	var b strings.Builder
	for i := start; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			i++
			b.WriteByte(text[i])
			continue
		}
		if c == ';' {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

// matchSingleDoCoMoField is matchDoCoMoField but never returns an empty
// string for a missing field's presence being optional versus required; it
// exists as a separate name to mirror the distinction zxing draws between
// required and optional DoCoMo fields.
func matchSingleDoCoMoField(prefix, text string) string {
	return matchDoCoMoField(prefix, text)
}
