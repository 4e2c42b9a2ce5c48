package result

import (
	"fmt"
	"strings"

	barscan "github.com/corvidlabs/barscan"
)

// VINResult is a parsed Vehicle Identification Number, decoded from a
// Code 39-encoded 17-character string per the VIN weighted checksum and
// NHTSA WMI/model-year tables.
type VINResult struct {
	RawText       string
	WMI           string // World Manufacturer Identifier, chars 0-2
	VDS           string // Vehicle Descriptor Section, chars 3-8
	VIS           string // Vehicle Identifier Section, chars 9-16
	CountryCode   string
	VehicleAttrs  string // chars 3-7
	ModelYear     int
	PlantCode     byte
	SequentialNum string
}

func (v *VINResult) Type() Type { return TypeVIN }
func (v *VINResult) DisplayResult() string {
	return fmt.Sprintf("%s\n%s %d", v.RawText, v.CountryCode, v.ModelYear)
}

// parseVIN recognizes a Code 39 result whose text is a checksum-valid VIN.
func parseVIN(r *barscan.Result) Parsed {
	if r.Format != barscan.FormatCode39 {
		return nil
	}
	raw := strings.ToUpper(strings.TrimSpace(r.Text))
	raw = strings.NewReplacer("I", "", "O", "", "Q", "").Replace(raw)
	if len(raw) != 17 || !isAZ09(raw) {
		return nil
	}
	if !vinChecksumValid(raw) {
		return nil
	}
	year, ok := vinModelYear(raw[9])
	if !ok {
		return nil
	}
	return &VINResult{
		RawText:       raw,
		WMI:           raw[0:3],
		VDS:           raw[3:9],
		VIS:           raw[9:17],
		CountryCode:   vinCountryCode(raw[0:3]),
		VehicleAttrs:  raw[3:8],
		ModelYear:     year,
		PlantCode:     raw[10],
		SequentialNum: raw[11:],
	}
}

func isAZ09(s string) bool {
	for _, c := range s {
		if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

func vinChecksumValid(vin string) bool {
	sum := 0
	for i := 0; i < 17; i++ {
		v, ok := vinCharValue(vin[i])
		if !ok {
			return false
		}
		sum += vinPositionWeight(i+1) * v
	}
	expected, ok := vinCheckChar(sum % 11)
	if !ok {
		return false
	}
	return vin[8] == expected
}

func vinCharValue(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'I':
		return int(c-'A') + 1, true
	case c >= 'J' && c <= 'R':
		return int(c-'J') + 1, true
	case c >= 'S' && c <= 'Z':
		return int(c-'S') + 2, true
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	default:
		return 0, false
	}
}

func vinPositionWeight(position int) int {
	switch {
	case position >= 1 && position <= 7:
		return 9 - position
	case position == 8:
		return 10
	case position == 9:
		return 0
	case position >= 10 && position <= 17:
		return 19 - position
	default:
		return 0
	}
}

func vinCheckChar(remainder int) (byte, bool) {
	switch {
	case remainder >= 0 && remainder <= 9:
		return '0' + byte(remainder), true
	case remainder == 10:
		return 'X', true
	default:
		return 0, false
	}
}

func vinModelYear(c byte) (int, bool) {
	switch {
	case c >= 'E' && c <= 'H':
		return int(c-'E') + 1984, true
	case c >= 'J' && c <= 'N':
		return int(c-'J') + 1988, true
	case c == 'P':
		return 1993, true
	case c >= 'R' && c <= 'T':
		return int(c-'R') + 1994, true
	case c >= 'V' && c <= 'Y':
		return int(c-'V') + 1997, true
	case c >= '1' && c <= '9':
		return int(c-'1') + 2001, true
	case c >= 'A' && c <= 'D':
		return int(c-'A') + 2010, true
	default:
		return 0, false
	}
}

func vinCountryCode(wmi string) string {
	c1, c2 := wmi[0], wmi[1]
	switch {
	case c1 == '1' || c1 == '4' || c1 == '5':
		return "US"
	case c1 == '2':
		return "CA"
	case c1 == '3' && c2 >= 'A' && c2 <= 'W':
		return "MX"
	case c1 == '9' && ((c2 >= 'A' && c2 <= 'E') || (c2 >= '3' && c2 <= '9')):
		return "BR"
	case c1 == 'J' && c2 >= 'A' && c2 <= 'T':
		return "JP"
	case c1 == 'K' && c2 >= 'L' && c2 <= 'R':
		return "KO"
	case c1 == 'L':
		return "CN"
	case c1 == 'M' && c2 >= 'A' && c2 <= 'E':
		return "IN"
	case c1 == 'S' && c2 >= 'A' && c2 <= 'M':
		return "UK"
	case c1 == 'S' && c2 >= 'N' && c2 <= 'T':
		return "DE"
	case c1 == 'V' && c2 >= 'F' && c2 <= 'R':
		return "FR"
	case c1 == 'V' && c2 >= 'S' && c2 <= 'W':
		return "ES"
	case c1 == 'W':
		return "DE"
	case c1 == 'X' && (c2 == '0' || (c2 >= '3' && c2 <= '9')):
		return "RU"
	case c1 == 'Z' && c2 >= 'A' && c2 <= 'R':
		return "IT"
	default:
		return ""
	}
}
