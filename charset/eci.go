// Package charset provides character set ECI mappings and encoding detection.
package charset

import "errors"

// ErrFormatECI indicates an invalid ECI value.
var ErrFormatECI = errors.New("charset: invalid ECI value")

// ECI identifies a Character Set Extended Channel Interpretation: a
// numeric code a symbol can embed to declare the text encoding of the
// bytes that follow, plus the Go-side names that map onto it.
type ECI struct {
	Value      int
	extraValues []int // additional numeric codes that alias this ECI
	Name       string
	GoName     string // Go encoding name
	Aliases    []string
}

// pre-defined ECIs, keyed by symbol. Each also carries the alternate
// numeric codes and name spellings a symbol might use for it.
var (
	ECICp437      = &ECI{Value: 0, extraValues: []int{2}, Name: "Cp437", GoName: "IBM437"}
	ECIISO8859_1  = &ECI{Value: 1, extraValues: []int{3}, Name: "ISO8859_1", GoName: "ISO8859_1", Aliases: []string{"ISO-8859-1"}}
	ECIISO8859_2  = &ECI{Value: 4, Name: "ISO8859_2", GoName: "ISO8859_2", Aliases: []string{"ISO-8859-2"}}
	ECIISO8859_3  = &ECI{Value: 5, Name: "ISO8859_3", GoName: "ISO8859_3", Aliases: []string{"ISO-8859-3"}}
	ECIISO8859_4  = &ECI{Value: 6, Name: "ISO8859_4", GoName: "ISO8859_4", Aliases: []string{"ISO-8859-4"}}
	ECIISO8859_5  = &ECI{Value: 7, Name: "ISO8859_5", GoName: "ISO8859_5", Aliases: []string{"ISO-8859-5"}}
	ECIISO8859_6  = &ECI{Value: 8, Name: "ISO8859_6", GoName: "ISO8859_6", Aliases: []string{"ISO-8859-6"}}
	ECIISO8859_7  = &ECI{Value: 9, Name: "ISO8859_7", GoName: "ISO8859_7", Aliases: []string{"ISO-8859-7"}}
	ECIISO8859_8  = &ECI{Value: 10, Name: "ISO8859_8", GoName: "ISO8859_8", Aliases: []string{"ISO-8859-8"}}
	ECIISO8859_9  = &ECI{Value: 11, Name: "ISO8859_9", GoName: "ISO8859_9", Aliases: []string{"ISO-8859-9"}}
	ECIISO8859_10 = &ECI{Value: 12, Name: "ISO8859_10", GoName: "ISO8859_10", Aliases: []string{"ISO-8859-10"}}
	ECIISO8859_11 = &ECI{Value: 13, Name: "ISO8859_11", GoName: "ISO8859_11", Aliases: []string{"ISO-8859-11"}}
	ECIISO8859_13 = &ECI{Value: 15, Name: "ISO8859_13", GoName: "ISO8859_13", Aliases: []string{"ISO-8859-13"}}
	ECIISO8859_14 = &ECI{Value: 16, Name: "ISO8859_14", GoName: "ISO8859_14", Aliases: []string{"ISO-8859-14"}}
	ECIISO8859_15 = &ECI{Value: 17, Name: "ISO8859_15", GoName: "ISO8859_15", Aliases: []string{"ISO-8859-15"}}
	ECIISO8859_16 = &ECI{Value: 18, Name: "ISO8859_16", GoName: "ISO8859_16", Aliases: []string{"ISO-8859-16"}}
	ECISJIS       = &ECI{Value: 20, Name: "SJIS", GoName: "Shift_JIS", Aliases: []string{"Shift_JIS"}}
	ECICp1250     = &ECI{Value: 21, Name: "Cp1250", GoName: "Windows1250", Aliases: []string{"windows-1250"}}
	ECICp1251     = &ECI{Value: 22, Name: "Cp1251", GoName: "Windows1251", Aliases: []string{"windows-1251"}}
	ECICp1252     = &ECI{Value: 23, Name: "Cp1252", GoName: "Windows1252", Aliases: []string{"windows-1252"}}
	ECICp1256     = &ECI{Value: 24, Name: "Cp1256", GoName: "Windows1256", Aliases: []string{"windows-1256"}}
	ECIUTF16BE    = &ECI{Value: 25, Name: "UnicodeBigUnmarked", GoName: "UTF-16BE", Aliases: []string{"UTF-16BE", "UnicodeBig"}}
	ECIUTF8       = &ECI{Value: 26, Name: "UTF8", GoName: "UTF-8", Aliases: []string{"UTF-8"}}
	ECIASCII      = &ECI{Value: 27, extraValues: []int{170}, Name: "ASCII", GoName: "US-ASCII", Aliases: []string{"US-ASCII"}}
	ECIBig5       = &ECI{Value: 28, Name: "Big5", GoName: "Big5"}
	ECIGB18030    = &ECI{Value: 29, Name: "GB18030", GoName: "GB18030", Aliases: []string{"GB2312", "EUC_CN", "GBK"}}
	ECIEUC_KR     = &ECI{Value: 30, Name: "EUC_KR", GoName: "EUC-KR", Aliases: []string{"EUC-KR"}}

	allECIs = []*ECI{
		ECICp437, ECIISO8859_1, ECIISO8859_2, ECIISO8859_3, ECIISO8859_4,
		ECIISO8859_5, ECIISO8859_6, ECIISO8859_7, ECIISO8859_8, ECIISO8859_9,
		ECIISO8859_10, ECIISO8859_11, ECIISO8859_13, ECIISO8859_14,
		ECIISO8859_15, ECIISO8859_16, ECISJIS, ECICp1250, ECICp1251,
		ECICp1252, ECICp1256, ECIUTF16BE, ECIUTF8, ECIASCII, ECIBig5,
		ECIGB18030, ECIEUC_KR,
	}
)

var (
	valueToECI map[int]*ECI
	nameToECI  map[string]*ECI
)

func init() {
	valueToECI = make(map[int]*ECI, len(allECIs)*2)
	nameToECI = make(map[string]*ECI, len(allECIs)*3)

	for _, eci := range allECIs {
		valueToECI[eci.Value] = eci
		for _, v := range eci.extraValues {
			valueToECI[v] = eci
		}
		nameToECI[eci.Name] = eci
		nameToECI[eci.GoName] = eci
		for _, alias := range eci.Aliases {
			nameToECI[alias] = eci
		}
	}
}

// GetECIByValue returns the ECI for the given value, or an error if invalid.
func GetECIByValue(value int) (*ECI, error) {
	if value < 0 || value >= 900 {
		return nil, ErrFormatECI
	}
	return valueToECI[value], nil
}

// GetECIByName returns the ECI for the given encoding name.
func GetECIByName(name string) *ECI {
	return nameToECI[name]
}
