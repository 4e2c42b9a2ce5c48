package oned

import (
	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/bitutil"
)

// Telepen encodes the full 7-bit ASCII range (or, in numeric mode, pairs of
// decimal digits) as a sequence of bars and spaces. Each data bit is one
// "narrow" run (bit 0) or one "wide" run, roughly twice the width (bit 1);
// runs alternate bar/space, so every character is exactly 8 runs whose total
// width depends on how many of its bits are 1. The decoder estimates a local
// module width per character rather than relying on a single global threshold.
//
// telepenStartChar and telepenStopChar bracket the payload; the last payload
// byte before the stop character is a checksum: (256 - sum(data)) mod 127.
const (
	telepenStartChar = 0x5F // '_'
	telepenStopChar  = 0x7A // 'z'
)

// TelepenReader decodes Telepen barcodes, either as full ASCII or, when
// configured via the TelepenAsNumeric hint, as pairs of decimal digits.
type TelepenReader struct {
	asNumeric bool
	counters  []int
}

// NewTelepenReader creates a new Telepen reader. asNumeric mirrors the
// TelepenAsNumeric decode hint.
func NewTelepenReader(asNumeric bool) *TelepenReader {
	return &TelepenReader{asNumeric: asNumeric, counters: make([]int, 0, 64)}
}

// DecodeRow decodes a Telepen barcode from a single row.
func (r *TelepenReader) DecodeRow(rowNumber int, row *bitutil.BitArray, opts *barscan.DecodeOptions) (*barscan.Result, error) {
	counters, err := telepenSetCounters(row)
	if err != nil {
		return nil, err
	}
	r.counters = counters

	pos := 1 // counters[0] is the leading quiet zone (white run)
	bytes := make([]byte, 0, 32)
	firstElement := pos
	lastElement := len(counters)

	for {
		b, consumed, ok := r.decodeCharacter(pos)
		if !ok {
			return nil, barscan.ErrNotFound
		}
		bytes = append(bytes, b)
		pos += consumed
		if b == telepenStopChar {
			lastElement = pos
			break
		}
		if pos >= len(counters) {
			return nil, barscan.ErrNotFound
		}
	}

	if len(bytes) < 3 || bytes[0] != telepenStartChar {
		return nil, barscan.ErrNotFound
	}
	payload := bytes[1 : len(bytes)-1] // strip start and stop
	if len(payload) == 0 {
		return nil, barscan.ErrNotFound
	}
	data := payload[:len(payload)-1]
	checksum := payload[len(payload)-1]

	sum := 0
	for _, b := range data {
		sum += int(b)
	}
	if byte((256-sum)%127) != checksum {
		return nil, barscan.ErrChecksum
	}

	text, err := telepenDecodeText(data, r.asNumeric)
	if err != nil {
		return nil, err
	}

	left := 0
	for i := 0; i < firstElement; i++ {
		left += counters[i]
	}
	right := left
	for i := firstElement; i < lastElement; i++ {
		right += counters[i]
	}

	res := barscan.NewResult(
		text, nil,
		[]barscan.ResultPoint{
			{X: float64(left), Y: float64(rowNumber)},
			{X: float64(right), Y: float64(rowNumber)},
		},
		barscan.FormatTelepen,
	)
	return res, nil
}

// decodeCharacter reads one Telepen byte (8 bits, LSB first, bit 7 is an even
// parity bit over bits 0-6) starting at counters[pos], which must be a bar.
// Returns the decoded byte, the number of counter slots consumed, and whether
// decoding succeeded.
func (r *TelepenReader) decodeCharacter(pos int) (byte, int, bool) {
	counters := r.counters
	// Estimate the narrow-element width from the character's own runs: a
	// character spans exactly 8 elements (one per bit), so take the smallest
	// of those 8 as the unit estimate.
	if pos+8 > len(counters) {
		return 0, 0, false
	}
	minWidth := counters[pos]
	for i := pos; i < pos+8 && i < len(counters); i++ {
		if counters[i] < minWidth {
			minWidth = counters[i]
		}
	}
	if minWidth <= 0 {
		return 0, 0, false
	}

	var value byte
	consumed := 0
	for bit := 0; bit < 8; bit++ {
		idx := pos + consumed
		if idx >= len(counters) {
			return 0, 0, false
		}
		width := counters[idx]
		ratio := float64(width) / float64(minWidth)
		switch {
		case ratio < 1.5:
			consumed++
		case ratio < 2.8:
			value |= 1 << uint(bit)
			consumed++
		default:
			return 0, 0, false
		}
	}

	parity := byte(0)
	for bit := 0; bit < 7; bit++ {
		parity ^= (value >> uint(bit)) & 1
	}
	if parity != (value>>7)&1 {
		return 0, 0, false
	}
	return value & 0x7F, consumed, true
}

// telepenSetCounters records alternating white/black run lengths, starting
// with white, mirroring the Codabar/Code39 run-length convention.
func telepenSetCounters(row *bitutil.BitArray) ([]int, error) {
	i := row.GetNextUnset(0)
	end := row.Size()
	if i >= end {
		return nil, barscan.ErrNotFound
	}
	counters := make([]int, 0, 64)
	isWhite := true
	count := 0
	for i < end {
		if row.Get(i) != isWhite {
			count++
		} else {
			counters = append(counters, count)
			count = 1
			isWhite = !isWhite
		}
		i++
	}
	counters = append(counters, count)
	return counters, nil
}

// telepenDecodeText converts decoded payload bytes to text, interpreting
// pairs of bytes as two decimal digits each when asNumeric is set.
func telepenDecodeText(data []byte, asNumeric bool) (string, error) {
	if !asNumeric {
		return string(data), nil
	}
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		if b > 99 {
			return "", barscan.ErrFormat
		}
		out = append(out, '0'+b/10, '0'+b%10)
	}
	return string(out), nil
}

var _ RowDecoder = (*TelepenReader)(nil)
