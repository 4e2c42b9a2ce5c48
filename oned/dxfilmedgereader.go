package oned

import (
	barscan "github.com/corvidlabs/barscan"
	"github.com/corvidlabs/barscan/bitutil"
)

// DX film edge codes are printed along the edge of 35mm film by the
// manufacturer (ISO 1007). A train of equally spaced full-height clock bars
// marks each bit position; a half-height data bar present between two clock
// bars is a 1 bit, its absence is a 0 bit. The first four data bits carry the
// DX manufacturer/film generation number, the next two carry the frame
// half-number; this reader reports both as a single numeric string
// "<generation>-<frame>".
const dxFilmEdgeBitCount = 6

// DXFilmEdgeReader decodes DX film edge barcodes.
type DXFilmEdgeReader struct{}

// NewDXFilmEdgeReader creates a new DX film edge reader.
func NewDXFilmEdgeReader() *DXFilmEdgeReader {
	return &DXFilmEdgeReader{}
}

// DecodeRow decodes a DX film edge barcode from a single row.
func (r *DXFilmEdgeReader) DecodeRow(rowNumber int, row *bitutil.BitArray, opts *barscan.DecodeOptions) (*barscan.Result, error) {
	clocks, err := dxFindClockBars(row)
	if err != nil {
		return nil, err
	}
	if len(clocks) < dxFilmEdgeBitCount+1 {
		return nil, barscan.ErrNotFound
	}

	bits := make([]bool, 0, dxFilmEdgeBitCount)
	for i := 0; i < dxFilmEdgeBitCount; i++ {
		mid := (clocks[i] + clocks[i+1]) / 2
		bits = append(bits, row.Get(mid))
	}

	generation := 0
	for i := 0; i < 4; i++ {
		generation <<= 1
		if bits[i] {
			generation |= 1
		}
	}
	frame := 0
	for i := 4; i < dxFilmEdgeBitCount; i++ {
		frame <<= 1
		if bits[i] {
			frame |= 1
		}
	}

	text := itoa(generation) + "-" + itoa(frame)
	res := barscan.NewResult(
		text, nil,
		[]barscan.ResultPoint{
			{X: float64(clocks[0]), Y: float64(rowNumber)},
			{X: float64(clocks[len(clocks)-1]), Y: float64(rowNumber)},
		},
		barscan.FormatDXFilmEdge,
	)
	return res, nil
}

// dxFindClockBars locates the evenly-spaced full-height clock bars along the
// row: runs of set bits whose distance from the previous accepted bar is
// between 0.5 and 1.5 times the spacing of the first pair found. Bar widths
// are not compared.
func dxFindClockBars(row *bitutil.BitArray) ([]int, error) {
	var bars []int
	i := row.GetNextSet(0)
	end := row.Size()
	for i < end {
		next := row.GetNextUnset(i)
		if next > end {
			next = end
		}
		bars = append(bars, (i+next)/2)
		i = row.GetNextSet(next)
	}
	if len(bars) < 2 {
		return nil, barscan.ErrNotFound
	}

	spacing := bars[1] - bars[0]
	if spacing <= 0 {
		return nil, barscan.ErrNotFound
	}
	clocks := []int{bars[0]}
	for i := 1; i < len(bars); i++ {
		delta := bars[i] - clocks[len(clocks)-1]
		ratio := float64(delta) / float64(spacing)
		if ratio > 0.5 && ratio < 1.5 {
			clocks = append(clocks, bars[i])
		}
	}
	return clocks, nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

var _ RowDecoder = (*DXFilmEdgeReader)(nil)
