// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"errors"
	"fmt"
)

// SymbolShapeHint controls whether the encoder prefers square or rectangular symbols.
type SymbolShapeHint int

const (
	// ShapeHintForceNone allows either square or rectangular symbols.
	ShapeHintForceNone SymbolShapeHint = iota
	// ShapeHintForceSquare forces the encoder to choose a square symbol.
	ShapeHintForceSquare
	// ShapeHintForceRectangle forces the encoder to choose a rectangular symbol.
	ShapeHintForceRectangle
)

// SymbolInfo describes a single Data Matrix ECC-200 symbol size.
type SymbolInfo struct {
	Rectangular           bool
	DataCapacity          int // number of data codewords (sum across all interleaved blocks)
	ErrorCodewords        int // total number of EC codewords
	MatrixWidth           int // symbol width in modules (including finder patterns)
	MatrixHeight          int // symbol height in modules (including finder patterns)
	DataRegionSizeRows    int // number of data rows per data region
	DataRegionSizeColumns int // number of data columns per data region
	RSBlockData           int // data codewords per RS block (first block if two sizes)
	RSBlockError          int // EC codewords per RS block
	// For symbols with two differently-sized RS blocks (version 24: 144x144)
	RSBlockData2 int // data codewords per second-type block (0 if uniform)
	NumRSBlocks2 int // number of second-type blocks (0 if uniform)
}

// InterleavedBlockCount returns the total number of interleaved RS blocks.
func (si *SymbolInfo) InterleavedBlockCount() int {
	n := si.dataCodewordsPerBlock1Count()
	if si.RSBlockData2 > 0 {
		n += si.NumRSBlocks2
	}
	return n
}

// dataCodewordsPerBlock1Count returns the count of first-type RS blocks.
func (si *SymbolInfo) dataCodewordsPerBlock1Count() int {
	// For uniform blocks, the count is DataCapacity / RSBlockData
	if si.RSBlockData2 == 0 {
		return si.DataCapacity / si.RSBlockData
	}
	// For two-size blocks: total = count1*RSBlockData + NumRSBlocks2*RSBlockData2
	return (si.DataCapacity - si.NumRSBlocks2*si.RSBlockData2) / si.RSBlockData
}

// SymbolDataCapacity returns the data capacity after accounting for EC codewords.
func (si *SymbolInfo) SymbolDataCapacity() int {
	return si.DataCapacity
}

// TotalCodewords returns data + error correction codewords.
func (si *SymbolInfo) TotalCodewords() int {
	return si.DataCapacity + si.ErrorCodewords
}

// MappingMatrixRows returns the number of rows in the mapping matrix
// (symbol rows minus finder pattern rows: each data region has 2 extra rows).
func (si *SymbolInfo) MappingMatrixRows() int {
	return si.MatrixHeight - (si.MatrixHeight / (si.DataRegionSizeRows + 2)) * 2
}

// MappingMatrixColumns returns the number of columns in the mapping matrix.
func (si *SymbolInfo) MappingMatrixColumns() int {
	return si.MatrixWidth - (si.MatrixWidth / (si.DataRegionSizeColumns + 2)) * 2
}

// symbols is the full list of ECC-200 symbol sizes: the square sizes in order
// of data capacity, then the rectangular sizes in order of data capacity.
// Derived from ISO/IEC 16022 Table 7.
var symbols = []SymbolInfo{
	// Square symbols
	{Rectangular: false, DataCapacity: 3, ErrorCodewords: 5, MatrixWidth: 10, MatrixHeight: 10, DataRegionSizeRows: 8, DataRegionSizeColumns: 8, RSBlockData: 3, RSBlockError: 5},
	{Rectangular: false, DataCapacity: 5, ErrorCodewords: 7, MatrixWidth: 12, MatrixHeight: 12, DataRegionSizeRows: 10, DataRegionSizeColumns: 10, RSBlockData: 5, RSBlockError: 7},
	{Rectangular: false, DataCapacity: 8, ErrorCodewords: 10, MatrixWidth: 14, MatrixHeight: 14, DataRegionSizeRows: 12, DataRegionSizeColumns: 12, RSBlockData: 8, RSBlockError: 10},
	{Rectangular: false, DataCapacity: 12, ErrorCodewords: 12, MatrixWidth: 16, MatrixHeight: 16, DataRegionSizeRows: 14, DataRegionSizeColumns: 14, RSBlockData: 12, RSBlockError: 12},
	{Rectangular: false, DataCapacity: 18, ErrorCodewords: 14, MatrixWidth: 18, MatrixHeight: 18, DataRegionSizeRows: 16, DataRegionSizeColumns: 16, RSBlockData: 18, RSBlockError: 14},
	{Rectangular: false, DataCapacity: 22, ErrorCodewords: 18, MatrixWidth: 20, MatrixHeight: 20, DataRegionSizeRows: 18, DataRegionSizeColumns: 18, RSBlockData: 22, RSBlockError: 18},
	{Rectangular: false, DataCapacity: 30, ErrorCodewords: 20, MatrixWidth: 22, MatrixHeight: 22, DataRegionSizeRows: 20, DataRegionSizeColumns: 20, RSBlockData: 30, RSBlockError: 20},
	{Rectangular: false, DataCapacity: 36, ErrorCodewords: 24, MatrixWidth: 24, MatrixHeight: 24, DataRegionSizeRows: 22, DataRegionSizeColumns: 22, RSBlockData: 36, RSBlockError: 24},
	{Rectangular: false, DataCapacity: 44, ErrorCodewords: 28, MatrixWidth: 26, MatrixHeight: 26, DataRegionSizeRows: 24, DataRegionSizeColumns: 24, RSBlockData: 44, RSBlockError: 28},
	{Rectangular: false, DataCapacity: 62, ErrorCodewords: 36, MatrixWidth: 32, MatrixHeight: 32, DataRegionSizeRows: 14, DataRegionSizeColumns: 14, RSBlockData: 62, RSBlockError: 36},
	{Rectangular: false, DataCapacity: 86, ErrorCodewords: 42, MatrixWidth: 36, MatrixHeight: 36, DataRegionSizeRows: 16, DataRegionSizeColumns: 16, RSBlockData: 86, RSBlockError: 42},
	{Rectangular: false, DataCapacity: 114, ErrorCodewords: 48, MatrixWidth: 40, MatrixHeight: 40, DataRegionSizeRows: 18, DataRegionSizeColumns: 18, RSBlockData: 114, RSBlockError: 48},
	{Rectangular: false, DataCapacity: 144, ErrorCodewords: 56, MatrixWidth: 44, MatrixHeight: 44, DataRegionSizeRows: 20, DataRegionSizeColumns: 20, RSBlockData: 144, RSBlockError: 56},
	{Rectangular: false, DataCapacity: 174, ErrorCodewords: 68, MatrixWidth: 48, MatrixHeight: 48, DataRegionSizeRows: 22, DataRegionSizeColumns: 22, RSBlockData: 174, RSBlockError: 68},
	{Rectangular: false, DataCapacity: 204, ErrorCodewords: 84, MatrixWidth: 52, MatrixHeight: 52, DataRegionSizeRows: 24, DataRegionSizeColumns: 24, RSBlockData: 102, RSBlockError: 42},
	{Rectangular: false, DataCapacity: 280, ErrorCodewords: 112, MatrixWidth: 64, MatrixHeight: 64, DataRegionSizeRows: 14, DataRegionSizeColumns: 14, RSBlockData: 140, RSBlockError: 56},
	{Rectangular: false, DataCapacity: 368, ErrorCodewords: 144, MatrixWidth: 72, MatrixHeight: 72, DataRegionSizeRows: 16, DataRegionSizeColumns: 16, RSBlockData: 92, RSBlockError: 36},
	{Rectangular: false, DataCapacity: 456, ErrorCodewords: 192, MatrixWidth: 80, MatrixHeight: 80, DataRegionSizeRows: 18, DataRegionSizeColumns: 18, RSBlockData: 114, RSBlockError: 48},
	{Rectangular: false, DataCapacity: 576, ErrorCodewords: 224, MatrixWidth: 88, MatrixHeight: 88, DataRegionSizeRows: 20, DataRegionSizeColumns: 20, RSBlockData: 144, RSBlockError: 56},
	{Rectangular: false, DataCapacity: 696, ErrorCodewords: 272, MatrixWidth: 96, MatrixHeight: 96, DataRegionSizeRows: 22, DataRegionSizeColumns: 22, RSBlockData: 174, RSBlockError: 68},
	{Rectangular: false, DataCapacity: 816, ErrorCodewords: 336, MatrixWidth: 104, MatrixHeight: 104, DataRegionSizeRows: 24, DataRegionSizeColumns: 24, RSBlockData: 136, RSBlockError: 56},
	{Rectangular: false, DataCapacity: 1050, ErrorCodewords: 408, MatrixWidth: 120, MatrixHeight: 120, DataRegionSizeRows: 18, DataRegionSizeColumns: 18, RSBlockData: 175, RSBlockError: 68},
	{Rectangular: false, DataCapacity: 1304, ErrorCodewords: 496, MatrixWidth: 132, MatrixHeight: 132, DataRegionSizeRows: 20, DataRegionSizeColumns: 20, RSBlockData: 163, RSBlockError: 62},
	{Rectangular: false, DataCapacity: 1558, ErrorCodewords: 620, MatrixWidth: 144, MatrixHeight: 144, DataRegionSizeRows: 22, DataRegionSizeColumns: 22, RSBlockData: 156, RSBlockError: 62, RSBlockData2: 155, NumRSBlocks2: 2},

	// Rectangular symbols
	{Rectangular: true, DataCapacity: 5, ErrorCodewords: 7, MatrixWidth: 18, MatrixHeight: 8, DataRegionSizeRows: 6, DataRegionSizeColumns: 16, RSBlockData: 5, RSBlockError: 7},
	{Rectangular: true, DataCapacity: 10, ErrorCodewords: 11, MatrixWidth: 32, MatrixHeight: 8, DataRegionSizeRows: 6, DataRegionSizeColumns: 14, RSBlockData: 10, RSBlockError: 11},
	{Rectangular: true, DataCapacity: 16, ErrorCodewords: 14, MatrixWidth: 26, MatrixHeight: 12, DataRegionSizeRows: 10, DataRegionSizeColumns: 24, RSBlockData: 16, RSBlockError: 14},
	{Rectangular: true, DataCapacity: 22, ErrorCodewords: 18, MatrixWidth: 36, MatrixHeight: 12, DataRegionSizeRows: 10, DataRegionSizeColumns: 16, RSBlockData: 22, RSBlockError: 18},
	{Rectangular: true, DataCapacity: 32, ErrorCodewords: 24, MatrixWidth: 36, MatrixHeight: 16, DataRegionSizeRows: 14, DataRegionSizeColumns: 16, RSBlockData: 32, RSBlockError: 24},
	{Rectangular: true, DataCapacity: 49, ErrorCodewords: 28, MatrixWidth: 48, MatrixHeight: 16, DataRegionSizeRows: 14, DataRegionSizeColumns: 22, RSBlockData: 49, RSBlockError: 28},
}

// Lookup returns the first entry of symbols that can hold the given number of
// data codewords. shapeHint can be used to restrict the search to square or
// rectangular symbols; with ShapeHintForceNone the result is always a square
// symbol, since the square sizes come first and reach the largest capacity.
func Lookup(dataCodewords int, shapeHint SymbolShapeHint) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if shapeHint == ShapeHintForceSquare && si.Rectangular {
			continue
		}
		if shapeHint == ShapeHintForceRectangle && !si.Rectangular {
			continue
		}
		if si.DataCapacity >= dataCodewords {
			return si, nil
		}
	}
	return nil, fmt.Errorf("datamatrix/encoder: no symbol found for %d data codewords", dataCodewords)
}

// LookupBySize returns the SymbolInfo for a specific symbol matrix size.
func LookupBySize(matrixWidth, matrixHeight int) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.MatrixWidth == matrixWidth && si.MatrixHeight == matrixHeight {
			return si, nil
		}
	}
	return nil, errors.New("datamatrix/encoder: no symbol found for the given size")
}
