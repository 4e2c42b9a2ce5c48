// Package reedsolomon implements Reed-Solomon error correction over the
// binary Galois fields used by the various barcode symbologies: each
// symbology picks its own field width and primitive polynomial, but the
// encode/decode math is identical once the field is built.
package reedsolomon

import "fmt"

// GenericGF is a binary Galois field GF(2^m), represented by its primitive
// polynomial and a pair of exp/log tables used to turn multiplication and
// division into table-indexed addition and subtraction.
type GenericGF struct {
	name          string
	expTable      []int
	logTable      []int
	invTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
}

// Pre-defined Galois fields, one per symbology that carries Reed-Solomon
// error correction.
var (
	QRCodeField256     = newNamedGF("QR", 0x011D, 256, 0)   // x^8 + x^4 + x^3 + x^2 + 1
	DataMatrixField256 = newNamedGF("DataMatrix", 0x012D, 256, 1) // x^8 + x^5 + x^3 + x^2 + 1
	AztecData12        = newNamedGF("Aztec12", 0x1069, 4096, 1)
	AztecData10        = newNamedGF("Aztec10", 0x0409, 1024, 1)
	AztecData8         = DataMatrixField256
	AztecData6         = newNamedGF("Aztec6", 0x0043, 64, 1)
	AztecParam         = newNamedGF("AztecParam", 0x0013, 16, 1)
	MaxiCodeField64    = AztecData6
)

// NewGenericGF builds GF(size) from the given primitive polynomial. size
// must be a power of two; generatorBase shifts where the RS generator
// polynomial's roots start (some symbologies root at alpha^0, others at
// alpha^1).
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	return newNamedGF("", primitive, size, generatorBase)
}

func newNamedGF(name string, primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		name:          name,
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
	}
	gf.buildTables()
	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})
	return gf
}

// buildTables fills in the exp/log/inverse lookup tables by walking the
// powers of the field's generator (always 2) until they cycle, reducing
// modulo the primitive polynomial whenever a power overflows the field.
func (gf *GenericGF) buildTables() {
	gf.expTable = make([]int, gf.size)
	gf.logTable = make([]int, gf.size)
	gf.invTable = make([]int, gf.size)

	power := 1
	for i := 0; i < gf.size; i++ {
		gf.expTable[i] = power
		power <<= 1
		if power >= gf.size {
			power ^= gf.primitive
			power &= gf.size - 1
		}
	}
	for i := 0; i < gf.size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}
	for a := 1; a < gf.size; a++ {
		gf.invTable[a] = gf.expTable[gf.size-gf.logTable[a]-1]
	}
}

// Zero returns the additive identity polynomial.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the multiplicative identity polynomial.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree as a field polynomial.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// AddOrSubtract computes a XOR b; addition and subtraction coincide in any
// field of characteristic 2.
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns alpha^a, the a-th power of the field's generator.
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns the discrete log of a (base alpha). Panics on a == 0, which
// has no logarithm.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns a's multiplicative inverse, read from a precomputed table
// rather than recomputed per call.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.invTable[a]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the number of elements in the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the exponent the RS generator polynomial's roots
// start counting from.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a human-readable description of the field, including its
// symbology name when one was given at construction.
func (gf *GenericGF) String() string {
	if gf.name != "" {
		return fmt.Sprintf("GF(0x%x,%d,%s)", gf.primitive, gf.size, gf.name)
	}
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
