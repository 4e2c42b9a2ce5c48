package reedsolomon

// GenericGFPoly is a polynomial over a GenericGF, stored highest-degree
// coefficient first. Values are immutable; every operation returns a new
// polynomial rather than mutating the receiver.
type GenericGFPoly struct {
	field        *GenericGF
	coefficients []int
}

// newGenericGFPoly builds a polynomial over field, trimming any leading
// zero coefficients so the degree reported by Degree is exact.
func newGenericGFPoly(field *GenericGF, coefficients []int) *GenericGFPoly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	return &GenericGFPoly{field: field, coefficients: trimLeadingZeros(coefficients)}
}

func trimLeadingZeros(coefficients []int) []int {
	if len(coefficients) <= 1 || coefficients[0] != 0 {
		return coefficients
	}
	firstNonZero := 1
	for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == len(coefficients) {
		return []int{0}
	}
	trimmed := make([]int, len(coefficients)-firstNonZero)
	copy(trimmed, coefficients[firstNonZero:])
	return trimmed
}

// Coefficients returns the polynomial's coefficients, highest degree first.
func (p *GenericGFPoly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the polynomial's degree.
func (p *GenericGFPoly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *GenericGFPoly) IsZero() bool {
	return p.coefficients[0] == 0
}

// GetCoefficient returns the coefficient of x^degree.
func (p *GenericGFPoly) GetCoefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates the polynomial at a using Horner's method (the a == 0
// and a == 1 cases short-circuit since they don't need field multiplies).
func (p *GenericGFPoly) EvaluateAt(a int) int {
	switch a {
	case 0:
		return p.GetCoefficient(0)
	case 1:
		sum := 0
		for _, c := range p.coefficients {
			sum = AddOrSubtract(sum, c)
		}
		return sum
	}
	acc := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		acc = AddOrSubtract(p.field.Multiply(a, acc), c)
	}
	return acc
}

// AddOrSubtractPoly adds (equivalently subtracts) other from p.
func (p *GenericGFPoly) AddOrSubtractPoly(other *GenericGFPoly) *GenericGFPoly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	shorter, longer := p.coefficients, other.coefficients
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	offset := len(longer) - len(shorter)

	sum := make([]int, len(longer))
	copy(sum, longer[:offset])
	for i := offset; i < len(longer); i++ {
		sum[i] = AddOrSubtract(shorter[i-offset], longer[i])
	}
	return newGenericGFPoly(p.field, sum)
}

// MultiplyPoly returns the product of p and other.
func (p *GenericGFPoly) MultiplyPoly(other *GenericGFPoly) *GenericGFPoly {
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, ac := range p.coefficients {
		if ac == 0 {
			continue
		}
		for j, bc := range other.coefficients {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(ac, bc))
		}
	}
	return newGenericGFPoly(p.field, product)
}

// MultiplyScalar scales every coefficient by scalar.
func (p *GenericGFPoly) MultiplyScalar(scalar int) *GenericGFPoly {
	switch scalar {
	case 0:
		return p.field.Zero()
	case 1:
		return p
	}
	scaled := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		scaled[i] = p.field.Multiply(c, scalar)
	}
	return newGenericGFPoly(p.field, scaled)
}

// MultiplyByMonomial returns p * coefficient * x^degree.
func (p *GenericGFPoly) MultiplyByMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return p.field.Zero()
	}
	shifted := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		shifted[i] = p.field.Multiply(c, coefficient)
	}
	return newGenericGFPoly(p.field, shifted)
}

// Divide performs polynomial long division, returning [quotient, remainder].
func (p *GenericGFPoly) Divide(other *GenericGFPoly) [2]*GenericGFPoly {
	if other.IsZero() {
		panic("reedsolomon: divide by zero")
	}

	quotient := p.field.Zero()
	remainder := p

	leadInverse := p.field.Inverse(other.GetCoefficient(other.Degree()))

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := p.field.Multiply(remainder.GetCoefficient(remainder.Degree()), leadInverse)
		quotient = quotient.AddOrSubtractPoly(p.field.BuildMonomial(degreeDiff, scale))
		remainder = remainder.AddOrSubtractPoly(other.MultiplyByMonomial(degreeDiff, scale))
	}

	return [2]*GenericGFPoly{quotient, remainder}
}
