// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

// IsZero returns true for a zero of either sign.
func (f Fields) IsZero() bool {
	return f.Exp == 0 && f.Mant == 0
}

// IsNaN returns true for any NaN encoding, the sign is ignored.
func (f Fields) IsNaN() bool {
	return f.Exp == maxExponent && f.Mant != 0
}

// IsInf returns true for an infinity of either sign.
func (f Fields) IsInf() bool {
	return f.Exp == maxExponent && f.Mant == 0
}

// IsPosInf returns true for +Inf.
func (f Fields) IsPosInf() bool {
	return f.IsInf() && f.Sign == 0
}

// IsNegInf returns true for -Inf.
func (f Fields) IsNegInf() bool {
	return f.IsInf() && f.Sign != 0
}

// IsNumber returns true for everything that is not an infinity or a NaN.
// Zeros and subnormals are numbers.
func (f Fields) IsNumber() bool {
	return f.Exp != maxExponent
}

// IsSubnormal returns true for a nonzero number with a zero exponent field.
func (f Fields) IsSubnormal() bool {
	return f.Exp == 0 && f.Mant != 0
}

type predicate func(Fields) bool

// pair checks if the operands match the predicates in either order.
func pair(lh, rh Fields, p1, p2 predicate) bool {
	return p1(lh) && p2(rh) || p1(rh) && p2(lh)
}
