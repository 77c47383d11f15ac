// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

import (
	"github.com/avdva/fp32/internal/mathutil"
)

// Mul returns lh * rh.
// If one of the operands is zero, that operand is returned as is, so the sign of
// a zero product is the sign of the zero operand. Overflow results in an infinity.
func Mul(lh, rh Fields) Fields {
	if result, ok := Resolve(lh, rh, OpMul); ok {
		return result
	}
	return mul(lh, rh)
}

// mul multiplies two numbers, none of which is an infinity or a NaN.
func mul(lh, rh Fields) Fields {
	switch lhz, rhz := lh.IsZero(), rh.IsZero(); {
	case lhz && rhz:
		return Fields{Sign: (lh.Sign ^ rh.Sign) & signMask}
	case lhz:
		return lh
	case rhz:
		return rh
	}

	sign := lh.Sign ^ rh.Sign
	exp := int(lh.Exp) + int(rh.Exp) - bias

	// (1+a)(1+b) = 1 + a + b + ab, where ab is rounded to mantBits.
	m1, m2 := uint64(lh.Mant), uint64(rh.Mant)
	m := (m1*m2>>(mantBits-1) + 1) >> 1
	m += m1 + m2 + hiddenBit

	if shift := mathutil.LeadingBitShift(m, mantBits); shift > 0 {
		m = mathutil.RoundShift(m, uint(shift))
		exp += shift
	}
	return normalized(sign, exp, uint32(m))
}
