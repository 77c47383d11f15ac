// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

import (
	"github.com/avdva/fp32/internal/mathutil"
)

const (
	// guardBits are appended to both mantissas before the alignment shift.
	guardBits = 6
	// maxAlignShift is the exponent difference, starting from which
	// the smaller operand is lost in rounding.
	maxAlignShift = mantBits + 1
	// sumLeadingBit is the position of the leading bit of a normalized sum.
	sumLeadingBit = mantBits + guardBits
)

// Add returns lh + rh.
// Ties are rounded away from zero. Overflow results in an infinity of the same sign,
// the sum of two equal numbers of different signs is the canonical zero.
func Add(lh, rh Fields) Fields {
	if result, ok := Resolve(lh, rh, OpAdd); ok {
		return result
	}
	return add(lh, rh)
}

// add sums two numbers, none of which is an infinity or a NaN.
func add(lh, rh Fields) Fields {
	big, small := lh, rh
	if rh.Exp > lh.Exp || rh.Exp == lh.Exp && rh.Mant >= lh.Mant {
		big, small = rh, lh
	}
	delta := big.Exp - small.Exp
	if delta >= maxAlignShift {
		return big
	}

	m1 := big.mantWithHidden() << guardBits
	m2 := small.mantWithHidden() << guardBits >> delta

	var m uint32
	if big.Sign == small.Sign {
		m = m1 + m2
	} else {
		m = m1 - m2
	}
	if m == 0 {
		return Zero
	}

	shift := mathutil.LeadingBitShift(m, sumLeadingBit)
	m = mathutil.Shift(m, shift+guardBits)
	return normalized(big.Sign, int(big.Exp)+shift, m)
}

// normalized builds the result from a mantissa with the hidden bit at mantBits.
// A rounding carry into the next bit is renormalized, an exponent overflow
// is clamped to an infinity, and a negative exponent is flushed to zero.
func normalized(sign uint32, exp int, m uint32) Fields {
	if m >= hiddenBit<<1 {
		m >>= 1
		exp++
	}
	switch {
	case exp >= maxExponent:
		return Fields{Sign: sign & signMask, Exp: maxExponent}
	case exp < 0:
		return Fields{Sign: sign & signMask}
	}
	return Fields{Sign: sign & signMask, Exp: uint32(exp), Mant: m & mantMask}
}
