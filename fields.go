// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fp32 implements IEEE-754 single precision addition and multiplication
// in software, operating directly on the sign, exponent and mantissa fields.
// Rounding is half up (ties away from zero) and subnormal arithmetic is not
// guaranteed to be correct.
package fp32

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	bitsInNumber = 32
	expBits      = 8
	mantBits     = bitsInNumber - expBits - 1

	signMask = 1
	expMask  = 1<<expBits - 1
	mantMask = 1<<mantBits - 1

	// hiddenBit is the implicit leading mantissa bit of a normalized number.
	hiddenBit = 1 << mantBits
	bias      = 1<<(expBits-1) - 1
	// maxExponent is the exponent field of infinities and NaNs.
	maxExponent = expMask
)

var (
	// Zero is the canonical zero.
	Zero = Fields{}
	// Inf is the positive infinity.
	Inf = Fields{Exp: maxExponent}
	// NegInf is the negative infinity.
	NegInf = Fields{Sign: 1, Exp: maxExponent}
	// NaN is the canonical NaN returned by the special value rules.
	NaN = Fields{Exp: maxExponent, Mant: 1}
)

// Fields is a single precision number split into its IEEE-754 fields.
//   31 30      23                      0
//   _|________|_______________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmm
//
// The implicit leading mantissa bit is not stored.
// Fields is a value type, all operations return new values.
type Fields struct {
	Sign uint32 // 1 bit
	Exp  uint32 // 8 bits
	Mant uint32 // 23 bits
}

// Decompose splits a float32 into its fields.
func Decompose(f float32) Fields {
	return FromBits(math.Float32bits(f))
}

// FromBits splits a 32-bit pattern into fields. Any pattern is accepted.
func FromBits(b uint32) Fields {
	return Fields{
		Sign: b >> (bitsInNumber - 1) & signMask,
		Exp:  b >> mantBits & expMask,
		Mant: b & mantMask,
	}
}

// Recompose packs the fields back into a float32.
// Out of range fields are truncated to their bit width.
func Recompose(f Fields) float32 {
	return math.Float32frombits(f.Bits())
}

// Bits returns the 32-bit pattern of f. Fields are masked to their bit width.
func (f Fields) Bits() uint32 {
	return (f.Sign&signMask)<<(bitsInNumber-1) | (f.Exp&expMask)<<mantBits | f.Mant&mantMask
}

// Float32 is a shortcut for Recompose(f).
func (f Fields) Float32() float32 {
	return Recompose(f)
}

// Neg returns f with the sign flipped.
func (f Fields) Neg() Fields {
	f.Sign ^= signMask
	return f
}

// String returns the float32 value of f.
func (f Fields) String() string {
	switch {
	case f.IsNaN():
		return "NaN"
	case f.IsInf() && f.Sign == 0:
		return "+Inf"
	case f.IsInf():
		return "-Inf"
	}
	return fmt.Sprint(f.Float32())
}

// GoString returns debug string representation.
func (f Fields) GoString() string {
	return f.String() + fmt.Sprintf(" {S:%d E:%d M:0x%06X}", f.Sign, f.Exp, f.Mant)
}

// MarshalJSON marshals fields as an object, like `{"s":0,"e":127,"m":0}`.
func (f Fields) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		S uint32 `json:"s"`
		E uint32 `json:"e"`
		M uint32 `json:"m"`
	}{f.Sign, f.Exp, f.Mant})
}

// UnmarshalJSON unmarshals an object produced by MarshalJSON.
// Fields are masked to their bit width, like in Recompose.
func (f *Fields) UnmarshalJSON(data []byte) error {
	d := struct {
		S uint32 `json:"s"`
		E uint32 `json:"e"`
		M uint32 `json:"m"`
	}{}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*f = Fields{Sign: d.S & signMask, Exp: d.E & expMask, Mant: d.M & mantMask}
	return nil
}

// mantWithHidden returns the mantissa with the implicit leading bit restored.
// The bit is set for everything but exact zero, including subnormal numbers.
func (f Fields) mantWithHidden() uint32 {
	if f.IsZero() {
		return 0
	}
	return f.Mant | hiddenBit
}
