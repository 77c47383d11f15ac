// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

const (
	// bf24DroppedBits is the number of low mantissa bits cleared by ToBF24.
	bf24DroppedBits = 8
	bf24Mask        = ^uint32(1<<bf24DroppedBits - 1)
	// bf24QuietNaN is the NaN all NaNs are converted to.
	bf24QuietNaN = 0x7fc00000
)

// ToBF24 reduces f to a 24-bit format with the same exponent range and
// a 15-bit mantissa, returned as fields with the 8 low mantissa bits cleared.
// The mantissa is rounded to nearest, ties to even. Rounding may carry into
// the exponent, up to an infinity. All NaNs become the canonical quiet NaN.
func ToBF24(f Fields) Fields {
	if f.IsNaN() {
		return FromBits(bf24QuietNaN)
	}
	b := f.Bits()
	lsb := b >> bf24DroppedBits & 1
	b += 1<<(bf24DroppedBits-1) - 1 + lsb
	return FromBits(b & bf24Mask)
}

// ReduceBF24 is ToBF24 for float32 values.
func ReduceBF24(v float32) float32 {
	return Recompose(ToBF24(Decompose(v)))
}
