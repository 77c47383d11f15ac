package mathutil

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// RoundShift returns value >> shift, rounded half up:
// the kept part is incremented if the discarded bits are at least a half.
// shift must be less than the bit size of T.
func RoundShift[T constraints.Unsigned](value T, shift uint) T {
	if shift == 0 {
		return value
	}
	kept := value >> shift
	remainder := value & (T(1)<<shift - 1)
	if remainder == 0 {
		return kept
	}
	if halfway := T(1) << (shift - 1); remainder >= halfway {
		kept++
	}
	return kept
}

// BinaryDigits returns the number of bits needed to represent 'value'.
// BinaryDigits(0) is 0.
func BinaryDigits[T constraints.Unsigned](value T) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(uint64(value))
}

// LeadingBitShift returns the signed shift that moves the highest set bit of 'value'
// to position 'pos': positive for a right shift, negative for a left shift.
// Returns 0 for value == 0.
func LeadingBitShift[T constraints.Unsigned](value T, pos int) int {
	if value == 0 {
		return 0
	}
	return BinaryDigits(value) - 1 - pos
}

// Shift shifts 'value' right by 'shift' bits, or left by -shift, if shift is negative.
// A right shift is rounded with RoundShift.
func Shift[T constraints.Unsigned](value T, shift int) T {
	if shift < 0 {
		return value << uint(-shift)
	}
	return RoundShift(value, uint(shift))
}
