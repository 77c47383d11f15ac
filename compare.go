// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

// LooseEqual returns true, if the values are equal up to one unit in the last place.
// Infinities of the same sign are equal, and all NaNs are equal to each other.
// Otherwise, the signs and the exponents must be the same and the mantissas
// may differ by 1 at most.
func LooseEqual(a, b Fields) bool {
	switch {
	case a.IsNaN() || b.IsNaN():
		return a.IsNaN() && b.IsNaN()
	case a.IsInf() || b.IsInf():
		return a.IsInf() && b.IsInf() && a.Sign == b.Sign
	}
	if a.Sign != b.Sign || a.Exp != b.Exp {
		return false
	}
	if a.Mant > b.Mant {
		return a.Mant-b.Mant <= 1
	}
	return b.Mant-a.Mant <= 1
}

// Reference calculates 'lh op rh' using hardware float64 arithmetic
// and rounds the result to float32.
func Reference(op Op, lh, rh float32) float32 {
	if op == OpMul {
		return float32(float64(lh) * float64(rh))
	}
	return float32(float64(lh) + float64(rh))
}

// Check runs 'lh op rh' on the engine and compares it with Reference.
// Returns the engine's result, the reference result, and whether they are loosely equal.
func Check(op Op, lh, rh float32) (got, want Fields, ok bool) {
	got = Apply(op, Decompose(lh), Decompose(rh))
	want = Decompose(Reference(op, lh, rh))
	return got, want, LooseEqual(got, want)
}
