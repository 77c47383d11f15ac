// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

import "fmt"

// Op is an arithmetic operation.
type Op byte

const (
	// OpAdd is addition.
	OpAdd Op = '+'
	// OpMul is multiplication.
	OpMul Op = '*'
)

// String returns "+" or "*".
func (op Op) String() string {
	return string(op)
}

// ParseOp converts "+", "add", "*", "x", "mul" into an operation.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+", "add":
		return OpAdd, nil
	case "*", "x", "mul":
		return OpMul, nil
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Apply returns 'lh op rh'.
func Apply(op Op, lh, rh Fields) Fields {
	if op == OpMul {
		return Mul(lh, rh)
	}
	return Add(lh, rh)
}

// Resolve returns the result of 'lh op rh', if any of the operands
// is a NaN or an infinity. Otherwise, it returns false and the caller
// should do the general arithmetic.
func Resolve(lh, rh Fields, op Op) (Fields, bool) {
	if lh.IsNaN() || rh.IsNaN() {
		return NaN, true
	}
	if lh.IsNumber() && rh.IsNumber() {
		return Zero, false
	}
	switch op {
	case OpAdd:
		return resolveAdd(lh, rh), true
	case OpMul:
		return resolveMul(lh, rh), true
	}
	return Zero, false
}

// resolveAdd handles sums with at least one infinity.
func resolveAdd(lh, rh Fields) Fields {
	switch {
	case pair(lh, rh, Fields.IsPosInf, Fields.IsNegInf):
		return NaN
	case lh.IsInf():
		// inf + number, or inf + inf of the same polarity.
		return lh
	default:
		return rh
	}
}

// resolveMul handles products with at least one infinity.
func resolveMul(lh, rh Fields) Fields {
	switch {
	case pair(lh, rh, Fields.IsPosInf, Fields.IsNegInf):
		return NegInf
	case pair(lh, rh, Fields.IsInf, Fields.IsZero):
		return NaN
	case lh.IsInf() && rh.IsInf():
		return Inf
	}
	result := Inf
	result.Sign = (lh.Sign ^ rh.Sign) & signMask
	return result
}
