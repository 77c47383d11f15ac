// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	a := assert.New(t)
	one, negTwo, minusZero := Decompose(1), Decompose(-2), Fields{Sign: 1}
	tests := []struct {
		lh, rh Fields
		op     Op
		res    Fields
		ok     bool
	}{
		{one, negTwo, OpAdd, Zero, false},
		{one, negTwo, OpMul, Zero, false},
		{Zero, minusZero, OpAdd, Zero, false},
		{Zero, minusZero, OpMul, Zero, false},
		{FromBits(1), one, OpMul, Zero, false},

		{NaN, one, OpAdd, NaN, true},
		{one, nan4, OpMul, NaN, true},
		{nan2, Inf, OpAdd, NaN, true},
		{NegInf, nan3, OpMul, NaN, true},

		{Inf, NegInf, OpAdd, NaN, true},
		{NegInf, Inf, OpAdd, NaN, true},
		{Inf, Zero, OpAdd, Inf, true},
		{minusZero, NegInf, OpAdd, NegInf, true},
		{Inf, negTwo, OpAdd, Inf, true},
		{one, NegInf, OpAdd, NegInf, true},
		{FromBits(1), NegInf, OpAdd, NegInf, true},

		{Inf, NegInf, OpMul, NegInf, true},
		{NegInf, Inf, OpMul, NegInf, true},
		{Inf, Zero, OpMul, NaN, true},
		{minusZero, Inf, OpMul, NaN, true},
		{NegInf, Zero, OpMul, NaN, true},
		{Inf, one, OpMul, Inf, true},
		{Inf, negTwo, OpMul, NegInf, true},
		{negTwo, NegInf, OpMul, Inf, true},
		{NegInf, one, OpMul, NegInf, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := Resolve(test.lh, test.rh, test.op)
			a.Equal(test.ok, ok)
			if ok {
				a.Equal(test.res, res)
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		op  Op
		err string
	}{
		{"+", OpAdd, ""},
		{"add", OpAdd, ""},
		{"*", OpMul, ""},
		{"x", OpMul, ""},
		{"mul", OpMul, ""},
		{"-", 0, `unknown operation "-"`},
		{"", 0, `unknown operation ""`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			op, err := ParseOp(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.op, op)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
	a.Equal("+", OpAdd.String())
	a.Equal("*", OpMul.String())
}
