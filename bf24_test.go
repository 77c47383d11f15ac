// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBF24(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		in, out uint32
	}{
		{0x00000000, 0x00000000},
		{0x80000000, 0x80000000},
		{0x3f800000, 0x3f800000},
		{0x3f80007f, 0x3f800000}, // below a half
		{0x3f800080, 0x3f800000}, // a half, rounded to even
		{0x3f800180, 0x3f800200}, // a half, rounded to even
		{0x3f8000c0, 0x3f800100}, // above a half
		{0xbf8000c0, 0xbf800100},
		{0x3fffff80, 0x40000000}, // carry into the exponent
		{0x7f7fffff, 0x7f800000}, // overflow
		{0xff7fffff, 0xff800000},
		{0x7f800000, 0x7f800000},
		{0xff800000, 0xff800000},
		{0x7fc00000, 0x7fc00000},
		{0xffc00001, 0x7fc00000},
		{0x7f800001, 0x7fc00000},
		{0xff800100, 0x7fc00000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(FromBits(test.out), ToBF24(FromBits(test.in)), "0x%08x", test.in)
		})
	}
}

func TestReduceBF24(t *testing.T) {
	a := assert.New(t)
	a.Equal(float32(1), ReduceBF24(1))
	a.Equal(float32(-2.5), ReduceBF24(-2.5))
	a.Equal(uint32(0x3dfcd700), math.Float32bits(ReduceBF24(math.Float32frombits(0x3dfcd6ea))))
	a.True(math.IsNaN(float64(ReduceBF24(float32(math.NaN())))))
}
