// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fp32

import (
	"fmt"
)

func ExampleAdd() {
	one := Decompose(1)
	fmt.Printf("1 + 1 = %#v\n", Add(one, one))

	sum := Add(Decompose(234553.5453313), Decompose(-432665.2323))
	fmt.Printf("234553.5453313 + -432665.2323 = %v\n", Recompose(sum))

	fmt.Printf("+Inf + -Inf = %v\n", Add(Inf, NegInf))
	fmt.Printf("-1.5 + 1.5 = %#v\n", Add(Decompose(-1.5), Decompose(1.5)))

	// Output:
	// 1 + 1 = 2 {S:0 E:128 M:0x000000}
	// 234553.5453313 + -432665.2323 = -198111.67
	// +Inf + -Inf = NaN
	// -1.5 + 1.5 = 0 {S:0 E:0 M:0x000000}
}

func ExampleMul() {
	product := Mul(Decompose(1.5), Decompose(2))
	fmt.Printf("1.5 * 2 = %v\n", Recompose(product))

	fmt.Printf("-Inf * 3 = %v\n", Mul(NegInf, Decompose(3)))
	fmt.Printf("+Inf * 0 = %v\n", Mul(Inf, Zero))
	fmt.Printf("max * -2 = %v\n", Mul(Decompose(3e38), Decompose(-2)))

	// Output:
	// 1.5 * 2 = 3
	// -Inf * 3 = -Inf
	// +Inf * 0 = NaN
	// max * -2 = -Inf
}

func ExampleDecompose() {
	f := Decompose(-0.75)
	fmt.Printf("sign=%d exponent=%d mantissa=0x%06x\n", f.Sign, f.Exp, f.Mant)
	fmt.Println(Recompose(f))

	// Output:
	// sign=1 exponent=126 mantissa=0x400000
	// -0.75
}
