package bigdecimal_test

import (
	"fmt"

	"github.com/Infinite-Chess/boardmath/bigdecimal"
)

func ExampleNewFromFloat64() {
	d, err := bigdecimal.NewFromFloat64(2.75)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 2.75
}

func ExampleNew() {
	// A mantissa of 11 at two fractional bits is 1011 in binary,
	// which reads as 10.11, that is 2.75.
	d, err := bigdecimal.New(11, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.ExactString())
	// Output: 2.75
}

func ExampleBigDecimal_Quo() {
	d := bigdecimal.MustParse("10")
	e := bigdecimal.MustParse("4")
	q, err := d.Quo(e)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	// Output: 2.5
}

func ExampleBigDecimal_Add() {
	d := bigdecimal.MustParse("2.75")
	e := bigdecimal.MustParse("0.25")
	fmt.Println(d.Add(e))
	// Output: 3
}

func ExampleParse() {
	d, err := bigdecimal.Parse("1.5e2")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 150
}

func ExampleBigDecimal_Floor() {
	fmt.Println(bigdecimal.MustParse("2.75").Floor())
	fmt.Println(bigdecimal.MustParse("-2.75").Floor())
	// Output:
	// 2
	// -3
}

func ExampleBigDecimal_PowInt() {
	d := bigdecimal.MustParse("2")
	p, err := d.PowInt(10)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 1024
}

func ExampleBigDecimal_Rescaled() {
	// Rescaling to fewer fractional bits rounds half-up.
	d := bigdecimal.MustParse("2.75")
	r, err := d.Rescaled(1)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.ExactString())
	// Output: 3
}
