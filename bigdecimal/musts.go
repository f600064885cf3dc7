package bigdecimal

import "fmt"

// MustNew is like [New] but panics if computing error.
func MustNew(mant int64, scale int) BigDecimal {
	d, err := New(mant, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", mant, scale, err))
	}
	return d
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if computing error.
func MustNewFromFloat64(f float64) BigDecimal {
	d, err := NewFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return d
}

// MustParse is like [Parse] but panics if computing error.
func MustParse(s string) BigDecimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustRescaled is like [BigDecimal.Rescaled] but panics if computing error.
func (d BigDecimal) MustRescaled(scale int) BigDecimal {
	f, err := d.Rescaled(scale)
	if err != nil {
		panic(fmt.Sprintf("MustRescaled(%v) failed: %v", scale, err))
	}
	return f
}

// MustQuo is like [BigDecimal.Quo] but panics if computing error.
func (d BigDecimal) MustQuo(e BigDecimal) BigDecimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustSqrt is like [BigDecimal.Sqrt] but panics if computing error.
func (d BigDecimal) MustSqrt() BigDecimal {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", d, err))
	}
	return f
}
