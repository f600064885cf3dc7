package bigdecimal

import "math/big"

// Shared read-only constants. They must never be passed to a mutating
// big.Int method.
var (
	intOne  = big.NewInt(1)
	intFive = big.NewInt(5)
	intTen  = big.NewInt(10)
	intZero = new(big.Int)
)

// rshHalfUp calculates z = ⌊x / 2^shift + 1/2⌋: add half of the divisor,
// then floor-shift. This is the half-up rounding rule every lossy boundary
// in the package is built on. For shift <= 0 it is a plain copy.
// z and x may alias.
func rshHalfUp(z, x *big.Int, shift int) *big.Int {
	if shift <= 0 {
		return z.Set(x)
	}
	half := new(big.Int).Lsh(intOne, uint(shift-1))
	z.Add(x, half)
	// big.Int.Rsh floors, also for negative values, matching the rule.
	return z.Rsh(z, uint(shift))
}

// rshDown calculates z = x / 2^shift truncated toward zero.
// z and x may alias.
func rshDown(z, x *big.Int, shift int) *big.Int {
	if shift <= 0 {
		return z.Set(x)
	}
	if x.Sign() >= 0 {
		return z.Rsh(x, uint(shift))
	}
	z.Neg(x)
	z.Rsh(z, uint(shift))
	return z.Neg(z)
}

// mantAt returns a fresh copy of the mantissa of d rescaled to the given
// scale, rounding half-up when precision decreases.
func mantAt(d BigDecimal, scale int) *big.Int {
	m := d.mantOrZero()
	if scale >= d.scale {
		return new(big.Int).Lsh(m, uint(scale-d.scale))
	}
	return rshHalfUp(new(big.Int), m, d.scale-scale)
}

// mantAtTrunc is like mantAt but truncates toward zero instead of rounding.
func mantAtTrunc(d BigDecimal, scale int) *big.Int {
	m := d.mantOrZero()
	if scale >= d.scale {
		return new(big.Int).Lsh(m, uint(scale-d.scale))
	}
	return rshDown(new(big.Int), m, d.scale-scale)
}

// pow5 calculates 5^n as a fresh big.Int.
func pow5(n int) *big.Int {
	return new(big.Int).Exp(intFive, big.NewInt(int64(n)), nil)
}

// pow10 calculates 10^n as a fresh big.Int.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(intTen, big.NewInt(int64(n)), nil)
}
