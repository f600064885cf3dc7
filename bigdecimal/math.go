package bigdecimal

import (
	"math"
	"math/big"

	"github.com/Infinite-Chess/boardmath/bimath"
)

// maxNewtonIters caps Newton's method for square roots. Quadratic
// convergence reaches any precision this package permits in far fewer
// steps; hitting the cap indicates a cycling iterate and is reported as
// an error rather than looping forever.
const maxNewtonIters = 100

// maxTaylorIters caps the exponential Taylor series. After argument
// reduction the remaining argument is below ln 2, so the term shrinks by
// more than half each step and the cap is never reached for valid input.
const maxTaylorIters = 1000

// pow2 returns 2^power exactly: a mantissa of 1 at scale -power.
func pow2(power int) (BigDecimal, error) {
	return newBigDecimal(big.NewInt(1), -power)
}

// Sqrt returns the square root of d at [DefaultPrec] significand bits.
func (d BigDecimal) Sqrt() (BigDecimal, error) {
	return d.SqrtPrec(DefaultPrec)
}

// SqrtPrec returns the square root of d, normalized to prec significand
// bits. It runs Newton's method
//
//	x' = (x + d/x) / 2
//
// at prec+8 working bits, seeded with 2^ceil(e/2) where e is the binary
// exponent of d, and stops when two successive iterates agree after
// normalization to prec bits.
//
// SqrtPrec returns an error if d is negative, if prec is outside
// [1, MaxScale], or if the iteration fails to settle within
// [maxNewtonIters] steps.
func (d BigDecimal) SqrtPrec(prec int) (BigDecimal, error) {
	if prec < 1 || prec > MaxScale {
		return BigDecimal{}, errPrecRange
	}
	if d.IsNeg() {
		return BigDecimal{}, errNegativeRoot
	}
	if d.IsZero() {
		scale := min(max(d.scale/2, -MaxScale), MaxScale)
		return BigDecimal{mant: new(big.Int), scale: scale}, nil
	}

	wprec := prec + 8
	if wprec > MaxScale {
		wprec = MaxScale
	}

	// Seed with a power of two straddling the true root so the first
	// few steps do not have to walk across orders of magnitude.
	e := d.mant.BitLen() - d.scale
	x, err := pow2((e + 1) / 2)
	if err != nil {
		return BigDecimal{}, err
	}

	prev := x
	for i := 0; i < maxNewtonIters; i++ {
		q, err := d.QuoFloatingPrec(x, wprec)
		if err != nil {
			return BigDecimal{}, err
		}
		sum := x.Add(q)
		// Halving is a pure scale bump, no bits are lost.
		half := BigDecimal{mant: sum.mantOrZero(), scale: sum.scale + 1}
		x, err = half.Normalized(wprec)
		if err != nil {
			return BigDecimal{}, err
		}
		// Converged once successive iterates agree to prec+2 bits.
		// An equality test on rounded iterates could cycle forever when
		// the root sits on a rounding boundary; a relative bound cannot.
		diff := x.Sub(prev).Abs()
		bound := BigDecimal{mant: new(big.Int).Abs(x.mantOrZero()), scale: x.scale + prec + 2}
		if diff.Cmp(bound) <= 0 {
			return x.Normalized(prec)
		}
		prev = x
	}
	return BigDecimal{}, errNoConvergence
}

// Ln returns the natural logarithm of d as a float64. The mantissa's
// logarithm is taken over the big integer directly, so the result is
// meaningful even when d itself is far outside float64 range; only the
// final value is rounded to double precision.
//
// Ln returns an error if d is not positive.
func (d BigDecimal) Ln() (float64, error) {
	if d.Sign() <= 0 {
		return 0, errNonPositiveLog
	}
	l, err := bimath.Ln(d.mant)
	if err != nil {
		return 0, err
	}
	return l - float64(d.scale)*math.Ln2, nil
}

// Exp returns e^x at [DefaultPrec] significand bits.
func Exp(x float64) (BigDecimal, error) {
	return ExpPrec(x, DefaultPrec)
}

// ExpPrec returns e^x, normalized to prec significand bits. The argument
// is reduced with x = k*ln2 + y, 0 <= y < ln2: the Taylor series
//
//	e^y = 1 + y + y^2/2! + y^3/3! + ...
//
// is summed in the fixed-point model at prec+8 fractional bits, and the
// 2^k factor is applied as a pure scale adjustment afterwards.
//
// ExpPrec returns an error if x is NaN or infinite, if prec is outside
// [1, MaxScale], or if the adjusted scale leaves [-MaxScale, MaxScale].
func ExpPrec(x float64, prec int) (BigDecimal, error) {
	if prec < 1 || prec > MaxScale {
		return BigDecimal{}, errPrecRange
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return BigDecimal{}, errNonFinite
	}

	k := int(math.Floor(x / math.Ln2))
	y := x - float64(k)*math.Ln2

	wscale := prec + 8
	if wscale > MaxScale {
		wscale = MaxScale
	}
	yd, err := NewFromFloat64Scale(y, wscale)
	if err != nil {
		return BigDecimal{}, err
	}

	one, err := New(1, 0)
	if err != nil {
		return BigDecimal{}, err
	}
	sum, err := one.Rescaled(wscale)
	if err != nil {
		return BigDecimal{}, err
	}
	term := sum
	for n := int64(1); n < maxTaylorIters; n++ {
		term = term.Mul(yd)
		term, err = term.Quo(NewFromInt64(n))
		if err != nil {
			return BigDecimal{}, err
		}
		if term.IsZero() {
			break
		}
		next := sum.Add(term)
		if next.Equal(sum) {
			break
		}
		sum = next
	}

	r, err := newBigDecimal(sum.mantOrZero(), sum.scale-k)
	if err != nil {
		return BigDecimal{}, err
	}
	return r.Normalized(prec)
}

// PowInt returns d raised to the integer power n, at [DefaultPrec]
// significand bits.
func (d BigDecimal) PowInt(n int64) (BigDecimal, error) {
	return d.PowIntPrec(n, DefaultPrec)
}

// PowIntPrec returns d^n, normalized to prec significand bits, by binary
// exponentiation in the floating-point model. Intermediate products carry
// prec+8 bits so that the rounding of up to 2*log2(n) multiplications
// stays below the final normalization step.
//
// By convention d^0 is 1 for any d, including zero.
//
// PowIntPrec returns an error if d is zero and n is negative, or if prec
// is outside [1, MaxScale].
func (d BigDecimal) PowIntPrec(n int64, prec int) (BigDecimal, error) {
	if prec < 1 || prec > MaxScale {
		return BigDecimal{}, errPrecRange
	}
	if n == 0 {
		return New(1, 0)
	}
	if d.IsZero() {
		if n < 0 {
			return BigDecimal{}, errZeroPowNegative
		}
		return BigDecimal{mant: new(big.Int), scale: 0}, nil
	}

	wprec := prec + 8
	if wprec > MaxScale {
		wprec = MaxScale
	}

	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}

	base, err := d.Normalized(wprec)
	if err != nil {
		return BigDecimal{}, err
	}
	acc, err := New(1, 0)
	if err != nil {
		return BigDecimal{}, err
	}
	for ; u > 0; u >>= 1 {
		if u&1 == 1 {
			acc, err = acc.MulFloatingPrec(base, wprec)
			if err != nil {
				return BigDecimal{}, err
			}
		}
		if u > 1 {
			base, err = base.MulFloatingPrec(base, wprec)
			if err != nil {
				return BigDecimal{}, err
			}
		}
	}
	if neg {
		one, err := New(1, 0)
		if err != nil {
			return BigDecimal{}, err
		}
		acc, err = one.QuoFloatingPrec(acc, wprec)
		if err != nil {
			return BigDecimal{}, err
		}
	}
	return acc.Normalized(prec)
}

// Pow returns d raised to the power e, at [DefaultPrec] significand bits.
func (d BigDecimal) Pow(e BigDecimal) (BigDecimal, error) {
	return d.PowPrec(e, DefaultPrec)
}

// PowPrec returns d^e, normalized to prec significand bits. An integer
// exponent that fits in an int64 dispatches to [BigDecimal.PowIntPrec],
// which handles negative bases exactly. Otherwise the identity
// d^e = exp(e * ln d) is used, which restricts the base to positive
// values: a negative base with a fractional exponent has no real result.
//
// PowPrec returns an error for a negative base with a non-integer
// exponent, for a zero base with a negative exponent, or if prec is
// outside [1, MaxScale].
func (d BigDecimal) PowPrec(e BigDecimal, prec int) (BigDecimal, error) {
	if prec < 1 || prec > MaxScale {
		return BigDecimal{}, errPrecRange
	}
	if e.IsInteger() {
		if n, ok := e.Int64(); ok {
			return d.PowIntPrec(n, prec)
		}
	}
	if d.IsZero() {
		if e.IsNeg() {
			return BigDecimal{}, errZeroPowNegative
		}
		return BigDecimal{mant: new(big.Int), scale: 0}, nil
	}
	if d.IsNeg() {
		return BigDecimal{}, errComplexPower
	}
	l, err := d.Ln()
	if err != nil {
		return BigDecimal{}, err
	}
	return ExpPrec(e.Float64()*l, prec)
}
