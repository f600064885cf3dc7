package bigdecimal

import (
	"errors"
	"math"
	"math/big"
)

// BigDecimal is a representation of a finite binary-scaled number.
// The zero value is the numeric value of 0.
//
// A BigDecimal is a struct with two parameters:
//
//   - Mantissa: a big integer holding the literal bits of the number.
//   - Scale: an integer indicating how many low bits of the mantissa
//     represent the fractional part.
//
// The represented value is always exactly mantissa / 2^scale. The scale may
// be negative, in which case the mantissa is shifted up and the value is a
// (possibly enormous) integer. No rounding is ever applied outside the
// explicitly named rounding boundaries: [BigDecimal.Rescaled],
// [BigDecimal.Normalized], the fixed-model arithmetic, [BigDecimal.BigInt],
// and [BigDecimal.String].
//
// Values are immutable by convention: every operation allocates a fresh
// mantissa. The single exception is the in-place [BigDecimal.Rescale],
// provided for callers that profiled the allocation away; clone a shared
// value before calling it.
//
// Special values such as NaN, Infinity, or signed zeros are not supported.
type BigDecimal struct {
	mant  *big.Int // the mantissa
	scale int      // the number of fractional mantissa bits
}

const (
	// MaxScale bounds the scale in both directions. A computed scale
	// outside [-MaxScale, MaxScale] is an error, never clamped: clamping
	// would silently produce a wrong value.
	MaxScale = 100_000

	// DefaultScale is the working precision of the fixed-point model:
	// the number of fractional bits carried by default constructions.
	DefaultScale = 50

	// DefaultPrec is the significand length, in bits, that the
	// floating-point model normalizes to by default.
	DefaultPrec = 23
)

var (
	errScaleRange        = errors.New("scale out of range")
	errPrecRange         = errors.New("precision out of range")
	errDivisionByZero    = errors.New("division by zero")
	errNonFinite         = errors.New("not a finite number")
	errInvalidNumber     = errors.New("invalid number")
	errExponentRange     = errors.New("exponent out of range")
	errNegativeRoot      = errors.New("square root of negative number")
	errNonPositiveLog    = errors.New("logarithm of non-positive number")
	errZeroPowNegative   = errors.New("zero raised to negative power")
	errComplexPower      = errors.New("negative base with fractional exponent")
	errNoConvergence     = errors.New("algorithm did not converge")
	errMinGreaterThanMax = errors.New("min is greater than max")
)

func newBigDecimal(mant *big.Int, scale int) (BigDecimal, error) {
	if scale < -MaxScale || scale > MaxScale {
		return BigDecimal{}, errScaleRange
	}
	return BigDecimal{mant: mant, scale: scale}, nil
}

// mantOrZero returns the mantissa of d, substituting a shared zero for the
// zero value's nil pointer. The result must not be mutated.
func (d BigDecimal) mantOrZero() *big.Int {
	if d.mant == nil {
		return intZero
	}
	return d.mant
}

// New returns a BigDecimal equal to mant / 2^scale.
//
// New returns an error if scale is outside [-MaxScale, MaxScale].
func New(mant int64, scale int) (BigDecimal, error) {
	return newBigDecimal(big.NewInt(mant), scale)
}

// NewFromInt64 returns a BigDecimal equal to i, carried at [DefaultScale]
// fractional bits.
func NewFromInt64(i int64) BigDecimal {
	return BigDecimal{mant: new(big.Int).Lsh(big.NewInt(i), DefaultScale), scale: DefaultScale}
}

// NewFromBigInt returns a BigDecimal equal to n at [DefaultScale].
// The argument is copied, never retained.
func NewFromBigInt(n *big.Int) BigDecimal {
	return BigDecimal{mant: new(big.Int).Lsh(n, DefaultScale), scale: DefaultScale}
}

// NewFromBigIntScale returns a BigDecimal equal to n at the given scale.
// For a non-negative scale the representation is exact; a negative scale
// rounds half-up to the nearest multiple of 2^-scale.
func NewFromBigIntScale(n *big.Int, scale int) (BigDecimal, error) {
	d := BigDecimal{mant: new(big.Int).Set(n), scale: 0}
	return d.Rescaled(scale)
}

// NewFromFloat64 converts f to a BigDecimal at [DefaultScale].
// Also see [NewFromFloat64Scale].
func NewFromFloat64(f float64) (BigDecimal, error) {
	return NewFromFloat64Scale(f, DefaultScale)
}

// NewFromFloat64Scale converts f to a BigDecimal at the given scale by
// decomposing its IEEE-754 bit pattern directly: sign, biased exponent and
// the 52-bit fraction with its implicit leading bit (subnormals have none).
// The decomposition is exact; the only rounding is the final rescale to the
// requested scale.
//
// NewFromFloat64Scale returns an error if f is NaN or infinite, or if scale
// is outside [-MaxScale, MaxScale].
func NewFromFloat64Scale(f float64, scale int) (BigDecimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigDecimal{}, errNonFinite
	}

	bits := math.Float64bits(f)
	neg := bits>>63 == 1
	exp := int(bits >> 52 & 0x7ff)
	frac := bits & 0xf_ffff_ffff_ffff

	// value = m * 2^-s, exactly
	var (
		m uint64
		s int
	)
	if exp == 0 { // subnormal or zero
		m = frac
		s = 1074
	} else {
		m = frac | 1<<52
		s = 1075 - exp
	}

	mant := new(big.Int).SetUint64(m)
	if neg {
		mant.Neg(mant)
	}
	d := BigDecimal{mant: mant, scale: s}
	return d.Rescaled(scale)
}

// Mantissa returns a copy of the mantissa of d.
func (d BigDecimal) Mantissa() *big.Int {
	return new(big.Int).Set(d.mantOrZero())
}

// Scale returns the number of fractional mantissa bits of d.
func (d BigDecimal) Scale() int {
	return d.scale
}

// Clone returns a deep copy of d.
// Cloning matters only ahead of the mutating [BigDecimal.Rescale]; every
// other operation leaves its operands untouched.
func (d BigDecimal) Clone() BigDecimal {
	return BigDecimal{mant: new(big.Int).Set(d.mantOrZero()), scale: d.scale}
}

// Zero returns a BigDecimal with a value 0 but the same scale as d.
func (d BigDecimal) Zero() BigDecimal {
	return BigDecimal{mant: new(big.Int), scale: d.scale}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger value at the same scale.
func (d BigDecimal) ULP() BigDecimal {
	return BigDecimal{mant: big.NewInt(1), scale: d.scale}
}

// Rescaled returns d carried at the given scale. Increasing the scale is a
// lossless left shift; decreasing it rounds half-up, making this the single
// rounding primitive of the package.
//
// Rescaled returns an error if scale is outside [-MaxScale, MaxScale].
func (d BigDecimal) Rescaled(scale int) (BigDecimal, error) {
	if scale < -MaxScale || scale > MaxScale {
		return BigDecimal{}, errScaleRange
	}
	if scale == d.scale {
		return d, nil
	}
	return BigDecimal{mant: mantAt(d, scale), scale: scale}, nil
}

// Rescale is the in-place variant of [BigDecimal.Rescaled]. It mutates the
// mantissa of d and exists for hot paths where the extra allocation of the
// pure form shows up in profiles. Clone d first if its mantissa is shared.
func (d *BigDecimal) Rescale(scale int) error {
	if scale < -MaxScale || scale > MaxScale {
		return errScaleRange
	}
	if d.mant == nil {
		d.mant = new(big.Int)
		d.scale = scale
		return nil
	}
	switch {
	case scale > d.scale:
		d.mant.Lsh(d.mant, uint(scale-d.scale))
	case scale < d.scale:
		rshHalfUp(d.mant, d.mant, d.scale-scale)
	}
	d.scale = scale
	return nil
}

// Normalized returns d rescaled so that its mantissa is prec bits long,
// within one bit (a rounding carry can lengthen the mantissa by one).
// A nonzero value never normalizes to zero: shortening shifts away excess
// bits, padding shifts in zeros, and the leading bit survives either way.
//
// Normalized returns an error if prec is outside [1, MaxScale] or if the
// recomputed scale leaves [-MaxScale, MaxScale].
func (d BigDecimal) Normalized(prec int) (BigDecimal, error) {
	if prec < 1 || prec > MaxScale {
		return BigDecimal{}, errPrecRange
	}
	m := d.mantOrZero()
	if m.Sign() == 0 {
		scale := min(max(d.scale, -MaxScale), MaxScale)
		return BigDecimal{mant: new(big.Int), scale: scale}, nil
	}
	shift := m.BitLen() - prec
	scale := d.scale - shift
	if scale < -MaxScale || scale > MaxScale {
		return BigDecimal{}, errScaleRange
	}
	z := new(big.Int)
	if shift >= 0 {
		rshHalfUp(z, m, shift)
	} else {
		z.Lsh(m, uint(-shift))
	}
	return BigDecimal{mant: z, scale: scale}, nil
}

// Add returns the sum of d and e at the scale of d.
// When e carries more fractional bits than d, the excess is rounded
// half-up during alignment.
func (d BigDecimal) Add(e BigDecimal) BigDecimal {
	em := mantAt(e, d.scale)
	em.Add(em, d.mantOrZero())
	return BigDecimal{mant: em, scale: d.scale}
}

// Sub returns the difference of d and e at the scale of d.
// Also see [BigDecimal.Add].
func (d BigDecimal) Sub(e BigDecimal) BigDecimal {
	em := mantAt(e, d.scale)
	em.Sub(d.mantOrZero(), em)
	return BigDecimal{mant: em, scale: d.scale}
}

// Mul returns the product of d and e in the fixed-point model: the raw
// mantissa product is shifted back to the scale of d, rounding half-up.
// The result scale never grows, trading up to half an ULP per operation
// for a representation of predictable size.
func (d BigDecimal) Mul(e BigDecimal) BigDecimal {
	p := new(big.Int).Mul(d.mantOrZero(), e.mantOrZero())
	// p is at scale d.scale + e.scale
	switch {
	case e.scale > 0:
		rshHalfUp(p, p, e.scale)
	case e.scale < 0:
		p.Lsh(p, uint(-e.scale))
	}
	return BigDecimal{mant: p, scale: d.scale}
}

// MulFloating returns the product of d and e in the floating-point model,
// normalized to [DefaultPrec] significand bits.
func (d BigDecimal) MulFloating(e BigDecimal) (BigDecimal, error) {
	return d.MulFloatingPrec(e, DefaultPrec)
}

// MulFloatingPrec is like [BigDecimal.MulFloating] with an explicit
// significand length. The raw product keeps the sum of the operand scales
// and is then normalized, so significant bits are preserved across any
// dynamic range; only the normalization itself rounds.
func (d BigDecimal) MulFloatingPrec(e BigDecimal, prec int) (BigDecimal, error) {
	p := new(big.Int).Mul(d.mantOrZero(), e.mantOrZero())
	f := BigDecimal{mant: p, scale: d.scale + e.scale}
	return f.Normalized(prec)
}

// quoWorkingBits is the extra precision the fixed-model division carries
// before rounding back down, keeping the truncation error of the integer
// division below the final half-up rounding step.
const quoWorkingBits = 16

// Quo returns the quotient of d and e in the fixed-point model, at the
// scale of d: the dividend is shifted up by the divisor's scale plus
// [quoWorkingBits], integer-divided, and rounded back half-up.
//
// Quo returns an error if e is zero.
func (d BigDecimal) Quo(e BigDecimal) (BigDecimal, error) {
	if e.IsZero() {
		return BigDecimal{}, errDivisionByZero
	}
	n := new(big.Int)
	shift := e.scale + quoWorkingBits
	if shift >= 0 {
		n.Lsh(d.mantOrZero(), uint(shift))
	} else {
		rshDown(n, d.mantOrZero(), -shift)
	}
	n.Quo(n, e.mant)
	rshHalfUp(n, n, quoWorkingBits)
	return BigDecimal{mant: n, scale: d.scale}, nil
}

// QuoFloating returns the quotient of d and e in the floating-point model,
// normalized to [DefaultPrec] significand bits.
func (d BigDecimal) QuoFloating(e BigDecimal) (BigDecimal, error) {
	return d.QuoFloatingPrec(e, DefaultPrec)
}

// QuoFloatingPrec is like [BigDecimal.QuoFloating] with an explicit
// significand length. The dividend shift is computed from the bit-length
// difference of the mantissas plus prec plus one safety bit, so a nonzero
// quotient can never underflow to zero.
//
// QuoFloatingPrec returns an error if e is zero.
func (d BigDecimal) QuoFloatingPrec(e BigDecimal, prec int) (BigDecimal, error) {
	if prec < 1 || prec > MaxScale {
		return BigDecimal{}, errPrecRange
	}
	if e.IsZero() {
		return BigDecimal{}, errDivisionByZero
	}
	if d.IsZero() {
		scale := min(max(d.scale-e.scale, -MaxScale), MaxScale)
		return BigDecimal{mant: new(big.Int), scale: scale}, nil
	}
	shift := e.mant.BitLen() - d.mant.BitLen() + prec + 1
	if shift < 0 {
		shift = 0
	}
	n := new(big.Int).Lsh(d.mant, uint(shift))
	n.Quo(n, e.mant)
	f := BigDecimal{mant: n, scale: d.scale + shift - e.scale}
	return f.Normalized(prec)
}

// Mod returns the remainder of d and e at the scale of d, with the sign of
// the dividend. The divisor is rescaled to the dividend's scale truncating,
// not rounding, consistent with integer-remainder semantics.
//
// Mod returns an error if e is zero, or underflows to zero at the scale of d.
func (d BigDecimal) Mod(e BigDecimal) (BigDecimal, error) {
	if e.IsZero() {
		return BigDecimal{}, errDivisionByZero
	}
	em := mantAtTrunc(e, d.scale)
	if em.Sign() == 0 {
		return BigDecimal{}, errDivisionByZero
	}
	r := new(big.Int).Rem(d.mantOrZero(), em)
	return BigDecimal{mant: r, scale: d.scale}, nil
}

// Neg returns d with opposite sign.
func (d BigDecimal) Neg() BigDecimal {
	return BigDecimal{mant: new(big.Int).Neg(d.mantOrZero()), scale: d.scale}
}

// Abs returns the absolute value of d.
func (d BigDecimal) Abs() BigDecimal {
	return BigDecimal{mant: new(big.Int).Abs(d.mantOrZero()), scale: d.scale}
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (d BigDecimal) CopySign(e BigDecimal) BigDecimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d BigDecimal) Sign() int {
	return d.mantOrZero().Sign()
}

// IsPos returns true if d > 0.
func (d BigDecimal) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns true if d < 0.
func (d BigDecimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsZero returns true if d == 0.
func (d BigDecimal) IsZero() bool {
	return d.Sign() == 0
}

// fracMant returns mantissa mod 2^scale, in [0, 2^scale). big.Int treats
// negative values as infinite two's complement, so a plain mask yields the
// Euclidean remainder for either sign without any float conversion.
func (d BigDecimal) fracMant() *big.Int {
	if d.scale <= 0 {
		return new(big.Int)
	}
	mask := new(big.Int).Lsh(intOne, uint(d.scale))
	mask.Sub(mask, intOne)
	return new(big.Int).And(d.mantOrZero(), mask)
}

// IsInteger returns true if the fractional part of d is zero.
// The test is exact at any magnitude.
func (d BigDecimal) IsInteger() bool {
	return d.fracMant().Sign() == 0
}

// Floor returns the largest integer value not greater than d, at the same
// scale as d.
func (d BigDecimal) Floor() BigDecimal {
	f := d.fracMant()
	if f.Sign() == 0 {
		return d
	}
	m := new(big.Int).Sub(d.mantOrZero(), f)
	return BigDecimal{mant: m, scale: d.scale}
}

// Ceil returns the smallest integer value not less than d, at the same
// scale as d.
func (d BigDecimal) Ceil() BigDecimal {
	f := d.fracMant()
	if f.Sign() == 0 {
		return d
	}
	m := new(big.Int).Sub(d.mantOrZero(), f)
	m.Add(m, new(big.Int).Lsh(intOne, uint(d.scale)))
	return BigDecimal{mant: m, scale: d.scale}
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Operands are aligned by shifting the lower-precision mantissa up, which
// is lossless, so the comparison is exact.
func (d BigDecimal) Cmp(e BigDecimal) int {
	dm, em := d.mantOrZero(), e.mantOrZero()
	switch {
	case d.scale < e.scale:
		dm = new(big.Int).Lsh(dm, uint(e.scale-d.scale))
	case e.scale < d.scale:
		em = new(big.Int).Lsh(em, uint(d.scale-e.scale))
	}
	return dm.Cmp(em)
}

// Equal returns true if d and e represent the same numeric value,
// regardless of scale.
func (d BigDecimal) Equal(e BigDecimal) bool {
	return d.Cmp(e) == 0
}

// Min returns the smaller of d and e.
func (d BigDecimal) Min(e BigDecimal) BigDecimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger of d and e.
func (d BigDecimal) Max(e BigDecimal) BigDecimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Clamp returns d bounded to the range [lo, hi].
//
// Clamp returns an error if lo is greater than hi.
func (d BigDecimal) Clamp(lo, hi BigDecimal) (BigDecimal, error) {
	if lo.Cmp(hi) > 0 {
		return BigDecimal{}, errMinGreaterThanMax
	}
	if d.Cmp(lo) < 0 {
		return lo, nil
	}
	if d.Cmp(hi) > 0 {
		return hi, nil
	}
	return d, nil
}
