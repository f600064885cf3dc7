package bigdecimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// BigInt returns d rounded half-up to the nearest integer, as a big.Int.
func (d BigDecimal) BigInt() *big.Int {
	z := new(big.Int)
	if d.scale > 0 {
		return rshHalfUp(z, d.mantOrZero(), d.scale)
	}
	return z.Lsh(d.mantOrZero(), uint(-d.scale))
}

// Int64 returns d rounded half-up to the nearest integer.
// The second return value is false if the result does not fit in an int64.
func (d BigDecimal) Int64() (int64, bool) {
	i := d.BigInt()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Float64 returns the nearest float64 to d. Values beyond float64 range
// overflow to an infinity, following the rounding of [big.Float]. The
// scale is applied as an exponent adjustment on the big.Float, so a huge
// mantissa paired with a huge scale converts without intermediate
// overflow.
func (d BigDecimal) Float64() float64 {
	f := new(big.Float).SetInt(d.mantOrZero())
	// SetMantExp(f, exp) computes f * 2^exp.
	f.SetMantExp(f, -d.scale)
	res, _ := f.Float64()
	return res
}

// formatScaled renders digits, the decimal digit string of a scaled
// absolute value, with the last places digits behind the decimal point.
// Trailing fractional zeros are trimmed; a fully fractional value gains a
// leading zero.
func formatScaled(neg bool, digits string, places int) string {
	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}
		whole, frac := digits[:len(digits)-places], digits[len(digits)-places:]
		frac = strings.TrimRight(frac, "0")
		if frac != "" {
			digits = whole + "." + frac
		} else {
			digits = whole
		}
	}
	if neg && digits != "0" {
		return "-" + digits
	}
	return digits
}

// ExactString returns the exact decimal representation of d. Every binary
// fraction is a finite decimal, via mant / 2^s = mant * 5^s / 10^s, so no
// rounding is involved; the output can run to s digits after the point.
func (d BigDecimal) ExactString() string {
	m := d.mantOrZero()
	if d.scale <= 0 {
		v := new(big.Int).Lsh(m, uint(-d.scale))
		return v.String()
	}
	neg := m.Sign() < 0
	v := new(big.Int).Abs(m)
	v.Mul(v, pow5(d.scale))
	return formatScaled(neg, v.String(), d.scale)
}

// String returns the decimal representation of d rounded, half-up, to the
// number of decimal places the scale can actually resolve: floor(s *
// log10 2) for scale s. The digits an exact expansion would add beyond
// that point carry no information the binary representation distinguishes.
//
// String implements the [fmt.Stringer] interface.
func (d BigDecimal) String() string {
	if d.scale <= 0 || d.IsZero() {
		return d.ExactString()
	}
	places := int(float64(d.scale) * math.Log10(2))
	if places == 0 {
		return d.BigInt().String()
	}
	m := d.mantOrZero()
	neg := m.Sign() < 0
	// v = |m| * 10^places / 2^s, rounded half-up
	v := new(big.Int).Abs(m)
	v.Mul(v, pow10(places))
	rshHalfUp(v, v, d.scale)
	return formatScaled(neg, v.String(), places)
}

// Parse converts a decimal string to a BigDecimal at [DefaultScale].
// Also see [ParseScale].
func Parse(s string) (BigDecimal, error) {
	return ParseScale(s, DefaultScale)
}

// ParseScale converts a decimal string to a BigDecimal at the given scale.
// The accepted syntax is an optional sign, digits with an optional decimal
// point, and an optional exponent part:
//
//	[+-]digits[.digits][(e|E)[+-]digits]
//
// The string is read as an exact fraction num/den in base ten and rounded
// half-up at the requested binary scale, so the result is always the
// closest representable value.
//
// ParseScale returns an error if the string is malformed, if the decimal
// exponent is unreasonably large, or if scale is outside
// [-MaxScale, MaxScale].
func ParseScale(s string, scale int) (BigDecimal, error) {
	if scale < -MaxScale || scale > MaxScale {
		return BigDecimal{}, errScaleRange
	}

	pos := 0
	width := len(s)

	// Sign
	neg := false
	if pos < width {
		switch s[pos] {
		case '-':
			neg = true
			pos++
		case '+':
			pos++
		}
	}

	// Integer and fractional digits
	num := new(big.Int)
	tenExp := 0
	hasDigits := false
	seenPoint := false
digits:
	for pos < width {
		c := s[pos]
		switch {
		case c >= '0' && c <= '9':
			num.Mul(num, intTen)
			num.Add(num, big.NewInt(int64(c-'0')))
			if seenPoint {
				tenExp--
			}
			hasDigits = true
		case c == '.':
			if seenPoint {
				return BigDecimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
			}
			seenPoint = true
		default:
			break digits
		}
		pos++
	}

	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		e, err := strconv.Atoi(s[pos:])
		if err != nil {
			return BigDecimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
		}
		tenExp += e
		pos = width
	}
	if !hasDigits || pos != width {
		return BigDecimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidNumber)
	}
	// A decimal exponent costs roughly 3.3 bits per unit; past twice the
	// scale range no representable value can come of it.
	if tenExp > 2*MaxScale || tenExp < -2*MaxScale {
		return BigDecimal{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
	}

	// value = num * 10^tenExp; express as num/den and round half-up at
	// the target scale: mant = round(num * 2^scale / den).
	if neg {
		num.Neg(num)
	}
	den := big.NewInt(1)
	if tenExp > 0 {
		num.Mul(num, pow10(tenExp))
	} else if tenExp < 0 {
		den = pow10(-tenExp)
	}
	if scale > 0 {
		num.Lsh(num, uint(scale))
	} else if scale < 0 {
		den.Lsh(den, uint(-scale))
	}
	// round(num/den) = floor((2*num + den) / (2*den)). The numerator is
	// signed and big.Int.Div floors for a positive divisor, so ties land
	// toward positive infinity for either sign, same as rshHalfUp.
	mant := new(big.Int).Lsh(num, 1)
	mant.Add(mant, den)
	mant.Div(mant, new(big.Int).Lsh(den, 1))
	return BigDecimal{mant: mant, scale: scale}, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface, using the
// exact decimal form so that a marshal and unmarshal at sufficient scale
// round-trips the value.
func (d BigDecimal) MarshalText() ([]byte, error) {
	return []byte(d.ExactString()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *BigDecimal) UnmarshalText(text []byte) error {
	p, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// Format implements the [fmt.Formatter] interface. The following verbs are
// supported:
//
//	%s, %v: rounded decimal, as returned by String
//	%q:     rounded decimal in double quotes
//	%f:     exact decimal, as returned by ExactString
func (d BigDecimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(state, d.String())
	case 'q':
		fmt.Fprintf(state, "%q", d.String())
	case 'f':
		fmt.Fprint(state, d.ExactString())
	default:
		fmt.Fprintf(state, "%%!%c(bigdecimal.BigDecimal=%s)", verb, d.String())
	}
}
