/*
Package bigdecimal implements arbitrary-precision binary-scaled numbers.
It is designed for games and simulations on unbounded playing fields,
where coordinates can grow beyond any fixed-width numeric type while
still carrying a fractional part.

# Representation

[BigDecimal] is a struct with two fields:

  - Mantissa: a [big.Int] holding the literal bits of the number.
  - Scale: an integer indicating how many of the low mantissa bits
    represent the fractional part.
    For example, a mantissa of 11 (binary 1011) and a scale of 2
    represent the value 2.75.
    The scale may be negative, in which case the value is an integer
    multiple of a power of two.
    The range of allowed values for the scale is from -100000 to 100000.

The numerical value of a BigDecimal is calculated as:

	Mantissa / 2^Scale

In this approach, the same numeric value can have multiple
representations. For example, a mantissa of 1 at scale 0 and a mantissa
of 4 at scale 2 both represent the value 1, at different precisions.

The base is two rather than ten so that every scale adjustment is a bit
shift on the mantissa. Shifts on a [big.Int] are linear in the operand
size, while the decimal equivalent requires multiplication or division
by powers of ten.

Special values such as [NaN], [Infinity], or [negative zeros] are not
supported. Arithmetic operations always produce either valid numbers
or errors.

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [ParseScale], [BigDecimal.String], [BigDecimal.ExactString],
    [BigDecimal.Format].
  - from/to float64:
    [NewFromFloat64], [NewFromFloat64Scale], [BigDecimal.Float64].
  - from/to int64:
    [New], [NewFromInt64], [BigDecimal.Int64].
  - from/to [big.Int]:
    [NewFromBigInt], [NewFromBigIntScale], [BigDecimal.BigInt].

Conversion from float64 decomposes the IEEE-754 bit pattern and is exact.
See the documentation for each method for more details.

# Operations

Arithmetic comes in two models, and each operation names the model it
follows:

 1. The fixed-point model keeps the scale of the first operand.
    [BigDecimal.Add], [BigDecimal.Sub], [BigDecimal.Mul],
    [BigDecimal.Quo], and [BigDecimal.Mod] belong to this model.
    A result has exactly as many fractional bits as the receiver, which
    keeps representation sizes predictable across long computations, at
    the cost of absolute precision: the integer part may grow without
    bound while the fractional resolution stays put.

 2. The floating-point model normalizes the result mantissa to a target
    number of significand bits, [DefaultPrec] unless the Prec variant is
    used. [BigDecimal.MulFloating], [BigDecimal.QuoFloating],
    [BigDecimal.Sqrt], [Exp], [BigDecimal.PowInt], and [BigDecimal.Pow]
    belong to this model.
    Relative precision is preserved across any dynamic range, which is
    what iterative algorithms such as Newton's method require.

Addition and subtraction are exact up to the receiver's scale in either
model and never fail.

# Rounding

All implicit rounding is half-up: ties round away from the lower
neighbor, matching the behavior of adding half an ULP and truncating.
Rounding occurs only at named boundaries:

  - rescaling to fewer fractional bits:
    [BigDecimal.Rescaled], [BigDecimal.Rescale], [BigDecimal.Normalized].
  - fixed-model multiplication and division:
    [BigDecimal.Mul], [BigDecimal.Quo].
  - conversion to integers and strings:
    [BigDecimal.BigInt], [BigDecimal.Int64], [BigDecimal.String].

[BigDecimal.Floor] and [BigDecimal.Ceil] round towards negative and
positive infinity respectively, and [BigDecimal.ExactString] never
rounds at all.

# Errors

All methods are pure except [BigDecimal.Rescale], and none panic;
the Must variants in this package panic so that test vectors and
constants can be written inline. Errors are returned in the
following cases:

  - Division by Zero.
    [BigDecimal.Quo], [BigDecimal.QuoFloating], and [BigDecimal.Mod]
    return an error when dividing by 0, as does [BigDecimal.Mod] when
    the divisor underflows to 0 at the receiver's scale.

  - Invalid Operation.
    [BigDecimal.Sqrt] returns an error for negative operands,
    [BigDecimal.Ln] for non-positive ones, and [BigDecimal.Pow] for
    0 raised to a negative power or a negative base raised to a
    fractional power.

  - Scale Range.
    A computed scale outside [-100000, 100000] is reported as an error,
    never clamped. Clamping would silently change the value by an
    unbounded factor of two.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[big.Int]: https://pkg.go.dev/math/big#Int
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package bigdecimal
