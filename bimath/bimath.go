// Package bimath provides small helper functions over [big.Int] that the
// bigdecimal and geometry packages share: bit length, base-2 and natural
// logarithms, absolute values, and a two's-complement formatter for
// debugging mantissas.
package bimath

import (
	"errors"
	"math"
	"math/big"
	"strings"
)

var errNonPositiveLog = errors.New("logarithm of non-positive number")

// BitLength returns the length of the absolute value of x in bits.
// BitLength assumes that 0 has no bits.
func BitLength(x *big.Int) int {
	return x.BitLen()
}

// Log2 calculates an approximation of the base-2 logarithm of x.
// The top 53 bits of x contribute the fractional part, so the result
// carries full float64 precision regardless of the magnitude of x.
func Log2(x *big.Int) (float64, error) {
	if x.Sign() <= 0 {
		return 0, errNonPositiveLog
	}
	n := x.BitLen()
	if n <= 53 {
		return math.Log2(float64(x.Uint64())), nil
	}
	// head = x >> (n - 53), so x = head * 2^(n-53) up to truncation
	// of bits below float64 precision.
	head := new(big.Int).Rsh(x, uint(n-53))
	return float64(n-53) + math.Log2(float64(head.Uint64())), nil
}

// Ln calculates an approximation of the natural logarithm of x.
// Also see function [Log2].
func Ln(x *big.Int) (float64, error) {
	l, err := Log2(x)
	if err != nil {
		return 0, err
	}
	return l * math.Ln2, nil
}

// Abs returns a new big.Int holding the absolute value of x.
// The argument is never modified.
func Abs(x *big.Int) *big.Int {
	return new(big.Int).Abs(x)
}

// TwosComplementString formats x as a fixed-width two's-complement bit
// string, the way the bits would appear in a width-bit machine register.
// It is meant for debugging mantissas, not for round-tripping values.
// If x does not fit in width bits, the most significant bits are simply
// cut off, mirroring machine truncation.
func TwosComplementString(x *big.Int, width int) string {
	if width <= 0 {
		return ""
	}
	v := new(big.Int)
	if x.Sign() < 0 {
		// v = 2^width + x
		v.Lsh(big.NewInt(1), uint(width))
		v.Add(v, x)
	} else {
		v.Set(x)
	}
	// Keep the low width bits only.
	mask := new(big.Int).Lsh(big.NewInt(1), uint(width))
	mask.Sub(mask, big.NewInt(1))
	v.And(v, mask)

	s := v.Text(2)
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}
