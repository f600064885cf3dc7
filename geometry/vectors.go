// Package geometry implements exact 2D line geometry over integer and
// binary-scaled coordinates, sized for playing fields that extend far
// beyond float64 range. Points, directions, and lines carry [big.Int]
// components; the only rounding happens in the final division that
// produces an intersection point, performed in [bigdecimal] arithmetic.
package geometry

import (
	"math/big"

	"github.com/Infinite-Chess/boardmath/bigdecimal"
)

// Coords is an exact integer point or direction vector.
type Coords struct {
	X, Y *big.Int
}

// NewCoords returns the point (x, y).
func NewCoords(x, y int64) Coords {
	return Coords{X: big.NewInt(x), Y: big.NewInt(y)}
}

// Add returns the component-wise sum of c and d.
func (c Coords) Add(d Coords) Coords {
	return Coords{
		X: new(big.Int).Add(c.X, d.X),
		Y: new(big.Int).Add(c.Y, d.Y),
	}
}

// Sub returns the component-wise difference of c and d.
func (c Coords) Sub(d Coords) Coords {
	return Coords{
		X: new(big.Int).Sub(c.X, d.X),
		Y: new(big.Int).Sub(c.Y, d.Y),
	}
}

// Neg returns c with both components negated.
func (c Coords) Neg() Coords {
	return Coords{
		X: new(big.Int).Neg(c.X),
		Y: new(big.Int).Neg(c.Y),
	}
}

// Perp returns c rotated a quarter turn counterclockwise: (-y, x).
// The result is perpendicular to c and of equal length.
func (c Coords) Perp() Coords {
	return Coords{
		X: new(big.Int).Neg(c.Y),
		Y: new(big.Int).Set(c.X),
	}
}

// Dot returns the dot product of c and d, exactly.
func (c Coords) Dot(d Coords) *big.Int {
	p := new(big.Int).Mul(c.X, d.X)
	q := new(big.Int).Mul(c.Y, d.Y)
	return p.Add(p, q)
}

// Equal returns true if c and d are the same point.
func (c Coords) Equal(d Coords) bool {
	return c.X.Cmp(d.X) == 0 && c.Y.Cmp(d.Y) == 0
}

// IsZero returns true if both components of c are zero.
func (c Coords) IsZero() bool {
	return c.X.Sign() == 0 && c.Y.Sign() == 0
}

// ToBD converts c to binary-scaled coordinates at the default scale.
func (c Coords) ToBD() BDCoords {
	return BDCoords{
		X: bigdecimal.NewFromBigInt(c.X),
		Y: bigdecimal.NewFromBigInt(c.Y),
	}
}

// BDCoords is a point or direction vector with binary-scaled components,
// used wherever a coordinate may fall between integer squares.
type BDCoords struct {
	X, Y bigdecimal.BigDecimal
}

// NewBDCoords returns the point (x, y).
func NewBDCoords(x, y bigdecimal.BigDecimal) BDCoords {
	return BDCoords{X: x, Y: y}
}

// Add returns the component-wise sum of c and d.
func (c BDCoords) Add(d BDCoords) BDCoords {
	return BDCoords{X: c.X.Add(d.X), Y: c.Y.Add(d.Y)}
}

// Sub returns the component-wise difference of c and d.
func (c BDCoords) Sub(d BDCoords) BDCoords {
	return BDCoords{X: c.X.Sub(d.X), Y: c.Y.Sub(d.Y)}
}

// Dot returns the dot product of c and d in the fixed-point model.
func (c BDCoords) Dot(d BDCoords) bigdecimal.BigDecimal {
	return c.X.Mul(d.X).Add(c.Y.Mul(d.Y))
}

// Equal returns true if c and d represent the same point, regardless of
// the scales their components are carried at.
func (c BDCoords) Equal(d BDCoords) bool {
	return c.X.Equal(d.X) && c.Y.Equal(d.Y)
}

// ChebyshevDistance returns the Chebyshev distance between c and d: the
// larger of the absolute coordinate differences. On a board where a king
// moves one square in any direction, this is the number of moves between
// the two points, and it needs no square root.
func ChebyshevDistance(c, d BDCoords) bigdecimal.BigDecimal {
	dx := c.X.Sub(d.X).Abs()
	dy := c.Y.Sub(d.Y).Abs()
	return dx.Max(dy)
}

// Distance returns the Euclidean distance between c and d at the default
// floating-point precision.
func Distance(c, d BDCoords) (bigdecimal.BigDecimal, error) {
	dx := c.X.Sub(d.X)
	dy := c.Y.Sub(d.Y)
	xx, err := dx.MulFloating(dx)
	if err != nil {
		return bigdecimal.BigDecimal{}, err
	}
	yy, err := dy.MulFloating(dy)
	if err != nil {
		return bigdecimal.BigDecimal{}, err
	}
	return xx.Add(yy).Sqrt()
}
