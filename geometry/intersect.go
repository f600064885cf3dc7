package geometry

import (
	"math/big"

	"github.com/Infinite-Chess/boardmath/bigdecimal"
)

// Line is the infinite line Ax + By + C = 0 with exact integer
// coefficients. Any line through two integer points has such a form, and
// keeping the coefficients exact defers all rounding to the moment an
// intersection point is divided out.
type Line struct {
	A, B, C *big.Int
}

// LineFromPoints returns the line through p and q:
//
//	A = qy - py
//	B = px - qx
//	C = qx*py - px*qy
//
// The coefficients are not reduced; collinearity tests compare
// cross-multiplied products, which are insensitive to a common factor.
// If p equals q every coefficient is zero and the line is degenerate.
func LineFromPoints(p, q Coords) Line {
	a := new(big.Int).Sub(q.Y, p.Y)
	b := new(big.Int).Sub(p.X, q.X)
	c := new(big.Int).Mul(q.X, p.Y)
	c.Sub(c, new(big.Int).Mul(p.X, q.Y))
	return Line{A: a, B: b, C: c}
}

// LineFromPointVector returns the line through p with direction v.
func LineFromPointVector(p, v Coords) Line {
	a := new(big.Int).Set(v.Y)
	b := new(big.Int).Neg(v.X)
	c := new(big.Int).Mul(v.X, p.Y)
	c.Sub(c, new(big.Int).Mul(v.Y, p.X))
	return Line{A: a, B: b, C: c}
}

// ToBD converts the coefficients of l to binary-scaled form.
func (l Line) ToBD() BDLine {
	return BDLine{
		A: bigdecimal.NewFromBigInt(l.A),
		B: bigdecimal.NewFromBigInt(l.B),
		C: bigdecimal.NewFromBigInt(l.C),
	}
}

// BDLine is a line Ax + By + C = 0 with binary-scaled coefficients, for
// lines anchored at non-integer points.
type BDLine struct {
	A, B, C bigdecimal.BigDecimal
}

// BDLineFromPoints returns the line through p and q.
// Also see [LineFromPoints].
func BDLineFromPoints(p, q BDCoords) BDLine {
	return BDLine{
		A: q.Y.Sub(p.Y),
		B: p.X.Sub(q.X),
		C: q.X.Mul(p.Y).Sub(p.X.Mul(q.Y)),
	}
}

// BDLineFromPointVector returns the line through p with direction v.
func BDLineFromPointVector(p, v BDCoords) BDLine {
	return BDLine{
		A: v.Y,
		B: v.X.Neg(),
		C: v.X.Mul(p.Y).Sub(v.Y.Mul(p.X)),
	}
}

// Segment is the segment between two integer endpoints, carrying its
// containing line so repeated intersection tests do not recompute it.
type Segment struct {
	Start, End Coords
	Line       Line
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end Coords) Segment {
	return Segment{Start: start, End: end, Line: LineFromPoints(start, end)}
}

// Ray starts at an integer point and extends without bound in the
// direction of an integer vector.
type Ray struct {
	Start  Coords
	Vector Coords
	Line   Line
}

// NewRay returns the ray from start in the direction of vector.
func NewRay(start, vector Coords) Ray {
	return Ray{Start: start, Vector: vector, Line: LineFromPointVector(start, vector)}
}

// Box is an axis-aligned rectangle given by its minimum and maximum
// corners. Min must not exceed Max in either coordinate.
type Box struct {
	Min, Max BDCoords
}

// BoxIntersection is one crossing point of a line with a box edge.
// PositiveDot reports whether the point lies forward of the line's anchor
// along its direction vector; points at the anchor itself count as
// forward.
type BoxIntersection struct {
	Coords      BDCoords
	PositiveDot bool
}

// IntersectLines returns the intersection point of two lines by Cramer's
// rule. The numerators and the determinant are exact products of the
// integer coefficients; the single division producing each coordinate is
// the only rounding step.
//
// The second return value is false if the lines are parallel or either
// is degenerate. Coincident lines also report false: they have no single
// intersection point.
func IntersectLines(l1, l2 Line) (BDCoords, bool) {
	det := new(big.Int).Mul(l1.A, l2.B)
	det.Sub(det, new(big.Int).Mul(l2.A, l1.B))
	if det.Sign() == 0 {
		return BDCoords{}, false
	}
	// x = (B1*C2 - B2*C1) / det
	xn := new(big.Int).Mul(l1.B, l2.C)
	xn.Sub(xn, new(big.Int).Mul(l2.B, l1.C))
	// y = (A2*C1 - A1*C2) / det
	yn := new(big.Int).Mul(l2.A, l1.C)
	yn.Sub(yn, new(big.Int).Mul(l1.A, l2.C))

	den := bigdecimal.NewFromBigInt(det)
	x, err := bigdecimal.NewFromBigInt(xn).Quo(den)
	if err != nil {
		return BDCoords{}, false
	}
	y, err := bigdecimal.NewFromBigInt(yn).Quo(den)
	if err != nil {
		return BDCoords{}, false
	}
	return BDCoords{X: x, Y: y}, true
}

// IntersectBDLines is [IntersectLines] over binary-scaled coefficients.
func IntersectBDLines(l1, l2 BDLine) (BDCoords, bool) {
	det := l1.A.Mul(l2.B).Sub(l2.A.Mul(l1.B))
	if det.IsZero() {
		return BDCoords{}, false
	}
	xn := l1.B.Mul(l2.C).Sub(l2.B.Mul(l1.C))
	yn := l2.A.Mul(l1.C).Sub(l1.A.Mul(l2.C))
	x, err := xn.Quo(det)
	if err != nil {
		return BDCoords{}, false
	}
	y, err := yn.Quo(det)
	if err != nil {
		return BDCoords{}, false
	}
	return BDCoords{X: x, Y: y}, true
}

// IntersectLineVertical returns the point where l crosses the vertical
// line at the given x. The second return value is false if l is itself
// vertical.
func IntersectLineVertical(l BDLine, x bigdecimal.BigDecimal) (BDCoords, bool) {
	if l.B.IsZero() {
		return BDCoords{}, false
	}
	// y = -(A*x + C) / B
	y, err := l.A.Mul(x).Add(l.C).Neg().Quo(l.B)
	if err != nil {
		return BDCoords{}, false
	}
	return BDCoords{X: x, Y: y}, true
}

// IntersectLineHorizontal returns the point where l crosses the
// horizontal line at the given y. The second return value is false if l
// is itself horizontal.
func IntersectLineHorizontal(l BDLine, y bigdecimal.BigDecimal) (BDCoords, bool) {
	if l.A.IsZero() {
		return BDCoords{}, false
	}
	// x = -(B*y + C) / A
	x, err := l.B.Mul(y).Add(l.C).Neg().Quo(l.A)
	if err != nil {
		return BDCoords{}, false
	}
	return BDCoords{X: x, Y: y}, true
}

// within reports lo <= v <= hi for either order of lo and hi.
func within(v, lo, hi bigdecimal.BigDecimal) bool {
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

// IsPointOnSegment reports whether p, assumed to already lie on the
// segment's containing line, falls between the endpoints. The test is a
// bounding-box check, which is exact under that assumption; it is not a
// general point-on-segment predicate.
func IsPointOnSegment(p BDCoords, s Segment) bool {
	start, end := s.Start.ToBD(), s.End.ToBD()
	return within(p.X, start.X, end.X) && within(p.Y, start.Y, end.Y)
}

// onLine reports whether the integer point p satisfies the line equation
// of l exactly.
func onLine(p Coords, l Line) bool {
	v := new(big.Int).Mul(l.A, p.X)
	v.Add(v, new(big.Int).Mul(l.B, p.Y))
	v.Add(v, l.C)
	return v.Sign() == 0
}

// inRayDirection reports whether the point p, assumed on the ray's line,
// is at or forward of the ray start.
func inRayDirection(p BDCoords, r Ray) bool {
	rel := p.Sub(r.Start.ToBD())
	return rel.Dot(r.Vector.ToBD()).Sign() >= 0
}

// IntersectSegments returns the intersection point of two segments.
// The second return value is false if their lines are parallel or the
// crossing of the lines falls outside either segment. Overlapping
// collinear segments report false.
func IntersectSegments(s1, s2 Segment) (BDCoords, bool) {
	p, ok := IntersectLines(s1.Line, s2.Line)
	if !ok {
		return BDCoords{}, false
	}
	if !IsPointOnSegment(p, s1) || !IsPointOnSegment(p, s2) {
		return BDCoords{}, false
	}
	return p, true
}

// IntersectRayAndSegment returns the point where r crosses s.
//
// When the ray's line and the segment's line coincide, the only case
// reported is the segment ending exactly at the ray start: the shared
// endpoint is returned if the rest of the segment points away from the
// ray, since any deeper overlap has no single intersection point.
func IntersectRayAndSegment(r Ray, s Segment) (BDCoords, bool) {
	p, ok := IntersectLines(r.Line, s.Line)
	if !ok {
		// Parallel or collinear. A segment touching the ray start from
		// behind still intersects at exactly one point.
		if !onLine(r.Start, s.Line) {
			return BDCoords{}, false
		}
		var far Coords
		switch {
		case r.Start.Equal(s.Start):
			far = s.End
		case r.Start.Equal(s.End):
			far = s.Start
		default:
			return BDCoords{}, false
		}
		if far.Sub(r.Start).Dot(r.Vector).Sign() > 0 {
			return BDCoords{}, false
		}
		return r.Start.ToBD(), true
	}
	if !IsPointOnSegment(p, s) || !inRayDirection(p, r) {
		return BDCoords{}, false
	}
	return p, true
}

// IntersectRays returns the intersection point of two rays.
//
// Collinear rays intersect in a single point only when they point away
// from each other and one starts where it is still within the other;
// that shared extremity is returned. Collinear rays overlapping along a
// half-line report false.
func IntersectRays(r1, r2 Ray) (BDCoords, bool) {
	p, ok := IntersectLines(r1.Line, r2.Line)
	if !ok {
		if !onLine(r2.Start, r1.Line) {
			return BDCoords{}, false
		}
		sameDir := r1.Vector.Dot(r2.Vector).Sign() > 0
		if sameDir {
			return BDCoords{}, false
		}
		d12 := r2.Start.Sub(r1.Start).Dot(r1.Vector).Sign()
		d21 := r1.Start.Sub(r2.Start).Dot(r2.Vector).Sign()
		if d12 < 0 || d21 < 0 {
			return BDCoords{}, false
		}
		// Opposite directions with each start reachable from the other:
		// the overlap is a segment unless the starts coincide.
		if !r1.Start.Equal(r2.Start) {
			return BDCoords{}, false
		}
		return r1.Start.ToBD(), true
	}
	if !inRayDirection(p, r1) || !inRayDirection(p, r2) {
		return BDCoords{}, false
	}
	return p, true
}

// FindLineBoxIntersections returns the points where the line through p
// with direction v crosses the edges of box, ordered by their signed
// projection onto v: the entry point first, PositiveDot marking points at
// or forward of p. A line missing the box returns no points; a line
// through a corner returns that corner once.
func FindLineBoxIntersections(p Coords, v Coords, box Box) []BoxIntersection {
	l := LineFromPointVector(p, v).ToBD()

	var pts []BDCoords
	add := func(c BDCoords, lo, hi bigdecimal.BigDecimal, vertical bool) {
		// Reject crossings beyond the edge's extent.
		if vertical {
			if !within(c.Y, lo, hi) {
				return
			}
		} else {
			if !within(c.X, lo, hi) {
				return
			}
		}
		for _, q := range pts {
			if q.Equal(c) {
				return
			}
		}
		pts = append(pts, c)
	}

	if c, ok := IntersectLineVertical(l, box.Min.X); ok {
		add(c, box.Min.Y, box.Max.Y, true)
	}
	if c, ok := IntersectLineVertical(l, box.Max.X); ok {
		add(c, box.Min.Y, box.Max.Y, true)
	}
	if c, ok := IntersectLineHorizontal(l, box.Min.Y); ok {
		add(c, box.Min.X, box.Max.X, false)
	}
	if c, ok := IntersectLineHorizontal(l, box.Max.Y); ok {
		add(c, box.Min.X, box.Max.X, false)
	}

	pBD := p.ToBD()
	vBD := v.ToBD()
	proj := func(c BDCoords) bigdecimal.BigDecimal {
		return c.Sub(pBD).Dot(vBD)
	}
	if len(pts) == 2 && proj(pts[0]).Cmp(proj(pts[1])) > 0 {
		pts[0], pts[1] = pts[1], pts[0]
	}

	out := make([]BoxIntersection, len(pts))
	for i, c := range pts {
		out[i] = BoxIntersection{Coords: c, PositiveDot: proj(c).Sign() >= 0}
	}
	return out
}

// ClosestPointOnSegment returns the point of s nearest to p. The foot of
// the perpendicular from p is used when it lands on the segment;
// otherwise the nearer endpoint, compared by Chebyshev distance, which
// agrees with the Euclidean order once the foot is off the segment.
func ClosestPointOnSegment(p BDCoords, s Segment) BDCoords {
	v := s.End.Sub(s.Start)
	perp := BDLineFromPointVector(p, v.Perp().ToBD())
	if foot, ok := IntersectBDLines(s.Line.ToBD(), perp); ok {
		if IsPointOnSegment(foot, s) {
			return foot
		}
	}
	start, end := s.Start.ToBD(), s.End.ToBD()
	if ChebyshevDistance(p, start).Cmp(ChebyshevDistance(p, end)) <= 0 {
		return start
	}
	return end
}
