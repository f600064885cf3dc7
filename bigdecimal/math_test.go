package bigdecimal

import (
	"math"
	"testing"
)

// within reports that got is within tol of want.
func within(t *testing.T, got, want, tol BigDecimal) bool {
	t.Helper()
	return got.Sub(want).Abs().Cmp(tol) <= 0
}

func TestBigDecimal_Sqrt(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			d, want string
		}{
			{"0", "0"},
			{"1", "1"},
			{"4", "2"},
			{"0.25", "0.5"},
			{"1024", "32"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.d).Sqrt()
			if err != nil {
				t.Errorf("%q.Sqrt() failed: %v", tt.d, err)
				continue
			}
			want := MustParse(tt.want)
			if !got.Equal(want) {
				t.Errorf("%q.Sqrt() = %q, want %q", tt.d, got, want)
			}
		}
	})

	t.Run("inexact", func(t *testing.T) {
		tests := []string{"2", "3", "5", "10", "123456789", "0.1"}
		for _, s := range tests {
			d := MustParse(s)
			r, err := d.Sqrt()
			if err != nil {
				t.Errorf("%q.Sqrt() failed: %v", s, err)
				continue
			}
			sq, err := r.MulFloatingPrec(r, 60)
			if err != nil {
				t.Errorf("squaring sqrt(%q) failed: %v", s, err)
				continue
			}
			// 23 significand bits give a relative error around 1e-7.
			tol, err := d.MulFloating(MustParse("0.000001"))
			if err != nil {
				t.Fatalf("tolerance failed: %v", err)
			}
			if !within(t, sq, d, tol) {
				t.Errorf("%q.Sqrt() = %q, square %q is not within %q", s, r, sq, tol)
			}
		}
	})

	t.Run("huge", func(t *testing.T) {
		d := MustNew(1, -2000) // 2^2000
		got, err := d.Sqrt()
		if err != nil {
			t.Fatalf("Sqrt of 2^2000 failed: %v", err)
		}
		want := MustNew(1, -1000) // 2^1000
		if !got.Equal(want) {
			t.Errorf("sqrt(2^2000) = %q, want 2^1000", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := MustParse("-1").Sqrt(); err == nil {
			t.Errorf("Sqrt of -1 did not fail")
		}
		if _, err := MustParse("2").SqrtPrec(0); err == nil {
			t.Errorf("SqrtPrec(0) did not fail")
		}
	})
}

func TestBigDecimal_Ln(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			want float64
		}{
			{"1", 0},
			{"2", math.Ln2},
			{"0.5", -math.Ln2},
			{"10", math.Log(10)},
			{"2.75", math.Log(2.75)},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.d).Ln()
			if err != nil {
				t.Errorf("%q.Ln() failed: %v", tt.d, err)
				continue
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%q.Ln() = %v, want %v", tt.d, got, tt.want)
			}
		}
	})

	t.Run("huge", func(t *testing.T) {
		d := MustNew(1, -10_000) // 2^10000, far beyond float64 range
		got, err := d.Ln()
		if err != nil {
			t.Fatalf("Ln of 2^10000 failed: %v", err)
		}
		want := 10_000 * math.Ln2
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("ln(2^10000) = %v, want %v", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, s := range []string{"0", "-1"} {
			if _, err := MustParse(s).Ln(); err == nil {
				t.Errorf("%q.Ln() did not fail", s)
			}
		}
	})
}

func TestExp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    float64
			want float64
		}{
			{0, 1},
			{1, math.E},
			{-1, 1 / math.E},
			{math.Ln2, 2},
			{5, math.Exp(5)},
			{-5, math.Exp(-5)},
		}
		for _, tt := range tests {
			got, err := Exp(tt.x)
			if err != nil {
				t.Errorf("Exp(%v) failed: %v", tt.x, err)
				continue
			}
			f := got.Float64()
			if math.Abs(f-tt.want) > 1e-5*tt.want {
				t.Errorf("Exp(%v) = %v, want %v", tt.x, f, tt.want)
			}
		}
	})

	t.Run("beyond float64", func(t *testing.T) {
		// e^1000 overflows float64 but has only a modest mantissa here.
		got, err := Exp(1000)
		if err != nil {
			t.Fatalf("Exp(1000) failed: %v", err)
		}
		l, err := got.Ln()
		if err != nil {
			t.Fatalf("Ln failed: %v", err)
		}
		if math.Abs(l-1000) > 0.001 {
			t.Errorf("ln(Exp(1000)) = %v, want 1000", l)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if _, err := Exp(x); err == nil {
				t.Errorf("Exp(%v) did not fail", x)
			}
		}
	})
}

func TestBigDecimal_PowInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    string
			n    int64
			want string
		}{
			{"2", 0, "1"},
			{"0", 0, "1"},
			{"2", 1, "2"},
			{"2", 10, "1024"},
			{"-2", 3, "-8"},
			{"-2", 4, "16"},
			{"2", -1, "0.5"},
			{"4", -2, "0.0625"},
			{"0.5", 3, "0.125"},
			{"0", 5, "0"},
			{"10", 6, "1000000"},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.d).PowInt(tt.n)
			if err != nil {
				t.Errorf("%q.PowInt(%v) failed: %v", tt.d, tt.n, err)
				continue
			}
			want := MustParse(tt.want)
			if !got.Equal(want) {
				t.Errorf("%q.PowInt(%v) = %q, want %q", tt.d, tt.n, got, want)
			}
		}
	})

	t.Run("large exponent", func(t *testing.T) {
		got, err := MustParse("2").PowInt(1000)
		if err != nil {
			t.Fatalf("PowInt(1000) failed: %v", err)
		}
		want := MustNew(1, -1000)
		if !got.Equal(want) {
			t.Errorf("2^1000 = %q, want 2^1000 exactly", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := MustParse("0").PowInt(-1); err == nil {
			t.Errorf("0.PowInt(-1) did not fail")
		}
	})
}

func TestBigDecimal_Pow(t *testing.T) {
	t.Run("integer exponent", func(t *testing.T) {
		got, err := MustParse("-2").Pow(MustParse("3"))
		if err != nil {
			t.Fatalf("Pow failed: %v", err)
		}
		if !got.Equal(MustParse("-8")) {
			t.Errorf("(-2)^3 = %q, want -8", got)
		}
	})

	t.Run("fractional exponent", func(t *testing.T) {
		tests := []struct {
			d, e string
			want float64
		}{
			{"4", "0.5", 2},
			{"2", "0.5", math.Sqrt2},
			{"10", "2.5", math.Pow(10, 2.5)},
			{"2", "-0.5", 1 / math.Sqrt2},
		}
		for _, tt := range tests {
			got, err := MustParse(tt.d).Pow(MustParse(tt.e))
			if err != nil {
				t.Errorf("%q.Pow(%q) failed: %v", tt.d, tt.e, err)
				continue
			}
			f := got.Float64()
			if math.Abs(f-tt.want) > 1e-4*tt.want {
				t.Errorf("%q.Pow(%q) = %v, want %v", tt.d, tt.e, f, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d, e string
		}{
			"zero negative": {"0", "-1"},
			"negative base": {"-2", "0.5"},
		}
		for name, tt := range tests {
			if _, err := MustParse(tt.d).Pow(MustParse(tt.e)); err == nil {
				t.Errorf("%v: %q.Pow(%q) did not fail", name, tt.d, tt.e)
			}
		}
	})
}

func FuzzBigDecimal_Sqrt(f *testing.F) {
	f.Add(int64(2), 0)
	f.Add(int64(123456789), 10)
	f.Add(int64(1), 40)
	f.Add(int64(99), -20)

	f.Fuzz(func(t *testing.T, mant int64, scale int) {
		if mant < 0 {
			mant = -mant
		}
		d, err := New(mant, scale)
		if err != nil {
			t.Skip()
			return
		}
		r, err := d.Sqrt()
		if err != nil {
			t.Skip()
			return
		}
		if r.IsNeg() {
			t.Fatalf("sqrt(%q) = %q is negative", d, r)
		}
		if d.IsZero() {
			if !r.IsZero() {
				t.Errorf("sqrt(%q) = %q, want 0", d, r)
			}
			return
		}
		sq, err := r.MulFloatingPrec(r, 60)
		if err != nil {
			t.Skip()
			return
		}
		// Relative error of the square stays within a few ULPs of the
		// 23-bit root.
		diff := sq.Sub(d).Abs()
		tol, err := d.MulFloating(MustParse("0.000001"))
		if err != nil {
			t.Skip()
			return
		}
		if diff.Cmp(tol) > 0 {
			t.Errorf("sqrt(%q) = %q, square %q too far off", d, r, sq)
		}
	})
}
