// Package rational implements exact arithmetic over 64-bit signed
// fractions, plus the decimal formatting rules shared by the rest of the
// engine. It deliberately does not use math/big: the engine's contract
// is fixed-width rational arithmetic, overflow included as a declared
// limitation, not arbitrary precision.
package rational

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rational is a normalized fraction N/D with D >= 1 and gcd(|N|, D) == 1.
type Rational struct {
	N, D int64
}

// New builds a Rational from n/d, normalizing sign onto the numerator and
// reducing by the gcd. Panics are never raised for d == 0; callers that
// construct a rational from user-controlled input are responsible for
// checking the denominator first.
func New(n, d int64) Rational {
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs(n), d)
	if g == 0 {
		g = 1
	}
	return Rational{N: n / g, D: d / g}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return New(r.N*o.D+o.N*r.D, r.D*o.D)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return New(r.N*o.D-o.N*r.D, r.D*o.D)
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return New(r.N*o.N, r.D*o.D)
}

// Div returns r / o. The second result is false (and the first result is
// the zero value) when o's numerator is zero.
func (r Rational) Div(o Rational) (Rational, bool) {
	if o.N == 0 {
		return Rational{}, false
	}
	return New(r.N*o.D, r.D*o.N), true
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{N: -r.N, D: r.D}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.N == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.N == r.D }

// IsInteger reports whether r reduces to an integer.
func (r Rational) IsInteger() bool { return r.D == 1 }

// Float converts r to a float64.
func (r Rational) Float() float64 { return float64(r.N) / float64(r.D) }

// String renders r per the engine's stable textual form: "n/d", or just
// "n" when d == 1.
func (r Rational) String() string {
	if r.D == 1 {
		return strconv.FormatInt(r.N, 10)
	}
	return fmt.Sprintf("%d/%d", r.N, r.D)
}

// FormatFloat renders v per the engine's decimal formatting rule:
// integer-valued doubles print without a decimal point; otherwise up to
// 8 decimal places with trailing zeros stripped. NaN and the infinities
// print as "nan", "inf", "-inf".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	s := strconv.FormatFloat(v, 'f', 8, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
