package expr

import "github.com/MT-0606/Coding-Calculus/pkg/rational"

// numval is a rational-or-real numeric value, shared by Const, Pow's
// exponent, Exponential's coefficient, and PowC's exponent. It preserves
// the "rational path stays rational through arithmetic when both sides
// are rational" invariant from spec.md §3.
type numval struct {
	isRational bool
	rat        rational.Rational
	real       float64
}

func numvalInt(n int64) numval {
	return numval{isRational: true, rat: rational.New(n, 1)}
}

func numvalRat(n, d int64) numval {
	return numval{isRational: true, rat: rational.New(n, d)}
}

func numvalReal(v float64) numval {
	return numval{isRational: false, real: v}
}

func (n numval) Float() float64 {
	if n.isRational {
		return n.rat.Float()
	}
	return n.real
}

func (n numval) String() string {
	if n.isRational {
		return n.rat.String()
	}
	return rational.FormatFloat(n.real)
}

func (n numval) IsZero() bool {
	if n.isRational {
		return n.rat.IsZero()
	}
	return n.real == 0
}

func (n numval) IsOne() bool {
	if n.isRational {
		return n.rat.IsOne()
	}
	return n.real == 1
}

func (n numval) IsInteger() bool {
	if n.isRational {
		return n.rat.IsInteger()
	}
	return n.real == float64(int64(n.real))
}

// Int returns the integer value and true when n is an exact integer.
func (n numval) Int() (int64, bool) {
	if !n.IsInteger() {
		return 0, false
	}
	if n.isRational {
		return n.rat.N, true
	}
	return int64(n.real), true
}

func (n numval) Add(o numval) numval {
	if n.isRational && o.isRational {
		return numval{isRational: true, rat: n.rat.Add(o.rat)}
	}
	return numvalReal(n.Float() + o.Float())
}

func (n numval) Sub(o numval) numval {
	if n.isRational && o.isRational {
		return numval{isRational: true, rat: n.rat.Sub(o.rat)}
	}
	return numvalReal(n.Float() - o.Float())
}

func (n numval) Mul(o numval) numval {
	if n.isRational && o.isRational {
		return numval{isRational: true, rat: n.rat.Mul(o.rat)}
	}
	return numvalReal(n.Float() * o.Float())
}

func (n numval) Div(o numval) numval {
	if n.isRational && o.isRational {
		if q, ok := n.rat.Div(o.rat); ok {
			return numval{isRational: true, rat: q}
		}
		return numvalReal(n.Float() / o.Float())
	}
	return numvalReal(n.Float() / o.Float())
}

func (n numval) Neg() numval {
	if n.isRational {
		return numval{isRational: true, rat: n.rat.Neg()}
	}
	return numvalReal(-n.real)
}

func (n numval) SubOne() numval {
	return n.Sub(numvalInt(1))
}
