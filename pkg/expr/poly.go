package expr

import (
	"math"
	"sort"

	"github.com/MT-0606/Coding-Calculus/pkg/poly"
)

// ToPolynomial attempts to view e as a single-variable polynomial in x,
// returning an invalid Polynomial (OK == false) if e contains anything the
// normal form cannot represent (trig/exp/non-integer powers, y or y', a
// division by a non-constant, ...). It is the simplifier's fast path for
// sums of power terms; anything it rejects falls back to the general
// rewrite rules.
func ToPolynomial(e Expr) poly.Polynomial {
	switch t := e.(type) {
	case *Const:
		p := poly.New()
		p.Set(0, t.Real())
		return p
	case *VarX:
		p := poly.New()
		p.Set(1, 1)
		return p
	case *Pow:
		if t.IsRationalExponent() {
			n, d := t.RationalExponent()
			if d == 1 {
				p := poly.New()
				p.Set(int(n), 1)
				return p
			}
		}
		return poly.Invalid()
	case *AddSub:
		l := ToPolynomial(t.Left())
		r := ToPolynomial(t.Right())
		if !l.OK || !r.OK {
			return poly.Invalid()
		}
		if t.Op() == OpAdd {
			return poly.Plus(l, r)
		}
		return poly.Minus(l, r)
	case *Mul:
		l := ToPolynomial(t.Left())
		r := ToPolynomial(t.Right())
		if !l.OK || !r.OK {
			return poly.Invalid()
		}
		return poly.Times(l, r)
	case *Div:
		c, ok := t.Right().(*Const)
		if !ok || c.v.IsZero() {
			return poly.Invalid()
		}
		l := ToPolynomial(t.Left())
		if !l.OK {
			return poly.Invalid()
		}
		out := poly.New()
		denom := c.Real()
		for exp, coeff := range l.Terms {
			out.Set(exp, coeff/denom)
		}
		return out
	default:
		return poly.Invalid()
	}
}

// FromPolynomial renders a Polynomial back into an expression tree, highest
// exponent first, using AddSub/Mul/Pow/Const the way a hand-simplified
// result would be written.
func FromPolynomial(p poly.Polynomial) Expr {
	if !p.OK || len(p.Terms) == 0 {
		return NewConstInt(0)
	}
	exps := make([]int, 0, len(p.Terms))
	for e := range p.Terms {
		exps = append(exps, e)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(exps)))

	var result Expr
	for i, e := range exps {
		c := p.Terms[e]
		neg := c < 0
		mag := math.Abs(c)
		term := scaledTerm(e, mag)
		if i == 0 {
			if neg {
				result = NewMul(constExpr(-1), term)
			} else {
				result = term
			}
			continue
		}
		op := OpAdd
		if neg {
			op = OpSub
		}
		result = NewAddSub(result, term, op)
	}
	return result
}

func constExpr(c float64) Expr {
	if c == math.Trunc(c) {
		return NewConstInt(int64(c))
	}
	return NewConstReal(c)
}

func powTerm(e int) Expr {
	switch {
	case e == 0:
		return constExpr(1)
	case e == 1:
		return NewVarX()
	default:
		return newPowFromNumval(numvalInt(int64(e)))
	}
}

func scaledTerm(e int, mag float64) Expr {
	if e == 0 {
		return constExpr(mag)
	}
	p := powTerm(e)
	if mag == 1 {
		return p
	}
	return NewMul(constExpr(mag), p)
}
