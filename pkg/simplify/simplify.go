// Package simplify implements algebraic simplification over pkg/expr trees:
// a polynomial fast path, exact-rational constant folding, identity
// elimination, a handful of trig pattern rewrites, and common-factor
// extraction across sums. It is intentionally heuristic rather than a
// complete decision procedure: it will not canonicalize every pair of
// algebraically equivalent forms to the same tree.
package simplify

import (
	"math"

	"github.com/MT-0606/Coding-Calculus/pkg/expr"
	"github.com/MT-0606/Coding-Calculus/pkg/poly"
	"github.com/MT-0606/Coding-Calculus/pkg/rational"
)

// Options controls simplification behavior.
type Options struct {
	// MaxIterations bounds the fixpoint loop in Simplify.
	MaxIterations int
}

// DefaultOptions returns the default simplification options.
func DefaultOptions() Options {
	return Options{MaxIterations: 10}
}

// Simplify rewrites e into an algebraically equivalent, smaller-or-equal
// form, iterating to a fixpoint (or until MaxIterations is exhausted).
func Simplify(e expr.Expr, opts ...Options) expr.Expr {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	current := e
	for i := 0; i < options.MaxIterations; i++ {
		next := simplifyOnce(current)
		if next.String() == current.String() {
			return next
		}
		current = next
	}
	return current
}

// simplifyOnce simplifies children first, then applies one pass of
// node-specific rewrite rules.
func simplifyOnce(e expr.Expr) expr.Expr {
	switch t := e.(type) {
	case *expr.Const, *expr.VarX, *expr.VarY, *expr.DerivY:
		return e

	case *expr.Exponential,
		*expr.Sin, *expr.Cos, *expr.Tan, *expr.Csc, *expr.Sec, *expr.Cot,
		*expr.ArcSin, *expr.ArcCos, *expr.ArcTan, *expr.ArcCsc, *expr.ArcSec, *expr.ArcCot:
		return e

	case *expr.Pow:
		if t.IsRationalExponent() {
			n, d := t.RationalExponent()
			if d == 1 {
				switch n {
				case 0:
					return expr.NewConstInt(1)
				case 1:
					return expr.NewVarX()
				}
			}
		}
		return e

	case *expr.AddSub:
		l := simplifyOnce(t.Left())
		r := simplifyOnce(t.Right())
		return simplifyAddSub(l, r, t.Op())

	case *expr.Mul:
		l := simplifyOnce(t.Left())
		r := simplifyOnce(t.Right())
		return simplifyMul(l, r)

	case *expr.Div:
		l := simplifyOnce(t.Left())
		r := simplifyOnce(t.Right())
		return simplifyDiv(l, r)

	case *expr.SinC:
		in := simplifyOnce(t.Inner())
		if c, ok := in.(*expr.Const); ok {
			return foldFiniteUnary(math.Sin(c.Real()), expr.NewSinC(in))
		}
		return expr.NewSinC(in)

	case *expr.CosC:
		in := simplifyOnce(t.Inner())
		if c, ok := in.(*expr.Const); ok {
			return foldFiniteUnary(math.Cos(c.Real()), expr.NewCosC(in))
		}
		return expr.NewCosC(in)

	case *expr.ExpC:
		in := simplifyOnce(t.Inner())
		if c, ok := in.(*expr.Const); ok {
			return foldFiniteUnary(math.Exp(c.Real()), expr.NewExpC(in))
		}
		return expr.NewExpC(in)

	case *expr.Sqrt:
		in := simplifyOnce(t.Inner())
		if c, ok := in.(*expr.Const); ok {
			return foldFiniteUnary(math.Sqrt(c.Real()), expr.NewSqrt(in))
		}
		return expr.NewSqrt(in)

	case *expr.PowC:
		in := simplifyOnce(t.Inner())
		if t.IsRationalExponent() {
			n, d := t.RationalExponent()
			if d == 1 {
				switch n {
				case 0:
					return expr.NewConstInt(1)
				case 1:
					return in
				}
			}
		}
		if c, ok := in.(*expr.Const); ok {
			return foldPowConst(c, t, in)
		}
		return rebuildPowC(t, in)

	case *expr.Chain:
		outer := simplifyOnce(t.Outer())
		inner := simplifyOnce(t.Inner())
		if c, ok := inner.(*expr.Const); ok {
			v := outer.Evaluate(c.Real())
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return constFromFloat(v)
			}
		}
		return expr.NewChain(outer, inner)

	default:
		return e
	}
}

func foldFiniteUnary(v float64, fallback expr.Expr) expr.Expr {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return constFromFloat(v)
}

// foldPowConst implements the declared policy for PowC(Const, e): fold when
// the exponent is integral, or when the base is nonnegative so the real
// power is unambiguous; otherwise leave the result symbolic rather than
// silently produce NaN.
func foldPowConst(c *expr.Const, t *expr.PowC, in expr.Expr) expr.Expr {
	base := c.Real()
	if t.IsRationalExponent() {
		n, d := t.RationalExponent()
		if d == 1 {
			return constFromFloat(math.Pow(base, float64(n)))
		}
	}
	if base >= 0 {
		v := math.Pow(base, t.Exponent())
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return constFromFloat(v)
		}
	}
	return rebuildPowC(t, in)
}

func rebuildPowC(t *expr.PowC, in expr.Expr) expr.Expr {
	if t.IsRationalExponent() {
		n, d := t.RationalExponent()
		return expr.NewPowCRat(in, n, d)
	}
	return expr.NewPowCReal(in, t.Exponent())
}

func constFromFloat(v float64) *expr.Const {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return expr.NewConstInt(int64(v))
	}
	return expr.NewConstReal(v)
}

// --- AddSub ---------------------------------------------------------------

func simplifyAddSub(l, r expr.Expr, op expr.AddOp) expr.Expr {
	// Step 2: exact/real constant folding, ahead of the polynomial path so
	// rational literals keep their exact value instead of rounding through
	// a float64 coefficient map.
	if lc, ok := l.(*expr.Const); ok {
		if rc, ok := r.(*expr.Const); ok {
			return foldConstAdd(lc, rc, op)
		}
	}

	// Step 1: polynomial fast path.
	if combined, ok := tryPolynomialAddSub(l, r, op); ok {
		return combined
	}

	// Step 3: identity elimination.
	if id, ok := addSubIdentity(l, r, op); ok {
		return id
	}

	// Step 4: trig pattern rewrites (op == '-' only).
	if op == expr.OpSub {
		if rw, ok := tanSecPattern(l, r); ok {
			return rw
		}
	}

	// Step 5: common-factor extraction.
	if cf, ok := commonFactorExtract(l, r, op); ok {
		return cf
	}

	return expr.NewAddSub(l, r, op)
}

func tryPolynomialAddSub(l, r expr.Expr, op expr.AddOp) (expr.Expr, bool) {
	pl := expr.ToPolynomial(l)
	pr := expr.ToPolynomial(r)
	if !pl.OK || !pr.OK {
		return nil, false
	}
	var combined poly.Polynomial
	if op == expr.OpAdd {
		combined = poly.Plus(pl, pr)
	} else {
		combined = poly.Minus(pl, pr)
	}
	return expr.FromPolynomial(combined), true
}

func addSubIdentity(l, r expr.Expr, op expr.AddOp) (expr.Expr, bool) {
	if isZeroConst(r) {
		return l, true
	}
	if isZeroConst(l) {
		if op == expr.OpAdd {
			return r, true
		}
		return negate(r), true
	}
	// x + (-1)*y  ->  x - y ; x - (-1)*y -> x + y
	if neg, inner, ok := negatedFactor(r); ok && neg {
		if op == expr.OpAdd {
			return expr.NewAddSub(l, inner, expr.OpSub), true
		}
		return expr.NewAddSub(l, inner, expr.OpAdd), true
	}
	return nil, false
}

// negatedFactor reports whether e is Mul(Const(-1), inner) or
// Mul(inner, Const(-1)), returning the inner factor.
func negatedFactor(e expr.Expr) (neg bool, inner expr.Expr, ok bool) {
	m, isMul := e.(*expr.Mul)
	if !isMul {
		return false, nil, false
	}
	if c, isConst := m.Left().(*expr.Const); isConst && isNegOne(c) {
		return true, m.Right(), true
	}
	if c, isConst := m.Right().(*expr.Const); isConst && isNegOne(c) {
		return true, m.Left(), true
	}
	return false, nil, false
}

func isNegOne(c *expr.Const) bool {
	if c.IsRational() {
		n, d := c.Rational()
		return n == -d
	}
	return c.Real() == -1
}

func negate(e expr.Expr) expr.Expr {
	if c, ok := e.(*expr.Const); ok {
		return foldConstMul(c, expr.NewConstInt(-1))
	}
	return expr.NewMul(expr.NewConstInt(-1), e)
}

func isZeroConst(e expr.Expr) bool {
	c, ok := e.(*expr.Const)
	return ok && c.Real() == 0
}

// tanSecPattern matches tan*(1+tan) - sec*sec -> tan - 1, and its reverse
// orientation sec*sec - tan*(1+tan) -> 1 - tan.
func tanSecPattern(l, r expr.Expr) (expr.Expr, bool) {
	if isTanOnePlusTan(l) && isSecSquare(r) {
		return expr.NewAddSub(expr.NewTan(), expr.NewConstInt(1), expr.OpSub), true
	}
	if isSecSquare(l) && isTanOnePlusTan(r) {
		return expr.NewAddSub(expr.NewConstInt(1), expr.NewTan(), expr.OpSub), true
	}
	return nil, false
}

func isTanOnePlusTan(e expr.Expr) bool {
	m, ok := e.(*expr.Mul)
	if !ok {
		return false
	}
	factors := []expr.Expr{m.Left(), m.Right()}
	var sawTan, sawSum bool
	for _, f := range factors {
		if _, ok := f.(*expr.Tan); ok {
			sawTan = true
			continue
		}
		if add, ok := f.(*expr.AddSub); ok && add.Op() == expr.OpAdd {
			if isOneOrTan(add.Left()) && isOneOrTan(add.Right()) {
				sawSum = true
			}
		}
	}
	return sawTan && sawSum
}

func isOneOrTan(e expr.Expr) bool {
	if c, ok := e.(*expr.Const); ok {
		return c.Real() == 1
	}
	_, ok := e.(*expr.Tan)
	return ok
}

func isSecSquare(e expr.Expr) bool {
	m, ok := e.(*expr.Mul)
	if !ok {
		return false
	}
	_, okL := m.Left().(*expr.Sec)
	_, okR := m.Right().(*expr.Sec)
	return okL && okR
}

// commonFactorExtract flattens both sides into multiplicative factor bags
// and, on finding a shared factor (by textual equality, or a VarX matched
// against an integer power of x), returns common * (restL op restR).
func commonFactorExtract(l, r expr.Expr, op expr.AddOp) (expr.Expr, bool) {
	lf := flattenFactors(l)
	rf := flattenFactors(r)

	for i, fl := range lf {
		for j, fr := range rf {
			if fl.String() == fr.String() {
				restL := rebuildProduct(removeAt(lf, i))
				restR := rebuildProduct(removeAt(rf, j))
				return expr.NewMul(fl, expr.NewAddSub(restL, restR, op)), true
			}
		}
	}

	if common, restL, restR, ok := varPowCommonFactor(lf, rf); ok {
		return expr.NewMul(common, expr.NewAddSub(restL, restR, op)), true
	}
	if common, restR, restL, ok := varPowCommonFactor(rf, lf); ok {
		return expr.NewMul(common, expr.NewAddSub(restL, restR, op)), true
	}

	return nil, false
}

func flattenFactors(e expr.Expr) []expr.Expr {
	if m, ok := e.(*expr.Mul); ok {
		return append(flattenFactors(m.Left()), flattenFactors(m.Right())...)
	}
	return []expr.Expr{e}
}

func removeAt(factors []expr.Expr, i int) []expr.Expr {
	out := make([]expr.Expr, 0, len(factors)-1)
	for k, f := range factors {
		if k != i {
			out = append(out, f)
		}
	}
	return out
}

func rebuildProduct(factors []expr.Expr) expr.Expr {
	if len(factors) == 0 {
		return expr.NewConstInt(1)
	}
	result := factors[0]
	for _, f := range factors[1:] {
		result = expr.NewMul(result, f)
	}
	return result
}

// varPowCommonFactor looks for a bare VarX in lf matched by an integer,
// nonnegative Pow(e>=1) in rf; it returns VarX as the common factor and
// decrements the exponent on the rf side.
func varPowCommonFactor(lf, rf []expr.Expr) (common, restL, restR expr.Expr, ok bool) {
	for i, fl := range lf {
		if _, isVar := fl.(*expr.VarX); !isVar {
			continue
		}
		for j, fr := range rf {
			p, isPow := fr.(*expr.Pow)
			if !isPow || !p.IsRationalExponent() {
				continue
			}
			n, d := p.RationalExponent()
			if d != 1 || n < 1 {
				continue
			}
			restRF := make([]expr.Expr, len(rf))
			copy(restRF, rf)
			if n == 1 {
				restRF = removeAt(restRF, j)
			} else {
				restRF[j] = expr.NewPowInt(n - 1)
			}
			return fl, rebuildProduct(removeAt(lf, i)), rebuildProduct(restRF), true
		}
	}
	return nil, nil, nil, false
}

// --- Mul / Div --------------------------------------------------------------

func simplifyMul(l, r expr.Expr) expr.Expr {
	if lc, ok := l.(*expr.Const); ok {
		if rc, ok := r.(*expr.Const); ok {
			return foldConstMul(lc, rc)
		}
	}

	factors := flattenFactors(expr.NewMul(l, r))
	var constProd *expr.Const
	others := make([]expr.Expr, 0, len(factors))
	for _, f := range factors {
		if c, ok := f.(*expr.Const); ok {
			if constProd == nil {
				constProd = c
			} else {
				constProd = foldConstMul(constProd, c)
			}
			continue
		}
		others = append(others, f)
	}

	if constProd != nil && constProd.Real() == 0 {
		return expr.NewConstInt(0)
	}

	if len(others) == 0 {
		if constProd == nil {
			return expr.NewConstInt(1)
		}
		return constProd
	}

	rest := others[0]
	for _, o := range others[1:] {
		rest = expr.NewMul(rest, o)
	}

	if constProd == nil || constProd.Real() == 1 {
		return rest
	}
	return expr.NewMul(constProd, rest)
}

func simplifyDiv(l, r expr.Expr) expr.Expr {
	if isZeroConst(l) {
		return expr.NewConstInt(0)
	}
	if rc, ok := r.(*expr.Const); ok {
		if rc.Real() == 1 {
			return l
		}
		if isNegOne(rc) {
			return negate(l)
		}
		if lc, ok := l.(*expr.Const); ok {
			return foldConstDiv(lc, rc)
		}
	}
	return expr.NewDiv(l, r)
}

// --- exact rational folding --------------------------------------------------

func toRational(c *expr.Const) (rational.Rational, bool) {
	if !c.IsRational() {
		return rational.Rational{}, false
	}
	n, d := c.Rational()
	return rational.New(n, d), true
}

func foldConstAdd(l, r *expr.Const, op expr.AddOp) expr.Expr {
	lr, lok := toRational(l)
	rr, rok := toRational(r)
	if lok && rok {
		var res rational.Rational
		if op == expr.OpAdd {
			res = lr.Add(rr)
		} else {
			res = lr.Sub(rr)
		}
		return expr.NewConstRat(res.N, res.D)
	}
	if op == expr.OpAdd {
		return constFromFloat(l.Real() + r.Real())
	}
	return constFromFloat(l.Real() - r.Real())
}

func foldConstMul(l, r *expr.Const) *expr.Const {
	lr, lok := toRational(l)
	rr, rok := toRational(r)
	if lok && rok {
		res := lr.Mul(rr)
		return expr.NewConstRat(res.N, res.D)
	}
	return constFromFloat(l.Real() * r.Real())
}

func foldConstDiv(l, r *expr.Const) expr.Expr {
	lr, lok := toRational(l)
	rr, rok := toRational(r)
	if lok && rok {
		res, ok := lr.Div(rr)
		if !ok {
			return expr.NaN()
		}
		return expr.NewConstRat(res.N, res.D)
	}
	if r.Real() == 0 {
		return expr.NaN()
	}
	return constFromFloat(l.Real() / r.Real())
}
