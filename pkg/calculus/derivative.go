// Package calculus implements symbolic differentiation with respect to x.
package calculus

import (
	"github.com/MT-0606/Coding-Calculus/pkg/expr"
	"github.com/MT-0606/Coding-Calculus/pkg/simplify"
	"github.com/MT-0606/Coding-Calculus/pkg/subst"
)

// Derivative computes d/dx applied structurally to e and simplifies the
// result, per the differentiation table.
func Derivative(e expr.Expr) expr.Expr {
	return simplify.Simplify(differentiate(e))
}

func differentiate(e expr.Expr) expr.Expr {
	switch t := e.(type) {
	case *expr.Const:
		return expr.NewConstInt(0)

	case *expr.VarX:
		return expr.NewConstInt(1)

	case *expr.VarY:
		return expr.NewDerivY()

	case *expr.DerivY:
		// Opaque: this engine differentiates once, so y' simply carries
		// through any expression it appears in unchanged.
		return expr.NewDerivY()

	case *expr.Pow:
		coeff, lowered := powExponentMinusOne(t)
		return expr.NewMul(coeff, lowered)

	case *expr.Exponential:
		return expr.NewMul(exponentialCoeffConst(t), t)

	case *expr.AddSub:
		return expr.NewAddSub(Derivative(t.Left()), Derivative(t.Right()), t.Op())

	case *expr.Mul:
		f, g := t.Left(), t.Right()
		fp, gp := Derivative(f), Derivative(g)
		return expr.NewAddSub(expr.NewMul(fp, g), expr.NewMul(f, gp), expr.OpAdd)

	case *expr.Div:
		f, g := t.Left(), t.Right()
		fp, gp := Derivative(f), Derivative(g)
		num := expr.NewAddSub(expr.NewMul(fp, g), expr.NewMul(f, gp), expr.OpSub)
		den := expr.NewMul(g, g)
		return expr.NewDiv(num, den)

	case *expr.Chain:
		outerPrime := Derivative(t.Outer())
		outerPrimeAtInner := subst.Substitute(outerPrime, t.Inner())
		innerPrime := Derivative(t.Inner())
		return expr.NewMul(outerPrimeAtInner, innerPrime)

	case *expr.SinC:
		return expr.NewMul(expr.NewCosC(t.Inner()), Derivative(t.Inner()))

	case *expr.CosC:
		negSin := expr.NewMul(expr.NewConstInt(-1), expr.NewSinC(t.Inner()))
		return expr.NewMul(negSin, Derivative(t.Inner()))

	case *expr.PowC:
		coeff, lowered := powCExponentMinusOne(t)
		return expr.NewMul(expr.NewMul(coeff, lowered), Derivative(t.Inner()))

	case *expr.ExpC:
		return expr.NewMul(t, Derivative(t.Inner()))

	case *expr.Sqrt:
		return expr.NewDiv(Derivative(t.Inner()), expr.NewMul(expr.NewConstInt(2), t))

	case *expr.Sin:
		return expr.NewCos()
	case *expr.Cos:
		return expr.NewMul(expr.NewConstInt(-1), expr.NewSin())
	case *expr.Tan:
		return expr.NewMul(expr.NewSec(), expr.NewSec())
	case *expr.Csc:
		return expr.NewMul(expr.NewConstInt(-1), expr.NewMul(expr.NewCsc(), expr.NewCot()))
	case *expr.Sec:
		return expr.NewMul(expr.NewSec(), expr.NewTan())
	case *expr.Cot:
		return expr.NewMul(expr.NewConstInt(-1), expr.NewDiv(expr.NewConstInt(1), expr.NewMul(expr.NewSin(), expr.NewSin())))

	case *expr.ArcSin:
		return expr.NewDiv(expr.NewConstInt(1), oneMinusXSquaredSqrt())
	case *expr.ArcCos:
		return expr.NewMul(expr.NewConstInt(-1), expr.NewDiv(expr.NewConstInt(1), oneMinusXSquaredSqrt()))
	case *expr.ArcTan:
		return expr.NewDiv(expr.NewConstInt(1), onePlusXSquared())
	case *expr.ArcCsc:
		return expr.NewMul(expr.NewConstInt(-1), expr.NewDiv(expr.NewConstInt(1), xSquaredSqrtTimesXSquaredMinusOneSqrt()))
	case *expr.ArcSec:
		return expr.NewDiv(expr.NewConstInt(1), xSquaredSqrtTimesXSquaredMinusOneSqrt())
	case *expr.ArcCot:
		return expr.NewMul(expr.NewConstInt(-1), expr.NewDiv(expr.NewConstInt(1), onePlusXSquared()))

	default:
		return expr.NewConstInt(0)
	}
}

// powExponentMinusOne returns (Const(e), Pow(e-1)) for Pow(e), preserving
// the exponent's rational representation when it has one.
func powExponentMinusOne(p *expr.Pow) (expr.Expr, expr.Expr) {
	if p.IsRationalExponent() {
		n, d := p.RationalExponent()
		coeff := expr.NewConstRat(n, d)
		newN := n - d
		if d == 1 {
			return coeff, expr.NewPowInt(newN)
		}
		return coeff, expr.NewPowRat(newN, d)
	}
	v := p.Exponent()
	return expr.NewConstReal(v), expr.NewPowReal(v - 1)
}

// powCExponentMinusOne is the PowC analogue of powExponentMinusOne.
func powCExponentMinusOne(p *expr.PowC) (expr.Expr, expr.Expr) {
	if p.IsRationalExponent() {
		n, d := p.RationalExponent()
		coeff := expr.NewConstRat(n, d)
		newN := n - d
		if d == 1 {
			return coeff, expr.NewPowCInt(p.Inner(), newN)
		}
		return coeff, expr.NewPowCRat(p.Inner(), newN, d)
	}
	v := p.Exponent()
	return expr.NewConstReal(v), expr.NewPowCReal(p.Inner(), v-1)
}

func exponentialCoeffConst(e *expr.Exponential) expr.Expr {
	if e.IsRationalCoefficient() {
		n, d := e.RationalCoefficient()
		return expr.NewConstRat(n, d)
	}
	return expr.NewConstReal(e.Coefficient())
}

func oneMinusXSquaredSqrt() expr.Expr {
	xSquared := expr.NewPowInt(2)
	inner := expr.NewAddSub(expr.NewConstInt(1), xSquared, expr.OpSub)
	return expr.NewSqrt(inner)
}

func onePlusXSquared() expr.Expr {
	return expr.NewAddSub(expr.NewConstInt(1), expr.NewPowInt(2), expr.OpAdd)
}

func xSquaredSqrtTimesXSquaredMinusOneSqrt() expr.Expr {
	xSquared := expr.NewPowInt(2)
	xSquaredMinusOne := expr.NewAddSub(xSquared, expr.NewConstInt(1), expr.OpSub)
	return expr.NewMul(expr.NewSqrt(xSquared), expr.NewSqrt(xSquaredMinusOne))
}
