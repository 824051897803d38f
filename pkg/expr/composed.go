package expr

import "math"

// SinC and CosC are the composed (chain-rule) forms of Sin/Cos, wrapping
// an arbitrary inner expression instead of the bare variable x.

type SinC struct{ inner Expr }

func NewSinC(inner Expr) *SinC { return &SinC{inner: inner} }
func (s *SinC) Type() ExprType { return TSinC }
func (s *SinC) Inner() Expr    { return s.inner }
func (s *SinC) String() string { return "sin(" + s.inner.String() + ")" }
func (s *SinC) Evaluate(x float64) float64 {
	return math.Sin(s.inner.Evaluate(x))
}

type CosC struct{ inner Expr }

func NewCosC(inner Expr) *CosC { return &CosC{inner: inner} }
func (c *CosC) Type() ExprType { return TCosC }
func (c *CosC) Inner() Expr    { return c.inner }
func (c *CosC) String() string { return "cos(" + c.inner.String() + ")" }
func (c *CosC) Evaluate(x float64) float64 {
	return math.Cos(c.inner.Evaluate(x))
}

// PowC is the composed form of Pow: (inner)^e for a real or rational e.
type PowC struct {
	inner Expr
	e     numval
}

func NewPowCInt(inner Expr, n int64) *PowC    { return &PowC{inner: inner, e: numvalInt(n)} }
func NewPowCRat(inner Expr, n, d int64) *PowC { return &PowC{inner: inner, e: numvalRat(n, d)} }
func NewPowCReal(inner Expr, v float64) *PowC { return &PowC{inner: inner, e: numvalReal(v)} }
func newPowCFromNumval(inner Expr, n numval) *PowC { return &PowC{inner: inner, e: n} }

func (p *PowC) Type() ExprType               { return TPowC }
func (p *PowC) Inner() Expr                  { return p.inner }
func (p *PowC) Exponent() float64            { return p.e.Float() }
func (p *PowC) IsRationalExponent() bool     { return p.e.isRational }
func (p *PowC) RationalExponent() (int64, int64) { return p.e.rat.N, p.e.rat.D }

func (p *PowC) String() string {
	return "(" + p.inner.String() + ")^" + p.e.String()
}

func (p *PowC) Evaluate(x float64) float64 {
	return math.Pow(p.inner.Evaluate(x), p.e.Float())
}

// ExpC is the composed form of Exponential: e^(inner).
type ExpC struct{ inner Expr }

func NewExpC(inner Expr) *ExpC { return &ExpC{inner: inner} }
func (e *ExpC) Type() ExprType { return TExpC }
func (e *ExpC) Inner() Expr    { return e.inner }
func (e *ExpC) String() string { return "e^(" + e.inner.String() + ")" }
func (e *ExpC) Evaluate(x float64) float64 {
	return math.Exp(e.inner.Evaluate(x))
}

// Sqrt is the square root of an arbitrary inner expression.
type Sqrt struct{ inner Expr }

func NewSqrt(inner Expr) *Sqrt { return &Sqrt{inner: inner} }
func (s *Sqrt) Type() ExprType { return TSqrt }
func (s *Sqrt) Inner() Expr    { return s.inner }
func (s *Sqrt) String() string { return "sqrt(" + s.inner.String() + ")" }
func (s *Sqrt) Evaluate(x float64) float64 {
	return math.Sqrt(s.inner.Evaluate(x))
}
