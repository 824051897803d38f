// Package compare checks whether two single-variable expressions are
// numerically equivalent by sampling, independent of how each one renders
// or how it arrived at its current form (e.g. before vs. after Simplify).
package compare

import (
	"math"
	"math/rand"

	"github.com/MT-0606/Coding-Calculus/pkg/expr"
)

const (
	// Iterations is the number of sample points used to probe equivalence.
	Iterations = 12
	// ToleranceExp sets the default tolerance to 10^-ToleranceExp.
	ToleranceExp = 9
	// SampleBound restricts sample points to [-SampleBound, SampleBound],
	// keeping clear of the poles most trig/inverse-trig nodes have further out.
	SampleBound = 8.0
)

// DefaultTolerance is 10^-ToleranceExp.
func DefaultTolerance() float64 {
	return math.Pow(10, -ToleranceExp)
}

// Result carries the verdict plus enough detail to explain a mismatch.
type Result struct {
	Equal        bool
	SampledAt    float64
	Value1       float64
	Value2       float64
	SkippedAllNaN bool
}

// NumericallyEqual reports whether e1 and e2 agree within tolerance at
// Iterations deterministic sample points. Points where either side is NaN
// or ±Inf are skipped (both sides may legitimately be undefined at the same
// x, e.g. a shared removable pole); if every point is skipped the two sides
// are reported equal only when both expressions are themselves identical in
// String() form, since no evidence distinguishes them.
func NumericallyEqual(e1, e2 expr.Expr, tolerance float64) Result {
	rnd := rand.New(rand.NewSource(1))
	sawComparable := false
	for i := 0; i < Iterations; i++ {
		x := (rnd.Float64()*2 - 1) * SampleBound
		v1, v2 := e1.Evaluate(x), e2.Evaluate(x)
		if math.IsNaN(v1) || math.IsNaN(v2) || math.IsInf(v1, 0) || math.IsInf(v2, 0) {
			continue
		}
		sawComparable = true
		if math.Abs(v1-v2) > tolerance {
			return Result{Equal: false, SampledAt: x, Value1: v1, Value2: v2}
		}
	}
	if !sawComparable {
		return Result{Equal: e1.String() == e2.String(), SkippedAllNaN: true}
	}
	return Result{Equal: true}
}

// StructurallyEqual reports whether e1 and e2 render to the identical
// textual form — a cheap, exact check that two trees are the same shape,
// as opposed to merely agreeing in value.
func StructurallyEqual(e1, e2 expr.Expr) bool {
	return e1.String() == e2.String()
}
