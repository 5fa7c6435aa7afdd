// Package jbm provides the low-level building blocks of the go-jbm math
// library: the float type constraint shared by the generic evaluators,
// runtime detection of fused multiply-add support, and bit-level IEEE-754
// primitives (Frexp, Ldexp, Exp2n, Copysign, ...) that work directly on the
// binary64 layout instead of going through floating-point arithmetic.
//
// The elementary functions themselves live in jbm/contrib/math:
//
//	import (
//		"github.com/jbmath/go-jbm/jbm"
//		"github.com/jbmath/go-jbm/jbm/contrib/math"
//	)
//
//	m, e := jbm.Frexp(x)    // x = m * 2^e, 0.5 <= |m| < 1
//	y := math.Exp2(3.5)     // 11.313708498984761
package jbm

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
