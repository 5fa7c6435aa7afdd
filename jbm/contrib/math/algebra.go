package math

import (
	stdmath "math"

	"github.com/jbmath/go-jbm/jbm"
)

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}

// Dbl returns x+x.
func Dbl(x float64) float64 {
	return x + x
}

// Extrapolate returns the value at x of the line through (x1, y1) and
// (x2, y2).
func Extrapolate(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (x-x1)*(y2-y1)/(x2-x1)
}

// Interpolate is Extrapolate clamped to y1 for x <= x1 and to y2 for x >= x2.
func Interpolate(x, x1, x2, y1, y2 float64) float64 {
	switch {
	case x <= x1:
		return y1
	case x >= x2:
		return y2
	}
	return Extrapolate(x, x1, x2, y1, y2)
}

// V2Length returns the length of the segment from (x1, y1) to (x2, y2).
func V2Length(x1, y1, x2, y2 float64) float64 {
	return stdmath.Sqrt(Sqr(x2-x1) + Sqr(y2-y1))
}

// V3Length returns the length of the segment from (x1, y1, z1) to
// (x2, y2, z2).
func V3Length(x1, y1, z1, x2, y2, z2 float64) float64 {
	return stdmath.Sqrt(Sqr(x2-x1) + Sqr(y2-y1) + Sqr(z2-z1))
}

// solveQuadraticReduced returns a root of x² + a*x + b, preferring the one
// in [x1, x2].
func solveQuadraticReduced(a, b, x1, x2 float64) float64 {
	a *= -0.5
	k := stdmath.Sqrt(a*a - b)
	x := a + k
	if x < x1 || x > x2 {
		x = a - k
	}
	return x
}

// SolveQuadratic returns a real root of a*x² + b*x + c = 0 in [x1, x2].
//
// When a is negligible the equation is solved as linear. If both roots lie
// in the interval the larger one is returned; if none does, the result is
// the smaller root, and NaN when the roots are complex.
func SolveQuadratic(a, b, c, x1, x2 float64) float64 {
	if jbm.Small(a) {
		return -c / b
	}
	return solveQuadraticReduced(b/a, c/a, x1, x2)
}

// solveCubicReduced returns a real root of x³ + a*x² + b*x + c, preferring
// one in [x1, x2].
//
// The substitution x = t - a/3 gives the depressed cubic t³ + p*t + q. With
// three real roots they are found trigonometrically, otherwise the single
// real root comes from Cardano's formula.
func solveCubicReduced(a, b, c, x1, x2 float64) float64 {
	a3 := a / 3
	p := b - a*a3
	q := c + a3*(2*a3*a3-b)
	p3 := p / 3
	q2 := 0.5 * q
	d := q2*q2 + p3*p3*p3
	if d < 0 {
		m := 2 * stdmath.Sqrt(-p3)
		// Rounding can push the cosine just past ±1 when d is barely negative.
		cosTheta := max(-1, min(1, -q2/(-p3*stdmath.Sqrt(-p3))))
		theta := Acos(cosTheta) / 3
		var x float64
		for k := range 3 {
			x = m*Cos(theta-float64(k)*(2*pi_f64/3)) - a3
			if x >= x1 && x <= x2 {
				break
			}
		}
		return x
	}
	s := stdmath.Sqrt(d)
	return Cbrt(-q2+s) + Cbrt(-q2-s) - a3
}

// SolveCubic returns a real root of a*x³ + b*x² + c*x + d = 0 in [x1, x2],
// reducing to SolveQuadratic when a is negligible.
func SolveCubic(a, b, c, d, x1, x2 float64) float64 {
	if jbm.Small(a) {
		return SolveQuadratic(b, c, d, x1, x2)
	}
	return solveCubicReduced(b/a, c/a, d/a, x1, x2)
}
