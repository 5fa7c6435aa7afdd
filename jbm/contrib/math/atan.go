// Copyright 2025 go-jbm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	stdmath "math"

	"github.com/jbmath/go-jbm/jbm"
	"github.com/jbmath/go-jbm/jbm/contrib/poly"
)

// atanwc returns atan(x) for |x| <= 1.
func atanwc(x float64) float64 {
	return x * poly.Rational(x*x, atanCoeffs_f64[:], 7)
}

// Atan returns the arctangent of x in radians.
//
// For |x| > 1 the identity atan(x) = π/2 - atan(1/x) brings the argument
// back into [-1, 1]; π/2 is added in two parts.
//
// Special cases: Atan(±0) = ±0, Atan(±Inf) = ±π/2, Atan(NaN) = NaN.
func Atan(x float64) float64 {
	if x != x {
		return x
	}
	ax := jbm.Abs(x)
	var r float64
	if ax > 1 {
		r = piOver2Hi_f64 - (atanwc(1/ax) - piOver2Lo_f64)
	} else {
		r = atanwc(ax)
	}
	return jbm.Copysign(r, x)
}

// Atan2 returns the arctangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
//
// Special cases follow the standard library's math.Atan2:
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +π
//	Atan2(-0, x<=-0) = -π
//	Atan2(y>0, 0) = +π/2
//	Atan2(y<0, 0) = -π/2
//	Atan2(+Inf, +Inf) = +π/4
//	Atan2(-Inf, +Inf) = -π/4
//	Atan2(+Inf, -Inf) = 3π/4
//	Atan2(-Inf, -Inf) = -3π/4
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +π
//	Atan2(y<0, -Inf) = -π
//	Atan2(+Inf, x) = +π/2
//	Atan2(-Inf, x) = -π/2
func Atan2(y, x float64) float64 {
	switch {
	case y != y || x != x:
		return stdmath.NaN()
	case y == 0:
		if jbm.Signbit(x) {
			return jbm.Copysign(pi_f64, y)
		}
		return jbm.Copysign(0, y)
	case x == 0:
		return jbm.Copysign(piOver2_f64, y)
	case stdmath.IsInf(x, 0):
		yInf := stdmath.IsInf(y, 0)
		switch {
		case x > 0 && yInf:
			return jbm.Copysign(piOver4_f64, y)
		case x > 0:
			return jbm.Copysign(0, y)
		case yInf:
			return jbm.Copysign(threePiOver4_f64, y)
		}
		return jbm.Copysign(pi_f64, y)
	case stdmath.IsInf(y, 0):
		return jbm.Copysign(piOver2_f64, y)
	}
	r := Atan(y / x)
	if x < 0 {
		r += jbm.Copysign(pi_f64, y)
	}
	return r
}

// Asin returns the arcsine of x in radians, as atan(x/√(1-x²)).
//
// 1-x² is formed as (1-x)(1+x), which stays accurate as |x| approaches 1.
//
// Special cases: Asin(±0) = ±0, Asin(±1) = ±π/2, Asin(x) = NaN if |x| > 1.
func Asin(x float64) float64 {
	d := (1 - x) * (1 + x)
	if d < 0 || d != d {
		return stdmath.NaN()
	}
	s := stdmath.Sqrt(d)
	if s == 0 {
		return jbm.Copysign(piOver2_f64, x)
	}
	return Atan(x / s)
}

// Acos returns the arccosine of x in radians, as atan(√(1-x²)/x), plus π
// when x is negative.
//
// Special cases: Acos(±0) = π/2, Acos(1) = 0, Acos(-1) = π,
// Acos(x) = NaN if |x| > 1.
func Acos(x float64) float64 {
	if x == 0 {
		return piOver2_f64
	}
	d := (1 - x) * (1 + x)
	if d < 0 || d != d {
		return stdmath.NaN()
	}
	r := Atan(stdmath.Sqrt(d) / x)
	if x < 0 {
		r += pi_f64
	}
	return r
}
