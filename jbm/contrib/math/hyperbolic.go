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
)

// Sinh returns the hyperbolic sine of x.
//
// Formula: sinh(x) = (e^x - e^(-x)) / 2
//
// For |x| < 1 it is rewritten with m = e^x - 1 as (m + m/(m+1)) / 2 to avoid
// the cancellation. For |x| > 22, e^(-|x|) no longer contributes and e^|x|/2
// is formed as (e^(|x|/2)/2) * e^(|x|/2), which stays finite up to the true
// overflow threshold.
func Sinh(x float64) float64 {
	ax := jbm.Abs(x)
	switch {
	case ax > hyperbolicLarge_f64:
		h := Exp(0.5 * ax)
		return jbm.Copysign((0.5*h)*h, x)
	case ax < 1:
		m := Expm1(ax)
		return jbm.Copysign(0.5*(m+m/(m+1)), x)
	}
	e := Exp(ax)
	return jbm.Copysign(0.5*(e-1/e), x)
}

// Cosh returns the hyperbolic cosine of x.
//
// Formula: cosh(x) = (e^x + e^(-x)) / 2
func Cosh(x float64) float64 {
	ax := jbm.Abs(x)
	if ax > hyperbolicLarge_f64 {
		h := Exp(0.5 * ax)
		return (0.5 * h) * h
	}
	e := Exp(ax)
	return 0.5 * (e + 1/e)
}

// Tanh returns the hyperbolic tangent of x.
//
// Formula: tanh(x) = (e^x - e^(-x)) / (e^x + e^(-x))
//
// Beyond the exp overflow threshold the result saturates to ±1 without
// evaluating exp. For |x| < 1, tanh(x) = m/(m+2) with m = e^(2x) - 1.
//
// Special cases: Tanh(±0) = ±0, Tanh(±Inf) = ±1, Tanh(NaN) = NaN.
func Tanh(x float64) float64 {
	ax := jbm.Abs(x)
	switch {
	case ax > expOverflow_f64:
		return jbm.Copysign(1, x)
	case ax < 1:
		m := Expm1(2 * ax)
		return jbm.Copysign(m/(m+2), x)
	}
	e := Exp(ax)
	return jbm.Copysign((e-1/e)/(e+1/e), x)
}

// Asinh returns the inverse hyperbolic sine of x.
//
// Formula: asinh(x) = ln(x + √(x²+1))
//
// The formula is rearranged per range so that the logarithm's argument is
// formed without cancellation; small arguments go through Log1p.
func Asinh(x float64) float64 {
	ax := jbm.Abs(x)
	var r float64
	switch {
	case ax > invHyperbolicLarge_f64:
		r = Log(ax) + ln2_f64
	case ax > 2:
		r = Log(2*ax + 1/(stdmath.Sqrt(ax*ax+1)+ax))
	default:
		t := ax * ax
		r = Log1p(ax + t/(1+stdmath.Sqrt(1+t)))
	}
	return jbm.Copysign(r, x)
}

// Acosh returns the inverse hyperbolic cosine of x.
//
// Formula: acosh(x) = ln(x + √(x²-1))
//
// Special cases: Acosh(1) = 0, Acosh(+Inf) = +Inf, Acosh(x) = NaN if x < 1.
func Acosh(x float64) float64 {
	switch {
	case x < 1 || x != x:
		return stdmath.NaN()
	case x == 1:
		return 0
	case x >= invHyperbolicLarge_f64:
		return Log(x) + ln2_f64
	case x > 2:
		return Log(2*x - 1/(x+stdmath.Sqrt(x*x-1)))
	}
	t := x - 1
	return Log1p(t + stdmath.Sqrt(2*t+t*t))
}

// Atanh returns the inverse hyperbolic tangent of x.
//
// Formula: atanh(x) = ln((1+x)/(1-x)) / 2
//
// Special cases: Atanh(±1) = ±Inf, Atanh(x) = NaN if |x| > 1.
func Atanh(x float64) float64 {
	ax := jbm.Abs(x)
	var r float64
	switch {
	case ax > 1 || x != x:
		return stdmath.NaN()
	case ax == 1:
		return jbm.Copysign(stdmath.Inf(1), x)
	case ax < 0.5:
		t := ax + ax
		r = 0.5 * Log1p(t+t*ax/(1-ax))
	default:
		r = 0.5 * Log1p((ax+ax)/(1-ax))
	}
	return jbm.Copysign(r, x)
}
