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

// erfwc returns erf(x) for |x| <= 1.
func erfwc(x float64) float64 {
	return x * poly.Rational(x*x, erfCoeffs_f64[:], 5)
}

// erfcwc returns erfc(x) for x >= 1/2.
//
// erfc(x) = e^(-x²) * R(1/x²) / x. The square is split as
// x² = z² + (x-z)(x+z) with z the upper half of x's bits, so z² is exact and
// e^(-x²) carries no error from rounding x².
func erfcwc(x float64) float64 {
	if x > erfcMax_f64 {
		return 0
	}
	z := stdmath.Float64frombits(stdmath.Float64bits(x) & 0xffffffff_00000000)
	e := Exp(-z*z) * Exp((z-x)*(z+x))
	s := 1 / (x * x)
	var r float64
	switch {
	case x < 1:
		r = poly.Rational(s, erfcCoeffs0_f64[:], 8)
	case x <= 2.5:
		r = poly.Rational(s, erfcCoeffs1_f64[:], 9)
	default:
		r = poly.Rational(s, erfcCoeffs2_f64[:], 8)
	}
	return e * r / x
}

// Erf returns the error function of x.
//
// Special cases: Erf(±0) = ±0, Erf(±Inf) = ±1, Erf(NaN) = NaN.
func Erf(x float64) float64 {
	ax := jbm.Abs(x)
	switch {
	case ax <= 1:
		return erfwc(x)
	case x != x:
		return x
	}
	return jbm.Copysign(1-erfcwc(ax), x)
}

// Erfc returns the complementary error function 1 - erf(x).
//
// Special cases: Erfc(+Inf) = 0, Erfc(-Inf) = 2, Erfc(NaN) = NaN.
func Erfc(x float64) float64 {
	switch {
	case jbm.Abs(x) < 0.5:
		return 1 - erfwc(x)
	case x != x:
		return x
	case x > 0:
		return erfcwc(x)
	}
	return 2 - erfcwc(-x)
}
