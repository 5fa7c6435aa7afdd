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

// exp2wc returns 2^f for f in [-1/2, 1/2].
func exp2wc(f float64) float64 {
	return 1 + f*poly.Rational(f, exp2Coeffs_f64[:], 5)
}

// expm1wc returns e^x - 1 for |x| <= ln(2)/2.
func expm1wc(x float64) float64 {
	return x + x*x*poly.Rational(x, expm1Coeffs_f64[:], 5)
}

// scale returns p * 2^k for p in [√½, √2].
//
// Near the ends of the range 2^k itself is not representable, so the power is
// split in two: the first product is exact and only the last one rounds.
func scale(p float64, k int) float64 {
	switch {
	case k > jbm.MaxExp:
		return p * 2 * jbm.Exp2n(k-1)
	case k < -1022:
		return p * jbm.Exp2n(k+54) * 0x1p-54
	}
	return p * jbm.Exp2n(k)
}

// Exp2 returns 2^x.
//
// Algorithm:
//  1. k = round(x), f = x - k in [-1/2, 1/2] (exact)
//  2. 2^f from the rational kernel
//  3. Scale by 2^k through the exponent field
//
// Special cases: Exp2(+Inf) = +Inf, Exp2(-Inf) = 0, Exp2(NaN) = NaN.
func Exp2(x float64) float64 {
	switch {
	case x != x:
		return x
	case x >= exp2Overflow_f64:
		return stdmath.Inf(1)
	case x < exp2Underflow_f64:
		return 0
	}
	k := stdmath.RoundToEven(x)
	return scale(exp2wc(x-k), int(k))
}

// Exp returns e^x.
//
// The argument is reduced as x = k*ln2 + r with a two-part ln2 so that r
// carries no error proportional to |x|, then e^x = 2^k * 2^(r*log2(e)).
//
// Special cases: Exp(+Inf) = +Inf, Exp(-Inf) = 0, Exp(NaN) = NaN.
func Exp(x float64) float64 {
	switch {
	case x != x:
		return x
	case x > expOverflow_f64:
		return stdmath.Inf(1)
	case x < expUnderflow_f64:
		return 0
	}
	k := stdmath.RoundToEven(x * log2E_f64)
	r := x - k*ln2Hi_f64 - k*ln2Lo_f64
	return scale(exp2wc(r*log2E_f64), int(k))
}

// Exp10 returns 10^x, reduced like Exp with log10(2) in place of ln(2).
func Exp10(x float64) float64 {
	switch {
	case x != x:
		return x
	case x > exp10Overflow_f64:
		return stdmath.Inf(1)
	case x < exp10Underflow_f64:
		return 0
	}
	k := stdmath.RoundToEven(x * log2Ten_f64)
	r := x - k*log10Of2Hi_f64 - k*log10Of2Lo_f64
	return scale(exp2wc(r*log2Ten_f64), int(k))
}

// Expm1 returns e^x - 1, accurate also when x is near zero.
//
// For |x| < ln(2)/2 the dedicated kernel is used directly. Otherwise
// x = k*ln2 + r and e^x - 1 = 2^k*(e^r - 1) + (2^k - 1), which keeps the
// kernel's relative accuracy through the reconstruction.
//
// Special cases: Expm1(±0) = ±0, Expm1(+Inf) = +Inf, Expm1(-Inf) = -1,
// Expm1(NaN) = NaN.
func Expm1(x float64) float64 {
	ax := jbm.Abs(x)
	switch {
	case x != x || x == 0:
		return x
	case ax < 0.5*ln2_f64:
		return expm1wc(x)
	case x > expm1Saturate_f64:
		return Exp(x)
	case x < -expm1Saturate_f64:
		return -1
	}
	k := stdmath.RoundToEven(x * log2E_f64)
	r := x - k*ln2Hi_f64 - k*ln2Lo_f64
	s := jbm.Exp2n(int(k))
	return s*expm1wc(r) + (s - 1)
}
