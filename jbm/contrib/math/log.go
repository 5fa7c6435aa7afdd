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

// log1pwc returns ln(1+f) for f in [√½-1, √2-1].
//
// With s = f/(2+f), ln(1+f) = 2*atanh(s) = 2s + 2s³/3 + ..., which is
// evaluated as f - (f²/2 - s*(f²/2 + R)) so that the leading terms are exact.
func log1pwc(f float64) float64 {
	s := f / (2 + f)
	z := s * s
	r := z * poly.Horner(z, log1pCoeffs_f64[:])
	hfsq := 0.5 * f * f
	return f - (hfsq - s*(hfsq+r))
}

// log2wc returns log2(1+t) for t in [√½-1, √2-1].
func log2wc(t float64) float64 {
	return log1pwc(t) * log2E_f64
}

// logSplit reduces a positive finite x to x = (1+f) * 2^k with 1+f in
// [√½, √2).
func logSplit(x float64) (f, k float64) {
	y, e := jbm.Frexp(x)
	if y < sqrtHalf_f64 {
		y *= 2
		e--
	}
	return y - 1, float64(e)
}

// logSpecial handles the arguments outside (0, +Inf) shared by the whole
// family. ok is false when x needs the regular path.
func logSpecial(x float64) (r float64, ok bool) {
	switch {
	case x < 0:
		return stdmath.NaN(), true
	case x == 0:
		return stdmath.Inf(-1), true
	case x != x || x > stdmath.MaxFloat64:
		return x, true
	}
	return 0, false
}

// Log2 returns the binary logarithm of x.
//
// Algorithm:
//  1. x = y * 2^e with y in [1/2, 1) from jbm.Frexp
//  2. If y < √½, double y and decrement e, so y-1 is in [√½-1, √2-1)
//  3. log2(x) = log2wc(y-1) + e
//
// Powers of two are exact: Log2(2^k) == k.
//
// Special cases: Log2(x < 0) = NaN, Log2(±0) = -Inf, Log2(+Inf) = +Inf,
// Log2(NaN) = NaN.
func Log2(x float64) float64 {
	if r, ok := logSpecial(x); ok {
		return r
	}
	f, k := logSplit(x)
	return log2wc(f) + k
}

// Log returns the natural logarithm of x, with the same reduction as Log2
// and the exponent folded in through a two-part ln(2).
func Log(x float64) float64 {
	if r, ok := logSpecial(x); ok {
		return r
	}
	f, k := logSplit(x)
	return k*ln2Hi_f64 + (log1pwc(f) + k*ln2Lo_f64)
}

// Log10 returns the decimal logarithm of x.
func Log10(x float64) float64 {
	if r, ok := logSpecial(x); ok {
		return r
	}
	f, k := logSplit(x)
	return k*log10Of2Hi_f64 + (log1pwc(f)*log10E_f64 + k*log10Of2Lo_f64)
}

// Log1p returns ln(1+x), accurate also when x is near zero.
//
// Inside the kernel interval the kernel is used directly. Elsewhere 1+x is
// rounded to u and the rounding error is added back as (x-(u-1))/u.
//
// Special cases: Log1p(-1) = -Inf, Log1p(x < -1) = NaN, Log1p(+Inf) = +Inf.
func Log1p(x float64) float64 {
	switch {
	case sqrtHalf_f64-1 < x && x < sqrt2_f64-1:
		return log1pwc(x)
	case x == -1:
		return stdmath.Inf(-1)
	case x < -1:
		return stdmath.NaN()
	case x != x || x > stdmath.MaxFloat64:
		return x
	}
	u := 1 + x
	return Log(u) + (x-(u-1))/u
}
