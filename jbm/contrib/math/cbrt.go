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

// cbrtwc returns ∛m for m in [1/2, 1].
func cbrtwc(m float64) float64 {
	return 1 + (m-1)*poly.Rational(m, cbrtCoeffs_f64[:], 6)
}

// Cbrt returns the cube root of x.
//
// Algorithm:
//  1. |x| = m * 2^e with m in (1/2, 1]
//  2. e = 3*e3 + r with floor division, so r is in {0, 1, 2} for any sign of e
//  3. ∛x = cbrtwc(m) * ∛(2^r) * 2^e3
//
// Cubes of powers of two are exact: Cbrt(8) == 2.
//
// Special cases: Cbrt(±0) = ±0, Cbrt(±Inf) = ±Inf, Cbrt(NaN) = NaN.
func Cbrt(x float64) float64 {
	if x == 0 || x != x || jbm.Abs(x) > stdmath.MaxFloat64 {
		return x
	}
	m, e := jbm.Frexp(jbm.Abs(x))
	if m == 0.5 {
		m = 1
		e--
	}
	e3 := e / 3
	r := e - 3*e3
	if r < 0 {
		e3--
		r += 3
	}
	y := cbrtwc(m)
	switch r {
	case 1:
		y *= cbrt2_f64
	case 2:
		y *= cbrt4_f64
	}
	return jbm.Copysign(jbm.Ldexp(y, e3), x)
}
