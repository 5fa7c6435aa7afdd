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

// sinwc returns sin(y) for |y| <= π/4.
func sinwc(y float64) float64 {
	z := y * y
	return y + y*z*poly.Horner(z, sinCoeffs_f64[:])
}

// coswc returns cos(y) for |y| <= π/4.
func coswc(y float64) float64 {
	z := y * y
	return 1 - 0.5*z + z*z*poly.Horner(z, cosCoeffs_f64[:])
}

// reduceQuadrant returns y = x - q*π/2 in [-π/4, π/4] and q mod 4, where q
// is x/(π/2) rounded to the nearest integer.
//
// π/2 is subtracted in three parts, the first two exactly, which keeps y
// accurate while |q| < 2^20. Beyond that the reduction loses bits in
// proportion to |x|.
func reduceQuadrant(x float64) (y float64, quadrant int) {
	if jbm.Abs(x) <= piOver4_f64 {
		return x, 0
	}
	q := stdmath.RoundToEven(x * twoOverPi_f64)
	y = x - q*piOver2A_f64 - q*piOver2B_f64 - q*piOver2C_f64
	return y, int(q - 4*stdmath.Floor(q*0.25))
}

// Sin returns the sine of the radian argument x.
//
// Special cases: Sin(±0) = ±0, Sin(±Inf) = NaN, Sin(NaN) = NaN.
func Sin(x float64) float64 {
	switch {
	case x == 0:
		return x
	case x != x || jbm.Abs(x) > stdmath.MaxFloat64:
		return stdmath.NaN()
	}
	y, n := reduceQuadrant(x)
	switch n {
	case 1:
		return coswc(y)
	case 2:
		return -sinwc(y)
	case 3:
		return -coswc(y)
	}
	return sinwc(y)
}

// Cos returns the cosine of the radian argument x.
//
// Special cases: Cos(±Inf) = NaN, Cos(NaN) = NaN.
func Cos(x float64) float64 {
	if x != x || jbm.Abs(x) > stdmath.MaxFloat64 {
		return stdmath.NaN()
	}
	y, n := reduceQuadrant(x)
	switch n {
	case 1:
		return -sinwc(y)
	case 2:
		return -coswc(y)
	case 3:
		return sinwc(y)
	}
	return coswc(y)
}

// SinCos returns Sin(x) and Cos(x) with a single reduction.
func SinCos(x float64) (sin, cos float64) {
	if x != x || jbm.Abs(x) > stdmath.MaxFloat64 {
		nan := stdmath.NaN()
		return nan, nan
	}
	if x == 0 {
		return x, 1
	}
	y, n := reduceQuadrant(x)
	s, c := sinwc(y), coswc(y)
	switch n {
	case 1:
		return c, -s
	case 2:
		return -s, -c
	case 3:
		return -c, s
	}
	return s, c
}

// tanwc returns tan(y) for |y| <= π/4.
func tanwc(y float64) float64 {
	z := y * y
	return y + y*z*poly.Rational(z, tanCoeffs_f64[:], 2)
}

// Tan returns the tangent of the radian argument x.
//
// tan has period π, so only the parity of the quadrant matters:
// tan(y + π/2) = -1/tan(y).
//
// Special cases: Tan(±0) = ±0, Tan(±Inf) = NaN, Tan(NaN) = NaN.
func Tan(x float64) float64 {
	if x != x || jbm.Abs(x) > stdmath.MaxFloat64 {
		return stdmath.NaN()
	}
	y, n := reduceQuadrant(x)
	t := tanwc(y)
	if n&1 != 0 {
		return -1 / t
	}
	return t
}
