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

// Package math provides double precision elementary functions built from
// range reduction and minimax approximations.
//
// Each function first reduces its argument to a narrow interval on which a
// polynomial or rational fit is well conditioned (the unexported "*wc"
// kernels), evaluates the fit with jbm/contrib/poly, and then reconstructs the
// result from the reduction with exact bit-level operations from package jbm.
// The error budget is a few ULP, not correct rounding.
//
// # Functions
//
// Exponential and logarithmic:
//   - Exp2(x), Exp(x), Exp10(x), Expm1(x)
//   - Log2(x), Log(x), Log10(x), Log1p(x)
//   - Pow(x, e) - 2^(e*log2(x)); see jbm.Pown for integer powers
//   - Cbrt(x)
//
// Trigonometric:
//   - Sin(x), Cos(x), SinCos(x), Tan(x)
//   - Atan(x), Atan2(y, x), Asin(x), Acos(x)
//
// Hyperbolic:
//   - Sinh(x), Cosh(x), Tanh(x)
//   - Asinh(x), Acosh(x), Atanh(x)
//
// Error function:
//   - Erf(x), Erfc(x)
//
// Algebra helpers:
//   - Sqr, Dbl, Interpolate, Extrapolate, V2Length, V3Length
//   - SolveQuadratic, SolveCubic
//
// # Special values
//
// No function panics or returns an error. Domain errors (Log(-1), Asin(2))
// yield NaN, overflow yields ±Inf and underflow yields 0, following the
// conventions of the standard library's math package.
package math
