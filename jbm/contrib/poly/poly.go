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

// Package poly evaluates polynomials and rational functions given as
// coefficient tables, lowest degree first.
//
// One generic routine per scheme covers every degree: Horner(x, p) handles a
// polynomial of degree len(p)-1 and Rational(x, p, n) a numerator of degree n
// over a denominator of degree len(p)-n-1 whose constant term is fixed at 1,
// the layout produced by minimax fits of the form
//
//	p0 + p1*x + ... + pn*x^n
//	------------------------------
//	1 + q1*x + q2*x^2 + ... + qm*x^m
//
// with p = {p0, ..., pn, q1, ..., qm}.
//
// Each step is a multiply-add; see jbm.MulAdd for when it is fused.
package poly

import "github.com/jbmath/go-jbm/jbm"

// Horner evaluates p[0] + x*(p[1] + x*(p[2] + ...)) with Horner's rule.
// An empty table evaluates to 0.
func Horner[T jbm.Floats](x T, p []T) T {
	if len(p) == 0 {
		return 0
	}
	r := p[len(p)-1]
	for i := len(p) - 2; i >= 0; i-- {
		r = jbm.MulAdd(r, x, p[i])
	}
	return r
}

// estrinStack is the table size Estrin evaluates without allocating.
const estrinStack = 32

// Estrin evaluates the same polynomial as Horner using Estrin's scheme:
// adjacent coefficients are paired as p[2i] + x*p[2i+1], then the pairs are
// combined with x^2, x^4, ... The additions at each level are independent,
// which shortens the dependency chain for high degrees at the cost of a few
// extra multiplications. The library itself evaluates with Horner.
func Estrin[T jbm.Floats](x T, p []T) T {
	n := len(p)
	if n == 0 {
		return 0
	}
	var buf [estrinStack]T
	var c []T
	if n <= estrinStack {
		c = buf[:n]
	} else {
		c = make([]T, n)
	}
	copy(c, p)
	for n > 1 {
		half := n / 2
		for i := range half {
			c[i] = jbm.MulAdd(c[2*i+1], x, c[2*i])
		}
		if n%2 == 1 {
			c[half] = c[n-1]
			half++
		}
		n = half
		x *= x
	}
	return c[0]
}

// Rational evaluates Horner(x, p[:n+1]) / (1 + x*Horner(x, p[n+1:])).
// With n == len(p)-1 the denominator is 1 and Rational reduces to Horner.
func Rational[T jbm.Floats](x T, p []T, n int) T {
	num := Horner(x, p[:n+1])
	if n+1 >= len(p) {
		return num
	}
	return num / jbm.MulAdd(x, Horner(x, p[n+1:]), 1)
}
