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

// Package quad integrates functions of one variable with fixed-order
// Gauss-Legendre rules.
//
// An n-point rule integrates polynomials of degree up to 2n-1 exactly and
// evaluates f exactly n times, so the cost of Integral is known in advance.
package quad

import (
	"math"

	"github.com/jbmath/go-jbm/jbm"
)

// Rule is the number of Gauss-Legendre points, from 1 to MaxRule.
type Rule int

const (
	// MaxRule is the highest order available.
	MaxRule Rule = 4

	// DefaultRule is the order Integral uses.
	DefaultRule = MaxRule
)

// gaussA holds the weights and gaussB the non-negative nodes on [-1, 1] of
// each rule. A node at 0 is listed first and counted once; every other node
// stands for the pair ±b.
var (
	gaussA = [MaxRule + 1][]float64{
		1: {2},
		2: {1},
		3: {8.0 / 9.0, 5.0 / 9.0},
		4: {0.6521451548625461, 0.34785484513745385},
	}
	gaussB = [MaxRule + 1][]float64{
		1: {0},
		2: {0.5773502691896257},
		3: {0, 0.7745966692414834},
		4: {0.3399810435848563, 0.8611363115940526},
	}
)

// Integral returns the integral of f from x1 to x2 with DefaultRule.
func Integral(f func(float64) float64, x1, x2 float64) float64 {
	return IntegralRule(f, x1, x2, DefaultRule)
}

// IntegralRule returns the integral of f from x1 to x2 with the n-point
// Gauss-Legendre rule r. Reversed bounds give the negated integral and equal
// bounds give 0. An order outside [1, MaxRule] yields NaN.
func IntegralRule(f func(float64) float64, x1, x2 float64, r Rule) float64 {
	if r < 1 || r > MaxRule {
		return math.NaN()
	}
	dx := 0.5 * (x2 - x1)
	xm := 0.5 * (x1 + x2)
	a, b := gaussA[r], gaussB[r]
	var sum float64
	for i := range a {
		if b[i] == 0 {
			sum = jbm.MulAdd(a[i], f(xm), sum)
			continue
		}
		d := dx * b[i]
		sum = jbm.MulAdd(a[i], f(xm+d)+f(xm-d), sum)
	}
	return dx * sum
}
