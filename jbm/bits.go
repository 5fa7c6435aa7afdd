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

package jbm

import "math"

// IEEE-754 binary64 layout.
const (
	signMask = 1 << 63
	expMask  = 0x7ff << mantBits
	mantBits = 52
	expBias  = 1023
	oneBits  = expBias << mantBits // bits of 1.0

	// MinExp is the exponent of the smallest subnormal, 2^MinExp.
	MinExp = -1074
	// MaxExp is the exponent of the largest finite power of two, 2^MaxExp.
	MaxExp = 1023

	// Epsilon is the distance from 1.0 to the next larger double.
	Epsilon = 0x1p-52
)

// Abs returns |x| by clearing the sign bit. NaN payloads are preserved.
func Abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask)
}

// Copysign returns a value with the magnitude of x and the sign of y.
func Copysign(x, y float64) float64 {
	return math.Float64frombits(math.Float64bits(x)&^signMask | math.Float64bits(y)&signMask)
}

// Sign returns ±1 with the sign bit of x, so Sign(-0) == -1 and the result
// for NaN follows the NaN's sign bit.
func Sign(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x)&signMask | oneBits)
}

// Signbit reports whether the sign bit of x is set.
func Signbit(x float64) bool {
	return math.Float64bits(x)&signMask != 0
}

// Frexp breaks x into a fraction and a power of two, x = frac * 2^exp with
// 0.5 <= |frac| < 1.
//
// Zero, NaN and ±Inf are returned unchanged with exp == 0; Log2 and Cbrt
// rely on that. Subnormals are scaled by 2^52 first so the exponent field
// holds a real exponent, which is then corrected.
func Frexp(x float64) (frac float64, exp int) {
	b := math.Float64bits(x)
	e := int(b>>mantBits) & 0x7ff
	switch e {
	case 0x7ff:
		return x, 0
	case 0:
		if b&^signMask == 0 {
			return x, 0
		}
		b = math.Float64bits(x * (1 << mantBits))
		e = int(b>>mantBits)&0x7ff - mantBits
	}
	b = b&^expMask | (expBias-1)<<mantBits
	return math.Float64frombits(b), e - (expBias - 1)
}

// Exp2n returns 2^e built directly in the exponent field: +Inf for
// e > MaxExp, 0 for e < MinExp and a subnormal for MinExp <= e < -1022.
func Exp2n(e int) float64 {
	switch {
	case e > MaxExp:
		return math.Inf(1)
	case e < MinExp:
		return 0
	case e < 1-expBias:
		return math.Float64frombits(1 << uint(e-MinExp))
	}
	return math.Float64frombits(uint64(e+expBias) << mantBits)
}

// Ldexp returns x * 2^e.
//
// When 2^e is representable this is the single product x * Exp2n(e), which
// rounds once. Outside that range the scaling is split in two products, the
// first of them exact, so Ldexp(Frexp(x)) reproduces every finite x and
// results that underflow are still rounded only once.
func Ldexp(x float64, e int) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	switch {
	case e > MaxExp:
		// Beyond 3*MaxExp every nonzero finite x overflows.
		e = min(e, 3*MaxExp)
		for e > MaxExp {
			x *= 0x1p1023
			e -= MaxExp
		}
	case e < MinExp:
		x *= Exp2n(e - MinExp)
		e = MinExp
	}
	return x * Exp2n(e)
}

// Mod returns x - d*floor(x/d), the remainder with the sign of d.
func Mod(x, d float64) float64 {
	return x - d*math.Floor(x/d)
}

// Pown returns x^n by binary exponentiation, using O(log |n|)
// multiplications. Pown(x, 0) == 1 for every x, NaN included.
func Pown(x float64, n int) float64 {
	u := uint(n)
	if n < 0 {
		u = uint(-n)
	}
	r := 1.0
	for ; u > 0; u >>= 1 {
		if u&1 != 0 {
			r *= x
		}
		x *= x
	}
	if n < 0 {
		return 1 / r
	}
	return r
}

// Small reports whether |x| is below Epsilon.
func Small(x float64) bool {
	return Abs(x) < Epsilon
}
