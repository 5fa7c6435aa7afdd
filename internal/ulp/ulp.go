// Package ulp measures the distance between floating-point values in units
// in the last place.
package ulp

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ordered maps the bits of x onto a signed integer line on which adjacent
// doubles differ by one and -0 and +0 coincide.
func ordered(x float64) int64 {
	b := int64(math.Float64bits(x))
	if b < 0 {
		return math.MinInt64 - b
	}
	return b
}

// Steps returns the number of doubles between a and b, 0 when they are
// equal. Two NaNs are 0 apart; a NaN and a number are infinitely far apart,
// reported as math.MaxUint64.
func Steps(a, b float64) uint64 {
	switch an, bn := a != a, b != b; {
	case an && bn:
		return 0
	case an || bn:
		return math.MaxUint64
	}
	ia, ib := ordered(a), ordered(b)
	if ia > ib {
		ia, ib = ib, ia
	}
	return uint64(ib) - uint64(ia)
}

// Steps32 is Steps for float32.
func Steps32(a, b float32) uint32 {
	switch an, bn := a != a, b != b; {
	case an && bn:
		return 0
	case an || bn:
		return math.MaxUint32
	}
	ord := func(x float32) int32 {
		b := int32(math.Float32bits(x))
		if b < 0 {
			return math.MinInt32 - b
		}
		return b
	}
	ia, ib := ord(a), ord(b)
	if ia > ib {
		ia, ib = ib, ia
	}
	return uint32(ib) - uint32(ia)
}

// Error returns the error of got against the reference want in units of
// the spacing of doubles at want, as a fraction. Unlike Steps it is
// continuous across powers of two, which is how accuracy budgets are usually
// stated. Matching special values (equal infinities, both NaN) give 0;
// mismatched ones give +Inf.
func Error(got, want float64) float64 {
	switch {
	case got == want, got != got && want != want:
		return 0
	case got != got || want != want, math.IsInf(got, 0), math.IsInf(want, 0):
		return math.Inf(1)
	}
	return math.Abs(got-want) / Spacing(want)
}

// Spacing returns the distance from |x| to the next double away from zero,
// the size of one ULP at x. For subnormals and zero it is the smallest
// subnormal.
func Spacing(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x > math.MaxFloat64:
		return math.Inf(1)
	case x == 0:
		return math.SmallestNonzeroFloat64
	}
	_, e := math.Frexp(x)
	return math.Ldexp(1, max(e-53, -1074))
}

// Within reports whether got is at most n ULP from want, using gonum's
// definition of ULP distance.
func Within(got, want float64, n uint) bool {
	return scalar.EqualWithinULP(got, want, n)
}
