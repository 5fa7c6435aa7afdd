// Package vec provides elementwise arithmetic and scans over float slices.
//
// Binary operations work on the common prefix of their arguments: the loop
// length is the length of the shortest slice, and elements past it are left
// untouched. Functions ending in To write into dst; the others update their
// first argument in place.
package vec

import (
	"math"

	"github.com/jbmath/go-jbm/jbm"
)

// Add sets dst[i] += s[i].
func Add[T jbm.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	for i := range n {
		dst[i] += s[i]
	}
}

// Sub sets dst[i] -= s[i].
func Sub[T jbm.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	for i := range n {
		dst[i] -= s[i]
	}
}

// Mul sets dst[i] *= s[i].
func Mul[T jbm.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	for i := range n {
		dst[i] *= s[i]
	}
}

// Div sets dst[i] /= s[i].
func Div[T jbm.Floats](dst, s []T) {
	n := min(len(dst), len(s))
	for i := range n {
		dst[i] /= s[i]
	}
}

// AddTo sets dst[i] = a[i] + b[i] and returns the written prefix of dst.
func AddTo[T jbm.Floats](dst, a, b []T) []T {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] + b[i]
	}
	return dst[:n]
}

// SubTo sets dst[i] = a[i] - b[i] and returns the written prefix of dst.
func SubTo[T jbm.Floats](dst, a, b []T) []T {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] - b[i]
	}
	return dst[:n]
}

// MulTo sets dst[i] = a[i] * b[i] and returns the written prefix of dst.
func MulTo[T jbm.Floats](dst, a, b []T) []T {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] * b[i]
	}
	return dst[:n]
}

// DivTo sets dst[i] = a[i] / b[i] and returns the written prefix of dst.
func DivTo[T jbm.Floats](dst, a, b []T) []T {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] / b[i]
	}
	return dst[:n]
}

// Dbl sets dst[i] = 2*a[i].
func Dbl[T jbm.Floats](dst, a []T) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] + a[i]
	}
}

// Sqr sets dst[i] = a[i]*a[i].
func Sqr[T jbm.Floats](dst, a []T) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * a[i]
	}
}

// Scale multiplies every element of dst by c.
func Scale[T jbm.Floats](c T, dst []T) {
	for i := range dst {
		dst[i] *= c
	}
}

// Max returns the largest element of s. NaN elements are skipped, so the
// result is NaN only if s is empty or holds nothing but NaNs.
func Max[T jbm.Floats](s []T) T {
	m := T(math.NaN())
	for _, v := range s {
		if v > m || m != m {
			m = v
		}
	}
	return m
}

// Min returns the smallest element of s, with the conventions of Max.
func Min[T jbm.Floats](s []T) T {
	m := T(math.NaN())
	for _, v := range s {
		if v < m || m != m {
			m = v
		}
	}
	return m
}

// MaxMin returns both extremes of s in a single pass, with the conventions
// of Max.
func MaxMin[T jbm.Floats](s []T) (hi, lo T) {
	hi, lo = T(math.NaN()), T(math.NaN())
	for _, v := range s {
		if v != v {
			continue
		}
		if v > hi || hi != hi {
			hi = v
		}
		if v < lo || lo != lo {
			lo = v
		}
	}
	return hi, lo
}
