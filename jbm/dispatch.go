package jbm

import (
	"math"
	"os"
	"strconv"
)

// hasFMA reports whether MulAdd uses a fused multiply-add.
// Set by init() in dispatch_*.go files.
var hasFMA bool

// fmaName is the human-readable name of the multiply-add path.
var fmaName = "mul+add"

// HasFMA reports whether the polynomial and rational evaluators use a fused
// multiply-add (a single rounding per step) instead of a rounded multiply
// followed by an add.
func HasFMA() bool {
	return hasFMA
}

// CurrentName returns a human-readable name for the multiply-add path in use,
// for example "fma" or "mul+add".
func CurrentName() string {
	return fmaName
}

// SetFMA forces the fused (on) or unfused multiply-add path and returns the
// previous setting. It exists for tests and benchmarks that need to exercise
// both paths; it must not be called while other goroutines are evaluating.
// Forcing the fused path on a CPU without FMA is correct but slow, because
// math.FMA then runs in software.
func SetFMA(on bool) bool {
	prev := hasFMA
	hasFMA = on
	if on {
		fmaName = "fma"
	} else {
		fmaName = "mul+add"
	}
	return prev
}

// NoFMAEnv checks if the JBM_NO_FMA environment variable is set.
// When set, the evaluators use the unfused multiply-add regardless of CPU
// capabilities. This is useful for testing and for bit-reproducible results
// across machines.
func NoFMAEnv() bool {
	val := os.Getenv("JBM_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MulAdd returns a*b + c. With FMA support the result is rounded once;
// otherwise the product is rounded before the addition. The explicit
// conversion keeps the compiler from fusing the unfused path on its own.
func MulAdd[T Floats](a, b, c T) T {
	if hasFMA {
		return T(math.FMA(float64(a), float64(b), float64(c)))
	}
	return T(a*b) + c
}
