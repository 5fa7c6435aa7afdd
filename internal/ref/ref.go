// Package ref holds higher-accuracy reference functions and argument
// samplers shared by the accuracy tests and the jbmcheck command.
package ref

import (
	"math"
	"math/rand/v2"
)

// Domain is an interval to draw arguments from, uniformly or, with LogScale,
// uniformly in the logarithm (Lo and Hi then must satisfy 0 < Lo < Hi).
type Domain struct {
	Lo, Hi   float64
	LogScale bool
}

// Uniform returns a Domain drawing uniformly from [lo, hi).
func Uniform(lo, hi float64) Domain { return Domain{lo, hi, false} }

// LogUniform returns a Domain drawing uniformly in the logarithm of [lo, hi).
func LogUniform(lo, hi float64) Domain { return Domain{lo, hi, true} }

// Sample draws one argument from d.
func (d Domain) Sample(r *rand.Rand) float64 {
	u := r.Float64()
	if d.LogScale {
		l0, l1 := math.Log(d.Lo), math.Log(d.Hi)
		return math.Exp(l0 + (l1-l0)*u)
	}
	return d.Lo + (d.Hi-d.Lo)*u
}

// ln(10) = ln10Hi + ln10Lo
const (
	ln10Hi = 2.302585092994046
	ln10Lo = -2.1707562233822494e-16
)

// Exp10 returns 10^x as e^p * (1+c), where p + c = x*ln(10) to about twice
// double precision.
func Exp10(x float64) float64 {
	p := x * ln10Hi
	c := math.FMA(x, ln10Hi, -p) + x*ln10Lo
	return math.Exp(p) * (1 + c)
}

// Log2 avoids math.Log2, which cancels for arguments just above 1.
func Log2(x float64) float64 { return math.Log(x) * math.Log2E }

// Asin and Acos avoid math.Asin and math.Acos, which form 1-x² directly and
// lose accuracy as |x| approaches 1.
func Asin(x float64) float64 { return math.Atan2(x, math.Sqrt((1-x)*(1+x))) }

func Acos(x float64) float64 { return math.Atan2(math.Sqrt((1-x)*(1+x)), x) }
