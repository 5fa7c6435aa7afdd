package poly

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/jbmath/go-jbm/jbm"
)

// bothPaths runs f once with the fused and once with the unfused multiply-add.
func bothPaths(t *testing.T, f func(t *testing.T)) {
	t.Helper()
	prev := jbm.SetFMA(false)
	defer jbm.SetFMA(prev)
	t.Run("mul+add", f)
	jbm.SetFMA(true)
	t.Run("fma", f)
}

func TestHorner(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		p    []float64
		want float64
	}{
		{"empty", 3, nil, 0},
		{"constant", 3, []float64{7}, 7},
		{"linear", 3, []float64{1, 2}, 7},
		{"quadratic", 2, []float64{1, -3, 2}, 3},
		{"cubic at zero", 0, []float64{5, 1, 1, 1}, 5},
		{"x^4", -2, []float64{0, 0, 0, 0, 1}, 16},
	}

	bothPaths(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := Horner(tt.x, tt.p); got != tt.want {
				t.Errorf("%s: Horner(%v, %v) = %v, want %v", tt.name, tt.x, tt.p, got, tt.want)
			}
		}
	})
}

func TestHornerFloat32(t *testing.T) {
	p := []float32{1, 0.5, 0.25}
	if got := Horner(float32(2), p); got != 3 {
		t.Errorf("Horner(2, %v) = %v, want 3", p, got)
	}
}

func TestEstrinMatchesHorner(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	bothPaths(t, func(t *testing.T) {
		for n := 0; n <= 40; n++ {
			p := make([]float64, n)
			for i := range p {
				p[i] = r.Float64()*2 - 1
			}
			for range 20 {
				x := r.Float64()*1.6 - 0.8
				h, e := Horner(x, p), Estrin(x, p)
				if !scalar.EqualWithinAbsOrRel(h, e, 1e-13, 1e-13) {
					t.Fatalf("degree %d at %v: Estrin = %v, Horner = %v", n-1, x, e, h)
				}
			}
		}
	})
}

func TestEstrinExactIntegers(t *testing.T) {
	// (1+x)^5 with integer coefficients is exact at small integers.
	p := []float64{1, 5, 10, 10, 5, 1}
	for _, x := range []float64{-3, -1, 0, 1, 2, 3} {
		want := math.Pow(1+x, 5)
		assert.Equal(t, want, Estrin(x, p), "x=%v", x)
		assert.Equal(t, want, Horner(x, p), "x=%v", x)
	}
}

func TestRational(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		p    []float64
		n    int
		want float64
	}{
		// (1 + x) / (1 + 2x)
		{"1/1", 1, []float64{1, 1, 2}, 1, 2.0 / 3.0},
		// 1 / (1 - x)
		{"0/1", 0.5, []float64{1, -1}, 0, 2},
		// (2 + 3x + x^2) / (1 + x + x^2)
		{"2/2", 2, []float64{2, 3, 1, 1, 1}, 2, 12.0 / 7.0},
		// numerator only
		{"2/0", 3, []float64{1, 0, 1}, 2, 10},
	}

	bothPaths(t, func(t *testing.T) {
		for _, tt := range tests {
			got := Rational(tt.x, tt.p, tt.n)
			if !scalar.EqualWithinULP(got, tt.want, 1) {
				t.Errorf("%s: Rational(%v, %v, %d) = %v, want %v", tt.name, tt.x, tt.p, tt.n, got, tt.want)
			}
		}
	})
}

func TestRationalApproximatesExp(t *testing.T) {
	// Padé [2/2] of exp: (1 + x/2 + x^2/12) / (1 - x/2 + x^2/12).
	p := []float64{1, 0.5, 1.0 / 12, -0.5, 1.0 / 12}
	for _, x := range []float64{-0.1, -0.01, 0, 0.01, 0.1} {
		got := Rational(x, p, 2)
		assert.InDelta(t, math.Exp(x), got, 1e-7, "x=%v", x)
	}
}

func TestNaNPropagates(t *testing.T) {
	nan := math.NaN()
	assert.True(t, math.IsNaN(Horner(nan, []float64{1, 2})))
	assert.True(t, math.IsNaN(Estrin(nan, []float64{1, 2, 3})))
	assert.True(t, math.IsNaN(Rational(nan, []float64{1, 2, 3}, 1)))
}

func BenchmarkHorner(b *testing.B) {
	p := []float64{1, 1, 0.5, 1.0 / 6, 1.0 / 24, 1.0 / 120, 1.0 / 720, 1.0 / 5040, 1.0 / 40320}
	x := 0.3
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += Horner(x, p)
	}
	_ = sum
}

func BenchmarkEstrin(b *testing.B) {
	p := []float64{1, 1, 0.5, 1.0 / 6, 1.0 / 24, 1.0 / 120, 1.0 / 720, 1.0 / 5040, 1.0 / 40320}
	x := 0.3
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += Estrin(x, p)
	}
	_ = sum
}

func BenchmarkRational(b *testing.B) {
	p := []float64{1, 0.5, 1.0 / 12, -0.5, 1.0 / 12}
	x := 0.3
	var sum float64
	for i := 0; i < b.N; i++ {
		sum += Rational(x, p, 2)
	}
	_ = sum
}
