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

package algo

import (
	"github.com/jbmath/go-jbm/jbm/contrib/math"
	"github.com/jbmath/go-jbm/jbm/contrib/workerpool"
)

// ScalarFunc64 is an operation on a single float64.
type ScalarFunc64 func(float64) float64

// Transform64 stores fn(input[i]) in output[i] for i < min(len(input), len(output)).
//
// Example usage:
//
//	Transform64(input, output, func(x float64) float64 { return x*x + x })
func Transform64(input, output []float64, fn ScalarFunc64) {
	n := min(len(input), len(output))
	output = output[:n]
	for i, x := range input[:n] {
		output[i] = fn(x)
	}
}

// ParallelTransform64 is Transform64 with the elements split into contiguous
// ranges run on pool. Input and output may be the same slice.
func ParallelTransform64(pool *workerpool.Pool, input, output []float64, fn ScalarFunc64) {
	n := min(len(input), len(output))
	pool.ParallelFor(n, func(start, end int) {
		Transform64(input[start:end], output[start:end], fn)
	})
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// ExpTransform applies e^x to each element.
func ExpTransform(input, output []float64) { Transform64(input, output, math.Exp) }

// Exp2Transform applies 2^x to each element.
func Exp2Transform(input, output []float64) { Transform64(input, output, math.Exp2) }

// Expm1Transform applies e^x - 1 to each element.
func Expm1Transform(input, output []float64) { Transform64(input, output, math.Expm1) }

// LogTransform applies ln(x) to each element.
func LogTransform(input, output []float64) { Transform64(input, output, math.Log) }

// Log2Transform applies log2(x) to each element.
func Log2Transform(input, output []float64) { Transform64(input, output, math.Log2) }

// Log10Transform applies log10(x) to each element.
func Log10Transform(input, output []float64) { Transform64(input, output, math.Log10) }

// Log1pTransform applies ln(1+x) to each element.
func Log1pTransform(input, output []float64) { Transform64(input, output, math.Log1p) }

// SinTransform applies sin(x) to each element.
func SinTransform(input, output []float64) { Transform64(input, output, math.Sin) }

// CosTransform applies cos(x) to each element.
func CosTransform(input, output []float64) { Transform64(input, output, math.Cos) }

// TanhTransform applies tanh(x) to each element.
func TanhTransform(input, output []float64) { Transform64(input, output, math.Tanh) }

// ErfTransform applies erf(x) to each element.
func ErfTransform(input, output []float64) { Transform64(input, output, math.Erf) }

// ErfcTransform applies erfc(x) to each element.
func ErfcTransform(input, output []float64) { Transform64(input, output, math.Erfc) }

// SigmoidTransform applies 1/(1+e^(-x)) to each element.
func SigmoidTransform(input, output []float64) { Transform64(input, output, sigmoid) }
