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

// Package algo provides slice algorithms around the elementary functions:
// interval search and merging over ascending tables, and transforms that
// apply a function to every element of a slice.
//
// # Sorted tables
//
//   - Search(x, a) returns the interval index i with a[i] <= x < a[i+1],
//     clamped to [0, len(a)-2].
//   - SearchExtended(x, a) reports -1 below the table and len(a)-1 at or
//     above its last element.
//   - Merge(a, b) returns the ascending union of two ascending slices.
//
// # Transform API
//
// Transform64(input, output, fn) writes fn(input[i]) to output[i] for the
// common prefix of the two slices. Named transforms cover the functions of
// package math:
//   - ExpTransform, Exp2Transform, Expm1Transform
//   - LogTransform, Log2Transform, Log10Transform, Log1pTransform
//   - SinTransform, CosTransform, TanhTransform
//   - ErfTransform, ErfcTransform, SigmoidTransform
//
// ParallelTransform64 does the same over a workerpool.Pool, one contiguous
// range per worker:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	algo.ParallelTransform64(pool, xs, ys, math.Erf)
package algo
