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

import "github.com/jbmath/go-jbm/jbm"

// Search returns the index i of the interval a[i] <= x < a[i+1] of the
// ascending slice a, found by bisection. Arguments outside the table map to
// the first or last interval, so the result is always in [0, len(a)-2]; it
// is 0 when a has fewer than two elements.
func Search[T jbm.Floats](x T, a []T) int {
	lo, hi := 0, len(a)-1
	if hi < 1 {
		return 0
	}
	for hi-lo > 1 {
		mid := int(uint(lo+hi) >> 1)
		if x < a[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// SearchExtended is Search with the out-of-table cases reported: it returns
// -1 if x < a[0] and len(a)-1 if x >= a[len(a)-1]. An empty table yields -1.
func SearchExtended[T jbm.Floats](x T, a []T) int {
	n := len(a)
	switch {
	case n == 0 || x < a[0]:
		return -1
	case x >= a[n-1]:
		return n - 1
	}
	return Search(x, a)
}

// Merge returns the ascending union of the ascending slices a and b in a new
// slice. Values equal to the previously emitted one are dropped.
func Merge[T jbm.Floats](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	push := func(v T) {
		if n := len(out); n == 0 || out[n-1] != v {
			out = append(out, v)
		}
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			push(b[j])
			j++
		} else {
			push(a[i])
			i++
		}
	}
	for ; i < len(a); i++ {
		push(a[i])
	}
	for ; j < len(b); j++ {
		push(b[j])
	}
	return out
}
