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

package math

// Pow returns x^e computed as 2^(e*log2(x)).
//
// There is no special handling of integer exponents, so a negative x gives
// NaN even when e is an integer; use jbm.Pown for those. The relative error
// grows with |e*log2(x)|, since the error of log2(x) is scaled by e before
// the exponential.
//
// Results below the subnormal range are exactly 0: Pow(10, -400.5) == 0.
func Pow(x, e float64) float64 {
	return Exp2(e * Log2(x))
}
