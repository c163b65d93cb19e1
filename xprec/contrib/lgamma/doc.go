// Copyright 2025 go-highway Authors
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

// Package lgamma computes the natural logarithm of |Gamma(x)| in double-double
// precision, returning the sign of Gamma out of band.
//
// The positive axis is split three ways:
//
//   - 0 < x < 13.5: a table of minimax rational approximations, each expanded
//     around an integer, a half or quarter point, or the minimum of Gamma at
//     x0 = 1.4616..., with the anchor value log Gamma(center) stored as a
//     high/low pair. Below 1 the tables for log Gamma(x+1) are reused and
//     corrected by -log(x).
//   - 13.5 <= x <= 2.5599833278516383e305: the Stirling series.
//   - Beyond that the result overflows to +Inf.
//
// Negative arguments are mapped to positive ones with the reflection formula
// Gamma(x) Gamma(1-x) sin(πx) = π.
//
// # Accuracy
//
// Relative error is around 1e-31 for x > 0 where |log Gamma(x)| >= 1 and
// absolute error around 1e-31 elsewhere, limited by the 106-bit DD format;
// the approximations themselves are good to about 1e-34.
//
// # Example Usage
//
//	x := xprec.MustParse("0.3")
//	y, sign := lgamma.LogGammaAbs(x)
//	fmt.Println(y, sign) // 1.0957979948180756...
//
// All functions are pure and safe for concurrent use.
package lgamma
