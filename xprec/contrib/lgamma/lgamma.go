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

package lgamma

import "github.com/ajroetker/go-xprec/xprec"

// LogGammaAbs returns the natural logarithm of |Gamma(x)| and the sign of
// Gamma(x), -1 or +1. The sign is set for every input.
//
// Special cases are:
//
//	LogGammaAbs(±Inf) = +Inf, 1
//	LogGammaAbs(NaN) = NaN, 1
//	LogGammaAbs(+0) = +Inf, 1
//	LogGammaAbs(-0) = +Inf, -1
//	LogGammaAbs(-n) = +Inf, sign of Gamma just below -n, for integers n > 0
//	LogGammaAbs(x > 2.5599833278516383e305) = +Inf, 1
//	LogGammaAbs(1) = LogGammaAbs(2) = 0, 1
func LogGammaAbs(x xprec.DD) (xprec.DD, int) {
	switch {
	case x.IsNaN() || x.IsInf(0):
		return x.Mul(x), 1
	case x.IsZero():
		if x.Signbit() {
			return xprec.Inf(1), -1
		}
		return xprec.Inf(1), 1
	case x.Signbit():
		if x.IsInt() {
			return xprec.Inf(1), gammaSign(x.Neg())
		}
		return reflectNegative(x)
	case maxLgm.Less(x):
		return xprec.Inf(1), 1
	case x.Less(rationalCeiling):
		return findSegment(x).eval(x), 1
	}
	return stirling(x), 1
}

// Lgamma is LogGammaAbs for float64 arguments, with the signature of
// math.Lgamma. The result is the DD value rounded to float64, so it is
// correctly rounded far more often than math.Lgamma.
//
// Unlike math.Lgamma, the sign returned at a negative integer pole follows
// Gamma just below the pole.
func Lgamma(x float64) (lgamma float64, sign int) {
	r, sign := LogGammaAbs(xprec.FromFloat64(x))
	return r.Float64(), sign
}
