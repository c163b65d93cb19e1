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

// stirlingCutoff is where the correction 1/x R(1/x^2) drops below the
// precision of the leading terms.
var stirlingCutoff = xprec.FromFloat64(1e18)

// stirling returns lgamma(x) for 13.5 <= x <= maxLgm from
//
//	lgamma(x) = (x - 0.5) log(x) - x + log(sqrt(2π)) + 1/x R(1/x^2).
//
// The leading terms are grouped as x(log(x) - 1) - (log(x)/2 - log(sqrt(2π)))
// so no intermediate overflows before the result does.
func stirling(x xprec.DD) xprec.DD {
	l := xprec.Log(x)
	q := x.Mul(l.AddFloat64(-1)).Sub(l.MulFloat64(0.5).Sub(lnSqrt2Pi))
	if stirlingCutoff.Less(x) {
		return q
	}
	p := xprec.One.Div(x.Sqr())
	return q.Add(evalPoly(p, asymptotic).Div(x))
}
