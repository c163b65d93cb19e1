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

// evalPoly evaluates c[n]*x^n + ... + c[1]*x + c[0] by Horner's method,
// starting from the highest degree as the coefficients were fitted.
func evalPoly(x xprec.DD, c []xprec.DD) xprec.DD {
	n := len(c) - 1
	if n < 0 {
		return xprec.Zero
	}
	y := c[n]
	for i := n - 1; i >= 0; i-- {
		y = y.Mul(x).Add(c[i])
	}
	return y
}

// evalMonicPoly evaluates x^(n+1) + c[n]*x^n + ... + c[0]. The leading
// coefficient 1 is implicit.
func evalMonicPoly(x xprec.DD, c []xprec.DD) xprec.DD {
	n := len(c) - 1
	if n < 0 {
		return xprec.One
	}
	y := x.Add(c[n])
	for i := n - 1; i >= 0; i-- {
		y = y.Mul(x).Add(c[i])
	}
	return y
}
