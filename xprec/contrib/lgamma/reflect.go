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

import (
	"math"

	"github.com/ajroetker/go-xprec/xprec"
)

// gammaSign returns the sign of Gamma on (-p-1, -p) for an integer p >= 0:
// -1 when p is even, +1 when it is odd. The parity is read from each limb
// with math.Mod, so it is exact for every DD integer and no conversion to a
// machine integer can overflow.
func gammaSign(p xprec.DD) int {
	odd := (math.Mod(p.Hi, 2) != 0) != (math.Mod(p.Lo, 2) != 0)
	if odd {
		return 1
	}
	return -1
}

var (
	// logPi is log(π).
	logPi = xprec.Log(xprec.Pi)

	// smallSine bounds z below which sin(πz) = πz to DD precision: the
	// next series term is (πz)²/6 relative.
	smallSine = 1e-17
)

// reflectNegative returns lgamma(x) and the sign of Gamma(x) for a negative,
// non-integer x using
//
//	Gamma(x) Gamma(1-x) sin(πx) = π
//
// in the form lgamma(x) = log(π) - log(-x) - log|sin(πx)| - lgamma(-x).
// The logarithms are taken separately: the product -x sin(πx) is about πx²
// and underflows for |x| below 1e-154.
func reflectNegative(x xprec.DD) (xprec.DD, int) {
	q := x.Neg()
	p := q.Floor()
	sign := gammaSign(p)

	// Fold the fraction onto [0, 0.5] so sin(πz) loses no bits to
	// cancellation near 1.
	z := q.Sub(p)
	if xprec.Half.Less(z) {
		p = p.AddFloat64(1)
		z = p.Sub(q)
	}
	w, _ := LogGammaAbs(q)
	return reflectionTerms(q, z, w, sign)
}

// reflectionTerms combines the terms of the reflection formula for
// q = -x > 0, the distance z in [0, 0.5] from q to the nearest integer, and
// w = lgamma(q). A zero z means x was rounded onto a pole, which gives an
// infinity carrying sign.
func reflectionTerms(q, z, w xprec.DD, sign int) (xprec.DD, int) {
	if z.IsZero() {
		return xprec.Inf(sign), sign
	}
	var logSine xprec.DD
	if z.Hi < smallSine {
		// SinPi would round πz into the subnormal range for the tiniest z.
		logSine = logPi.Add(xprec.Log(z))
	} else {
		logSine = xprec.Log(xprec.SinPi(z))
	}
	return logPi.Sub(xprec.Log(q).Add(logSine)).Sub(w), sign
}
