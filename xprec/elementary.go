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

package xprec

import "math"

// =============================================================================
// Constants for elementary functions
// =============================================================================

var (
	// eps is the relative size of the last series term worth adding.
	eps = 0x1p-106

	// expOverflow and expUnderflow bound the arguments of Exp with a finite,
	// non-zero result.
	expOverflow  = 709.782712893384
	expUnderflow = -745.1332191019412

	// expReduce is log2 of the argument scaling applied before the Taylor
	// series in Exp; the result is squared back expReduce times.
	expReduce = 9

	quarter = DD{Hi: 0.25}
)

// Exp returns e**d.
//
// The argument is reduced to r = d - k*ln2, scaled by 2^-9, expanded as a
// Taylor series for expm1 and squared back up with expm1(2r) = 2expm1(r) +
// expm1(r)^2, which keeps the small result at full relative accuracy.
func Exp(d DD) DD {
	switch {
	case d.IsNaN():
		return d
	case d.Hi > expOverflow:
		return Inf(1)
	case d.Hi < expUnderflow:
		return Zero
	case d.IsZero():
		return One
	}

	k := math.Round(d.Hi / Ln2.Hi)
	r := d.Sub(Ln2.MulFloat64(k)).Ldexp(-expReduce)

	s, term := r, r
	for i := 2; i < 24; i++ {
		term = term.Mul(r).DivFloat64(float64(i))
		s = s.Add(term)
		if math.Abs(term.Hi) <= eps*math.Abs(s.Hi) {
			break
		}
	}
	for range expReduce {
		s = s.Ldexp(1).Add(s.Sqr())
	}
	return s.AddFloat64(1).Ldexp(int(k))
}

// Log returns the natural logarithm of d.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
//
// d is scaled into [sqrt(2)/2, sqrt(2)) by a power of two, and the float64
// logarithm of the scaled value is refined with one Newton step
// y += m*exp(-y) - 1, which doubles its 53 correct bits.
func Log(d DD) DD {
	switch {
	case d.IsNaN() || d.Hi < 0:
		return NaN()
	case d.IsZero():
		return Inf(-1)
	case d.IsInf(1):
		return d
	case d.Hi == 1 && d.Lo == 0:
		return Zero
	}

	frac, exp := math.Frexp(d.Hi)
	if frac < math.Sqrt2/2 {
		exp--
	}
	m := d.Ldexp(-exp)

	y := FromFloat64(math.Log(m.Hi))
	y = y.Add(m.Mul(Exp(y.Neg())).AddFloat64(-1))
	if exp == 0 {
		return y
	}
	return Ln2.MulFloat64(float64(exp)).Add(y)
}

// SinPi returns sin(π*d).
//
// The argument is reduced modulo 2 exactly, so SinPi stays accurate for
// arguments whose product with π would lose all fractional bits, and is
// exactly zero at the integers.
func SinPi(d DD) DD {
	if d.IsNaN() || d.IsInf(0) {
		return NaN()
	}

	neg := false
	if d.Signbit() {
		d = d.Neg()
		neg = true
	}

	// d mod 2, then fold [1, 2) onto [0, 1) with a sign flip.
	d = d.Sub(d.Ldexp(-1).Floor().Ldexp(1))
	if !d.Less(One) {
		d = d.AddFloat64(-1)
		neg = !neg
	}
	// sin(π(1-d)) = sin(πd)
	if Half.Less(d) {
		d = One.Sub(d)
	}

	var s DD
	if quarter.Less(d) {
		s = cosTaylor(Pi.Mul(Half.Sub(d)))
	} else {
		s = sinTaylor(Pi.Mul(d))
	}
	if neg {
		return s.Neg()
	}
	return s
}

// sinTaylor evaluates the Taylor series of sin for |t| <= π/4.
func sinTaylor(t DD) DD {
	if t.IsZero() {
		return t
	}
	t2 := t.Sqr().Neg()
	s, term := t, t
	for i := 3.0; i < 64; i += 2 {
		term = term.Mul(t2).DivFloat64(i * (i - 1))
		s = s.Add(term)
		if math.Abs(term.Hi) <= eps*math.Abs(s.Hi) {
			break
		}
	}
	return s
}

// cosTaylor evaluates the Taylor series of cos for |t| <= π/4.
func cosTaylor(t DD) DD {
	t2 := t.Sqr().Neg()
	s, term := One, One
	for i := 2.0; i < 64; i += 2 {
		term = term.Mul(t2).DivFloat64(i * (i - 1))
		s = s.Add(term)
		if math.Abs(term.Hi) <= eps {
			break
		}
	}
	return s
}
