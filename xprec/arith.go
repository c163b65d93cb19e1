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
// Error-free transformations
// =============================================================================

// twoSum returns s = fl(a+b) and the exact rounding error e = (a+b) - s.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// quickTwoSum is twoSum for |a| >= |b|.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// =============================================================================
// Arithmetic
// =============================================================================

// Add returns d + e.
func (d DD) Add(e DD) DD {
	s1, s2 := twoSum(d.Hi, e.Hi)
	if !finite(s1) {
		return DD{Hi: s1}
	}
	if s1 == 0 && d.Lo == 0 && e.Lo == 0 {
		// Keep the IEEE sign of a zero sum.
		return DD{Hi: s1}
	}
	t1, t2 := twoSum(d.Lo, e.Lo)
	s2 += t1
	s1, s2 = quickTwoSum(s1, s2)
	s2 += t2
	s1, s2 = quickTwoSum(s1, s2)
	return DD{Hi: s1, Lo: s2}
}

// Sub returns d - e.
func (d DD) Sub(e DD) DD {
	return d.Add(e.Neg())
}

// AddFloat64 returns d + f.
func (d DD) AddFloat64(f float64) DD {
	s1, s2 := twoSum(d.Hi, f)
	if !finite(s1) {
		return DD{Hi: s1}
	}
	if s1 == 0 && d.Lo == 0 {
		return DD{Hi: s1}
	}
	s2 += d.Lo
	s1, s2 = quickTwoSum(s1, s2)
	return DD{Hi: s1, Lo: s2}
}

// Mul returns d * e.
func (d DD) Mul(e DD) DD {
	p1, p2 := twoProd(d.Hi, e.Hi)
	if !finite(p1) || p1 == 0 {
		return DD{Hi: p1}
	}
	p2 += d.Hi*e.Lo + d.Lo*e.Hi
	p1, p2 = quickTwoSum(p1, p2)
	return DD{Hi: p1, Lo: p2}
}

// MulFloat64 returns d * f.
func (d DD) MulFloat64(f float64) DD {
	p1, p2 := twoProd(d.Hi, f)
	if !finite(p1) || p1 == 0 {
		return DD{Hi: p1}
	}
	p2 += d.Lo * f
	p1, p2 = quickTwoSum(p1, p2)
	return DD{Hi: p1, Lo: p2}
}

// Sqr returns d * d.
func (d DD) Sqr() DD {
	return d.Mul(d)
}

// Div returns d / e, correct to about 2^-104 relative.
func (d DD) Div(e DD) DD {
	q1 := d.Hi / e.Hi
	if !finite(q1) || q1 == 0 || math.IsInf(e.Hi, 0) {
		return DD{Hi: q1}
	}
	r := d.Sub(e.MulFloat64(q1))
	q2 := r.Hi / e.Hi
	r = r.Sub(e.MulFloat64(q2))
	q3 := r.Hi / e.Hi
	q1, q2 = quickTwoSum(q1, q2)
	return DD{Hi: q1, Lo: q2}.AddFloat64(q3)
}

// DivFloat64 returns d / f.
func (d DD) DivFloat64(f float64) DD {
	return d.Div(DD{Hi: f})
}

// Neg returns -d.
func (d DD) Neg() DD {
	return DD{Hi: -d.Hi, Lo: -d.Lo}
}

// Abs returns |d|.
func (d DD) Abs() DD {
	if d.Signbit() {
		return d.Neg()
	}
	return d
}

// Ldexp returns d * 2^exp. It is exact unless the result leaves the normal
// float64 range.
func (d DD) Ldexp(exp int) DD {
	return DD{Hi: math.Ldexp(d.Hi, exp), Lo: math.Ldexp(d.Lo, exp)}
}

// Floor returns the greatest integer value less than or equal to d.
func (d DD) Floor() DD {
	if !finite(d.Hi) {
		return d
	}
	hi := math.Floor(d.Hi)
	if hi != d.Hi {
		// |Lo| is below the distance from Hi to the integer grid.
		return DD{Hi: hi}
	}
	lo := math.Floor(d.Lo)
	hi, lo = quickTwoSum(hi, lo)
	return DD{Hi: hi, Lo: lo}
}
