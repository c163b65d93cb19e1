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

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomOperands returns n pairs of float64 values spread over a wide
// exponent range.
func randomOperands(n int) [][2]float64 {
	r := rand.New(rand.NewPCG(1, 2))
	out := make([][2]float64, n)
	for i := range out {
		a := (r.Float64()*2 - 1) * math.Ldexp(1, r.IntN(400)-200)
		b := (r.Float64()*2 - 1) * math.Ldexp(1, r.IntN(400)-200)
		out[i] = [2]float64{a, b}
	}
	return out
}

func exactSum(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(2048).SetFloat64(a)
	return x.Add(x, new(big.Float).SetFloat64(b))
}

func exactProduct(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(2048).SetFloat64(a)
	return x.Mul(x, new(big.Float).SetFloat64(b))
}

// TestTwoSum verifies s + e == a + b exactly.
func TestTwoSum(t *testing.T) {
	for _, op := range randomOperands(1000) {
		s, e := twoSum(op[0], op[1])
		assert.Equal(t, s, op[0]+op[1])
		assert.Zerof(t, exactSum(s, e).Cmp(exactSum(op[0], op[1])),
			"twoSum(%v, %v) = %v, %v", op[0], op[1], s, e)
	}
}

// TestTwoProdKernels verifies that both kernels return the exact product and
// agree bit for bit.
func TestTwoProdKernels(t *testing.T) {
	ops := randomOperands(1000)
	ops = append(ops,
		[2]float64{1e300, 3.7},
		[2]float64{-1.5e305, 1.0000001},
		[2]float64{1, 0},
	)
	for _, op := range ops {
		p1, e1 := twoProdFMA(op[0], op[1])
		p2, e2 := twoProdDekker(op[0], op[1])
		assert.Equal(t, p1, p2)
		assert.Equalf(t, e1, e2, "kernels disagree on %v * %v", op[0], op[1])
		if p1 != 0 && math.Abs(p1) > 0x1p-900 {
			assert.Zerof(t, exactSum(p1, e1).Cmp(exactProduct(op[0], op[1])),
				"twoProd(%v, %v) is not exact", op[0], op[1])
		}
	}
}

// TestTwoProdNonFinite verifies that the Dekker kernel does not recurse on
// infinite operands.
func TestTwoProdNonFinite(t *testing.T) {
	p, e := twoProdDekker(math.Inf(1), 2)
	assert.True(t, math.IsInf(p, 1))
	assert.Equal(t, 0.0, e)

	p, _ = twoProdDekker(math.Inf(1), 0)
	assert.True(t, math.IsNaN(p))
}

// TestSplit verifies that split produces two halves of at most 26 bits.
func TestSplit(t *testing.T) {
	for _, a := range []float64{math.Pi, 1e300, -1.7e308, 0x1p-1000, 1} {
		hi, lo := split(a)
		assert.Equal(t, a, hi+lo)
		for _, part := range []float64{hi, lo} {
			if part == 0 {
				continue
			}
			_, exp := math.Frexp(part)
			mant := math.Ldexp(part, 26-exp)
			assert.Equalf(t, math.Trunc(mant), mant, "split(%v) half %v has more than 26 bits", a, part)
		}
	}
}

// TestArithmetic checks the basic operations against exact identities.
func TestArithmetic(t *testing.T) {
	three := FromFloat64(3)

	t.Run("DivThenMul", func(t *testing.T) {
		third := One.Div(three)
		assert.Equal(t, 1.0/3, third.Hi)
		assert.InDelta(t, 1.850371707708594e-17, third.Lo, 1e-32)
		assertClose(t, "1", third.Mul(three), 1e-31)
	})

	t.Run("AddSub", func(t *testing.T) {
		a := New(1, 1e-20)
		b := New(1e-10, 1e-30)
		assertClose(t, "1.0000000001000000000100000036442197310013", a.Add(b), 1e-31)
		assertClose(t, "0.99999999990000000000999999635578026790176", a.Sub(b), 1e-31)
		assert.True(t, a.Sub(a).IsZero())
	})

	t.Run("Float64Operands", func(t *testing.T) {
		assertClose(t, "4.1415926535897932384626433832795", Pi.AddFloat64(1), 1e-31)
		assertClose(t, "6.2831853071795864769252867665590", Pi.MulFloat64(2), 1e-31)
		assertClose(t, "1.5707963267948966192313216916398", Pi.DivFloat64(2), 1e-31)
	})

	t.Run("Sqr", func(t *testing.T) {
		assertClose(t, "9.8696044010893586188344909998762", Pi.Sqr(), 1e-30)
	})

	t.Run("Ldexp", func(t *testing.T) {
		assert.Equal(t, DD{Hi: math.Pi * 8, Lo: Pi.Lo * 8}, Pi.Ldexp(3))
	})

	t.Run("NegAbs", func(t *testing.T) {
		assert.Equal(t, Pi, Pi.Neg().Abs())
		assert.True(t, Zero.Neg().Signbit())
	})
}

// TestFloor tests Floor on values that straddle an integer by less than one
// float64 ulp.
func TestFloor(t *testing.T) {
	tests := []struct {
		name  string
		value DD
		want  DD
	}{
		{"Integer", FromFloat64(5), FromFloat64(5)},
		{"JustBelowThree", New(3, -1e-17), FromFloat64(2)},
		{"JustAboveThree", New(3, 1e-17), FromFloat64(3)},
		{"Fraction", New(2.5, 1e-17), FromFloat64(2)},
		{"Negative", FromFloat64(-2.5), FromFloat64(-3)},
		{"NegativeJustBelow", New(-2, -1e-17), FromFloat64(-3)},
		{"WideInteger", New(0x1p70, 1.5), New(0x1p70, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Floor()
			assert.Truef(t, got.Equal(tt.want), "Floor(%v) = %v, want %v", tt.value, got, tt.want)
		})
	}

	assert.True(t, Inf(-1).Floor().IsInf(-1))
	assert.True(t, NaN().Floor().IsNaN())
}

// TestSpecialValues verifies that non-finite results collapse into Hi.
func TestSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		got  DD
		nan  bool
		inf  int
	}{
		{"InfPlusOne", Inf(1).Add(One), false, 1},
		{"InfMinusInf", Inf(1).Sub(Inf(1)), true, 0},
		{"InfTimesZero", Inf(1).Mul(Zero), true, 0},
		{"InfTimesNeg", Inf(1).Mul(One.Neg()), false, -1},
		{"OneOverZero", One.Div(Zero), false, 1},
		{"OneOverNegZero", One.Div(Zero.Neg()), false, -1},
		{"ZeroOverZero", Zero.Div(Zero), true, 0},
		{"Overflow", FromFloat64(1e300).Mul(FromFloat64(1e10)), false, 1},
		{"NaNPlusOne", NaN().AddFloat64(1), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.nan {
				assert.True(t, tt.got.IsNaN(), "got %v", tt.got)
				return
			}
			assert.True(t, tt.got.IsInf(tt.inf), "got %v", tt.got)
			assert.Equal(t, 0.0, tt.got.Lo)
		})
	}

	t.Run("FiniteOverInf", func(t *testing.T) {
		got := One.Div(Inf(1))
		assert.True(t, got.IsZero())
	})

	t.Run("SignedZeroSum", func(t *testing.T) {
		negZero := Zero.Neg()
		assert.True(t, negZero.Add(negZero).Signbit())
		assert.False(t, negZero.Add(Zero).Signbit())
		assert.True(t, negZero.AddFloat64(math.Copysign(0, -1)).Signbit())
	})
}
