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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertClose checks got against a decimal reference, relative to
// max(1, |want|).
func assertClose(t *testing.T, want string, got DD, tol float64) {
	t.Helper()
	w := MustParse(want)
	diff := math.Abs(got.Sub(w).Float64())
	scale := math.Max(1, math.Abs(w.Hi))
	assert.LessOrEqualf(t, diff, tol*scale, "got %v, want %v", got, w)
}

// TestParse verifies decimal conversion, including values that need both limbs.
func TestParse(t *testing.T) {
	t.Run("OneTenth", func(t *testing.T) {
		d, err := Parse("0.1")
		require.NoError(t, err)
		assert.Equal(t, 0.1, d.Hi)
		assert.InDelta(t, -5.551115123125783e-18, d.Lo, 1e-33)
	})

	t.Run("DyadicHasNoLow", func(t *testing.T) {
		d := MustParse("1.9987213134765625E1")
		assert.Equal(t, 19.987213134765625, d.Hi)
		assert.Equal(t, 0.0, d.Lo)
	})

	t.Run("Whitespace", func(t *testing.T) {
		d, err := Parse("  2.5\n")
		require.NoError(t, err)
		assert.True(t, d.Equal(FromFloat64(2.5)))
	})

	t.Run("Specials", func(t *testing.T) {
		assert.True(t, MustParse("NaN").IsNaN())
		assert.True(t, MustParse("+Inf").IsInf(1))
		assert.True(t, MustParse("-Inf").IsInf(-1))
		negZero := MustParse("-0")
		assert.True(t, negZero.IsZero())
		assert.True(t, negZero.Signbit())
	})

	t.Run("Overflow", func(t *testing.T) {
		assert.True(t, MustParse("1e400").IsInf(1))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Parse("one")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"one"`)
		assert.Panics(t, func() { MustParse("1.2.3") })
	})
}

// TestConstants verifies the predefined constants against their decimal
// expansions.
func TestConstants(t *testing.T) {
	assert.Equal(t, math.Pi, Pi.Hi)
	assert.Equal(t, math.Ln2, Ln2.Hi)
	assert.InDelta(t, 1.2246467991473532e-16, Pi.Lo, 1e-31)
	assert.InDelta(t, 2.3190468138462996e-17, Ln2.Lo, 1e-32)
	assert.True(t, strings.HasPrefix(Pi.String(), "3.1415926535897932384626433832795"), Pi.String())
}

// TestText tests formatting of finite and special values.
func TestText(t *testing.T) {
	tests := []struct {
		name   string
		value  DD
		format byte
		prec   int
		want   string
	}{
		{"Half", Half, 'f', 3, "0.500"},
		{"NaN", NaN(), 'g', 10, "NaN"},
		{"PosInf", Inf(1), 'g', 10, "+Inf"},
		{"NegInf", Inf(-1), 'g', 10, "-Inf"},
		{"TwoLimbs", New(1, 0x1p-60), 'g', 20, "1.0000000000000000009"},
		{"Exponent", FromFloat64(1.5e-20), 'e', 2, "1.50e-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Text(tt.format, tt.prec))
		})
	}
}

// TestBigFloat verifies that BigFloat and FromBigFloat are exact inverses.
func TestBigFloat(t *testing.T) {
	values := []DD{
		Pi,
		Ln2.Neg(),
		New(1e20, 0.5),
		New(3, -1e-17),
		FromFloat64(5e-324),
	}
	for _, v := range values {
		got := FromBigFloat(v.BigFloat())
		assert.Truef(t, got.Equal(v), "round trip of %v gave %v", v, got)
	}
	assert.Nil(t, NaN().BigFloat())
}

// TestNew verifies normalisation of the two limbs.
func TestNew(t *testing.T) {
	d := New(1, 1)
	assert.Equal(t, DD{Hi: 2}, d)

	d = New(1, 0x1p-53)
	assert.Equal(t, 1.0, d.Hi)
	assert.Equal(t, 0x1p-53, d.Lo)

	assert.True(t, New(math.Inf(1), 1).IsInf(1))
}

// TestPredicates tests the classification helpers.
func TestPredicates(t *testing.T) {
	t.Run("Sign", func(t *testing.T) {
		assert.Equal(t, 1, One.Sign())
		assert.Equal(t, -1, One.Neg().Sign())
		assert.Equal(t, 0, Zero.Sign())
		assert.Equal(t, 0, NaN().Sign())
	})

	t.Run("IsInt", func(t *testing.T) {
		tests := []struct {
			value DD
			want  bool
		}{
			{FromFloat64(3), true},
			{FromFloat64(-7), true},
			{FromFloat64(1e300), true},
			{New(0x1p70, 1), true},
			{FromFloat64(2.5), false},
			{New(3, -1e-17), false},
			{New(1e20, 0.5), false},
			{Inf(1), false},
			{NaN(), false},
		}
		for _, tt := range tests {
			assert.Equalf(t, tt.want, tt.value.IsInt(), "IsInt(%v)", tt.value)
		}
	})

	t.Run("Order", func(t *testing.T) {
		a := New(1, -1e-20)
		b := One
		c := New(1, 1e-20)
		assert.True(t, a.Less(b))
		assert.True(t, b.Less(c))
		assert.False(t, c.Less(a))
		assert.Equal(t, -1, a.Cmp(c))
		assert.Equal(t, 1, c.Cmp(b))
		assert.Equal(t, 0, b.Cmp(One))
		assert.False(t, NaN().Equal(NaN()))
		assert.True(t, Zero.Equal(Zero.Neg()))
	})
}
