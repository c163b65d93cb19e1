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
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DD represents a double-double number Hi + Lo.
//
// Properties:
//   - Significand: 106 bits (~32 decimal digits)
//   - Exponent range: same as float64
//   - Normalised: |Lo| <= ulp(Hi)/2, so Hi is Hi+Lo rounded to float64
type DD struct {
	Hi float64
	Lo float64
}

// parsePrec is the big.Float precision used for decimal conversions. It is
// wide enough that rounding to Hi and then to Lo is exact.
const parsePrec = 256

// Common values.
var (
	Zero = DD{}
	One  = DD{Hi: 1}
	Half = DD{Hi: 0.5}

	// Pi is π rounded to DD.
	Pi = MustParse("3.141592653589793238462643383279502884197169399375105820974944")

	// Ln2 is ln(2) rounded to DD.
	Ln2 = MustParse("0.6931471805599453094172321214581765680755001343602552541206800")
)

// FromFloat64 returns f as a DD. The conversion is exact.
func FromFloat64(f float64) DD {
	return DD{Hi: f}
}

// New returns the normalised DD equal to hi + lo.
func New(hi, lo float64) DD {
	s, e := twoSum(hi, lo)
	if !finite(s) {
		return DD{Hi: s}
	}
	return DD{Hi: s, Lo: e}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) DD {
	return DD{Hi: math.Inf(sign)}
}

// NaN returns a DD "not-a-number" value.
func NaN() DD {
	return DD{Hi: math.NaN()}
}

// Parse converts a decimal string such as "1.3608962611495173623870550785E-6"
// to the nearest DD. It accepts everything big.ParseFloat accepts in base 10,
// plus "NaN".
func Parse(s string) (DD, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return NaN(), nil
	}
	f, _, err := big.ParseFloat(s, 10, parsePrec, big.ToNearestEven)
	if err != nil {
		return DD{}, fmt.Errorf("xprec: parsing %q: %w", s, err)
	}
	return FromBigFloat(f), nil
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// the initialisation of constant tables.
func MustParse(s string) DD {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromBigFloat returns f rounded to the nearest DD.
func FromBigFloat(f *big.Float) DD {
	if f.IsInf() {
		if f.Signbit() {
			return Inf(-1)
		}
		return Inf(1)
	}
	hi, _ := f.Float64()
	if !finite(hi) {
		return DD{Hi: hi}
	}
	r := new(big.Float).SetPrec(parsePrec).Sub(f, big.NewFloat(hi))
	lo, _ := r.Float64()
	return DD{Hi: hi, Lo: lo}
}

// BigFloat returns d as an exact big.Float. It returns nil for NaN, which
// big.Float cannot represent.
func (d DD) BigFloat() *big.Float {
	if d.IsNaN() {
		return nil
	}
	f := new(big.Float).SetPrec(parsePrec).SetFloat64(d.Hi)
	if d.Lo != 0 {
		f.Add(f, big.NewFloat(d.Lo))
	}
	return f
}

// Float64 returns d rounded to float64.
func (d DD) Float64() float64 {
	return d.Hi + d.Lo
}

// Text converts d to a string according to the given format and precision,
// with the same meaning as big.Float.Text.
func (d DD) Text(format byte, prec int) string {
	switch {
	case d.IsNaN():
		return "NaN"
	case d.IsInf(1):
		return "+Inf"
	case d.IsInf(-1):
		return "-Inf"
	}
	return d.BigFloat().Text(format, prec)
}

// String formats d with 32 significant digits.
func (d DD) String() string {
	return d.Text('g', 32)
}

// IsNaN reports whether d is a "not-a-number" value.
func (d DD) IsNaN() bool {
	return math.IsNaN(d.Hi)
}

// IsInf reports whether d is an infinity, according to sign.
// If sign > 0, IsInf reports whether d is positive infinity.
// If sign < 0, IsInf reports whether d is negative infinity.
// If sign == 0, IsInf reports whether d is either infinity.
func (d DD) IsInf(sign int) bool {
	return math.IsInf(d.Hi, sign)
}

// IsZero reports whether d is ±0.
func (d DD) IsZero() bool {
	return d.Hi == 0
}

// Signbit reports whether d is negative or negative zero.
func (d DD) Signbit() bool {
	return math.Signbit(d.Hi)
}

// Sign returns -1, 0 or +1 depending on the sign of d. NaN yields 0.
func (d DD) Sign() int {
	switch {
	case d.Hi > 0:
		return 1
	case d.Hi < 0:
		return -1
	}
	return 0
}

// IsInt reports whether d is a finite integer.
func (d DD) IsInt() bool {
	return finite(d.Hi) && d.Floor().Equal(d)
}

// Cmp compares d and e and returns -1, 0 or +1. NaN operands compare as 0.
func (d DD) Cmp(e DD) int {
	switch {
	case d.Hi < e.Hi:
		return -1
	case d.Hi > e.Hi:
		return 1
	case d.Lo < e.Lo:
		return -1
	case d.Lo > e.Lo:
		return 1
	}
	return 0
}

// Equal reports whether d == e. As for float64, NaN is not equal to itself
// and +0 equals -0.
func (d DD) Equal(e DD) bool {
	return d.Hi == e.Hi && d.Lo == e.Lo
}

// Less reports whether d < e.
func (d DD) Less(e DD) bool {
	return d.Hi < e.Hi || (d.Hi == e.Hi && d.Lo < e.Lo)
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
