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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-xprec/xprec"
)

func TestEvalPoly(t *testing.T) {
	two := xprec.FromFloat64(2)
	c := []xprec.DD{xprec.FromFloat64(1), xprec.FromFloat64(2), xprec.FromFloat64(3)}

	assert.Equal(t, xprec.FromFloat64(17), evalPoly(two, c))
	assert.Equal(t, xprec.FromFloat64(25), evalMonicPoly(two, c))
	assert.Equal(t, xprec.Zero, evalPoly(two, nil))
	assert.Equal(t, xprec.One, evalMonicPoly(two, nil))
	assert.Equal(t, xprec.FromFloat64(5), evalMonicPoly(two, c[2:]))
}

func TestEvalPolyPrecision(t *testing.T) {
	// (1 + x)^2 with x = 2^-30 needs both limbs.
	x := xprec.FromFloat64(0x1p-30)
	c := []xprec.DD{xprec.One, xprec.FromFloat64(2), xprec.One}
	got := evalPoly(x, c)
	assert.Equal(t, 1+0x1p-29, got.Hi)
	assert.Equal(t, 0x1p-60, got.Lo)
}
