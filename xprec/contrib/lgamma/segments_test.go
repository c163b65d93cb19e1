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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-xprec/xprec"
)

func TestSegmentsTiling(t *testing.T) {
	segs := Segments()
	require.NotEmpty(t, segs)
	assert.Equal(t, 0.0, segs[0].Lo)
	assert.Equal(t, 13.5, segs[len(segs)-1].Hi)

	for i := 1; i < len(segs); i++ {
		prev, cur := segs[i-1], segs[i]
		assert.Equalf(t, prev.Hi, cur.Lo, "gap between segment %d and %d", i-1, i)
		assert.LessOrEqualf(t, cur.Lo, cur.Hi, "segment %d is inverted", i)
		if cur.Lo == cur.Hi {
			assert.Equal(t, "exact", cur.Table)
			assert.True(t, cur.HiInclusive)
			assert.False(t, prev.HiInclusive)
		}
	}
}

func TestFindSegment(t *testing.T) {
	tests := []struct {
		x       float64
		table   string
		shifted bool
	}{
		{1e-300, "near1", true},
		{0.1, "near1", true},
		{0.125, "near1", true},
		{0.2, "near1.25", true},
		{0.5, "minimum", true},
		{0.625, "minimum", true},
		{0.7, "near1.75", true},
		{0.875, "below1", false},
		{0.99, "below1", false},
		{1, "exact", false},
		{1.1, "near1", false},
		{1.375, "near1.25", false},
		{1.5, "minimum", false},
		{1.625, "near1.75", false},
		{1.9, "near2", false},
		{2, "exact", false},
		{2.2, "near2", false},
		{2.375, "near2.5", false},
		{2.75, "near3", false},
		{3.49, "near3", false},
		{3.5, "near4", false},
		{9, "near9", false},
		{13.49, "near13", false},
	}

	for _, tt := range tests {
		s := findSegment(xprec.FromFloat64(tt.x))
		require.NotNilf(t, s, "no segment for %v", tt.x)
		name := "exact"
		if s.set != nil {
			name = s.set.name
		}
		assert.Equalf(t, tt.table, name, "table for %v", tt.x)
		assert.Equalf(t, tt.shifted, s.shift != 0, "shift for %v", tt.x)
	}

	assert.Nil(t, findSegment(xprec.FromFloat64(13.5)))
	assert.Equal(t, "near1", findSegment(xprec.New(1, 1e-20)).set.name)
	assert.Equal(t, "below1", findSegment(xprec.New(1, -1e-20)).set.name)
}

// TestSegmentContinuity evaluates both sides of every internal boundary a
// hair apart; the two tables must agree to DD precision.
func TestSegmentContinuity(t *testing.T) {
	for _, s := range Segments()[1:] {
		b := s.Lo
		below, _ := LogGammaAbs(xprec.New(b, -1e-31))
		above, _ := LogGammaAbs(xprec.New(b, 1e-31))
		at, _ := LogGammaAbs(xprec.FromFloat64(b))

		scale := math.Max(1, math.Abs(at.Hi))
		assert.LessOrEqualf(t, math.Abs(above.Sub(below).Float64()), tolerance*scale,
			"jump at %v: %v vs %v", b, below, above)
		assert.LessOrEqualf(t, math.Abs(at.Sub(below).Float64()), tolerance*scale,
			"jump at %v: %v vs %v", b, below, at)
	}
}

// TestAnchors checks that each table reproduces its anchor value at its
// center, where z = 0.
func TestAnchors(t *testing.T) {
	for _, s := range segments {
		if s.set == nil || s.set.quadratic || s.shift != 0 {
			continue
		}
		c := s.set
		got := s.eval(c.center.high.Add(c.center.low))
		want := c.value.high.Add(c.value.low)
		assert.LessOrEqualf(t, math.Abs(got.Sub(want).Float64()), 1e-30, "table %s", c.name)
	}
}
