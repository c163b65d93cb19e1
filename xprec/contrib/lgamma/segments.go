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
	"sort"

	"github.com/ajroetker/go-xprec/xprec"
)

// segment is one interval of (0, 13.5) with the table that covers it. The
// lower bound is the previous segment's upper bound; lo is kept for
// reporting.
type segment struct {
	lo, hi      float64
	hiInclusive bool

	// set is nil where lgamma is exactly zero (x = 1 and x = 2).
	set *coefficientSet

	// shift is 1 when set approximates lgamma(x+1) instead of lgamma(x);
	// the result is then corrected by -log(x).
	shift float64
}

// segments tiles (0, 13.5) in increasing order. Below 1 the tables for
// lgamma(x+1) are reused so Gamma is never approximated directly where it is
// worst conditioned. Each table's argument z stays inside the window its fit
// was certified on.
var segments = []segment{
	{lo: 0, hi: 0.125, hiInclusive: true, set: near1, shift: 1},
	{lo: 0.125, hi: 0.375, hiInclusive: true, set: near1r25, shift: 1},
	{lo: 0.375, hi: 0.625, hiInclusive: true, set: minimum, shift: 1},
	{lo: 0.625, hi: 0.875, set: near1r75, shift: 1},
	{lo: 0.875, hi: 1, set: below1},
	{lo: 1, hi: 1, hiInclusive: true},
	{lo: 1, hi: 1.125, hiInclusive: true, set: near1},
	{lo: 1.125, hi: 1.375, hiInclusive: true, set: near1r25},
	{lo: 1.375, hi: 1.625, set: minimum},
	{lo: 1.625, hi: 1.875, set: near1r75},
	{lo: 1.875, hi: 2, set: near2},
	{lo: 2, hi: 2, hiInclusive: true},
	{lo: 2, hi: 2.375, set: near2},
	{lo: 2.375, hi: 2.75, set: near2r5},
	{lo: 2.75, hi: 3.5, set: near3},
	{lo: 3.5, hi: 4.5, set: near4},
	{lo: 4.5, hi: 5.5, set: near5},
	{lo: 5.5, hi: 6.5, set: near6},
	{lo: 6.5, hi: 7.5, set: near7},
	{lo: 7.5, hi: 8.5, set: near8},
	{lo: 8.5, hi: 9.5, set: near9},
	{lo: 9.5, hi: 10.5, set: near10},
	{lo: 10.5, hi: 11.5, set: near11},
	{lo: 11.5, hi: 12.5, set: near12},
	{lo: 12.5, hi: 13.5, set: near13},
}

// rationalCeiling is the end of the tiled range; the Stirling series takes
// over from here.
var rationalCeiling = xprec.FromFloat64(segments[len(segments)-1].hi)

// covers reports whether x lies at or below the segment's upper bound.
func (s *segment) covers(x xprec.DD) bool {
	c := x.Cmp(xprec.FromFloat64(s.hi))
	return c < 0 || (c == 0 && s.hiInclusive)
}

// findSegment returns the segment containing x, for 0 < x < 13.5.
func findSegment(x xprec.DD) *segment {
	i := sort.Search(len(segments), func(i int) bool {
		return segments[i].covers(x)
	})
	if i == len(segments) {
		return nil
	}
	return &segments[i]
}

// eval returns lgamma(x) for x in the segment.
func (s *segment) eval(x xprec.DD) xprec.DD {
	if s.set == nil {
		return xprec.Zero
	}
	c := s.set

	// center.high - shift is exact, so z loses nothing before center.low.
	z := x.AddFloat64(s.shift - c.center.high.Hi).Sub(c.center.low)

	n, d := c.r.eval(z)
	var p xprec.DD
	if c.quadratic {
		p = n.Div(d).Mul(z).Mul(z)
	} else {
		p = z.Mul(n).Div(d)
	}
	p = p.Add(c.value.low)
	p = p.Add(c.value.high)

	if s.shift != 0 {
		p = p.Sub(xprec.Log(x))
	}
	return p
}

// SegmentInfo describes one interval of the rational-approximation range.
type SegmentInfo struct {
	// Lo and Hi bound the interval. Lo is exclusive unless it equals the
	// previous segment's exclusive Hi.
	Lo, Hi float64

	// HiInclusive reports whether Hi belongs to this segment.
	HiInclusive bool

	// Table names the approximation used, or "exact" where lgamma is 0.
	Table string

	// Shifted reports whether the table approximates lgamma(x+1) and the
	// result is corrected by -log(x).
	Shifted bool
}

// Segments returns the tiling of (0, 13.5) used by LogGammaAbs, in
// increasing order.
func Segments() []SegmentInfo {
	out := make([]SegmentInfo, len(segments))
	for i, s := range segments {
		info := SegmentInfo{
			Lo:          s.lo,
			Hi:          s.hi,
			HiInclusive: s.hiInclusive,
			Table:       "exact",
			Shifted:     s.shift != 0,
		}
		if s.set != nil {
			info.Table = s.set.name
		}
		out[i] = info
	}
	return out
}
