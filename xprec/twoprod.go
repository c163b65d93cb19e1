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

// twoProd returns p = fl(a*b) and the exact error e = a*b - p.
// Set by init() in dispatch_*.go files.
var twoProd = twoProdDekker

// kernelName names the twoProd implementation in use.
var kernelName = "dekker"

const (
	// splitter is 2^27 + 1, which cuts a float64 into two 26-bit halves.
	splitter = 134217729.0

	// splitThresh bounds |a| for which splitter*a cannot overflow.
	splitThresh = 0x1p996
)

func twoProdFMA(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return p, e
}

func twoProdDekker(a, b float64) (p, e float64) {
	p = a * b
	if !finite(p) {
		return p, 0
	}
	ah, al := split(a)
	bh, bl := split(b)
	e = ((ah*bh - p) + ah*bl + al*bh) + al*bl
	return p, e
}

// split returns hi + lo = a with hi and lo each holding at most 26
// significant bits.
func split(a float64) (hi, lo float64) {
	if a > splitThresh || a < -splitThresh {
		a *= 0x1p-28
		hi, lo = split(a)
		return hi * 0x1p28, lo * 0x1p28
	}
	// The explicit conversion keeps splitter*a from being fused into the
	// subtraction below.
	t := float64(splitter * a)
	hi = t - (t - a)
	lo = a - hi
	return hi, lo
}

// useFMA selects the twoProd kernel.
func useFMA(enabled bool) {
	if enabled {
		twoProd = twoProdFMA
		kernelName = "fma"
		return
	}
	twoProd = twoProdDekker
	kernelName = "dekker"
}

// Kernel returns the name of the exact-product kernel selected at init:
// "fma" or "dekker".
func Kernel() string {
	return kernelName
}
