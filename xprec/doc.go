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

// Package xprec provides DD, a double-double floating-point type with a
// 106-bit significand, and the handful of elementary functions the contrib
// packages build on.
//
// A DD holds the unevaluated sum Hi + Lo of two float64 values with
// |Lo| <= ulp(Hi)/2, which gives roughly 32 significant decimal digits while
// keeping the float64 exponent range. Values are immutable; every operation
// returns a new DD.
//
// # Arithmetic
//
//   - Add, Sub, Mul, Div on two DD values
//   - AddFloat64, MulFloat64, DivFloat64 with a float64 operand
//   - Neg, Abs, Sqr, Ldexp, Floor
//
// # Elementary functions
//
//   - Exp(x) - e^x
//   - Log(x) - ln(x)
//   - SinPi(x) - sin(pi*x), with exact reduction of the argument modulo 2
//
// # Special values
//
// NaN and ±Inf are carried in Hi with a zero Lo. Any operation whose leading
// component overflows or becomes NaN returns that leading component alone,
// so callers can test results with IsNaN and IsInf exactly as for float64.
//
// # CPU dispatch
//
// The exact product a*b = p + e underlying Mul is computed with a fused
// multiply-add when the CPU has one and with Dekker's splitting otherwise.
// Both kernels are exact, so results do not depend on the selection. Set
// XPREC_NO_FMA=1 to force the splitting kernel; Kernel reports the choice.
package xprec
