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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoFMAEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("XPREC_NO_FMA", tt.value)
			assert.Equal(t, tt.want, NoFMAEnv())
		})
	}
}

func TestUseFMA(t *testing.T) {
	saved := Kernel()
	t.Cleanup(func() { useFMA(saved == "fma") })

	useFMA(false)
	assert.Equal(t, "dekker", Kernel())
	third := One.DivFloat64(3)
	prod := third.Mul(Pi)

	useFMA(true)
	assert.Equal(t, "fma", Kernel())
	assert.Equal(t, third, One.DivFloat64(3))
	assert.Equal(t, prod, third.Mul(Pi))
}

func TestKernel(t *testing.T) {
	assert.Contains(t, []string{"fma", "dekker"}, Kernel())
	if NoFMAEnv() {
		assert.Equal(t, "dekker", Kernel())
	}
}
