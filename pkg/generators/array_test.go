// Copyright 2025 Greenmask
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
package generators

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

func TestArray_Capabilities(t *testing.T) {
	r := random.New(0)
	ints, err := NewInt[int](r, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		elem     Capable
		build    func(Capable) (Capable, error)
		expected Capability
	}{
		{
			name:     "ranged and signed element",
			elem:     ints,
			build:    func(c Capable) (Capable, error) { return NewArray[int](c) },
			expected: CapSized | CapRanged | CapSigned,
		},
		{
			name:     "ranged element",
			elem:     NewChar(r),
			build:    func(c Capable) (Capable, error) { return NewArray[Char](c) },
			expected: CapSized | CapRanged,
		},
		{
			name:     "plain element",
			elem:     NewInt64(r),
			build:    func(c Capable) (Capable, error) { return NewArray[int64](c) },
			expected: CapSized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.build(tt.elem)
			require.NoError(t, err)
			require.Equal(t, tt.expected, a.Capabilities())
		})
	}
}

func TestArray_WrongElementType(t *testing.T) {
	_, err := NewArray[string](NewBoolean(random.New(0)))
	require.Error(t, err)
}

func TestArray_GenerateSized(t *testing.T) {
	r := random.New(9)
	ints, err := NewInt[int8](r, nil)
	require.NoError(t, err)
	a, err := NewArray[int8](ints)
	require.NoError(t, err)

	require.Len(t, a.GenerateSized(7), 7)
	require.Empty(t, a.GenerateSized(0))

	res, err := a.GenerateRangeSized(4, 1, 3, nil)
	require.NoError(t, err)
	require.Len(t, res, 4)
	for _, v := range res {
		require.GreaterOrEqual(t, v, int8(1))
		require.LessOrEqual(t, v, int8(3))
	}

	_, err = a.GenerateRangeSized(4, 3, 1, nil)
	require.ErrorIs(t, err, ErrInvalidRange)
	_, err = a.GenerateRangeSized(0, 3, 1, nil)
	require.ErrorIs(t, err, ErrInvalidRange)

	for _, v := range a.GenerateSignedSized(10, Negative, nil) {
		require.LessOrEqual(t, v, int8(0))
	}
}
