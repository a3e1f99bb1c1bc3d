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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/greenfixture/internal/mocks"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

func TestInt_GenerateRange(t *testing.T) {
	g, err := NewInt[int16](random.New(1), nil)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		v, err := g.GenerateRange(-3, 3, nil)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, int16(-3))
		require.LessOrEqual(t, v, int16(3))
	}

	v, err := g.GenerateRange(12, 12, nil)
	require.NoError(t, err)
	require.Equal(t, int16(12), v)

	_, err = g.GenerateRange(42, 12, nil)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestInt_GenerateSigned(t *testing.T) {
	r := mocks.NewRandomMock()
	r.On("Int64Range", int64(0), int64(math.MaxInt8)).Return(int64(100)).Once()
	r.On("Int64Range", int64(math.MinInt8), int64(0)).Return(int64(-100)).Once()

	g, err := NewInt[int8](r, nil)
	require.NoError(t, err)
	require.Equal(t, int8(100), g.GenerateSigned(Positive, nil))
	require.Equal(t, int8(-100), g.GenerateSigned(Negative, nil))
	r.AssertExpectations(t)
}

func TestInt_Limits(t *testing.T) {
	_, err := NewInt[int8](random.New(0), &Limits{MinValue: -1000, MaxValue: 10})
	require.ErrorIs(t, err, ErrIntLimitsOutOfRange)

	_, err = NewInt[int](random.New(0), &Limits{MinValue: 10, MaxValue: 1})
	require.ErrorIs(t, err, ErrInvalidRange)

	g, err := NewInt[int](random.New(0), &Limits{MinValue: 18, MaxValue: 99})
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := g.Generate()
		require.GreaterOrEqual(t, v, 18)
		require.LessOrEqual(t, v, 99)
	}
}

func TestPlatformWidthLimits(t *testing.T) {
	require.Equal(t, Limits{MinValue: math.MinInt, MaxValue: math.MaxInt}, signedLimits[int]())
	require.Equal(t, UintLimits{MaxValue: math.MaxUint}, unsignedLimits[uint]())
	require.Equal(t, Limits{MinValue: math.MinInt16, MaxValue: math.MaxInt16}, signedLimits[int16]())
}

func TestInt_GenerateWhere(t *testing.T) {
	r := mocks.NewRandomMock()
	r.On("Int64Range", int64(math.MinInt32), int64(math.MaxInt32)).Return(int64(1)).Twice()
	r.On("Int64Range", int64(math.MinInt32), int64(math.MaxInt32)).Return(int64(4)).Once()

	g, err := NewInt[int32](r, nil)
	require.NoError(t, err)
	v := g.GenerateWhere(func(v int32) bool { return v%2 == 0 })
	require.Equal(t, int32(4), v)
	r.AssertNumberOfCalls(t, "Int64Range", 3)
}

func TestInt_GenerateWhere_NilPredicateDrawsOnce(t *testing.T) {
	r := mocks.NewRandomMock()
	r.On("Int64Range", int64(math.MinInt64), int64(math.MaxInt64)).Return(int64(7))

	g, err := NewInt[int](r, nil)
	require.NoError(t, err)
	require.Equal(t, 7, g.GenerateWhere(nil))
	r.AssertNumberOfCalls(t, "Int64Range", 1)
}

func TestUint_GenerateSigned(t *testing.T) {
	g, err := NewUint[uint8](random.New(5), nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.Equal(t, uint8(0), g.GenerateSigned(Negative, nil))
	}

	_, err = g.GenerateRange(9, 3, nil)
	require.ErrorIs(t, err, ErrInvalidRange)

	v, err := g.GenerateRange(math.MaxUint8, math.MaxUint8, nil)
	require.NoError(t, err)
	require.Equal(t, uint8(math.MaxUint8), v)
}

func TestWide_Capabilities(t *testing.T) {
	r := random.New(0)
	for _, g := range []Capable{NewInt64(r), NewUint16(r), NewFloat32(r)} {
		require.Equal(t, CapPlain, g.Capabilities())
		_, ranged := g.(RangedGenerator[int64])
		require.False(t, ranged)
	}
}

func TestCapability_String(t *testing.T) {
	require.Equal(t, "plain|filtered|ranged", (CapPlain | CapFiltered | CapRanged).String())
	require.Equal(t, "none", Capability(0).String())
	require.True(t, (CapSized | CapRanged).Has(CapRanged))
	require.False(t, CapSized.Has(CapRanged|CapSized))
}
