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

package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSource_SameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int64(), b.Int64())
		require.Equal(t, a.Bool(), b.Bool())
		require.Equal(t, a.IntN(-5, 5), b.IntN(-5, 5))
	}
}

func TestSource_IntN(t *testing.T) {
	s := New(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.IntN(1, 11)
		require.GreaterOrEqual(t, v, 1)
		require.Less(t, v, 11)
		seen[v] = true
	}
	require.Len(t, seen, 10)

	require.Panics(t, func() { s.IntN(3, 3) })
}

func TestSource_Int64Range(t *testing.T) {
	s := New(7)
	tests := []struct {
		name     string
		from, to int64
	}{
		{name: "single point", from: 12, to: 12},
		{name: "negative", from: -100, to: -1},
		{name: "crossing zero", from: -10, to: 10},
		{name: "full width", from: math.MinInt64, to: math.MaxInt64},
		{name: "upper edge", from: math.MaxInt64 - 1, to: math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				v := s.Int64Range(tt.from, tt.to)
				require.GreaterOrEqual(t, v, tt.from)
				require.LessOrEqual(t, v, tt.to)
			}
		})
	}
	require.Panics(t, func() { s.Int64Range(2, 1) })
}

func TestSource_Uint64Range(t *testing.T) {
	s := New(7)
	for i := 0; i < 200; i++ {
		v := s.Uint64Range(math.MaxUint64-3, math.MaxUint64)
		require.GreaterOrEqual(t, v, uint64(math.MaxUint64-3))
	}
	require.Equal(t, uint64(5), s.Uint64Range(5, 5))
	_ = s.Uint64Range(0, math.MaxUint64)
}

func TestSource_Float64Range(t *testing.T) {
	s := New(3)
	for i := 0; i < 500; i++ {
		v := s.Float64Range(-math.MaxFloat64, math.MaxFloat64)
		require.False(t, math.IsInf(v, 0))
		v = s.Float64Range(0.5, 0.75)
		require.GreaterOrEqual(t, v, 0.5)
		require.Less(t, v, 0.75)
	}
	require.Panics(t, func() { s.Float64Range(1, 1) })
}

func TestReader_Read(t *testing.T) {
	a := NewReader(New(0))
	b := New(0)

	buf := make([]byte, 3)
	n, err := a.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	rest := make([]byte, 13)
	_, err = a.Read(rest)
	require.NoError(t, err)

	first := b.Uint64()
	second := b.Uint64()
	all := append(buf, rest...)
	for i := 0; i < 8; i++ {
		require.Equal(t, byte(first>>(8*i)), all[i])
		require.Equal(t, byte(second>>(8*i)), all[8+i])
	}
}

func TestSeedFromName(t *testing.T) {
	require.Equal(t, SeedFromName(t.Name()), SeedFromName("TestSeedFromName"))
	require.NotEqual(t, SeedFromName("a"), SeedFromName("b"))
}

func TestSaltedSeed(t *testing.T) {
	phrase := []byte("orders")
	require.Equal(t, SaltedSeed([]byte("salt"), phrase), SaltedSeed([]byte("salt"), phrase))
	require.NotEqual(t, SaltedSeed([]byte("salt"), phrase), SaltedSeed([]byte("pepper"), phrase))
	require.NotEqual(t, SaltedSeed(nil, phrase), SaltedSeed(nil, []byte("customers")))
}
