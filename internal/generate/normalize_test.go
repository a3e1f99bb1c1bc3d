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

package generate

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/greenfixture/pkg/generators"
)

func TestNormalize(t *testing.T) {
	id := uuid.MustParse("9b2c4f5e-3a7d-4c1e-8f0a-6d5b4c3a2e1f")
	value := 7
	var nilPtr *int
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "char", input: generators.Char('z'), expected: "z"},
		{name: "char array", input: []generators.Char{'o', 'k'}, expected: "ok"},
		{name: "bytes", input: []uint8{1, 2}, expected: []int{1, 2}},
		{name: "unit", input: generators.Unit{}, expected: map[string]any{}},
		{name: "uuid", input: id, expected: id.String()},
		{name: "decimal", input: decimal.RequireFromString("12.50"), expected: "12.5"},
		{name: "duration", input: 90 * time.Second, expected: "1m30s"},
		{name: "time", input: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC), expected: "2024-02-03T04:05:06Z"},
		{name: "ip", input: net.IPv4(10, 1, 2, 3), expected: "10.1.2.3"},
		{name: "mac", input: net.HardwareAddr{0x02, 0, 0x5e, 0x10, 0, 1}, expected: "02:00:5e:10:00:01"},
		{name: "pointer", input: &value, expected: 7},
		{name: "nil pointer", input: nilPtr, expected: nil},
		{name: "passthrough", input: int16(-3), expected: int16(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, normalize(tt.input))
		})
	}
}

func TestMatcher(t *testing.T) {
	p, err := CompilePredicate(`value startsWith "a"`)
	require.NoError(t, err)
	m := p.Matcher()
	require.True(t, m.Match(generators.Char('a')))
	require.False(t, m.Match("ba"))
	require.NoError(t, m.Err())

	var nilMatcher *Matcher
	require.NoError(t, nilMatcher.Err())
	require.Nil(t, predicateFor[int](nil))
}
