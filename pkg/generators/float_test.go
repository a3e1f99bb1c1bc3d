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

	"github.com/greenmaskio/greenfixture/internal/mocks"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

func TestFloat64_GenerateRange_BoundarySnapping(t *testing.T) {
	tests := []struct {
		name     string
		sample   float64
		coin     bool
		expected float64
	}{
		{name: "far from upper bound", sample: 3.25, expected: 3.25},
		{name: "close to upper bound snaps to from", sample: 9.5, coin: true, expected: 0},
		{name: "close to upper bound snaps to to", sample: 9.5, coin: false, expected: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mocks.NewRandomMock()
			r.On("Float64Range", 0.0, 10.0).Return(tt.sample)
			r.On("Bool").Return(tt.coin)

			g := NewFloat64(r)
			v, err := g.GenerateRange(0, 10, nil)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestFloat64_GenerateRange_SinglePoint(t *testing.T) {
	r := mocks.NewRandomMock()
	g := NewFloat64(r)
	v, err := g.GenerateRange(2.5, 2.5, nil)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	r.AssertNotCalled(t, "Float64Range", 2.5, 2.5)
}

func TestFloat64_GenerateRange_Invalid(t *testing.T) {
	_, err := NewFloat64(random.New(0)).GenerateRange(1, 0, nil)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestFloat64_GenerateSigned(t *testing.T) {
	g := NewFloat64(random.New(11))
	for i := 0; i < 100; i++ {
		require.GreaterOrEqual(t, g.GenerateSigned(Positive, nil), 0.0)
		require.LessOrEqual(t, g.GenerateSigned(Negative, nil), 0.0)
	}
}
