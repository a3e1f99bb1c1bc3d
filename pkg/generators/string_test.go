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

func TestChar_Generate(t *testing.T) {
	g := NewChar(random.New(0))
	for i := 0; i < 200; i++ {
		c := g.Generate()
		require.GreaterOrEqual(t, c, DefaultCharMin)
		require.LessOrEqual(t, c, DefaultCharMax)
	}

	c, err := g.GenerateRange('a', 'a', nil)
	require.NoError(t, err)
	require.Equal(t, Char('a'), c)

	_, err = g.GenerateRange('z', 'a', nil)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestString_Generate(t *testing.T) {
	r := mocks.NewRandomMock()
	r.On("IntN", DefaultStringMinLength, DefaultStringMaxLength+1).Return(3)
	r.On("Int64Range", int64(DefaultCharMin), int64(DefaultCharMax)).Return(int64('x'))

	s := NewString(r, NewChar(r))
	require.Equal(t, "xxx", s.Generate())
	require.Equal(t, "xxxxx", s.GenerateSized(5))
	require.Equal(t, "", s.GenerateSized(0))
}

func TestString_GenerateLengthBounds(t *testing.T) {
	r := random.New(3)
	s := NewString(r, NewChar(r))
	for i := 0; i < 100; i++ {
		v := s.Generate()
		require.GreaterOrEqual(t, len(v), DefaultStringMinLength)
		require.LessOrEqual(t, len(v), DefaultStringMaxLength)
	}
}
