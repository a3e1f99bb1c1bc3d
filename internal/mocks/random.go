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

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

var (
	_ random.Random = (*RandomMock)(nil)
)

// RandomMock is a scripted random source for testing using testify/mock
type RandomMock struct {
	mock.Mock
}

func NewRandomMock() *RandomMock {
	return &RandomMock{}
}

func (m *RandomMock) Bool() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *RandomMock) IntN(from, until int) int {
	args := m.Called(from, until)
	return args.Int(0)
}

func (m *RandomMock) Int64Range(from, to int64) int64 {
	args := m.Called(from, to)
	return args.Get(0).(int64)
}

func (m *RandomMock) Uint64Range(from, to uint64) uint64 {
	args := m.Called(from, to)
	return args.Get(0).(uint64)
}

func (m *RandomMock) Int64() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *RandomMock) Uint64() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}

func (m *RandomMock) Float32() float32 {
	args := m.Called()
	return args.Get(0).(float32)
}

func (m *RandomMock) Float64() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *RandomMock) Float64Range(from, until float64) float64 {
	args := m.Called(from, until)
	return args.Get(0).(float64)
}
