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

// Package random provides the uniform random source consumed by every generator.
package random

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Random is a source of uniformly distributed values. Implementations are not safe for
// concurrent use.
type Random interface {
	// Bool returns a fair coin flip.
	Bool() bool
	// IntN returns a value in the half-open interval [from, until). It panics if from >= until.
	IntN(from, until int) int
	// Int64Range returns a value in the closed interval [from, to]. It panics if from > to.
	Int64Range(from, to int64) int64
	// Uint64Range returns a value in the closed interval [from, to]. It panics if from > to.
	Uint64Range(from, to uint64) uint64
	Int64() int64
	Uint64() uint64
	// Float32 returns a value in [0.0, 1.0).
	Float32() float32
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Float64Range returns a value in [from, until). It panics if from >= until.
	Float64Range(from, until float64) float64
}

var _ Random = (*Source)(nil)

type Source struct {
	r    *rand.Rand
	seed int64
}

// New returns a PCG backed source. Two sources with the same seed produce identical streams.
func New(seed int64) *Source {
	return &Source{
		r:    rand.New(rand.NewPCG(uint64(seed), 0)),
		seed: seed,
	}
}

func (s *Source) Seed() int64 {
	return s.seed
}

func (s *Source) Bool() bool {
	return s.r.IntN(2) == 1
}

func (s *Source) IntN(from, until int) int {
	if from >= until {
		panic(fmt.Sprintf("invalid half-open interval [%d, %d)", from, until))
	}
	return int(s.Int64Range(int64(from), int64(until)-1))
}

func (s *Source) Int64Range(from, to int64) int64 {
	if from > to {
		panic(fmt.Sprintf("invalid interval [%d, %d]", from, to))
	}
	span := uint64(to) - uint64(from)
	if span == math.MaxUint64 {
		return int64(s.r.Uint64())
	}
	return int64(uint64(from) + s.r.Uint64N(span+1))
}

func (s *Source) Uint64Range(from, to uint64) uint64 {
	if from > to {
		panic(fmt.Sprintf("invalid interval [%d, %d]", from, to))
	}
	span := to - from
	if span == math.MaxUint64 {
		return s.r.Uint64()
	}
	return from + s.r.Uint64N(span+1)
}

func (s *Source) Int64() int64 {
	return int64(s.r.Uint64())
}

func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

func (s *Source) Float32() float32 {
	return s.r.Float32()
}

func (s *Source) Float64() float64 {
	return s.r.Float64()
}

func (s *Source) Float64Range(from, until float64) float64 {
	if !(from < until) {
		panic(fmt.Sprintf("invalid half-open interval [%g, %g)", from, until))
	}
	x := s.r.Float64()
	// Interpolating keeps [-MaxFloat64, MaxFloat64) finite.
	res := from*(1-x) + until*x
	if res >= until {
		res = math.Nextafter(until, from)
	}
	if res < from {
		res = from
	}
	return res
}
