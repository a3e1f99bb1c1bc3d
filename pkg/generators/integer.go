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
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

var ErrIntLimitsOutOfRange = errors.New("integer limits out of range")

type Limits struct {
	MinValue int64
	MaxValue int64
}

type UintLimits struct {
	MinValue uint64
	MaxValue uint64
}

// Int generates signed integers of width T within its limits. Without explicit limits the
// whole domain of T is used.
type Int[T constraints.Signed] struct {
	r      random.Random
	limits Limits
}

func NewInt[T constraints.Signed](r random.Random, limits *Limits) (*Int[T], error) {
	typeLimits := signedLimits[T]()
	if limits == nil {
		limits = &typeLimits
	}
	if limits.MinValue < typeLimits.MinValue || limits.MaxValue > typeLimits.MaxValue {
		return nil, ErrIntLimitsOutOfRange
	}
	if limits.MinValue > limits.MaxValue {
		return nil, fmt.Errorf("limits [%d, %d]: %w", limits.MinValue, limits.MaxValue, ErrInvalidRange)
	}
	return &Int[T]{
		r:      r,
		limits: *limits,
	}, nil
}

func signedLimits[T constraints.Signed]() Limits {
	switch any(T(0)).(type) {
	case int8:
		return Limits{MinValue: math.MinInt8, MaxValue: math.MaxInt8}
	case int16:
		return Limits{MinValue: math.MinInt16, MaxValue: math.MaxInt16}
	case int32:
		return Limits{MinValue: math.MinInt32, MaxValue: math.MaxInt32}
	case int:
		return Limits{MinValue: math.MinInt, MaxValue: math.MaxInt}
	}
	return Limits{MinValue: math.MinInt64, MaxValue: math.MaxInt64}
}

func (i *Int[T]) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged | CapSigned
}

func (i *Int[T]) Generate() T {
	return T(i.r.Int64Range(i.limits.MinValue, i.limits.MaxValue))
}

func (i *Int[T]) GenerateAny() any {
	return i.Generate()
}

func (i *Int[T]) GenerateWhere(p Predicate[T]) T {
	return Filter(i.Generate, p)
}

func (i *Int[T]) ValidateRange(from, to T) error {
	if from > to {
		return fmt.Errorf("from %d is greater than to %d: %w", from, to, ErrInvalidRange)
	}
	return nil
}

func (i *Int[T]) GenerateRange(from, to T, p Predicate[T]) (T, error) {
	if err := i.ValidateRange(from, to); err != nil {
		return 0, err
	}
	return Filter(func() T {
		return T(i.r.Int64Range(int64(from), int64(to)))
	}, p), nil
}

func (i *Int[T]) GenerateSigned(sign Sign, p Predicate[T]) T {
	from, to := i.limits.MinValue, int64(0)
	if sign == Positive {
		from, to = 0, i.limits.MaxValue
	}
	return Filter(func() T {
		return T(i.r.Int64Range(from, to))
	}, p)
}

// Uint generates unsigned integers of width T. Negative sign always yields zero.
type Uint[T constraints.Unsigned] struct {
	r      random.Random
	limits UintLimits
}

func NewUint[T constraints.Unsigned](r random.Random, limits *UintLimits) (*Uint[T], error) {
	typeLimits := unsignedLimits[T]()
	if limits == nil {
		limits = &typeLimits
	}
	if limits.MaxValue > typeLimits.MaxValue {
		return nil, ErrIntLimitsOutOfRange
	}
	if limits.MinValue > limits.MaxValue {
		return nil, fmt.Errorf("limits [%d, %d]: %w", limits.MinValue, limits.MaxValue, ErrInvalidRange)
	}
	return &Uint[T]{
		r:      r,
		limits: *limits,
	}, nil
}

func unsignedLimits[T constraints.Unsigned]() UintLimits {
	switch any(T(0)).(type) {
	case uint8:
		return UintLimits{MaxValue: math.MaxUint8}
	case uint16:
		return UintLimits{MaxValue: math.MaxUint16}
	case uint32:
		return UintLimits{MaxValue: math.MaxUint32}
	case uint:
		return UintLimits{MaxValue: math.MaxUint}
	}
	return UintLimits{MaxValue: math.MaxUint64}
}

func (u *Uint[T]) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged | CapSigned
}

func (u *Uint[T]) Generate() T {
	return T(u.r.Uint64Range(u.limits.MinValue, u.limits.MaxValue))
}

func (u *Uint[T]) GenerateAny() any {
	return u.Generate()
}

func (u *Uint[T]) GenerateWhere(p Predicate[T]) T {
	return Filter(u.Generate, p)
}

func (u *Uint[T]) ValidateRange(from, to T) error {
	if from > to {
		return fmt.Errorf("from %d is greater than to %d: %w", from, to, ErrInvalidRange)
	}
	return nil
}

func (u *Uint[T]) GenerateRange(from, to T, p Predicate[T]) (T, error) {
	if err := u.ValidateRange(from, to); err != nil {
		return 0, err
	}
	return Filter(func() T {
		return T(u.r.Uint64Range(uint64(from), uint64(to)))
	}, p), nil
}

func (u *Uint[T]) GenerateSigned(sign Sign, p Predicate[T]) T {
	to := uint64(0)
	if sign == Positive {
		to = u.limits.MaxValue
	}
	return Filter(func() T {
		return T(u.r.Uint64Range(0, to))
	}, p)
}

// Wide generates values from the full width of the source without range, sign or filter
// support. It backs int64, uint16 and float32.
type Wide[T any] struct {
	next func() T
}

func NewInt64(r random.Random) *Wide[int64] {
	return &Wide[int64]{next: r.Int64}
}

func NewUint16(r random.Random) *Wide[uint16] {
	return &Wide[uint16]{next: func() uint16 {
		return uint16(r.Uint64())
	}}
}

func NewFloat32(r random.Random) *Wide[float32] {
	return &Wide[float32]{next: r.Float32}
}

func (w *Wide[T]) Capabilities() Capability {
	return CapPlain
}

func (w *Wide[T]) Generate() T {
	return w.next()
}

func (w *Wide[T]) GenerateAny() any {
	return w.next()
}
