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

// Package generators contains the value generators a fixture registry is built from.
//
// Every generator reports the capabilities it supports through Capabilities. The registry
// matches on that tag first and on the typed contract second, so a generator that declares a
// capability it does not implement is treated as if it was never registered.
package generators

import (
	"errors"
	"strings"
)

var ErrInvalidRange = errors.New("invalid range")

type Capability uint8

const (
	CapPlain Capability = 1 << iota
	CapFiltered
	CapRanged
	CapSigned
	CapSized
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapPlain, "plain"},
	{CapFiltered, "filtered"},
	{CapRanged, "ranged"},
	{CapSigned, "signed"},
	{CapSized, "sized"},
}

// Has reports whether every capability in required is present.
func (c Capability) Has(required Capability) bool {
	return c&required == required
}

func (c Capability) String() string {
	var names []string
	for _, cn := range capabilityNames {
		if c.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Capable is implemented by every generator stored in a registry.
type Capable interface {
	Capabilities() Capability
}

// Predicate accepts or rejects a generated value. A nil predicate accepts everything without
// entering the retry loop.
type Predicate[T any] func(T) bool

type Sign int

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// Char is a single printable character. It is a distinct type so it does not collide with
// int32 in the registry.
type Char rune

// Number is the abstract numeric supertype. Requesting it resolves to a randomly chosen
// concrete numeric type on every call.
type Number interface{}

// Unit is the single-valued placeholder type.
type Unit struct{}

type Generator[T any] interface {
	Generate() T
}

// AnyGenerator is the untyped plain path used for interface typed requests.
type AnyGenerator interface {
	GenerateAny() any
}

type FilteredGenerator[T any] interface {
	GenerateWhere(p Predicate[T]) T
}

// RangedGenerator generates within the closed interval [from, to].
type RangedGenerator[T any] interface {
	GenerateRange(from, to T, p Predicate[T]) (T, error)
}

// RangeValidator checks bounds without drawing. Composite generators call it once so empty
// results still report an invalid range.
type RangeValidator[T any] interface {
	ValidateRange(from, to T) error
}

// SignedGenerator generates from [0, max] for Positive and [min, 0] for Negative.
type SignedGenerator[T any] interface {
	GenerateSigned(sign Sign, p Predicate[T]) T
}

// SizedGenerator produces a composite value with exactly size elements.
type SizedGenerator[T any] interface {
	GenerateSized(size int) T
}

type RangedSizedGenerator[E any] interface {
	GenerateRangeSized(size int, from, to E, p Predicate[E]) ([]E, error)
}

type SignedSizedGenerator[E any] interface {
	GenerateSignedSized(size int, sign Sign, p Predicate[E]) []E
}

// Filter calls generate until p accepts the value. There is no retry limit.
func Filter[T any](generate func() T, p Predicate[T]) T {
	if p == nil {
		return generate()
	}
	for {
		v := generate()
		if p(v) {
			return v
		}
	}
}
