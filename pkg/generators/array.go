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
)

var errElementNotPlain = errors.New("element generator does not support plain generation")

// Array composes a typed slice out of an element generator. Range and sign support is
// inherited from the element generator.
type Array[E any] struct {
	elem   Generator[E]
	ranged RangedGenerator[E]
	signed SignedGenerator[E]
	caps   Capability
}

func NewArray[E any](elem Capable) (*Array[E], error) {
	g, ok := elem.(Generator[E])
	if !ok || !elem.Capabilities().Has(CapPlain) {
		return nil, fmt.Errorf("build array of %T: %w", elem, errElementNotPlain)
	}
	a := &Array[E]{
		elem: g,
		caps: CapSized,
	}
	if rg, ok := elem.(RangedGenerator[E]); ok && elem.Capabilities().Has(CapRanged) {
		a.ranged = rg
		a.caps |= CapRanged
	}
	if sg, ok := elem.(SignedGenerator[E]); ok && elem.Capabilities().Has(CapSigned) {
		a.signed = sg
		a.caps |= CapSigned
	}
	return a, nil
}

func (a *Array[E]) Capabilities() Capability {
	return a.caps
}

func (a *Array[E]) GenerateSized(size int) []E {
	res := make([]E, 0, size)
	for i := 0; i < size; i++ {
		res = append(res, a.elem.Generate())
	}
	return res
}

func (a *Array[E]) GenerateRangeSized(size int, from, to E, p Predicate[E]) ([]E, error) {
	if v, ok := a.ranged.(RangeValidator[E]); ok {
		if err := v.ValidateRange(from, to); err != nil {
			return nil, err
		}
	}
	res := make([]E, 0, size)
	for i := 0; i < size; i++ {
		v, err := a.ranged.GenerateRange(from, to, p)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func (a *Array[E]) GenerateSignedSized(size int, sign Sign, p Predicate[E]) []E {
	res := make([]E, 0, size)
	for i := 0; i < size; i++ {
		res = append(res, a.signed.GenerateSigned(sign, p))
	}
	return res
}
