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

import "github.com/greenmaskio/greenfixture/pkg/random"

// AnyValue picks one of its delegates uniformly and returns its value.
type AnyValue struct {
	r         random.Random
	delegates []AnyGenerator
}

func NewAnyValue(r random.Random, delegates ...AnyGenerator) *AnyValue {
	return &AnyValue{
		r:         r,
		delegates: delegates,
	}
}

func (a *AnyValue) Capabilities() Capability {
	return CapPlain
}

func (a *AnyValue) Generate() any {
	return a.delegates[a.r.IntN(0, len(a.delegates))].GenerateAny()
}

func (a *AnyValue) GenerateAny() any {
	return a.Generate()
}

type UnitValue struct{}

func (UnitValue) Capabilities() Capability {
	return CapPlain
}

func (UnitValue) Generate() Unit {
	return Unit{}
}

func (UnitValue) GenerateAny() any {
	return Unit{}
}
