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

type Boolean struct {
	r random.Random
}

func NewBoolean(r random.Random) *Boolean {
	return &Boolean{r: r}
}

func (b *Boolean) Capabilities() Capability {
	return CapPlain | CapFiltered
}

func (b *Boolean) Generate() bool {
	return b.r.Bool()
}

func (b *Boolean) GenerateAny() any {
	return b.Generate()
}

func (b *Boolean) GenerateWhere(p Predicate[bool]) bool {
	return Filter(b.Generate, p)
}
