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
	"fmt"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

type CharGenerator struct {
	r        random.Random
	from, to Char
}

// NewChar returns a generator over the printable ASCII range.
func NewChar(r random.Random) *CharGenerator {
	return &CharGenerator{
		r:    r,
		from: DefaultCharMin,
		to:   DefaultCharMax,
	}
}

func (c *CharGenerator) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged
}

func (c *CharGenerator) Generate() Char {
	return c.draw(c.from, c.to)
}

func (c *CharGenerator) GenerateAny() any {
	return c.Generate()
}

func (c *CharGenerator) GenerateWhere(p Predicate[Char]) Char {
	return Filter(c.Generate, p)
}

func (c *CharGenerator) ValidateRange(from, to Char) error {
	if from > to {
		return fmt.Errorf("from %q is greater than to %q: %w", rune(from), rune(to), ErrInvalidRange)
	}
	return nil
}

func (c *CharGenerator) GenerateRange(from, to Char, p Predicate[Char]) (Char, error) {
	if err := c.ValidateRange(from, to); err != nil {
		return 0, err
	}
	return Filter(func() Char {
		return c.draw(from, to)
	}, p), nil
}

func (c *CharGenerator) draw(from, to Char) Char {
	return Char(c.r.Int64Range(int64(from), int64(to)))
}
