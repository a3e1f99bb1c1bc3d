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

// String builds text from an underlying Char generator.
type String struct {
	r     random.Random
	chars Generator[Char]
	buf   []rune
}

func NewString(r random.Random, chars Generator[Char]) *String {
	return &String{
		r:     r,
		chars: chars,
		buf:   make([]rune, 0, DefaultStringMaxLength),
	}
}

func (s *String) Capabilities() Capability {
	return CapPlain | CapFiltered | CapSized
}

func (s *String) Generate() string {
	return s.GenerateSized(s.r.IntN(DefaultStringMinLength, DefaultStringMaxLength+1))
}

func (s *String) GenerateAny() any {
	return s.Generate()
}

func (s *String) GenerateWhere(p Predicate[string]) string {
	return Filter(s.Generate, p)
}

// GenerateSized returns a string of exactly size characters.
func (s *String) GenerateSized(size int) string {
	s.buf = s.buf[:0]
	for i := 0; i < size; i++ {
		s.buf = append(s.buf, rune(s.chars.Generate()))
	}
	return string(s.buf)
}
