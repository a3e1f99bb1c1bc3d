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
	"math/rand"
	"sort"
	"sync"

	"github.com/go-faker/faker/v4"
	"github.com/go-faker/faker/v4/pkg/options"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

type FakerFunc func(opts ...options.OptionFunc) string

type FakerDef struct {
	Description string
	Generator   FakerFunc
}

// FakerStrings lists the faker backed string generators. Each one is registered for the
// string type under its name as the qualifier.
var FakerStrings = map[string]*FakerDef{
	"name": {
		Generator:   faker.Name,
		Description: "Generates a random full name.",
	},
	"first_name": {
		Generator:   faker.FirstName,
		Description: "Generates a random first name.",
	},
	"last_name": {
		Generator:   faker.LastName,
		Description: "Generates a random last name.",
	},
	"email": {
		Generator:   faker.Email,
		Description: "Generates a random email address.",
	},
	"username": {
		Generator:   faker.Username,
		Description: "Generates a random username.",
	},
	"url": {
		Generator:   faker.URL,
		Description: "Generates a random URL.",
	},
	"domain": {
		Generator:   faker.DomainName,
		Description: "Generates a random domain name.",
	},
	"ipv4": {
		Generator:   faker.IPv4,
		Description: "Generates a random IPv4 address.",
	},
	"ipv6": {
		Generator:   faker.IPv6,
		Description: "Generates a random IPv6 address.",
	},
	"phone": {
		Generator:   faker.Phonenumber,
		Description: "Generates a random phone number.",
	},
	"word": {
		Generator:   faker.Word,
		Description: "Generates a random word.",
	},
	"sentence": {
		Generator:   faker.Sentence,
		Description: "Generates a random sentence.",
	},
}

// FakerNames returns the faker generator names in a stable order.
func FakerNames() []string {
	names := make([]string, 0, len(FakerStrings))
	for name := range FakerStrings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fakerMx guards the faker package level source. It is swapped to the calling generator's
// source for the duration of a single draw.
var fakerMx sync.Mutex

// fakerSource feeds faker from a registry source.
type fakerSource struct {
	r random.Random
}

var _ rand.Source = (*fakerSource)(nil)

func (s *fakerSource) Int63() int64 {
	return int64(s.r.Uint64() >> 1)
}

// Seed is a no-op: the underlying source is seeded by its owner.
func (s *fakerSource) Seed(int64) {}

type FakerString struct {
	fn     FakerFunc
	source *fakerSource
}

func NewFakerString(r random.Random, fn FakerFunc) *FakerString {
	return &FakerString{
		fn:     fn,
		source: &fakerSource{r: r},
	}
}

func (fs *FakerString) Capabilities() Capability {
	return CapPlain | CapFiltered
}

func (fs *FakerString) Generate() string {
	fakerMx.Lock()
	defer fakerMx.Unlock()
	faker.SetRandomSource(fs.source)
	return fs.fn()
}

func (fs *FakerString) GenerateAny() any {
	return fs.Generate()
}

func (fs *FakerString) GenerateWhere(p Predicate[string]) string {
	return Filter(fs.Generate, p)
}
