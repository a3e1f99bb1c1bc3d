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
package fixture

import (
	"maps"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/greenfixture/pkg/generators"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

const userGeneratorDescription = "User registered generator."

// Fixture is the built registry. It is not safe for concurrent use because every generator
// shares one random source.
type Fixture struct {
	random     random.Random
	resolver   *Resolver
	generators map[string]generators.Capable
	logger     zerolog.Logger
}

// NewFixture builds a registry from an explicit generator map. No defaults are added.
func NewFixture(r random.Random, gens map[string]generators.Capable) *Fixture {
	return &Fixture{
		random:     r,
		resolver:   NewResolver(r),
		generators: maps.Clone(gens),
		logger:     log.Logger,
	}
}

func (f *Fixture) Random() random.Random {
	return f.random
}

func (f *Fixture) Lookup(id string) (generators.Capable, bool) {
	g, ok := f.generators[id]
	return g, ok
}

// Identifiers returns the registered identifiers in sorted order.
func (f *Fixture) Identifiers() []string {
	return slices.Sorted(maps.Keys(f.generators))
}

type GeneratorInfo struct {
	Identifier   string `json:"identifier"`
	Capabilities string `json:"capabilities"`
	Description  string `json:"description"`
}

func (f *Fixture) Describe() []*GeneratorInfo {
	ids := f.Identifiers()
	res := make([]*GeneratorInfo, 0, len(ids))
	for _, id := range ids {
		desc, ok := builtinDescription(id)
		if !ok {
			desc = userGeneratorDescription
		}
		res = append(res, &GeneratorInfo{
			Identifier:   id,
			Capabilities: f.generators[id].Capabilities().String(),
			Description:  desc,
		})
	}
	return res
}

// lookup returns the generator for id when it carries every required capability.
func (f *Fixture) lookup(id string, required generators.Capability) (generators.Capable, error) {
	g, ok := f.generators[id]
	if !ok || !g.Capabilities().Has(required) {
		f.logger.Debug().
			Str("Identifier", id).
			Str("Required", required.String()).
			Bool("Registered", ok).
			Msg("generator lookup failed")
		return nil, missingGenerator(id)
	}
	return g, nil
}
