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
	"reflect"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/greenfixture/pkg/generators"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

// Factory builds a generator that only needs the random source.
type Factory func(r random.Random) generators.Capable

// DependentFactory builds a generator on top of generators that are already built.
type DependentFactory func(r random.Random, deps *Dependencies) generators.Capable

// Configuration collects user registrations until Build is called.
type Configuration struct {
	seed      int64
	logger    zerolog.Logger
	factories map[string]Factory
	dependent map[string]DependentFactory
}

func NewConfiguration() *Configuration {
	return &Configuration{
		logger:    log.Logger.Level(zerolog.InfoLevel),
		factories: make(map[string]Factory),
		dependent: make(map[string]DependentFactory),
	}
}

func (c *Configuration) WithSeed(seed int64) *Configuration {
	c.seed = seed
	return c
}

func (c *Configuration) WithLogger(logger zerolog.Logger) *Configuration {
	c.logger = logger
	return c
}

func (c *Configuration) Seed() int64 {
	return c.seed
}

// AddGenerator registers an independent factory for T. The last registration for an
// identifier wins. Registrations under a built-in identifier are inert.
func AddGenerator[T any](c *Configuration, factory Factory, q ...Qualifier) *Configuration {
	id := qualify(firstQualifier(q), Identify(reflect.TypeFor[T]()))
	delete(c.dependent, id)
	c.factories[id] = factory
	return c
}

// AddDependentGenerator registers a factory that receives the built-in and the user independent
// generators.
func AddDependentGenerator[T any](c *Configuration, factory DependentFactory, q ...Qualifier) *Configuration {
	id := qualify(firstQualifier(q), Identify(reflect.TypeFor[T]()))
	delete(c.factories, id)
	c.dependent[id] = factory
	return c
}

// Dependencies is the read only view handed to dependent factories.
type Dependencies struct {
	generators map[string]generators.Capable
}

func (d *Dependencies) Get(id string) (generators.Capable, bool) {
	g, ok := d.generators[id]
	return g, ok
}

// Dependency looks up the generator registered for T.
func Dependency[T any](d *Dependencies, q ...Qualifier) (generators.Capable, error) {
	id := qualify(firstQualifier(q), Identify(reflect.TypeFor[T]()))
	g, ok := d.Get(id)
	if !ok {
		return nil, missingGenerator(id)
	}
	return g, nil
}

// Build seeds a fresh random source and constructs an independent registry. It can be called
// any number of times; every call yields the same generators for the same seed.
func (c *Configuration) Build() *Fixture {
	r := random.New(c.seed)

	defaults := buildDefaults(r)

	userBuilt := make(map[string]generators.Capable, len(c.factories)+len(c.dependent))
	for _, id := range slices.Sorted(maps.Keys(c.factories)) {
		if g := c.factories[id](r); g != nil {
			userBuilt[id] = g
		} else {
			c.logger.Warn().Str("Identifier", id).Msg("factory returned nil generator: skipping")
		}
	}

	deps := &Dependencies{generators: maps.Clone(userBuilt)}
	maps.Copy(deps.generators, defaults)
	for _, id := range slices.Sorted(maps.Keys(c.dependent)) {
		if g := c.dependent[id](r, deps); g != nil {
			userBuilt[id] = g
		} else {
			c.logger.Warn().Str("Identifier", id).Msg("dependent factory returned nil generator: skipping")
		}
	}

	res := make(map[string]generators.Capable, len(defaults)+len(userBuilt))
	for id, g := range userBuilt {
		if _, ok := defaults[id]; ok {
			c.logger.Warn().
				Str("Identifier", id).
				Msg("built-in generators cannot be overridden: registration is ignored")
			continue
		}
		res[id] = g
	}
	maps.Copy(res, defaults)

	c.logger.Debug().
		Int64("Seed", c.seed).
		Int("BuiltIn", len(defaults)).
		Int("User", len(res)-len(defaults)).
		Msg("fixture registry is built")

	return &Fixture{
		random:     r,
		resolver:   NewResolver(r),
		generators: res,
		logger:     c.logger,
	}
}

// New applies fn to a fresh Configuration and builds it.
func New(fn func(c *Configuration)) *Fixture {
	c := NewConfiguration()
	if fn != nil {
		fn(c)
	}
	return c.Build()
}
