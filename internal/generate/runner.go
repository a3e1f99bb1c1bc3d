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

package generate

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/greenmaskio/greenfixture/internal/domains"
	"github.com/greenmaskio/greenfixture/pkg/fixture"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

// Seed returns the base seed of the configuration. A seed phrase takes precedence over the
// numeric seed.
func Seed(cfg *domains.FixtureConfig) int64 {
	if cfg.SeedPhrase != "" {
		return random.SaltedSeed([]byte(cfg.Salt), []byte(cfg.SeedPhrase))
	}
	return int64(cfg.Seed)
}

type Runner struct {
	cfg      *domains.Config
	req      *Request
	generate generateFunc
	where    *Predicate
	encoder  Encoder
}

func NewRunner(cfg *domains.Config, typeName string) (*Runner, error) {
	g, ok := valueTypes[typeName]
	if !ok {
		return nil, fmt.Errorf("type \"%s\": %w", typeName, ErrUnknownType)
	}
	if cfg.Generate.Count <= 0 {
		return nil, fmt.Errorf("count must be positive: %w", ErrInvalidRequest)
	}
	if cfg.Generate.Streams <= 0 {
		return nil, fmt.Errorf("streams must be positive: %w", ErrInvalidRequest)
	}

	req := NewRequest(typeName, &cfg.Generate)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var where *Predicate
	if cfg.Generate.Where != "" {
		var err error
		if where, err = CompilePredicate(cfg.Generate.Where); err != nil {
			return nil, err
		}
	}

	enc, err := NewEncoder(cfg.Generate.Format, cfg.Generate.Template)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:      cfg,
		req:      req,
		generate: g,
		where:    where,
		encoder:  enc,
	}, nil
}

// Run generates Count values on every stream and writes them to w. Each stream owns its own
// registry seeded with the base seed plus the stream index, so streams run concurrently.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	if r.cfg.Generate.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Generate.Timeout)
		defer cancel()
	}

	baseSeed := Seed(&r.cfg.Fixture)
	streams := make([]*Stream, r.cfg.Generate.Streams)
	registries := make([]*fixture.Fixture, r.cfg.Generate.Streams)
	for idx := range registries {
		seed := baseSeed + int64(idx)
		registries[idx] = fixture.New(func(c *fixture.Configuration) {
			c.WithSeed(seed).WithLogger(log.Logger)
		})
		streams[idx] = &Stream{
			Seed:   seed,
			Values: make([]any, 0, r.cfg.Generate.Count),
		}
	}

	eg, gtx := errgroup.WithContext(ctx)
	for idx := range streams {
		eg.Go(func() error {
			return r.fill(gtx, registries[idx], streams[idx])
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return r.encoder.Encode(w, r.req.Type, r.cfg.Generate.Count, streams)
}

func (r *Runner) fill(ctx context.Context, f *fixture.Fixture, s *Stream) error {
	var m *Matcher
	if r.where != nil {
		m = r.where.Matcher()
	}
	for i := 0; i < r.cfg.Generate.Count; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stream with seed %d: %w", s.Seed, err)
		}
		v, err := r.generate(f, r.req, m)
		if err != nil {
			return fmt.Errorf("stream with seed %d: %w", s.Seed, err)
		}
		if err = m.Err(); err != nil {
			return err
		}
		s.Values = append(s.Values, normalize(v))
	}
	log.Debug().
		Int64("Seed", s.Seed).
		Int("Count", len(s.Values)).
		Msg("stream is generated")
	return nil
}
