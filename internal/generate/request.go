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
	"errors"
	"fmt"

	"github.com/greenmaskio/greenfixture/internal/domains"
	"github.com/greenmaskio/greenfixture/pkg/fixture"
	"github.com/greenmaskio/greenfixture/pkg/generators"
)

var (
	ErrUnknownType     = errors.New("unknown type")
	ErrUnsupportedMode = errors.New("unsupported generation mode")
	ErrInvalidRequest  = errors.New("invalid request")
)

const (
	signPositive = "positive"
	signNegative = "negative"
)

// Request describes how a single value is generated.
type Request struct {
	Type      string
	Qualifier string
	From      string
	To        string
	Sign      string
	Size      int
	Nullable  bool
}

func NewRequest(typeName string, cfg *domains.Generate) *Request {
	return &Request{
		Type:      typeName,
		Qualifier: cfg.Qualifier,
		From:      cfg.From,
		To:        cfg.To,
		Sign:      cfg.Sign,
		Size:      cfg.Size,
		Nullable:  cfg.Nullable,
	}
}

func (r *Request) Validate() error {
	if (r.From == "") != (r.To == "") {
		return fmt.Errorf("from and to must be set together: %w", ErrInvalidRequest)
	}
	if r.From != "" && r.Sign != "" {
		return fmt.Errorf("range and sign are mutually exclusive: %w", ErrInvalidRequest)
	}
	if r.Sign != "" && r.Sign != signPositive && r.Sign != signNegative {
		return fmt.Errorf("unknown sign \"%s\": %w", r.Sign, ErrInvalidRequest)
	}
	return nil
}

func (r *Request) ranged() bool {
	return r.From != ""
}

func (r *Request) sized() bool {
	return r.Size >= 0
}

func (r *Request) sign() generators.Sign {
	if r.Sign == signNegative {
		return generators.Negative
	}
	return generators.Positive
}

func (r *Request) options() []fixture.Option {
	var opts []fixture.Option
	if r.Qualifier != "" {
		opts = append(opts, fixture.WithQualifier(fixture.Qualifier(r.Qualifier)))
	}
	if r.sized() {
		opts = append(opts, fixture.WithSize(r.Size))
	}
	return opts
}
