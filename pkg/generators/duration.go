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
	"math"
	"time"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

// DefaultMaxDuration bounds plain duration generation.
const DefaultMaxDuration = 24 * time.Hour

type Duration struct {
	r random.Random
}

func NewDuration(r random.Random) *Duration {
	return &Duration{r: r}
}

func (d *Duration) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged | CapSigned
}

// Generate returns a duration in [0, DefaultMaxDuration].
func (d *Duration) Generate() time.Duration {
	return time.Duration(d.r.Int64Range(0, int64(DefaultMaxDuration)))
}

func (d *Duration) GenerateAny() any {
	return d.Generate()
}

func (d *Duration) GenerateWhere(p Predicate[time.Duration]) time.Duration {
	return Filter(d.Generate, p)
}

func (d *Duration) ValidateRange(from, to time.Duration) error {
	if from > to {
		return fmt.Errorf("from %s is greater than to %s: %w", from, to, ErrInvalidRange)
	}
	return nil
}

func (d *Duration) GenerateRange(from, to time.Duration, p Predicate[time.Duration]) (time.Duration, error) {
	if err := d.ValidateRange(from, to); err != nil {
		return 0, err
	}
	return Filter(func() time.Duration {
		return time.Duration(d.r.Int64Range(int64(from), int64(to)))
	}, p), nil
}

func (d *Duration) GenerateSigned(sign Sign, p Predicate[time.Duration]) time.Duration {
	from, to := int64(math.MinInt64), int64(0)
	if sign == Positive {
		from, to = 0, math.MaxInt64
	}
	return Filter(func() time.Duration {
		return time.Duration(d.r.Int64Range(from, to))
	}, p)
}
