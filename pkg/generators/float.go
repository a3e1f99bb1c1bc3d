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

	"github.com/greenmaskio/greenfixture/pkg/random"
)

// boundarySnapDistance is the distance to the upper bound under which a sampled value is
// replaced by one of the bounds.
const boundarySnapDistance = 1.0

type Float64 struct {
	r random.Random
}

func NewFloat64(r random.Random) *Float64 {
	return &Float64{r: r}
}

func (f *Float64) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged | CapSigned
}

// Generate returns a value in [0, 1).
func (f *Float64) Generate() float64 {
	return f.r.Float64()
}

func (f *Float64) GenerateAny() any {
	return f.Generate()
}

func (f *Float64) GenerateWhere(p Predicate[float64]) float64 {
	return Filter(f.Generate, p)
}

// GenerateRange samples [from, to). A sample closer to "to" than boundarySnapDistance is
// replaced by "from" or "to" chosen with a coin flip, which makes both bounds reachable.
func (f *Float64) ValidateRange(from, to float64) error {
	if from > to || math.IsNaN(from) || math.IsNaN(to) {
		return fmt.Errorf("from %g is greater than to %g: %w", from, to, ErrInvalidRange)
	}
	return nil
}

func (f *Float64) GenerateRange(from, to float64, p Predicate[float64]) (float64, error) {
	if err := f.ValidateRange(from, to); err != nil {
		return 0, err
	}
	return Filter(func() float64 {
		return f.sample(from, to)
	}, p), nil
}

func (f *Float64) sample(from, to float64) float64 {
	if from == to {
		return from
	}
	v := f.r.Float64Range(from, to)
	if to-v < boundarySnapDistance {
		if f.r.Bool() {
			return from
		}
		return to
	}
	return v
}

func (f *Float64) GenerateSigned(sign Sign, p Predicate[float64]) float64 {
	from, to := -math.MaxFloat64, 0.0
	if sign == Positive {
		from, to = 0, math.MaxFloat64
	}
	return Filter(func() float64 {
		return f.sample(from, to)
	}, p)
}
