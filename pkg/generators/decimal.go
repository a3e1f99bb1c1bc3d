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

	"github.com/shopspring/decimal"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

const DefaultDecimalScale int32 = 2

// DefaultDecimalLimit bounds plain and signed decimal generation.
var DefaultDecimalLimit = decimal.NewFromInt(1_000_000)

type Decimal struct {
	r     random.Random
	scale int32
	limit decimal.Decimal
}

func NewDecimal(r random.Random, scale int32) *Decimal {
	return &Decimal{
		r:     r,
		scale: scale,
		limit: DefaultDecimalLimit,
	}
}

func (d *Decimal) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged | CapSigned
}

// Generate returns a value in [0, DefaultDecimalLimit] rounded to the scale.
func (d *Decimal) Generate() decimal.Decimal {
	return d.draw(decimal.Zero, d.limit)
}

func (d *Decimal) GenerateAny() any {
	return d.Generate()
}

func (d *Decimal) GenerateWhere(p Predicate[decimal.Decimal]) decimal.Decimal {
	return Filter(d.Generate, p)
}

func (d *Decimal) ValidateRange(from, to decimal.Decimal) error {
	if from.GreaterThan(to) {
		return fmt.Errorf("from %s is greater than to %s: %w", from, to, ErrInvalidRange)
	}
	return nil
}

func (d *Decimal) GenerateRange(from, to decimal.Decimal, p Predicate[decimal.Decimal]) (decimal.Decimal, error) {
	if err := d.ValidateRange(from, to); err != nil {
		return decimal.Zero, err
	}
	return Filter(func() decimal.Decimal {
		return d.draw(from, to)
	}, p), nil
}

func (d *Decimal) GenerateSigned(sign Sign, p Predicate[decimal.Decimal]) decimal.Decimal {
	from, to := d.limit.Neg(), decimal.Zero
	if sign == Positive {
		from, to = decimal.Zero, d.limit
	}
	return Filter(func() decimal.Decimal {
		return d.draw(from, to)
	}, p)
}

func (d *Decimal) draw(from, to decimal.Decimal) decimal.Decimal {
	if from.Equal(to) {
		return from
	}
	x := decimal.NewFromFloat(d.r.Float64())
	res := from.Add(to.Sub(from).Mul(x)).Round(d.scale)
	// rounding may step outside of the bounds when they carry more digits than the scale
	if res.GreaterThan(to) {
		return to
	}
	if res.LessThan(from) {
		return from
	}
	return res
}
