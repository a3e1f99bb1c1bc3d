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
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

var errUnknownPrecision = errors.New("unknown precision")

var (
	DefaultTimestampMin = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultTimestampMax = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// Precision is the smallest time unit a generated timestamp keeps. The zero value keeps
// nanoseconds.
type Precision int

const (
	PrecisionNanosecond Precision = iota
	PrecisionMicrosecond
	PrecisionMillisecond
	PrecisionSecond
	PrecisionMinute
	PrecisionHour
	PrecisionDay
	PrecisionMonth
	PrecisionYear
)

var precisionNames = map[string]Precision{
	"nanosecond":  PrecisionNanosecond,
	"microsecond": PrecisionMicrosecond,
	"millisecond": PrecisionMillisecond,
	"second":      PrecisionSecond,
	"minute":      PrecisionMinute,
	"hour":        PrecisionHour,
	"day":         PrecisionDay,
	"month":       PrecisionMonth,
	"year":        PrecisionYear,
}

var clockUnits = map[Precision]time.Duration{
	PrecisionMicrosecond: time.Microsecond,
	PrecisionMillisecond: time.Millisecond,
	PrecisionSecond:      time.Second,
	PrecisionMinute:      time.Minute,
	PrecisionHour:        time.Hour,
}

func ParsePrecision(name string) (Precision, error) {
	p, ok := precisionNames[name]
	if !ok {
		return 0, fmt.Errorf("precision \"%s\": %w", name, errUnknownPrecision)
	}
	return p, nil
}

// PrecisionNames lists the precision names from the finest to the coarsest.
func PrecisionNames() []string {
	return slices.SortedFunc(maps.Keys(precisionNames), func(a, b string) int {
		return cmp.Compare(precisionNames[a], precisionNames[b])
	})
}

func (p Precision) String() string {
	for name, v := range precisionNames {
		if v == p {
			return name
		}
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// Round drops every unit of t below p. Calendar units are cut in the location of t.
func (p Precision) Round(t time.Time) time.Time {
	if unit, ok := clockUnits[p]; ok {
		return t.Truncate(unit)
	}
	switch p {
	case PrecisionDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case PrecisionMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PrecisionYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return t
}

// Timestamp generates UTC timestamps with nanosecond resolution.
type Timestamp struct {
	r         random.Random
	minValue  time.Time
	maxValue  time.Time
	precision Precision
}

func NewTimestamp(r random.Random, precision Precision) *Timestamp {
	return &Timestamp{
		r:         r,
		minValue:  DefaultTimestampMin,
		maxValue:  DefaultTimestampMax,
		precision: precision,
	}
}

func (ts *Timestamp) Capabilities() Capability {
	return CapPlain | CapFiltered | CapRanged
}

// Generate returns a timestamp in [DefaultTimestampMin, DefaultTimestampMax].
func (ts *Timestamp) Generate() time.Time {
	return ts.draw(ts.minValue, ts.maxValue)
}

func (ts *Timestamp) GenerateAny() any {
	return ts.Generate()
}

func (ts *Timestamp) GenerateWhere(p Predicate[time.Time]) time.Time {
	return Filter(ts.Generate, p)
}

func (ts *Timestamp) ValidateRange(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("from %s is after to %s: %w", from, to, ErrInvalidRange)
	}
	return nil
}

func (ts *Timestamp) GenerateRange(from, to time.Time, p Predicate[time.Time]) (time.Time, error) {
	if err := ts.ValidateRange(from, to); err != nil {
		return time.Time{}, err
	}
	return Filter(func() time.Time {
		return ts.draw(from, to)
	}, p), nil
}

func (ts *Timestamp) draw(from, to time.Time) time.Time {
	res := time.Unix(0, ts.r.Int64Range(from.UnixNano(), to.UnixNano())).UTC()
	res = ts.precision.Round(res)
	if res.Before(from) {
		return from.UTC()
	}
	return res
}
