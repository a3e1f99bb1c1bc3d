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
	"fmt"
	"maps"
	"net"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/xhit/go-str2duration/v2"

	"github.com/greenmaskio/greenfixture/pkg/fixture"
	"github.com/greenmaskio/greenfixture/pkg/generators"
)

// NumberTypeName requests a value of a randomly chosen numeric type.
const NumberTypeName = "number"

type parseFunc[T any] func(raw string) (T, error)

type generateFunc func(f *fixture.Fixture, req *Request, m *Matcher) (any, error)

var valueTypes = map[string]generateFunc{
	fixture.BoolID:     scalar(castParser(cast.ToBoolE)),
	fixture.Int8ID:     scalar(castParser(cast.ToInt8E)),
	fixture.Int16ID:    scalar(castParser(cast.ToInt16E)),
	fixture.Int32ID:    scalar(castParser(cast.ToInt32E)),
	fixture.IntID:      scalar(castParser(cast.ToIntE)),
	fixture.Int64ID:    scalar(castParser(cast.ToInt64E)),
	fixture.Uint8ID:    scalar(castParser(cast.ToUint8E)),
	fixture.Uint16ID:   scalar(castParser(cast.ToUint16E)),
	fixture.Uint32ID:   scalar(castParser(cast.ToUint32E)),
	fixture.Uint64ID:   scalar(castParser(cast.ToUint64E)),
	fixture.UintID:     scalar(castParser(cast.ToUintE)),
	fixture.Float32ID:  scalar(castParser(cast.ToFloat32E)),
	fixture.Float64ID:  scalar(castParser(cast.ToFloat64E)),
	fixture.CharID:     scalar[generators.Char](parseChar),
	fixture.StringID:   scalar[string](nil),
	fixture.AnyID:      scalar[any](nil),
	fixture.UnitID:     scalar[generators.Unit](nil),
	fixture.UUIDID:     scalar[uuid.UUID](nil),
	fixture.DecimalID:  scalar[decimal.Decimal](decimal.NewFromString),
	fixture.DurationID: scalar[time.Duration](str2duration.ParseDuration),
	fixture.TimeID:     scalar(castParser(cast.ToTimeE)),
	fixture.IPID:       scalar[net.IP](nil),
	fixture.MacID:      scalar[net.HardwareAddr](nil),
	NumberTypeName:     scalar[generators.Number](nil),

	"[]bool":    array(castParser(cast.ToBoolE)),
	"[]int8":    array(castParser(cast.ToInt8E)),
	"[]int16":   array(castParser(cast.ToInt16E)),
	"[]int32":   array(castParser(cast.ToInt32E)),
	"[]int":     array(castParser(cast.ToIntE)),
	"[]int64":   array(castParser(cast.ToInt64E)),
	"[]uint8":   array(castParser(cast.ToUint8E)),
	"[]uint16":  array(castParser(cast.ToUint16E)),
	"[]uint32":  array(castParser(cast.ToUint32E)),
	"[]uint64":  array(castParser(cast.ToUint64E)),
	"[]uint":    array(castParser(cast.ToUintE)),
	"[]float32": array(castParser(cast.ToFloat32E)),
	"[]float64": array(castParser(cast.ToFloat64E)),
	"[]char":    array[generators.Char](parseChar),
}

// TypeNames returns every type name the generate command accepts.
func TypeNames() []string {
	return slices.Sorted(maps.Keys(valueTypes))
}

func castParser[T any](fn func(i interface{}) (T, error)) parseFunc[T] {
	return func(raw string) (T, error) {
		return fn(raw)
	}
}

func parseChar(raw string) (generators.Char, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("expected a single character got \"%s\"", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return generators.Char(r), nil
}

func parseBounds[T any](parse parseFunc[T], req *Request) (from T, to T, err error) {
	if parse == nil {
		return from, to, fmt.Errorf("type %s does not support bounds: %w", req.Type, ErrUnsupportedMode)
	}
	if from, err = parse(req.From); err != nil {
		return from, to, fmt.Errorf("cannot parse from value: %w", err)
	}
	if to, err = parse(req.To); err != nil {
		return from, to, fmt.Errorf("cannot parse to value: %w", err)
	}
	return from, to, nil
}

// scalar dispatches a request for a single value of T. Capability checks are left to the
// fixture so an unsupported combination reports the missing generator.
func scalar[T any](parse parseFunc[T]) generateFunc {
	return func(f *fixture.Fixture, req *Request, m *Matcher) (any, error) {
		opts := req.options()
		p := predicateFor[T](m)

		var s fixture.Supplier[T]
		switch {
		case req.ranged():
			from, to, err := parseBounds(parse, req)
			if err != nil {
				return nil, err
			}
			s = func(f *fixture.Fixture) (T, error) {
				return fixture.RangedWhere(f, from, to, p, opts...)
			}
		case req.Sign != "":
			s = func(f *fixture.Fixture) (T, error) {
				return fixture.SignedWhere(f, req.sign(), p, opts...)
			}
		case req.sized():
			if p != nil {
				return nil, fmt.Errorf("where is not supported for sized values: %w", ErrUnsupportedMode)
			}
			s = func(f *fixture.Fixture) (T, error) {
				return fixture.Sized[T](f, opts...)
			}
		case p != nil:
			s = fixture.FilteredOf(p, opts...)
		default:
			s = fixture.ValueOf[T](opts...)
		}
		return supply(f, s, req.Nullable)
	}
}

// array dispatches a request for a typed array of E. The predicate applies to elements.
func array[E any](parse parseFunc[E]) generateFunc {
	return func(f *fixture.Fixture, req *Request, m *Matcher) (any, error) {
		opts := req.options()
		p := predicateFor[E](m)

		var s fixture.Supplier[[]E]
		switch {
		case req.ranged():
			from, to, err := parseBounds(parse, req)
			if err != nil {
				return nil, err
			}
			s = func(f *fixture.Fixture) ([]E, error) {
				return fixture.RangedArrayWhere(f, from, to, p, opts...)
			}
		case req.Sign != "":
			s = func(f *fixture.Fixture) ([]E, error) {
				return fixture.SignedArrayWhere(f, req.sign(), p, opts...)
			}
		case p != nil:
			return nil, fmt.Errorf("where requires a range or a sign for arrays: %w", ErrUnsupportedMode)
		default:
			s = func(f *fixture.Fixture) ([]E, error) {
				return fixture.Sized[[]E](f, opts...)
			}
		}
		return supply(f, s, req.Nullable)
	}
}

func supply[T any](f *fixture.Fixture, s fixture.Supplier[T], nullable bool) (any, error) {
	if nullable {
		v, err := fixture.Nullable(s)(f)
		if err != nil || v == nil {
			return nil, err
		}
		return *v, nil
	}
	return s(f)
}
