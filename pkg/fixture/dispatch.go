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
	"fmt"
	"reflect"

	"github.com/greenmaskio/greenfixture/pkg/generators"
)

type request struct {
	qualifier Qualifier
	size      int
	sized     bool
	nullable  bool
}

type Option func(r *request)

func WithQualifier(q Qualifier) Option {
	return func(r *request) {
		r.qualifier = q
	}
}

// WithSize sets an explicit size for sized requests and collections. Without it the size is
// drawn from the default bounds.
func WithSize(n int) Option {
	return func(r *request) {
		r.size = n
		r.sized = true
	}
}

func newRequest(opts []Option) (*request, error) {
	req := &request{}
	for _, o := range opts {
		o(req)
	}
	if req.sized && req.size < 0 {
		return nil, fmt.Errorf("size %d: %w", req.size, ErrInvalidSize)
	}
	return req, nil
}

// begin resolves the identifier for T and, for nullable requests, flips the null coin. The
// identifier is resolved first so a Number request always consumes its type draw.
func begin[T any](f *Fixture, req *request) (id string, isNull bool) {
	id = f.resolver.Resolve(reflect.TypeFor[T](), req.qualifier)
	if req.nullable && f.random.Bool() {
		return id, true
	}
	return id, false
}

func arraySize(f *Fixture, req *request) int {
	if req.sized {
		return req.size
	}
	return f.random.IntN(generators.DefaultArrayMinSize, generators.DefaultArrayMaxSize+1)
}

func isInterface[T any]() bool {
	return reflect.TypeFor[T]().Kind() == reflect.Interface
}

// generateValue serves the plain and filtered paths. Interface typed requests such as Number
// fall back to the untyped generator because the concrete generator was chosen at resolution.
func generateValue[T any](f *Fixture, req *request, p generators.Predicate[T]) (res T, isNull bool, err error) {
	id, isNull := begin[T](f, req)
	if isNull {
		return res, true, nil
	}
	required := generators.CapPlain
	if p != nil {
		required = generators.CapFiltered
	}
	g, err := f.lookup(id, required)
	if err != nil {
		return res, false, err
	}

	if p == nil {
		if pg, ok := g.(generators.Generator[T]); ok {
			return pg.Generate(), false, nil
		}
	} else if fg, ok := g.(generators.FilteredGenerator[T]); ok {
		return fg.GenerateWhere(p), false, nil
	}

	if ag, ok := g.(generators.AnyGenerator); ok && isInterface[T]() {
		v, ok := ag.GenerateAny().(T)
		if ok {
			for p != nil && !p(v) {
				v, _ = ag.GenerateAny().(T)
			}
			return v, false, nil
		}
	}
	return res, false, missingGenerator(id)
}

func generateRanged[T any](f *Fixture, req *request, from, to T, p generators.Predicate[T]) (res T, isNull bool, err error) {
	id, isNull := begin[T](f, req)
	if isNull {
		return res, true, nil
	}
	g, err := f.lookup(id, generators.CapRanged)
	if err != nil {
		return res, false, err
	}
	rg, ok := g.(generators.RangedGenerator[T])
	if !ok {
		return res, false, missingGenerator(id)
	}
	res, err = rg.GenerateRange(from, to, p)
	if err != nil {
		return res, false, fmt.Errorf("generate %s: %w", id, err)
	}
	return res, false, nil
}

func generateSigned[T any](f *Fixture, req *request, sign generators.Sign, p generators.Predicate[T]) (res T, isNull bool, err error) {
	id, isNull := begin[T](f, req)
	if isNull {
		return res, true, nil
	}
	g, err := f.lookup(id, generators.CapSigned)
	if err != nil {
		return res, false, err
	}
	sg, ok := g.(generators.SignedGenerator[T])
	if !ok {
		return res, false, missingGenerator(id)
	}
	return sg.GenerateSigned(sign, p), false, nil
}

func generateSized[T any](f *Fixture, req *request) (res T, isNull bool, err error) {
	id, isNull := begin[T](f, req)
	if isNull {
		return res, true, nil
	}
	g, err := f.lookup(id, generators.CapSized)
	if err != nil {
		return res, false, err
	}
	sg, ok := g.(generators.SizedGenerator[T])
	if !ok {
		return res, false, missingGenerator(id)
	}
	return sg.GenerateSized(arraySize(f, req)), false, nil
}

func generateRangedArray[E any](f *Fixture, req *request, from, to E, p generators.Predicate[E]) (res []E, isNull bool, err error) {
	id, isNull := begin[[]E](f, req)
	if isNull {
		return nil, true, nil
	}
	g, err := f.lookup(id, generators.CapSized|generators.CapRanged)
	if err != nil {
		return nil, false, err
	}
	rg, ok := g.(generators.RangedSizedGenerator[E])
	if !ok {
		return nil, false, missingGenerator(id)
	}
	res, err = rg.GenerateRangeSized(arraySize(f, req), from, to, p)
	if err != nil {
		return nil, false, fmt.Errorf("generate %s: %w", id, err)
	}
	return res, false, nil
}

func generateSignedArray[E any](f *Fixture, req *request, sign generators.Sign, p generators.Predicate[E]) (res []E, isNull bool, err error) {
	id, isNull := begin[[]E](f, req)
	if isNull {
		return nil, true, nil
	}
	g, err := f.lookup(id, generators.CapSized|generators.CapSigned)
	if err != nil {
		return nil, false, err
	}
	sg, ok := g.(generators.SignedSizedGenerator[E])
	if !ok {
		return nil, false, missingGenerator(id)
	}
	return sg.GenerateSignedSized(arraySize(f, req), sign, p), false, nil
}
