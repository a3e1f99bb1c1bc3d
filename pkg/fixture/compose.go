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
	"iter"

	"github.com/greenmaskio/greenfixture/pkg/generators"
)

// Supplier produces one element for a composite value. Every call may advance the random
// source of the fixture.
type Supplier[T any] func(f *Fixture) (T, error)

func ValueOf[T any](opts ...Option) Supplier[T] {
	return func(f *Fixture) (T, error) {
		return Value[T](f, opts...)
	}
}

func FilteredOf[T any](p generators.Predicate[T], opts ...Option) Supplier[T] {
	return func(f *Fixture) (T, error) {
		return Filtered(f, p, opts...)
	}
}

func RangedOf[T any](from, to T, opts ...Option) Supplier[T] {
	return func(f *Fixture) (T, error) {
		return Ranged(f, from, to, opts...)
	}
}

func SignedOf[T any](sign generators.Sign, opts ...Option) Supplier[T] {
	return func(f *Fixture) (T, error) {
		return Signed[T](f, sign, opts...)
	}
}

func NullableOf[T any](opts ...Option) Supplier[*T] {
	return func(f *Fixture) (*T, error) {
		return NullableValue[T](f, opts...)
	}
}

// Nullable wraps s so that it yields nil on a coin flip without calling s.
func Nullable[T any](s Supplier[T]) Supplier[*T] {
	return func(f *Fixture) (*T, error) {
		if f.random.Bool() {
			return nil, nil
		}
		v, err := s(f)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func collectionSize(f *Fixture, opts []Option) (int, error) {
	req, err := newRequest(opts)
	if err != nil {
		return 0, err
	}
	if req.sized {
		return req.size, nil
	}
	return f.random.IntN(generators.DefaultCollectionMinSize, generators.DefaultCollectionUpperBound), nil
}

func fill[T any](f *Fixture, s Supplier[T], size int) ([]T, error) {
	res := make([]T, 0, size)
	for i := 0; i < size; i++ {
		v, err := s(f)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// ListOf calls s once per element in order. The size comes from WithSize or is drawn from
// [DefaultCollectionMinSize, DefaultCollectionUpperBound).
func ListOf[T any](f *Fixture, s Supplier[T], opts ...Option) ([]T, error) {
	size, err := collectionSize(f, opts)
	if err != nil {
		return nil, err
	}
	return fill(f, s, size)
}

// ArrayOf is ListOf with the array size bounds [DefaultArrayMinSize, DefaultArrayMaxSize].
func ArrayOf[T any](f *Fixture, s Supplier[T], opts ...Option) ([]T, error) {
	req, err := newRequest(opts)
	if err != nil {
		return nil, err
	}
	return fill(f, s, arraySize(f, req))
}

// SetOf makes size attempts. Duplicates collapse, so the set may be smaller than size.
func SetOf[T comparable](f *Fixture, s Supplier[T], opts ...Option) (map[T]struct{}, error) {
	size, err := collectionSize(f, opts)
	if err != nil {
		return nil, err
	}
	res := make(map[T]struct{}, size)
	for i := 0; i < size; i++ {
		v, err := s(f)
		if err != nil {
			return nil, err
		}
		res[v] = struct{}{}
	}
	return res, nil
}

// MapOf draws size key value pairs, the key first. A repeated key overwrites the earlier value.
func MapOf[K comparable, V any](f *Fixture, keys Supplier[K], values Supplier[V], opts ...Option) (map[K]V, error) {
	size, err := collectionSize(f, opts)
	if err != nil {
		return nil, err
	}
	res := make(map[K]V, size)
	for i := 0; i < size; i++ {
		k, err := keys(f)
		if err != nil {
			return nil, err
		}
		v, err := values(f)
		if err != nil {
			return nil, err
		}
		res[k] = v
	}
	return res, nil
}

// SeqOf is the lazy form of ListOf. Every iteration draws a new size and new elements. The
// first error is yielded and ends the iteration.
func SeqOf[T any](f *Fixture, s Supplier[T], opts ...Option) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		size, err := collectionSize(f, opts)
		if err != nil {
			yield(zero, err)
			return
		}
		for i := 0; i < size; i++ {
			v, err := s(f)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf evaluates a and then b.
func PairOf[A, B any](f *Fixture, a Supplier[A], b Supplier[B]) (Pair[A, B], error) {
	var res Pair[A, B]
	var err error
	if res.First, err = a(f); err != nil {
		return Pair[A, B]{}, err
	}
	if res.Second, err = b(f); err != nil {
		return Pair[A, B]{}, err
	}
	return res, nil
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func TripleOf[A, B, C any](f *Fixture, a Supplier[A], b Supplier[B], c Supplier[C]) (Triple[A, B, C], error) {
	var res Triple[A, B, C]
	var err error
	if res.First, err = a(f); err != nil {
		return Triple[A, B, C]{}, err
	}
	if res.Second, err = b(f); err != nil {
		return Triple[A, B, C]{}, err
	}
	if res.Third, err = c(f); err != nil {
		return Triple[A, B, C]{}, err
	}
	return res, nil
}

// EnumOf picks one of values uniformly and redraws until p accepts it.
func EnumOf[T any](f *Fixture, values []T, p generators.Predicate[T]) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, ErrNoCandidates
	}
	return generators.Filter(func() T {
		return values[f.random.IntN(0, len(values))]
	}, p), nil
}
