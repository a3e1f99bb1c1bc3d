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
	"slices"

	"github.com/greenmaskio/greenfixture/pkg/generators"
)

func run[T any](opts []Option, fn func(req *request) (T, bool, error)) (T, error) {
	var zero T
	req, err := newRequest(opts)
	if err != nil {
		return zero, err
	}
	res, _, err := fn(req)
	if err != nil {
		return zero, err
	}
	return res, nil
}

func runNullable[T any](opts []Option, fn func(req *request) (T, bool, error)) (*T, error) {
	req, err := newRequest(opts)
	if err != nil {
		return nil, err
	}
	req.nullable = true
	res, isNull, err := fn(req)
	if err != nil || isNull {
		return nil, err
	}
	return &res, nil
}

// Value generates a plain value of T.
func Value[T any](f *Fixture, opts ...Option) (T, error) {
	return run(opts, func(req *request) (T, bool, error) {
		return generateValue[T](f, req, nil)
	})
}

func NullableValue[T any](f *Fixture, opts ...Option) (*T, error) {
	return runNullable(opts, func(req *request) (T, bool, error) {
		return generateValue[T](f, req, nil)
	})
}

// Filtered generates values of T until p accepts one. An unsatisfiable predicate never returns.
func Filtered[T any](f *Fixture, p generators.Predicate[T], opts ...Option) (T, error) {
	return run(opts, func(req *request) (T, bool, error) {
		return generateValue(f, req, p)
	})
}

func NullableFiltered[T any](f *Fixture, p generators.Predicate[T], opts ...Option) (*T, error) {
	return runNullable(opts, func(req *request) (T, bool, error) {
		return generateValue(f, req, p)
	})
}

// Ranged generates a value in the closed interval [from, to].
func Ranged[T any](f *Fixture, from, to T, opts ...Option) (T, error) {
	return RangedWhere(f, from, to, nil, opts...)
}

func RangedWhere[T any](f *Fixture, from, to T, p generators.Predicate[T], opts ...Option) (T, error) {
	return run(opts, func(req *request) (T, bool, error) {
		return generateRanged(f, req, from, to, p)
	})
}

func NullableRanged[T any](f *Fixture, from, to T, opts ...Option) (*T, error) {
	return NullableRangedWhere(f, from, to, nil, opts...)
}

func NullableRangedWhere[T any](f *Fixture, from, to T, p generators.Predicate[T], opts ...Option) (*T, error) {
	return runNullable(opts, func(req *request) (T, bool, error) {
		return generateRanged(f, req, from, to, p)
	})
}

// Signed generates a value from the half of the domain selected by sign.
func Signed[T any](f *Fixture, sign generators.Sign, opts ...Option) (T, error) {
	return SignedWhere[T](f, sign, nil, opts...)
}

func SignedWhere[T any](f *Fixture, sign generators.Sign, p generators.Predicate[T], opts ...Option) (T, error) {
	return run(opts, func(req *request) (T, bool, error) {
		return generateSigned(f, req, sign, p)
	})
}

func NullableSigned[T any](f *Fixture, sign generators.Sign, opts ...Option) (*T, error) {
	return NullableSignedWhere[T](f, sign, nil, opts...)
}

func NullableSignedWhere[T any](f *Fixture, sign generators.Sign, p generators.Predicate[T], opts ...Option) (*T, error) {
	return runNullable(opts, func(req *request) (T, bool, error) {
		return generateSigned(f, req, sign, p)
	})
}

// Sized generates a composite value such as a string or a typed array. The size is taken from
// WithSize or drawn from [DefaultArrayMinSize, DefaultArrayMaxSize].
func Sized[T any](f *Fixture, opts ...Option) (T, error) {
	return run(opts, func(req *request) (T, bool, error) {
		return generateSized[T](f, req)
	})
}

func NullableSized[T any](f *Fixture, opts ...Option) (*T, error) {
	return runNullable(opts, func(req *request) (T, bool, error) {
		return generateSized[T](f, req)
	})
}

// RangedArray generates a typed array whose elements all lie in [from, to].
func RangedArray[E any](f *Fixture, from, to E, opts ...Option) ([]E, error) {
	return RangedArrayWhere(f, from, to, nil, opts...)
}

func RangedArrayWhere[E any](f *Fixture, from, to E, p generators.Predicate[E], opts ...Option) ([]E, error) {
	return run(opts, func(req *request) ([]E, bool, error) {
		return generateRangedArray(f, req, from, to, p)
	})
}

func NullableRangedArray[E any](f *Fixture, from, to E, opts ...Option) (*[]E, error) {
	return NullableRangedArrayWhere(f, from, to, nil, opts...)
}

func NullableRangedArrayWhere[E any](f *Fixture, from, to E, p generators.Predicate[E], opts ...Option) (*[]E, error) {
	return runNullable(opts, func(req *request) ([]E, bool, error) {
		return generateRangedArray(f, req, from, to, p)
	})
}

func SignedArray[E any](f *Fixture, sign generators.Sign, opts ...Option) ([]E, error) {
	return SignedArrayWhere[E](f, sign, nil, opts...)
}

func SignedArrayWhere[E any](f *Fixture, sign generators.Sign, p generators.Predicate[E], opts ...Option) ([]E, error) {
	return run(opts, func(req *request) ([]E, bool, error) {
		return generateSignedArray(f, req, sign, p)
	})
}

func NullableSignedArray[E any](f *Fixture, sign generators.Sign, opts ...Option) (*[]E, error) {
	return NullableSignedArrayWhere[E](f, sign, nil, opts...)
}

func NullableSignedArrayWhere[E any](f *Fixture, sign generators.Sign, p generators.Predicate[E], opts ...Option) (*[]E, error) {
	return runNullable(opts, func(req *request) ([]E, bool, error) {
		return generateSignedArray(f, req, sign, p)
	})
}

// PickFrom returns one of candidates. No generator is involved.
func PickFrom[T any](f *Fixture, candidates []T) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, ErrNoCandidates
	}
	return candidates[f.random.IntN(0, len(candidates))], nil
}

// PickFromSeq materializes seq and picks one of its values. seq must be finite.
func PickFromSeq[T any](f *Fixture, seq iter.Seq[T]) (T, error) {
	return PickFrom(f, slices.Collect(seq))
}

// Must panics if err is not nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
