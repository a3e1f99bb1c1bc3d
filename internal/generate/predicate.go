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

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/greenmaskio/greenfixture/pkg/generators"
)

type predicateEnv struct {
	Value any `expr:"value"`
}

// Predicate is a compiled --where expression. The generated value is available as "value".
type Predicate struct {
	source  string
	program *vm.Program
}

func CompilePredicate(source string) (*Predicate, error) {
	program, err := expr.Compile(source, expr.Env(predicateEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("cannot compile where expression: %w", err)
	}
	return &Predicate{
		source:  source,
		program: program,
	}, nil
}

// Matcher evaluates the predicate and keeps the first evaluation error. A failed evaluation
// accepts the value so the retry loop stops.
type Matcher struct {
	p   *Predicate
	err error
}

func (p *Predicate) Matcher() *Matcher {
	return &Matcher{p: p}
}

func (m *Matcher) Match(v any) bool {
	if m.err != nil {
		return true
	}
	out, err := expr.Run(m.p.program, predicateEnv{Value: normalize(v)})
	if err != nil {
		m.err = fmt.Errorf("cannot evaluate where expression \"%s\": %w", m.p.source, err)
		return true
	}
	return out.(bool)
}

func (m *Matcher) Err() error {
	if m == nil {
		return nil
	}
	return m.err
}

// predicateFor adapts m to a typed predicate. A nil matcher yields a nil predicate so the
// generators take their fast path.
func predicateFor[T any](m *Matcher) generators.Predicate[T] {
	if m == nil {
		return nil
	}
	return func(v T) bool {
		return m.Match(v)
	}
}
