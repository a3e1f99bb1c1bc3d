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

// PlainFunc adapts a function into a plain and filterable generator.
type PlainFunc[T any] func() T

// Plain is a shortcut for user registered generators that only need a value supplier.
func Plain[T any](fn func() T) PlainFunc[T] {
	return fn
}

func (f PlainFunc[T]) Capabilities() Capability {
	return CapPlain | CapFiltered
}

func (f PlainFunc[T]) Generate() T {
	return f()
}

func (f PlainFunc[T]) GenerateAny() any {
	return f()
}

func (f PlainFunc[T]) GenerateWhere(p Predicate[T]) T {
	return Filter(f.Generate, p)
}
