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
	"io"

	"github.com/google/uuid"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

// UUID generates version 4 UUIDs from the shared random source.
type UUID struct {
	reader io.Reader
}

func NewUUID(r random.Random) *UUID {
	return &UUID{
		reader: random.NewReader(r),
	}
}

func (u *UUID) Capabilities() Capability {
	return CapPlain | CapFiltered
}

func (u *UUID) Generate() uuid.UUID {
	// random.Reader never fails
	return uuid.Must(uuid.NewRandomFromReader(u.reader))
}

func (u *UUID) GenerateAny() any {
	return u.Generate()
}

func (u *UUID) GenerateWhere(p Predicate[uuid.UUID]) uuid.UUID {
	return Filter(u.Generate, p)
}
