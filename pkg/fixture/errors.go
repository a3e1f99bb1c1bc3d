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
	"errors"
	"fmt"
)

var (
	// ErrMissingGenerator is returned when no generator is registered for an identifier or the
	// registered one lacks the requested capability. Both cases are reported identically.
	ErrMissingGenerator = errors.New("missing generator for identifier")
	ErrNoCandidates     = errors.New("no candidates to pick from")
	ErrInvalidSize      = errors.New("invalid size")
)

func missingGenerator(id string) error {
	return fmt.Errorf("%w \"%s\"", ErrMissingGenerator, id)
}
