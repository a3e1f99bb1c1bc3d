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

package random

import (
	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/sha3"
)

// SeedFromName derives a seed from a name, usually t.Name(), so every test gets its own stable
// stream.
func SeedFromName(name string) int64 {
	return int64(murmur3.Sum64([]byte(name)))
}

// SaltedSeed derives a seed from a phrase with siphash keyed by the salt. The salt is reduced
// to the 16 byte siphash key with sha3-224.
func SaltedSeed(salt, phrase []byte) int64 {
	key := sha3.Sum224(salt)
	h := siphash.New(key[:16])
	// hash.Hash never returns an error on Write
	_, _ = h.Write(phrase)
	return int64(h.Sum64())
}
