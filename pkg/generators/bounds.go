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

// Default bounds. Array and collection framings are kept apart on purpose: arrays use the
// closed interval [DefaultArrayMinSize, DefaultArrayMaxSize] while collections use the
// half-open interval [DefaultCollectionMinSize, DefaultCollectionUpperBound).
const (
	DefaultArrayMinSize = 1
	DefaultArrayMaxSize = 10

	DefaultCollectionMinSize    = 1
	DefaultCollectionUpperBound = 11

	DefaultStringMinLength = 1
	DefaultStringMaxLength = 10

	DefaultCharMin Char = 32
	DefaultCharMax Char = 126
)
