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

package strings

import (
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

// WrapString wraps v on word boundaries. Words longer than maxLength are split into chunks of
// maxLength runes. A non positive maxLength returns v unchanged.
func WrapString(v string, maxLength int) string {
	if maxLength <= 0 {
		return v
	}
	lines := strings.Split(wordwrap.WrapString(v, uint(maxLength)), "\n")
	res := make([]string, 0, len(lines))
	for _, line := range lines {
		res = append(res, chunk(line, maxLength)...)
	}
	return strings.Join(res, "\n")
}

func chunk(s string, size int) []string {
	if utf8.RuneCountInString(s) <= size {
		return []string{s}
	}
	runes := []rune(s)
	res := make([]string, 0, len(runes)/size+1)
	for len(runes) > size {
		res = append(res, string(runes[:size]))
		runes = runes[size:]
	}
	return append(res, string(runes))
}
