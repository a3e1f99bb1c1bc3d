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
	"net"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenmaskio/greenfixture/pkg/generators"
)

// normalize converts generated values into plain values every output format and the where
// expressions can deal with.
func normalize(v any) any {
	switch vv := v.(type) {
	case nil:
		return nil
	case generators.Char:
		return string(rune(vv))
	case []generators.Char:
		runes := make([]rune, len(vv))
		for i, c := range vv {
			runes[i] = rune(c)
		}
		return string(runes)
	case []uint8:
		res := make([]int, len(vv))
		for i, b := range vv {
			res[i] = int(b)
		}
		return res
	case generators.Unit:
		return map[string]any{}
	case uuid.UUID:
		return vv.String()
	case decimal.Decimal:
		return vv.String()
	case time.Duration:
		return vv.String()
	case net.IP:
		return vv.String()
	case net.HardwareAddr:
		return vv.String()
	case time.Time:
		return vv.Format(time.RFC3339Nano)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	}
	return v
}
