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

package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"github.com/xhit/go-str2duration/v2"

	"github.com/greenmaskio/greenfixture/internal/domains"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

// StringToSeedHookFunc decodes a seed given as a string. Integers are taken as is, any other
// text is hashed into a seed.
func StringToSeedHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != reflect.TypeOf(domains.Seed(0)) || f.Kind() != reflect.String {
			return data, nil
		}
		raw := data.(string)
		if v, err := cast.ToInt64E(raw); err == nil {
			return domains.Seed(v), nil
		}
		return domains.Seed(random.SaltedSeed(nil, []byte(raw))), nil
	}
}

// StringToDurationHookFunc accepts the extended duration units such as "1d12h".
func StringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != reflect.TypeOf(time.Duration(0)) || f.Kind() != reflect.String {
			return data, nil
		}
		d, err := str2duration.ParseDuration(data.(string))
		if err != nil {
			return nil, fmt.Errorf("cannot parse duration: %w", err)
		}
		return d, nil
	}
}

// DecoderConfig is passed to viper.Unmarshal.
func DecoderConfig(cfg *mapstructure.DecoderConfig) {
	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		StringToSeedHookFunc(),
		StringToDurationHookFunc(),
	)
	cfg.ErrorUnused = true
}
