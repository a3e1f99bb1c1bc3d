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

package domains

import (
	"sync"
	"time"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	defaultCount   = 1
	defaultFormat  = "text"
	defaultStreams = 1
	defaultTimeout = time.Minute
	defaultSize    = -1
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Generate: Generate{
					Count:   defaultCount,
					Format:  defaultFormat,
					Streams: defaultStreams,
					Timeout: defaultTimeout,
					Size:    defaultSize,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log      LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
	Fixture  FixtureConfig `mapstructure:"fixture" yaml:"fixture" json:"fixture"`
	Generate Generate      `mapstructure:"generate" yaml:"generate" json:"generate"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

// Seed is the registry seed. In a config file or the environment it can be given either as an
// integer or as an arbitrary phrase that is hashed into one.
type Seed int64

type FixtureConfig struct {
	Seed Seed `mapstructure:"seed" yaml:"seed" json:"seed"`
	// Salt keys the phrase hashing of --seed-phrase.
	Salt       string `mapstructure:"salt" yaml:"salt,omitempty" json:"salt,omitempty"`
	SeedPhrase string `mapstructure:"seed_phrase" yaml:"seed_phrase,omitempty" json:"seed_phrase,omitempty"`
}

type Generate struct {
	Count     int           `mapstructure:"count" yaml:"count" json:"count"`
	Format    string        `mapstructure:"format" yaml:"format" json:"format"`
	Template  string        `mapstructure:"template" yaml:"template,omitempty" json:"template,omitempty"`
	Streams   int           `mapstructure:"streams" yaml:"streams" json:"streams"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	Nullable  bool          `mapstructure:"nullable" yaml:"nullable" json:"nullable,omitempty"`
	Qualifier string        `mapstructure:"qualifier" yaml:"qualifier,omitempty" json:"qualifier,omitempty"`
	From      string        `mapstructure:"from" yaml:"from,omitempty" json:"from,omitempty"`
	To        string        `mapstructure:"to" yaml:"to,omitempty" json:"to,omitempty"`
	Sign      string        `mapstructure:"sign" yaml:"sign,omitempty" json:"sign,omitempty"`
	// Size is the explicit size of sized values. A negative value means unset.
	Size      int           `mapstructure:"size" yaml:"size" json:"size"`
	Where     string        `mapstructure:"where" yaml:"where,omitempty" json:"where,omitempty"`
}
