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
	"bytes"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/greenfixture/internal/domains"
	"github.com/greenmaskio/greenfixture/pkg/fixture"
	"github.com/greenmaskio/greenfixture/pkg/generators"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

func newConfig(seed int64) *domains.Config {
	return &domains.Config{
		Fixture: domains.FixtureConfig{Seed: domains.Seed(seed)},
		Generate: domains.Generate{
			Count:   10,
			Format:  JsonFormatName,
			Streams: 1,
			Timeout: time.Minute,
			Size:    -1,
		},
	}
}

func run(t *testing.T, cfg *domains.Config, typeName string) (string, error) {
	t.Helper()
	r, err := NewRunner(cfg, typeName)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = r.Run(context.Background(), &buf)
	return buf.String(), err
}

func TestRunner_Json(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	out, err := run(t, cfg, fixture.IntID)
	require.NoError(t, err)

	require.True(t, gjson.Valid(out))
	assert.Equal(t, "int", gjson.Get(out, "type").String())
	assert.Equal(t, int64(10), gjson.Get(out, "count").Int())
	assert.Equal(t, int64(10), gjson.Get(out, "streams.0.values.#").Int())
	assert.Equal(t, cfg.Fixture.Seed, domains.Seed(gjson.Get(out, "streams.0.seed").Int()))
}

func TestRunner_Deterministic(t *testing.T) {
	seed := random.SeedFromName(t.Name())
	first, err := run(t, newConfig(seed), fixture.Float64ID)
	require.NoError(t, err)
	second, err := run(t, newConfig(seed), fixture.Float64ID)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRunner_Ranged(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.From = "-5"
	cfg.Generate.To = "5"
	out, err := run(t, cfg, fixture.Int16ID)
	require.NoError(t, err)
	for _, v := range gjson.Get(out, "streams.0.values").Array() {
		require.GreaterOrEqual(t, v.Int(), int64(-5))
		require.LessOrEqual(t, v.Int(), int64(5))
	}
}

func TestRunner_RangedDuration(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.From = "1d"
	cfg.Generate.To = "2d"
	out, err := run(t, cfg, fixture.DurationID)
	require.NoError(t, err)
	for _, v := range gjson.Get(out, "streams.0.values").Array() {
		d, err := time.ParseDuration(v.String())
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, 24*time.Hour)
		require.LessOrEqual(t, d, 48*time.Hour)
	}
}

func TestRunner_Where(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.From = "0"
	cfg.Generate.To = "100"
	cfg.Generate.Where = "value % 2 == 0"
	out, err := run(t, cfg, fixture.IntID)
	require.NoError(t, err)
	values := gjson.Get(out, "streams.0.values").Array()
	require.Len(t, values, 10)
	for _, v := range values {
		require.Zero(t, v.Int()%2)
	}
}

func TestRunner_WhereOnArrayElements(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Sign = "positive"
	cfg.Generate.Size = 4
	cfg.Generate.Where = "value > 10"
	out, err := run(t, cfg, "[]int8")
	require.NoError(t, err)
	for _, arr := range gjson.Get(out, "streams.0.values").Array() {
		require.Len(t, arr.Array(), 4)
		for _, v := range arr.Array() {
			require.Greater(t, v.Int(), int64(10))
		}
	}
}

func TestRunner_WhereEvaluationError(t *testing.T) {
	cfg := newConfig(0)
	cfg.Generate.Where = "value.missing > 1"
	_, err := run(t, cfg, fixture.IntID)
	require.Error(t, err)
}

func TestRunner_SizedString(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Size = 12
	out, err := run(t, cfg, fixture.StringID)
	require.NoError(t, err)
	for _, v := range gjson.Get(out, "streams.0.values").Array() {
		require.Len(t, v.String(), 12)
	}
}

func TestRunner_Char(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.From = "a"
	cfg.Generate.To = "c"
	out, err := run(t, cfg, fixture.CharID)
	require.NoError(t, err)
	for _, v := range gjson.Get(out, "streams.0.values").Array() {
		require.Contains(t, []string{"a", "b", "c"}, v.String())
	}
}

func TestRunner_QualifiedIP(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Count = 20
	cfg.Generate.Qualifier = "ipv6"
	out, err := run(t, cfg, fixture.IPID)
	require.NoError(t, err)
	for _, v := range gjson.Get(out, "streams.0.values").Array() {
		ip := net.ParseIP(v.String())
		require.NotNil(t, ip, v.String())
		require.True(t, generators.DefaultIPv6Subnet.Contains(ip), v.String())
	}
}

func TestRunner_Nullable(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Count = 200
	cfg.Generate.Nullable = true
	out, err := run(t, cfg, fixture.UUIDID)
	require.NoError(t, err)
	var nulls, values int
	for _, v := range gjson.Get(out, "streams.0.values").Array() {
		if v.Type == gjson.Null {
			nulls++
		} else {
			values++
		}
	}
	require.Positive(t, nulls)
	require.Positive(t, values)
}

func TestRunner_Streams(t *testing.T) {
	cfg := newConfig(100)
	cfg.Generate.Streams = 3
	cfg.Generate.Count = 5
	out, err := run(t, cfg, fixture.Uint32ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), gjson.Get(out, "streams.#").Int())
	for idx, s := range gjson.Get(out, "streams").Array() {
		require.Equal(t, int64(100+idx), s.Get("seed").Int())
		require.Len(t, s.Get("values").Array(), 5)
	}

	single := newConfig(101)
	single.Generate.Count = 5
	one, err := run(t, single, fixture.Uint32ID)
	require.NoError(t, err)
	require.Equal(t, gjson.Get(out, "streams.1.values").Raw, gjson.Get(one, "streams.0.values").Raw)
}

func TestRunner_Text(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Format = TextFormatName
	cfg.Generate.Count = 3
	out, err := run(t, cfg, fixture.BoolID)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Contains(t, []string{"true", "false"}, l)
	}
}

func TestRunner_Template(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Format = TextFormatName
	cfg.Generate.Count = 2
	cfg.Generate.Size = 3
	cfg.Generate.Template = `{{ .Index }}:{{ .Value | upper | quote }}`
	out, err := run(t, cfg, fixture.StringID)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], `0:"`))
	require.True(t, strings.HasPrefix(lines[1], `1:"`))
}

func TestRunner_Yaml(t *testing.T) {
	cfg := newConfig(random.SeedFromName(t.Name()))
	cfg.Generate.Format = YamlFormatName
	cfg.Generate.Count = 4
	out, err := run(t, cfg, fixture.DecimalID)
	require.NoError(t, err)

	var doc document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, "decimal", doc.Type)
	require.Len(t, doc.Streams, 1)
	require.Len(t, doc.Streams[0].Values, 4)
}

func TestNewRunner_Errors(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		modify   func(cfg *domains.Config)
		err      error
	}{
		{name: "unknown type", typeName: "complex128", err: ErrUnknownType},
		{name: "zero count", typeName: "int", modify: func(cfg *domains.Config) { cfg.Generate.Count = 0 }, err: ErrInvalidRequest},
		{name: "half range", typeName: "int", modify: func(cfg *domains.Config) { cfg.Generate.From = "1" }, err: ErrInvalidRequest},
		{name: "bad sign", typeName: "int", modify: func(cfg *domains.Config) { cfg.Generate.Sign = "zero" }, err: ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(0)
			if tt.modify != nil {
				tt.modify(cfg)
			}
			_, err := NewRunner(cfg, tt.typeName)
			require.ErrorIs(t, err, tt.err)
		})
	}

	cfg := newConfig(0)
	cfg.Generate.Format = "xml"
	_, err := NewRunner(cfg, "int")
	require.ErrorContains(t, err, "unknown format")

	cfg = newConfig(0)
	cfg.Generate.Where = "value >"
	_, err = NewRunner(cfg, "int")
	require.ErrorContains(t, err, "cannot compile where expression")
}

func TestRunner_UnsupportedCapability(t *testing.T) {
	cfg := newConfig(0)
	cfg.Generate.From = "1"
	cfg.Generate.To = "2"
	_, err := run(t, cfg, fixture.Int64ID)
	require.ErrorIs(t, err, fixture.ErrMissingGenerator)

	cfg = newConfig(0)
	cfg.Generate.From = "1"
	cfg.Generate.To = "2"
	_, err = run(t, cfg, fixture.StringID)
	require.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestSeed(t *testing.T) {
	require.Equal(t, int64(5), Seed(&domains.FixtureConfig{Seed: 5}))
	phrase := &domains.FixtureConfig{Seed: 5, SeedPhrase: "orders", Salt: "s"}
	require.Equal(t, random.SaltedSeed([]byte("s"), []byte("orders")), Seed(phrase))
}
