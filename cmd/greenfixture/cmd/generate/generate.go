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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/greenfixture/internal/domains"
	generateInternals "github.com/greenmaskio/greenfixture/internal/generate"
	"github.com/greenmaskio/greenfixture/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "generate <type>",
		Short: "generate random values of the given type",
		Long: "Generate random values of the given type. Supported types: " +
			strings.Join(generateInternals.TypeNames(), ", ") + ". Faker backed strings are " +
			"requested with the string type and the generator name as the qualifier.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateInternals.TypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				return err
			}
			return run(cmd.Context(), args[0])
		},
	}
	Config = domains.NewConfig()
)

func run(ctx context.Context, typeName string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	r, err := generateInternals.NewRunner(Config, typeName)
	if err != nil {
		return fmt.Errorf("cannot prepare generation: %w", err)
	}
	log.Debug().
		Str("Type", typeName).
		Int64("Seed", generateInternals.Seed(&Config.Fixture)).
		Int("Count", Config.Generate.Count).
		Int("Streams", Config.Generate.Streams).
		Msg("generating values")
	if err = r.Run(ctx, os.Stdout); err != nil {
		return fmt.Errorf("cannot generate values: %w", err)
	}
	return nil
}

func init() {
	Cmd.Flags().Int64P("seed", "s", 0, "seed of the random source")
	Cmd.Flags().StringP("seed-phrase", "", "", "derive the seed from a phrase instead of --seed")
	Cmd.Flags().StringP("salt", "", "", "salt used to hash --seed-phrase")

	Cmd.Flags().IntP("count", "n", 1, "number of values to generate per stream")
	Cmd.Flags().StringP("qualifier", "q", "", "generator qualifier, e.g. email for faker backed strings")
	Cmd.Flags().StringP("from", "", "", "lower bound of the closed range")
	Cmd.Flags().StringP("to", "", "", "upper bound of the closed range")
	Cmd.Flags().StringP("sign", "", "", "sample one half of the domain [positive|negative]")
	Cmd.Flags().IntP("size", "", -1, "explicit size of strings and arrays")
	Cmd.Flags().StringP("where", "w", "", "expression the value must satisfy, e.g. \"value % 2 == 0\"")
	Cmd.Flags().BoolP("nullable", "", false, "replace values with null on a coin flip")
	Cmd.Flags().StringP("format", "f", generateInternals.TextFormatName, "output format [text|json|yaml]")
	Cmd.Flags().StringP("template", "t", "", "go template for text output with sprig functions")
	Cmd.Flags().IntP("streams", "", 1, "number of independent streams generated concurrently")
	Cmd.Flags().StringP("timeout", "", "1m", "generation timeout, accepts days e.g. 1d")

	for _, flagName := range []string{"seed", "seed-phrase", "salt"} {
		flag := Cmd.Flags().Lookup(flagName)
		key := fmt.Sprintf("%s.%s", "fixture", strings.ReplaceAll(flagName, "-", "_"))
		if err := viper.BindPFlag(key, flag); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}

	for _, flagName := range []string{
		"count", "qualifier", "from", "to", "sign", "size", "where", "nullable", "format", "template",
		"streams", "timeout",
	} {
		flag := Cmd.Flags().Lookup(flagName)
		if err := viper.BindPFlag(fmt.Sprintf("%s.%s", "generate", flagName), flag); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}
