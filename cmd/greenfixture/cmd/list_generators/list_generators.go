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

package list_generators

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/greenfixture/internal/domains"
	"github.com/greenmaskio/greenfixture/internal/utils/logger"
	stringsUtils "github.com/greenmaskio/greenfixture/internal/utils/strings"
	"github.com/greenmaskio/greenfixture/pkg/fixture"
)

var (
	Cmd = &cobra.Command{
		Use:   "list-generators [identifier...]",
		Short: "list of the registered generators with their capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				return err
			}
			return run(os.Stdout, args)
		},
	}
	Config = domains.NewConfig()
	format string
)

const (
	JsonFormatName = "json"
	TextFormatName = "text"

	maxDescriptionLength = 60
)

func run(w io.Writer, identifiers []string) error {
	infos, err := selectGenerators(fixture.New(nil).Describe(), identifiers)
	if err != nil {
		return err
	}
	log.Debug().Int("Count", len(infos)).Msg("listing generators")

	switch format {
	case JsonFormatName:
		err = listGeneratorsJson(w, infos)
	case TextFormatName:
		listGeneratorsText(w, infos)
	default:
		return fmt.Errorf(`unknown format %s`, format)
	}
	if err != nil {
		return fmt.Errorf("error listing generators: %w", err)
	}
	return nil
}

func selectGenerators(infos []*fixture.GeneratorInfo, identifiers []string) ([]*fixture.GeneratorInfo, error) {
	if len(identifiers) == 0 {
		return infos, nil
	}
	res := make([]*fixture.GeneratorInfo, 0, len(identifiers))
	for _, id := range identifiers {
		idx := slices.IndexFunc(infos, func(info *fixture.GeneratorInfo) bool {
			return info.Identifier == id
		})
		if idx == -1 {
			return nil, fmt.Errorf("unknown generator identifier \"%s\"", id)
		}
		res = append(res, infos[idx])
	}
	return res, nil
}

func listGeneratorsJson(w io.Writer, infos []*fixture.GeneratorInfo) error {
	return json.NewEncoder(w).Encode(infos)
}

func listGeneratorsText(w io.Writer, infos []*fixture.GeneratorInfo) {
	var data [][]string
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"identifier", "capabilities", "description"})
	for _, info := range infos {
		data = append(data, []string{
			info.Identifier,
			info.Capabilities,
			stringsUtils.WrapString(info.Description, maxDescriptionLength),
		})
	}
	table.AppendBulk(data)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.Render()
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", TextFormatName, "output format [text|json]")
}
