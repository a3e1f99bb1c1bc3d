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
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

const (
	TextFormatName = "text"
	JsonFormatName = "json"
	YamlFormatName = "yaml"
)

// Stream holds the values generated by one registry.
type Stream struct {
	Seed   int64 `yaml:"seed"`
	Values []any `yaml:"values"`
}

type document struct {
	Type    string    `yaml:"type"`
	Count   int       `yaml:"count"`
	Streams []*Stream `yaml:"streams"`
}

// templateData is the dot value of a --template.
type templateData struct {
	Type   string
	Stream int
	Seed   int64
	Index  int
	Value  any
}

type Encoder interface {
	Encode(w io.Writer, typeName string, count int, streams []*Stream) error
}

func NewEncoder(format, tmpl string) (Encoder, error) {
	switch format {
	case TextFormatName:
		if tmpl == "" {
			return &textEncoder{}, nil
		}
		t, err := template.New("value").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
		if err != nil {
			return nil, fmt.Errorf("cannot parse template: %w", err)
		}
		return &textEncoder{tmpl: t}, nil
	case JsonFormatName:
		return &jsonEncoder{}, nil
	case YamlFormatName:
		return &yamlEncoder{}, nil
	}
	return nil, fmt.Errorf("unknown format %s", format)
}

type textEncoder struct {
	tmpl *template.Template
}

func (e *textEncoder) Encode(w io.Writer, typeName string, _ int, streams []*Stream) error {
	var buf bytes.Buffer
	for streamIdx, s := range streams {
		for idx, v := range s.Values {
			if e.tmpl != nil {
				data := &templateData{Type: typeName, Stream: streamIdx, Seed: s.Seed, Index: idx, Value: v}
				if err := e.tmpl.Execute(&buf, data); err != nil {
					return fmt.Errorf("cannot execute template: %w", err)
				}
			} else if v == nil {
				buf.WriteString("null")
			} else {
				buf.WriteString(fmt.Sprint(v))
			}
			buf.WriteByte('\n')
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

type jsonEncoder struct{}

func (e *jsonEncoder) Encode(w io.Writer, typeName string, count int, streams []*Stream) (err error) {
	doc := []byte(`{}`)
	if doc, err = sjson.SetBytes(doc, "type", typeName); err != nil {
		return err
	}
	if doc, err = sjson.SetBytes(doc, "count", count); err != nil {
		return err
	}
	for streamIdx, s := range streams {
		prefix := "streams." + strconv.Itoa(streamIdx)
		if doc, err = sjson.SetBytes(doc, prefix+".seed", s.Seed); err != nil {
			return err
		}
		if doc, err = sjson.SetRawBytes(doc, prefix+".values", []byte(`[]`)); err != nil {
			return err
		}
		for _, v := range s.Values {
			if doc, err = sjson.SetBytes(doc, prefix+".values.-1", v); err != nil {
				return fmt.Errorf("cannot encode value %v: %w", v, err)
			}
		}
	}
	doc = append(doc, '\n')
	_, err = w.Write(doc)
	return err
}

type yamlEncoder struct{}

func (e *yamlEncoder) Encode(w io.Writer, typeName string, count int, streams []*Stream) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&document{Type: typeName, Count: count, Streams: streams})
}
