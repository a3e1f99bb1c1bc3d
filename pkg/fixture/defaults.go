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
package fixture

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/greenmaskio/greenfixture/pkg/generators"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

type builtinDefinition struct {
	id          string
	description string
	build       func(r random.Random, built map[string]generators.Capable) generators.Capable
}

// atomicDefinitions only depend on the random source. The any generator is listed last
// because it delegates to the primitives built before it.
var atomicDefinitions = []*builtinDefinition{
	{id: BoolID, description: "Fair coin flip.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewBoolean(r)
	}},
	signedDefinition[int8](Int8ID),
	signedDefinition[int16](Int16ID),
	signedDefinition[int32](Int32ID),
	signedDefinition[int](IntID),
	{id: Int64ID, description: "Full width 64-bit integer.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewInt64(r)
	}},
	unsignedDefinition[uint8](Uint8ID),
	{id: Uint16ID, description: "Full width 16-bit unsigned integer.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewUint16(r)
	}},
	unsignedDefinition[uint32](Uint32ID),
	unsignedDefinition[uint64](Uint64ID),
	unsignedDefinition[uint](UintID),
	{id: Float32ID, description: "32-bit float in [0, 1).", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewFloat32(r)
	}},
	{id: Float64ID, description: "64-bit float in [0, 1). Ranged values near the upper bound snap to a bound.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewFloat64(r)
	}},
	{id: CharID, description: "Printable ASCII character in [32, 126].", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewChar(r)
	}},
	{id: UnitID, description: "The unit placeholder.", build: func(_ random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.UnitValue{}
	}},
	{id: UUIDID, description: "Version 4 UUID.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewUUID(r)
	}},
	{id: DecimalID, description: "Decimal with scale 2, plain values in [0, 1000000].", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewDecimal(r, generators.DefaultDecimalScale)
	}},
	{id: DurationID, description: "Duration, plain values in [0, 24h].", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewDuration(r)
	}},
	{id: TimeID, description: "UTC timestamp, plain values in [2000-01-01, 2100-01-01].", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewTimestamp(r, generators.PrecisionNanosecond)
	}},
	{id: IPID, description: "Host address of 10.0.0.0/8.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return must(generators.NewIPAddress(r, generators.DefaultIPv4Subnet))
	}},
	{id: qualify("ipv6", IPID), description: "Host address of fd00::/8.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return must(generators.NewIPAddress(r, generators.DefaultIPv6Subnet))
	}},
	{id: MacID, description: "Hardware address with random cast and management bits.", build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
		return generators.NewMacAddress(r, generators.CastTypeAny, generators.ManagementTypeAny)
	}},
	{id: AnyID, description: "Value of a randomly chosen primitive type.", build: func(r random.Random, built map[string]generators.Capable) generators.Capable {
		var delegates []generators.AnyGenerator
		for _, id := range []string{BoolID, IntID, Int64ID, Float64ID, CharID} {
			delegates = append(delegates, built[id].(generators.AnyGenerator))
		}
		return generators.NewAnyValue(r, delegates...)
	}},
}

// dependentDefinitions delegate to the atomic generators for their elements.
var dependentDefinitions = []*builtinDefinition{
	{id: StringID, description: "Printable ASCII text, 1 to 10 characters unless sized.", build: func(r random.Random, built map[string]generators.Capable) generators.Capable {
		return generators.NewString(r, built[CharID].(generators.Generator[generators.Char]))
	}},
	arrayDefinition[bool](),
	arrayDefinition[int8](),
	arrayDefinition[int16](),
	arrayDefinition[int32](),
	arrayDefinition[int](),
	arrayDefinition[int64](),
	arrayDefinition[uint8](),
	arrayDefinition[uint16](),
	arrayDefinition[uint32](),
	arrayDefinition[uint64](),
	arrayDefinition[uint](),
	arrayDefinition[float32](),
	arrayDefinition[float64](),
	arrayDefinition[generators.Char](),
}

func signedDefinition[T constraints.Signed](id string) *builtinDefinition {
	return &builtinDefinition{
		id:          id,
		description: "Signed integer over the whole type domain.",
		build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
			return must(generators.NewInt[T](r, nil))
		},
	}
}

func unsignedDefinition[T constraints.Unsigned](id string) *builtinDefinition {
	return &builtinDefinition{
		id:          id,
		description: "Unsigned integer over the whole type domain.",
		build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
			return must(generators.NewUint[T](r, nil))
		},
	}
}

func arrayDefinition[E any]() *builtinDefinition {
	elemID := Identify(reflect.TypeFor[E]())
	return &builtinDefinition{
		id:          Identify(reflect.TypeFor[[]E]()),
		description: fmt.Sprintf("Array of %s elements.", elemID),
		build: func(_ random.Random, built map[string]generators.Capable) generators.Capable {
			return must(generators.NewArray[E](built[elemID]))
		},
	}
}

func fakerDefinitions() []*builtinDefinition {
	var res []*builtinDefinition
	for _, name := range generators.FakerNames() {
		def := generators.FakerStrings[name]
		res = append(res, &builtinDefinition{
			id:          qualify(Qualifier(name), StringID),
			description: def.Description,
			build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
				return generators.NewFakerString(r, def.Generator)
			},
		})
	}
	return res
}

// timestampDefinitions register a timestamp generator for every precision under the precision
// name, e.g. q:day:time.
func timestampDefinitions() []*builtinDefinition {
	var res []*builtinDefinition
	for _, name := range generators.PrecisionNames() {
		precision, _ := generators.ParsePrecision(name)
		res = append(res, &builtinDefinition{
			id:          qualify(Qualifier(name), TimeID),
			description: fmt.Sprintf("UTC timestamp rounded down to the %s.", name),
			build: func(r random.Random, _ map[string]generators.Capable) generators.Capable {
				return generators.NewTimestamp(r, precision)
			},
		})
	}
	return res
}

// buildDefaults instantiates the atomic generators, then the dependent ones on top of them.
func buildDefaults(r random.Random) map[string]generators.Capable {
	built := make(map[string]generators.Capable)
	for _, def := range atomicDefinitions {
		built[def.id] = def.build(r, built)
	}
	for _, def := range fakerDefinitions() {
		built[def.id] = def.build(r, built)
	}
	for _, def := range timestampDefinitions() {
		built[def.id] = def.build(r, built)
	}
	for _, def := range dependentDefinitions {
		built[def.id] = def.build(r, built)
	}
	return built
}

func builtinDescription(id string) (string, bool) {
	for _, defs := range [][]*builtinDefinition{atomicDefinitions, dependentDefinitions, fakerDefinitions(), timestampDefinitions()} {
		for _, def := range defs {
			if def.id == id {
				return def.description, true
			}
		}
	}
	return "", false
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err.Error())
	}
	return v
}
