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
	"net"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenmaskio/greenfixture/pkg/generators"
	"github.com/greenmaskio/greenfixture/pkg/random"
)

// Qualifier lets several generators coexist for one type. The empty qualifier means
// unqualified.
type Qualifier string

const (
	qualifierPrefix    = "q:"
	qualifierSeparator = ":"
)

const (
	BoolID     = "bool"
	Int8ID     = "int8"
	Int16ID    = "int16"
	Int32ID    = "int32"
	Int64ID    = "int64"
	IntID      = "int"
	Uint8ID    = "uint8"
	Uint16ID   = "uint16"
	Uint32ID   = "uint32"
	Uint64ID   = "uint64"
	UintID     = "uint"
	Float32ID  = "float32"
	Float64ID  = "float64"
	StringID   = "string"
	CharID     = "char"
	AnyID      = "any"
	UnitID     = "unit"
	UUIDID     = "uuid"
	DecimalID  = "decimal"
	DurationID = "duration"
	TimeID     = "time"
	IPID       = "ip"
	MacID      = "mac"
)

var builtinIDs = map[reflect.Type]string{
	reflect.TypeFor[bool]():            BoolID,
	reflect.TypeFor[int8]():            Int8ID,
	reflect.TypeFor[int16]():           Int16ID,
	reflect.TypeFor[int32]():           Int32ID,
	reflect.TypeFor[int64]():           Int64ID,
	reflect.TypeFor[int]():             IntID,
	reflect.TypeFor[uint8]():           Uint8ID,
	reflect.TypeFor[uint16]():          Uint16ID,
	reflect.TypeFor[uint32]():          Uint32ID,
	reflect.TypeFor[uint64]():          Uint64ID,
	reflect.TypeFor[uint]():            UintID,
	reflect.TypeFor[float32]():         Float32ID,
	reflect.TypeFor[float64]():         Float64ID,
	reflect.TypeFor[string]():          StringID,
	reflect.TypeFor[generators.Char](): CharID,
	reflect.TypeFor[any]():             AnyID,
	reflect.TypeFor[generators.Unit](): UnitID,
	reflect.TypeFor[uuid.UUID]():       UUIDID,
	reflect.TypeFor[decimal.Decimal](): DecimalID,
	reflect.TypeFor[time.Duration]():   DurationID,
	reflect.TypeFor[time.Time]():       TimeID,
	reflect.TypeFor[net.IP]():           IPID,
	reflect.TypeFor[net.HardwareAddr](): MacID,
}

var numberType = reflect.TypeFor[generators.Number]()

// numberCandidates is the closed list a Number request is resolved against.
var numberCandidates = []reflect.Type{
	reflect.TypeFor[int8](),
	reflect.TypeFor[int16](),
	reflect.TypeFor[int](),
	reflect.TypeFor[float32](),
	reflect.TypeFor[int64](),
	reflect.TypeFor[float64](),
}

// Identify returns the unqualified identifier of t. Type arguments of generic types are
// dropped, so Box[int] and Box[string] share one identifier.
func Identify(t reflect.Type) string {
	if id, ok := builtinIDs[t]; ok {
		return id
	}
	if name := t.Name(); name != "" {
		if idx := strings.IndexByte(name, '['); idx > 0 {
			name = name[:idx]
		}
		if t.PkgPath() == "" {
			return name
		}
		return t.PkgPath() + "." + name
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + Identify(t.Elem())
	case reflect.Slice:
		return "[]" + Identify(t.Elem())
	}
	return t.String()
}

func qualify(q Qualifier, base string) string {
	if q == "" {
		return base
	}
	return qualifierPrefix + string(q) + qualifierSeparator + base
}

func firstQualifier(q []Qualifier) Qualifier {
	if len(q) == 0 {
		return ""
	}
	return q[0]
}

// TypeID returns the identifier of T without touching a random source. Number has no fixed
// identifier and yields its reflected name.
func TypeID[T any](q ...Qualifier) string {
	return qualify(firstQualifier(q), Identify(reflect.TypeFor[T]()))
}

// Resolver turns a requested type into a registry identifier.
type Resolver struct {
	r random.Random
}

func NewResolver(r random.Random) *Resolver {
	return &Resolver{r: r}
}

// Resolve never fails. A Number request draws one of numberCandidates on every call.
func (rs *Resolver) Resolve(t reflect.Type, q Qualifier) string {
	if t == numberType {
		t = numberCandidates[rs.r.IntN(0, len(numberCandidates))]
	}
	return qualify(q, Identify(t))
}
