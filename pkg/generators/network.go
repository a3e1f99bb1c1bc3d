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

package generators

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"

	"github.com/greenmaskio/greenfixture/pkg/random"
)

var errSubnetTooSmall = errors.New("subnet too small")

var (
	DefaultIPv4Subnet = mustParseCIDR("10.0.0.0/8")
	DefaultIPv6Subnet = mustParseCIDR("fd00::/8")
)

func mustParseCIDR(s string) *net.IPNet {
	_, subnet, err := net.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	return subnet
}

// IPAddress generates host addresses of a subnet. The network and the broadcast addresses are
// never produced.
type IPAddress struct {
	rd       io.Reader
	network  *big.Int
	hosts    *big.Int
	buf      []byte
	byteSize int
}

func NewIPAddress(r random.Random, subnet *net.IPNet) (*IPAddress, error) {
	ones, bits := subnet.Mask.Size()
	totalHosts := new(big.Int).Lsh(big.NewInt(1), uint(bits-ones))
	if totalHosts.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("subnet %s: %w", subnet, errSubnetTooSmall)
	}
	network := subnet.IP.To4()
	if network == nil {
		network = subnet.IP.To16()
	}
	return &IPAddress{
		rd:       random.NewReader(r),
		network:  new(big.Int).SetBytes(network),
		hosts:    totalHosts.Sub(totalHosts, big.NewInt(2)),
		buf:      make([]byte, len(network)),
		byteSize: len(network),
	}, nil
}

func (ip *IPAddress) Capabilities() Capability {
	return CapPlain | CapFiltered
}

func (ip *IPAddress) Generate() net.IP {
	// Reader never fails
	_, _ = io.ReadFull(ip.rd, ip.buf)
	host := new(big.Int).SetBytes(ip.buf)
	host.Mod(host, ip.hosts)      // [0, hosts-3]
	host.Add(host, big.NewInt(1)) // [1, hosts-2]
	host.Add(host, ip.network)

	res := make(net.IP, ip.byteSize)
	host.FillBytes(res)
	return res
}

func (ip *IPAddress) GenerateAny() any {
	return ip.Generate()
}

func (ip *IPAddress) GenerateWhere(p Predicate[net.IP]) net.IP {
	return Filter(ip.Generate, p)
}

const (
	CastTypeIndividual = iota
	CastTypeGroup
	CastTypeAny
)

const (
	ManagementTypeUniversal = iota
	ManagementTypeLocal
	ManagementTypeAny
)

// MacAddress generates hardware addresses. The cast and management bits of the first octet
// are forced unless the type is Any.
type MacAddress struct {
	rd             io.Reader
	castType       int
	managementType int
}

func NewMacAddress(r random.Random, castType, managementType int) *MacAddress {
	return &MacAddress{
		rd:             random.NewReader(r),
		castType:       castType,
		managementType: managementType,
	}
}

func (m *MacAddress) Capabilities() Capability {
	return CapPlain | CapFiltered
}

func (m *MacAddress) Generate() net.HardwareAddr {
	res := make(net.HardwareAddr, 6)
	_, _ = io.ReadFull(m.rd, res)

	switch m.managementType {
	case ManagementTypeLocal:
		res[0] |= 0x02
	case ManagementTypeUniversal:
		res[0] &^= 0x02
	}
	switch m.castType {
	case CastTypeGroup:
		res[0] |= 0x01
	case CastTypeIndividual:
		res[0] &^= 0x01
	}
	return res
}

func (m *MacAddress) GenerateAny() any {
	return m.Generate()
}

func (m *MacAddress) GenerateWhere(p Predicate[net.HardwareAddr]) net.HardwareAddr {
	return Filter(m.Generate, p)
}
