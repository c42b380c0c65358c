// Copyright (c) 2026 Tigera, Inc. All rights reserved.

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

package net

import (
	"fmt"
	"net"

	"github.com/gosmc/libsmc-go/lib/errors"
)

// IPNet wraps net.IPNet so that the value form has a String method.
type IPNet struct {
	net.IPNet
}

// ParseNetwork parses a network in CIDR notation. A bare address is taken as
// a /32 or /128 network. The returned network has the mask applied and IPv4
// addresses are always held in 4-byte form.
func ParseNetwork(s string) (*IPNet, error) {
	if ip, ipnet, err := net.ParseCIDR(s); err == nil {
		n := fromIPAndMask(ip, ipnet.Mask)
		return n.MaskedIPNet(), nil
	} else if ip = net.ParseIP(s); ip != nil {
		n := fromIPAndMask(ip, nil)
		return &n, nil
	} else {
		return nil, err
	}
}

func fromIPAndMask(ip net.IP, mask net.IPMask) IPNet {
	i := IPNet{}
	i.IP = ip.To4()
	if i.IP == nil {
		i.IP = ip
	}
	if mask == nil {
		bits := 8 * len(i.IP)
		mask = net.CIDRMask(bits, bits)
	}
	i.Mask = mask
	return i
}

// Version returns the IP version of the network, 0 if the address is not
// valid.
func (i IPNet) Version() int {
	if i.IP.To4() != nil {
		return 4
	}
	if len(i.IP) == net.IPv6len {
		return 6
	}
	return 0
}

// MaskedIPNet returns the normalized network.
func (i IPNet) MaskedIPNet() *IPNet {
	return &IPNet{net.IPNet{IP: i.IP.Mask(i.IPNet.Mask), Mask: i.Mask}}
}

func (i IPNet) String() string {
	ipn := &i.IPNet
	return ipn.String()
}

// NormalizeAddress validates a single address of the given IP version (0 for
// either) and returns its canonical text form. field names the payload field
// in the returned validation error.
func NormalizeAddress(field, s string, version int) (string, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return "", invalid(field, s, "not a valid IP address")
	}
	if v := versionOf(ip); version != 0 && v != version {
		return "", invalid(field, s, fmt.Sprintf("not an IPv%d address", version))
	}
	return ip.String(), nil
}

// NormalizeNetwork validates a CIDR of the given IP version (0 for either) and
// returns the masked network in canonical text form.
func NormalizeNetwork(field, s string, version int) (string, error) {
	n, err := ParseNetwork(s)
	if err != nil {
		return "", invalid(field, s, "not a valid network in CIDR notation")
	}
	if version != 0 && n.Version() != version {
		return "", invalid(field, s, fmt.Sprintf("not an IPv%d network", version))
	}
	return n.String(), nil
}

func versionOf(ip net.IP) int {
	if ip.To4() != nil {
		return 4
	}
	return 6
}

func invalid(field, value, reason string) error {
	return errors.ErrorValidation{
		ErroredFields: []errors.ErroredField{{Name: field, Value: value, Reason: reason}},
	}
}
