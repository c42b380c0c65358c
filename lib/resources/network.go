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

package resources

import (
	"context"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/net"
	"github.com/gosmc/libsmc-go/lib/options"
)

// Host is a single IP address element.
type Host struct {
	*elements.Element
}

type HostSpec struct {
	Name        string
	Address     string
	IPv6Address string
	Secondary   []string
	Comment     string
}

func NewHost(s *elements.Session, name string) *Host {
	return &Host{Element: elements.NewElement(s, KindHost, name)}
}

func newHost(s *elements.Session, meta model.Meta) elements.Resource {
	return &Host{Element: elements.ElementFromMeta(s, meta)}
}

// CreateHost creates a host. At least one of Address and IPv6Address should
// be set; the server rejects a host with neither. Malformed addresses return
// ErrorValidation without contacting the server.
func CreateHost(ctx context.Context, s *elements.Session, spec HostSpec) (*Host, error) {
	payload := map[string]interface{}{
		"name":    spec.Name,
		"comment": spec.Comment,
	}
	if spec.Address != "" {
		addr, err := net.NormalizeAddress("address", spec.Address, 4)
		if err != nil {
			return nil, err
		}
		payload["address"] = addr
	}
	if spec.IPv6Address != "" {
		addr, err := net.NormalizeAddress("ipv6_address", spec.IPv6Address, 6)
		if err != nil {
			return nil, err
		}
		payload["ipv6_address"] = addr
	}
	if len(spec.Secondary) > 0 {
		secondary := make([]string, 0, len(spec.Secondary))
		for _, a := range spec.Secondary {
			addr, err := net.NormalizeAddress("secondary", a, 0)
			if err != nil {
				return nil, err
			}
			secondary = append(secondary, addr)
		}
		payload["secondary"] = secondary
	}
	meta, err := create(ctx, s, KindHost, payload)
	if err != nil {
		return nil, err
	}
	return &Host{Element: elements.ElementFromMeta(s, meta)}, nil
}

func (h *Host) Address(ctx context.Context) (string, error) {
	data, err := h.Data(ctx)
	if err != nil {
		return "", err
	}
	return data.String("address"), nil
}

// Secondary returns the secondary addresses of the host.
func (h *Host) Secondary(ctx context.Context) ([]string, error) {
	data, err := h.Data(ctx)
	if err != nil {
		return nil, err
	}
	return data.Strings("secondary"), nil
}

// AddSecondary appends addresses to the secondary addresses of the host.
func (h *Host) AddSecondary(ctx context.Context, addresses ...string) error {
	return h.ModifyAttribute(ctx, map[string]interface{}{"secondary": addresses}, options.ModifyOptions{AppendLists: true})
}

// Network is an IPv4 and/or IPv6 network element.
type Network struct {
	*elements.Element
}

func NewNetwork(s *elements.Session, name string) *Network {
	return &Network{Element: elements.NewElement(s, KindNetwork, name)}
}

func newNetwork(s *elements.Session, meta model.Meta) elements.Resource {
	return &Network{Element: elements.ElementFromMeta(s, meta)}
}

// CreateNetwork creates a network. Networks are given in CIDR notation and
// sent with host bits cleared.
func CreateNetwork(ctx context.Context, s *elements.Session, name, ipv4Network, ipv6Network, comment string) (*Network, error) {
	payload := map[string]interface{}{
		"name":    name,
		"comment": comment,
	}
	if ipv4Network != "" {
		cidr, err := net.NormalizeNetwork("ipv4_network", ipv4Network, 4)
		if err != nil {
			return nil, err
		}
		payload["ipv4_network"] = cidr
	}
	if ipv6Network != "" {
		cidr, err := net.NormalizeNetwork("ipv6_network", ipv6Network, 6)
		if err != nil {
			return nil, err
		}
		payload["ipv6_network"] = cidr
	}
	meta, err := create(ctx, s, KindNetwork, payload)
	if err != nil {
		return nil, err
	}
	return &Network{Element: elements.ElementFromMeta(s, meta)}, nil
}

func (n *Network) IPv4Network(ctx context.Context) (string, error) {
	data, err := n.Data(ctx)
	if err != nil {
		return "", err
	}
	return data.String("ipv4_network"), nil
}
