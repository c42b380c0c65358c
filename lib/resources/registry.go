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
)

// Element kind tags as used by the management server.
const (
	KindHost             = "host"
	KindNetwork          = "network"
	KindCategory         = "category_tag"
	KindCategoryTag      = "category_group_tag"
	KindLocation         = "location"
	KindLogicalInterface = "logical_interface"
	KindAdminDomain      = "admin_domain"
	KindMacAddress       = "mac_address"
	KindAdminUser        = "admin_user"
	KindAPIClient        = "api_client"
)

// NodeKinds are the kinds of engine node. Nodes have no entry point of their
// own and are reached through their engine.
var NodeKinds = []string{
	"firewall_node",
	"layer2_firewall_node",
	"ips_node",
	"virtual_fw_node",
	"master_node",
}

// DefaultRegistry returns a registry with every kind this package models.
// Other kinds resolve to a generic element.
func DefaultRegistry() *elements.Registry {
	r := elements.NewRegistry().
		Register(KindHost, newHost).
		Register(KindNetwork, newNetwork).
		Register(KindCategory, newCategory).
		Register(KindCategoryTag, newCategoryTag).
		Register(KindLocation, newLocation).
		Register(KindLogicalInterface, newLogicalInterface).
		Register(KindAdminDomain, newAdminDomain).
		Register(KindMacAddress, newMacAddress).
		Register(KindAdminUser, newAdminUser).
		Register(KindAPIClient, newAPIClient)
	for _, k := range NodeKinds {
		r.Register(k, newNode)
	}
	return r
}

// create sends payload to the entry point of kind and returns the identity of
// the new element. Empty comments are left out.
func create(ctx context.Context, s *elements.Session, kind string, payload map[string]interface{}) (model.Meta, error) {
	if c, ok := payload["comment"].(string); ok && c == "" {
		delete(payload, "comment")
	}
	href, err := elements.ElementCreator(ctx, s, kind, payload)
	if err != nil {
		return model.Meta{}, err
	}
	name, _ := payload["name"].(string)
	return model.Meta{Name: name, Href: href, Type: kind}, nil
}

// fromHrefs builds elements from a list of hrefs held in the payload.
func fromHrefs(ctx context.Context, s *elements.Session, hrefs []string) ([]elements.Resource, error) {
	out := make([]elements.Resource, 0, len(hrefs))
	for _, href := range hrefs {
		r, err := elements.ElementFactory(ctx, s, href)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func fromMetas(s *elements.Session, metas []model.Meta) []elements.Resource {
	out := make([]elements.Resource, 0, len(metas))
	for _, m := range metas {
		out = append(out, elements.FromMeta(s, m))
	}
	return out
}
