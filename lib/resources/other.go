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

// Location identifies elements that sit behind the same NAT device.
type Location struct {
	*elements.Element
}

func NewLocation(s *elements.Session, name string) *Location {
	return &Location{Element: elements.NewElement(s, KindLocation, name)}
}

func newLocation(s *elements.Session, meta model.Meta) elements.Resource {
	return &Location{Element: elements.ElementFromMeta(s, meta)}
}

func CreateLocation(ctx context.Context, s *elements.Session, name, comment string) (*Location, error) {
	meta, err := create(ctx, s, KindLocation, map[string]interface{}{"name": name, "comment": comment})
	if err != nil {
		return nil, err
	}
	return &Location{Element: elements.ElementFromMeta(s, meta)}, nil
}

// UsedOn returns the NATed elements using this location.
func (l *Location) UsedOn(ctx context.Context) ([]elements.Resource, error) {
	resp, err := l.ResourceGet(ctx, "search_nated_elements_from_location")
	if err != nil {
		return nil, err
	}
	return fromMetas(l.Session(), resp.Metas()), nil
}

// LogicalInterface is assigned to inline and capture interfaces.
type LogicalInterface struct {
	*elements.Element
}

func NewLogicalInterface(s *elements.Session, name string) *LogicalInterface {
	return &LogicalInterface{Element: elements.NewElement(s, KindLogicalInterface, name)}
}

func newLogicalInterface(s *elements.Session, meta model.Meta) elements.Resource {
	return &LogicalInterface{Element: elements.ElementFromMeta(s, meta)}
}

func CreateLogicalInterface(ctx context.Context, s *elements.Session, name, comment string) (*LogicalInterface, error) {
	meta, err := create(ctx, s, KindLogicalInterface, map[string]interface{}{"name": name, "comment": comment})
	if err != nil {
		return nil, err
	}
	return &LogicalInterface{Element: elements.ElementFromMeta(s, meta)}, nil
}

type AdminDomain struct {
	*elements.Element
}

func NewAdminDomain(s *elements.Session, name string) *AdminDomain {
	return &AdminDomain{Element: elements.NewElement(s, KindAdminDomain, name)}
}

func newAdminDomain(s *elements.Session, meta model.Meta) elements.Resource {
	return &AdminDomain{Element: elements.ElementFromMeta(s, meta)}
}

func CreateAdminDomain(ctx context.Context, s *elements.Session, name, comment string) (*AdminDomain, error) {
	meta, err := create(ctx, s, KindAdminDomain, map[string]interface{}{"name": name, "comment": comment})
	if err != nil {
		return nil, err
	}
	return &AdminDomain{Element: elements.ElementFromMeta(s, meta)}, nil
}

type MacAddress struct {
	*elements.Element
}

func NewMacAddress(s *elements.Session, name string) *MacAddress {
	return &MacAddress{Element: elements.NewElement(s, KindMacAddress, name)}
}

func newMacAddress(s *elements.Session, meta model.Meta) elements.Resource {
	return &MacAddress{Element: elements.ElementFromMeta(s, meta)}
}

func CreateMacAddress(ctx context.Context, s *elements.Session, name, mac, comment string) (*MacAddress, error) {
	meta, err := create(ctx, s, KindMacAddress, map[string]interface{}{
		"name":    name,
		"address": mac,
		"comment": comment,
	})
	if err != nil {
		return nil, err
	}
	return &MacAddress{Element: elements.ElementFromMeta(s, meta)}, nil
}
