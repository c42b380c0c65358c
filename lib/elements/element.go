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

package elements

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/options"
)

// Element is an element with its own entry point on the server. It can be
// constructed from a name alone: the href is found with a search filtered by
// the element kind on first use.
type Element struct {
	*ElementBase
}

// NewElement returns an element of the given kind known only by name. Nothing
// is sent to the server until the element is used.
func NewElement(s *Session, kind, name string) *Element {
	return &Element{ElementBase: newElementBase(s, model.Meta{Name: name, Type: kind}, ElementLocator{})}
}

// ElementFromMeta returns an element with a known identity, typically taken
// from a search result.
func ElementFromMeta(s *Session, meta model.Meta) *Element {
	return &Element{ElementBase: newElementBase(s, meta, ElementLocator{})}
}

// Rename changes the name of the element. The href does not change.
func (e *Element) Rename(ctx context.Context, name string) error {
	if err := e.ModifyAttribute(ctx, map[string]interface{}{"name": name}, options.ModifyOptions{}); err != nil {
		return err
	}
	e.name = name
	return nil
}

// Comment sets the comment of the element.
func (e *Element) Comment(ctx context.Context, comment string) error {
	return e.ModifyAttribute(ctx, map[string]interface{}{"comment": comment}, options.ModifyOptions{})
}

// Categories returns the category tags assigned to this element.
func (e *Element) Categories(ctx context.Context) ([]Resource, error) {
	resp, err := e.ResourceGet(ctx, "search_category_tags_from_element")
	if err != nil {
		return nil, err
	}
	return e.fromMetas(resp.Metas()), nil
}

// Export starts an export of the element into filename. Elements without an
// export link, such as system elements, return ActionUnsupported.
func (e *Element) Export(ctx context.Context, filename string) ActionResult {
	r, err := e.Resource(ctx)
	if err != nil {
		return ActionResult{Status: ActionFailed, Err: err}
	}
	if !r.Has("export") {
		log.WithField("element", e.String()).Debug("Element cannot be exported")
		return ActionResult{Status: ActionUnsupported}
	}
	resp, err := e.ResourceCreate(ctx, "export", nil, map[string]string{"filename": filename}, nil)
	if err != nil {
		return ActionResult{Status: ActionFailed, Err: err}
	}
	return ActionResult{Status: ActionOK, Response: resp}
}

// ReferencedBy returns the elements that reference this element, for example
// policy rules or groups it is a member of.
func (e *Element) ReferencedBy(ctx context.Context) ([]Resource, error) {
	self, err := e.Href(ctx)
	if err != nil {
		return nil, err
	}
	href, err := e.session.Backend.EntryPoint(ctx, "references_by_element")
	if err != nil {
		return nil, failWith(err, fetchFailed)
	}
	resp, err := e.session.Backend.Create(ctx, href, map[string]interface{}{"value": self}, nil)
	if err != nil {
		return nil, failWith(err, fetchFailed)
	}
	return e.fromMetas(resp.Metas()), nil
}

func (e *Element) fromMetas(metas []model.Meta) []Resource {
	out := make([]Resource, 0, len(metas))
	for _, m := range metas {
		out = append(out, FromMeta(e.session, m))
	}
	return out
}

// SubElement is an element without its own entry point. It can only be
// obtained by following a link from another element, so its identity must be
// known at construction.
type SubElement struct {
	*ElementBase
}

// NewSubElement returns a reference only element for the given identity.
func NewSubElement(s *Session, meta model.Meta) *SubElement {
	return &SubElement{ElementBase: newElementBase(s, meta, nil)}
}

// Compile-time assertion that the element variants implement Resource.
var _ Resource = (*Element)(nil)
var _ Resource = (*SubElement)(nil)
