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
	"fmt"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/api"
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/options"
)

// Session is what an element needs to reach the server and to build other
// elements from the links it follows.
type Session struct {
	Backend  api.Client
	Registry *Registry
}

// Identifiable is implemented by anything with an addressable identity.
type Identifiable interface {
	Name() string
	Kind() string
	Meta() model.Meta
	Href(ctx context.Context) (string, error)
}

// Cacheable is implemented by elements holding a lazily fetched payload.
type Cacheable interface {
	Data(ctx context.Context) (model.Payload, error)
	Etag(ctx context.Context) (string, error)
	Cache() *Cache
}

// Mutable is implemented by elements that can be changed on the server.
type Mutable interface {
	Update(ctx context.Context, opts options.UpdateOptions) (string, error)
	ModifyAttribute(ctx context.Context, fields map[string]interface{}, opts options.ModifyOptions) error
	Delete(ctx context.Context, opts options.DeleteOptions) error
}

// Resource is the local representation of a remote element.
type Resource interface {
	Identifiable
	Cacheable
	Mutable
	Base() *ElementBase
}

// ElementBase owns the identity, cache and link table of an element and
// implements the generic read, update and delete operations. It is embedded
// by Element and SubElement.
type ElementBase struct {
	session  *Session
	name     string
	kind     string
	meta     model.Meta
	locator  Locator
	cache    *Cache
	resource *ElementResource
	deleted  bool
}

func newElementBase(s *Session, meta model.Meta, locator Locator) *ElementBase {
	if s == nil {
		s = &Session{}
	}
	b := &ElementBase{
		session: s,
		name:    meta.Name,
		kind:    meta.Type,
		meta:    meta,
		locator: locator,
	}
	b.cache = newCache(b)
	return b
}

func (b *ElementBase) Base() *ElementBase {
	return b
}

func (b *ElementBase) Session() *Session {
	return b.session
}

func (b *ElementBase) Name() string {
	return b.name
}

// Kind returns the element kind tag, empty if the kind is not known.
func (b *ElementBase) Kind() string {
	return b.kind
}

// Meta returns the identity known so far. Href is empty until resolved.
func (b *ElementBase) Meta() model.Meta {
	return b.meta
}

// Deleted returns true once the remote element was deleted through this
// instance.
func (b *ElementBase) Deleted() bool {
	return b.deleted
}

// Href returns the href of the element, resolving it through the locator on
// first use.
func (b *ElementBase) Href(ctx context.Context) (string, error) {
	if b.deleted {
		return "", errors.ErrorElementNotFound{
			Name:   b.name,
			Kind:   b.kind,
			Reason: fmt.Sprintf("element %s was deleted", b),
		}
	}
	if b.meta.Href != "" {
		return b.meta.Href, nil
	}
	if b.locator == nil {
		return "", errors.ErrorElementNotFound{
			Name:   b.name,
			Kind:   b.kind,
			Reason: fmt.Sprintf("type %s is not directly addressable and has no known href", b),
		}
	}
	return b.locator.Locate(ctx, b)
}

// bindMeta records a resolved identity. The href is only ever set once.
func (b *ElementBase) bindMeta(meta model.Meta) {
	if b.meta.Href != "" {
		return
	}
	if meta.Type == "" {
		meta.Type = b.kind
	}
	if meta.Name == "" {
		meta.Name = b.name
	}
	b.meta = meta
	if b.kind == "" {
		b.kind = meta.Type
	}
}

func (b *ElementBase) Cache() *Cache {
	return b.cache
}

// Data returns the payload of the element, fetching it on first use.
func (b *ElementBase) Data(ctx context.Context) (model.Payload, error) {
	return b.cache.Data(ctx)
}

// Etag returns the most recently observed version token.
func (b *ElementBase) Etag(ctx context.Context) (string, error) {
	return b.cache.Etag(ctx)
}

// Resource returns the link table of the element, fetching the payload on
// first use.
func (b *ElementBase) Resource(ctx context.Context) (*ElementResource, error) {
	if _, _, err := b.cache.Get(ctx, false); err != nil {
		return nil, err
	}
	return b.resource, nil
}

// ResourceHref returns the href of the named relation.
func (b *ElementBase) ResourceHref(ctx context.Context, rel string) (string, error) {
	r, err := b.Resource(ctx)
	if err != nil {
		return "", err
	}
	return r.Get(rel)
}

// ResourceGet reads a linked resource. The argument is either a relation name
// from the link table or a full href.
func (b *ElementBase) ResourceGet(ctx context.Context, relOrHref string) (*model.Response, error) {
	href := relOrHref
	if !strings.HasPrefix(relOrHref, "http") {
		var err error
		if href, err = b.ResourceHref(ctx, relOrHref); err != nil {
			return nil, err
		}
	}
	resp, err := b.session.Backend.Fetch(ctx, href)
	if err != nil {
		return nil, failWith(err, fetchFailed)
	}
	return resp, nil
}

// ResourceCreate POSTs to a linked resource, given as a relation name or a
// full href. A rejected request is reported through wrap, or as
// ErrorActionCommandFailed when wrap is nil. A missing relation returns
// ErrorResourceLinkMissing without contacting the server.
func (b *ElementBase) ResourceCreate(ctx context.Context, relOrHref string, payload interface{}, params map[string]string, wrap options.FailureWrapper) (*model.Response, error) {
	href := relOrHref
	if !strings.HasPrefix(relOrHref, "http") {
		var err error
		if href, err = b.ResourceHref(ctx, relOrHref); err != nil {
			return nil, err
		}
	}
	if wrap == nil {
		wrap = actionFailed
	}
	resp, err := b.session.Backend.Create(ctx, href, payload, params)
	if err != nil {
		log.WithFields(log.Fields{"element": b.String(), "href": href}).WithError(err).Debug("Action failed")
		return nil, failWith(err, wrap)
	}
	return resp, nil
}

// ResourceName reads the element at href and returns its name.
func (b *ElementBase) ResourceName(ctx context.Context, href string) (string, error) {
	resp, err := b.session.Backend.Fetch(ctx, href)
	if err != nil {
		return "", failWith(err, fetchFailed)
	}
	return resp.Payload.String("name"), nil
}

// AttrByName returns the named field of the payload. The boolean is false if
// the field does not exist.
func (b *ElementBase) AttrByName(ctx context.Context, attr string) (interface{}, bool, error) {
	data, err := b.Data(ctx)
	if err != nil {
		return nil, false, err
	}
	v, ok := data[attr]
	return v, ok, nil
}

// Delete deletes the element on the server using the last observed version
// token as a precondition. On success the instance can no longer be used.
func (b *ElementBase) Delete(ctx context.Context, opts options.DeleteOptions) error {
	href, err := b.Href(ctx)
	if err != nil {
		return err
	}
	etag := opts.Etag
	if etag == "" {
		if etag, err = b.Etag(ctx); err != nil {
			return err
		}
	}

	logCxt := log.WithFields(log.Fields{"href": href, "etag": etag})
	if _, err := b.session.Backend.Delete(ctx, href, etag); err != nil {
		logCxt.WithError(err).Debug("Delete failed")
		return failWith(err, deleteFailed)
	}
	logCxt.Debug("Element deleted")
	b.cache.Invalidate()
	b.deleted = true
	return nil
}

// Update sends the element to the server. Unset options default to the
// element's href, a deep copy of its cached payload and its last observed
// version token. The cache is invalidated only once the server accepts the
// update; a rejected update leaves it untouched. Returns the href of the
// updated element.
func (b *ElementBase) Update(ctx context.Context, opts options.UpdateOptions) (string, error) {
	var err error
	href := opts.Href
	if href == "" {
		if href, err = b.Href(ctx); err != nil {
			return "", err
		}
	}
	payload := opts.Payload
	if payload == nil {
		data, err := b.Data(ctx)
		if err != nil {
			return "", err
		}
		payload = data.DeepCopy()
	}
	etag := opts.Etag
	if etag == "" {
		if etag, err = b.Etag(ctx); err != nil {
			return "", err
		}
	}
	wrap := opts.FailWith
	if wrap == nil {
		wrap = updateFailed
	}

	logCxt := log.WithFields(log.Fields{"href": href, "etag": etag})
	resp, err := b.session.Backend.Update(ctx, withQuery(href, opts.Params), payload, etag)
	if err != nil {
		logCxt.WithError(err).Debug("Update failed")
		return "", failWith(err, wrap)
	}
	logCxt.Debug("Element updated")
	b.cache.Invalidate()
	if resp != nil && resp.Href != "" {
		return resp.Href, nil
	}
	return href, nil
}

// ModifyAttribute merges fields into a copy of the payload and updates the
// element. System elements are refused without contacting the server.
func (b *ElementBase) ModifyAttribute(ctx context.Context, fields map[string]interface{}, opts options.ModifyOptions) error {
	data, err := b.Data(ctx)
	if err != nil {
		return err
	}
	if data.IsSystem() {
		return errors.ErrorModificationForbidden{Name: b.name}
	}
	merged := data.DeepCopy()
	model.MergePayload(merged, fields, opts.AppendLists)
	_, err = b.Update(ctx, options.UpdateOptions{Payload: merged, FailWith: opts.FailWith})
	return err
}

// withQuery appends params to href as query parameters.
func withQuery(href string, params map[string]string) string {
	if len(params) == 0 {
		return href
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	sep := "?"
	if strings.Contains(href, "?") {
		sep = "&"
	}
	return href + sep + q.Encode()
}

func (b *ElementBase) String() string {
	if b.kind == "" {
		return fmt.Sprintf("Element(name=%s)", b.name)
	}
	return fmt.Sprintf("%s(name=%s)", b.kind, b.name)
}
