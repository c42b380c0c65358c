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

package testutils

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/gosmc/libsmc-go/lib/backend/api"
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
)

const DefaultBaseURL = "http://smc.example:8082/6.10"

// Names of the operations counted by FakeBackend.
const (
	OpFetch      = "fetch"
	OpCreate     = "create"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpSearch     = "search"
	OpEntryPoint = "entrypoint"
)

// ActionHandler serves a POST or PUT to an action link registered on a
// FakeBackend. Query parameters of the request are passed as params.
type ActionHandler func(payload interface{}, params map[string]string) (*model.Response, error)

// Call records the arguments of a write made against a FakeBackend.
type Call struct {
	Href    string
	Payload interface{}
	Etag    string
	Params  map[string]string
}

type fakeElement struct {
	kind     string
	payload  model.Payload
	revision int
}

// FakeBackend is an in-memory management server implementing api.Client. Each
// stored element has a version token that changes on every write, writes
// with a stale token are rejected, and elements with dependents cannot be
// deleted. All calls are counted.
type FakeBackend struct {
	BaseURL string

	lock       sync.Mutex
	elements   map[string]*fakeElement
	dependents map[string][]string
	actions    map[string]ActionHandler
	relActions map[string]ActionHandler
	kindRels   map[string][]string
	failNext   map[string]error
	calls      map[string]int
	nextID     int

	Updates []Call
	Deletes []Call
	Creates []Call
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		BaseURL:    DefaultBaseURL,
		elements:   map[string]*fakeElement{},
		dependents: map[string][]string{},
		actions:    map[string]ActionHandler{},
		relActions: map[string]ActionHandler{},
		kindRels:   map[string][]string{},
		failNext:   map[string]error{},
		calls:      map[string]int{},
		nextID:     1,
	}
}

var _ api.Client = (*FakeBackend)(nil)

// AddElement stores an element of kind and returns its href. A self link is
// added to the payload along with any extra relations given.
func (f *FakeBackend) AddElement(kind string, payload model.Payload, rels ...string) string {
	f.lock.Lock()
	id := f.nextID
	f.nextID++
	f.lock.Unlock()
	href := fmt.Sprintf("%s/elements/%s/%d", f.BaseURL, kind, id)
	f.AddElementAt(href, kind, payload, rels...)
	return href
}

// AddElementAt stores an element at a fixed href. Without explicit
// relations the defaults set with SetKindRels are used.
func (f *FakeBackend) AddElementAt(href, kind string, payload model.Payload, rels ...string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if len(rels) == 0 {
		rels = f.kindRels[kind]
	}
	p := payload.DeepCopy()
	if p == nil {
		p = model.Payload{}
	}
	links := []interface{}{
		map[string]interface{}{"rel": "self", "href": href, "type": kind},
	}
	for _, rel := range rels {
		links = append(links, map[string]interface{}{"rel": rel, "href": href + "/" + rel})
	}
	p["link"] = links
	f.elements[href] = &fakeElement{kind: kind, payload: p, revision: 1}
}

// HandleAction registers a handler for POSTs to href.
func (f *FakeBackend) HandleAction(href string, h ActionHandler) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.actions[href] = h
}

// HandleRel registers a handler for the relation rel of every element.
// Handlers registered with HandleAction take precedence.
func (f *FakeBackend) HandleRel(rel string, h ActionHandler) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.relActions[rel] = h
}

// SetKindRels sets the relations added to elements of kind, including those
// created through the entry point.
func (f *FakeBackend) SetKindRels(kind string, rels ...string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.kindRels[kind] = rels
}

// AddDependent marks href as referenced by another element, which makes
// deleting it fail.
func (f *FakeBackend) AddDependent(href, by string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.dependents[href] = append(f.dependents[href], by)
}

// Touch simulates another client modifying the element, changing its version
// token.
func (f *FakeBackend) Touch(href string, fields model.Payload) {
	f.lock.Lock()
	defer f.lock.Unlock()
	e := f.elements[href]
	model.MergePayload(e.payload, fields, false)
	e.revision++
}

// FailNext makes the next call of op return err.
func (f *FakeBackend) FailNext(op string, err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.failNext[op] = err
}

// Calls returns how many times op was called.
func (f *FakeBackend) Calls(op string) int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.calls[op]
}

// TotalCalls returns the number of calls of any kind.
func (f *FakeBackend) TotalCalls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *FakeBackend) ResetCalls() {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = map[string]int{}
	f.Updates = nil
	f.Deletes = nil
	f.Creates = nil
}

// Stored returns a copy of the stored payload at href, nil if absent.
func (f *FakeBackend) Stored(href string) model.Payload {
	f.lock.Lock()
	defer f.lock.Unlock()
	if e, ok := f.elements[href]; ok {
		return e.payload.DeepCopy()
	}
	return nil
}

// EtagOf returns the current version token of the element at href.
func (f *FakeBackend) EtagOf(href string) string {
	f.lock.Lock()
	defer f.lock.Unlock()
	if e, ok := f.elements[href]; ok {
		return etag(e)
	}
	return ""
}

func (f *FakeBackend) Fetch(ctx context.Context, href string) (*model.Response, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.begin(OpFetch); err != nil {
		return nil, err
	}
	if e, ok := f.elements[href]; ok {
		return &model.Response{Code: http.StatusOK, Href: href, Etag: etag(e), Payload: e.payload.DeepCopy()}, nil
	}
	if h := f.action(href); h != nil {
		return h(nil, nil)
	}
	return nil, notFound(href)
}

func (f *FakeBackend) Create(ctx context.Context, href string, payload interface{}, params map[string]string) (*model.Response, error) {
	f.lock.Lock()
	if err := f.begin(OpCreate); err != nil {
		f.lock.Unlock()
		return nil, err
	}
	f.Creates = append(f.Creates, Call{Href: href, Payload: payload, Params: params})
	if h := f.action(href); h != nil {
		f.lock.Unlock()
		return h(payload, params)
	}
	prefix := f.BaseURL + "/elements/"
	if !strings.HasPrefix(href, prefix) || strings.Contains(strings.TrimPrefix(href, prefix), "/") {
		f.lock.Unlock()
		return nil, notFound(href)
	}
	kind := strings.TrimPrefix(href, prefix)
	p, _ := payload.(map[string]interface{})
	if pp, ok := payload.(model.Payload); ok {
		p = pp
	}
	name, _ := p["name"].(string)
	if name == "" {
		f.lock.Unlock()
		return nil, &errors.ErrorOperationFailure{
			Code:    http.StatusBadRequest,
			Status:  "0",
			Message: "Impossible to store the element",
			Details: "name is mandatory",
		}
	}
	for _, e := range f.elements {
		if e.kind == kind && e.payload.String("name") == name {
			f.lock.Unlock()
			return nil, &errors.ErrorOperationFailure{
				Code:    http.StatusBadRequest,
				Message: "Impossible to store the element " + name,
				Details: "Element name " + name + " is already used.",
			}
		}
	}
	f.lock.Unlock()

	newHref := f.AddElement(kind, p)
	return &model.Response{Code: http.StatusCreated, Href: newHref}, nil
}

func (f *FakeBackend) Update(ctx context.Context, href string, payload interface{}, etagIn string) (*model.Response, error) {
	f.lock.Lock()
	if err := f.begin(OpUpdate); err != nil {
		f.lock.Unlock()
		return nil, err
	}
	target, params := splitQuery(href)
	f.Updates = append(f.Updates, Call{Href: target, Payload: payload, Etag: etagIn, Params: params})
	e, ok := f.elements[target]
	if !ok {
		h := f.action(target)
		f.lock.Unlock()
		if h != nil {
			return h(payload, params)
		}
		return nil, notFound(target)
	}
	defer f.lock.Unlock()
	if etagIn != etag(e) {
		return nil, conflict(target)
	}
	var p model.Payload
	switch t := payload.(type) {
	case model.Payload:
		p = t.DeepCopy()
	case map[string]interface{}:
		p = model.Payload(t).DeepCopy()
	default:
		return nil, &errors.ErrorOperationFailure{Code: http.StatusBadRequest, Message: "invalid payload"}
	}
	e.payload = p
	e.revision++
	return &model.Response{Code: http.StatusOK, Href: target, Etag: etag(e)}, nil
}

func (f *FakeBackend) Delete(ctx context.Context, href string, etagIn string) (*model.Response, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.begin(OpDelete); err != nil {
		return nil, err
	}
	f.Deletes = append(f.Deletes, Call{Href: href, Etag: etagIn})
	e, ok := f.elements[href]
	if !ok {
		return nil, notFound(href)
	}
	if etagIn != "" && etagIn != etag(e) {
		return nil, conflict(href)
	}
	if deps := f.dependents[href]; len(deps) > 0 {
		return nil, &errors.ErrorOperationFailure{
			Code:    http.StatusBadRequest,
			Message: "Cannot delete the element",
			Details: "The element is referenced by: " + strings.Join(deps, ", "),
		}
	}
	delete(f.elements, href)
	return &model.Response{Code: http.StatusNoContent, Href: href}, nil
}

func (f *FakeBackend) Search(ctx context.Context, filter model.SearchFilter) ([]model.Meta, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.begin(OpSearch); err != nil {
		return nil, err
	}
	metas := []model.Meta{}
	for href, e := range f.elements {
		if filter.Kind != "" && e.kind != filter.Kind {
			continue
		}
		name := e.payload.String("name")
		if filter.ExactMatch && name != filter.Name {
			continue
		}
		if !filter.ExactMatch && !strings.Contains(name, filter.Name) {
			continue
		}
		metas = append(metas, model.Meta{Name: name, Href: href, Type: e.kind})
	}
	return metas, nil
}

func (f *FakeBackend) EntryPoint(ctx context.Context, kind string) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.begin(OpEntryPoint); err != nil {
		return "", err
	}
	return f.BaseURL + "/elements/" + kind, nil
}

// begin counts the call and returns any injected failure. Must be called
// with the lock held.
func (f *FakeBackend) begin(op string) error {
	f.calls[op]++
	if err, ok := f.failNext[op]; ok {
		delete(f.failNext, op)
		return err
	}
	return nil
}

// action returns the handler for href, nil if there is none. Must be called
// with the lock held.
func (f *FakeBackend) action(href string) ActionHandler {
	if h, ok := f.actions[href]; ok {
		return h
	}
	i := strings.LastIndex(href, "/")
	if i < 0 {
		return nil
	}
	if _, ok := f.elements[href[:i]]; !ok {
		return nil
	}
	return f.relActions[href[i+1:]]
}

// splitQuery separates the query parameters from href.
func splitQuery(href string) (string, map[string]string) {
	i := strings.Index(href, "?")
	if i < 0 {
		return href, nil
	}
	values, err := url.ParseQuery(href[i+1:])
	if err != nil {
		return href, nil
	}
	params := map[string]string{}
	for k := range values {
		params[k] = values.Get(k)
	}
	return href[:i], params
}

func etag(e *fakeElement) string {
	return strconv.Itoa(e.revision)
}

func notFound(href string) error {
	return &errors.ErrorOperationFailure{Code: http.StatusNotFound, Message: "Element not found: " + href}
}

func conflict(href string) error {
	return &errors.ErrorOperationFailure{
		Code:    http.StatusPreconditionFailed,
		Message: "The element has been modified by another user",
		Details: href,
	}
}
