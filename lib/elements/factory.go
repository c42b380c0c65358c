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
	"github.com/gosmc/libsmc-go/lib/errors"
)

// ElementCreator creates an element of the given kind from payload and
// returns the href of the new element. Creation is not idempotent so it is
// never retried.
func ElementCreator(ctx context.Context, s *Session, kind string, payload interface{}) (string, error) {
	href, err := s.Backend.EntryPoint(ctx, kind)
	if err != nil {
		return "", failWith(err, createFailed)
	}
	resp, err := s.Backend.Create(ctx, href, payload, nil)
	if err != nil {
		log.WithFields(log.Fields{"kind": kind, "href": href}).WithError(err).Debug("Create failed")
		return "", failWith(err, createFailed)
	}
	return resp.Href, nil
}

// ElementFactory returns the element at href without the caller knowing its
// kind. The kind is read from the self link of the fetched payload and looked
// up in the session registry. The returned element is already populated with
// the fetched payload and version token.
func ElementFactory(ctx context.Context, s *Session, href string) (Resource, error) {
	resp, err := s.Backend.Fetch(ctx, href)
	if err != nil {
		return nil, failWith(err, fetchFailed)
	}
	countFetch()
	if resp.Payload == nil {
		return nil, errors.ErrorFetchElementFailed{Failure: &errors.ErrorOperationFailure{
			Code:    resp.Code,
			Message: "no element data returned for " + href,
		}}
	}
	kind, err := model.FindTypeFromSelf(resp.Payload.Links())
	if err != nil {
		return nil, err
	}

	r := s.Registry.Lookup(kind)(s, model.Meta{
		Name: resp.Payload.String("name"),
		Href: href,
		Type: kind,
	})
	r.Cache().Seed(resp.Payload, resp.Etag)
	return r, nil
}

// FromMeta returns the local representation of an identity without
// contacting the server.
func FromMeta(s *Session, meta model.Meta) Resource {
	return s.Registry.Lookup(meta.Type)(s, meta)
}
