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

// Cache holds the version token and raw payload of a single element. It is
// empty until the first data access, and is emptied again by any successful
// write so that the next read returns the server's state.
type Cache struct {
	instance  *ElementBase
	etag      string
	data      model.Payload
	populated bool
}

func newCache(instance *ElementBase) *Cache {
	return &Cache{instance: instance}
}

// Get returns the cached version token and payload, fetching them first if
// the cache is empty or forceRefresh is set.
func (c *Cache) Get(ctx context.Context, forceRefresh bool) (string, model.Payload, error) {
	if c.populated && !forceRefresh {
		return c.etag, c.data, nil
	}
	resp, err := c.fetch(ctx)
	if err != nil {
		return "", nil, err
	}
	c.store(resp.Etag, resp.Payload)
	countFetch()
	return c.etag, c.data, nil
}

// Data returns the cached payload.
func (c *Cache) Data(ctx context.Context) (model.Payload, error) {
	_, data, err := c.Get(ctx, false)
	return data, err
}

// Etag returns the most recently observed version token. A cache seeded with
// a payload but no token performs a read first to obtain one, so that a write
// is never attempted with an unknown token. The seeded payload is kept and
// the read does not count as a fetch.
func (c *Cache) Etag(ctx context.Context) (string, error) {
	etag, _, err := c.Get(ctx, false)
	if err != nil {
		return "", err
	}
	if etag != "" {
		return etag, nil
	}

	resp, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}
	if resp.Etag == "" {
		return "", errors.ErrorFetchElementFailed{Failure: &errors.ErrorOperationFailure{
			Code:    resp.Code,
			Message: "server returned no version token for " + resp.Href,
		}}
	}
	c.etag = resp.Etag
	return c.etag, nil
}

// Seed populates the cache from data obtained elsewhere, for example a fetch
// made by the element factory. The etag may be empty.
func (c *Cache) Seed(data model.Payload, etag string) {
	c.store(etag, data)
}

// Invalidate empties the cache. It does not touch the remote element.
func (c *Cache) Invalidate() {
	c.etag = ""
	c.data = nil
	c.populated = false
	c.instance.resource = nil
}

func (c *Cache) Populated() bool {
	return c.populated
}

func (c *Cache) store(etag string, data model.Payload) {
	if data == nil {
		data = model.Payload{}
	}
	c.etag = etag
	c.data = data
	c.populated = true
	c.instance.resource = newElementResource(data.Links())
}

func (c *Cache) fetch(ctx context.Context) (*model.Response, error) {
	href, err := c.instance.Href(ctx)
	if err != nil {
		return nil, err
	}
	log.WithField("href", href).Debug("Fetching element")
	resp, err := c.instance.session.Backend.Fetch(ctx, href)
	if err != nil {
		return nil, failWith(err, fetchFailed)
	}
	if resp.Href == "" {
		resp.Href = href
	}
	return resp, nil
}
