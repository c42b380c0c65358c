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

package client

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/apiconfig"
	"github.com/gosmc/libsmc-go/lib/backend/api"
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/backend/rest"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/logutils"
	"github.com/gosmc/libsmc-go/lib/resources"
)

// Client is the entry point of the library. It owns the connection to the
// management server and the registry used to build typed elements.
type Client struct {
	config  apiconfig.SMCAPIConfig
	rest    *rest.RESTClient
	session *elements.Session
}

// New returns a client for the given config. Call Login before using it.
func New(config apiconfig.SMCAPIConfig) (*Client, error) {
	config.UpdateWithDefaults()
	if err := apiconfig.Validate(&config); err != nil {
		return nil, err
	}
	logutils.ConfigureLogging(config.Spec.LogLevel)

	be, err := rest.NewRESTClient(&config.Spec)
	if err != nil {
		return nil, err
	}
	return &Client{
		config:  config,
		rest:    be,
		session: &elements.Session{Backend: be, Registry: resources.DefaultRegistry()},
	}, nil
}

// NewFromConfigFile loads the config from filename, or from the environment
// if filename is empty, and returns a client for it.
func NewFromConfigFile(filename string) (*Client, error) {
	config, err := apiconfig.LoadClientConfig(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load client config")
	}
	return New(*config)
}

// NewWithBackend returns a client using an existing backend. Login and Logout
// are no-ops for such a client.
func NewWithBackend(backend api.Client, registry *elements.Registry) *Client {
	if registry == nil {
		registry = resources.DefaultRegistry()
	}
	return &Client{session: &elements.Session{Backend: backend, Registry: registry}}
}

func (c *Client) Login(ctx context.Context) error {
	if c.rest == nil {
		return nil
	}
	log.WithField("url", c.config.Spec.URL).Debug("Logging in")
	if err := c.rest.Login(ctx); err != nil {
		return errors.Wrapf(err, "login to %s failed", c.config.Spec.URL)
	}
	return nil
}

func (c *Client) Logout(ctx context.Context) error {
	if c.rest == nil {
		return nil
	}
	return c.rest.Logout(ctx)
}

func (c *Client) Backend() api.Client {
	return c.session.Backend
}

func (c *Client) Registry() *elements.Registry {
	return c.session.Registry
}

func (c *Client) Session() *elements.Session {
	return c.session
}

// Element returns the element of kind known by name. Nothing is sent to the
// server until the element is used.
func (c *Client) Element(kind, name string) elements.Resource {
	return elements.FromMeta(c.session, model.Meta{Name: name, Type: kind})
}

// FromHref returns the element at href, typed from its self link.
func (c *Client) FromHref(ctx context.Context, href string) (elements.Resource, error) {
	return elements.ElementFactory(ctx, c.session, href)
}

func (c *Client) FromMeta(meta model.Meta) elements.Resource {
	return elements.FromMeta(c.session, meta)
}

// Search returns the elements whose name contains name. An empty kind
// searches every kind.
func (c *Client) Search(ctx context.Context, kind, name string) ([]elements.Resource, error) {
	metas, err := c.session.Backend.Search(ctx, model.SearchFilter{Name: name, Kind: kind})
	if err != nil {
		return nil, err
	}
	out := make([]elements.Resource, 0, len(metas))
	for _, m := range metas {
		out = append(out, elements.FromMeta(c.session, m))
	}
	return out, nil
}

// Kinds returns the element kinds starting with prefix. Once logged in these
// are the server's entry points, otherwise the registered kinds.
func (c *Client) Kinds(prefix string) []string {
	var kinds []string
	if c.rest != nil {
		for _, l := range c.rest.EntryPoints(prefix) {
			kinds = append(kinds, l.Rel)
		}
		if len(kinds) > 0 {
			return kinds
		}
	}
	for _, k := range c.session.Registry.Kinds() {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (c *Client) Host(name string) *resources.Host {
	return resources.NewHost(c.session, name)
}

func (c *Client) Network(name string) *resources.Network {
	return resources.NewNetwork(c.session, name)
}

func (c *Client) Category(name string) *resources.Category {
	return resources.NewCategory(c.session, name)
}

func (c *Client) CategoryTag(name string) *resources.CategoryTag {
	return resources.NewCategoryTag(c.session, name)
}

func (c *Client) Location(name string) *resources.Location {
	return resources.NewLocation(c.session, name)
}
