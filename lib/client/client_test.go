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

package client_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	pkgerrors "github.com/pkg/errors"

	"github.com/gosmc/libsmc-go/lib/apiconfig"
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/client"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/options"
	"github.com/gosmc/libsmc-go/lib/resources"
	"github.com/gosmc/libsmc-go/lib/testutils"
)

var _ = Describe("Client", func() {
	var (
		ctx  context.Context
		fake *testutils.FakeBackend
		c    *client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		fake = testutils.NewFakeBackend()
		c = client.NewWithBackend(fake, nil)
	})

	It("should reject an invalid config", func() {
		_, err := client.New(*apiconfig.NewSMCAPIConfig())
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorValidation{}))
	})

	It("should build a client from a valid config without contacting the server", func() {
		cfg := apiconfig.NewSMCAPIConfig()
		cfg.Spec.URL = "http://127.0.0.1:1"
		cfg.Spec.APIKey = "k"
		rc, err := client.New(*cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(rc.Registry().Registered(resources.KindHost)).To(BeTrue())
		Expect(rc.Kinds("category")).To(Equal([]string{resources.KindCategoryTag, resources.KindCategory}))
	})

	It("should name the config step when loading fails", func() {
		_, err := client.NewFromConfigFile("/does/not/exist.yaml")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix("failed to load client config: error reading config file /does/not/exist.yaml"))
	})

	It("should name the server when login fails", func() {
		cfg := apiconfig.NewSMCAPIConfig()
		cfg.Spec.URL = "http://127.0.0.1:1"
		cfg.Spec.APIKey = "k"
		rc, err := client.New(*cfg)
		Expect(err).NotTo(HaveOccurred())

		err = rc.Login(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix("login to http://127.0.0.1:1 failed: "))
		Expect(pkgerrors.Cause(err)).To(BeAssignableToTypeOf(errors.ErrorConnection{}))
	})

	It("should treat login as a no-op with an existing backend", func() {
		Expect(c.Login(ctx)).To(Succeed())
		Expect(c.Logout(ctx)).To(Succeed())
		Expect(fake.TotalCalls()).To(Equal(0))
	})

	It("should build typed elements by name", func() {
		fake.AddElement(resources.KindHost, model.Payload{"name": "kali", "address": "1.1.1.1"})

		e := c.Element(resources.KindHost, "kali")
		Expect(e).To(BeAssignableToTypeOf(&resources.Host{}))
		Expect(fake.TotalCalls()).To(Equal(0))

		addr, err := c.Host("kali").Address(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal("1.1.1.1"))
	})

	It("should build elements from an href", func() {
		href := fake.AddElement(resources.KindLocation, model.Payload{"name": "internet"})
		e, err := c.FromHref(ctx, href)
		Expect(err).NotTo(HaveOccurred())
		Expect(e).To(BeAssignableToTypeOf(&resources.Location{}))

		m := c.FromMeta(model.Meta{Name: "internet", Href: href, Type: resources.KindLocation})
		Expect(m.Meta().Href).To(Equal(href))
	})

	It("should search by partial name", func() {
		fake.AddElement(resources.KindHost, model.Payload{"name": "web-1"})
		fake.AddElement(resources.KindHost, model.Payload{"name": "web-2"})
		fake.AddElement(resources.KindNetwork, model.Payload{"name": "web-net"})

		found, err := c.Search(ctx, resources.KindHost, "web")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(HaveLen(2))

		found, err = c.Search(ctx, "", "web")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(HaveLen(3))
	})

	It("should run the full element lifecycle", func() {
		h, err := resources.CreateHost(ctx, c.Session(), resources.HostSpec{Name: "kali", Address: "1.1.1.1"})
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Host("kali").Comment(ctx, "test host")).To(Succeed())
		Expect(fake.Stored(h.Meta().Href).String("comment")).To(Equal("test host"))

		byName := c.Element(resources.KindHost, "kali")
		Expect(byName.Delete(ctx, options.DeleteOptions{})).To(Succeed())
		Expect(fake.Stored(h.Meta().Href)).To(BeNil())

		_, err = byName.Data(ctx)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorElementNotFound{}))
		Expect(byName.Base().Deleted()).To(BeTrue())

		_, err = c.Host("kali").Href(ctx)
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorElementNotFound{}))
	})

	It("should fall back to a generic element", func() {
		e := c.Element("single_fw", "fw")
		Expect(e).To(BeAssignableToTypeOf(&elements.Element{}))
	})
})
