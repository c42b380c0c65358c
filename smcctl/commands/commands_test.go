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

package commands

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/client"
	"github.com/gosmc/libsmc-go/lib/resources"
	"github.com/gosmc/libsmc-go/lib/testutils"
)

var _ = Describe("smcctl", func() {
	var (
		fake     *testutils.FakeBackend
		out      *bytes.Buffer
		saved    func(*globalOptions) (*client.Client, error)
		hostHref string
	)

	BeforeEach(func() {
		fake = testutils.NewFakeBackend()
		hostHref = fake.AddElement(resources.KindHost, model.Payload{"name": "kali", "address": "1.1.1.1", "comment": "lab"})
		out = &bytes.Buffer{}
		saved = clientFactory
		clientFactory = func(*globalOptions) (*client.Client, error) {
			return client.NewWithBackend(fake, nil), nil
		}
	})

	AfterEach(func() {
		clientFactory = saved
	})

	run := func(args ...string) error {
		cmd := NewRootCommand(out)
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		return cmd.Execute()
	}

	It("should print an element as a table", func() {
		Expect(run("get", "host", "kali")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("NAME"))
		Expect(out.String()).To(ContainSubstring(hostHref))
		Expect(out.String()).To(ContainSubstring("lab"))
	})

	It("should print an element as yaml", func() {
		Expect(run("get", "-o", "yaml", "host", "kali")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("address: 1.1.1.1"))
	})

	It("should print an element as json", func() {
		Expect(run("get", "-o", "json", "host", "kali")).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`"address": "1.1.1.1"`))
	})

	It("should print several elements in argument order", func() {
		fake.AddElement(resources.KindHost, model.Payload{"name": "zeta", "comment": "last"})
		Expect(run("get", "-o", "json", "host", "zeta", "kali")).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`"address": "1.1.1.1"`))
		Expect(strings.Index(out.String(), `"name": "zeta"`)).To(BeNumerically("<", strings.Index(out.String(), `"name": "kali"`)))
	})

	It("should fail if any of several elements is missing", func() {
		err := run("get", "host", "kali", "nope")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("error getting host nope"))
	})

	It("should reject an unknown output format", func() {
		Expect(run("get", "-o", "wide", "host", "kali")).To(MatchError("unrecognized output format: wide"))
	})

	It("should fail to get a missing element", func() {
		err := run("get", "host", "nope")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("error getting host nope"))
	})

	It("should set the comment of an element", func() {
		Expect(run("comment", "host", "kali", "updated")).To(Succeed())
		Expect(fake.Stored(hostHref).String("comment")).To(Equal("updated"))
	})

	It("should rename an element", func() {
		Expect(run("rename", "host", "kali", "kali2")).To(Succeed())
		Expect(fake.Stored(hostHref).String("name")).To(Equal("kali2"))
		Expect(out.String()).To(Equal("Renamed host kali to kali2\n"))
	})

	It("should delete an element", func() {
		Expect(run("delete", "host", "kali")).To(Succeed())
		Expect(fake.Stored(hostHref)).To(BeNil())
	})

	It("should list partial name matches", func() {
		fake.AddElement(resources.KindHost, model.Payload{"name": "kalimera"})
		fake.AddElement(resources.KindNetwork, model.Payload{"name": "other"})
		Expect(run("search", "kali")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("kalimera"))
		Expect(out.String()).NotTo(ContainSubstring("other"))
	})

	It("should report unsupported export", func() {
		Expect(run("export", "host", "kali", "kali.zip")).To(Succeed())
		Expect(out.String()).To(Equal("host kali does not support export\n"))
	})

	It("should list registered kinds", func() {
		Expect(run("kinds", "category")).To(Succeed())
		Expect(out.String()).To(Equal(fmt.Sprintf("%s\n%s\n", resources.KindCategoryTag, resources.KindCategory)))
	})

	It("should wrap configuration errors", func() {
		clientFactory = saved
		err := run("--config", "/does/not/exist.yaml", "kinds")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("error loading connection configuration"))
	})
})
