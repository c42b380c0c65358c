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

package net_test

import (
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/net"
)

var _ = DescribeTable("ParseNetwork",
	func(text, expected string, version int) {
		n, err := net.ParseNetwork(text)
		Expect(err).NotTo(HaveOccurred())
		Expect(n.String()).To(Equal(expected))
		Expect(n.Version()).To(Equal(version))
	},
	Entry("IPv4 network", "10.0.0.0/24", "10.0.0.0/24", 4),
	Entry("IPv4 network with host bits", "10.0.0.12/24", "10.0.0.0/24", 4),
	Entry("IPv4 address", "192.168.1.1", "192.168.1.1/32", 4),
	Entry("IPv6 network with host bits", "fd00::1/64", "fd00::/64", 6),
	Entry("IPv6 address", "fd00::1", "fd00::1/128", 6),
)

var _ = DescribeTable("NormalizeAddress",
	func(text string, version int, expected string, valid bool) {
		out, err := net.NormalizeAddress("address", text, version)
		if !valid {
			Expect(err).To(BeAssignableToTypeOf(errors.ErrorValidation{}))
			Expect(err.(errors.ErrorValidation).ErroredFields[0].Name).To(Equal("address"))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(expected))
	},
	Entry("IPv4", "1.2.3.4", 4, "1.2.3.4", true),
	Entry("IPv6 shortened", "fd00:0:0::1", 6, "fd00::1", true),
	Entry("any version", "fd00::1", 0, "fd00::1", true),
	Entry("IPv6 where IPv4 wanted", "fd00::1", 4, "", false),
	Entry("IPv4 where IPv6 wanted", "1.2.3.4", 6, "", false),
	Entry("network is not an address", "1.2.3.0/24", 4, "", false),
	Entry("garbage", "kali", 0, "", false),
)

var _ = DescribeTable("NormalizeNetwork",
	func(text string, version int, expected string, valid bool) {
		out, err := net.NormalizeNetwork("ipv4_network", text, version)
		if !valid {
			Expect(err).To(BeAssignableToTypeOf(errors.ErrorValidation{}))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(expected))
	},
	Entry("IPv4", "172.16.5.9/16", 4, "172.16.0.0/16", true),
	Entry("IPv6", "2001:db8::/32", 6, "2001:db8::/32", true),
	Entry("wrong version", "2001:db8::/32", 4, "", false),
	Entry("bad mask", "10.0.0.0/33", 4, "", false),
)
