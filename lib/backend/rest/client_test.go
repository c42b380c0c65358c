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

package rest

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gosmc/libsmc-go/lib/apiconfig"
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
)

const sessionCookie = "JSESSIONID"

// fakeServer serves the small part of the management API the REST client
// needs: version discovery, login, entry points and one host element.
type fakeServer struct {
	lock       sync.Mutex
	server     *httptest.Server
	loginBody  map[string]string
	requestIDs []string
	lastQuery  map[string]string
	etag       int
	host       map[string]interface{}
	deleted    bool
	loggedOut  bool
}

func newFakeServer() *fakeServer {
	f := &fakeServer{etag: 1, host: map[string]interface{}{"name": "kali", "address": "1.1.1.1"}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *fakeServer) url(path string) string {
	return f.server.URL + path
}

func (f *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.requestIDs = append(f.requestIDs, r.Header.Get("X-Request-ID"))

	writeJSON := func(code int, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	switch r.URL.Path {
	case "/api":
		writeJSON(200, map[string]interface{}{"version": []interface{}{
			map[string]interface{}{"rel": "6.9", "href": f.url("/6.9/api")},
			map[string]interface{}{"rel": "6.10", "href": f.url("/6.10/api")},
			map[string]interface{}{"rel": "6.5", "href": f.url("/6.5/api")},
		}})
		return
	case "/6.10/login", "/6.5/login":
		body, _ := ioutil.ReadAll(r.Body)
		_ = json.Unmarshal(body, &f.loginBody)
		if f.loginBody["authenticationkey"] != "secret" {
			w.WriteHeader(401)
			_, _ = w.Write([]byte("Login failed, invalid credentials"))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "abc", Path: "/"})
		w.WriteHeader(200)
		return
	}

	if c, err := r.Cookie(sessionCookie); err != nil || c.Value != "abc" {
		w.WriteHeader(401)
		return
	}

	switch {
	case r.URL.Path == "/6.10/api" || r.URL.Path == "/6.5/api":
		writeJSON(200, map[string]interface{}{"entry_point": []interface{}{
			map[string]interface{}{"rel": "host", "href": f.url("/6.10/elements/host")},
			map[string]interface{}{"rel": "host_group", "href": f.url("/6.10/elements/host_group")},
			map[string]interface{}{"rel": "network", "href": f.url("/6.10/elements/network")},
			map[string]interface{}{"rel": "elements", "href": f.url("/6.10/elements")},
		}})
	case r.URL.Path == "/6.10/logout" && r.Method == http.MethodPut:
		f.loggedOut = true
		w.WriteHeader(204)
	case r.URL.Path == "/6.10/elements/host" && r.Method == http.MethodGet:
		f.lastQuery = map[string]string{}
		for k := range r.URL.Query() {
			f.lastQuery[k] = r.URL.Query().Get(k)
		}
		result := []interface{}{}
		if r.URL.Query().Get("filter") == "kali" {
			result = append(result, map[string]interface{}{"name": "kali", "href": f.url("/6.10/elements/host/1"), "type": "host"})
		}
		writeJSON(200, map[string]interface{}{"result": result})
	case r.URL.Path == "/6.10/elements/host" && r.Method == http.MethodPost:
		w.Header().Set("Location", f.url("/6.10/elements/host/2"))
		w.WriteHeader(201)
	case r.URL.Path == "/6.10/elements/host/1":
		f.serveHost(w, r, writeJSON)
	case r.URL.Path == "/6.10/elements/host/1/change_password" && r.Method == http.MethodPut:
		f.lastQuery = map[string]string{}
		for k := range r.URL.Query() {
			f.lastQuery[k] = r.URL.Query().Get(k)
		}
		w.WriteHeader(200)
	case r.URL.Path == "/6.10/elements/host/9":
		w.WriteHeader(500)
	default:
		writeJSON(404, map[string]interface{}{"status": 0, "message": "Element not found", "details": []interface{}{"no such path", r.URL.Path}})
	}
}

func (f *fakeServer) serveHost(w http.ResponseWriter, r *http.Request, writeJSON func(int, interface{})) {
	if f.deleted {
		writeJSON(404, map[string]interface{}{"message": "Element not found"})
		return
	}
	current := strconv.Itoa(f.etag)
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("ETag", current)
		writeJSON(200, f.host)
	case http.MethodPut, http.MethodDelete:
		if r.Header.Get("If-Match") != current {
			writeJSON(412, map[string]interface{}{
				"status":  "0",
				"message": "Impossible to update the element kali.",
				"details": "ETag does not match, element has been modified by another user.",
			})
			return
		}
		if r.Method == http.MethodDelete {
			f.deleted = true
			w.WriteHeader(204)
			return
		}
		body, _ := ioutil.ReadAll(r.Body)
		_ = json.Unmarshal(body, &f.host)
		f.etag++
		w.Header().Set("ETag", strconv.Itoa(f.etag))
		w.WriteHeader(200)
	}
}

var _ = Describe("RESTClient", func() {
	var (
		ctx    context.Context
		server *fakeServer
		client *RESTClient
		config *apiconfig.SMCAPIConfigSpec
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = newFakeServer()
		config = &apiconfig.SMCAPIConfigSpec{URL: server.server.URL, APIKey: "secret"}
	})

	JustBeforeEach(func() {
		var err error
		client, err = NewRESTClient(config)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.server.Close()
	})

	It("should require a URL", func() {
		_, err := NewRESTClient(&apiconfig.SMCAPIConfigSpec{})
		Expect(err).To(HaveOccurred())
	})

	It("should refuse lookups before login", func() {
		_, err := client.EntryPoint(ctx, "host")
		Expect(err).To(BeAssignableToTypeOf(errors.ErrorConnection{}))
	})

	Context("when logging in", func() {
		It("should select the newest version and load entry points", func() {
			Expect(client.Login(ctx)).To(Succeed())
			Expect(client.Version()).To(Equal("6.10"))

			href, err := client.EntryPoint(ctx, "host")
			Expect(err).NotTo(HaveOccurred())
			Expect(href).To(Equal(server.url("/6.10/elements/host")))

			_, err = client.EntryPoint(ctx, "router")
			Expect(err).To(BeAssignableToTypeOf(&errors.ErrorOperationFailure{}))

			links := client.EntryPoints("host")
			Expect(links).To(HaveLen(2))
			Expect(links[0].Rel).To(Equal("host"))
			Expect(links[1].Rel).To(Equal("host_group"))
		})

		It("should send the API key", func() {
			Expect(client.Login(ctx)).To(Succeed())
			Expect(server.loginBody).To(Equal(map[string]string{"authenticationkey": "secret"}))
		})

		It("should tag every request with a request ID", func() {
			Expect(client.Login(ctx)).To(Succeed())
			Expect(server.requestIDs).To(HaveLen(3))
			for _, id := range server.requestIDs {
				Expect(id).To(HaveLen(36))
			}
			Expect(server.requestIDs[0]).NotTo(Equal(server.requestIDs[1]))
		})

		Context("with a configured version and domain", func() {
			BeforeEach(func() {
				config.APIVersion = "6.5"
				config.Domain = "Branch"
			})

			It("should use them", func() {
				Expect(client.Login(ctx)).To(Succeed())
				Expect(client.Version()).To(Equal("6.5"))
				Expect(server.loginBody["domain"]).To(Equal("Branch"))
			})
		})

		Context("with an unsupported version", func() {
			BeforeEach(func() {
				config.APIVersion = "5.0"
			})

			It("should fail", func() {
				err := client.Login(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("6.10"))
			})
		})

		Context("with a bad key", func() {
			BeforeEach(func() {
				config.APIKey = "wrong"
			})

			It("should report the raw failure text", func() {
				err := client.Login(ctx)
				Expect(err).To(Equal(&errors.ErrorOperationFailure{Code: 401, Message: "Login failed, invalid credentials"}))
			})
		})
	})

	Context("when logged in", func() {
		hostHref := ""

		JustBeforeEach(func() {
			Expect(client.Login(ctx)).To(Succeed())
			hostHref = server.url("/6.10/elements/host/1")
		})

		It("should search by exact name", func() {
			metas, err := client.Search(ctx, model.SearchFilter{Name: "kali", Kind: "host", ExactMatch: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(metas).To(Equal([]model.Meta{{Name: "kali", Href: hostHref, Type: "host"}}))
			Expect(server.lastQuery).To(Equal(map[string]string{"filter": "kali", "exact_match": "true"}))

			metas, err = client.Search(ctx, model.SearchFilter{Name: "nobody", Kind: "host", ExactMatch: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(metas).To(BeEmpty())
		})

		It("should fetch with the version token", func() {
			resp, err := client.Fetch(ctx, hostHref)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Code).To(Equal(200))
			Expect(resp.Etag).To(Equal("1"))
			Expect(resp.Href).To(Equal(hostHref))
			Expect(resp.Payload.String("address")).To(Equal("1.1.1.1"))
		})

		It("should update with a precondition", func() {
			resp, err := client.Update(ctx, hostHref, model.Payload{"name": "kali", "address": "2.2.2.2"}, "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Etag).To(Equal("2"))

			_, err = client.Update(ctx, hostHref, model.Payload{"name": "kali"}, "1")
			Expect(errors.IsConflict(err)).To(BeTrue())
			f := errors.FailureFrom(err)
			Expect(f.Status).To(Equal("0"))
			Expect(f.Message).To(Equal("Impossible to update the element kali."))
			Expect(f.Details).To(ContainSubstring("ETag does not match"))
		})

		It("should send query parameters of an update without echoing them", func() {
			resp, err := client.Update(ctx, hostHref+"/change_password?password=s3cr%3Dt", model.Payload{}, "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Href).To(Equal(hostHref + "/change_password"))
			server.lock.Lock()
			defer server.lock.Unlock()
			Expect(server.lastQuery).To(Equal(map[string]string{"password": "s3cr=t"}))
		})

		It("should delete with a precondition", func() {
			_, err := client.Delete(ctx, hostHref, "1")
			Expect(err).NotTo(HaveOccurred())
			_, err = client.Fetch(ctx, hostHref)
			Expect(errors.FailureFrom(err).Code).To(Equal(404))
		})

		It("should return the location of a created element", func() {
			href, err := client.EntryPoint(ctx, "host")
			Expect(err).NotTo(HaveOccurred())
			resp, err := client.Create(ctx, href, map[string]interface{}{"name": "new"}, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Code).To(Equal(201))
			Expect(resp.Href).To(Equal(server.url("/6.10/elements/host/2")))
		})

		It("should join list details", func() {
			_, err := client.Fetch(ctx, server.url("/6.10/elements/nothing"))
			f := errors.FailureFrom(err)
			Expect(f.Code).To(Equal(404))
			Expect(f.Message).To(Equal("Element not found"))
			Expect(f.Details).To(Equal("no such path /6.10/elements/nothing"))
		})

		It("should describe a failure with no body", func() {
			_, err := client.Fetch(ctx, server.url("/6.10/elements/host/9"))
			Expect(err.Error()).To(Equal("HTTP error code: 500, no message"))
		})

		It("should count requests", func() {
			before := testutil.ToFloat64(requestCounter.WithLabelValues("GET", "200"))
			_, err := client.Fetch(ctx, hostHref)
			Expect(err).NotTo(HaveOccurred())
			Expect(testutil.ToFloat64(requestCounter.WithLabelValues("GET", "200"))).To(Equal(before + 1))
		})

		It("should log out", func() {
			Expect(client.Logout(ctx)).To(Succeed())
			Expect(server.loggedOut).To(BeTrue())
			_, err := client.EntryPoint(ctx, "host")
			Expect(err).To(HaveOccurred())
			Expect(client.Logout(ctx)).To(Succeed())
		})
	})

	Context("when the server is unreachable", func() {
		BeforeEach(func() {
			server.server.Close()
		})

		It("should return a connection error", func() {
			err := client.Login(ctx)
			Expect(err).To(BeAssignableToTypeOf(errors.ErrorConnection{}))
			Expect(errors.FailureFrom(err).Code).To(Equal(0))
			var ce errors.ErrorConnection
			Expect(goerrors.As(err, &ce)).To(BeTrue())
		})
	})

	Context("with a request rate limit", func() {
		BeforeEach(func() {
			config.RequestsPerSecond = 1000
		})

		It("should still complete every request", func() {
			Expect(client.Login(ctx)).To(Succeed())
			for i := 0; i < 5; i++ {
				_, err := client.Fetch(ctx, server.url("/6.10/elements/host/1"))
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})
})

var _ = Describe("selectVersion", func() {
	It("should compare versions numerically", func() {
		v, err := selectVersion([]string{"6.9", "6.10", "6.5"}, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("6.10"))
	})

	It("should skip unparseable versions", func() {
		v, err := selectVersion([]string{"beta", "6.4"}, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal("6.4"))
	})

	It("should fail with no versions", func() {
		_, err := selectVersion(nil, "")
		Expect(err).To(HaveOccurred())
	})
})
