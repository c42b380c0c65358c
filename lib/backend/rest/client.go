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
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/gosmc/libsmc-go/lib/apiconfig"
	"github.com/gosmc/libsmc-go/lib/backend/api"
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/logutils"
)

const (
	headerEtag      = "ETag"
	headerIfMatch   = "If-Match"
	headerLocation  = "Location"
	headerRequestID = "X-Request-ID"

	throttleLogInterval = 30 * time.Second
)

var errNotLoggedIn = goerrors.New("not logged in")

// RESTClient is the HTTP implementation of api.Client. It holds one login
// session with the management server. Requests are never retried.
type RESTClient struct {
	config     apiconfig.SMCAPIConfigSpec
	httpClient *http.Client
	limiter    *rate.Limiter
	throttled  *logutils.IntervalLogger

	lock        sync.RWMutex
	version     string
	baseURL     string
	entryPoints *entryPoints
}

var _ api.Client = (*RESTClient)(nil)

func NewRESTClient(config *apiconfig.SMCAPIConfigSpec) (*RESTClient, error) {
	if config.URL == "" {
		return nil, goerrors.New("no server URL specified")
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{InsecureSkipVerify: config.Insecure}
	if config.CACertFile != "" {
		pem, err := ioutil.ReadFile(config.CACertFile)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", config.CACertFile)
		}
		tlsConfig.RootCAs = pool
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = apiconfig.DefaultTimeoutSeconds * time.Second
	}

	c := &RESTClient{
		config: *config,
		httpClient: &http.Client{
			Jar:       jar,
			Timeout:   timeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment, TLSClientConfig: tlsConfig},
		},
		throttled: logutils.NewIntervalLogger(throttleLogInterval, nil),
	}
	if config.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}
	return c, nil
}

// Login selects the API version, opens a session with the API key and loads
// the entry point table.
func (c *RESTClient) Login(ctx context.Context) error {
	root := strings.TrimSuffix(c.config.URL, "/")
	logCxt := log.WithField("url", root)

	resp, err := c.do(ctx, http.MethodGet, root+"/api", nil, "", nil)
	if err != nil {
		return err
	}
	version, err := selectVersion(parseVersions(resp.Payload), c.config.APIVersion)
	if err != nil {
		return err
	}
	baseURL := root + "/" + version
	logCxt = logCxt.WithField("version", version)

	creds := map[string]string{"authenticationkey": c.config.APIKey}
	if c.config.Domain != "" {
		creds["domain"] = c.config.Domain
	}
	if _, err := c.do(ctx, http.MethodPost, baseURL+"/login", creds, "", nil); err != nil {
		logCxt.WithError(err).Debug("Login failed")
		return err
	}

	resp, err = c.do(ctx, http.MethodGet, baseURL+"/api", nil, "", nil)
	if err != nil {
		return err
	}
	eps := newEntryPoints(model.ParseLinks(resp.Payload["entry_point"]))

	c.lock.Lock()
	c.version = version
	c.baseURL = baseURL
	c.entryPoints = eps
	c.lock.Unlock()

	logCxt.WithField("entryPoints", eps.Len()).Info("Logged in to management server")
	return nil
}

// Logout closes the session. The client may log in again afterwards.
func (c *RESTClient) Logout(ctx context.Context) error {
	c.lock.Lock()
	baseURL := c.baseURL
	c.baseURL = ""
	c.entryPoints = nil
	c.lock.Unlock()

	if baseURL == "" {
		return nil
	}
	_, err := c.do(ctx, http.MethodPut, baseURL+"/logout", nil, "", nil)
	return err
}

// Version returns the API version selected at login.
func (c *RESTClient) Version() string {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.version
}

func (c *RESTClient) Fetch(ctx context.Context, href string) (*model.Response, error) {
	return c.do(ctx, http.MethodGet, href, nil, "", nil)
}

func (c *RESTClient) Create(ctx context.Context, href string, payload interface{}, params map[string]string) (*model.Response, error) {
	return c.do(ctx, http.MethodPost, href, payload, "", params)
}

func (c *RESTClient) Update(ctx context.Context, href string, payload interface{}, etag string) (*model.Response, error) {
	return c.do(ctx, http.MethodPut, href, payload, etag, nil)
}

func (c *RESTClient) Delete(ctx context.Context, href string, etag string) (*model.Response, error) {
	return c.do(ctx, http.MethodDelete, href, nil, etag, nil)
}

// Search finds elements by name. With no kind the generic element entry
// point is searched.
func (c *RESTClient) Search(ctx context.Context, filter model.SearchFilter) ([]model.Meta, error) {
	kind := filter.Kind
	if kind == "" {
		kind = "elements"
	}
	href, err := c.EntryPoint(ctx, kind)
	if err != nil {
		return nil, err
	}
	params := map[string]string{"filter": filter.Name}
	if filter.ExactMatch {
		params["exact_match"] = "true"
	}
	resp, err := c.do(ctx, http.MethodGet, href, nil, "", params)
	if err != nil {
		return nil, err
	}
	return resp.Metas(), nil
}

func (c *RESTClient) EntryPoint(ctx context.Context, kind string) (string, error) {
	c.lock.RLock()
	eps := c.entryPoints
	c.lock.RUnlock()
	if eps == nil {
		return "", errors.ErrorConnection{Err: errNotLoggedIn}
	}
	href, ok := eps.Get(kind)
	if !ok {
		return "", &errors.ErrorOperationFailure{
			Code:    http.StatusNotFound,
			Message: fmt.Sprintf("no entry point for element type %q", kind),
		}
	}
	return href, nil
}

// EntryPoints returns the entry points whose name starts with prefix.
func (c *RESTClient) EntryPoints(prefix string) []model.Link {
	c.lock.RLock()
	eps := c.entryPoints
	c.lock.RUnlock()
	if eps == nil {
		return nil
	}
	return eps.WithPrefix(prefix)
}

func (c *RESTClient) do(ctx context.Context, method, href string, payload interface{}, etag string, params map[string]string) (*model.Response, error) {
	requestID := uuid.New().String()
	// Query parameters may carry secrets. They are kept out of logs and errors.
	plainHref := strings.SplitN(href, "?", 2)[0]
	logCxt := log.WithFields(log.Fields{"method": method, "href": plainHref, "requestID": requestID})

	if err := c.wait(ctx); err != nil {
		return nil, errors.ErrorConnection{Err: err, Href: plainHref}
	}

	target := href
	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target = target + sep + q.Encode()
	}

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.ErrorConnection{Err: err, Href: plainHref}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if etag != "" {
		req.Header.Set(headerIfMatch, etag)
	}
	req.Header.Set(headerRequestID, requestID)

	logCxt.Debug("Sending request")
	res, err := c.httpClient.Do(req)
	if err != nil {
		countRequest(method, 0)
		logCxt.WithError(err).Debug("Request failed")
		return nil, errors.ErrorConnection{Err: err, Href: plainHref}
	}
	defer res.Body.Close()
	countRequest(method, res.StatusCode)

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.ErrorConnection{Err: err, Href: plainHref}
	}
	logCxt = logCxt.WithField("code", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		f := parseFailure(res.StatusCode, data)
		logCxt.WithError(f).Debug("Server reported failure")
		return nil, f
	}

	resp := &model.Response{
		Code: res.StatusCode,
		Href: plainHref,
		Etag: res.Header.Get(headerEtag),
		Body: data,
	}
	if loc := res.Header.Get(headerLocation); loc != "" {
		resp.Href = loc
	}
	decodeBody(resp, data)
	logCxt.Debug("Request complete")
	return resp, nil
}

// wait blocks until the rate limiter allows another request.
func (c *RESTClient) wait(ctx context.Context) error {
	if c.limiter == nil || c.limiter.Allow() {
		return nil
	}
	c.throttled.WithField("limit", c.config.RequestsPerSecond).Info("Requests are being throttled")
	return c.limiter.Wait(ctx)
}

func decodeBody(resp *model.Response, data []byte) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return
	}
	switch trimmed[0] {
	case '{':
		var p map[string]interface{}
		if json.Unmarshal(trimmed, &p) == nil {
			resp.Payload = p
		}
	case '[':
		var l []interface{}
		if json.Unmarshal(trimmed, &l) == nil {
			resp.List = l
		}
	}
}

func codeLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
