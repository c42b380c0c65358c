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

package api

import (
	"context"

	"github.com/gosmc/libsmc-go/lib/backend/model"
)

// Client is the transport used by the element layer. Each method is a single
// synchronous request; implementations must not retry.
//
// Failures reported by the server are returned as
// *errors.ErrorOperationFailure. Failures to reach the server are returned as
// errors.ErrorConnection.
type Client interface {
	// Fetch reads the resource at href, returning its payload and version
	// token.
	Fetch(ctx context.Context, href string) (*model.Response, error)

	// Create POSTs payload to href. For element creation href is the entry
	// point of the kind, and the returned Response.Href is the location of
	// the new element. Action links are invoked the same way. Params are sent
	// as query parameters.
	Create(ctx context.Context, href string, payload interface{}, params map[string]string) (*model.Response, error)

	// Update PUTs payload to href using etag as the concurrency precondition.
	Update(ctx context.Context, href string, payload interface{}, etag string) (*model.Response, error)

	// Delete removes the resource at href using etag as the concurrency
	// precondition.
	Delete(ctx context.Context, href string, etag string) (*model.Response, error)

	// Search returns the identities matching the filter.
	Search(ctx context.Context, filter model.SearchFilter) ([]model.Meta, error)

	// EntryPoint resolves the creation/search entry point of an element kind.
	EntryPoint(ctx context.Context, kind string) (string, error)
}
