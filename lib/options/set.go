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

package options

import (
	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
)

// FailureWrapper converts a server reported failure into the error kind the
// caller wants to surface.
type FailureWrapper func(*errors.ErrorOperationFailure) error

// UpdateOptions are the options for updating an element. Any field left at its
// zero value is taken from the element itself.
type UpdateOptions struct {
	// Href to PUT to. Defaults to the element href.
	// +optional
	Href string

	// Etag used as the precondition. Defaults to the most recently observed
	// version token of the element.
	// +optional
	Etag string

	// Payload to send. Defaults to a deep copy of the cached payload.
	// +optional
	Payload model.Payload

	// Params are sent as query parameters of the PUT.
	// +optional
	Params map[string]string

	// FailWith overrides the error kind returned when the server rejects the
	// update. Defaults to errors.ErrorUpdateElementFailed.
	// +optional
	FailWith FailureWrapper
}

// ModifyOptions are the options for merging attribute changes into an element.
type ModifyOptions struct {
	// When set, list values are appended to existing lists rather than
	// replacing them.
	AppendLists bool

	// FailWith is passed through to the update.
	// +optional
	FailWith FailureWrapper
}
