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

import "github.com/gosmc/libsmc-go/lib/backend/model"

type ActionStatus uint8

const (
	// The action was accepted by the server.
	ActionOK ActionStatus = iota
	// The element does not offer the action, nothing was sent.
	ActionUnsupported
	// The server rejected the action.
	ActionFailed
)

func (s ActionStatus) String() string {
	switch s {
	case ActionOK:
		return "ok"
	case ActionUnsupported:
		return "unsupported"
	case ActionFailed:
		return "failed"
	}
	return "unknown"
}

// ActionResult is the outcome of invoking an optional action link on an
// element. Unsupported is not an error: it means there was nothing to do.
type ActionResult struct {
	Status   ActionStatus
	Response *model.Response
	Err      error
}

func (r ActionResult) OK() bool {
	return r.Status == ActionOK
}
