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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosmc/libsmc-go/lib/errors"
)

type failureBody struct {
	Status  interface{} `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// parseFailure builds the failure descriptor for a non 2xx response. A JSON
// body supplies status, message and details; any other body is used as the
// message.
func parseFailure(code int, body []byte) *errors.ErrorOperationFailure {
	f := &errors.ErrorOperationFailure{Code: code}

	var fb failureBody
	if err := json.Unmarshal(body, &fb); err == nil && (fb.Message != "" || fb.Details != nil) {
		if fb.Status != nil {
			f.Status = fmt.Sprint(fb.Status)
		}
		f.Message = fb.Message
		f.Details = detailsString(fb.Details)
		return f
	}

	f.Message = strings.TrimSpace(string(body))
	return f
}

// The server sends details either as a string or as a list of strings.
func detailsString(d interface{}) string {
	switch t := d.(type) {
	case string:
		return t
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, " ")
	case nil:
		return ""
	}
	return fmt.Sprint(d)
}
