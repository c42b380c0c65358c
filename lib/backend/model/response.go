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

package model

import "encoding/json"

// Response is the result of a single call to the management server.
type Response struct {
	// HTTP status code.
	Code int

	// Href of the resource acted on. For a create this is the location of the
	// new resource.
	Href string

	// Etag is the opaque version token returned by the server, if any.
	Etag string

	// Payload is set when the body decoded to a JSON object, List when it
	// decoded to a JSON array.
	Payload Payload
	List    []interface{}

	// Body is the raw response body.
	Body []byte
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Metas interprets the response as a list of element identities. The server
// returns these either as a bare array or wrapped in a "result" field.
func (r *Response) Metas() []Meta {
	list := r.List
	if list == nil && r.Payload != nil {
		list, _ = r.Payload["result"].([]interface{})
	}
	metas := make([]Meta, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		meta := Meta{}
		meta.Name, _ = m["name"].(string)
		meta.Href, _ = m["href"].(string)
		meta.Type, _ = m["type"].(string)
		metas = append(metas, meta)
	}
	return metas
}

// SearchFilter selects elements by name within an element kind.
type SearchFilter struct {
	Name       string
	Kind       string
	ExactMatch bool
}
