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

// Payload is the raw JSON object of an element as served by the management
// server.
type Payload map[string]interface{}

// DeepCopy returns a copy of the payload that shares no maps or slices with
// the original.
func (p Payload) DeepCopy() Payload {
	if p == nil {
		return nil
	}
	return copyValue(map[string]interface{}(p)).(map[string]interface{})
}

// Links returns the parsed link list of the payload.
func (p Payload) Links() []Link {
	return ParseLinks(p["link"])
}

// IsSystem returns true if the element is marked as system protected.
func (p Payload) IsSystem() bool {
	v, ok := p["system"].(bool)
	return ok && v
}

// String returns the named field if it holds a string.
func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Strings returns the named field as a slice of strings, skipping any
// non-string entries.
func (p Payload) Strings(key string) []string {
	var out []string
	switch v := p[key].(type) {
	case []string:
		out = append(out, v...)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = copyValue(val)
		}
		return m
	case Payload:
		return Payload(copyValue(map[string]interface{}(t)).(map[string]interface{}))
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, val := range t {
			s[i] = copyValue(val)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	}
	return v
}

// MergePayload merges src into dst. Nested objects present on both sides are
// merged recursively. List values replace the existing value unless
// appendLists is set and dst already holds a list, in which case the new
// entries are appended. Everything else is overwritten. Values taken from src
// are copied so dst never aliases the caller's data.
func MergePayload(dst, src map[string]interface{}, appendLists bool) {
	for key, value := range src {
		switch v := value.(type) {
		case map[string]interface{}:
			if existing, ok := asMap(dst[key]); ok {
				MergePayload(existing, v, appendLists)
				continue
			}
			dst[key] = copyValue(v)
		case Payload:
			if existing, ok := asMap(dst[key]); ok {
				MergePayload(existing, v, appendLists)
				continue
			}
			dst[key] = copyValue(map[string]interface{}(v))
		default:
			if appendLists {
				if added, ok := asList(value); ok {
					if current, ok := asList(dst[key]); ok {
						dst[key] = append(current, added...)
						continue
					}
				}
			}
			dst[key] = copyValue(value)
		}
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case Payload:
		return t, true
	}
	return nil, false
}

// asList normalizes the list shapes a payload may carry. JSON decoding always
// produces []interface{}; callers frequently supply []string.
func asList(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case []interface{}:
		return append([]interface{}(nil), t...), true
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
