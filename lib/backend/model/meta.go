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

import (
	"fmt"

	"github.com/gosmc/libsmc-go/lib/errors"
)

// Meta is the identity of a remote element as returned by search and listing
// calls. Any of the fields may be empty when an element is constructed from
// partial knowledge; the missing half is filled in lazily.
type Meta struct {
	Name string `json:"name,omitempty"`
	Href string `json:"href,omitempty"`
	Type string `json:"type,omitempty"`
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta(name=%s, href=%s, type=%s)", m.Name, m.Href, m.Type)
}

// Link is a single entry from the "link" list of an element payload.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Type   string `json:"type,omitempty"`
	Method string `json:"method,omitempty"`
}

// ParseLinks converts the raw "link" value of a payload into Links. Entries
// that are not objects, or have no rel, are skipped.
func ParseLinks(raw interface{}) []Link {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	links := make([]Link, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		l := Link{}
		l.Rel, _ = m["rel"].(string)
		l.Href, _ = m["href"].(string)
		l.Type, _ = m["type"].(string)
		l.Method, _ = m["method"].(string)
		if l.Rel == "" {
			continue
		}
		links = append(links, l)
	}
	return links
}

// FindLinkByName returns the href of the link with the given rel.
func FindLinkByName(rel string, links []Link) (string, error) {
	for _, l := range links {
		if l.Rel == rel {
			return l.Href, nil
		}
	}
	return "", errors.ErrorResourceLinkMissing{Rel: rel}
}

// FindTypeFromSelf returns the element kind advertised by the "self" link.
// This is how the kind of an element is discovered when only its href is
// known.
func FindTypeFromSelf(links []Link) (string, error) {
	for _, l := range links {
		if l.Rel == "self" {
			return l.Type, nil
		}
	}
	return "", errors.ErrorResourceLinkMissing{Rel: "self"}
}
