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

import (
	"sort"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
)

// ElementResource is the link table of an element: relation name to href. It
// is rebuilt every time the element cache is populated because the set of
// links depends on the state of the element.
type ElementResource struct {
	links map[string]string
}

func newElementResource(links []model.Link) *ElementResource {
	r := &ElementResource{links: make(map[string]string, len(links))}
	for _, l := range links {
		r.links[l.Rel] = l.Href
	}
	return r
}

// Get returns the href for the relation.
func (r *ElementResource) Get(rel string) (string, error) {
	if r != nil {
		if href, ok := r.links[rel]; ok {
			return href, nil
		}
	}
	return "", errors.ErrorResourceLinkMissing{Rel: rel}
}

func (r *ElementResource) Has(rel string) bool {
	if r == nil {
		return false
	}
	_, ok := r.links[rel]
	return ok
}

// Rels returns the relation names in sorted order.
func (r *ElementResource) Rels() []string {
	if r == nil {
		return nil
	}
	rels := make([]string, 0, len(r.links))
	for rel := range r.links {
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return rels
}
