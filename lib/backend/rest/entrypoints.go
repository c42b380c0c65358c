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
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/gosmc/libsmc-go/lib/backend/model"
)

// entryPoints maps element kinds to their collection href. It is loaded once
// per login and only read afterwards.
type entryPoints struct {
	trie  *patricia.Trie
	count int
}

func newEntryPoints(links []model.Link) *entryPoints {
	e := &entryPoints{trie: patricia.NewTrie()}
	for _, l := range links {
		if e.trie.Insert(patricia.Prefix(l.Rel), l) {
			e.count++
		}
	}
	return e
}

func (e *entryPoints) Get(kind string) (string, bool) {
	item := e.trie.Get(patricia.Prefix(kind))
	if item == nil {
		return "", false
	}
	return item.(model.Link).Href, true
}

// WithPrefix returns the entry points whose kind starts with prefix, in
// lexical order.
func (e *entryPoints) WithPrefix(prefix string) []model.Link {
	var links []model.Link
	_ = e.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		links = append(links, item.(model.Link))
		return nil
	})
	return links
}

func (e *entryPoints) Len() int {
	return e.count
}
