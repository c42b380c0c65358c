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
)

// Constructor builds the local representation of an element kind from an
// identity.
type Constructor func(s *Session, meta model.Meta) Resource

// Registry maps element kind tags to constructors. It is filled once at
// startup and only read afterwards, so it needs no locking.
type Registry struct {
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{constructors: map[string]Constructor{}}
}

// Register adds the constructor for kind, replacing any earlier registration.
func (r *Registry) Register(kind string, c Constructor) *Registry {
	r.constructors[kind] = c
	return r
}

// Lookup returns the constructor for kind. Kinds that have no registration
// get the generic Element, so elements of kinds this library does not model
// can still be used.
func (r *Registry) Lookup(kind string) Constructor {
	if r != nil {
		if c, ok := r.constructors[kind]; ok {
			return c
		}
	}
	return genericElement
}

// Registered returns true if kind has its own constructor.
func (r *Registry) Registered(kind string) bool {
	if r == nil {
		return false
	}
	_, ok := r.constructors[kind]
	return ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	if r == nil {
		return nil
	}
	kinds := make([]string, 0, len(r.constructors))
	for k := range r.constructors {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func genericElement(s *Session, meta model.Meta) Resource {
	return ElementFromMeta(s, meta)
}
