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
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/errors"
)

// Locator resolves the href of an element that was constructed from a name.
type Locator interface {
	Locate(ctx context.Context, b *ElementBase) (string, error)
}

// ElementLocator resolves the href with a name search filtered by the
// element's kind. The identity found is bound onto the element, so the
// search happens at most once per element.
type ElementLocator struct{}

func (ElementLocator) Locate(ctx context.Context, b *ElementBase) (string, error) {
	if b.meta.Href != "" {
		return b.meta.Href, nil
	}
	if b.kind == "" {
		return "", errors.ErrorElementNotFound{
			Name:   b.name,
			Reason: fmt.Sprintf("element %q has no kind and cannot be referenced directly", b.name),
		}
	}

	logCxt := log.WithFields(log.Fields{"name": b.name, "kind": b.kind})
	logCxt.Debug("Locating element by name")
	metas, err := b.session.Backend.Search(ctx, model.SearchFilter{
		Name:       b.name,
		Kind:       b.kind,
		ExactMatch: true,
	})
	if err != nil {
		return "", failWith(err, fetchFailed)
	}
	metas = withHref(metas)
	if len(metas) == 0 {
		return "", errors.ErrorElementNotFound{Name: b.name, Kind: b.kind}
	}

	meta := metas[0]
	if len(metas) > 1 {
		logCxt.WithField("matches", len(metas)).Warning("Search returned more than one element, using the first exact name match")
		for _, m := range metas {
			if m.Name == b.name {
				meta = m
				break
			}
		}
	}
	b.bindMeta(meta)
	logCxt.WithField("href", b.meta.Href).Debug("Element located")
	return b.meta.Href, nil
}

// withHref drops search results that carry no href. They cannot be bound.
func withHref(metas []model.Meta) []model.Meta {
	out := metas[:0:0]
	for _, m := range metas {
		if m.Href != "" {
			out = append(out, m)
		}
	}
	return out
}
