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
	goerrors "errors"

	"github.com/gosmc/libsmc-go/lib/errors"
)

// HrefSource is anything that can produce an href.
type HrefSource interface {
	Href(ctx context.Context) (string, error)
}

// RawHref is an href that is already known.
type RawHref string

func (h RawHref) Href(context.Context) (string, error) {
	return string(h), nil
}

// ResolveHrefs resolves the hrefs of refs one at a time, preserving order.
// An element listed more than once is only searched for once, since its href
// is bound on first resolution. If doRaise is false elements that cannot be
// found are left out of the result instead of failing the call; any other
// error is always returned.
func ResolveHrefs(ctx context.Context, refs []HrefSource, doRaise bool) ([]string, error) {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		href, err := ref.Href(ctx)
		if err != nil {
			var nf errors.ErrorElementNotFound
			if !doRaise && goerrors.As(err, &nf) {
				continue
			}
			return nil, err
		}
		out = append(out, href)
	}
	return out, nil
}
