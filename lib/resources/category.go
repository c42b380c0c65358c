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

package resources

import (
	"context"
	goerrors "errors"

	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/options"
)

const (
	fieldCategoryParents  = "category_parent_ref"
	fieldCategoryChildren = "category_child_ref"
)

func modificationFailed(f *errors.ErrorOperationFailure) error {
	return errors.ErrorModificationFailed{Failure: f}
}

// Category is a tag that can be assigned to any element.
type Category struct {
	*elements.Element
}

func NewCategory(s *elements.Session, name string) *Category {
	return &Category{Element: elements.NewElement(s, KindCategory, name)}
}

func newCategory(s *elements.Session, meta model.Meta) elements.Resource {
	return &Category{Element: elements.ElementFromMeta(s, meta)}
}

func CreateCategory(ctx context.Context, s *elements.Session, name, comment string) (*Category, error) {
	meta, err := create(ctx, s, KindCategory, map[string]interface{}{"name": name, "comment": comment})
	if err != nil {
		return nil, err
	}
	return &Category{Element: elements.ElementFromMeta(s, meta)}, nil
}

// SearchElements returns the elements tagged with this category.
func (c *Category) SearchElements(ctx context.Context) ([]elements.Resource, error) {
	resp, err := c.ResourceGet(ctx, "search_elements_from_category_tag")
	if err != nil {
		return nil, err
	}
	return fromMetas(c.Session(), resp.Metas()), nil
}

// AddElement tags element with this category.
func (c *Category) AddElement(ctx context.Context, element elements.HrefSource) error {
	return c.membership(ctx, "category_add_element", element)
}

// RemoveElement removes this category from element.
func (c *Category) RemoveElement(ctx context.Context, element elements.HrefSource) error {
	return c.membership(ctx, "category_remove_element", element)
}

func (c *Category) membership(ctx context.Context, rel string, element elements.HrefSource) error {
	href, err := element.Href(ctx)
	if err != nil {
		return err
	}
	_, err = c.ResourceCreate(ctx, rel, map[string]interface{}{"value": href}, nil, modificationFailed)
	return err
}

// AddCategoryTag adds this category to the given category tags.
func (c *Category) AddCategoryTag(ctx context.Context, tags ...elements.HrefSource) error {
	hrefs, err := elements.ResolveHrefs(ctx, tags, true)
	if err != nil {
		return err
	}
	return c.ModifyAttribute(ctx, map[string]interface{}{fieldCategoryParents: hrefs}, options.ModifyOptions{AppendLists: true})
}

// Categories returns the category tags this category belongs to.
func (c *Category) Categories(ctx context.Context) ([]elements.Resource, error) {
	data, err := c.Data(ctx)
	if err != nil {
		return nil, err
	}
	return fromHrefs(ctx, c.Session(), data.Strings(fieldCategoryParents))
}

// CategoryTag groups categories, and other category tags.
type CategoryTag struct {
	*elements.Element
}

func NewCategoryTag(s *elements.Session, name string) *CategoryTag {
	return &CategoryTag{Element: elements.NewElement(s, KindCategoryTag, name)}
}

func newCategoryTag(s *elements.Session, meta model.Meta) elements.Resource {
	return &CategoryTag{Element: elements.ElementFromMeta(s, meta)}
}

func CreateCategoryTag(ctx context.Context, s *elements.Session, name, comment string) (*CategoryTag, error) {
	meta, err := create(ctx, s, KindCategoryTag, map[string]interface{}{"name": name, "comment": comment})
	if err != nil {
		return nil, err
	}
	return &CategoryTag{Element: elements.ElementFromMeta(s, meta)}, nil
}

// RemoveCategory removes categories from this tag. Categories that are not
// members are ignored.
func (t *CategoryTag) RemoveCategory(ctx context.Context, categories ...elements.HrefSource) error {
	hrefs, err := elements.ResolveHrefs(ctx, categories, false)
	if err != nil {
		return err
	}
	remove := make(map[string]bool, len(hrefs))
	for _, h := range hrefs {
		remove[h] = true
	}

	data, err := t.Data(ctx)
	if err != nil {
		return err
	}
	keep := []string{}
	for _, h := range data.Strings(fieldCategoryChildren) {
		if !remove[h] {
			keep = append(keep, h)
		}
	}
	return t.ModifyAttribute(ctx, map[string]interface{}{fieldCategoryChildren: keep}, options.ModifyOptions{})
}

func (t *CategoryTag) ChildCategories(ctx context.Context) ([]elements.Resource, error) {
	data, err := t.Data(ctx)
	if err != nil {
		return nil, err
	}
	return fromHrefs(ctx, t.Session(), data.Strings(fieldCategoryChildren))
}

func (t *CategoryTag) ParentCategories(ctx context.Context) ([]elements.Resource, error) {
	data, err := t.Data(ctx)
	if err != nil {
		return nil, err
	}
	return fromHrefs(ctx, t.Session(), data.Strings(fieldCategoryParents))
}

// AddCategory tags element with each of the named categories, creating any
// category that does not exist yet.
func AddCategory(ctx context.Context, s *elements.Session, element elements.HrefSource, tags ...string) error {
	href, err := element.Href(ctx)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		category := NewCategory(s, tag)
		err := category.AddElement(ctx, elements.RawHref(href))
		var nf errors.ErrorElementNotFound
		if goerrors.As(err, &nf) {
			log.WithField("category", tag).Info("Category does not exist, creating it")
			if category, err = CreateCategory(ctx, s, tag, ""); err != nil {
				return err
			}
			err = category.AddElement(ctx, elements.RawHref(href))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
