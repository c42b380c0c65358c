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

	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/options"
)

// account holds the operations shared by administrator accounts and API
// clients. Each one is a PUT to an action link of the account, made with the
// account's version token.
type account struct {
	*elements.Element
}

// EnableDisable toggles whether the account is enabled.
func (a account) EnableDisable(ctx context.Context) error {
	return a.accountAction(ctx, "enable_disable", options.UpdateOptions{})
}

// ChangePassword sets the password used to log in to the management server.
func (a account) ChangePassword(ctx context.Context, password string) error {
	return a.accountAction(ctx, "change_password", options.UpdateOptions{
		Payload: model.Payload{},
		Params:  map[string]string{"password": password},
	})
}

// IsEnabled reports whether the account is enabled.
func (a account) IsEnabled(ctx context.Context) (bool, error) {
	v, _, err := a.AttrByName(ctx, "enabled")
	if err != nil {
		return false, err
	}
	enabled, _ := v.(bool)
	return enabled, nil
}

func (a account) accountAction(ctx context.Context, rel string, opts options.UpdateOptions) error {
	href, err := a.ResourceHref(ctx, rel)
	if err != nil {
		return err
	}
	opts.Href = href
	opts.FailWith = modificationFailed
	if _, err := a.Update(ctx, opts); err != nil {
		log.WithFields(log.Fields{"account": a.Name(), "action": rel}).WithError(err).Debug("Account action failed")
		return err
	}
	return nil
}

// AdminUser is an administrator account of the management server.
type AdminUser struct {
	account
}

type AdminUserSpec struct {
	Name       string
	LocalAdmin bool
	AllowSudo  bool
	Superuser  bool
	Disabled   bool

	// Engines the account may log in to as a local administrator.
	EngineTargets []elements.HrefSource
}

func NewAdminUser(s *elements.Session, name string) *AdminUser {
	return &AdminUser{account{elements.NewElement(s, KindAdminUser, name)}}
}

func newAdminUser(s *elements.Session, meta model.Meta) elements.Resource {
	return &AdminUser{account{elements.ElementFromMeta(s, meta)}}
}

// CreateAdminUser creates an administrator account. Accounts are enabled
// unless spec.Disabled is set.
func CreateAdminUser(ctx context.Context, s *elements.Session, spec AdminUserSpec) (*AdminUser, error) {
	engines, err := elements.ResolveHrefs(ctx, spec.EngineTargets, true)
	if err != nil {
		return nil, err
	}
	meta, err := create(ctx, s, KindAdminUser, map[string]interface{}{
		"name":          spec.Name,
		"enabled":       !spec.Disabled,
		"allow_sudo":    spec.AllowSudo,
		"engine_target": engines,
		"local_admin":   spec.LocalAdmin,
		"superuser":     spec.Superuser,
	})
	if err != nil {
		return nil, err
	}
	return &AdminUser{account{elements.ElementFromMeta(s, meta)}}, nil
}

// ChangeEnginePassword sets the password used on the engines the account may
// log in to.
func (u *AdminUser) ChangeEnginePassword(ctx context.Context, password string) error {
	return u.accountAction(ctx, "change_engine_password", options.UpdateOptions{
		Payload: model.Payload{},
		Params:  map[string]string{"password": password},
	})
}

// APIClient is an account used to reach the management server API.
type APIClient struct {
	account
}

func NewAPIClient(s *elements.Session, name string) *APIClient {
	return &APIClient{account{elements.NewElement(s, KindAPIClient, name)}}
}

func newAPIClient(s *elements.Session, meta model.Meta) elements.Resource {
	return &APIClient{account{elements.ElementFromMeta(s, meta)}}
}

func CreateAPIClient(ctx context.Context, s *elements.Session, name string, enabled, superuser bool) (*APIClient, error) {
	meta, err := create(ctx, s, KindAPIClient, map[string]interface{}{
		"name":      name,
		"enabled":   enabled,
		"superuser": superuser,
	})
	if err != nil {
		return nil, err
	}
	return &APIClient{account{elements.ElementFromMeta(s, meta)}}, nil
}
