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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/model"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/errors"
	"github.com/gosmc/libsmc-go/lib/options"
)

// Node is a single node of an engine. It is reference only: a Node is
// obtained from a link on its engine, never by name.
type Node struct {
	*elements.SubElement
}

func NewNode(s *elements.Session, meta model.Meta) *Node {
	return &Node{SubElement: elements.NewSubElement(s, meta)}
}

func newNode(s *elements.Session, meta model.Meta) elements.Resource {
	return NewNode(s, meta)
}

// NodeID returns the id of the node within its engine.
func (n *Node) NodeID(ctx context.Context) (int, error) {
	v, _, err := n.AttrByName(ctx, "nodeid")
	if err != nil {
		return 0, err
	}
	switch id := v.(type) {
	case float64:
		return int(id), nil
	case int:
		return id, nil
	}
	return 0, nil
}

// Rename renames the node after its engine: "<name> node <nodeid>".
func (n *Node) Rename(ctx context.Context, name string) error {
	id, err := n.NodeID(ctx)
	if err != nil {
		return err
	}
	return n.ModifyAttribute(ctx, map[string]interface{}{"name": fmt.Sprintf("%s node %d", name, id)}, options.ModifyOptions{})
}

// FetchLicense fetches the node license. Nodes that cannot fetch a license
// are left alone.
func (n *Node) FetchLicense(ctx context.Context) error {
	return n.licenseAction(ctx, "fetch", nil)
}

// BindLicense binds a license, or a dynamic license when licenseItemID is
// empty.
func (n *Node) BindLicense(ctx context.Context, licenseItemID string) error {
	var params map[string]string
	if licenseItemID != "" {
		params = map[string]string{"license_item_id": licenseItemID}
	}
	return n.licenseAction(ctx, "bind", params)
}

func (n *Node) UnbindLicense(ctx context.Context) error {
	return n.licenseAction(ctx, "unbind", nil)
}

func (n *Node) CancelUnbindLicense(ctx context.Context) error {
	return n.licenseAction(ctx, "cancel_unbind", nil)
}

// licenseAction invokes a license link. A node without the link, for example
// a virtual engine node, is not an error.
func (n *Node) licenseAction(ctx context.Context, rel string, params map[string]string) error {
	_, err := n.ResourceCreate(ctx, rel, nil, params, nil)
	var missing errors.ErrorResourceLinkMissing
	if goerrors.As(err, &missing) {
		log.WithFields(log.Fields{"node": n.String(), "action": rel}).Debug("License action not available on node")
		return nil
	}
	return err
}
