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

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	yaml "github.com/projectcalico/go-yaml-wrapper"

	"github.com/gosmc/libsmc-go/lib/backend/model"
)

// elementView is what the printers show for one element.
type elementView struct {
	Meta model.Meta    `json:"meta"`
	Data model.Payload `json:"data,omitempty"`
}

type resourcePrinter interface {
	print(views []elementView) error
}

func newPrinter(output string, out io.Writer) (resourcePrinter, error) {
	switch output {
	case "json":
		return jsonPrinter{out: out}, nil
	case "yaml":
		return yamlPrinter{out: out}, nil
	case "ps", "":
		return tablePrinter{out: out}, nil
	}
	return nil, fmt.Errorf("unrecognized output format: %s", output)
}

type jsonPrinter struct {
	out io.Writer
}

func (p jsonPrinter) print(views []elementView) error {
	b, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.out, "%s\n", b)
	return err
}

type yamlPrinter struct {
	out io.Writer
}

func (p yamlPrinter) print(views []elementView) error {
	b, err := yaml.Marshal(views)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.out, "%s", b)
	return err
}

type tablePrinter struct {
	out io.Writer
}

func (p tablePrinter) print(views []elementView) error {
	w := tabwriter.NewWriter(p.out, 5, 1, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tHREF\tCOMMENT")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Meta.Name, v.Meta.Type, v.Meta.Href, v.Data.String("comment"))
	}
	return w.Flush()
}
