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
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gosmc/libsmc-go/lib/client"
	"github.com/gosmc/libsmc-go/lib/elements"
	"github.com/gosmc/libsmc-go/lib/options"
)

func newGetCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	output := "ps"
	cmd := &cobra.Command{
		Use:   "get <KIND> <NAME> [<NAME>...]",
		Short: "Display one or more elements",
		Example: `  # Show a host in table format.
  smcctl get host kali

  # Show the full definition of two hosts as YAML.
  smcctl get -o yaml host kali kali2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rp, err := newPrinter(output, out)
			if err != nil {
				return err
			}
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				views, err := getElements(ctx, c, args[0], args[1:])
				if err != nil {
					return err
				}
				return rp.print(views)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, "Output format. One of: ps, json, yaml.")
	return cmd
}

// getElements loads the named elements in parallel. Every name gets its own
// element instance. The views are returned in the order of names.
func getElements(ctx context.Context, c *client.Client, kind string, names []string) ([]elementView, error) {
	views := make([]elementView, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			e := c.Element(kind, name)
			data, err := e.Data(gctx)
			if err != nil {
				return errors.Wrapf(err, "error getting %s %s", kind, name)
			}
			views[i] = elementView{Meta: e.Meta(), Data: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func newSearchCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	kind := ""
	cmd := &cobra.Command{
		Use:   "search <NAME>",
		Short: "List elements whose name contains NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				found, err := c.Search(ctx, kind, args[0])
				if err != nil {
					return err
				}
				views := make([]elementView, 0, len(found))
				for _, r := range found {
					views = append(views, elementView{Meta: r.Meta()})
				}
				return tablePrinter{out: out}.print(views)
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Only search elements of this kind.")
	return cmd
}

func newDeleteCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <KIND> <NAME>",
		Short: "Delete an element",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				if err := c.Element(args[0], args[1]).Delete(ctx, options.DeleteOptions{}); err != nil {
					return errors.Wrapf(err, "error deleting %s %s", args[0], args[1])
				}
				fmt.Fprintf(out, "Deleted %s %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

type renamer interface {
	Rename(ctx context.Context, name string) error
}

func newRenameCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <KIND> <NAME> <NEW NAME>",
		Short: "Rename an element",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				r, ok := c.Element(args[0], args[1]).(renamer)
				if !ok {
					return fmt.Errorf("elements of kind %s cannot be renamed", args[0])
				}
				if err := r.Rename(ctx, args[2]); err != nil {
					return errors.Wrapf(err, "error renaming %s %s", args[0], args[1])
				}
				fmt.Fprintf(out, "Renamed %s %s to %s\n", args[0], args[1], args[2])
				return nil
			})
		},
	}
}

func newCommentCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <KIND> <NAME> <COMMENT>",
		Short: "Set the comment of an element",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				e := c.Element(args[0], args[1])
				err := e.ModifyAttribute(ctx, map[string]interface{}{"comment": args[2]}, options.ModifyOptions{})
				if err != nil {
					return errors.Wrapf(err, "error updating %s %s", args[0], args[1])
				}
				fmt.Fprintf(out, "Updated %s %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

type exporter interface {
	Export(ctx context.Context, filename string) elements.ActionResult
}

func newExportCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "export <KIND> <NAME> <FILENAME>",
		Short: "Export an element on the server",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				e, ok := c.Element(args[0], args[1]).(exporter)
				if !ok {
					return fmt.Errorf("elements of kind %s cannot be exported", args[0])
				}
				res := e.Export(ctx, args[2])
				switch res.Status {
				case elements.ActionOK:
					fmt.Fprintf(out, "Export of %s %s started\n", args[0], args[1])
				case elements.ActionUnsupported:
					fmt.Fprintf(out, "%s %s does not support export\n", args[0], args[1])
				default:
					return errors.Wrapf(res.Err, "error exporting %s %s", args[0], args[1])
				}
				return nil
			})
		},
	}
}

func newKindsCommand(opts *globalOptions, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [PREFIX]",
		Short: "List the element kinds offered by the server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}
			return withClient(cmd, opts, func(ctx context.Context, c *client.Client) error {
				for _, k := range c.Kinds(prefix) {
					fmt.Fprintln(out, k)
				}
				return nil
			})
		},
	}
}
