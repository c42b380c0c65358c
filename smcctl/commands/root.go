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
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gosmc/libsmc-go/lib/client"
	"github.com/gosmc/libsmc-go/lib/logutils"
)

type globalOptions struct {
	configFile string
	logLevel   string
}

// NewRootCommand returns the smcctl command tree. Output is written to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "smcctl",
		Short: "Manage elements on a Security Management Center",
		Long: `Manage elements on a Security Management Center.

Connection details are read from the file given with --config, or from SMC_
environment variables (SMC_URL, SMC_API_KEY, SMC_API_VERSION, SMC_DOMAIN, ...)
when no file is given.`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logutils.ConfigureLogging(opts.logLevel)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"Filename containing connection configuration in YAML or JSON format.")
	cmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "",
		"Log level (debug, info, warning, error).")

	cmd.AddCommand(
		newGetCommand(opts, out),
		newSearchCommand(opts, out),
		newDeleteCommand(opts, out),
		newRenameCommand(opts, out),
		newCommentCommand(opts, out),
		newExportCommand(opts, out),
		newKindsCommand(opts, out),
	)
	return cmd
}

// clientFactory is replaced in tests.
var clientFactory = func(opts *globalOptions) (*client.Client, error) {
	return client.NewFromConfigFile(opts.configFile)
}

// withClient runs fn with a logged in client and logs out afterwards.
func withClient(cmd *cobra.Command, opts *globalOptions, fn func(ctx context.Context, c *client.Client) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := clientFactory(opts)
	if err != nil {
		return errors.Wrap(err, "error loading connection configuration")
	}
	if err := c.Login(ctx); err != nil {
		return errors.Wrap(err, "error logging in")
	}
	defer func() {
		if err := c.Logout(ctx); err != nil {
			log.WithError(err).Warning("Logout failed")
		}
	}()
	return fn(ctx, c)
}
