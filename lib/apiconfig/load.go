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

package apiconfig

import (
	"io/ioutil"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	yaml "github.com/projectcalico/go-yaml-wrapper"
)

// Replaced in tests.
var ioutil_ReadFile = ioutil.ReadFile

// LoadClientConfig loads the client config from the specified file (if
// specified) or from environment variables (if the file is not specified).
// The returned config has defaults applied and has been validated.
func LoadClientConfig(filename string) (*SMCAPIConfig, error) {
	var c *SMCAPIConfig
	if filename != "" {
		b, err := ioutil_ReadFile(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", filename)
		}
		if c, err = LoadClientConfigFromBytes(b); err != nil {
			return nil, errors.Wrapf(err, "syntax error in %s", filename)
		}
	} else {
		var err error
		if c, err = LoadClientConfigFromEnvironment(); err != nil {
			return nil, err
		}
	}

	c.UpdateWithDefaults()
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadClientConfigFromBytes loads the config from the supplied bytes containing
// YAML or JSON format data.
func LoadClientConfigFromBytes(b []byte) (*SMCAPIConfig, error) {
	var c SMCAPIConfig

	log.Info("Loading config from JSON or YAML data")
	if err := yaml.UnmarshalStrict(b, &c); err != nil {
		return nil, err
	}

	if c.APIVersion != VersionCurrent {
		return nil, errors.Errorf("invalid config file: unknown APIVersion '%s'", c.APIVersion)
	}
	if c.Kind != KindSMCAPIConfig {
		return nil, errors.Errorf("invalid config file: expected kind '%s', got '%s'", KindSMCAPIConfig, c.Kind)
	}

	log.WithField("url", c.Spec.URL).Info("Loaded client config from file")
	return &c, nil
}

// LoadClientConfigFromEnvironment loads the config from SMC_ prefixed
// environment variables.
func LoadClientConfigFromEnvironment() (*SMCAPIConfig, error) {
	c := NewSMCAPIConfig()

	log.Info("Loading config from environment")
	if err := envconfig.Process("SMC", &c.Spec); err != nil {
		return nil, errors.Wrap(err, "error reading config from environment")
	}
	return c, nil
}
