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

const (
	KindSMCAPIConfig = "smcApiConfig"
	VersionCurrent   = "v1"

	DefaultTimeoutSeconds = 30
)

// SMCAPIConfig contains the connection information for a management server.
type SMCAPIConfig struct {
	Kind       string           `json:"kind"`
	APIVersion string           `json:"apiVersion"`
	Spec       SMCAPIConfigSpec `json:"spec,omitempty"`
}

// SMCAPIConfigSpec contains the specification for an SMCAPIConfig resource.
type SMCAPIConfigSpec struct {
	// Base URL of the server, for example https://smc.example.com:8082.
	URL string `json:"url" envconfig:"URL" validate:"required,url"`

	// Authentication key of the API client.
	APIKey string `json:"apiKey" envconfig:"API_KEY" validate:"required"`

	// API version to use, for example "6.10". Empty selects the newest
	// version the server offers.
	APIVersion string `json:"apiVersion,omitempty" envconfig:"API_VERSION" validate:"omitempty,apiVersion"`

	// Administrative domain to log in to. Empty logs in to the shared domain.
	Domain string `json:"domain,omitempty" envconfig:"DOMAIN"`

	// Request timeout in seconds.
	Timeout int `json:"timeout,omitempty" envconfig:"TIMEOUT" validate:"gte=0"`

	// Skip server certificate verification.
	Insecure bool `json:"insecure,omitempty" envconfig:"INSECURE"`

	// CA bundle used to verify the server certificate.
	CACertFile string `json:"caCertFile,omitempty" envconfig:"CA_CERT_FILE"`

	// Upper bound on the request rate. Zero means unlimited.
	RequestsPerSecond float64 `json:"requestsPerSecond,omitempty" envconfig:"REQUESTS_PER_SECOND" validate:"gte=0"`

	LogLevel string `json:"logLevel,omitempty" envconfig:"LOG_LEVEL" validate:"omitempty,logLevel"`
}

// NewSMCAPIConfig creates a new (zeroed) SMCAPIConfig struct with the kind and
// version initialised.
func NewSMCAPIConfig() *SMCAPIConfig {
	return &SMCAPIConfig{
		Kind:       KindSMCAPIConfig,
		APIVersion: VersionCurrent,
	}
}

// UpdateWithDefaults sets defaults on any unset field that has one.
func (c *SMCAPIConfig) UpdateWithDefaults() {
	if c.Spec.Timeout == 0 {
		c.Spec.Timeout = DefaultTimeoutSeconds
	}
}
