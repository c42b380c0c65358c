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

package rest

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
	log "github.com/sirupsen/logrus"

	"github.com/gosmc/libsmc-go/lib/backend/model"
)

// parseVersions reads the versions offered by the server root:
// {"version": [{"rel": "6.10", "href": ".../6.10/api"}, ...]}.
func parseVersions(p model.Payload) []string {
	var versions []string
	for _, l := range model.ParseLinks(p["version"]) {
		versions = append(versions, l.Rel)
	}
	return versions
}

// selectVersion returns wanted if the server offers it, or the newest
// offered version when wanted is empty. Versions are compared numerically so
// that 6.10 is newer than 6.9.
func selectVersion(available []string, wanted string) (string, error) {
	if len(available) == 0 {
		return "", fmt.Errorf("server offers no API versions")
	}
	if wanted != "" {
		for _, v := range available {
			if v == wanted {
				return v, nil
			}
		}
		return "", fmt.Errorf("API version %s is not supported by the server, available: %s",
			wanted, strings.Join(available, ", "))
	}

	var newest *semver.Version
	selected := ""
	for _, v := range available {
		sv, err := toSemver(v)
		if err != nil {
			log.WithField("version", v).Debug("Ignoring unparseable API version")
			continue
		}
		if newest == nil || newest.LessThan(*sv) {
			newest = sv
			selected = v
		}
	}
	if selected == "" {
		return "", fmt.Errorf("no usable API version in: %s", strings.Join(available, ", "))
	}
	return selected, nil
}

// API versions are "major.minor".
func toSemver(v string) (*semver.Version, error) {
	if strings.Count(v, ".") == 1 {
		v += ".0"
	}
	return semver.NewVersion(v)
}
