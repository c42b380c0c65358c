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
	"github.com/prometheus/client_golang/prometheus"
)

var requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "smc_rest_requests_total",
	Help: "Number of requests sent to the management server, by method and response code.",
}, []string{"method", "code"})

func init() {
	prometheus.MustRegister(requestCounter)
}

func countRequest(method string, code int) {
	requestCounter.WithLabelValues(method, codeLabel(code)).Inc()
}
