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

package elements

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchCount uint64

	cacheFetches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "smc_element_cache_fetches_total",
		Help: "Number of times an element cache was populated from the server.",
	})
)

func init() {
	prometheus.MustRegister(cacheFetches)
}

func countFetch() {
	atomic.AddUint64(&fetchCount, 1)
	cacheFetches.Inc()
}

// FetchCount returns the number of element fetches performed by this process.
// It is diagnostic only.
func FetchCount() uint64 {
	return atomic.LoadUint64(&fetchCount)
}
