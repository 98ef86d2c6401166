// Copyright The OpenTelemetry Authors
//
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

// Package exemplar provides bounded-capacity sampling reservoirs for
// OpenTelemetry metrics pipelines.
//
// A reservoir retains a small, representative set of individual
// measurements, called exemplars, for each aggregation period so aggregated
// metric values can be correlated back to the distributed-trace context that
// was active when a sample was taken. Producers continuously call
// [Reservoir.Offer] during a period; at the period boundary a collector
// calls [Reservoir.CollectAndReset] exactly once, draining all retained
// measurements and leaving the reservoir ready for the next period.
//
// Measurement placement is delegated to an [IndexSelector]. The provided
// selectors implement uniform reservoir sampling ([NewSimpleSelector]),
// explicit-bucket histogram alignment ([NewHistogramSelector]),
// base-2 exponential-bucket histogram alignment ([NewExponentialSelector]),
// and attribute-set keyed placement ([NewKeyedSelector]). Custom policies
// plug in through [FixedSize] with an [IndexSelector] or an
// [IndexSelectorFunc].
//
// Reservoirs are plain synchronous data structures without internal locking.
// Callers that cannot otherwise serialize Offer and CollectAndReset on the
// same reservoir should wrap it with [Locked]. See the [Reservoir]
// documentation for the full synchronization contract.
//
// The otelsdk sub-package adapts these reservoirs to the
// [go.opentelemetry.io/otel/sdk/metric/exemplar] plug-in surface of the
// default SDK.
package exemplar // import "github.com/MrAlias/exemplar"
