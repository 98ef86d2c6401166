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

package exemplar // import "github.com/MrAlias/exemplar"

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Filter determines whether a measurement is offered to a reservoir.
type Filter[N int64 | float64] func(ctx context.Context, v N, attrs attribute.Set) bool

// AlwaysOn accepts every measurement.
func AlwaysOn[N int64 | float64](context.Context, N, attribute.Set) bool { return true }

// AlwaysOff rejects every measurement.
func AlwaysOff[N int64 | float64](context.Context, N, attribute.Set) bool { return false }

// TraceBased accepts measurements made in the context of a sampled span.
func TraceBased[N int64 | float64](ctx context.Context, _ N, _ attribute.Set) bool {
	return trace.SpanContextFromContext(ctx).IsSampled()
}

// Filtered returns a [Reservoir] wrapping r that offers a measurement to
// r only if f accepts it. Collection is forwarded unchanged. A nil f
// means no filtering; r itself is returned.
func Filtered[N int64 | float64](r Reservoir[N], f Filter[N]) Reservoir[N] {
	if f == nil {
		return r
	}
	return filtered[N]{Reservoir: r, fn: f}
}

// SampledFilter returns a [Reservoir] wrapping r that will only offer
// measurements to r if the passed context associated with the
// measurement contains a sampled [trace.SpanContext].
func SampledFilter[N int64 | float64](r Reservoir[N]) Reservoir[N] {
	return Filtered(r, TraceBased[N])
}

type filtered[N int64 | float64] struct {
	Reservoir[N]

	fn Filter[N]
}

func (f filtered[N]) Offer(ctx context.Context, t time.Time, v N, attrs attribute.Set) {
	if f.fn(ctx, v, attrs) {
		f.Reservoir.Offer(ctx, t, v, attrs)
	}
}
