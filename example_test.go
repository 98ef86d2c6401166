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

package exemplar_test

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MrAlias/exemplar"
)

func ExampleHistogram() {
	ctx := context.Background()

	// One slot per latency bucket: (-Inf, 0.1], (0.1, 1], (1, +Inf).
	r := exemplar.Histogram[float64]([]float64{0.1, 1}, 1)

	now := time.Now()
	r.Offer(ctx, now, 0.05, attribute.NewSet(attribute.String("path", "/healthz")))
	r.Offer(ctx, now, 0.8, attribute.NewSet(attribute.String("path", "/users")))
	r.Offer(ctx, now, 0.7, attribute.NewSet(attribute.String("path", "/login")))
	r.Offer(ctx, now, 30, attribute.NewSet(attribute.String("path", "/reports")))

	var latencies []exemplar.Exemplar[float64]
	r.CollectAndReset(*attribute.EmptySet(), &latencies)
	for _, e := range latencies {
		fmt.Println(e.Value, e.FilteredAttributes[0].Value.AsString())
	}
	// Output:
	// 0.05 /healthz
	// 0.7 /login
	// 30 /reports
}

func ExampleFixedSize() {
	ctx := context.Background()

	// Route measurements by sign, keeping the latest of each.
	sel := exemplar.IndexSelectorFunc[int64](func(_ context.Context, _ time.Time, v int64, _ attribute.Set) int {
		if v < 0 {
			return 0
		}
		return 1
	})
	r := exemplar.FixedSize(2, sel)

	now := time.Now()
	r.Offer(ctx, now, -5, *attribute.EmptySet())
	r.Offer(ctx, now, 3, *attribute.EmptySet())
	r.Offer(ctx, now, 8, *attribute.EmptySet())

	var latest []exemplar.Exemplar[int64]
	r.CollectAndReset(*attribute.EmptySet(), &latest)
	for _, e := range latest {
		fmt.Println(e.Value)
	}
	// Output:
	// -5
	// 8
}
