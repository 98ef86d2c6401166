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

	"github.com/MrAlias/exemplar/internal/fingerprint"
)

// Keyed returns a [Reservoir] of n slots where a measurement's slot is
// chosen by a stable fingerprint of its full attribute set. Measurements
// carrying the same attributes always share a slot, so every collected
// exemplar is the most recent measurement of its attribute cohort.
// Distinct cohorts may collide when their count exceeds n.
func Keyed[N int64 | float64](n int) Reservoir[N] {
	return FixedSize(n, NewKeyedSelector[N](n))
}

// NewKeyedSelector returns the stateless [IndexSelector] used by [Keyed].
func NewKeyedSelector[N int64 | float64](n int) IndexSelector[N] {
	return keyedSelector[N]{size: n}
}

type keyedSelector[N int64 | float64] struct{ size int }

func (s keyedSelector[N]) ReservoirIndex(_ context.Context, _ time.Time, _ N, attrs attribute.Set) int {
	if s.size <= 0 {
		return DropIndex
	}
	return int(fingerprint.Set(attrs) % uint64(s.size))
}

func (s keyedSelector[N]) Reset() {}
