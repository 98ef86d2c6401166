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
)

// DropIndex is the sentinel index an [IndexSelector] returns for a
// measurement that should not be retained.
const DropIndex = -1

// IndexSelector chooses the slot a measurement is placed in by a fixed-size
// reservoir.
//
// ReservoirIndex maps a measurement to a target slot index. Any returned
// value outside [0, n) for a reservoir of n slots, canonically [DropIndex],
// drops the measurement with no observable effect on reservoir state. A
// selector must never address memory beyond the reservoir's n slots.
// Implementations should not panic; if one does, the reservoir recovers and
// treats the selection as a drop.
//
// Reset marks an aggregation period boundary. It is called by
// [Reservoir.CollectAndReset] after all slots have drained so selectors can
// clear per-period state such as offer counts.
//
// Selector state shares its reservoir's synchronization domain; see
// [Reservoir] for the contract.
type IndexSelector[N int64 | float64] interface {
	ReservoirIndex(ctx context.Context, t time.Time, v N, attrs attribute.Set) int
	Reset()
}

// IndexSelectorFunc adapts an ordinary function to an [IndexSelector] with a
// no-op Reset.
type IndexSelectorFunc[N int64 | float64] func(ctx context.Context, t time.Time, v N, attrs attribute.Set) int

// ReservoirIndex returns f(ctx, t, v, attrs).
func (f IndexSelectorFunc[N]) ReservoirIndex(ctx context.Context, t time.Time, v N, attrs attribute.Set) int {
	return f(ctx, t, v, attrs)
}

// Reset does nothing.
func (f IndexSelectorFunc[N]) Reset() {}
