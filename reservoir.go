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
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/MrAlias/exemplar/internal/throttle"
)

// reportInterval bounds how often a reservoir reports a misbehaving
// selector through the global error handler.
const reportInterval = 30 * time.Second

var (
	errNilSelector   = errors.New("exemplar reservoir: nil index selector, dropping all measurements")
	errSelectorPanic = errors.New("exemplar reservoir: index selector panicked")
	errSelResetPanic = errors.New("exemplar reservoir: index selector panicked in Reset")
)

// Reservoir holds the sampled exemplars of one metric stream for one
// aggregation period.
//
// A Reservoir performs no internal synchronization: it is a plain
// synchronous data structure, and no operation blocks or performs I/O. An
// Offer racing a CollectAndReset on the same reservoir must be externally
// serialized by the owning aggregator, either with a lock shared with the
// aggregation state, by swapping in a fresh reservoir each period, or by
// wrapping the reservoir with [Locked]. Concurrent Offers addressing
// distinct slots are independent; Offers racing on the same slot resolve to
// last write wins, an accepted approximation for sampling that is already
// order sensitive.
type Reservoir[N int64 | float64] interface {
	// Offer presents a measurement for sampling. The measurement is either
	// stored in a slot, overwriting that slot's prior content, or dropped.
	// Offer never fails.
	Offer(ctx context.Context, t time.Time, v N, attrs attribute.Set)

	// CollectAndReset drains every held measurement into dest in ascending
	// slot-index order, reusing dest's capacity, and resets the reservoir
	// for the next aggregation period. dest is always left valid; when
	// nothing was sampled it has length zero. It is intended to be called
	// once per export cycle.
	CollectAndReset(point attribute.Set, dest *[]Exemplar[N])

	// MaxSize returns the fixed number of slots, the maximum number of
	// exemplars a single collection can yield.
	MaxSize() int
}

// FixedSize returns a [Reservoir] of exactly n slots that delegates
// measurement placement to sel. The capacity is allocated up front and
// never changes.
//
// A negative n is treated as zero. A zero-capacity reservoir is valid:
// every offer is dropped and collection always yields an empty result. A
// nil sel also drops every measurement and is reported through
// [go.opentelemetry.io/otel.Handle].
func FixedSize[N int64 | float64](n int, sel IndexSelector[N]) Reservoir[N] {
	if n < 0 {
		n = 0
	}
	if sel == nil {
		otel.Handle(errNilSelector)
		sel = IndexSelectorFunc[N](func(context.Context, time.Time, N, attribute.Set) int {
			return DropIndex
		})
	}
	return &fixedSizeReservoir[N]{
		slots: make([]Slot[N], n),
		sel:   sel,
		limit: throttle.New(reportInterval),
	}
}

type fixedSizeReservoir[N int64 | float64] struct {
	slots []Slot[N]
	sel   IndexSelector[N]
	limit *throttle.Limiter
}

func (r *fixedSizeReservoir[N]) Offer(ctx context.Context, t time.Time, v N, attrs attribute.Set) {
	if len(r.slots) == 0 {
		return
	}

	i := r.index(ctx, t, v, attrs)
	if i < 0 || i >= len(r.slots) {
		// Drop. Out-of-range selections are never a fault.
		return
	}
	r.slots[i].Offer(ctx, t, v, attrs)
}

// index guards the selector call. A panicking selector degrades to
// [DropIndex] and is reported, rate limited, through the global error
// handler so a misbehaving policy cannot destabilize the instrumented
// application.
func (r *fixedSizeReservoir[N]) index(ctx context.Context, t time.Time, v N, attrs attribute.Set) (i int) {
	defer func() {
		if p := recover(); p != nil {
			i = DropIndex
			r.limit.Do(func() {
				otel.Handle(fmt.Errorf("%w: %v", errSelectorPanic, p))
			})
		}
	}()
	return r.sel.ReservoirIndex(ctx, t, v, attrs)
}

func (r *fixedSizeReservoir[N]) CollectAndReset(point attribute.Set, dest *[]Exemplar[N]) {
	out := minCapEmpty(*dest, len(r.slots))
	for i := range r.slots {
		if e, ok := r.slots[i].GetAndReset(point); ok {
			out = append(out, e)
		}
	}
	r.reset()
	*dest = out
}

// reset guards the selector's period-boundary hook the same way index
// guards selection: a panic is contained and reported so collection still
// completes for the caller.
func (r *fixedSizeReservoir[N]) reset() {
	defer func() {
		if p := recover(); p != nil {
			r.limit.Do(func() {
				otel.Handle(fmt.Errorf("%w: %v", errSelResetPanic, p))
			})
		}
	}()
	r.sel.Reset()
}

func (r *fixedSizeReservoir[N]) MaxSize() int { return len(r.slots) }

func minCapEmpty[T any](v []T, n int) []T {
	if cap(v) < n {
		return make([]T, 0, n)
	}
	return v[:0]
}
