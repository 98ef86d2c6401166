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
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Histogram returns a [Reservoir] aligned with an explicit-bucket
// histogram. Measurements are routed to the bucket their value falls in,
// following the standard histogram convention of upper-inclusive bounds,
// and each bucket keeps its own most recent measurements. The reservoir
// holds each slots per bucket, including the overflow bucket above the
// last bound, for (len(bounds)+1)*each slots in total.
//
// The bounds are copied and sorted; the passed slice is not mutated and
// does not need to be ordered.
func Histogram[N int64 | float64](bounds []float64, each int) Reservoir[N] {
	s := newHistogramSelector[N](bounds, each)
	return FixedSize(s.numSlots(), s)
}

// NewHistogramSelector returns an [IndexSelector] that routes a
// measurement to the bucket of bounds containing its value, cycling
// through the each slots of that bucket in arrival order. With each
// equal to one a bucket always holds its last measurement; with a larger
// each it holds its last each measurements.
func NewHistogramSelector[N int64 | float64](bounds []float64, each int) IndexSelector[N] {
	return newHistogramSelector[N](bounds, each)
}

func newHistogramSelector[N int64 | float64](bounds []float64, each int) *histogramSelector[N] {
	if each < 1 {
		each = 1
	}
	b := make([]float64, len(bounds))
	copy(b, bounds)
	sort.Float64s(b)
	return &histogramSelector[N]{
		bounds: b,
		each:   each,
		cursor: make([]int, len(b)+1),
	}
}

type histogramSelector[N int64 | float64] struct {
	// bounds are bucket upper boundaries in ascending order.
	bounds []float64

	// each is the slot capacity of a single bucket.
	each int

	// cursor tracks the next slot offset of every bucket for the current
	// period.
	cursor []int
}

func (s *histogramSelector[N]) numSlots() int { return (len(s.bounds) + 1) * s.each }

func (s *histogramSelector[N]) ReservoirIndex(_ context.Context, _ time.Time, v N, _ attribute.Set) int {
	b := sort.SearchFloat64s(s.bounds, float64(v))
	i := b*s.each + s.cursor[b]%s.each
	s.cursor[b]++
	return i
}

func (s *histogramSelector[N]) Reset() {
	for i := range s.cursor {
		s.cursor[i] = 0
	}
}
