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
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Exemplar is a measurement sampled from a metric stream, retained so the
// stream's aggregated value can be correlated back to the individual
// measurement and any distributed-trace context active when it was made.
//
// An Exemplar is an immutable snapshot. It is produced by
// [Slot.GetAndReset], returned by value, and never referenced by the
// producing reservoir afterward.
type Exemplar[N int64 | float64] struct {
	// FilteredAttributes are the attributes recorded with the measurement
	// that are not already represented by the metric data point the exemplar
	// decorates.
	FilteredAttributes []attribute.KeyValue
	// Time is when the measurement was made.
	Time time.Time
	// Value is the measured value.
	Value N
	// SpanID is the ID of the span active when the measurement was made. It
	// is the zero value if no valid span context was active.
	SpanID trace.SpanID
	// TraceID is the ID of the trace active when the measurement was made.
	// It is the zero value if no valid span context was active.
	TraceID trace.TraceID
}

// Traced reports whether e was recorded within a span context carrying valid
// trace and span IDs.
func (e Exemplar[N]) Traced() bool {
	return e.TraceID.IsValid() && e.SpanID.IsValid()
}
