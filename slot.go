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

// Slot is a single-capacity holder for one in-flight [Exemplar] candidate.
//
// A Slot is either empty or occupied. It becomes occupied by any call to
// Offer and empty again by any call to GetAndReset, regardless of whether
// the extracted value was read. The occupancy state is tracked explicitly so
// a legitimately zero-valued measurement is never confused with an empty
// slot.
//
// The zero value of a Slot is empty and ready for use.
//
// A Slot performs no internal synchronization. See [Reservoir] for the
// synchronization contract.
type Slot[N int64 | float64] struct {
	attrs    attribute.Set
	time     time.Time
	value    N
	sc       trace.SpanContext
	occupied bool
}

// Offer stores a measurement in s, unconditionally overwriting any unread
// prior content (last write wins, no merge). The attrs are retained in full;
// deduplication against point attributes happens at extraction time. The
// span context of ctx is captured for trace linkage. Offer always succeeds.
func (s *Slot[N]) Offer(ctx context.Context, t time.Time, v N, attrs attribute.Set) {
	s.attrs = attrs
	s.time = t
	s.value = v
	s.sc = trace.SpanContextFromContext(ctx)
	s.occupied = true
}

// Empty reports whether s holds no measurement.
func (s *Slot[N]) Empty() bool { return !s.occupied }

// GetAndReset extracts the held measurement as an [Exemplar] and resets s to
// empty. If s is already empty it returns false and has no effect; the call
// is safe to repeat.
//
// The returned Exemplar's FilteredAttributes are the slot's attributes with
// every key removed whose value equals the same key's value in point.
// Equality is intentionally shallow: scalar values compare exactly, while
// slice-valued attributes are never considered equal and are always
// retained. A key present in both sets with a different value is retained.
func (s *Slot[N]) GetAndReset(point attribute.Set) (Exemplar[N], bool) {
	if !s.occupied {
		return Exemplar[N]{}, false
	}

	e := Exemplar[N]{
		FilteredAttributes: filterAttributes(s.attrs, point),
		Time:               s.time,
		Value:              s.value,
	}
	if s.sc.HasTraceID() {
		e.TraceID = s.sc.TraceID()
	}
	if s.sc.HasSpanID() {
		e.SpanID = s.sc.SpanID()
	}

	*s = Slot[N]{}
	return e, true
}

// filterAttributes returns the attributes of meas not duplicated by point.
// Both sets iterate in ascending key order, so a single parallel walk
// suffices.
func filterAttributes(meas, point attribute.Set) []attribute.KeyValue {
	var out []attribute.KeyValue

	mi, pi := meas.Iter(), point.Iter()
	pOK := pi.Next()
	for mi.Next() {
		mkv := mi.Attribute()
		for pOK && pi.Attribute().Key < mkv.Key {
			pOK = pi.Next()
		}
		if pOK {
			pkv := pi.Attribute()
			if pkv.Key == mkv.Key && equalScalar(mkv.Value, pkv.Value) {
				continue
			}
		}
		out = append(out, mkv)
	}
	return out
}

// equalScalar reports whether a and b hold the same scalar value. Slice
// values never compare equal: the deduplication policy treats composite
// values as distinct instances even when structurally identical.
func equalScalar(a, b attribute.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Type() {
	case attribute.BOOLSLICE, attribute.INT64SLICE, attribute.FLOAT64SLICE, attribute.STRINGSLICE:
		return false
	default:
		return a == b
	}
}
