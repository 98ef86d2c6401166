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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestSlot(t *testing.T) {
	t.Run("Int64", testSlot[int64])
	t.Run("Float64", testSlot[float64])
}

func testSlot[N int64 | float64](t *testing.T) {
	ctx := context.Background()
	var s Slot[N]

	assert.True(t, s.Empty())
	_, ok := s.GetAndReset(*attribute.EmptySet())
	assert.False(t, ok, "an empty slot should not return an exemplar")

	s.Offer(ctx, staticTime, 0, alice)
	assert.False(t, s.Empty())

	e, ok := s.GetAndReset(*attribute.EmptySet())
	require.True(t, ok, "an occupied slot should return an exemplar")
	assert.Equal(t, N(0), e.Value, "a measurement of zero is a valid exemplar")
	assert.Equal(t, staticTime, e.Time)
	assert.Equal(t, []attribute.KeyValue{adminTrue, userAlice}, e.FilteredAttributes)

	assert.True(t, s.Empty(), "GetAndReset should reset the slot")
	_, ok = s.GetAndReset(*attribute.EmptySet())
	assert.False(t, ok, "an exemplar should be returned exactly once")
}

func TestSlotLastWriteWins(t *testing.T) {
	t.Run("Int64", testSlotLastWriteWins[int64])
	t.Run("Float64", testSlotLastWriteWins[float64])
}

func testSlotLastWriteWins[N int64 | float64](t *testing.T) {
	ctx := context.Background()
	var s Slot[N]

	s.Offer(ctx, staticTime, 1, alice)
	s.Offer(ctx, staticTime.Add(time.Second), 2, bob)

	e, ok := s.GetAndReset(*attribute.EmptySet())
	require.True(t, ok)
	assert.Equal(t, N(2), e.Value, "the newest offer should replace the held one")
	assert.Equal(t, staticTime.Add(time.Second), e.Time)
	assert.Equal(t, []attribute.KeyValue{adminFalse, userBob}, e.FilteredAttributes)
}

func TestSlotTraceContext(t *testing.T) {
	ctx := context.Background()
	var s Slot[float64]

	s.Offer(sampled(ctx), staticTime, 1, alice)
	e, ok := s.GetAndReset(alice)
	require.True(t, ok)
	assert.Equal(t, traceID, e.TraceID)
	assert.Equal(t, spanID, e.SpanID)
	assert.True(t, e.Traced())

	// Recording does not depend on the sampling decision.
	s.Offer(unsampled(ctx), staticTime, 1, alice)
	e, ok = s.GetAndReset(alice)
	require.True(t, ok)
	assert.True(t, e.Traced())

	s.Offer(ctx, staticTime, 1, alice)
	e, ok = s.GetAndReset(alice)
	require.True(t, ok)
	assert.False(t, e.Traced(), "no span context was offered")
	assert.Equal(t, trace.TraceID{}, e.TraceID)
	assert.Equal(t, trace.SpanID{}, e.SpanID)
}

func TestSlotAttributeDedup(t *testing.T) {
	t.Run("Int64", testSlotAttributeDedup[int64])
	t.Run("Float64", testSlotAttributeDedup[float64])
}

func testSlotAttributeDedup[N int64 | float64](t *testing.T) {
	ctx := context.Background()
	extra := attribute.Int("extra", 3)

	tests := []struct {
		name  string
		meas  attribute.Set
		point attribute.Set
		want  []attribute.KeyValue
	}{
		{
			name:  "Disjoint",
			meas:  attribute.NewSet(userAlice, adminTrue),
			point: attribute.NewSet(extra),
			want:  []attribute.KeyValue{adminTrue, userAlice},
		},
		{
			name:  "Subset",
			meas:  attribute.NewSet(userAlice, adminTrue, extra),
			point: attribute.NewSet(userAlice, adminTrue),
			want:  []attribute.KeyValue{extra},
		},
		{
			name:  "Equal",
			meas:  attribute.NewSet(userAlice, adminTrue),
			point: attribute.NewSet(userAlice, adminTrue),
			want:  nil,
		},
		{
			name:  "SameKeyDifferentValue",
			meas:  attribute.NewSet(userAlice, adminTrue),
			point: attribute.NewSet(userAlice, adminFalse),
			want:  []attribute.KeyValue{adminTrue},
		},
		{
			name:  "SameKeyDifferentType",
			meas:  attribute.NewSet(attribute.Int("port", 80)),
			point: attribute.NewSet(attribute.String("port", "80")),
			want:  []attribute.KeyValue{attribute.Int("port", 80)},
		},
		{
			name:  "SliceValuesRetained",
			meas:  attribute.NewSet(attribute.IntSlice("ids", []int{1, 2})),
			point: attribute.NewSet(attribute.IntSlice("ids", []int{1, 2})),
			want:  []attribute.KeyValue{attribute.IntSlice("ids", []int{1, 2})},
		},
		{
			name:  "EmptyMeasurement",
			meas:  *attribute.EmptySet(),
			point: alice,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Slot[N]
			s.Offer(ctx, staticTime, 1, tt.meas)
			e, ok := s.GetAndReset(tt.point)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.FilteredAttributes)
		})
	}
}
