// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package otelsdk connects reservoirs from the parent package to the
// OpenTelemetry Go SDK. The [Provider] function adapts any
// [exemplar.Reservoir] into the [sdkexemplar.ReservoirProvider] accepted
// by the SDK view configuration.
//
// The SDK serializes calls to a reservoir, so adapted reservoirs need no
// additional locking.
//
// Unlike the SDK bundled reservoirs, adapted reservoirs report an
// exemplar only for the collection cycle the measurement was recorded
// in. Cycles without offers collect no exemplars.
package otelsdk // import "github.com/MrAlias/exemplar/otelsdk"

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkexemplar "go.opentelemetry.io/otel/sdk/metric/exemplar"

	"github.com/MrAlias/exemplar"
	"github.com/MrAlias/exemplar/internal/throttle"
)

const reportInterval = 30 * time.Second

var errValueType = errors.New("unexpected exemplar value type")

// Provider adapts a reservoir constructor to a
// [sdkexemplar.ReservoirProvider]. The attribute set the SDK passes when
// creating a reservoir holds the point attributes of the timeseries. It
// is forwarded to newReservoir and retained so collected exemplars only
// carry attributes not already on the point.
func Provider[N int64 | float64](newReservoir func(point attribute.Set) exemplar.Reservoir[N]) sdkexemplar.ReservoirProvider {
	return func(attrs attribute.Set) sdkexemplar.Reservoir {
		return &adapter[N]{
			res:   newReservoir(attrs),
			point: attrs,
			limit: throttle.New(reportInterval),
		}
	}
}

// DefaultProvider returns a [sdkexemplar.ReservoirProvider] of
// [exemplar.Default] reservoirs holding n slots each.
func DefaultProvider[N int64 | float64](ctx context.Context, n int) sdkexemplar.ReservoirProvider {
	return Provider(func(attribute.Set) exemplar.Reservoir[N] {
		return exemplar.Default[N](ctx, n)
	})
}

// FixedSizeProvider returns a [sdkexemplar.ReservoirProvider] of
// [exemplar.SimpleFixedSize] reservoirs holding n slots each.
func FixedSizeProvider[N int64 | float64](n int) sdkexemplar.ReservoirProvider {
	return Provider(func(attribute.Set) exemplar.Reservoir[N] {
		return exemplar.SimpleFixedSize[N](n)
	})
}

// HistogramProvider returns a [sdkexemplar.ReservoirProvider] of
// [exemplar.Histogram] reservoirs aligned with bounds, holding each
// slots per bucket.
func HistogramProvider[N int64 | float64](bounds []float64, each int) sdkexemplar.ReservoirProvider {
	return Provider(func(attribute.Set) exemplar.Reservoir[N] {
		return exemplar.Histogram[N](bounds, each)
	})
}

type adapter[N int64 | float64] struct {
	res   exemplar.Reservoir[N]
	point attribute.Set
	limit *throttle.Limiter

	// buf carries collected exemplars between collection cycles so their
	// storage is reused.
	buf []exemplar.Exemplar[N]
}

func (a *adapter[N]) Offer(ctx context.Context, t time.Time, v sdkexemplar.Value, attrs []attribute.KeyValue) {
	n, ok := value[N](v)
	if !ok {
		a.limit.Do(func() {
			otel.Handle(fmt.Errorf("%w: %v, dropping measurement", errValueType, v.Type()))
		})
		return
	}
	a.res.Offer(ctx, t, n, attribute.NewSet(attrs...))
}

func (a *adapter[N]) Collect(dest *[]sdkexemplar.Exemplar) {
	a.res.CollectAndReset(a.point, &a.buf)

	out := (*dest)[:0]
	if cap(out) < len(a.buf) {
		out = make([]sdkexemplar.Exemplar, 0, len(a.buf))
	}
	for _, e := range a.buf {
		x := sdkexemplar.Exemplar{
			FilteredAttributes: e.FilteredAttributes,
			Time:               e.Time,
			Value:              sdkexemplar.NewValue(e.Value),
		}
		if e.TraceID.IsValid() {
			tid := e.TraceID
			x.TraceID = tid[:]
		}
		if e.SpanID.IsValid() {
			sid := e.SpanID
			x.SpanID = sid[:]
		}
		out = append(out, x)
	}
	*dest = out
}

// value converts v to N, reporting whether the value type of v matches.
func value[N int64 | float64](v sdkexemplar.Value) (N, bool) {
	var n N
	switch any(n).(type) {
	case int64:
		if v.Type() != sdkexemplar.Int64ValueType {
			return n, false
		}
		n = N(v.Int64())
	case float64:
		if v.Type() != sdkexemplar.Float64ValueType {
			return n, false
		}
		n = N(v.Float64())
	}
	return n, true
}
