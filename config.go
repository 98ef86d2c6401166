// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package exemplar // import "github.com/MrAlias/exemplar"

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sethvargo/go-envconfig"
	"go.opentelemetry.io/otel"
)

var errFilterKind = errors.New("unknown exemplar filter")

// FilterKind names a measurement filtering policy.
type FilterKind int

const (
	// AlwaysOffKind keeps no measurements.
	AlwaysOffKind FilterKind = iota
	// AlwaysOnKind keeps all measurements.
	AlwaysOnKind
	// TraceBasedKind keeps measurements recorded in the context of a
	// sampled span.
	TraceBasedKind
)

// String returns the environment variable spelling of k.
func (k FilterKind) String() string {
	switch k {
	case AlwaysOffKind:
		return "always_off"
	case AlwaysOnKind:
		return "always_on"
	case TraceBasedKind:
		return "trace_based"
	}
	return fmt.Sprintf("FilterKind(%d)", int(k))
}

// MarshalText implements [encoding.TextMarshaler].
func (k FilterKind) MarshalText() ([]byte, error) {
	switch k {
	case AlwaysOffKind, AlwaysOnKind, TraceBasedKind:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", errFilterKind, int(k))
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *FilterKind) UnmarshalText(data []byte) error {
	switch s := string(data); s {
	case "always_off":
		*k = AlwaysOffKind
	case "always_on":
		*k = AlwaysOnKind
	case "trace_based":
		*k = TraceBasedKind
	default:
		return fmt.Errorf("%w: %q", errFilterKind, s)
	}
	return nil
}

type envConfig struct {
	Filter FilterKind `env:"OTEL_METRICS_EXEMPLAR_FILTER,default=trace_based"`
}

// FilterKindFromEnv returns the filtering policy named by the
// OTEL_METRICS_EXEMPLAR_FILTER environment variable. An unset variable
// resolves to [TraceBasedKind], the OpenTelemetry default. An
// unrecognized value is returned as an error alongside [TraceBasedKind].
func FilterKindFromEnv(ctx context.Context) (FilterKind, error) {
	var c envConfig
	if err := envconfig.Process(ctx, &c); err != nil {
		return TraceBasedKind, err
	}
	getLogger().V(8).Info("resolved exemplar filter", "env", "OTEL_METRICS_EXEMPLAR_FILTER", "filter", c.Filter)
	return c.Filter, nil
}

// NewFilter returns the [Filter] implementing kind. Unknown kinds fall
// back to trace based filtering.
func NewFilter[N int64 | float64](kind FilterKind) Filter[N] {
	switch kind {
	case AlwaysOffKind:
		return AlwaysOff[N]
	case AlwaysOnKind:
		return AlwaysOn[N]
	}
	return TraceBased[N]
}

// Default returns the reservoir used when no explicit policy is
// configured: a [SimpleFixedSize] of n slots behind the filtering policy
// resolved by [FilterKindFromEnv]. Resolution errors are passed to
// [otel.Handle] and the default policy applies. A non-positive n is
// replaced with the number of CPUs.
func Default[N int64 | float64](ctx context.Context, n int) Reservoir[N] {
	if n <= 0 {
		n = runtime.NumCPU()
		if n < 1 {
			n = 1
		}
	}
	kind, err := FilterKindFromEnv(ctx)
	if err != nil {
		otel.Handle(err)
		kind = TraceBasedKind
	}
	getLogger().V(4).Info("default exemplar reservoir", "filter", kind, "size", n)
	switch kind {
	case AlwaysOffKind:
		return Drop[N]()
	case AlwaysOnKind:
		return SimpleFixedSize[N](n)
	}
	return SampledFilter(SimpleFixedSize[N](n))
}
