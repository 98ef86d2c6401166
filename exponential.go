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
	"math"
	"time"

	"github.com/lightstep/go-expohisto/mapping"
	"github.com/lightstep/go-expohisto/mapping/exponent"
	"github.com/lightstep/go-expohisto/mapping/logarithm"
	"go.opentelemetry.io/otel/attribute"
)

var (
	errExponentialSize = errors.New("exponential selector: need at least two slots")
	errExponentialMin  = errors.New("exponential selector: min must be positive and finite")
)

// Exponential returns a [Reservoir] of n slots aligned with a base-2
// exponential-bucket histogram of the given scale. Slot 0 holds the most
// recent non-positive measurement. Slots 1 through n-1 correspond to a
// run of n-1 consecutive exponential buckets starting at the bucket
// containing min; values mapping below or above that run are clamped to
// its first and last slot.
func Exponential[N int64 | float64](scale int32, min float64, n int) (Reservoir[N], error) {
	s, err := NewExponentialSelector[N](scale, min, n)
	if err != nil {
		return nil, err
	}
	return FixedSize(n, s), nil
}

// NewExponentialSelector returns the [IndexSelector] used by
// [Exponential]. The scale must be valid for the standard exponential
// histogram mappings, min must be a positive finite value, and n must be
// at least two so both the non-positive slot and one bucket slot exist.
func NewExponentialSelector[N int64 | float64](scale int32, min float64, n int) (IndexSelector[N], error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", errExponentialSize, n)
	}
	if min <= 0 || math.IsInf(min, 1) || math.IsNaN(min) {
		return nil, fmt.Errorf("%w: %v", errExponentialMin, min)
	}
	m, err := newMapping(scale)
	if err != nil {
		return nil, err
	}
	return &exponentialSelector[N]{m: m, base: m.MapToIndex(min), size: n}, nil
}

type exponentialSelector[N int64 | float64] struct {
	m    mapping.Mapping
	base int32
	size int
}

func (s *exponentialSelector[N]) ReservoirIndex(_ context.Context, _ time.Time, v N, _ attribute.Set) int {
	f := float64(v)
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	// The mapping contract excludes +Inf along with zeros and NaN.
	if math.IsInf(f, 1) {
		return s.size - 1
	}
	i := int(s.m.MapToIndex(f)-s.base) + 1
	if i < 1 {
		i = 1
	}
	if i >= s.size {
		i = s.size - 1
	}
	return i
}

func (s *exponentialSelector[N]) Reset() {}

// newMapping returns the exponent mapping for scales <= 0 and the
// logarithm mapping otherwise.
func newMapping(scale int32) (mapping.Mapping, error) {
	if scale <= 0 {
		return exponent.NewMapping(scale)
	}
	return logarithm.NewMapping(scale)
}
