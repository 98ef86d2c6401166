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
	"math/rand"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

var (
	// rng is used to make sampling decisions.
	//
	// Do not use crypto/rand. There is no reason for the decrease in
	// performance given this is not a security sensitive decision.
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))

	// Ensure concurrent safe access to rng and its underlying source. A
	// reservoir only shares its own serialization domain with its selector;
	// rng is shared by every simple selector in the process.
	rngMu sync.Mutex
)

// intn returns, as an int, a non-negative pseudo-random number in the
// half-open interval [0,n) from rng.
func intn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

// SimpleFixedSize returns a [Reservoir] of n slots filled by uniform
// reservoir sampling: every measurement offered during an aggregation
// period has an equal probability of surviving into the collected set.
func SimpleFixedSize[N int64 | float64](n int) Reservoir[N] {
	return FixedSize(n, NewSimpleSelector[N](n))
}

// NewSimpleSelector returns an [IndexSelector] implementing Vitter's
// Algorithm R over n slots. The first n offers of a period land in slots
// 0 through n-1 in arrival order. Offer number m > n replaces a uniformly
// random slot with probability n/m and is dropped otherwise. Reset restarts
// the count for the next period.
func NewSimpleSelector[N int64 | float64](n int) IndexSelector[N] {
	return &simpleSelector[N]{size: n}
}

type simpleSelector[N int64 | float64] struct {
	size int

	// count is the number of measurements seen this period.
	count int
}

func (s *simpleSelector[N]) ReservoirIndex(context.Context, time.Time, N, attribute.Set) int {
	s.count++
	if s.count <= s.size {
		return s.count - 1
	}

	// Give the measurement a size/count chance of replacing a held one.
	if i := intn(s.count); i < s.size {
		return i
	}
	return DropIndex
}

func (s *simpleSelector[N]) Reset() { s.count = 0 }
