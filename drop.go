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

// Drop returns a [Reservoir] that retains nothing.
func Drop[N int64 | float64]() Reservoir[N] { return drop[N]{} }

type drop[N int64 | float64] struct{}

func (drop[N]) Offer(context.Context, time.Time, N, attribute.Set) {}

func (drop[N]) CollectAndReset(_ attribute.Set, dest *[]Exemplar[N]) {
	*dest = (*dest)[:0]
}

func (drop[N]) MaxSize() int { return 0 }
