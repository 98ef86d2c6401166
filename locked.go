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
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Locked returns a [Reservoir] wrapping r so calls to Offer and
// CollectAndReset are mutually exclusive. Use it when the owning
// aggregator does not already serialize access to r.
func Locked[N int64 | float64](r Reservoir[N]) Reservoir[N] {
	return &locked[N]{res: r}
}

type locked[N int64 | float64] struct {
	sync.Mutex

	res Reservoir[N]
}

func (l *locked[N]) Offer(ctx context.Context, t time.Time, v N, attrs attribute.Set) {
	l.Lock()
	defer l.Unlock()
	l.res.Offer(ctx, t, v, attrs)
}

func (l *locked[N]) CollectAndReset(point attribute.Set, dest *[]Exemplar[N]) {
	l.Lock()
	defer l.Unlock()
	l.res.CollectAndReset(point, dest)
}

// MaxSize is immutable; it does not take the lock.
func (l *locked[N]) MaxSize() int { return l.res.MaxSize() }
