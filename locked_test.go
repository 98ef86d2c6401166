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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/attribute"
)

func TestLocked(t *testing.T) {
	ctx := context.Background()
	r := Locked(SimpleFixedSize[int64](4))
	assert.Equal(t, 4, r.MaxSize())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for j := int64(0); j < 100; j++ {
				r.Offer(ctx, staticTime, base+j, alice)
			}
		}(int64(i) * 100)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		var out []Exemplar[int64]
		for i := 0; i < 50; i++ {
			r.CollectAndReset(*attribute.EmptySet(), &out)
			assert.LessOrEqual(t, len(out), 4)
		}
	}()

	wg.Wait()
	<-done

	var got []Exemplar[int64]
	r.CollectAndReset(*attribute.EmptySet(), &got)
	assert.LessOrEqual(t, len(got), 4)
}

func TestLockedForwards(t *testing.T) {
	ctx := context.Background()
	sel := &scriptSelector[float64]{script: []int{0}}
	r := Locked(FixedSize[float64](1, sel))

	r.Offer(ctx, staticTime, 0.5, alice)

	var got []Exemplar[float64]
	r.CollectAndReset(alice, &got)
	require.Len(t, got, 1)
	assert.Equal(t, 0.5, got[0].Value)
	assert.Equal(t, 1, sel.resets)
}
