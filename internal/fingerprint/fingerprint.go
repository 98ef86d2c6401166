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

// Package fingerprint computes stable 64-bit fingerprints of metric
// attribute sets.
package fingerprint // import "github.com/MrAlias/exemplar/internal/fingerprint"

import (
	"math"

	farm "github.com/dgryski/go-farm"
	"go.opentelemetry.io/otel/attribute"
)

// String returns the fingerprint of s.
func String(s string) uint64 { return farm.Fingerprint64([]byte(s)) }

// Bool returns the fingerprint of b.
func Bool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Int64 returns the fingerprint of i.
func Int64(i int64) uint64 { return uint64(i) }

// Float64 returns the fingerprint of f.
func Float64(f float64) uint64 { return math.Float64bits(f) }

// Mix folds any number of fingerprints into one.
func Mix(is ...uint64) uint64 {
	if len(is) == 0 {
		return 0
	}
	h := is[0]
	for _, i := range is[1:] {
		h = mix(h, i)
	}
	return h
}

// mix is a Murmur-inspired 64-bit hash combiner.
func mix(x, y uint64) uint64 {
	const mul = 0x9ddfea08eb382d69
	a := (x ^ y) * mul
	a ^= a >> 47
	b := (y ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

// Set returns the fingerprint of attrs. Sets holding equal key-value
// pairs share a fingerprint regardless of construction order, a property
// inherited from the sorted iteration order of [attribute.Set].
func Set(attrs attribute.Set) uint64 {
	h := uint64(attrs.Len())
	for it := attrs.Iter(); it.Next(); {
		kv := it.Attribute()
		h = Mix(h, String(string(kv.Key)), value(kv.Value))
	}
	return h
}

// value returns the fingerprint of v, folding slice values element-wise.
func value(v attribute.Value) uint64 {
	h := uint64(v.Type())
	switch v.Type() {
	case attribute.BOOL:
		h = Mix(h, Bool(v.AsBool()))
	case attribute.INT64:
		h = Mix(h, Int64(v.AsInt64()))
	case attribute.FLOAT64:
		h = Mix(h, Float64(v.AsFloat64()))
	case attribute.STRING:
		h = Mix(h, String(v.AsString()))
	case attribute.BOOLSLICE:
		for _, b := range v.AsBoolSlice() {
			h = Mix(h, Bool(b))
		}
	case attribute.INT64SLICE:
		for _, i := range v.AsInt64Slice() {
			h = Mix(h, Int64(i))
		}
	case attribute.FLOAT64SLICE:
		for _, f := range v.AsFloat64Slice() {
			h = Mix(h, Float64(f))
		}
	case attribute.STRINGSLICE:
		for _, s := range v.AsStringSlice() {
			h = Mix(h, String(s))
		}
	}
	return h
}
