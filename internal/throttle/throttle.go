// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package throttle provides rate limiting for diagnostic reporting.
package throttle // import "github.com/MrAlias/exemplar/internal/throttle"

import (
	"sync"
	"time"
)

// now is used to return the current local time while allowing tests to
// override the default time.Now function.
var now = time.Now

// Limiter runs functions at most once per interval.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// New returns a Limiter that runs at most one function per d.
func New(d time.Duration) *Limiter {
	return &Limiter{interval: d}
}

// Do runs f if the Limiter's interval has passed since it last ran a
// function. Otherwise f is discarded.
func (l *Limiter) Do(f func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t := now(); t.Sub(l.last) >= l.interval {
		l.last = t
		f()
	}
}
