// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package exemplar // import "github.com/MrAlias/exemplar"

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// globalLogger is the logger used for package diagnostics.
//
// Info is logged at V(4), debug at V(8).
var globalLogger atomic.Pointer[logr.Logger]

func init() {
	SetLogger(stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)))
}

// SetLogger sets the logger used by this package for diagnostic output.
// The default logger writes to STDERR using the standard library log
// package.
func SetLogger(l logr.Logger) {
	globalLogger.Store(&l)
}

func getLogger() logr.Logger {
	return *globalLogger.Load()
}
