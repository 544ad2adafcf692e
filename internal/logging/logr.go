// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// logrLogger maps Debug to V(1) and Info to V(0). Logr has no threshold
// for errors versus info, so min filters Info at LevelError.
type logrLogger struct {
	l   logr.Logger
	min Level
}

func newLogr(w io.Writer, lvl Level) Logger {
	var mu sync.Mutex
	verbosity := 0
	if lvl == LevelDebug {
		verbosity = 1
	}
	l := funcr.NewJSON(func(obj string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, obj)
	}, funcr.Options{Verbosity: verbosity, LogTimestamp: true})
	return logrLogger{l: l, min: lvl}
}

func (l logrLogger) Debug(msg string, keyvals ...any) {
	l.l.V(1).Info(msg, pairs(keyvals)...)
}

func (l logrLogger) Info(msg string, keyvals ...any) {
	if l.min > LevelInfo {
		return
	}
	l.l.Info(msg, pairs(keyvals)...)
}

func (l logrLogger) Error(msg string, keyvals ...any) {
	l.l.Error(nil, msg, pairs(keyvals)...)
}

func (l logrLogger) With(keyvals ...any) Logger {
	return logrLogger{l: l.l.WithValues(pairs(keyvals)...), min: l.min}
}
