// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type gokitLogger struct {
	l log.Logger
}

func newGoKit(w io.Writer, lvl Level) Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	var opt level.Option
	switch lvl {
	case LevelDebug:
		opt = level.AllowDebug()
	case LevelError:
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return gokitLogger{level.NewFilter(l, opt)}
}

func (l gokitLogger) log(lv log.Logger, msg string, keyvals []any) {
	lv.Log(append([]any{"msg", msg}, pairs(keyvals)...)...)
}

func (l gokitLogger) Debug(msg string, keyvals ...any) { l.log(level.Debug(l.l), msg, keyvals) }
func (l gokitLogger) Info(msg string, keyvals ...any)  { l.log(level.Info(l.l), msg, keyvals) }
func (l gokitLogger) Error(msg string, keyvals ...any) { l.log(level.Error(l.l), msg, keyvals) }

func (l gokitLogger) With(keyvals ...any) Logger {
	return gokitLogger{log.With(l.l, pairs(keyvals)...)}
}
