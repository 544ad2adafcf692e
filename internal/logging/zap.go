// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	s *zap.SugaredLogger
}

func newZap(w io.Writer, lvl Level) Logger {
	var zl zapcore.Level
	switch lvl {
	case LevelDebug:
		zl = zapcore.DebugLevel
	case LevelError:
		zl = zapcore.ErrorLevel
	default:
		zl = zapcore.InfoLevel
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zl)
	return zapLogger{zap.New(core).Sugar()}
}

func (l zapLogger) Debug(msg string, keyvals ...any) { l.s.Debugw(msg, pairs(keyvals)...) }
func (l zapLogger) Info(msg string, keyvals ...any)  { l.s.Infow(msg, pairs(keyvals)...) }
func (l zapLogger) Error(msg string, keyvals ...any) { l.s.Errorw(msg, pairs(keyvals)...) }

func (l zapLogger) With(keyvals ...any) Logger {
	return zapLogger{l.s.With(pairs(keyvals)...)}
}
