// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	l zerolog.Logger
}

func newZerolog(w io.Writer, lvl Level) Logger {
	var zl zerolog.Level
	switch lvl {
	case LevelDebug:
		zl = zerolog.DebugLevel
	case LevelError:
		zl = zerolog.ErrorLevel
	default:
		zl = zerolog.InfoLevel
	}
	return zerologLogger{zerolog.New(w).Level(zl).With().Timestamp().Logger()}
}

func (l zerologLogger) Debug(msg string, keyvals ...any) {
	l.l.Debug().Fields(pairs(keyvals)).Msg(msg)
}

func (l zerologLogger) Info(msg string, keyvals ...any) {
	l.l.Info().Fields(pairs(keyvals)).Msg(msg)
}

func (l zerologLogger) Error(msg string, keyvals ...any) {
	l.l.Error().Fields(pairs(keyvals)).Msg(msg)
}

func (l zerologLogger) With(keyvals ...any) Logger {
	return zerologLogger{l.l.With().Fields(pairs(keyvals)).Logger()}
}
