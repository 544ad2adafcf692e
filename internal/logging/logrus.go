// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	e *logrus.Entry
}

func newLogrus(w io.Writer, lvl Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	switch lvl {
	case LevelDebug:
		l.SetLevel(logrus.DebugLevel)
	case LevelError:
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return logrusLogger{logrus.NewEntry(l)}
}

// fields converts keyvals to logrus.Fields. Logrus keeps fields in a map, so
// a repeated key keeps its last value.
func fields(keyvals []any) logrus.Fields {
	kv := pairs(keyvals)
	fs := make(logrus.Fields, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		fs[keyString(kv[i])] = kv[i+1]
	}
	return fs
}

func (l logrusLogger) Debug(msg string, keyvals ...any) { l.e.WithFields(fields(keyvals)).Debug(msg) }
func (l logrusLogger) Info(msg string, keyvals ...any)  { l.e.WithFields(fields(keyvals)).Info(msg) }
func (l logrusLogger) Error(msg string, keyvals ...any) { l.e.WithFields(fields(keyvals)).Error(msg) }

func (l logrusLogger) With(keyvals ...any) Logger {
	return logrusLogger{l.e.WithFields(fields(keyvals))}
}
