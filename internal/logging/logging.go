// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging gives sortbench one small structured logging interface
// with adapters for zap, zerolog, logrus, go-kit and logr.
//
// Key-value pairs are passed as alternating keys and values, as in
// logger.Info("sorted", "algorithm", name, "ms", ms). A trailing key with no
// value is logged with the value "(MISSING)".
package logging

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/xerrors"
)

// A Logger writes leveled, structured log lines.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)

	// With returns a Logger that adds keyvals to every line.
	With(keyvals ...any) Logger
}

// A Backend names a logging library.
type Backend string

const (
	Zap     Backend = "zap"
	Zerolog Backend = "zerolog"
	Logrus  Backend = "logrus"
	GoKit   Backend = "gokit"
	Logr    Backend = "logr"
)

// Backends lists the supported backends.
func Backends() []Backend {
	return []Backend{Zap, Zerolog, Logrus, GoKit, Logr}
}

// A Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ErrUnknown is returned by New and ParseLevel for names they do not know.
var ErrUnknown = xerrors.New("logging: unknown backend or level")

// ParseLevel parses "debug", "info" or "error", ignoring case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}
	return 0, xerrors.Errorf("level %q: %w", s, ErrUnknown)
}

// New returns a Logger writing lines at or above lvl to w through backend b.
func New(b Backend, w io.Writer, lvl Level) (Logger, error) {
	switch Backend(strings.ToLower(string(b))) {
	case Zap, "":
		return newZap(w, lvl), nil
	case Zerolog:
		return newZerolog(w, lvl), nil
	case Logrus:
		return newLogrus(w, lvl), nil
	case GoKit:
		return newGoKit(w, lvl), nil
	case Logr:
		return newLogr(w, lvl), nil
	}
	return nil, xerrors.Errorf("backend %q: %w", b, ErrUnknown)
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

type nop struct{}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (n nop) With(...any) Logger { return n }

const missingValue = "(MISSING)"

// pairs returns keyvals with an even length.
func pairs(keyvals []any) []any {
	if len(keyvals)%2 == 0 {
		return keyvals
	}
	return append(keyvals[:len(keyvals):len(keyvals)], missingValue)
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
