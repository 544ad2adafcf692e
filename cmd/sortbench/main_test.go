// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsManjeet/sortbench/internal/config"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(context.Background(), &out, &errOut)
	err = app.Run(append([]string{"sortbench"}, args...))
	return out.String(), errOut.String(), err
}

func TestDefaultText(t *testing.T) {
	out, logs, err := runApp(t, "--size", "300", "--seed", "7", "--verify")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "QUICK SORT ", lines[0])
	require.Equal(t, "QUICK + HEAP + INSERTION SORT ", lines[4])
	require.Contains(t, logs, "seed")
	require.Contains(t, logs, "benchmark finished")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sortbench.toml")
	cfg := `
size = 64
algorithms = ["heap"]
distributions = ["reversed"]
format = "table"

[log]
backend = "logrus"
level = "error"
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	out, _, err := runApp(t, "--config", path, "--format", "text", "--seed", "1")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "\n"))
	require.True(t, strings.HasPrefix(out, "HEAP SORT \n"), "got %q", out)
}

func TestTable(t *testing.T) {
	out, _, err := runApp(t, "-n", "100", "--seed", "3", "-d", "random", "-a", "hybrid", "-f", "table", "--log-level", "error")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# "))
	require.Contains(t, out, "hybrid")
	require.Contains(t, out, "random")
}

func TestPromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortbench.prom")
	_, logs, err := runApp(t, "--size", "50", "--seed", "9", "--repeat", "2", "--prom-file", path)
	require.NoError(t, err)
	require.Contains(t, logs, "wrote metrics")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "sortbench_sort_duration_seconds_count")
	require.Contains(t, string(data), `algorithm="hybrid"`)
}

func TestTelemetry(t *testing.T) {
	_, logs, err := runApp(t, "--size", "40", "--seed", "5", "-a", "quick", "-d", "nearly-sorted", "--telemetry", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, logs, "sort quick")
	require.Contains(t, logs, "sortbench.sort.duration")
}

func TestInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"--min", "10", "--max", "1"},
		{"--repeat", "0"},
		{"-d", "sideways"},
		{"-a", "bogo"},
		{"--log-backend", "stdlib"},
		{"--format", "xml"},
	} {
		_, _, err := runApp(t, args...)
		require.Error(t, err, "%v", args)
		require.True(t, xerrors.Is(err, config.ErrInvalid), "%v: %v", args, err)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := runApp(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.True(t, xerrors.Is(err, os.ErrNotExist), "%v", err)
}
