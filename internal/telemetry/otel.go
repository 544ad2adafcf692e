// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package telemetry exports benchmark results as OpenTelemetry spans and
// metrics, and as a Prometheus textfile.
package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/itsManjeet/sortbench/bench"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/xerrors"
)

const scope = "github.com/itsManjeet/sortbench/bench"

// OTel is a bench.Observer that records each result as a span covering the
// sort and as a point in a duration histogram.
type OTel struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
	runs     metric.Int64Counter
}

var _ bench.Observer = (*OTel)(nil)

// NewOTel creates the tracer and instruments from tp and mp.
func NewOTel(tp trace.TracerProvider, mp metric.MeterProvider) (*OTel, error) {
	meter := mp.Meter(scope)
	duration, err := meter.Float64Histogram("sortbench.sort.duration",
		metric.WithDescription("Wall time of one sort call."),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, xerrors.Errorf("telemetry: %w", err)
	}
	runs, err := meter.Int64Counter("sortbench.sort.runs",
		metric.WithDescription("Number of timed sort calls."))
	if err != nil {
		return nil, xerrors.Errorf("telemetry: %w", err)
	}
	return &OTel{tracer: tp.Tracer(scope), duration: duration, runs: runs}, nil
}

func attrs(r bench.Result) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("algorithm", r.Algorithm.Key),
		attribute.String("distribution", r.Distribution.String()),
		attribute.Int("size", r.Size),
	}
}

// Observe records r. The span is back-dated so that it ends now and lasts
// r.Elapsed.
func (o *OTel) Observe(ctx context.Context, r bench.Result) {
	kv := attrs(r)
	end := time.Now()
	_, span := o.tracer.Start(ctx, "sort "+r.Algorithm.Key,
		trace.WithTimestamp(end.Add(-r.Elapsed)),
		trace.WithAttributes(kv...),
		trace.WithAttributes(attribute.Int("run", r.Run)))
	span.End(trace.WithTimestamp(end))

	set := metric.WithAttributes(kv...)
	o.duration.Record(ctx, r.Millis(), set)
	o.runs.Add(ctx, 1, set)
}

// Stdout installs SDK providers that print spans and metrics to w.
// The returned shutdown function flushes both and must be called before the
// process exits.
func Stdout(w io.Writer) (*sdktrace.TracerProvider, *sdkmetric.MeterProvider, func(context.Context) error, error) {
	texp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, nil, xerrors.Errorf("telemetry: %w", err)
	}
	mexp, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, nil, nil, xerrors.Errorf("telemetry: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(texp))
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(mexp)))
	shutdown := func(ctx context.Context) error {
		terr := tp.Shutdown(ctx)
		merr := mp.Shutdown(ctx)
		if terr != nil {
			return xerrors.Errorf("telemetry: %w", terr)
		}
		if merr != nil {
			return xerrors.Errorf("telemetry: %w", merr)
		}
		return nil
	}
	return tp, mp, shutdown, nil
}
