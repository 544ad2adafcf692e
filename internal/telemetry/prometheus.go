// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package telemetry

import (
	"context"

	"github.com/itsManjeet/sortbench/bench"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/xerrors"
)

// Prometheus is a bench.Observer that collects results in its own registry,
// for writing to a node_exporter textfile.
type Prometheus struct {
	reg      *prometheus.Registry
	duration *prometheus.HistogramVec
	last     *prometheus.GaugeVec
}

var _ bench.Observer = (*Prometheus)(nil)

var labels = []string{"algorithm", "distribution"}

// NewPrometheus returns a Prometheus observer with an empty registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		reg: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortbench",
			Name:      "sort_duration_seconds",
			Help:      "Wall time of one sort call.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, labels),
		last: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sortbench",
			Name:      "last_sort_milliseconds",
			Help:      "Wall time of the most recent sort call.",
		}, labels),
	}
	p.reg.MustRegister(p.duration, p.last)
	return p
}

// Registry returns the registry the observer records into.
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }

// Observe records r.
func (p *Prometheus) Observe(_ context.Context, r bench.Result) {
	lv := []string{r.Algorithm.Key, r.Distribution.String()}
	p.duration.WithLabelValues(lv...).Observe(r.Elapsed.Seconds())
	p.last.WithLabelValues(lv...).Set(r.Millis())
}

// WriteTextfile writes the collected metrics to path in the text exposition
// format, replacing the file atomically.
func (p *Prometheus) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.reg); err != nil {
		return xerrors.Errorf("telemetry: %w", err)
	}
	return nil
}
