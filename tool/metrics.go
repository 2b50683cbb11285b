// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"github.com/cockroachdb/intcodec"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "intcodec"

// writeMetricsFile writes the counters of a single run to path in the
// Prometheus text format, for pickup by a node exporter's textfile collector.
// The file is replaced atomically.
func writeMetricsFile(path, op string, m intcodec.Metrics, runErr error) error {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"op": op}
	counter := func(name, help string, v uint64) {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		c.Add(float64(v))
		reg.MustRegister(c)
	}
	counter("rows_total", "Number of complete rows processed.", m.Rows)
	counter("fields_total", "Number of fields processed.", m.Fields)
	counter("delta_fields_total", "Number of fields coded as a delta from the previous row.", m.DeltaFields)
	counter("binary_bytes_total", "Number of bytes of the uncompressed binary stream.", m.BinaryBytes)

	failed := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Name:        "failed",
		Help:        "1 if the run stopped with an error, 0 otherwise.",
		ConstLabels: labels,
	})
	if runErr != nil {
		failed.Set(1)
	}
	reg.MustRegister(failed)

	return prometheus.WriteToTextfile(path, reg)
}
