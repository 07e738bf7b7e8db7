// SPDX-License-Identifier: MIT

package embedding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("qlp.embedding")

var (
	// attemptsTotal counts selector attempts by outcome.
	attemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qlp_embedding_attempts_total",
		Help: "Embedding selection attempts by outcome",
	}, []string{"outcome"})

	// rangeWidth tracks the offset-range width of attempts that got that far.
	rangeWidth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "qlp_embedding_offset_range_width",
		Help:    "Width of the anneal-offset range intersection per attempt",
		Buckets: []float64{0, 0.025, 0.05, 0.1, 0.2, 0.4, 0.8, 1.6},
	})
)
