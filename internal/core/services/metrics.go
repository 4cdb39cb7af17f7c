package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse outcomes used as the "outcome" label.
const (
	outcomeMeasured = "measured"
	outcomeNameOnly = "name_only"
	outcomeRejected = "rejected"
)

var (
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "larder_parse_total",
			Help: "Total number of ingredient lines parsed, by outcome",
		},
		[]string{"outcome"},
	)

	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_parse_duration_seconds",
			Help:    "Duration of a single ingredient line parse in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	batchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "larder_parse_batch_lines",
			Help:    "Number of lines per batch parse",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		},
	)
)
