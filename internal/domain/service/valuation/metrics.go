package valuation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultCached   = "cached"
	resultCaptured = "captured"
	resultFailed   = "failed"
)

//nolint:gochecknoglobals
var (
	valuationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namevalue",
		Name:      "valuations_total",
		Help:      "Names evaluated, by grade.",
	}, []string{"grade"})

	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "namevalue",
		Name:      "card_exports_total",
		Help:      "Card image exports, by result.",
	}, []string{"result"})

	exportDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "namevalue",
		Name:      "card_export_duration_seconds",
		Help:      "Time spent rendering a card image.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
	})
)
