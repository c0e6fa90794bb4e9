package service

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caloriecraft_catalog_requests_total",
			Help: "Total number of recipe catalog requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "caloriecraft_catalog_request_duration_seconds",
			Help:    "Recipe catalog request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

const outcomeSuccess = "success"

func observeCatalogCall(op string, start time.Time, err error) {
	outcome := outcomeSuccess
	if kind, ok := KindOf(err); ok {
		outcome = strings.ToLower(string(kind))
	} else if err != nil {
		outcome = "error"
	}
	catalogRequestsTotal.WithLabelValues(op, outcome).Inc()
	catalogRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
