package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GatewayRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "gateway_request_duration_seconds",
		Help:    "Duration of rider API requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"service", "method", "kind"},
)
