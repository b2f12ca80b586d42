package local

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var displayedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notifications_displayed_total",
	Help: "Number of local notifications displayed, by channel.",
}, []string{"channel"})
