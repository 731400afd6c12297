package v1

import (
	"github.com/meu-painel/backend/internal/advisor"
	"github.com/prometheus/client_golang/prometheus"
)

var advisorySections = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "advisory_sections_total",
		Help: "How many sections the advisory reports contained, partitioned by kind.",
	},
	[]string{"kind"},
)

// Metrics are the collectors of this package. They are registered by the router.
var Metrics = []prometheus.Collector{
	advisorySections,
}

// engine generates the advisory reports and counts the sections.
var engine = advisor.New(advisor.WithObserver(func(k advisor.Kind) {
	advisorySections.WithLabelValues(string(k)).Inc()
}))
