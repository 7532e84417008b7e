// Package metrics exposes Prometheus collectors for cave generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roguecave"

var (
	// Registry holds every roguecave collector.
	Registry = prometheus.NewRegistry()

	cavesGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "caves_generated_total",
		Help:      "Caves built to completion.",
	})
	regionsDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "regions_discarded_total",
		Help:      "Regions reverted to wall for being too small.",
	})
	itemsPlaced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_placed_total",
		Help:      "Items placed by type.",
	}, []string{"type"})
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Wall time spent building a cave.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
)

func init() {
	Registry.MustRegister(cavesGenerated, regionsDiscarded, itemsPlaced, generationDuration)
}

// CaveGenerated records a finished cave and its build time.
func CaveGenerated(elapsed time.Duration) {
	cavesGenerated.Inc()
	generationDuration.Observe(elapsed.Seconds())
}

// RegionsDiscarded records regions reverted to wall.
func RegionsDiscarded(n int) {
	if n > 0 {
		regionsDiscarded.Add(float64(n))
	}
}

// ItemPlaced records one placed item of the given type.
func ItemPlaced(itemType string) {
	itemsPlaced.WithLabelValues(itemType).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
