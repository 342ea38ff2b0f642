package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed by the service.
var Registry = prometheus.NewRegistry()

var (
	// Attempts counts integration attempts by result ("ok" or "failed").
	Attempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custom_hats_attempts_total",
			Help: "Integration attempts run by the retry scheduler.",
		},
		[]string{"result"},
	)

	// Dispatches counts handler invocations made by event broadcasts.
	Dispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custom_hats_dispatch_invocations_total",
			Help: "Handlers invoked by event broadcasts.",
		},
		[]string{"event", "extension"},
	)

	// CatalogItems is the number of items in the loaded catalog.
	CatalogItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "custom_hats_catalog_items",
			Help: "Items resolved from the asset bundle.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Attempts,
		Dispatches,
		CatalogItems,
	)
}

// Handler returns the HTTP handler serving the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
