package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	OrdersSubmitted prometheus.Counter
	SubmitFailures  *prometheus.CounterVec
	CatalogFetches  prometheus.Counter
}

func New() *Metrics {
	ordersSubmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "miniapp",
		Name:      "orders_submitted_total",
		Help:      "Total number of successfully persisted orders.",
	})
	submitFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "miniapp",
		Name:      "order_submit_failures_total",
		Help:      "Total number of failed order submissions.",
	}, []string{"kind"})
	catalogFetches := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "miniapp",
		Name:      "catalog_fetches_total",
		Help:      "Total number of catalog fetches.",
	})

	prometheus.MustRegister(ordersSubmitted, submitFailures, catalogFetches)
	return &Metrics{
		OrdersSubmitted: ordersSubmitted,
		SubmitFailures:  submitFailures,
		CatalogFetches:  catalogFetches,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
