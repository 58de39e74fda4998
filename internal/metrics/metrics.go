// Package metrics registers the Prometheus collectors exposed at /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// OrdersCreated counts successfully recorded order submissions.
	OrdersCreated prometheus.Counter

	// StatsUpdates counts rollup updates by outcome ("ok" or "error").
	StatsUpdates *prometheus.CounterVec

	// DashboardReads counts dashboard stats queries.
	DashboardReads prometheus.Counter
)

func init() {
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_orders_created_total",
			Help: "Total number of orders recorded.",
		},
	)
	StatsUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pos_stats_updates_total",
			Help: "Total number of daily stats rollup updates by outcome.",
		},
		[]string{"status"},
	)
	DashboardReads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pos_dashboard_reads_total",
			Help: "Total number of dashboard stats reads.",
		},
	)
	prometheus.MustRegister(OrdersCreated, StatsUpdates, DashboardReads)
}
