// Package metrics defines Prometheus metrics for graphqd.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphqd_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphqd_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphqd_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	CycleQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphqd_cycle_query_duration_seconds",
			Help:    "Cycle query execution time, from snapshot load through result composition",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
		},
		[]string{"found"},
	)

	CycleQueryResultCount = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphqd_cycle_query_result_count",
			Help:    "Number of cycles returned per query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"direction"},
	)

	CycleQueryLimitExhausted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphqd_cycle_query_limit_exhausted_total",
			Help: "Cycle queries that stopped early because the result limit was reached",
		},
		[]string{"direction"},
	)

	SnapshotVertexCount = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphqd_snapshot_vertex_count",
			Help:    "Number of vertices loaded into a query snapshot",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		},
		[]string{"tenant_id"},
	)

	VertexCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphqd_vertices_total",
			Help: "Total vertex count",
		},
		[]string{"tenant_id"},
	)

	EdgeCount = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphqd_edges_total",
			Help: "Total edge count",
		},
		[]string{"tenant_id"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		CycleQueryDuration, CycleQueryResultCount, CycleQueryLimitExhausted,
		SnapshotVertexCount, VertexCount, EdgeCount,
	)
}
