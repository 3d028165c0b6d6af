package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	TransportREST = "rest"
	TransportGRPC = "grpc"
)

type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	edgesReturned *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mapagent_requests_total",
			Help: "Number of handled requests by transport, method and result code.",
		}, []string{"transport", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mapagent_request_duration_seconds",
			Help:    "Request latency.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"transport", "method"}),
		edgesReturned: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mapagent_edges_returned",
			Help:    "Directed edges per returned edge set.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"method"}),
	}
	reg.MustRegister(m.requests, m.duration, m.edgesReturned)
	return m
}

// ObserveRequest code is a http status for rest and a grpc code name for grpc.
func (m *Metrics) ObserveRequest(transport, method, code string, took time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(transport, method, code).Inc()
	m.duration.WithLabelValues(transport, method).Observe(took.Seconds())
}

func (m *Metrics) ObserveHTTP(method string, status int, took time.Duration) {
	m.ObserveRequest(TransportREST, method, strconv.Itoa(status), took)
}

func (m *Metrics) ObserveEdges(method string, n int) {
	if m == nil {
		return
	}
	m.edgesReturned.WithLabelValues(method).Observe(float64(n))
}
