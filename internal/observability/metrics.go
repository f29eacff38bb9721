package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "learnverse", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "learnverse", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	GateDenials = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "learnverse", Name: "gate_denials_total", Help: "Requests stopped by an authorization gate",
	}, []string{"gate"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, GateDenials)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveRequest(method, route, status string, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func DenyGate(gate string) {
	GateDenials.WithLabelValues(gate).Inc()
}
