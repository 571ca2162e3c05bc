package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APIRequests counts backend calls by resource and outcome.
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rtoctl_api_requests_total",
		Help: "Backend API requests issued by the client.",
	}, []string{"method", "outcome"})

	// AlertsShown counts alerts pushed through the broker by kind.
	AlertsShown = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rtoctl_alerts_total",
		Help: "Alerts displayed to the user.",
	}, []string{"kind"})

	// SessionState reports 1 while a user is logged in.
	SessionState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rtoctl_session_authenticated",
		Help: "Whether the client currently holds a session token.",
	})
)

// CountRequest records one API round trip. Outcome is "ok" or "error".
func CountRequest(method string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	APIRequests.WithLabelValues(method, outcome).Inc()
}

// StartMetricsServer starts a HTTP server exposing Prometheus metrics.
func StartMetricsServer(port int) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
