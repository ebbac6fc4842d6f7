package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oasis_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "oasis_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	authzDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oasis_authz_decisions_total",
		Help: "Authorization gate outcomes",
	}, []string{"outcome"})

	projectDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oasis_project_decisions_total",
		Help: "Admin decisions on submitted projects",
	}, []string{"decision", "result"})

	postulationsFiled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oasis_postulations_total",
		Help: "Postulation attempts by kind and result",
	}, []string{"kind", "result"})

	postulationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oasis_postulation_decisions_total",
		Help: "Company decisions on postulations",
	}, []string{"kind", "outcome", "result"})

	profilesProvisioned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oasis_profiles_provisioned_total",
		Help: "Placeholder profiles created on first visit",
	}, []string{"kind"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func ObserveAuthz(outcome string) {
	authzDecisions.WithLabelValues(outcome).Inc()
}

func ObserveProjectDecision(decision, result string) {
	projectDecisions.WithLabelValues(decision, result).Inc()
}

func ObservePostulation(kind, result string) {
	postulationsFiled.WithLabelValues(kind, result).Inc()
}

func ObservePostulationDecision(kind, outcome, result string) {
	postulationDecisions.WithLabelValues(kind, outcome, result).Inc()
}

func ObserveProfileProvisioned(kind string) {
	profilesProvisioned.WithLabelValues(kind).Inc()
}

// Result labels an operation outcome for the counters above.
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}

// Middleware records every request against its route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
