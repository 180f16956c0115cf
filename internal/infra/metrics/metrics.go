// Package metrics exposes the prometheus collectors of the nudge services.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"nudge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nudge"

var (
	// Matching pass metrics
	passesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matching_passes_total",
			Help:      "Total number of matching passes by outcome",
		},
		[]string{"outcome"},
	)

	passDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "matching_pass_duration_seconds",
			Help:      "Matching pass duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	pairsEvaluatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matching_pairs_evaluated_total",
			Help:      "Total number of (user, rule) pairs that reached the filter chain",
		},
	)

	intentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matching_intents_total",
			Help:      "Total number of delivery intents produced",
		},
	)

	pairFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matching_pair_failures_total",
			Help:      "Total number of pairs skipped because of an evaluation error",
		},
	)

	// Push worker metrics
	pushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_notifications_total",
			Help:      "Total number of push notifications by result",
		},
		[]string{"result"}, // sent, failed, invalid_token
	)

	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

type matchingMetrics struct{}

// NewMatchingMetrics returns the prometheus-backed recorder for matching passes.
func NewMatchingMetrics() service.MatchingMetrics {
	return matchingMetrics{}
}

func (matchingMetrics) ObservePass(outcome string, duration time.Duration, evaluated, intents, failures int) {
	passesTotal.WithLabelValues(outcome).Inc()
	passDuration.Observe(duration.Seconds())
	pairsEvaluatedTotal.Add(float64(evaluated))
	intentsTotal.Add(float64(intents))
	pairFailuresTotal.Add(float64(failures))
}

// RecordPushResults records the outcome of one multicast push.
func RecordPushResults(sent, failed, invalid int) {
	pushesTotal.WithLabelValues("sent").Add(float64(sent))
	pushesTotal.WithLabelValues("failed").Add(float64(failed))
	pushesTotal.WithLabelValues("invalid_token").Add(float64(invalid))
}

// Middleware records request count and latency per route template.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Resolve the error here so the recorded status is the one sent to the client.
		if err := next(c); err != nil {
			c.Error(err)
		}
		status := c.Response().Status

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method

		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return nil
	}
}

// Handler returns the Prometheus metrics handler
func Handler() http.Handler {
	return promhttp.Handler()
}
