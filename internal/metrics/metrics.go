// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"inventory-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ledgerOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Line item ledger operations by book, operation and outcome.",
	}, []string{"book", "op", "outcome"})
)

// ObserveHTTP records one finished request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveLedger records one ledger operation and returns err unchanged.
func ObserveLedger(book, op string, err error) error {
	ledgerOps.WithLabelValues(book, op, Outcome(err)).Inc()
	return err
}

// Outcome labels an error by its kind.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperr.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperr.ErrValidation):
		return "invalid"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// Middleware counts requests by their route pattern, not the raw path.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = apperr.Status(err)
		}
		ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
