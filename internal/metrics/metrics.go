// Package metrics exposes prometheus collectors for HTTP traffic and workflow transitions.
package metrics

import (
	"net/http"
	"sync"

	apperrors "erp-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "erp"

// Transition results
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	WorkflowTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workflow",
		Name:      "transitions_total",
		Help:      "Lifecycle operations by entity, operation and result.",
	}, []string{"entity", "operation", "result"})

	registerOnce sync.Once
)

// Register adds all collectors to reg. Repeated calls are no-ops.
func Register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, WorkflowTransitionsTotal)
	})
}

// ObserveTransition records the outcome of a lifecycle operation
func ObserveTransition(entity, operation string, err error) {
	WorkflowTransitionsTotal.WithLabelValues(entity, operation, resultOf(err)).Inc()
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case apperrors.IsInvalidState(err), apperrors.IsNotFound(err):
		return ResultRejected
	default:
		return ResultError
	}
}
