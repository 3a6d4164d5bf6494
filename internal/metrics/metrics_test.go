package metrics

import (
	"errors"
	"testing"

	apperrors "erp-backend/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransition(t *testing.T) {
	WorkflowTransitionsTotal.Reset()

	ObserveTransition("work order", "start", nil)
	ObserveTransition("work order", "start", apperrors.ErrWorkOrderNotReleased)
	ObserveTransition("work order", "start", apperrors.ErrWorkOrderNotFound)
	ObserveTransition("work order", "start", errors.New("connection refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("work order", "start", ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("work order", "start", ResultRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkflowTransitionsTotal.WithLabelValues("work order", "start", ResultError)))
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()

	assert.NotPanics(t, func() {
		Register(reg)
		Register(reg)
	})
}
