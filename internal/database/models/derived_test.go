package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercentage(t *testing.T) {
	t.Run("zero planned quantity", func(t *testing.T) {
		assert.Equal(t, 0, CompletionPercentage(10, 0))
	})

	t.Run("partial progress is rounded", func(t *testing.T) {
		assert.Equal(t, 33, CompletionPercentage(1, 3))
		assert.Equal(t, 67, CompletionPercentage(2, 3))
	})

	t.Run("produced reaching planned is 100", func(t *testing.T) {
		assert.Equal(t, 100, CompletionPercentage(50, 50))
		assert.Equal(t, 100, CompletionPercentage(75, 50))
	})
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, IsOverdue(now, &past, false))
	assert.False(t, IsOverdue(now, &past, true))
	assert.False(t, IsOverdue(now, &future, false))
	assert.False(t, IsOverdue(now, nil, false))
}

func TestDurationHours(t *testing.T) {
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(2*time.Hour + 20*time.Minute)

	assert.Equal(t, 2.33, DurationHours(&start, &end))
	assert.Equal(t, 0.0, DurationHours(&start, nil))
	assert.Equal(t, 0.0, DurationHours(nil, &end))
}

func TestEfficiency(t *testing.T) {
	assert.Equal(t, 80, Efficiency(4, 5))
	assert.Equal(t, 200, Efficiency(4, 2))
	assert.Equal(t, 0, Efficiency(0, 5))
	assert.Equal(t, 0, Efficiency(4, 0))
}

func TestWorkOrderDerivedFields(t *testing.T) {
	wo := &WorkOrder{Qty: 0, ProducedQty: 0}
	assert.Equal(t, 0, wo.CompletionPercentage())

	wo = &WorkOrder{Qty: 100, ProducedQty: 120, Status: WorkOrderStatusInProgress}
	assert.Equal(t, 100, wo.CompletionPercentage())
	assert.Equal(t, 0.0, wo.RemainingQty())

	wo = &WorkOrder{Qty: 100, ProducedQty: 40}
	assert.Equal(t, 60.0, wo.RemainingQty())

	end := time.Now().Add(-24 * time.Hour)
	wo = &WorkOrder{PlannedEndDate: &end, Status: WorkOrderStatusCompleted}
	assert.False(t, wo.IsOverdue(time.Now()))
	wo.Status = WorkOrderStatusInProgress
	assert.True(t, wo.IsOverdue(time.Now()))
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, PlanStatusSubmitted.IsValid())
	assert.False(t, PlanStatus("approved").IsValid())
	assert.True(t, WorkOrderStatusClosed.IsValid())
	assert.False(t, WorkOrderStatus("done").IsValid())
	assert.True(t, TaskStatusFailed.IsValid())
	assert.True(t, TaskTypeQualityCheck.IsValid())
	assert.False(t, TaskType("welding").IsValid())
	assert.True(t, PriorityUrgent.IsValid())
	assert.False(t, Priority("critical").IsValid())
}
