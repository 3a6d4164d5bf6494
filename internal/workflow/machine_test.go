package workflow

import (
	"errors"
	"testing"

	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPlanStatuses = []models.PlanStatus{
	models.PlanStatusDraft, models.PlanStatusSubmitted, models.PlanStatusInProgress,
	models.PlanStatusCompleted, models.PlanStatusCancelled,
}

var allWorkOrderStatuses = []models.WorkOrderStatus{
	models.WorkOrderStatusDraft, models.WorkOrderStatusReleased, models.WorkOrderStatusInProgress,
	models.WorkOrderStatusOnHold, models.WorkOrderStatusCompleted, models.WorkOrderStatusCancelled,
	models.WorkOrderStatusClosed,
}

var allTaskStatuses = []models.TaskStatus{
	models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusOnHold,
	models.TaskStatusCompleted, models.TaskStatusCancelled, models.TaskStatusFailed,
}

func TestPlanMachine(t *testing.T) {
	t.Run("approve only from draft", func(t *testing.T) {
		for _, s := range allPlanStatuses {
			next, err := PlanMachine.Next(OpApprove, s)
			if s == models.PlanStatusDraft {
				require.NoError(t, err)
				assert.Equal(t, models.PlanStatusSubmitted, next)
				continue
			}
			assert.ErrorIs(t, err, apperrors.ErrPlanNotDraftApprove, "status %s", s)
			assert.Equal(t, s, next)
		}
	})

	t.Run("update rejected only when completed", func(t *testing.T) {
		for _, s := range allPlanStatuses {
			next, err := PlanMachine.Next(OpUpdate, s)
			if s == models.PlanStatusCompleted {
				assert.ErrorIs(t, err, apperrors.ErrPlanCompleted)
				continue
			}
			require.NoError(t, err, "status %s", s)
			assert.Equal(t, s, next)
		}
	})

	t.Run("delete only from draft", func(t *testing.T) {
		assert.True(t, PlanMachine.Can(OpDelete, models.PlanStatusDraft))
		assert.False(t, PlanMachine.Can(OpDelete, models.PlanStatusSubmitted))
	})

	t.Run("unknown operation gets a generic rejection", func(t *testing.T) {
		_, err := PlanMachine.Next(OpStart, models.PlanStatusDraft)
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidState(err))
	})
}

func TestWorkOrderMachine(t *testing.T) {
	cases := map[Operation]struct {
		from models.WorkOrderStatus
		to   models.WorkOrderStatus
		err  error
	}{
		OpRelease:  {models.WorkOrderStatusDraft, models.WorkOrderStatusReleased, apperrors.ErrWorkOrderNotDraft},
		OpStart:    {models.WorkOrderStatusReleased, models.WorkOrderStatusInProgress, apperrors.ErrWorkOrderNotReleased},
		OpComplete: {models.WorkOrderStatusInProgress, models.WorkOrderStatusCompleted, apperrors.ErrWorkOrderNotInProgress},
	}

	for op, tc := range cases {
		for _, s := range allWorkOrderStatuses {
			next, err := WorkOrderMachine.Next(op, s)
			if s == tc.from {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
				continue
			}
			assert.True(t, errors.Is(err, tc.err), "%s from %s", op, s)
			assert.Equal(t, s, next)
		}
	}

	t.Run("update allowed from every status except completed", func(t *testing.T) {
		for _, s := range allWorkOrderStatuses {
			assert.Equal(t, s != models.WorkOrderStatusCompleted, WorkOrderMachine.Can(OpUpdate, s), "status %s", s)
		}
	})

	t.Run("delete allowed from draft and cancelled", func(t *testing.T) {
		assert.Equal(t, []Operation{OpRelease, OpUpdate, OpDelete}, WorkOrderMachine.Allowed(models.WorkOrderStatusDraft))
		assert.True(t, WorkOrderMachine.Can(OpDelete, models.WorkOrderStatusCancelled))
		assert.False(t, WorkOrderMachine.Can(OpDelete, models.WorkOrderStatusInProgress))
	})

	t.Run("complete twice fails the second time", func(t *testing.T) {
		next, err := WorkOrderMachine.Next(OpComplete, models.WorkOrderStatusInProgress)
		require.NoError(t, err)
		_, err = WorkOrderMachine.Next(OpComplete, next)
		assert.ErrorIs(t, err, apperrors.ErrWorkOrderNotInProgress)
	})
}

func TestTaskMachine(t *testing.T) {
	for _, s := range allTaskStatuses {
		assert.Equal(t, s == models.TaskStatusPending, TaskMachine.Can(OpStart, s), "start from %s", s)
		assert.Equal(t, s == models.TaskStatusInProgress, TaskMachine.Can(OpComplete, s), "complete from %s", s)
		assert.Equal(t, s != models.TaskStatusCompleted, TaskMachine.Can(OpUpdate, s), "update from %s", s)

		deletable := s != models.TaskStatusInProgress && s != models.TaskStatusCompleted
		assert.Equal(t, deletable, TaskMachine.Can(OpDelete, s), "delete from %s", s)
	}

	_, err := TaskMachine.Next(OpDelete, models.TaskStatusInProgress)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotDeletable)
	assert.Equal(t, "cannot delete task that is in progress or completed", err.Error())
}

func TestCanCompleteWorkOrder(t *testing.T) {
	wo := &models.WorkOrder{Status: models.WorkOrderStatusInProgress}

	t.Run("incomplete task blocks completion", func(t *testing.T) {
		tasks := []models.WorkOrderTask{
			{Status: models.TaskStatusCompleted},
			{Status: models.TaskStatusInProgress},
		}
		_, err := CanCompleteWorkOrder(wo, tasks)
		assert.ErrorIs(t, err, apperrors.ErrWorkOrderTasksIncomplete)
	})

	t.Run("all tasks completed", func(t *testing.T) {
		tasks := []models.WorkOrderTask{{Status: models.TaskStatusCompleted}}
		next, err := CanCompleteWorkOrder(wo, tasks)
		require.NoError(t, err)
		assert.Equal(t, models.WorkOrderStatusCompleted, next)
	})

	t.Run("no tasks", func(t *testing.T) {
		_, err := CanCompleteWorkOrder(wo, nil)
		assert.NoError(t, err)
	})

	t.Run("status is checked before tasks", func(t *testing.T) {
		released := &models.WorkOrder{Status: models.WorkOrderStatusReleased}
		_, err := CanCompleteWorkOrder(released, []models.WorkOrderTask{{Status: models.TaskStatusPending}})
		assert.ErrorIs(t, err, apperrors.ErrWorkOrderNotInProgress)
	})
}

func TestCanDeletePlan(t *testing.T) {
	draft := &models.ProductionPlan{Status: models.PlanStatusDraft}
	submitted := &models.ProductionPlan{Status: models.PlanStatusSubmitted}

	assert.NoError(t, CanDeletePlan(draft, 0))
	assert.ErrorIs(t, CanDeletePlan(draft, 1), apperrors.ErrPlanHasWorkOrders)
	assert.ErrorIs(t, CanDeletePlan(submitted, 0), apperrors.ErrPlanNotDraftDelete)
	assert.True(t, apperrors.IsInvalidState(CanDeletePlan(submitted, 3)))
}

func TestSummarizeTasks(t *testing.T) {
	summary := SummarizeTasks([]models.WorkOrderTask{
		{Status: models.TaskStatusCompleted},
		{Status: models.TaskStatusPending},
		{Status: models.TaskStatusFailed},
	})
	assert.Equal(t, TaskSummary{Total: 3, Completed: 1, Incomplete: 2}, summary)
}
