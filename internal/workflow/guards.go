package workflow

import (
	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
)

// TaskSummary counts a work order's tasks by status
type TaskSummary struct {
	Total      int
	Completed  int
	Incomplete int
}

// SummarizeTasks counts completed and incomplete tasks
func SummarizeTasks(tasks []models.WorkOrderTask) TaskSummary {
	summary := TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			summary.Completed++
		} else {
			summary.Incomplete++
		}
	}
	return summary
}

// CanCompleteWorkOrder checks the order's own transition and then the task roll-up.
// A work order without tasks may be completed.
func CanCompleteWorkOrder(wo *models.WorkOrder, tasks []models.WorkOrderTask) (models.WorkOrderStatus, error) {
	next, err := WorkOrderMachine.Next(OpComplete, wo.Status)
	if err != nil {
		return wo.Status, err
	}
	if SummarizeTasks(tasks).Incomplete > 0 {
		return wo.Status, apperrors.ErrWorkOrderTasksIncomplete
	}
	return next, nil
}

// CanDeletePlan rejects plans that still have work orders or are past draft.
func CanDeletePlan(plan *models.ProductionPlan, workOrderCount int64) error {
	if workOrderCount > 0 {
		return apperrors.ErrPlanHasWorkOrders
	}
	_, err := PlanMachine.Next(OpDelete, plan.Status)
	return err
}
