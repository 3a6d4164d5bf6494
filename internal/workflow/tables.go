package workflow

import (
	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
)

// PlanMachine governs production plans. Draft -> Submitted happens on approval;
// later states are reached through the work order roll-up outside this layer.
var PlanMachine = NewMachine("production plan",
	map[Operation]error{
		OpApprove: apperrors.ErrPlanNotDraftApprove,
		OpUpdate:  apperrors.ErrPlanCompleted,
		OpDelete:  apperrors.ErrPlanNotDraftDelete,
	},
	concat(
		[]Transition[models.PlanStatus]{
			{Op: OpApprove, From: models.PlanStatusDraft, To: models.PlanStatusSubmitted},
			{Op: OpDelete, From: models.PlanStatusDraft},
		},
		keep(OpUpdate,
			models.PlanStatusDraft,
			models.PlanStatusSubmitted,
			models.PlanStatusInProgress,
			models.PlanStatusCancelled,
		),
	)...,
)

// WorkOrderMachine governs work orders. Update is looser than the
// dedicated transitions: any status may be patched in unless the order is completed.
var WorkOrderMachine = NewMachine("work order",
	map[Operation]error{
		OpRelease:  apperrors.ErrWorkOrderNotDraft,
		OpStart:    apperrors.ErrWorkOrderNotReleased,
		OpComplete: apperrors.ErrWorkOrderNotInProgress,
		OpUpdate:   apperrors.ErrWorkOrderCompleted,
		OpDelete:   apperrors.ErrWorkOrderNotDeletable,
	},
	concat(
		[]Transition[models.WorkOrderStatus]{
			{Op: OpRelease, From: models.WorkOrderStatusDraft, To: models.WorkOrderStatusReleased},
			{Op: OpStart, From: models.WorkOrderStatusReleased, To: models.WorkOrderStatusInProgress},
			{Op: OpComplete, From: models.WorkOrderStatusInProgress, To: models.WorkOrderStatusCompleted},
		},
		keep(OpUpdate,
			models.WorkOrderStatusDraft,
			models.WorkOrderStatusReleased,
			models.WorkOrderStatusInProgress,
			models.WorkOrderStatusOnHold,
			models.WorkOrderStatusCancelled,
			models.WorkOrderStatusClosed,
		),
		keep(OpDelete, models.WorkOrderStatusDraft, models.WorkOrderStatusCancelled),
	)...,
)

// TaskMachine governs work order tasks
var TaskMachine = NewMachine("work order task",
	map[Operation]error{
		OpStart:    apperrors.ErrTaskNotPending,
		OpComplete: apperrors.ErrTaskNotInProgress,
		OpUpdate:   apperrors.ErrTaskCompleted,
		OpDelete:   apperrors.ErrTaskNotDeletable,
	},
	concat(
		[]Transition[models.TaskStatus]{
			{Op: OpStart, From: models.TaskStatusPending, To: models.TaskStatusInProgress},
			{Op: OpComplete, From: models.TaskStatusInProgress, To: models.TaskStatusCompleted},
		},
		keep(OpUpdate,
			models.TaskStatusPending,
			models.TaskStatusInProgress,
			models.TaskStatusOnHold,
			models.TaskStatusCancelled,
			models.TaskStatusFailed,
		),
		keep(OpDelete,
			models.TaskStatusPending,
			models.TaskStatusOnHold,
			models.TaskStatusCancelled,
			models.TaskStatusFailed,
		),
	)...,
)

func concat[S ~string](groups ...[]Transition[S]) []Transition[S] {
	var rows []Transition[S]
	for _, g := range groups {
		rows = append(rows, g...)
	}
	return rows
}
