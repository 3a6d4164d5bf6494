package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
	"erp-backend/internal/logger"
	"erp-backend/internal/metrics"
	"erp-backend/internal/repository"
	"erp-backend/internal/sequence"
	"erp-backend/internal/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkOrderTaskService handles business logic for work order tasks
type WorkOrderTaskService struct {
	repo          repository.WorkOrderTaskRepositoryInterface
	workOrderRepo repository.WorkOrderRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	sequence      sequence.Allocator
	validator     *validator.Validate
	now           func() time.Time
}

// NewWorkOrderTaskService creates a new work order task service
func NewWorkOrderTaskService(repo repository.WorkOrderTaskRepositoryInterface, workOrderRepo repository.WorkOrderRepositoryInterface, userRepo repository.UserRepositoryInterface, seq sequence.Allocator, validator *validator.Validate) *WorkOrderTaskService {
	return &WorkOrderTaskService{
		repo:          repo,
		workOrderRepo: workOrderRepo,
		userRepo:      userRepo,
		sequence:      seq,
		validator:     validator,
		now:           time.Now,
	}
}

// CreateTaskRequest represents the request to create a work order task
type CreateTaskRequest struct {
	Title             string          `json:"title" validate:"required,min=1,max=200"`
	Description       string          `json:"description,omitempty"`
	TaskType          models.TaskType `json:"task_type,omitempty" validate:"omitempty,oneof=setup operation inspection packaging quality_check maintenance cleanup"`
	SequenceOrder     int             `json:"sequence_order,omitempty" validate:"gte=0"`
	Operation         string          `json:"operation,omitempty" validate:"max=100"`
	Workstation       string          `json:"workstation,omitempty" validate:"max=100"`
	Machine           string          `json:"machine,omitempty" validate:"max=100"`
	EstimatedHours    float64         `json:"estimated_hours,omitempty" validate:"gte=0"`
	HourRate          decimal.Decimal `json:"hour_rate" swaggertype:"string"`
	PlannedStartTime  *time.Time      `json:"planned_start_time,omitempty"`
	PlannedEndTime    *time.Time      `json:"planned_end_time,omitempty"`
	Instructions      string          `json:"instructions,omitempty"`
	QualityParameters string          `json:"quality_parameters,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	AssignedTo        *uuid.UUID      `json:"assigned_to,omitempty"`
}

// UpdateTaskRequest represents a partial update of a task
type UpdateTaskRequest struct {
	Title             *string            `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string            `json:"description,omitempty"`
	Status            *models.TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress on_hold completed cancelled failed"`
	TaskType          *models.TaskType   `json:"task_type,omitempty" validate:"omitempty,oneof=setup operation inspection packaging quality_check maintenance cleanup"`
	SequenceOrder     *int               `json:"sequence_order,omitempty" validate:"omitempty,gte=0"`
	Operation         *string            `json:"operation,omitempty" validate:"omitempty,max=100"`
	Workstation       *string            `json:"workstation,omitempty" validate:"omitempty,max=100"`
	Machine           *string            `json:"machine,omitempty" validate:"omitempty,max=100"`
	EstimatedHours    *float64           `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	ActualHours       *float64           `json:"actual_hours,omitempty" validate:"omitempty,gte=0"`
	HourRate          *decimal.Decimal   `json:"hour_rate,omitempty" swaggertype:"string"`
	OperatingCost     *decimal.Decimal   `json:"operating_cost,omitempty" swaggertype:"string"`
	PlannedStartTime  *time.Time         `json:"planned_start_time,omitempty"`
	PlannedEndTime    *time.Time         `json:"planned_end_time,omitempty"`
	CompletedQty      *float64           `json:"completed_qty,omitempty" validate:"omitempty,gte=0"`
	RejectedQty       *float64           `json:"rejected_qty,omitempty" validate:"omitempty,gte=0"`
	Instructions      *string            `json:"instructions,omitempty"`
	QualityParameters *string            `json:"quality_parameters,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
	TimeLogs          datatypes.JSON     `json:"time_logs,omitempty" swaggertype:"array,object"`
	QualityData       datatypes.JSON     `json:"quality_data,omitempty" swaggertype:"object"`
	AssignedTo        *uuid.UUID         `json:"assigned_to,omitempty"`
}

// WorkOrderTaskResponse represents the response for task operations
type WorkOrderTaskResponse struct {
	ID                string            `json:"id"`
	WorkOrderID       string            `json:"work_order_id"`
	TaskNumber        string            `json:"task_number"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Status            models.TaskStatus `json:"status"`
	TaskType          models.TaskType   `json:"task_type"`
	SequenceOrder     int               `json:"sequence_order"`
	Operation         string            `json:"operation,omitempty"`
	Workstation       string            `json:"workstation,omitempty"`
	Machine           string            `json:"machine,omitempty"`
	EstimatedHours    float64           `json:"estimated_hours"`
	ActualHours       float64           `json:"actual_hours"`
	HourRate          decimal.Decimal   `json:"hour_rate" swaggertype:"string"`
	OperatingCost     decimal.Decimal   `json:"operating_cost" swaggertype:"string"`
	PlannedStartTime  *time.Time        `json:"planned_start_time,omitempty"`
	PlannedEndTime    *time.Time        `json:"planned_end_time,omitempty"`
	ActualStartTime   *time.Time        `json:"actual_start_time,omitempty"`
	ActualEndTime     *time.Time        `json:"actual_end_time,omitempty"`
	CompletedQty      float64           `json:"completed_qty"`
	RejectedQty       float64           `json:"rejected_qty"`
	Instructions      string            `json:"instructions,omitempty"`
	QualityParameters string            `json:"quality_parameters,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	TimeLogs          datatypes.JSON    `json:"time_logs,omitempty" swaggertype:"array,object"`
	QualityData       datatypes.JSON    `json:"quality_data,omitempty" swaggertype:"object"`
	AssignedTo        *string           `json:"assigned_to,omitempty"`
	CompletedBy       *string           `json:"completed_by,omitempty"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty"`
	DurationHours     float64           `json:"duration_hours"`
	Efficiency        int               `json:"efficiency"`
	IsOverdue         bool              `json:"is_overdue"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

// Create adds a pending task to a work order of the tenant
func (s *WorkOrderTaskService) Create(ctx context.Context, tenantID, workOrderID uuid.UUID, req *CreateTaskRequest) (*WorkOrderTaskResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !validRange(req.PlannedStartTime, req.PlannedEndTime) {
		return nil, fmt.Errorf("%w: planned_end_time is before planned_start_time", apperrors.ErrInvalidTimeRange)
	}

	wo, err := s.workOrderRepo.GetByID(ctx, workOrderID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	if err := verifyUsers(ctx, s.userRepo, tenantID, req.AssignedTo); err != nil {
		return nil, err
	}

	var task *models.WorkOrderTask
	err = sequence.Assign(ctx, s.sequence, sequence.TaskScope(wo.ID),
		func(ctx context.Context) (int64, error) { return s.repo.LastSequence(ctx, wo.ID) },
		func(seq int64) string { return sequence.TaskNumber(wo.WorkOrderNumber, seq) },
		func(number string) error {
			task = newTask(wo, req, 0)
			task.TaskNumber = number
			if task.SequenceOrder == 0 {
				task.SequenceOrder = len(wo.Tasks) + 1
			}
			return s.repo.Create(ctx, task)
		},
		repository.IsDuplicateKey,
	)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrWorkOrderTaskExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"work_order_id": wo.ID.String(),
		"task_id":       task.ID.String(),
		"task_number":   task.TaskNumber,
	}).Info("Work order task created")

	return taskResponse(task, s.now()), nil
}

// ListByWorkOrder retrieves the tasks of a work order in sequence order
func (s *WorkOrderTaskService) ListByWorkOrder(ctx context.Context, tenantID, workOrderID uuid.UUID) ([]WorkOrderTaskResponse, error) {
	if _, err := s.workOrderRepo.GetByID(ctx, workOrderID, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	tasks, err := s.repo.ListByWorkOrder(ctx, workOrderID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	now := s.now()
	responses := make([]WorkOrderTaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *taskResponse(&tasks[i], now)
	}
	return responses, nil
}

// GetByID retrieves a task of the tenant
func (s *WorkOrderTaskService) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderTaskResponse, error) {
	task, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	return taskResponse(task, s.now()), nil
}

// Update applies the non-nil fields of req unless the task is completed
func (s *WorkOrderTaskService) Update(ctx context.Context, id, tenantID uuid.UUID, req *UpdateTaskRequest) (*WorkOrderTaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	task, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.TaskMachine.Next(workflow.OpUpdate, task.Status); err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.TaskType != nil {
		task.TaskType = *req.TaskType
	}
	if req.SequenceOrder != nil {
		task.SequenceOrder = *req.SequenceOrder
	}
	if req.Operation != nil {
		task.Operation = *req.Operation
	}
	if req.Workstation != nil {
		task.Workstation = *req.Workstation
	}
	if req.Machine != nil {
		task.Machine = *req.Machine
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		task.ActualHours = *req.ActualHours
	}
	if req.HourRate != nil {
		task.HourRate = *req.HourRate
	}
	if req.OperatingCost != nil {
		task.OperatingCost = *req.OperatingCost
	}
	if req.PlannedStartTime != nil {
		task.PlannedStartTime = req.PlannedStartTime
	}
	if req.PlannedEndTime != nil {
		task.PlannedEndTime = req.PlannedEndTime
	}
	if req.CompletedQty != nil {
		task.CompletedQty = *req.CompletedQty
	}
	if req.RejectedQty != nil {
		task.RejectedQty = *req.RejectedQty
	}
	if req.Instructions != nil {
		task.Instructions = *req.Instructions
	}
	if req.QualityParameters != nil {
		task.QualityParameters = *req.QualityParameters
	}
	if req.Notes != nil {
		task.Notes = *req.Notes
	}
	if req.TimeLogs != nil {
		task.TimeLogs = req.TimeLogs
	}
	if req.QualityData != nil {
		task.QualityData = req.QualityData
	}
	if req.AssignedTo != nil {
		if err := verifyUsers(ctx, s.userRepo, tenantID, req.AssignedTo); err != nil {
			return nil, err
		}
		task.AssignedTo = req.AssignedTo
	}
	if !validRange(task.PlannedStartTime, task.PlannedEndTime) {
		return nil, fmt.Errorf("%w: planned_end_time is before planned_start_time", apperrors.ErrInvalidTimeRange)
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return taskResponse(task, s.now()), nil
}

// Start moves a pending task to in progress and assigns it to the caller
func (s *WorkOrderTaskService) Start(ctx context.Context, id, tenantID, userID uuid.UUID) (*WorkOrderTaskResponse, error) {
	return s.transition(ctx, id, tenantID, workflow.OpStart, func(task *models.WorkOrderTask) error {
		next, err := workflow.TaskMachine.Next(workflow.OpStart, task.Status)
		if err != nil {
			return err
		}
		now := s.now()
		task.Status = next
		task.ActualStartTime = &now
		task.AssignedTo = &userID
		return nil
	})
}

// Complete moves an in-progress task to completed and records who finished it.
// Actual hours default to the elapsed time since the task was started.
func (s *WorkOrderTaskService) Complete(ctx context.Context, id, tenantID, userID uuid.UUID) (*WorkOrderTaskResponse, error) {
	return s.transition(ctx, id, tenantID, workflow.OpComplete, func(task *models.WorkOrderTask) error {
		next, err := workflow.TaskMachine.Next(workflow.OpComplete, task.Status)
		if err != nil {
			return err
		}
		now := s.now()
		task.Status = next
		task.ActualEndTime = &now
		task.CompletedBy = &userID
		task.CompletedAt = &now
		if task.ActualHours == 0 {
			task.ActualHours = task.DurationHours()
		}
		if task.OperatingCost.IsZero() && task.ActualHours > 0 {
			task.OperatingCost = task.HourRate.Mul(decimal.NewFromFloat(task.ActualHours)).Round(2)
		}
		return nil
	})
}

// Delete removes a task that is neither in progress nor completed
func (s *WorkOrderTaskService) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	task, err := s.load(ctx, id, tenantID)
	if err != nil {
		return err
	}

	if _, err := workflow.TaskMachine.Next(workflow.OpDelete, task.Status); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkOrderTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	logger.WithContext(ctx).WithField("task_id", id.String()).Info("Work order task deleted")
	return nil
}

func (s *WorkOrderTaskService) transition(ctx context.Context, id, tenantID uuid.UUID, op workflow.Operation, apply func(*models.WorkOrderTask) error) (resp *WorkOrderTaskResponse, err error) {
	defer func() {
		metrics.ObserveTransition(workflow.TaskMachine.Entity(), string(op), err)
	}()

	task, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	from := task.Status
	if err := apply(task); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to %s task: %w", op, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"task_id":   task.ID.String(),
		"operation": string(op),
		"from":      string(from),
		"to":        string(task.Status),
	}).Info("Work order task status changed")

	return taskResponse(task, s.now()), nil
}

func (s *WorkOrderTaskService) load(ctx context.Context, id, tenantID uuid.UUID) (*models.WorkOrderTask, error) {
	task, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// newTask builds a pending task for wo; seq numbers it when non-zero
func newTask(wo *models.WorkOrder, req *CreateTaskRequest, seq int64) *models.WorkOrderTask {
	taskType := req.TaskType
	if taskType == "" {
		taskType = models.TaskTypeOperation
	}
	task := &models.WorkOrderTask{
		TenantID:          wo.TenantID,
		WorkOrderID:       wo.ID,
		Title:             req.Title,
		Description:       req.Description,
		Status:            models.TaskStatusPending,
		TaskType:          taskType,
		SequenceOrder:     req.SequenceOrder,
		Operation:         req.Operation,
		Workstation:       req.Workstation,
		Machine:           req.Machine,
		EstimatedHours:    req.EstimatedHours,
		HourRate:          req.HourRate,
		PlannedStartTime:  req.PlannedStartTime,
		PlannedEndTime:    req.PlannedEndTime,
		Instructions:      req.Instructions,
		QualityParameters: req.QualityParameters,
		Notes:             req.Notes,
		AssignedTo:        req.AssignedTo,
	}
	if seq > 0 {
		task.TaskNumber = sequence.TaskNumber(wo.WorkOrderNumber, seq)
		if task.SequenceOrder == 0 {
			task.SequenceOrder = int(seq)
		}
	}
	return task
}

func taskResponse(task *models.WorkOrderTask, now time.Time) *WorkOrderTaskResponse {
	resp := &WorkOrderTaskResponse{
		ID:                task.ID.String(),
		WorkOrderID:       task.WorkOrderID.String(),
		TaskNumber:        task.TaskNumber,
		Title:             task.Title,
		Description:       task.Description,
		Status:            task.Status,
		TaskType:          task.TaskType,
		SequenceOrder:     task.SequenceOrder,
		Operation:         task.Operation,
		Workstation:       task.Workstation,
		Machine:           task.Machine,
		EstimatedHours:    task.EstimatedHours,
		ActualHours:       task.ActualHours,
		HourRate:          task.HourRate,
		OperatingCost:     task.OperatingCost,
		PlannedStartTime:  task.PlannedStartTime,
		PlannedEndTime:    task.PlannedEndTime,
		ActualStartTime:   task.ActualStartTime,
		ActualEndTime:     task.ActualEndTime,
		CompletedQty:      task.CompletedQty,
		RejectedQty:       task.RejectedQty,
		Instructions:      task.Instructions,
		QualityParameters: task.QualityParameters,
		Notes:             task.Notes,
		TimeLogs:          task.TimeLogs,
		QualityData:       task.QualityData,
		CompletedAt:       task.CompletedAt,
		DurationHours:     task.DurationHours(),
		Efficiency:        task.Efficiency(),
		IsOverdue:         task.IsOverdue(now),
		CreatedAt:         task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         task.UpdatedAt.Format(time.RFC3339),
	}
	if task.AssignedTo != nil {
		assignee := task.AssignedTo.String()
		resp.AssignedTo = &assignee
	}
	if task.CompletedBy != nil {
		completer := task.CompletedBy.String()
		resp.CompletedBy = &completer
	}
	return resp
}
