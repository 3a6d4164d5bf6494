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
	"gorm.io/gorm"
)

// WorkOrderService handles business logic for work orders
type WorkOrderService struct {
	repo      repository.WorkOrderRepositoryInterface
	planRepo  repository.ProductionPlanRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	sequence  sequence.Allocator
	validator *validator.Validate
	now       func() time.Time
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(repo repository.WorkOrderRepositoryInterface, planRepo repository.ProductionPlanRepositoryInterface, userRepo repository.UserRepositoryInterface, seq sequence.Allocator, validator *validator.Validate) *WorkOrderService {
	return &WorkOrderService{
		repo:      repo,
		planRepo:  planRepo,
		userRepo:  userRepo,
		sequence:  seq,
		validator: validator,
		now:       time.Now,
	}
}

// CreateWorkOrderRequest represents the request to create a work order.
// Tasks are created with the order and numbered in the given order.
type CreateWorkOrderRequest struct {
	Title                   string              `json:"title" validate:"required,min=1,max=200"`
	Description             string              `json:"description,omitempty"`
	Priority                models.Priority     `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	ProductionItemCode      string              `json:"production_item_code" validate:"required,max=100"`
	ProductionItemName      string              `json:"production_item_name,omitempty" validate:"max=200"`
	Qty                     float64             `json:"qty" validate:"gt=0"`
	StockUOM                string              `json:"stock_uom,omitempty" validate:"max=20"`
	SourceWarehouse         string              `json:"source_warehouse,omitempty" validate:"max=100"`
	WIPWarehouse            string              `json:"wip_warehouse,omitempty" validate:"max=100"`
	FGWarehouse             string              `json:"fg_warehouse,omitempty" validate:"max=100"`
	ScrapWarehouse          string              `json:"scrap_warehouse,omitempty" validate:"max=100"`
	PlannedStartDate        *time.Time          `json:"planned_start_date,omitempty"`
	PlannedEndDate          *time.Time          `json:"planned_end_date,omitempty"`
	PlannedOperatingCost    decimal.Decimal     `json:"planned_operating_cost" swaggertype:"string"`
	AllowAlternativeItem    bool                `json:"allow_alternative_item,omitempty"`
	UseMultiLevelBOM        *bool               `json:"use_multi_level_bom,omitempty"`
	SkipTransfer            bool                `json:"skip_transfer,omitempty"`
	HasSerialNo             bool                `json:"has_serial_no,omitempty"`
	HasBatchNo              bool                `json:"has_batch_no,omitempty"`
	ProductionPlanID        *uuid.UUID          `json:"production_plan_id,omitempty"`
	AssignedTo              *uuid.UUID          `json:"assigned_to,omitempty"`
	Notes                   string              `json:"notes,omitempty"`
	AdditionalOperatingCost decimal.Decimal     `json:"additional_operating_cost" swaggertype:"string"`
	Tasks                   []CreateTaskRequest `json:"tasks,omitempty" validate:"omitempty,dive"`
}

// UpdateWorkOrderRequest represents a partial update of a work order.
// Status may be set to any value while the order is not completed.
type UpdateWorkOrderRequest struct {
	Title                   *string                 `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description             *string                 `json:"description,omitempty"`
	Status                  *models.WorkOrderStatus `json:"status,omitempty" validate:"omitempty,oneof=draft released in_progress on_hold completed cancelled closed"`
	Priority                *models.Priority        `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	ProductionItemName      *string                 `json:"production_item_name,omitempty" validate:"omitempty,max=200"`
	Qty                     *float64                `json:"qty,omitempty" validate:"omitempty,gt=0"`
	ProducedQty             *float64                `json:"produced_qty,omitempty" validate:"omitempty,gte=0"`
	RejectedQty             *float64                `json:"rejected_qty,omitempty" validate:"omitempty,gte=0"`
	SourceWarehouse         *string                 `json:"source_warehouse,omitempty" validate:"omitempty,max=100"`
	WIPWarehouse            *string                 `json:"wip_warehouse,omitempty" validate:"omitempty,max=100"`
	FGWarehouse             *string                 `json:"fg_warehouse,omitempty" validate:"omitempty,max=100"`
	ScrapWarehouse          *string                 `json:"scrap_warehouse,omitempty" validate:"omitempty,max=100"`
	PlannedStartDate        *time.Time              `json:"planned_start_date,omitempty"`
	PlannedEndDate          *time.Time              `json:"planned_end_date,omitempty"`
	PlannedOperatingCost    *decimal.Decimal        `json:"planned_operating_cost,omitempty" swaggertype:"string"`
	ActualOperatingCost     *decimal.Decimal        `json:"actual_operating_cost,omitempty" swaggertype:"string"`
	AdditionalOperatingCost *decimal.Decimal        `json:"additional_operating_cost,omitempty" swaggertype:"string"`
	AssignedTo              *uuid.UUID              `json:"assigned_to,omitempty"`
	Notes                   *string                 `json:"notes,omitempty"`
}

// WorkOrderListFilter holds the optional listing filters
type WorkOrderListFilter struct {
	Status           string
	Priority         string
	ProductionPlanID *uuid.UUID
	AssignedTo       *uuid.UUID
	Search           string
}

// WorkOrderResponse represents the response for work order operations
type WorkOrderResponse struct {
	ID                      string                  `json:"id"`
	TenantID                string                  `json:"tenant_id"`
	WorkOrderNumber         string                  `json:"work_order_number"`
	Title                   string                  `json:"title"`
	Description             string                  `json:"description"`
	Status                  models.WorkOrderStatus  `json:"status"`
	Priority                models.Priority         `json:"priority"`
	ProductionItemCode      string                  `json:"production_item_code"`
	ProductionItemName      string                  `json:"production_item_name"`
	Qty                     float64                 `json:"qty"`
	ProducedQty             float64                 `json:"produced_qty"`
	RejectedQty             float64                 `json:"rejected_qty"`
	StockUOM                string                  `json:"stock_uom"`
	SourceWarehouse         string                  `json:"source_warehouse,omitempty"`
	WIPWarehouse            string                  `json:"wip_warehouse,omitempty"`
	FGWarehouse             string                  `json:"fg_warehouse,omitempty"`
	ScrapWarehouse          string                  `json:"scrap_warehouse,omitempty"`
	PlannedStartDate        *time.Time              `json:"planned_start_date,omitempty"`
	PlannedEndDate          *time.Time              `json:"planned_end_date,omitempty"`
	ActualStartDate         *time.Time              `json:"actual_start_date,omitempty"`
	ActualEndDate           *time.Time              `json:"actual_end_date,omitempty"`
	PlannedOperatingCost    decimal.Decimal         `json:"planned_operating_cost" swaggertype:"string"`
	ActualOperatingCost     decimal.Decimal         `json:"actual_operating_cost" swaggertype:"string"`
	AdditionalOperatingCost decimal.Decimal         `json:"additional_operating_cost" swaggertype:"string"`
	AllowAlternativeItem    bool                    `json:"allow_alternative_item"`
	UseMultiLevelBOM        bool                    `json:"use_multi_level_bom"`
	SkipTransfer            bool                    `json:"skip_transfer"`
	HasSerialNo             bool                    `json:"has_serial_no"`
	HasBatchNo              bool                    `json:"has_batch_no"`
	ProductionPlanID        *string                 `json:"production_plan_id,omitempty"`
	ProductionPlanNumber    string                  `json:"production_plan_number,omitempty"`
	CreatedBy               string                  `json:"created_by"`
	AssignedTo              *string                 `json:"assigned_to,omitempty"`
	Assignee                *UserSummary            `json:"assignee,omitempty"`
	Creator                 *UserSummary            `json:"creator,omitempty"`
	Notes                   string                  `json:"notes,omitempty"`
	Tasks                   []WorkOrderTaskResponse `json:"tasks"`
	TaskCount               int                     `json:"task_count"`
	CompletedTaskCount      int                     `json:"completed_task_count"`
	CompletionPercentage    int                     `json:"completion_percentage"`
	RemainingQty            float64                 `json:"remaining_qty"`
	IsOverdue               bool                    `json:"is_overdue"`
	CreatedAt               string                  `json:"created_at"`
	UpdatedAt               string                  `json:"updated_at"`
}

// WorkOrderListResponse represents a paginated list of work orders
type WorkOrderListResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// Create creates a draft work order, optionally linked to a plan of the same tenant
func (s *WorkOrderService) Create(ctx context.Context, tenantID, userID uuid.UUID, req *CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !validRange(req.PlannedStartDate, req.PlannedEndDate) {
		return nil, fmt.Errorf("%w: planned_end_date is before planned_start_date", apperrors.ErrInvalidTimeRange)
	}

	// Validate plan exists within the tenant
	if req.ProductionPlanID != nil {
		if _, err := s.planRepo.GetByID(ctx, *req.ProductionPlanID, tenantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProductionPlanNotFound
			}
			return nil, fmt.Errorf("failed to verify production plan: %w", err)
		}
	}

	// Assignees of the order and its tasks must belong to the tenant
	assignees := []*uuid.UUID{req.AssignedTo}
	for i := range req.Tasks {
		assignees = append(assignees, req.Tasks[i].AssignedTo)
	}
	if err := verifyUsers(ctx, s.userRepo, tenantID, assignees...); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	useMultiLevelBOM := true
	if req.UseMultiLevelBOM != nil {
		useMultiLevelBOM = *req.UseMultiLevelBOM
	}

	wo := &models.WorkOrder{
		TenantID:                tenantID,
		Title:                   req.Title,
		Description:             req.Description,
		Status:                  models.WorkOrderStatusDraft,
		Priority:                priority,
		ProductionItemCode:      req.ProductionItemCode,
		ProductionItemName:      req.ProductionItemName,
		Qty:                     req.Qty,
		StockUOM:                req.StockUOM,
		SourceWarehouse:         req.SourceWarehouse,
		WIPWarehouse:            req.WIPWarehouse,
		FGWarehouse:             req.FGWarehouse,
		ScrapWarehouse:          req.ScrapWarehouse,
		PlannedStartDate:        req.PlannedStartDate,
		PlannedEndDate:          req.PlannedEndDate,
		PlannedOperatingCost:    req.PlannedOperatingCost,
		AdditionalOperatingCost: req.AdditionalOperatingCost,
		AllowAlternativeItem:    req.AllowAlternativeItem,
		UseMultiLevelBOM:        useMultiLevelBOM,
		SkipTransfer:            req.SkipTransfer,
		HasSerialNo:             req.HasSerialNo,
		HasBatchNo:              req.HasBatchNo,
		ProductionPlanID:        req.ProductionPlanID,
		CreatedBy:               userID,
		AssignedTo:              req.AssignedTo,
		Notes:                   req.Notes,
	}

	year := s.now().Year()
	err := sequence.Assign(ctx, s.sequence, sequence.WorkOrderScope(tenantID),
		func(ctx context.Context) (int64, error) { return s.repo.LastSequence(ctx, tenantID) },
		func(seq int64) string { return sequence.WorkOrderNumber(year, seq) },
		func(number string) error {
			wo.WorkOrderNumber = number
			wo.Tasks = make([]models.WorkOrderTask, 0, len(req.Tasks))
			for i := range req.Tasks {
				wo.Tasks = append(wo.Tasks, *newTask(wo, &req.Tasks[i], int64(i+1)))
			}
			return s.repo.Create(ctx, wo)
		},
		repository.IsDuplicateKey,
	)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrWorkOrderExists
		}
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"work_order_id":     wo.ID.String(),
		"work_order_number": wo.WorkOrderNumber,
		"tasks":             len(wo.Tasks),
	}).Info("Work order created")

	return s.toResponse(wo), nil
}

// List retrieves a tenant's work orders, newest first
func (s *WorkOrderService) List(ctx context.Context, tenantID uuid.UUID, filter *WorkOrderListFilter, page, pageSize int) (*WorkOrderListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	repoFilter := repository.WorkOrderFilter{}
	if filter != nil {
		if filter.Status != "" {
			status := models.WorkOrderStatus(filter.Status)
			if !status.IsValid() {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStatus, filter.Status)
			}
			repoFilter.Status = status
		}
		if filter.Priority != "" {
			priority := models.Priority(filter.Priority)
			if !priority.IsValid() {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidPriority, filter.Priority)
			}
			repoFilter.Priority = priority
		}
		repoFilter.ProductionPlanID = filter.ProductionPlanID
		repoFilter.AssignedTo = filter.AssignedTo
		repoFilter.Search = filter.Search
	}

	orders, total, err := s.repo.List(ctx, tenantID, repoFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	responses := make([]WorkOrderResponse, len(orders))
	for i := range orders {
		responses[i] = *s.toResponse(&orders[i])
	}

	return &WorkOrderListResponse{
		WorkOrders: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// GetByID retrieves a work order of the tenant with its tasks
func (s *WorkOrderService) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error) {
	wo, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(wo), nil
}

// Update applies the non-nil fields of req unless the order is completed
func (s *WorkOrderService) Update(ctx context.Context, id, tenantID uuid.UUID, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	wo, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.WorkOrderMachine.Next(workflow.OpUpdate, wo.Status); err != nil {
		return nil, err
	}

	if req.Title != nil {
		wo.Title = *req.Title
	}
	if req.Description != nil {
		wo.Description = *req.Description
	}
	if req.Status != nil {
		wo.Status = *req.Status
	}
	if req.Priority != nil {
		wo.Priority = *req.Priority
	}
	if req.ProductionItemName != nil {
		wo.ProductionItemName = *req.ProductionItemName
	}
	if req.Qty != nil {
		wo.Qty = *req.Qty
	}
	if req.ProducedQty != nil {
		wo.ProducedQty = *req.ProducedQty
	}
	if req.RejectedQty != nil {
		wo.RejectedQty = *req.RejectedQty
	}
	if req.SourceWarehouse != nil {
		wo.SourceWarehouse = *req.SourceWarehouse
	}
	if req.WIPWarehouse != nil {
		wo.WIPWarehouse = *req.WIPWarehouse
	}
	if req.FGWarehouse != nil {
		wo.FGWarehouse = *req.FGWarehouse
	}
	if req.ScrapWarehouse != nil {
		wo.ScrapWarehouse = *req.ScrapWarehouse
	}
	if req.PlannedStartDate != nil {
		wo.PlannedStartDate = req.PlannedStartDate
	}
	if req.PlannedEndDate != nil {
		wo.PlannedEndDate = req.PlannedEndDate
	}
	if req.PlannedOperatingCost != nil {
		wo.PlannedOperatingCost = *req.PlannedOperatingCost
	}
	if req.ActualOperatingCost != nil {
		wo.ActualOperatingCost = *req.ActualOperatingCost
	}
	if req.AdditionalOperatingCost != nil {
		wo.AdditionalOperatingCost = *req.AdditionalOperatingCost
	}
	if req.AssignedTo != nil {
		if err := verifyUsers(ctx, s.userRepo, tenantID, req.AssignedTo); err != nil {
			return nil, err
		}
		wo.AssignedTo = req.AssignedTo
	}
	if req.Notes != nil {
		wo.Notes = *req.Notes
	}
	if !validRange(wo.PlannedStartDate, wo.PlannedEndDate) {
		return nil, fmt.Errorf("%w: planned_end_date is before planned_start_date", apperrors.ErrInvalidTimeRange)
	}

	if err := s.repo.Update(ctx, wo); err != nil {
		return nil, fmt.Errorf("failed to update work order: %w", err)
	}

	return s.toResponse(wo), nil
}

// Release moves a draft work order to released
func (s *WorkOrderService) Release(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error) {
	return s.transition(ctx, id, tenantID, workflow.OpRelease, func(wo *models.WorkOrder) error {
		next, err := workflow.WorkOrderMachine.Next(workflow.OpRelease, wo.Status)
		if err != nil {
			return err
		}
		wo.Status = next
		return nil
	})
}

// Start moves a released work order to in progress and stamps the actual start
func (s *WorkOrderService) Start(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error) {
	return s.transition(ctx, id, tenantID, workflow.OpStart, func(wo *models.WorkOrder) error {
		next, err := workflow.WorkOrderMachine.Next(workflow.OpStart, wo.Status)
		if err != nil {
			return err
		}
		now := s.now()
		wo.Status = next
		wo.ActualStartDate = &now
		return nil
	})
}

// Complete moves an in-progress work order whose tasks are all completed to completed
func (s *WorkOrderService) Complete(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error) {
	return s.transition(ctx, id, tenantID, workflow.OpComplete, func(wo *models.WorkOrder) error {
		next, err := workflow.CanCompleteWorkOrder(wo, wo.Tasks)
		if err != nil {
			return err
		}
		now := s.now()
		wo.Status = next
		wo.ActualEndDate = &now
		return nil
	})
}

// Delete removes a draft or cancelled work order together with its tasks
func (s *WorkOrderService) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	wo, err := s.load(ctx, id, tenantID)
	if err != nil {
		return err
	}

	if _, err := workflow.WorkOrderMachine.Next(workflow.OpDelete, wo.Status); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkOrderNotFound
		}
		return fmt.Errorf("failed to delete work order: %w", err)
	}

	logger.WithContext(ctx).WithField("work_order_id", id.String()).Info("Work order deleted")
	return nil
}

// transition loads the order, lets apply move it, then saves it
func (s *WorkOrderService) transition(ctx context.Context, id, tenantID uuid.UUID, op workflow.Operation, apply func(*models.WorkOrder) error) (resp *WorkOrderResponse, err error) {
	defer func() {
		metrics.ObserveTransition(workflow.WorkOrderMachine.Entity(), string(op), err)
	}()

	wo, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	from := wo.Status
	if err := apply(wo); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, wo); err != nil {
		return nil, fmt.Errorf("failed to %s work order: %w", op, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"work_order_id": wo.ID.String(),
		"operation":     string(op),
		"from":          string(from),
		"to":            string(wo.Status),
	}).Info("Work order status changed")

	return s.toResponse(wo), nil
}

func (s *WorkOrderService) load(ctx context.Context, id, tenantID uuid.UUID) (*models.WorkOrder, error) {
	wo, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return wo, nil
}

// toResponse converts a work order model to response
func (s *WorkOrderService) toResponse(wo *models.WorkOrder) *WorkOrderResponse {
	now := s.now()
	summary := workflow.SummarizeTasks(wo.Tasks)
	resp := &WorkOrderResponse{
		ID:                      wo.ID.String(),
		TenantID:                wo.TenantID.String(),
		WorkOrderNumber:         wo.WorkOrderNumber,
		Title:                   wo.Title,
		Description:             wo.Description,
		Status:                  wo.Status,
		Priority:                wo.Priority,
		ProductionItemCode:      wo.ProductionItemCode,
		ProductionItemName:      wo.ProductionItemName,
		Qty:                     wo.Qty,
		ProducedQty:             wo.ProducedQty,
		RejectedQty:             wo.RejectedQty,
		StockUOM:                wo.StockUOM,
		SourceWarehouse:         wo.SourceWarehouse,
		WIPWarehouse:            wo.WIPWarehouse,
		FGWarehouse:             wo.FGWarehouse,
		ScrapWarehouse:          wo.ScrapWarehouse,
		PlannedStartDate:        wo.PlannedStartDate,
		PlannedEndDate:          wo.PlannedEndDate,
		ActualStartDate:         wo.ActualStartDate,
		ActualEndDate:           wo.ActualEndDate,
		PlannedOperatingCost:    wo.PlannedOperatingCost,
		ActualOperatingCost:     wo.ActualOperatingCost,
		AdditionalOperatingCost: wo.AdditionalOperatingCost,
		AllowAlternativeItem:    wo.AllowAlternativeItem,
		UseMultiLevelBOM:        wo.UseMultiLevelBOM,
		SkipTransfer:            wo.SkipTransfer,
		HasSerialNo:             wo.HasSerialNo,
		HasBatchNo:              wo.HasBatchNo,
		CreatedBy:               wo.CreatedBy.String(),
		Assignee:                toUserSummary(wo.Assignee),
		Creator:                 toUserSummary(wo.Creator),
		Notes:                   wo.Notes,
		Tasks:                   make([]WorkOrderTaskResponse, 0, len(wo.Tasks)),
		TaskCount:               summary.Total,
		CompletedTaskCount:      summary.Completed,
		CompletionPercentage:    wo.CompletionPercentage(),
		RemainingQty:            wo.RemainingQty(),
		IsOverdue:               wo.IsOverdue(now),
		CreatedAt:               wo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               wo.UpdatedAt.Format(time.RFC3339),
	}
	if wo.ProductionPlanID != nil {
		planID := wo.ProductionPlanID.String()
		resp.ProductionPlanID = &planID
	}
	if wo.ProductionPlan != nil {
		resp.ProductionPlanNumber = wo.ProductionPlan.PlanNumber
	}
	if wo.AssignedTo != nil {
		assignee := wo.AssignedTo.String()
		resp.AssignedTo = &assignee
	}
	for i := range wo.Tasks {
		resp.Tasks = append(resp.Tasks, *taskResponse(&wo.Tasks[i], now))
	}
	return resp
}
