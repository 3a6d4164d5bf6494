package service

import (
	"context"
	"encoding/json"
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

// ProductionPlanService handles business logic for production plans
type ProductionPlanService struct {
	repo      repository.ProductionPlanRepositoryInterface
	sequence  sequence.Allocator
	validator *validator.Validate
	now       func() time.Time
}

// NewProductionPlanService creates a new production plan service
func NewProductionPlanService(repo repository.ProductionPlanRepositoryInterface, seq sequence.Allocator, validator *validator.Validate) *ProductionPlanService {
	return &ProductionPlanService{
		repo:      repo,
		sequence:  seq,
		validator: validator,
		now:       time.Now,
	}
}

// PlanItemRequest is one item line of a plan create or update
type PlanItemRequest struct {
	ItemCode         string     `json:"item_code" validate:"required,max=100"`
	ItemName         string     `json:"item_name,omitempty" validate:"max=200"`
	PlannedQty       float64    `json:"planned_qty" validate:"gte=0"`
	ProducedQty      float64    `json:"produced_qty,omitempty" validate:"gte=0"`
	UOM              string     `json:"uom,omitempty" validate:"max=20"`
	PlannedStartDate *time.Time `json:"planned_start_date,omitempty"`
	PlannedEndDate   *time.Time `json:"planned_end_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// CreatePlanRequest represents the request to create a production plan
type CreatePlanRequest struct {
	Title           string            `json:"title" validate:"required,min=1,max=200"`
	Description     string            `json:"description,omitempty"`
	Priority        models.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	PlanDate        *time.Time        `json:"plan_date,omitempty"`
	StartDate       *time.Time        `json:"start_date,omitempty"`
	EndDate         *time.Time        `json:"end_date,omitempty"`
	TotalPlannedQty float64           `json:"total_planned_qty,omitempty" validate:"gte=0"`
	EstimatedCost   decimal.Decimal   `json:"estimated_cost" swaggertype:"string"`
	Notes           string            `json:"notes,omitempty"`
	Metadata        json.RawMessage   `json:"metadata,omitempty" swaggertype:"object"`
	Items           []PlanItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// UpdatePlanRequest represents a partial update of a production plan.
// Items replaces every item line when present.
type UpdatePlanRequest struct {
	Title            *string            `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description      *string            `json:"description,omitempty"`
	Status           *models.PlanStatus `json:"status,omitempty" validate:"omitempty,oneof=draft submitted in_progress completed cancelled"`
	Priority         *models.Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	PlanDate         *time.Time         `json:"plan_date,omitempty"`
	StartDate        *time.Time         `json:"start_date,omitempty"`
	EndDate          *time.Time         `json:"end_date,omitempty"`
	TotalPlannedQty  *float64           `json:"total_planned_qty,omitempty" validate:"omitempty,gte=0"`
	TotalProducedQty *float64           `json:"total_produced_qty,omitempty" validate:"omitempty,gte=0"`
	EstimatedCost    *decimal.Decimal   `json:"estimated_cost,omitempty" swaggertype:"string"`
	ActualCost       *decimal.Decimal   `json:"actual_cost,omitempty" swaggertype:"string"`
	Notes            *string            `json:"notes,omitempty"`
	Metadata         json.RawMessage    `json:"metadata,omitempty" swaggertype:"object"`
	Items            []PlanItemRequest  `json:"items,omitempty" validate:"omitempty,dive"`
}

// PlanListFilter holds the optional listing filters
type PlanListFilter struct {
	Status    string
	StartFrom *time.Time
	StartTo   *time.Time
	Search    string
}

// PlanItemResponse represents one plan item line
type PlanItemResponse struct {
	ID                   string     `json:"id"`
	ItemCode             string     `json:"item_code"`
	ItemName             string     `json:"item_name"`
	PlannedQty           float64    `json:"planned_qty"`
	ProducedQty          float64    `json:"produced_qty"`
	UOM                  string     `json:"uom"`
	PlannedStartDate     *time.Time `json:"planned_start_date,omitempty"`
	PlannedEndDate       *time.Time `json:"planned_end_date,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	CompletionPercentage int        `json:"completion_percentage"`
}

// PlanWorkOrderSummary is the short view of a work order inside its plan
type PlanWorkOrderSummary struct {
	ID              string                 `json:"id"`
	WorkOrderNumber string                 `json:"work_order_number"`
	Title           string                 `json:"title"`
	Status          models.WorkOrderStatus `json:"status"`
	Qty             float64                `json:"qty"`
	ProducedQty     float64                `json:"produced_qty"`
}

// ProductionPlanResponse represents the response for production plan operations
type ProductionPlanResponse struct {
	ID                   string                 `json:"id"`
	TenantID             string                 `json:"tenant_id"`
	PlanNumber           string                 `json:"plan_number"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description"`
	Status               models.PlanStatus      `json:"status"`
	Priority             models.Priority        `json:"priority"`
	PlanDate             string                 `json:"plan_date"`
	StartDate            *time.Time             `json:"start_date,omitempty"`
	EndDate              *time.Time             `json:"end_date,omitempty"`
	TotalPlannedQty      float64                `json:"total_planned_qty"`
	TotalProducedQty     float64                `json:"total_produced_qty"`
	EstimatedCost        decimal.Decimal        `json:"estimated_cost" swaggertype:"string"`
	ActualCost           decimal.Decimal        `json:"actual_cost" swaggertype:"string"`
	CreatedBy            string                 `json:"created_by"`
	ApprovedBy           *string                `json:"approved_by,omitempty"`
	ApprovedAt           *time.Time             `json:"approved_at,omitempty"`
	Notes                string                 `json:"notes,omitempty"`
	Metadata             json.RawMessage        `json:"metadata,omitempty" swaggertype:"object"`
	Items                []PlanItemResponse     `json:"items"`
	WorkOrders           []PlanWorkOrderSummary `json:"work_orders"`
	Creator              *UserSummary           `json:"creator,omitempty"`
	Approver             *UserSummary           `json:"approver,omitempty"`
	CompletionPercentage int                    `json:"completion_percentage"`
	IsOverdue            bool                   `json:"is_overdue"`
	CreatedAt            string                 `json:"created_at"`
	UpdatedAt            string                 `json:"updated_at"`
}

// ProductionPlanListResponse represents a paginated list of production plans
type ProductionPlanListResponse struct {
	ProductionPlans []ProductionPlanResponse `json:"production_plans"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
	TotalPages      int                      `json:"total_pages"`
}

// Create creates a draft production plan with the tenant's next plan number
func (s *ProductionPlanService) Create(ctx context.Context, tenantID, userID uuid.UUID, req *CreatePlanRequest) (*ProductionPlanResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !validRange(req.StartDate, req.EndDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", apperrors.ErrInvalidTimeRange)
	}

	now := s.now()
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	planDate := startOfDay(now)
	if req.PlanDate != nil {
		planDate = *req.PlanDate
	}

	plan := &models.ProductionPlan{
		TenantID:        tenantID,
		Title:           req.Title,
		Description:     req.Description,
		Status:          models.PlanStatusDraft,
		Priority:        priority,
		PlanDate:        planDate,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalPlannedQty: req.TotalPlannedQty,
		EstimatedCost:   req.EstimatedCost,
		CreatedBy:       userID,
		Notes:           req.Notes,
		Metadata:        req.Metadata,
		Items:           toPlanItems(tenantID, req.Items),
	}
	if plan.TotalPlannedQty == 0 {
		plan.TotalPlannedQty = sumPlannedQty(plan.Items)
	}

	err := sequence.Assign(ctx, s.sequence, sequence.PlanScope(tenantID),
		func(ctx context.Context) (int64, error) { return s.repo.LastSequence(ctx, tenantID) },
		func(seq int64) string { return sequence.PlanNumber(now.Year(), seq) },
		func(number string) error {
			plan.PlanNumber = number
			return s.repo.Create(ctx, plan)
		},
		repository.IsDuplicateKey,
	)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrProductionPlanExists
		}
		return nil, fmt.Errorf("failed to create production plan: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"plan_id":     plan.ID.String(),
		"plan_number": plan.PlanNumber,
	}).Info("Production plan created")

	return s.toResponse(plan), nil
}

// List retrieves a tenant's production plans, newest first
func (s *ProductionPlanService) List(ctx context.Context, tenantID uuid.UUID, filter *PlanListFilter, page, pageSize int) (*ProductionPlanListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	repoFilter := repository.PlanFilter{}
	if filter != nil {
		if filter.Status != "" {
			status := models.PlanStatus(filter.Status)
			if !status.IsValid() {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidStatus, filter.Status)
			}
			repoFilter.Status = status
		}
		if !validRange(filter.StartFrom, filter.StartTo) {
			return nil, fmt.Errorf("%w: start_to is before start_from", apperrors.ErrInvalidTimeRange)
		}
		repoFilter.StartFrom = filter.StartFrom
		repoFilter.StartTo = filter.StartTo
		repoFilter.Search = filter.Search
	}

	plans, total, err := s.repo.List(ctx, tenantID, repoFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list production plans: %w", err)
	}

	responses := make([]ProductionPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *s.toResponse(&plans[i])
	}

	return &ProductionPlanListResponse{
		ProductionPlans: responses,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages(total, pageSize),
	}, nil
}

// GetByID retrieves a production plan of the tenant
func (s *ProductionPlanService) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*ProductionPlanResponse, error) {
	plan, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(plan), nil
}

// Update applies the non-nil fields of req unless the plan is completed
func (s *ProductionPlanService) Update(ctx context.Context, id, tenantID uuid.UUID, req *UpdatePlanRequest) (*ProductionPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.PlanMachine.Next(workflow.OpUpdate, plan.Status); err != nil {
		return nil, err
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Status != nil {
		plan.Status = *req.Status
	}
	if req.Priority != nil {
		plan.Priority = *req.Priority
	}
	if req.PlanDate != nil {
		plan.PlanDate = *req.PlanDate
	}
	if req.StartDate != nil {
		plan.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		plan.EndDate = req.EndDate
	}
	if req.TotalPlannedQty != nil {
		plan.TotalPlannedQty = *req.TotalPlannedQty
	}
	if req.TotalProducedQty != nil {
		plan.TotalProducedQty = *req.TotalProducedQty
	}
	if req.EstimatedCost != nil {
		plan.EstimatedCost = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		plan.ActualCost = *req.ActualCost
	}
	if req.Notes != nil {
		plan.Notes = *req.Notes
	}
	if req.Metadata != nil {
		plan.Metadata = req.Metadata
	}
	if !validRange(plan.StartDate, plan.EndDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", apperrors.ErrInvalidTimeRange)
	}

	if req.Items == nil {
		err = s.repo.Update(ctx, plan)
	} else {
		items := toPlanItems(tenantID, req.Items)
		if req.TotalPlannedQty == nil {
			plan.TotalPlannedQty = sumPlannedQty(items)
		}
		err = s.repo.UpdateWithItems(ctx, plan, items)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update production plan: %w", err)
	}

	return s.toResponse(plan), nil
}

// Delete removes a draft plan that no work order references
func (s *ProductionPlanService) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	plan, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductionPlanNotFound
		}
		return fmt.Errorf("failed to get production plan: %w", err)
	}

	count, err := s.repo.CountWorkOrders(ctx, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to count work orders: %w", err)
	}
	if err := workflow.CanDeletePlan(plan, count); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductionPlanNotFound
		}
		return fmt.Errorf("failed to delete production plan: %w", err)
	}

	logger.WithContext(ctx).WithField("plan_id", id.String()).Info("Production plan deleted")
	return nil
}

// Approve moves a draft plan to submitted and records the approver
func (s *ProductionPlanService) Approve(ctx context.Context, id, tenantID, approverID uuid.UUID) (resp *ProductionPlanResponse, err error) {
	defer func() {
		metrics.ObserveTransition(workflow.PlanMachine.Entity(), string(workflow.OpApprove), err)
	}()

	plan, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.PlanMachine.Next(workflow.OpApprove, plan.Status)
	if err != nil {
		return nil, err
	}

	now := s.now()
	plan.Status = next
	plan.ApprovedBy = &approverID
	plan.ApprovedAt = &now
	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to approve production plan: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"plan_id": plan.ID.String(),
		"status":  string(plan.Status),
	}).Info("Production plan approved")

	// Reload so the response carries the approver's summary
	approved, err := s.load(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(approved), nil
}

func (s *ProductionPlanService) load(ctx context.Context, id, tenantID uuid.UUID) (*models.ProductionPlan, error) {
	plan, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductionPlanNotFound
		}
		return nil, fmt.Errorf("failed to get production plan: %w", err)
	}
	return plan, nil
}

func toPlanItems(tenantID uuid.UUID, reqs []PlanItemRequest) []models.ProductionPlanItem {
	items := make([]models.ProductionPlanItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, models.ProductionPlanItem{
			TenantID:         tenantID,
			ItemCode:         r.ItemCode,
			ItemName:         r.ItemName,
			PlannedQty:       r.PlannedQty,
			ProducedQty:      r.ProducedQty,
			UOM:              r.UOM,
			PlannedStartDate: r.PlannedStartDate,
			PlannedEndDate:   r.PlannedEndDate,
			Notes:            r.Notes,
		})
	}
	return items
}

func sumPlannedQty(items []models.ProductionPlanItem) float64 {
	var total float64
	for _, item := range items {
		total += item.PlannedQty
	}
	return total
}

// toResponse converts a production plan model to response
func (s *ProductionPlanService) toResponse(plan *models.ProductionPlan) *ProductionPlanResponse {
	resp := &ProductionPlanResponse{
		ID:                   plan.ID.String(),
		TenantID:             plan.TenantID.String(),
		PlanNumber:           plan.PlanNumber,
		Title:                plan.Title,
		Description:          plan.Description,
		Status:               plan.Status,
		Priority:             plan.Priority,
		PlanDate:             plan.PlanDate.Format(dateLayout),
		StartDate:            plan.StartDate,
		EndDate:              plan.EndDate,
		TotalPlannedQty:      plan.TotalPlannedQty,
		TotalProducedQty:     plan.TotalProducedQty,
		EstimatedCost:        plan.EstimatedCost,
		ActualCost:           plan.ActualCost,
		CreatedBy:            plan.CreatedBy.String(),
		ApprovedAt:           plan.ApprovedAt,
		Notes:                plan.Notes,
		Metadata:             plan.Metadata,
		Items:                make([]PlanItemResponse, 0, len(plan.Items)),
		WorkOrders:           make([]PlanWorkOrderSummary, 0, len(plan.WorkOrders)),
		Creator:              toUserSummary(plan.Creator),
		Approver:             toUserSummary(plan.Approver),
		CompletionPercentage: plan.CompletionPercentage(),
		IsOverdue:            plan.IsOverdue(s.now()),
		CreatedAt:            plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            plan.UpdatedAt.Format(time.RFC3339),
	}
	if plan.ApprovedBy != nil {
		approver := plan.ApprovedBy.String()
		resp.ApprovedBy = &approver
	}
	for _, item := range plan.Items {
		resp.Items = append(resp.Items, PlanItemResponse{
			ID:                   item.ID.String(),
			ItemCode:             item.ItemCode,
			ItemName:             item.ItemName,
			PlannedQty:           item.PlannedQty,
			ProducedQty:          item.ProducedQty,
			UOM:                  item.UOM,
			PlannedStartDate:     item.PlannedStartDate,
			PlannedEndDate:       item.PlannedEndDate,
			Notes:                item.Notes,
			CompletionPercentage: models.CompletionPercentage(item.ProducedQty, item.PlannedQty),
		})
	}
	for _, wo := range plan.WorkOrders {
		resp.WorkOrders = append(resp.WorkOrders, PlanWorkOrderSummary{
			ID:              wo.ID.String(),
			WorkOrderNumber: wo.WorkOrderNumber,
			Title:           wo.Title,
			Status:          wo.Status,
			Qty:             wo.Qty,
			ProducedQty:     wo.ProducedQty,
		})
	}
	return resp
}
