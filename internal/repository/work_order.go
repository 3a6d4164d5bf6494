package repository

import (
	"context"

	"erp-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkOrderRepository handles database operations for work orders
type WorkOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create inserts a work order together with any tasks attached to it
func (r *WorkOrderRepository) Create(ctx context.Context, wo *models.WorkOrder) error {
	return r.db.WithContext(ctx).Omit("ProductionPlan", "Creator", "Assignee").Create(wo).Error
}

// GetByID retrieves a work order of one tenant with tasks in sequence order
func (r *WorkOrderRepository) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.WorkOrder, error) {
	var wo models.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order ASC, task_number ASC") }).
		Preload("ProductionPlan").
		Preload("Creator").
		Preload("Assignee").
		First(&wo, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &wo, nil
}

// List retrieves work orders of one tenant, newest first
func (r *WorkOrderRepository) List(ctx context.Context, tenantID uuid.UUID, filter WorkOrderFilter, limit, offset int) ([]models.WorkOrder, int64, error) {
	var orders []models.WorkOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&models.WorkOrder{}).Where("tenant_id = ?", tenantID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.ProductionPlanID != nil {
		query = query.Where("production_plan_id = ?", *filter.ProductionPlanID)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR work_order_number ILIKE ? OR production_item_code ILIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_order ASC, task_number ASC") }).
		Preload("ProductionPlan").
		Preload("Creator").
		Preload("Assignee").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Update saves work order columns, leaving tasks untouched
func (r *WorkOrderRepository) Update(ctx context.Context, wo *models.WorkOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(wo).Error
}

// Delete removes a work order of one tenant; tasks cascade
func (r *WorkOrderRepository) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WorkOrder{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LastSequence returns the highest sequence value among a tenant's work order numbers
func (r *WorkOrderRepository) LastSequence(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).Model(&models.WorkOrder{}).
		Select(lastSequenceSelect("work_order_number")).
		Where("tenant_id = ?", tenantID).
		Scan(&last).Error
	return last, err
}
