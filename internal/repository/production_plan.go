package repository

import (
	"context"

	"erp-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductionPlanRepository handles database operations for production plans
type ProductionPlanRepository struct {
	db *gorm.DB
}

// NewProductionPlanRepository creates a new production plan repository
func NewProductionPlanRepository(db *gorm.DB) *ProductionPlanRepository {
	return &ProductionPlanRepository{db: db}
}

// Create inserts a plan together with its items
func (r *ProductionPlanRepository) Create(ctx context.Context, plan *models.ProductionPlan) error {
	return r.db.WithContext(ctx).Omit("WorkOrders", "Creator", "Approver").Create(plan).Error
}

// GetByID retrieves a plan of one tenant with items, work orders and users
func (r *ProductionPlanRepository) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.ProductionPlan, error) {
	var plan models.ProductionPlan
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("WorkOrders", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Creator").
		Preload("Approver").
		First(&plan, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// List retrieves plans of one tenant, newest first
func (r *ProductionPlanRepository) List(ctx context.Context, tenantID uuid.UUID, filter PlanFilter, limit, offset int) ([]models.ProductionPlan, int64, error) {
	var plans []models.ProductionPlan
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ProductionPlan{}).Where("tenant_id = ?", tenantID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartFrom != nil {
		query = query.Where("start_date >= ?", *filter.StartFrom)
	}
	if filter.StartTo != nil {
		query = query.Where("start_date <= ?", *filter.StartTo)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR plan_number ILIKE ?", like, like)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("WorkOrders", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Creator").
		Preload("Approver").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// Update saves plan columns, leaving relations untouched
func (r *ProductionPlanRepository) Update(ctx context.Context, plan *models.ProductionPlan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(plan).Error
}

// UpdateWithItems saves plan columns and swaps its item lines in one transaction
func (r *ProductionPlanRepository) UpdateWithItems(ctx context.Context, plan *models.ProductionPlan, items []models.ProductionPlanItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(plan).Error; err != nil {
			return err
		}
		if err := tx.Where("production_plan_id = ? AND tenant_id = ?", plan.ID, plan.TenantID).
			Delete(&models.ProductionPlanItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProductionPlanID = plan.ID
			items[i].TenantID = plan.TenantID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		plan.Items = items
		return nil
	})
}

// Delete removes a plan of one tenant; items cascade
func (r *ProductionPlanRepository) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductionPlan{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LastSequence returns the highest sequence value among a tenant's plan numbers
func (r *ProductionPlanRepository) LastSequence(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).Model(&models.ProductionPlan{}).
		Select(lastSequenceSelect("plan_number")).
		Where("tenant_id = ?", tenantID).
		Scan(&last).Error
	return last, err
}

// CountWorkOrders counts the work orders that reference a plan
func (r *ProductionPlanRepository) CountWorkOrders(ctx context.Context, id, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WorkOrder{}).
		Where("production_plan_id = ? AND tenant_id = ?", id, tenantID).
		Count(&count).Error
	return count, err
}
