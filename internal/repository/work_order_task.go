package repository

import (
	"context"

	"erp-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkOrderTaskRepository handles database operations for work order tasks
type WorkOrderTaskRepository struct {
	db *gorm.DB
}

// NewWorkOrderTaskRepository creates a new work order task repository
func NewWorkOrderTaskRepository(db *gorm.DB) *WorkOrderTaskRepository {
	return &WorkOrderTaskRepository{db: db}
}

// Create creates a new task
func (r *WorkOrderTaskRepository) Create(ctx context.Context, task *models.WorkOrderTask) error {
	return r.db.WithContext(ctx).Omit("WorkOrder").Create(task).Error
}

// GetByID retrieves a task of one tenant
func (r *WorkOrderTaskRepository) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.WorkOrderTask, error) {
	var task models.WorkOrderTask
	err := r.db.WithContext(ctx).First(&task, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByWorkOrder retrieves the tasks of a work order in sequence order
func (r *WorkOrderTaskRepository) ListByWorkOrder(ctx context.Context, workOrderID, tenantID uuid.UUID) ([]models.WorkOrderTask, error) {
	var tasks []models.WorkOrderTask
	err := r.db.WithContext(ctx).
		Where("work_order_id = ? AND tenant_id = ?", workOrderID, tenantID).
		Order("sequence_order ASC, task_number ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *WorkOrderTaskRepository) Update(ctx context.Context, task *models.WorkOrderTask) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// Delete deletes a task of one tenant
func (r *WorkOrderTaskRepository) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.WorkOrderTask{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LastSequence returns the highest sequence value among the task numbers of a work order
func (r *WorkOrderTaskRepository) LastSequence(ctx context.Context, workOrderID uuid.UUID) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).Model(&models.WorkOrderTask{}).
		Select(lastSequenceSelect("task_number")).
		Where("work_order_id = ?", workOrderID).
		Scan(&last).Error
	return last, err
}
