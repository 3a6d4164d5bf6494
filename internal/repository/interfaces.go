package repository

import (
	"context"
	"time"

	"erp-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlanFilter narrows a production plan listing
type PlanFilter struct {
	Status    models.PlanStatus
	StartFrom *time.Time
	StartTo   *time.Time
	Search    string
}

// WorkOrderFilter narrows a work order listing
type WorkOrderFilter struct {
	Status           models.WorkOrderStatus
	Priority         models.Priority
	ProductionPlanID *uuid.UUID
	AssignedTo       *uuid.UUID
	Search           string
}

// ProductionPlanRepositoryInterface defines the interface for production plan repository operations
type ProductionPlanRepositoryInterface interface {
	Create(ctx context.Context, plan *models.ProductionPlan) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.ProductionPlan, error)
	List(ctx context.Context, tenantID uuid.UUID, filter PlanFilter, limit, offset int) ([]models.ProductionPlan, int64, error)
	Update(ctx context.Context, plan *models.ProductionPlan) error
	UpdateWithItems(ctx context.Context, plan *models.ProductionPlan, items []models.ProductionPlanItem) error
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
	LastSequence(ctx context.Context, tenantID uuid.UUID) (int64, error)
	CountWorkOrders(ctx context.Context, id, tenantID uuid.UUID) (int64, error)
}

// WorkOrderRepositoryInterface defines the interface for work order repository operations
type WorkOrderRepositoryInterface interface {
	Create(ctx context.Context, wo *models.WorkOrder) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.WorkOrder, error)
	List(ctx context.Context, tenantID uuid.UUID, filter WorkOrderFilter, limit, offset int) ([]models.WorkOrder, int64, error)
	Update(ctx context.Context, wo *models.WorkOrder) error
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
	LastSequence(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// WorkOrderTaskRepositoryInterface defines the interface for work order task repository operations
type WorkOrderTaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.WorkOrderTask) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.WorkOrderTask, error)
	ListByWorkOrder(ctx context.Context, workOrderID, tenantID uuid.UUID) ([]models.WorkOrderTask, error)
	Update(ctx context.Context, task *models.WorkOrderTask) error
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
	LastSequence(ctx context.Context, workOrderID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]models.User, int64, error)
}
