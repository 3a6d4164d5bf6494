package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ProductionPlanServiceInterface defines the interface for production plan service
type ProductionPlanServiceInterface interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, req *CreatePlanRequest) (*ProductionPlanResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, filter *PlanListFilter, page, pageSize int) (*ProductionPlanListResponse, error)
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*ProductionPlanResponse, error)
	Update(ctx context.Context, id, tenantID uuid.UUID, req *UpdatePlanRequest) (*ProductionPlanResponse, error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
	Approve(ctx context.Context, id, tenantID, approverID uuid.UUID) (*ProductionPlanResponse, error)
}

// WorkOrderServiceInterface defines the interface for work order service
type WorkOrderServiceInterface interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, req *CreateWorkOrderRequest) (*WorkOrderResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, filter *WorkOrderListFilter, page, pageSize int) (*WorkOrderListResponse, error)
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error)
	Update(ctx context.Context, id, tenantID uuid.UUID, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error)
	Release(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error)
	Start(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error)
	Complete(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderResponse, error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}

// WorkOrderTaskServiceInterface defines the interface for work order task service
type WorkOrderTaskServiceInterface interface {
	Create(ctx context.Context, tenantID, workOrderID uuid.UUID, req *CreateTaskRequest) (*WorkOrderTaskResponse, error)
	ListByWorkOrder(ctx context.Context, tenantID, workOrderID uuid.UUID) ([]WorkOrderTaskResponse, error)
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*WorkOrderTaskResponse, error)
	Update(ctx context.Context, id, tenantID uuid.UUID, req *UpdateTaskRequest) (*WorkOrderTaskResponse, error)
	Start(ctx context.Context, id, tenantID, userID uuid.UUID) (*WorkOrderTaskResponse, error)
	Complete(ctx context.Context, id, tenantID, userID uuid.UUID) (*WorkOrderTaskResponse, error)
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, tenantID uuid.UUID, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, id, tenantID uuid.UUID) (*UserResponse, error)
	ListUsers(ctx context.Context, tenantID uuid.UUID, page, pageSize int) (*UserListResponse, error)
}
