package testutils

import (
	"fmt"
	"time"

	"erp-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionPlanFactory provides methods to create test ProductionPlan data
type ProductionPlanFactory struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
}

// NewProductionPlanFactory creates a factory for one tenant and creator
func NewProductionPlanFactory(tenantID, userID uuid.UUID) *ProductionPlanFactory {
	return &ProductionPlanFactory{TenantID: tenantID, UserID: userID}
}

// Create creates a draft plan with default values
func (f *ProductionPlanFactory) Create() *models.ProductionPlan {
	start := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 14)
	return &models.ProductionPlan{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:        f.TenantID,
		PlanNumber:      "PP-" + time.Now().Format("2006") + "-0001",
		Title:           "Q3 bracket run",
		Status:          models.PlanStatusDraft,
		Priority:        models.PriorityNormal,
		PlanDate:        time.Now().Truncate(24 * time.Hour),
		StartDate:       &start,
		EndDate:         &end,
		TotalPlannedQty: 500,
		EstimatedCost:   decimal.NewFromInt(12500),
		CreatedBy:       f.UserID,
	}
}

// WithNumber creates a plan with a custom number
func (f *ProductionPlanFactory) WithNumber(number string) *models.ProductionPlan {
	plan := f.Create()
	plan.PlanNumber = number
	return plan
}

// WithStatus creates a plan in a given status
func (f *ProductionPlanFactory) WithStatus(status models.PlanStatus) *models.ProductionPlan {
	plan := f.Create()
	plan.Status = status
	return plan
}

// WorkOrderFactory provides methods to create test WorkOrder data
type WorkOrderFactory struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
}

// NewWorkOrderFactory creates a factory for one tenant and creator
func NewWorkOrderFactory(tenantID, userID uuid.UUID) *WorkOrderFactory {
	return &WorkOrderFactory{TenantID: tenantID, UserID: userID}
}

// Create creates a draft work order with default values
func (f *WorkOrderFactory) Create() *models.WorkOrder {
	plannedEnd := time.Now().AddDate(0, 0, 7)
	return &models.WorkOrder{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:           f.TenantID,
		WorkOrderNumber:    "WO-" + time.Now().Format("2006") + "-0001",
		Title:              "Machine steel brackets",
		Status:             models.WorkOrderStatusDraft,
		Priority:           models.PriorityNormal,
		ProductionItemCode: "BRK-100",
		ProductionItemName: "Steel bracket",
		Qty:                100,
		StockUOM:           "pcs",
		PlannedEndDate:     &plannedEnd,
		UseMultiLevelBOM:   true,
		CreatedBy:          f.UserID,
	}
}

// WithStatus creates a work order in a given status
func (f *WorkOrderFactory) WithStatus(status models.WorkOrderStatus) *models.WorkOrder {
	wo := f.Create()
	wo.Status = status
	return wo
}

// WithNumber creates a work order with a custom number
func (f *WorkOrderFactory) WithNumber(number string) *models.WorkOrder {
	wo := f.Create()
	wo.WorkOrderNumber = number
	return wo
}

// ForPlan creates a work order linked to a production plan
func (f *WorkOrderFactory) ForPlan(planID uuid.UUID) *models.WorkOrder {
	wo := f.Create()
	wo.ProductionPlanID = &planID
	return wo
}

// WorkOrderTaskFactory provides methods to create test WorkOrderTask data
type WorkOrderTaskFactory struct {
	WorkOrder *models.WorkOrder
	seq       int
}

// NewWorkOrderTaskFactory creates a factory for tasks of one work order
func NewWorkOrderTaskFactory(wo *models.WorkOrder) *WorkOrderTaskFactory {
	return &WorkOrderTaskFactory{WorkOrder: wo}
}

// Create creates a pending task with default values; each call takes the next task number
func (f *WorkOrderTaskFactory) Create() *models.WorkOrderTask {
	f.seq++
	return &models.WorkOrderTask{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:       f.WorkOrder.TenantID,
		WorkOrderID:    f.WorkOrder.ID,
		TaskNumber:     fmt.Sprintf("%s-T%02d", f.WorkOrder.WorkOrderNumber, f.seq),
		Title:          "Cut blanks",
		Status:         models.TaskStatusPending,
		TaskType:       models.TaskTypeOperation,
		SequenceOrder:  f.seq,
		Workstation:    "LASER-01",
		EstimatedHours: 4,
		HourRate:       decimal.NewFromInt(45),
	}
}

// WithStatus creates a task in a given status
func (f *WorkOrderTaskFactory) WithStatus(status models.TaskStatus) *models.WorkOrderTask {
	task := f.Create()
	task.Status = status
	return task
}

// UserFactory provides methods to create test User data
type UserFactory struct {
	TenantID uuid.UUID
}

// NewUserFactory creates a factory for users of one tenant
func NewUserFactory(tenantID uuid.UUID) *UserFactory {
	return &UserFactory{TenantID: tenantID}
}

// Create creates a test user with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: f.TenantID,
		Email:    "planner-" + id.String()[:8] + "@example.com",
		FullName: "Test Planner",
		Role:     models.UserRolePlanner,
	}
}
