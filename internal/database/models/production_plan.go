package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductionPlan represents a planned manufacturing initiative
type ProductionPlan struct {
	BaseModel
	TenantID         uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_production_plans_tenant_number,priority:1"`
	PlanNumber       string          `json:"plan_number" gorm:"size:30;not null;uniqueIndex:idx_production_plans_tenant_number,priority:2"`
	Title            string          `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Description      string          `json:"description" gorm:"type:text"`
	Status           PlanStatus      `json:"status" gorm:"type:varchar(30);not null;default:'draft';index"`
	Priority         Priority        `json:"priority" gorm:"type:varchar(20);not null;default:'normal'"`
	PlanDate         time.Time       `json:"plan_date" gorm:"type:date;not null"`
	StartDate        *time.Time      `json:"start_date" gorm:"type:date;index"`
	EndDate          *time.Time      `json:"end_date" gorm:"type:date"`
	TotalPlannedQty  float64         `json:"total_planned_qty" gorm:"type:decimal(15,4);not null;default:0"`
	TotalProducedQty float64         `json:"total_produced_qty" gorm:"type:decimal(15,4);not null;default:0"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost" gorm:"type:decimal(15,2);not null;default:0"`
	ActualCost       decimal.Decimal `json:"actual_cost" gorm:"type:decimal(15,2);not null;default:0"`
	CreatedBy        uuid.UUID       `json:"created_by" gorm:"type:uuid;not null"`
	ApprovedBy       *uuid.UUID      `json:"approved_by" gorm:"type:uuid"`
	ApprovedAt       *time.Time      `json:"approved_at"`
	Notes            string          `json:"notes" gorm:"type:text"`
	Metadata         json.RawMessage `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Items      []ProductionPlanItem `json:"items,omitempty" gorm:"foreignKey:ProductionPlanID;constraint:OnDelete:CASCADE"`
	WorkOrders []WorkOrder          `json:"work_orders,omitempty" gorm:"foreignKey:ProductionPlanID"`
	Creator    *User                `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;-:migration"`
	Approver   *User                `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy;-:migration"`
}

// TableName returns the table name for ProductionPlan
func (ProductionPlan) TableName() string {
	return "production_plans"
}

// CompletionPercentage reports produced against planned quantity
func (p *ProductionPlan) CompletionPercentage() int {
	return CompletionPercentage(p.TotalProducedQty, p.TotalPlannedQty)
}

// IsOverdue reports whether the plan is past its end date without being completed
func (p *ProductionPlan) IsOverdue(now time.Time) bool {
	return IsOverdue(now, p.EndDate, p.Status == PlanStatusCompleted)
}

// ProductionPlanItem is one item line of a production plan
type ProductionPlanItem struct {
	BaseModel
	ProductionPlanID uuid.UUID  `json:"production_plan_id" gorm:"type:uuid;not null;index"`
	TenantID         uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index"`
	ItemCode         string     `json:"item_code" gorm:"size:100;not null" validate:"required,max=100"`
	ItemName         string     `json:"item_name" gorm:"size:200"`
	PlannedQty       float64    `json:"planned_qty" gorm:"type:decimal(15,4);not null;default:0"`
	ProducedQty      float64    `json:"produced_qty" gorm:"type:decimal(15,4);not null;default:0"`
	UOM              string     `json:"uom" gorm:"size:20"`
	PlannedStartDate *time.Time `json:"planned_start_date"`
	PlannedEndDate   *time.Time `json:"planned_end_date"`
	Notes            string     `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for ProductionPlanItem
func (ProductionPlanItem) TableName() string {
	return "production_plan_items"
}
