package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkOrder represents an executable manufacturing order
type WorkOrder struct {
	BaseModel
	TenantID           uuid.UUID       `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_work_orders_tenant_number,priority:1"`
	WorkOrderNumber    string          `json:"work_order_number" gorm:"size:30;not null;uniqueIndex:idx_work_orders_tenant_number,priority:2"`
	Title              string          `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Description        string          `json:"description" gorm:"type:text"`
	Status             WorkOrderStatus `json:"status" gorm:"type:varchar(30);not null;default:'draft';index"`
	Priority           Priority        `json:"priority" gorm:"type:varchar(20);not null;default:'normal'"`
	ProductionItemCode string          `json:"production_item_code" gorm:"size:100;not null"`
	ProductionItemName string          `json:"production_item_name" gorm:"size:200"`
	Qty                float64         `json:"qty" gorm:"type:decimal(15,4);not null;default:0"`
	ProducedQty        float64         `json:"produced_qty" gorm:"type:decimal(15,4);not null;default:0"`
	RejectedQty        float64         `json:"rejected_qty" gorm:"type:decimal(15,4);not null;default:0"`
	StockUOM           string          `json:"stock_uom" gorm:"size:20"`

	SourceWarehouse string `json:"source_warehouse" gorm:"size:100"`
	WIPWarehouse    string `json:"wip_warehouse" gorm:"size:100"`
	FGWarehouse     string `json:"fg_warehouse" gorm:"size:100"`
	ScrapWarehouse  string `json:"scrap_warehouse" gorm:"size:100"`

	PlannedStartDate *time.Time `json:"planned_start_date"`
	PlannedEndDate   *time.Time `json:"planned_end_date"`
	ActualStartDate  *time.Time `json:"actual_start_date"`
	ActualEndDate    *time.Time `json:"actual_end_date"`

	PlannedOperatingCost    decimal.Decimal `json:"planned_operating_cost" gorm:"type:decimal(15,2);not null;default:0"`
	ActualOperatingCost     decimal.Decimal `json:"actual_operating_cost" gorm:"type:decimal(15,2);not null;default:0"`
	AdditionalOperatingCost decimal.Decimal `json:"additional_operating_cost" gorm:"type:decimal(15,2);not null;default:0"`

	AllowAlternativeItem bool `json:"allow_alternative_item" gorm:"not null;default:false"`
	UseMultiLevelBOM     bool `json:"use_multi_level_bom" gorm:"not null;default:true"`
	SkipTransfer         bool `json:"skip_transfer" gorm:"not null;default:false"`
	HasSerialNo          bool `json:"has_serial_no" gorm:"not null;default:false"`
	HasBatchNo           bool `json:"has_batch_no" gorm:"not null;default:false"`

	ProductionPlanID *uuid.UUID `json:"production_plan_id" gorm:"type:uuid;index"`
	CreatedBy        uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	AssignedTo       *uuid.UUID `json:"assigned_to" gorm:"type:uuid;index"`
	Notes            string     `json:"notes" gorm:"type:text"`

	// Relationships
	Tasks          []WorkOrderTask `json:"tasks,omitempty" gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	ProductionPlan *ProductionPlan `json:"production_plan,omitempty" gorm:"foreignKey:ProductionPlanID;-:migration"`
	Creator        *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;-:migration"`
	Assignee       *User           `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo;-:migration"`
}

// TableName returns the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "work_orders"
}

// CompletionPercentage reports produced against planned quantity
func (w *WorkOrder) CompletionPercentage() int {
	return CompletionPercentage(w.ProducedQty, w.Qty)
}

// RemainingQty is the planned quantity not yet produced, never negative
func (w *WorkOrder) RemainingQty() float64 {
	if w.ProducedQty >= w.Qty {
		return 0
	}
	return w.Qty - w.ProducedQty
}

// IsOverdue reports whether the order is past its planned end without being completed
func (w *WorkOrder) IsOverdue(now time.Time) bool {
	return IsOverdue(now, w.PlannedEndDate, w.Status == WorkOrderStatusCompleted)
}
