package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// WorkOrderTask represents a unit of work within a work order
type WorkOrderTask struct {
	BaseModel
	TenantID      uuid.UUID  `json:"tenant_id" gorm:"type:uuid;not null;index"`
	WorkOrderID   uuid.UUID  `json:"work_order_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_work_order_tasks_wo_number,priority:1"`
	TaskNumber    string     `json:"task_number" gorm:"size:40;not null;uniqueIndex:idx_work_order_tasks_wo_number,priority:2"`
	Title         string     `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Description   string     `json:"description" gorm:"type:text"`
	Status        TaskStatus `json:"status" gorm:"type:varchar(30);not null;default:'pending';index"`
	TaskType      TaskType   `json:"task_type" gorm:"type:varchar(30);not null;default:'operation'"`
	SequenceOrder int        `json:"sequence_order" gorm:"not null;default:0"`
	Operation     string     `json:"operation" gorm:"size:100"`
	Workstation   string     `json:"workstation" gorm:"size:100"`
	Machine       string     `json:"machine" gorm:"size:100"`

	EstimatedHours float64         `json:"estimated_hours" gorm:"type:decimal(10,2);not null;default:0"`
	ActualHours    float64         `json:"actual_hours" gorm:"type:decimal(10,2);not null;default:0"`
	HourRate       decimal.Decimal `json:"hour_rate" gorm:"type:decimal(15,2);not null;default:0"`
	OperatingCost  decimal.Decimal `json:"operating_cost" gorm:"type:decimal(15,2);not null;default:0"`

	PlannedStartTime *time.Time `json:"planned_start_time"`
	PlannedEndTime   *time.Time `json:"planned_end_time"`
	ActualStartTime  *time.Time `json:"actual_start_time"`
	ActualEndTime    *time.Time `json:"actual_end_time"`

	CompletedQty float64 `json:"completed_qty" gorm:"type:decimal(15,4);not null;default:0"`
	RejectedQty  float64 `json:"rejected_qty" gorm:"type:decimal(15,4);not null;default:0"`

	Instructions      string         `json:"instructions" gorm:"type:text"`
	QualityParameters string         `json:"quality_parameters" gorm:"type:text"`
	Notes             string         `json:"notes" gorm:"type:text"`
	TimeLogs          datatypes.JSON `json:"time_logs" gorm:"type:jsonb"`
	QualityData       datatypes.JSON `json:"quality_data" gorm:"type:jsonb"`

	AssignedTo  *uuid.UUID `json:"assigned_to" gorm:"type:uuid;index"`
	CompletedBy *uuid.UUID `json:"completed_by" gorm:"type:uuid"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relationships
	WorkOrder *WorkOrder `json:"work_order,omitempty" gorm:"foreignKey:WorkOrderID;-:migration"`
}

// TableName returns the table name for WorkOrderTask
func (WorkOrderTask) TableName() string {
	return "work_order_tasks"
}

// DurationHours is the elapsed time between actual start and end
func (t *WorkOrderTask) DurationHours() float64 {
	return DurationHours(t.ActualStartTime, t.ActualEndTime)
}

// Efficiency compares estimated to actual hours
func (t *WorkOrderTask) Efficiency() int {
	return Efficiency(t.EstimatedHours, t.ActualHours)
}

// IsOverdue reports whether the task is past its planned end without being completed
func (t *WorkOrderTask) IsOverdue(now time.Time) bool {
	return IsOverdue(now, t.PlannedEndTime, t.Status == TaskStatusCompleted)
}
