package models

// PlanStatus defines the lifecycle states of a production plan
type PlanStatus string

const (
	PlanStatusDraft      PlanStatus = "draft"
	PlanStatusSubmitted  PlanStatus = "submitted"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusCompleted  PlanStatus = "completed"
	PlanStatusCancelled  PlanStatus = "cancelled"
)

// WorkOrderStatus defines the lifecycle states of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusDraft      WorkOrderStatus = "draft"
	WorkOrderStatusReleased   WorkOrderStatus = "released"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusOnHold     WorkOrderStatus = "on_hold"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
	WorkOrderStatusClosed     WorkOrderStatus = "closed"
)

// TaskStatus defines the lifecycle states of a work order task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusOnHold     TaskStatus = "on_hold"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
	TaskStatusFailed     TaskStatus = "failed"
)

// TaskType classifies the kind of work a task represents
type TaskType string

const (
	TaskTypeSetup        TaskType = "setup"
	TaskTypeOperation    TaskType = "operation"
	TaskTypeInspection   TaskType = "inspection"
	TaskTypePackaging    TaskType = "packaging"
	TaskTypeQualityCheck TaskType = "quality_check"
	TaskTypeMaintenance  TaskType = "maintenance"
	TaskTypeCleanup      TaskType = "cleanup"
)

// Priority is shared by production plans and work orders
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the PlanStatus is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusDraft, PlanStatusSubmitted, PlanStatusInProgress, PlanStatusCompleted, PlanStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the WorkOrderStatus is valid
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusDraft, WorkOrderStatusReleased, WorkOrderStatusInProgress, WorkOrderStatusOnHold,
		WorkOrderStatusCompleted, WorkOrderStatusCancelled, WorkOrderStatusClosed:
		return true
	}
	return false
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusOnHold, TaskStatusCompleted, TaskStatusCancelled, TaskStatusFailed:
		return true
	}
	return false
}

// IsValid checks if the TaskType is valid
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeSetup, TaskTypeOperation, TaskTypeInspection, TaskTypePackaging,
		TaskTypeQualityCheck, TaskTypeMaintenance, TaskTypeCleanup:
		return true
	}
	return false
}

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
