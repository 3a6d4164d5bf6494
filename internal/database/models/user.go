package models

import (
	"github.com/google/uuid"
)

// UserRole is the coarse role a user holds inside a tenant
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRolePlanner    UserRole = "planner"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleOperator   UserRole = "operator"
)

// User is a tenant member referenced as creator, approver or assignee
type User struct {
	BaseModel
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex:idx_users_tenant_email,priority:1"`
	Email    string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_tenant_email,priority:2" validate:"required,email,max=255"`
	FullName string    `json:"full_name" gorm:"size:200;not null" validate:"required,max=200"`
	Role     UserRole  `json:"role" gorm:"type:varchar(30);not null;default:'operator'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
