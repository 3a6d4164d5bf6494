package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidStateError is returned when an operation is not allowed in the entity's current state.
// Handlers report it as 400 Bad Request.
type InvalidStateError struct {
	Entity  string
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Message == t.Message
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProductionPlanNotFound = &NotFoundError{Entity: "production plan"}
	ErrWorkOrderNotFound      = &NotFoundError{Entity: "work order"}
	ErrWorkOrderTaskNotFound  = &NotFoundError{Entity: "work order task"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
)

// Already Exists Errors
var (
	ErrProductionPlanExists = &AlreadyExistsError{Entity: "production plan", Context: "with this number in the tenant"}
	ErrWorkOrderExists      = &AlreadyExistsError{Entity: "work order", Context: "with this number in the tenant"}
	ErrWorkOrderTaskExists  = &AlreadyExistsError{Entity: "work order task", Context: "with this number in the work order"}
	ErrUserExists           = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Production plan state errors
var (
	ErrPlanCompleted       = &InvalidStateError{Entity: "production plan", Message: "cannot update completed production plan"}
	ErrPlanNotDraftDelete  = &InvalidStateError{Entity: "production plan", Message: "only draft production plans can be deleted"}
	ErrPlanHasWorkOrders   = &InvalidStateError{Entity: "production plan", Message: "cannot delete production plan with existing work orders"}
	ErrPlanNotDraftApprove = &InvalidStateError{Entity: "production plan", Message: "only draft production plans can be approved"}
)

// Work order state errors
var (
	ErrWorkOrderCompleted       = &InvalidStateError{Entity: "work order", Message: "cannot update completed work order"}
	ErrWorkOrderNotDraft        = &InvalidStateError{Entity: "work order", Message: "only draft work orders can be released"}
	ErrWorkOrderNotReleased     = &InvalidStateError{Entity: "work order", Message: "work order must be released to start"}
	ErrWorkOrderNotInProgress   = &InvalidStateError{Entity: "work order", Message: "work order must be in progress to complete"}
	ErrWorkOrderTasksIncomplete = &InvalidStateError{Entity: "work order", Message: "all tasks must be completed before completing work order"}
	ErrWorkOrderNotDeletable    = &InvalidStateError{Entity: "work order", Message: "only draft or cancelled work orders can be deleted"}
)

// Task state errors
var (
	ErrTaskCompleted     = &InvalidStateError{Entity: "work order task", Message: "cannot update completed task"}
	ErrTaskNotPending    = &InvalidStateError{Entity: "work order task", Message: "task must be pending to start"}
	ErrTaskNotInProgress = &InvalidStateError{Entity: "work order task", Message: "task must be in progress to complete"}
	ErrTaskNotDeletable  = &InvalidStateError{Entity: "work order task", Message: "cannot delete task that is in progress or completed"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrInvalidTaskType         = errors.New("invalid task type")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingIdentity = &AuthenticationError{Message: "tenant and user identity are required"}
	ErrInvalidToken    = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrRedisNotConfigured = &ConfigurationError{Message: "REDIS_ADDR must be set when SEQUENCE_BACKEND is redis"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, message string) error {
	return &InvalidStateError{Entity: entity, Message: message}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
