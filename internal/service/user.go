package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
	"erp-backend/internal/logger"
	"erp-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for tenant users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to add a user to a tenant
type CreateUserRequest struct {
	Email    string          `json:"email" validate:"required,email,max=255"`
	FullName string          `json:"full_name" validate:"required,max=200"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=admin planner supervisor operator"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Email     string          `json:"email"`
	FullName  string          `json:"full_name"`
	Role      models.UserRole `json:"role"`
	CreatedAt string          `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// CreateUser adds a user to the tenant. Emails are unique per tenant.
func (s *UserService) CreateUser(ctx context.Context, tenantID uuid.UUID, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleOperator
	}

	user := &models.User{
		TenantID: tenantID,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID.String()).Info("User created")
	return toUserResponse(user), nil
}

// GetUser retrieves a user of the tenant
func (s *UserService) GetUser(ctx context.Context, id, tenantID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// ListUsers retrieves the tenant's users, ordered by name
func (s *UserService) ListUsers(ctx context.Context, tenantID uuid.UUID, page, pageSize int) (*UserListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	users, total, err := s.repo.ListByTenant(ctx, tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}

	return &UserListResponse{
		Users:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID.String(),
		TenantID:  u.TenantID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
