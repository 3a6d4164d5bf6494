package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
	"erp-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	dateLayout      = "2006-01-02"
)

// UserSummary is the embedded view of a creator, approver or assignee
type UserSummary struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
}

// normalizePagination clamps page values and returns the matching offset
func normalizePagination(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func toUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:       u.ID.String(),
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

func validRange(start, end *time.Time) bool {
	return start == nil || end == nil || !end.Before(*start)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// verifyUsers checks that every non-nil id names a user of the tenant.
// Each distinct id is looked up once.
func verifyUsers(ctx context.Context, users repository.UserRepositoryInterface, tenantID uuid.UUID, ids ...*uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		if _, err := users.GetByID(ctx, *id, tenantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: assigned_to %s", apperrors.ErrUserNotFound, *id)
			}
			return fmt.Errorf("failed to verify user: %w", err)
		}
	}
	return nil
}
