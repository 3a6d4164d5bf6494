package auth

import (
	"context"
	"errors"
	"net/http"

	"erp-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserLookup finds the user a token is issued for
type UserLookup interface {
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.User, error)
}

// TokenRequest represents the request for a development token
type TokenRequest struct {
	TenantID uuid.UUID `json:"tenant_id" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   UserLookup
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users UserLookup) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// IssueToken handles POST /api/auth/token
// @Summary Issue a development token
// @Description Issue a bearer token for an existing user of a tenant. Not mounted in production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Tenant and user email"
// @Success 200 {object} TokenResponse "Issued token"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unknown user"
// @Failure 500 {object} map[string]interface{} "Failed to issue token"
// @Router /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.TenantID, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user for tenant"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user", "details": err.Error()})
		return
	}

	token, err := h.service.IssueToken(user.ID, user.TenantID, user.Email, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}
