package handlers

import (
	"net/http"

	"erp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for tenant users
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /users
// @Summary List users
// @Description List the users of the caller's tenant, ordered by name
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.UserListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	response, err := h.userService.ListUsers(c.Request.Context(), caller.TenantID, page, pageSize)
	if err != nil {
		respondError(c, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CreateUser handles POST /users
// @Summary Create a user
// @Description Add a user to the caller's tenant. Emails are unique per tenant.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.userService.CreateUser(c.Request.Context(), caller.TenantID, &req)
	if err != nil {
		respondError(c, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// GetCurrentUser handles GET /users/me
// @Summary Get the calling user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	response, err := h.userService.GetUser(c.Request.Context(), caller.UserID, caller.TenantID)
	if err != nil {
		respondError(c, "Failed to get user", err)
		return
	}
	c.JSON(http.StatusOK, response)
}
