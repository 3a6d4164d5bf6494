package handlers

import (
	"net/http"

	"erp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductionPlanHandler handles HTTP requests for production plans
type ProductionPlanHandler struct {
	service service.ProductionPlanServiceInterface
}

// NewProductionPlanHandler creates a new production plan handler
func NewProductionPlanHandler(service service.ProductionPlanServiceInterface) *ProductionPlanHandler {
	return &ProductionPlanHandler{service: service}
}

// ListProductionPlans handles GET /api/v1/production-plans
// @Summary List production plans
// @Description List the caller's tenant production plans, newest first
// @Tags production-plans
// @Accept json
// @Produce json
// @Param status query string false "Plan status" Enums(draft, submitted, in_progress, completed, cancelled)
// @Param start_from query string false "Earliest start date (YYYY-MM-DD)"
// @Param start_to query string false "Latest start date (YYYY-MM-DD)"
// @Param search query string false "Matches title or plan number"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ProductionPlanListResponse "Production plans"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/production-plans [get]
func (h *ProductionPlanHandler) ListProductionPlans(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	startFrom, err := queryDate(c, "start_from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_from date, expected YYYY-MM-DD"})
		return
	}
	startTo, err := queryDate(c, "start_to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_to date, expected YYYY-MM-DD"})
		return
	}

	filter := &service.PlanListFilter{
		Status:    c.Query("status"),
		StartFrom: startFrom,
		StartTo:   startTo,
		Search:    c.Query("search"),
	}
	page, pageSize := pagination(c)

	plans, err := h.service.List(c.Request.Context(), caller.TenantID, filter, page, pageSize)
	if err != nil {
		respondError(c, "Failed to list production plans", err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreateProductionPlan handles POST /api/v1/production-plans
// @Summary Create a production plan
// @Description Create a draft production plan. The plan number is assigned by the server.
// @Tags production-plans
// @Accept json
// @Produce json
// @Param plan body service.CreatePlanRequest true "Production plan data"
// @Success 201 {object} service.ProductionPlanResponse "Created production plan"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 409 {object} ErrorResponse "Plan number already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/production-plans [post]
func (h *ProductionPlanHandler) CreateProductionPlan(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req service.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(c.Request.Context(), caller.TenantID, caller.UserID, &req)
	if err != nil {
		respondError(c, "Failed to create production plan", err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetProductionPlan handles GET /api/v1/production-plans/:id
// @Summary Get production plan by ID
// @Description Get a production plan with its items and work orders
// @Tags production-plans
// @Accept json
// @Produce json
// @Param id path string true "Production plan ID (UUID)"
// @Success 200 {object} service.ProductionPlanResponse "Production plan"
// @Failure 400 {object} ErrorResponse "Invalid production plan ID"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Production plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/production-plans/{id} [get]
func (h *ProductionPlanHandler) GetProductionPlan(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "production plan")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(c.Request.Context(), id, caller.TenantID)
	if err != nil {
		respondError(c, "Failed to get production plan", err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdateProductionPlan handles PUT /api/v1/production-plans/:id
// @Summary Update a production plan
// @Description Update the provided fields of a production plan that is not completed. Items, when given, replace all item lines.
// @Tags production-plans
// @Accept json
// @Produce json
// @Param id path string true "Production plan ID (UUID)"
// @Param plan body service.UpdatePlanRequest true "Fields to update"
// @Success 200 {object} service.ProductionPlanResponse "Updated production plan"
// @Failure 400 {object} ErrorResponse "Invalid request or plan is completed"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Production plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/production-plans/{id} [put]
func (h *ProductionPlanHandler) UpdateProductionPlan(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "production plan")
	if !ok {
		return
	}

	var req service.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Update(c.Request.Context(), id, caller.TenantID, &req)
	if err != nil {
		respondError(c, "Failed to update production plan", err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeleteProductionPlan handles DELETE /api/v1/production-plans/:id
// @Summary Delete a production plan
// @Description Delete a draft production plan that has no work orders
// @Tags production-plans
// @Produce json
// @Param id path string true "Production plan ID (UUID)"
// @Success 204 "Production plan deleted"
// @Failure 400 {object} ErrorResponse "Plan is not deletable"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Production plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/production-plans/{id} [delete]
func (h *ProductionPlanHandler) DeleteProductionPlan(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "production plan")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, caller.TenantID); err != nil {
		respondError(c, "Failed to delete production plan", err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ApproveProductionPlan handles POST /api/v1/production-plans/:id/approve
// @Summary Approve a production plan
// @Description Approve a draft production plan, recording the caller as approver
// @Tags production-plans
// @Produce json
// @Param id path string true "Production plan ID (UUID)"
// @Success 200 {object} service.ProductionPlanResponse "Approved production plan"
// @Failure 400 {object} ErrorResponse "Plan is not a draft"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Production plan not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/production-plans/{id}/approve [post]
func (h *ProductionPlanHandler) ApproveProductionPlan(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "production plan")
	if !ok {
		return
	}

	plan, err := h.service.Approve(c.Request.Context(), id, caller.TenantID, caller.UserID)
	if err != nil {
		respondError(c, "Failed to approve production plan", err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
