package handlers

import (
	"context"
	"net/http"

	"erp-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkOrderHandler handles HTTP requests for work orders
type WorkOrderHandler struct {
	service service.WorkOrderServiceInterface
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(service service.WorkOrderServiceInterface) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

// ListWorkOrders handles GET /api/v1/work-orders
// @Summary List work orders
// @Description List the caller's tenant work orders, newest first
// @Tags work-orders
// @Accept json
// @Produce json
// @Param status query string false "Work order status" Enums(draft, released, in_progress, on_hold, completed, cancelled, closed)
// @Param priority query string false "Priority" Enums(low, normal, high, urgent)
// @Param production_plan_id query string false "Production plan ID (UUID)"
// @Param assigned_to query string false "Assignee user ID (UUID)"
// @Param search query string false "Matches title, number or item code"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.WorkOrderListResponse "Work orders"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	planID, err := queryUUID(c, "production_plan_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid production_plan_id: invalid UUID format"})
		return
	}
	assignee, err := queryUUID(c, "assigned_to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigned_to: invalid UUID format"})
		return
	}

	filter := &service.WorkOrderListFilter{
		Status:           c.Query("status"),
		Priority:         c.Query("priority"),
		ProductionPlanID: planID,
		AssignedTo:       assignee,
		Search:           c.Query("search"),
	}
	page, pageSize := pagination(c)

	orders, err := h.service.List(c.Request.Context(), caller.TenantID, filter, page, pageSize)
	if err != nil {
		respondError(c, "Failed to list work orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateWorkOrder handles POST /api/v1/work-orders
// @Summary Create a work order
// @Description Create a draft work order, optionally linked to a production plan and with initial tasks
// @Tags work-orders
// @Accept json
// @Produce json
// @Param workOrder body service.CreateWorkOrderRequest true "Work order data"
// @Success 201 {object} service.WorkOrderResponse "Created work order"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Production plan not found"
// @Failure 409 {object} ErrorResponse "Work order number already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	wo, err := h.service.Create(c.Request.Context(), caller.TenantID, caller.UserID, &req)
	if err != nil {
		respondError(c, "Failed to create work order", err)
		return
	}

	c.JSON(http.StatusCreated, wo)
}

// GetWorkOrder handles GET /api/v1/work-orders/:id
// @Summary Get work order by ID
// @Description Get a work order with its tasks
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 200 {object} service.WorkOrderResponse "Work order"
// @Failure 400 {object} ErrorResponse "Invalid work order ID"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "work order")
	if !ok {
		return
	}

	wo, err := h.service.GetByID(c.Request.Context(), id, caller.TenantID)
	if err != nil {
		respondError(c, "Failed to get work order", err)
		return
	}

	c.JSON(http.StatusOK, wo)
}

// UpdateWorkOrder handles PUT /api/v1/work-orders/:id
// @Summary Update a work order
// @Description Update the provided fields of a work order that is not completed
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Param workOrder body service.UpdateWorkOrderRequest true "Fields to update"
// @Success 200 {object} service.WorkOrderResponse "Updated work order"
// @Failure 400 {object} ErrorResponse "Invalid request or work order is completed"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id} [put]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "work order")
	if !ok {
		return
	}

	var req service.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	wo, err := h.service.Update(c.Request.Context(), id, caller.TenantID, &req)
	if err != nil {
		respondError(c, "Failed to update work order", err)
		return
	}

	c.JSON(http.StatusOK, wo)
}

// DeleteWorkOrder handles DELETE /api/v1/work-orders/:id
// @Summary Delete a work order
// @Description Delete a draft or cancelled work order together with its tasks
// @Tags work-orders
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 204 "Work order deleted"
// @Failure 400 {object} ErrorResponse "Work order is not deletable"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "work order")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, caller.TenantID); err != nil {
		respondError(c, "Failed to delete work order", err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ReleaseWorkOrder handles POST /api/v1/work-orders/:id/release
// @Summary Release a work order
// @Description Move a draft work order to released
// @Tags work-orders
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 200 {object} service.WorkOrderResponse "Released work order"
// @Failure 400 {object} ErrorResponse "Work order is not a draft"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id}/release [post]
func (h *WorkOrderHandler) ReleaseWorkOrder(c *gin.Context) {
	h.transition(c, "release", h.service.Release)
}

// StartWorkOrder handles POST /api/v1/work-orders/:id/start
// @Summary Start a work order
// @Description Move a released work order to in progress and record the actual start date
// @Tags work-orders
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 200 {object} service.WorkOrderResponse "Started work order"
// @Failure 400 {object} ErrorResponse "Work order is not released"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id}/start [post]
func (h *WorkOrderHandler) StartWorkOrder(c *gin.Context) {
	h.transition(c, "start", h.service.Start)
}

// CompleteWorkOrder handles POST /api/v1/work-orders/:id/complete
// @Summary Complete a work order
// @Description Complete an in-progress work order once all of its tasks are completed
// @Tags work-orders
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 200 {object} service.WorkOrderResponse "Completed work order"
// @Failure 400 {object} ErrorResponse "Work order not in progress or tasks incomplete"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id}/complete [post]
func (h *WorkOrderHandler) CompleteWorkOrder(c *gin.Context) {
	h.transition(c, "complete", h.service.Complete)
}

func (h *WorkOrderHandler) transition(c *gin.Context, op string, fn func(ctx context.Context, id, tenantID uuid.UUID) (*service.WorkOrderResponse, error)) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "work order")
	if !ok {
		return
	}

	wo, err := fn(c.Request.Context(), id, caller.TenantID)
	if err != nil {
		respondError(c, "Failed to "+op+" work order", err)
		return
	}

	c.JSON(http.StatusOK, wo)
}
