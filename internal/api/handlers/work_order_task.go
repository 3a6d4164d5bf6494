package handlers

import (
	"net/http"

	"erp-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkOrderTaskHandler handles HTTP requests for work order tasks
type WorkOrderTaskHandler struct {
	service service.WorkOrderTaskServiceInterface
}

// NewWorkOrderTaskHandler creates a new work order task handler
func NewWorkOrderTaskHandler(service service.WorkOrderTaskServiceInterface) *WorkOrderTaskHandler {
	return &WorkOrderTaskHandler{service: service}
}

// ListTasks handles GET /api/v1/work-orders/:id/tasks
// @Summary List tasks of a work order
// @Description List a work order's tasks in sequence order
// @Tags work-order-tasks
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Success 200 {array} service.WorkOrderTaskResponse "Tasks"
// @Failure 400 {object} ErrorResponse "Invalid work order ID"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id}/tasks [get]
func (h *WorkOrderTaskHandler) ListTasks(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	workOrderID, ok := pathID(c, "work order")
	if !ok {
		return
	}

	tasks, err := h.service.ListByWorkOrder(c.Request.Context(), caller.TenantID, workOrderID)
	if err != nil {
		respondError(c, "Failed to list tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles POST /api/v1/work-orders/:id/tasks
// @Summary Add a task to a work order
// @Description Create a pending task numbered after the work order
// @Tags work-order-tasks
// @Accept json
// @Produce json
// @Param id path string true "Work order ID (UUID)"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.WorkOrderTaskResponse "Created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 409 {object} ErrorResponse "Task number already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-orders/{id}/tasks [post]
func (h *WorkOrderTaskHandler) CreateTask(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	workOrderID, ok := pathID(c, "work order")
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.Create(c.Request.Context(), caller.TenantID, workOrderID, &req)
	if err != nil {
		respondError(c, "Failed to create task", err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /api/v1/work-order-tasks/:id
// @Summary Get task by ID
// @Tags work-order-tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.WorkOrderTaskResponse "Task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-order-tasks/{id} [get]
func (h *WorkOrderTaskHandler) GetTask(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	task, err := h.service.GetByID(c.Request.Context(), id, caller.TenantID)
	if err != nil {
		respondError(c, "Failed to get task", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/v1/work-order-tasks/:id
// @Summary Update a task
// @Description Update the provided fields of a task that is not completed
// @Tags work-order-tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} service.WorkOrderTaskResponse "Updated task"
// @Failure 400 {object} ErrorResponse "Invalid request or task is completed"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-order-tasks/{id} [put]
func (h *WorkOrderTaskHandler) UpdateTask(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	task, err := h.service.Update(c.Request.Context(), id, caller.TenantID, &req)
	if err != nil {
		respondError(c, "Failed to update task", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/work-order-tasks/:id
// @Summary Delete a task
// @Description Delete a task that is neither in progress nor completed
// @Tags work-order-tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 204 "Task deleted"
// @Failure 400 {object} ErrorResponse "Task is not deletable"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-order-tasks/{id} [delete]
func (h *WorkOrderTaskHandler) DeleteTask(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, caller.TenantID); err != nil {
		respondError(c, "Failed to delete task", err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// StartTask handles POST /api/v1/work-order-tasks/:id/start
// @Summary Start a task
// @Description Move a pending task to in progress and assign it to the caller
// @Tags work-order-tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.WorkOrderTaskResponse "Started task"
// @Failure 400 {object} ErrorResponse "Task is not pending"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-order-tasks/{id}/start [post]
func (h *WorkOrderTaskHandler) StartTask(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	task, err := h.service.Start(c.Request.Context(), id, caller.TenantID, caller.UserID)
	if err != nil {
		respondError(c, "Failed to start task", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask handles POST /api/v1/work-order-tasks/:id/complete
// @Summary Complete a task
// @Description Complete an in-progress task, recording the caller and completion time
// @Tags work-order-tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} service.WorkOrderTaskResponse "Completed task"
// @Failure 400 {object} ErrorResponse "Task is not in progress"
// @Failure 401 {object} ErrorResponse "Missing identity"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/work-order-tasks/{id}/complete [post]
func (h *WorkOrderTaskHandler) CompleteTask(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "task")
	if !ok {
		return
	}

	task, err := h.service.Complete(c.Request.Context(), id, caller.TenantID, caller.UserID)
	if err != nil {
		respondError(c, "Failed to complete task", err)
		return
	}

	c.JSON(http.StatusOK, task)
}
