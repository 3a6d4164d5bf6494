package handlers

import (
	"context"
	"net/http"
	"testing"

	"erp-backend/internal/api/middleware"
	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
	"erp-backend/internal/mocks"
	"erp-backend/internal/service"
	"erp-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkOrderTaskHandlerTestSuite defines the test suite for WorkOrderTaskHandler
type WorkOrderTaskHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTaskService *mocks.MockWorkOrderTaskServiceInterface
	handler         *WorkOrderTaskHandler
	httpSuite       *testutils.HTTPTestSuite
	tenantID        uuid.UUID
	userID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkOrderTaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTaskService = mocks.NewMockWorkOrderTaskServiceInterface(suite.ctrl)
	suite.handler = NewWorkOrderTaskHandler(suite.mockTaskService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.tenantID = uuid.New()
	suite.userID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1", middleware.TenantFromHeaders())
	v1.GET("/work-orders/:id/tasks", suite.handler.ListTasks)
	v1.POST("/work-orders/:id/tasks", suite.handler.CreateTask)
	tasks := v1.Group("/work-order-tasks")
	{
		tasks.GET("/:id", suite.handler.GetTask)
		tasks.PUT("/:id", suite.handler.UpdateTask)
		tasks.DELETE("/:id", suite.handler.DeleteTask)
		tasks.POST("/:id/start", suite.handler.StartTask)
		tasks.POST("/:id/complete", suite.handler.CompleteTask)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkOrderTaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkOrderTaskHandlerTestSuite) request(method, url string, body interface{}) (int, map[string]interface{}) {
	recorder := suite.httpSuite.MakeTenantRequest(method, url, body, suite.tenantID, suite.userID)
	var response map[string]interface{}
	if recorder.Body.Len() > 0 && recorder.Code != http.StatusNoContent && recorder.Body.Bytes()[0] == '{' {
		testutils.ParseJSONResponse(suite.T(), recorder, &response)
	}
	return recorder.Code, response
}

// TestCreateTask tests adding a task to a work order
func (suite *WorkOrderTaskHandlerTestSuite) TestCreateTask() {
	woID := uuid.New()
	suite.mockTaskService.EXPECT().
		Create(gomock.Any(), suite.tenantID, woID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req *service.CreateTaskRequest) (*service.WorkOrderTaskResponse, error) {
			assert.Equal(suite.T(), "Inspect", req.Title)
			assert.Equal(suite.T(), models.TaskTypeInspection, req.TaskType)
			return &service.WorkOrderTaskResponse{
				ID:          uuid.New().String(),
				WorkOrderID: woID.String(),
				TaskNumber:  "WO-2026-0001-T03",
				Status:      models.TaskStatusPending,
			}, nil
		}).
		Times(1)

	code, response := suite.request(http.MethodPost, "/api/v1/work-orders/"+woID.String()+"/tasks", map[string]interface{}{
		"title": "Inspect", "task_type": "inspection",
	})

	assert.Equal(suite.T(), http.StatusCreated, code)
	assert.Equal(suite.T(), "WO-2026-0001-T03", response["task_number"])
}

// TestCreateTaskUnknownWorkOrder tests adding to a missing order
func (suite *WorkOrderTaskHandlerTestSuite) TestCreateTaskUnknownWorkOrder() {
	woID := uuid.New()
	suite.mockTaskService.EXPECT().
		Create(gomock.Any(), suite.tenantID, woID, gomock.Any()).
		Return(nil, apperrors.ErrWorkOrderNotFound).
		Times(1)

	code, _ := suite.request(http.MethodPost, "/api/v1/work-orders/"+woID.String()+"/tasks", map[string]interface{}{"title": "x"})

	assert.Equal(suite.T(), http.StatusNotFound, code)
}

// TestListTasks tests listing a work order's tasks
func (suite *WorkOrderTaskHandlerTestSuite) TestListTasks() {
	woID := uuid.New()
	suite.mockTaskService.EXPECT().
		ListByWorkOrder(gomock.Any(), suite.tenantID, woID).
		Return([]service.WorkOrderTaskResponse{{TaskNumber: "T01"}, {TaskNumber: "T02"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeTenantRequest(http.MethodGet, "/api/v1/work-orders/"+woID.String()+"/tasks", nil, suite.tenantID, suite.userID)

	var tasks []service.WorkOrderTaskResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tasks)
	assert.Len(suite.T(), tasks, 2)
	assert.Equal(suite.T(), "T02", tasks[1].TaskNumber)
}

// TestStartTaskTwice tests that the second start is rejected
func (suite *WorkOrderTaskHandlerTestSuite) TestStartTaskTwice() {
	id := uuid.New()
	assignee := suite.userID.String()

	gomock.InOrder(
		suite.mockTaskService.EXPECT().Start(gomock.Any(), id, suite.tenantID, suite.userID).
			Return(&service.WorkOrderTaskResponse{ID: id.String(), Status: models.TaskStatusInProgress, AssignedTo: &assignee}, nil),
		suite.mockTaskService.EXPECT().Start(gomock.Any(), id, suite.tenantID, suite.userID).
			Return(nil, apperrors.ErrTaskNotPending),
	)

	code, response := suite.request(http.MethodPost, "/api/v1/work-order-tasks/"+id.String()+"/start", nil)
	assert.Equal(suite.T(), http.StatusOK, code)
	assert.Equal(suite.T(), "in_progress", response["status"])
	assert.Equal(suite.T(), assignee, response["assigned_to"])

	code, response = suite.request(http.MethodPost, "/api/v1/work-order-tasks/"+id.String()+"/start", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, code)
	assert.Equal(suite.T(), "task must be pending to start", response["error"])
}

// TestCompleteTask tests completion passes the caller
func (suite *WorkOrderTaskHandlerTestSuite) TestCompleteTask() {
	id := uuid.New()
	completer := suite.userID.String()
	suite.mockTaskService.EXPECT().Complete(gomock.Any(), id, suite.tenantID, suite.userID).
		Return(&service.WorkOrderTaskResponse{ID: id.String(), Status: models.TaskStatusCompleted, CompletedBy: &completer}, nil).
		Times(1)

	code, response := suite.request(http.MethodPost, "/api/v1/work-order-tasks/"+id.String()+"/complete", nil)

	assert.Equal(suite.T(), http.StatusOK, code)
	assert.Equal(suite.T(), completer, response["completed_by"])
}

// TestGetTaskInvalidID tests a malformed id
func (suite *WorkOrderTaskHandlerTestSuite) TestGetTaskInvalidID() {
	code, response := suite.request(http.MethodGet, "/api/v1/work-order-tasks/123", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, code)
	assert.Equal(suite.T(), "Invalid task ID: invalid UUID format", response["error"])
}

// TestUpdateCompletedTask tests the completed guard on update
func (suite *WorkOrderTaskHandlerTestSuite) TestUpdateCompletedTask() {
	id := uuid.New()
	suite.mockTaskService.EXPECT().Update(gomock.Any(), id, suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrTaskCompleted).Times(1)

	code, _ := suite.request(http.MethodPut, "/api/v1/work-order-tasks/"+id.String(), map[string]interface{}{"notes": "redo"})

	assert.Equal(suite.T(), http.StatusBadRequest, code)
}

// TestDeleteTask tests deletion outcomes
func (suite *WorkOrderTaskHandlerTestSuite) TestDeleteTask() {
	id := uuid.New()
	suite.mockTaskService.EXPECT().Delete(gomock.Any(), id, suite.tenantID).Return(nil).Times(1)
	code, _ := suite.request(http.MethodDelete, "/api/v1/work-order-tasks/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, code)

	suite.mockTaskService.EXPECT().Delete(gomock.Any(), id, suite.tenantID).Return(apperrors.ErrTaskNotDeletable).Times(1)
	code, _ = suite.request(http.MethodDelete, "/api/v1/work-order-tasks/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusBadRequest, code)
}

// TestWorkOrderTaskHandlerTestSuite runs the test suite
func TestWorkOrderTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderTaskHandlerTestSuite))
}
