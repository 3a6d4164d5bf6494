package handlers

import (
	"context"
	"fmt"
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
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkOrderHandlerTestSuite defines the test suite for WorkOrderHandler
type WorkOrderHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockWorkOrderService *mocks.MockWorkOrderServiceInterface
	handler              *WorkOrderHandler
	httpSuite            *testutils.HTTPTestSuite
	tenantID             uuid.UUID
	userID               uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkOrderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkOrderService = mocks.NewMockWorkOrderServiceInterface(suite.ctrl)
	suite.handler = NewWorkOrderHandler(suite.mockWorkOrderService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.tenantID = uuid.New()
	suite.userID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1", middleware.TenantFromHeaders())
	orders := v1.Group("/work-orders")
	{
		orders.GET("", suite.handler.ListWorkOrders)
		orders.POST("", suite.handler.CreateWorkOrder)
		orders.GET("/:id", suite.handler.GetWorkOrder)
		orders.PUT("/:id", suite.handler.UpdateWorkOrder)
		orders.DELETE("/:id", suite.handler.DeleteWorkOrder)
		orders.POST("/:id/release", suite.handler.ReleaseWorkOrder)
		orders.POST("/:id/start", suite.handler.StartWorkOrder)
		orders.POST("/:id/complete", suite.handler.CompleteWorkOrder)
	}
}

// TearDownTest cleans up after each test
func (suite *WorkOrderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkOrderHandlerTestSuite) request(method, url string, body interface{}) (int, map[string]interface{}) {
	recorder := suite.httpSuite.MakeTenantRequest(method, url, body, suite.tenantID, suite.userID)
	var response map[string]interface{}
	if recorder.Body.Len() > 0 && recorder.Code != http.StatusNoContent {
		testutils.ParseJSONResponse(suite.T(), recorder, &response)
	}
	return recorder.Code, response
}

// TestCreateWorkOrder tests creating a work order with inline tasks
func (suite *WorkOrderHandlerTestSuite) TestCreateWorkOrder() {
	suite.mockWorkOrderService.EXPECT().
		Create(gomock.Any(), suite.tenantID, suite.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req *service.CreateWorkOrderRequest) (*service.WorkOrderResponse, error) {
			assert.Equal(suite.T(), "BRK-10", req.ProductionItemCode)
			assert.Equal(suite.T(), float64(50), req.Qty)
			require.Len(suite.T(), req.Tasks, 2)
			return &service.WorkOrderResponse{
				ID:              uuid.New().String(),
				WorkOrderNumber: "WO-2026-0001",
				Status:          models.WorkOrderStatusDraft,
				TaskCount:       2,
			}, nil
		}).
		Times(1)

	code, response := suite.request(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"title":                "Brackets batch",
		"production_item_code": "BRK-10",
		"qty":                  50,
		"tasks": []map[string]interface{}{
			{"title": "Cut"},
			{"title": "Bend"},
		},
	})

	assert.Equal(suite.T(), http.StatusCreated, code)
	assert.Equal(suite.T(), "WO-2026-0001", response["work_order_number"])
	assert.Equal(suite.T(), float64(2), response["task_count"])
}

// TestCreateWorkOrderUnknownPlan tests linking to a plan outside the tenant
func (suite *WorkOrderHandlerTestSuite) TestCreateWorkOrderUnknownPlan() {
	suite.mockWorkOrderService.EXPECT().
		Create(gomock.Any(), suite.tenantID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrProductionPlanNotFound).
		Times(1)

	code, _ := suite.request(http.MethodPost, "/api/v1/work-orders", map[string]interface{}{
		"title": "x", "production_item_code": "A", "qty": 1, "production_plan_id": uuid.New().String(),
	})

	assert.Equal(suite.T(), http.StatusNotFound, code)
}

// TestListWorkOrders tests filter parsing of the list endpoint
func (suite *WorkOrderHandlerTestSuite) TestListWorkOrders() {
	planID := uuid.New()
	suite.mockWorkOrderService.EXPECT().
		List(gomock.Any(), suite.tenantID, gomock.Any(), 1, 20).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filter *service.WorkOrderListFilter, _, _ int) (*service.WorkOrderListResponse, error) {
			assert.Equal(suite.T(), "released", filter.Status)
			assert.Equal(suite.T(), "high", filter.Priority)
			require.NotNil(suite.T(), filter.ProductionPlanID)
			assert.Equal(suite.T(), planID, *filter.ProductionPlanID)
			assert.Nil(suite.T(), filter.AssignedTo)
			return &service.WorkOrderListResponse{WorkOrders: []service.WorkOrderResponse{}, Page: 1, PageSize: 20}, nil
		}).
		Times(1)

	code, _ := suite.request(http.MethodGet, "/api/v1/work-orders?status=released&priority=high&production_plan_id="+planID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, code)
}

// TestListWorkOrdersBadAssignee tests a malformed assignee filter
func (suite *WorkOrderHandlerTestSuite) TestListWorkOrdersBadAssignee() {
	code, _ := suite.request(http.MethodGet, "/api/v1/work-orders?assigned_to=bob", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, code)
}

// TestTransitions tests the release, start and complete endpoints
func (suite *WorkOrderHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	base := "/api/v1/work-orders/" + id.String()

	suite.mockWorkOrderService.EXPECT().Release(gomock.Any(), id, suite.tenantID).
		Return(&service.WorkOrderResponse{ID: id.String(), Status: models.WorkOrderStatusReleased}, nil).Times(1)
	code, response := suite.request(http.MethodPost, base+"/release", nil)
	assert.Equal(suite.T(), http.StatusOK, code)
	assert.Equal(suite.T(), "released", response["status"])

	suite.mockWorkOrderService.EXPECT().Start(gomock.Any(), id, suite.tenantID).
		Return(&service.WorkOrderResponse{ID: id.String(), Status: models.WorkOrderStatusInProgress}, nil).Times(1)
	code, response = suite.request(http.MethodPost, base+"/start", nil)
	assert.Equal(suite.T(), http.StatusOK, code)
	assert.Equal(suite.T(), "in_progress", response["status"])

	suite.mockWorkOrderService.EXPECT().Complete(gomock.Any(), id, suite.tenantID).
		Return(nil, apperrors.ErrWorkOrderTasksIncomplete).Times(1)
	code, response = suite.request(http.MethodPost, base+"/complete", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, code)
	assert.Equal(suite.T(), "all tasks must be completed before completing work order", response["error"])
}

// TestStartDraftWorkOrder tests starting an order that was never released
func (suite *WorkOrderHandlerTestSuite) TestStartDraftWorkOrder() {
	id := uuid.New()
	suite.mockWorkOrderService.EXPECT().Start(gomock.Any(), id, suite.tenantID).
		Return(nil, apperrors.ErrWorkOrderNotReleased).Times(1)

	code, response := suite.request(http.MethodPost, "/api/v1/work-orders/"+id.String()+"/start", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, code)
	assert.Equal(suite.T(), "work order must be released to start", response["error"])
}

// TestUpdateWorkOrder tests a patch and the completed guard
func (suite *WorkOrderHandlerTestSuite) TestUpdateWorkOrder() {
	id := uuid.New()
	suite.mockWorkOrderService.EXPECT().
		Update(gomock.Any(), id, suite.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req *service.UpdateWorkOrderRequest) (*service.WorkOrderResponse, error) {
			require.NotNil(suite.T(), req.Status)
			assert.Equal(suite.T(), models.WorkOrderStatusOnHold, *req.Status)
			return &service.WorkOrderResponse{ID: id.String(), Status: models.WorkOrderStatusOnHold}, nil
		}).
		Times(1)

	code, _ := suite.request(http.MethodPut, "/api/v1/work-orders/"+id.String(), map[string]interface{}{"status": "on_hold"})
	assert.Equal(suite.T(), http.StatusOK, code)

	suite.mockWorkOrderService.EXPECT().
		Update(gomock.Any(), id, suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrWorkOrderCompleted).
		Times(1)

	code, _ = suite.request(http.MethodPut, "/api/v1/work-orders/"+id.String(), map[string]interface{}{"notes": "late"})
	assert.Equal(suite.T(), http.StatusBadRequest, code)
}

// TestUpdateWorkOrderForeignAssignee tests that an assignee outside the tenant is reported as not found
func (suite *WorkOrderHandlerTestSuite) TestUpdateWorkOrderForeignAssignee() {
	id := uuid.New()
	stranger := uuid.New()
	suite.mockWorkOrderService.EXPECT().
		Update(gomock.Any(), id, suite.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req *service.UpdateWorkOrderRequest) (*service.WorkOrderResponse, error) {
			require.NotNil(suite.T(), req.AssignedTo)
			assert.Equal(suite.T(), stranger, *req.AssignedTo)
			return nil, fmt.Errorf("%w: assigned_to %s", apperrors.ErrUserNotFound, stranger)
		}).
		Times(1)

	code, body := suite.request(http.MethodPut, "/api/v1/work-orders/"+id.String(), map[string]interface{}{"assigned_to": stranger.String()})

	assert.Equal(suite.T(), http.StatusNotFound, code)
	assert.Contains(suite.T(), body["error"], "user not found")
}

// TestDeleteWorkOrder tests deletion outcomes
func (suite *WorkOrderHandlerTestSuite) TestDeleteWorkOrder() {
	id := uuid.New()
	suite.mockWorkOrderService.EXPECT().Delete(gomock.Any(), id, suite.tenantID).Return(nil).Times(1)
	code, _ := suite.request(http.MethodDelete, "/api/v1/work-orders/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, code)

	suite.mockWorkOrderService.EXPECT().Delete(gomock.Any(), id, suite.tenantID).Return(apperrors.ErrWorkOrderNotDeletable).Times(1)
	code, _ = suite.request(http.MethodDelete, "/api/v1/work-orders/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusBadRequest, code)

	suite.mockWorkOrderService.EXPECT().Delete(gomock.Any(), id, suite.tenantID).Return(apperrors.ErrWorkOrderNotFound).Times(1)
	code, _ = suite.request(http.MethodDelete, "/api/v1/work-orders/"+id.String(), nil)
	assert.Equal(suite.T(), http.StatusNotFound, code)
}

// TestWorkOrderHandlerTestSuite runs the test suite
func TestWorkOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderHandlerTestSuite))
}
