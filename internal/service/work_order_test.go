package service_test

import (
	"context"
	"testing"
	"time"

	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
	"erp-backend/internal/mocks"
	"erp-backend/internal/repository"
	"erp-backend/internal/sequence"
	"erp-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WorkOrderServiceTestSuite defines the test suite for WorkOrderService
type WorkOrderServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockWorkOrderRepositoryInterface
	mockPlanRepo  *mocks.MockProductionPlanRepositoryInterface
	mockUserRepo  *mocks.MockUserRepositoryInterface
	workOrderServ *service.WorkOrderService
	ctx           context.Context
	tenantID      uuid.UUID
	userID        uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkOrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWorkOrderRepositoryInterface(suite.ctrl)
	suite.mockPlanRepo = mocks.NewMockProductionPlanRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.workOrderServ = service.NewWorkOrderService(suite.mockRepo, suite.mockPlanRepo, suite.mockUserRepo, sequence.NewTableAllocator(), validator.New())
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
	suite.userID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *WorkOrderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkOrderServiceTestSuite) newWorkOrder(status models.WorkOrderStatus, taskStatuses ...models.TaskStatus) *models.WorkOrder {
	wo := &models.WorkOrder{
		BaseModel:          models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		TenantID:           suite.tenantID,
		WorkOrderNumber:    "WO-2026-0001",
		Title:              "Machine brackets",
		Status:             status,
		Priority:           models.PriorityNormal,
		ProductionItemCode: "BRK-100",
		Qty:                100,
		CreatedBy:          suite.userID,
	}
	for i, ts := range taskStatuses {
		wo.Tasks = append(wo.Tasks, models.WorkOrderTask{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			TenantID:      suite.tenantID,
			WorkOrderID:   wo.ID,
			TaskNumber:    sequence.TaskNumber(wo.WorkOrderNumber, int64(i+1)),
			Status:        ts,
			SequenceOrder: i + 1,
		})
	}
	return wo
}

func (suite *WorkOrderServiceTestSuite) validRequest() *service.CreateWorkOrderRequest {
	return &service.CreateWorkOrderRequest{
		Title:              "Machine brackets",
		ProductionItemCode: "BRK-100",
		Qty:                100,
	}
}

// TestCreate tests creating a work order with inline tasks
func (suite *WorkOrderServiceTestSuite) TestCreate() {
	req := suite.validRequest()
	req.Tasks = []service.CreateTaskRequest{
		{Title: "Cut"},
		{Title: "Inspect", TaskType: models.TaskTypeInspection, SequenceOrder: 5},
	}
	wantNumber := sequence.WorkOrderNumber(time.Now().Year(), 8)

	suite.mockRepo.EXPECT().LastSequence(gomock.Any(), suite.tenantID).Return(int64(7), nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wo *models.WorkOrder) error {
			assert.Equal(suite.T(), wantNumber, wo.WorkOrderNumber)
			assert.Equal(suite.T(), models.WorkOrderStatusDraft, wo.Status)
			assert.True(suite.T(), wo.UseMultiLevelBOM)
			require.Len(suite.T(), wo.Tasks, 2)
			assert.Equal(suite.T(), wantNumber+"-T01", wo.Tasks[0].TaskNumber)
			assert.Equal(suite.T(), 1, wo.Tasks[0].SequenceOrder)
			assert.Equal(suite.T(), models.TaskTypeOperation, wo.Tasks[0].TaskType)
			assert.Equal(suite.T(), wantNumber+"-T02", wo.Tasks[1].TaskNumber)
			assert.Equal(suite.T(), 5, wo.Tasks[1].SequenceOrder)
			assert.Equal(suite.T(), models.TaskStatusPending, wo.Tasks[1].Status)
			return nil
		}).Times(1)

	resp, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), wantNumber, resp.WorkOrderNumber)
	assert.Equal(suite.T(), 2, resp.TaskCount)
	assert.Equal(suite.T(), 100.0, resp.RemainingQty)
}

// TestCreateWithPlan tests linking a work order to a plan of the same tenant
func (suite *WorkOrderServiceTestSuite) TestCreateWithPlan() {
	planID := uuid.New()
	req := suite.validRequest()
	req.ProductionPlanID = &planID

	suite.mockPlanRepo.EXPECT().GetByID(gomock.Any(), planID, suite.tenantID).
		Return(&models.ProductionPlan{BaseModel: models.BaseModel{ID: planID}, TenantID: suite.tenantID}, nil).Times(1)
	suite.mockRepo.EXPECT().LastSequence(gomock.Any(), suite.tenantID).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resp, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.ProductionPlanID)
	assert.Equal(suite.T(), planID.String(), *resp.ProductionPlanID)
}

// TestCreateWithForeignPlan tests that another tenant's plan is not found
func (suite *WorkOrderServiceTestSuite) TestCreateWithForeignPlan() {
	planID := uuid.New()
	req := suite.validRequest()
	req.ProductionPlanID = &planID

	suite.mockPlanRepo.EXPECT().GetByID(gomock.Any(), planID, suite.tenantID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProductionPlanNotFound)
}

// TestCreateValidation tests rejected payloads
func (suite *WorkOrderServiceTestSuite) TestCreateValidation() {
	noQty := suite.validRequest()
	noQty.Qty = 0
	badTask := suite.validRequest()
	badTask.Tasks = []service.CreateTaskRequest{{Title: "x", TaskType: "welding"}}

	for name, req := range map[string]*service.CreateWorkOrderRequest{
		"missing item code": {Title: "x", Qty: 1},
		"zero quantity":     noQty,
		"bad task type":     badTask,
	} {
		suite.Run(name, func() {
			_, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, req)
			assert.Error(suite.T(), err)
			assert.Contains(suite.T(), err.Error(), "validation failed")
		})
	}
}

// TestCreateConflict tests that a duplicate number becomes a conflict
func (suite *WorkOrderServiceTestSuite) TestCreateConflict() {
	suite.mockRepo.EXPECT().LastSequence(gomock.Any(), suite.tenantID).Return(int64(3), nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(sequence.MaxAttempts)

	_, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, suite.validRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderExists)
}

// TestCreateAfterDeletes tests that numbering continues above the highest number still stored
func (suite *WorkOrderServiceTestSuite) TestCreateAfterDeletes() {
	// WO-0001..0003 were deleted; 0004..0006 remain
	wantNumber := sequence.WorkOrderNumber(time.Now().Year(), 7)
	suite.mockRepo.EXPECT().LastSequence(gomock.Any(), suite.tenantID).Return(int64(6), nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, wo *models.WorkOrder) error {
			assert.Equal(suite.T(), wantNumber, wo.WorkOrderNumber)
			return nil
		}).Times(1)

	resp, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, suite.validRequest())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), wantNumber, resp.WorkOrderNumber)
}

// TestCreateVerifiesAssignees tests that the order and task assignees are looked up in the tenant
func (suite *WorkOrderServiceTestSuite) TestCreateVerifiesAssignees() {
	operator := uuid.New()
	inspector := uuid.New()
	req := suite.validRequest()
	req.AssignedTo = &operator
	req.Tasks = []service.CreateTaskRequest{
		{Title: "Cut", AssignedTo: &operator},
		{Title: "Inspect", AssignedTo: &inspector},
	}

	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), operator, suite.tenantID).Return(&models.User{TenantID: suite.tenantID}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), inspector, suite.tenantID).Return(&models.User{TenantID: suite.tenantID}, nil).Times(1)
	suite.mockRepo.EXPECT().LastSequence(gomock.Any(), suite.tenantID).Return(int64(0), nil).Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resp, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, req)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.AssignedTo)
	assert.Equal(suite.T(), operator.String(), *resp.AssignedTo)
}

// TestForeignAssignee tests that a user of another tenant cannot be assigned
func (suite *WorkOrderServiceTestSuite) TestForeignAssignee() {
	stranger := uuid.New()

	suite.Run("Create", func() {
		req := suite.validRequest()
		req.Tasks = []service.CreateTaskRequest{{Title: "Cut", AssignedTo: &stranger}}
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), stranger, suite.tenantID).Return(nil, gorm.ErrRecordNotFound).Times(1)

		resp, err := suite.workOrderServ.Create(suite.ctx, suite.tenantID, suite.userID, req)

		assert.Nil(suite.T(), resp)
		assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
		assert.True(suite.T(), apperrors.IsNotFound(err))
	})

	suite.Run("Update", func() {
		wo := suite.newWorkOrder(models.WorkOrderStatusReleased)
		suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(1)
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), stranger, suite.tenantID).Return(nil, gorm.ErrRecordNotFound).Times(1)

		_, err := suite.workOrderServ.Update(suite.ctx, wo.ID, suite.tenantID, &service.UpdateWorkOrderRequest{AssignedTo: &stranger})

		assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
		assert.Nil(suite.T(), wo.AssignedTo)
	})
}

// TestList tests filter conversion
func (suite *WorkOrderServiceTestSuite) TestList() {
	planID := uuid.New()
	filter := repository.WorkOrderFilter{
		Status:           models.WorkOrderStatusReleased,
		Priority:         models.PriorityUrgent,
		ProductionPlanID: &planID,
	}
	orders := []models.WorkOrder{*suite.newWorkOrder(models.WorkOrderStatusReleased)}
	suite.mockRepo.EXPECT().List(gomock.Any(), suite.tenantID, filter, 50, 50).Return(orders, int64(51), nil).Times(1)

	resp, err := suite.workOrderServ.List(suite.ctx, suite.tenantID, &service.WorkOrderListFilter{
		Status: "released", Priority: "urgent", ProductionPlanID: &planID,
	}, 2, 50)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.WorkOrders, 1)
	assert.Equal(suite.T(), 2, resp.TotalPages)

	_, err = suite.workOrderServ.List(suite.ctx, suite.tenantID, &service.WorkOrderListFilter{Priority: "asap"}, 1, 20)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPriority)
}

// TestStartFromDraft tests that a draft order cannot start
func (suite *WorkOrderServiceTestSuite) TestStartFromDraft() {
	wo := suite.newWorkOrder(models.WorkOrderStatusDraft)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(1)

	_, err := suite.workOrderServ.Start(suite.ctx, wo.ID, suite.tenantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotReleased)
	assert.Equal(suite.T(), "work order must be released to start", err.Error())
}

// TestReleaseThenStart tests the draft to in progress path
func (suite *WorkOrderServiceTestSuite) TestReleaseThenStart() {
	wo := suite.newWorkOrder(models.WorkOrderStatusDraft)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(2)
	suite.mockRepo.EXPECT().Update(gomock.Any(), wo).Return(nil).Times(2)

	released, err := suite.workOrderServ.Release(suite.ctx, wo.ID, suite.tenantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusReleased, released.Status)

	started, err := suite.workOrderServ.Start(suite.ctx, wo.ID, suite.tenantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusInProgress, started.Status)
	assert.NotNil(suite.T(), started.ActualStartDate)
}

// TestReleaseNotDraft tests that only drafts are released
func (suite *WorkOrderServiceTestSuite) TestReleaseNotDraft() {
	wo := suite.newWorkOrder(models.WorkOrderStatusOnHold)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(1)

	_, err := suite.workOrderServ.Release(suite.ctx, wo.ID, suite.tenantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotDraft)
}

// TestCompleteWaitsForTasks tests the task roll-up guard and the retry after finishing the task
func (suite *WorkOrderServiceTestSuite) TestCompleteWaitsForTasks() {
	wo := suite.newWorkOrder(models.WorkOrderStatusInProgress, models.TaskStatusCompleted, models.TaskStatusInProgress)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(2)

	_, err := suite.workOrderServ.Complete(suite.ctx, wo.ID, suite.tenantID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderTasksIncomplete)
	assert.Equal(suite.T(), "all tasks must be completed before completing work order", err.Error())
	assert.Equal(suite.T(), models.WorkOrderStatusInProgress, wo.Status)

	wo.Tasks[1].Status = models.TaskStatusCompleted
	suite.mockRepo.EXPECT().Update(gomock.Any(), wo).Return(nil).Times(1)

	resp, err := suite.workOrderServ.Complete(suite.ctx, wo.ID, suite.tenantID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusCompleted, resp.Status)
	assert.NotNil(suite.T(), resp.ActualEndDate)
	assert.Equal(suite.T(), 2, resp.CompletedTaskCount)
}

// TestCompleteWithoutTasks tests that an order with no tasks may complete
func (suite *WorkOrderServiceTestSuite) TestCompleteWithoutTasks() {
	wo := suite.newWorkOrder(models.WorkOrderStatusInProgress)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any(), wo).Return(nil).Times(1)

	resp, err := suite.workOrderServ.Complete(suite.ctx, wo.ID, suite.tenantID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusCompleted, resp.Status)
}

// TestCompleteTwice tests that a completed order cannot complete again
func (suite *WorkOrderServiceTestSuite) TestCompleteTwice() {
	wo := suite.newWorkOrder(models.WorkOrderStatusCompleted, models.TaskStatusCompleted)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(1)

	_, err := suite.workOrderServ.Complete(suite.ctx, wo.ID, suite.tenantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotInProgress)
}

// TestUpdateAnyStatusUnlessCompleted tests the loose status patch
func (suite *WorkOrderServiceTestSuite) TestUpdateAnyStatusUnlessCompleted() {
	wo := suite.newWorkOrder(models.WorkOrderStatusDraft)
	closed := models.WorkOrderStatusClosed
	produced := 40.0
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), wo.ID, suite.tenantID).Return(wo, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any(), wo).Return(nil).Times(1)

	resp, err := suite.workOrderServ.Update(suite.ctx, wo.ID, suite.tenantID, &service.UpdateWorkOrderRequest{
		Status: &closed, ProducedQty: &produced,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkOrderStatusClosed, resp.Status)
	assert.Equal(suite.T(), 40, resp.CompletionPercentage)
	assert.Equal(suite.T(), 60.0, resp.RemainingQty)

	done := suite.newWorkOrder(models.WorkOrderStatusCompleted)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), done.ID, suite.tenantID).Return(done, nil).Times(1)

	_, err = suite.workOrderServ.Update(suite.ctx, done.ID, suite.tenantID, &service.UpdateWorkOrderRequest{Status: &closed})
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderCompleted)
}

// TestDelete tests which statuses may be deleted
func (suite *WorkOrderServiceTestSuite) TestDelete() {
	cancelled := suite.newWorkOrder(models.WorkOrderStatusCancelled)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), cancelled.ID, suite.tenantID).Return(cancelled, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(gomock.Any(), cancelled.ID, suite.tenantID).Return(nil).Times(1)
	assert.NoError(suite.T(), suite.workOrderServ.Delete(suite.ctx, cancelled.ID, suite.tenantID))

	running := suite.newWorkOrder(models.WorkOrderStatusInProgress)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), running.ID, suite.tenantID).Return(running, nil).Times(1)
	err := suite.workOrderServ.Delete(suite.ctx, running.ID, suite.tenantID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotDeletable)
}

// TestTenantIsolation tests that every lookup is scoped to the caller's tenant
func (suite *WorkOrderServiceTestSuite) TestTenantIsolation() {
	id := uuid.New()
	otherTenant := uuid.New()
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), id, otherTenant).Return(nil, gorm.ErrRecordNotFound).Times(4)

	_, err := suite.workOrderServ.GetByID(suite.ctx, id, otherTenant)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotFound)
	_, err = suite.workOrderServ.Start(suite.ctx, id, otherTenant)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotFound)
	_, err = suite.workOrderServ.Complete(suite.ctx, id, otherTenant)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotFound)
	err = suite.workOrderServ.Delete(suite.ctx, id, otherTenant)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkOrderNotFound)
}

// TestWorkOrderServiceTestSuite runs the test suite
func TestWorkOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderServiceTestSuite))
}
