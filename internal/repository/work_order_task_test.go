//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"erp-backend/internal/database/models"
	"erp-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkOrderTaskRepositoryTestSuite tests the WorkOrderTaskRepository
type WorkOrderTaskRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkOrderTaskRepository
	ctx           context.Context
	workOrder     *models.WorkOrder
}

func (suite *WorkOrderTaskRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewWorkOrderTaskRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

func (suite *WorkOrderTaskRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *WorkOrderTaskRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.workOrder = testutils.NewWorkOrderFactory(uuid.New(), uuid.New()).Create()
	suite.Require().NoError(NewWorkOrderRepository(suite.baseTestSuite.DB).Create(suite.ctx, suite.workOrder))
}

func (suite *WorkOrderTaskRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WorkOrderTaskRepositoryTestSuite) TestCreateAndGet() {
	task := testutils.NewWorkOrderTaskFactory(suite.workOrder).Create()
	task.TimeLogs = datatypes.JSON(`[{"operator":"ana","hours":1.5}]`)
	suite.Require().NoError(suite.repo.Create(suite.ctx, task))

	found, err := suite.repo.GetByID(suite.ctx, task.ID, suite.workOrder.TenantID)
	suite.Require().NoError(err)
	suite.Equal(task.TaskNumber, found.TaskNumber)
	suite.JSONEq(`[{"operator":"ana","hours":1.5}]`, string(found.TimeLogs))

	_, err = suite.repo.GetByID(suite.ctx, task.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *WorkOrderTaskRepositoryTestSuite) TestListByWorkOrderOrdered() {
	factory := testutils.NewWorkOrderTaskFactory(suite.workOrder)
	for _, seq := range []int{3, 1, 2} {
		task := factory.Create()
		task.SequenceOrder = seq
		suite.Require().NoError(suite.repo.Create(suite.ctx, task))
	}

	tasks, err := suite.repo.ListByWorkOrder(suite.ctx, suite.workOrder.ID, suite.workOrder.TenantID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 3)
	suite.Equal([]int{1, 2, 3}, []int{tasks[0].SequenceOrder, tasks[1].SequenceOrder, tasks[2].SequenceOrder})

	tasks, err = suite.repo.ListByWorkOrder(suite.ctx, suite.workOrder.ID, uuid.New())
	suite.NoError(err)
	suite.Empty(tasks)

	last, err := suite.repo.LastSequence(suite.ctx, suite.workOrder.ID)
	suite.NoError(err)
	suite.Equal(int64(3), last)
}

func (suite *WorkOrderTaskRepositoryTestSuite) TestUpdateAndDelete() {
	task := testutils.NewWorkOrderTaskFactory(suite.workOrder).Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, task))

	task.Status = models.TaskStatusInProgress
	task.ActualHours = 2.5
	suite.Require().NoError(suite.repo.Update(suite.ctx, task))

	found, err := suite.repo.GetByID(suite.ctx, task.ID, task.TenantID)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusInProgress, found.Status)
	suite.InDelta(2.5, found.ActualHours, 0.001)

	suite.ErrorIs(suite.repo.Delete(suite.ctx, task.ID, uuid.New()), gorm.ErrRecordNotFound)
	suite.NoError(suite.repo.Delete(suite.ctx, task.ID, task.TenantID))
}

func TestWorkOrderTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderTaskRepositoryTestSuite))
}
