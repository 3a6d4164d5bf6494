package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"erp-backend/internal/database/models"
	apperrors "erp-backend/internal/errors"
	"erp-backend/internal/mocks"
	"erp-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	ctx          context.Context
	tenantID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, validator.New())
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUserDefaultsRole tests that a user without a role becomes an operator
func (suite *UserServiceTestSuite) TestCreateUserDefaultsRole() {
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(suite.T(), suite.tenantID, user.TenantID)
			assert.Equal(suite.T(), models.UserRoleOperator, user.Role)
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.userService.CreateUser(suite.ctx, suite.tenantID, &service.CreateUserRequest{
		Email:    "lena@acme.example",
		FullName: "Lena Okafor",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "operator", string(response.Role))
	assert.Equal(suite.T(), suite.tenantID.String(), response.TenantID)
}

// TestCreateUserValidation tests request validation
func (suite *UserServiceTestSuite) TestCreateUserValidation() {
	testCases := []struct {
		name string
		req  *service.CreateUserRequest
	}{
		{"missing email", &service.CreateUserRequest{FullName: "A"}},
		{"bad email", &service.CreateUserRequest{Email: "nope", FullName: "A"}},
		{"missing name", &service.CreateUserRequest{Email: "a@b.example"}},
		{"unknown role", &service.CreateUserRequest{Email: "a@b.example", FullName: "A", Role: "owner"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.userService.CreateUser(suite.ctx, suite.tenantID, tc.req)
			require.Error(suite.T(), err)
			assert.Contains(suite.T(), err.Error(), "validation failed")
		})
	}
}

// TestCreateUserDuplicateEmail tests the per-tenant email constraint
func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(1)

	_, err := suite.userService.CreateUser(suite.ctx, suite.tenantID, &service.CreateUserRequest{
		Email: "dup@acme.example", FullName: "Dup", Role: models.UserRolePlanner,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestGetUser tests lookups inside the tenant
func (suite *UserServiceTestSuite) TestGetUser() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), id, suite.tenantID).
		Return(&models.User{
			BaseModel: models.BaseModel{ID: id, CreatedAt: time.Now()},
			TenantID:  suite.tenantID,
			Email:     "dana@acme.example",
			FullName:  "Dana Whitfield",
			Role:      models.UserRolePlanner,
		}, nil).
		Times(1)

	response, err := suite.userService.GetUser(suite.ctx, id, suite.tenantID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), id.String(), response.ID)
	assert.Equal(suite.T(), "Dana Whitfield", response.FullName)
}

// TestGetUserNotFound tests the not found mapping
func (suite *UserServiceTestSuite) TestGetUserNotFound() {
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), gomock.Any(), suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.userService.GetUser(suite.ctx, uuid.New(), suite.tenantID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestListUsers tests pagination normalization and totals
func (suite *UserServiceTestSuite) TestListUsers() {
	users := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: suite.tenantID, FullName: "A"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: suite.tenantID, FullName: "B"},
	}
	suite.mockUserRepo.EXPECT().ListByTenant(gomock.Any(), suite.tenantID, 20, 0).
		Return(users, int64(42), nil).Times(1)

	response, err := suite.userService.ListUsers(suite.ctx, suite.tenantID, 0, 500)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 2)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 20, response.PageSize)
	assert.Equal(suite.T(), 3, response.TotalPages)
}

// TestListUsersError tests repository failures are wrapped
func (suite *UserServiceTestSuite) TestListUsersError() {
	suite.mockUserRepo.EXPECT().ListByTenant(gomock.Any(), suite.tenantID, gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("connection reset")).Times(1)

	_, err := suite.userService.ListUsers(suite.ctx, suite.tenantID, 1, 10)

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to list users")
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
