package handlers

import (
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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	tenantID        uuid.UUID
	userID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.tenantID = uuid.New()
	suite.userID = uuid.New()

	users := suite.httpSuite.Router.Group("/api/v1/users", middleware.TenantFromHeaders())
	users.GET("", suite.handler.ListUsers)
	users.POST("", suite.handler.CreateUser)
	users.GET("/me", suite.handler.GetCurrentUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsers tests pagination parameters reach the service
func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockUserService.EXPECT().ListUsers(gomock.Any(), suite.tenantID, 2, 5).
		Return(&service.UserListResponse{
			Users: []service.UserResponse{{Email: "a@acme.example"}},
			Total: 6, Page: 2, PageSize: 5, TotalPages: 2,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeTenantRequest(http.MethodGet, "/api/v1/users?page=2&page_size=5", nil, suite.tenantID, suite.userID)

	var response service.UserListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Users, 1)
	assert.Equal(suite.T(), 2, response.TotalPages)
}

// TestCreateUser tests the created response
func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.mockUserService.EXPECT().CreateUser(gomock.Any(), suite.tenantID, gomock.Any()).
		Return(&service.UserResponse{ID: uuid.New().String(), Email: "new@acme.example", Role: models.UserRolePlanner}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeTenantRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"email": "new@acme.example", "full_name": "New Planner", "role": "planner",
	}, suite.tenantID, suite.userID)

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "new@acme.example", response.Email)
}

// TestCreateUserConflict tests a duplicate email
func (suite *UserHandlerTestSuite) TestCreateUserConflict() {
	suite.mockUserService.EXPECT().CreateUser(gomock.Any(), suite.tenantID, gomock.Any()).
		Return(nil, apperrors.ErrUserExists).Times(1)

	recorder := suite.httpSuite.MakeTenantRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"email": "dup@acme.example", "full_name": "Dup",
	}, suite.tenantID, suite.userID)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestCreateUserInvalidBody tests a malformed payload
func (suite *UserHandlerTestSuite) TestCreateUserInvalidBody() {
	recorder := suite.httpSuite.MakeTenantRequest(http.MethodPost, "/api/v1/users", "not-json", suite.tenantID, suite.userID)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestGetCurrentUser tests that /me resolves the caller
func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	suite.mockUserService.EXPECT().GetUser(gomock.Any(), suite.userID, suite.tenantID).
		Return(&service.UserResponse{ID: suite.userID.String()}, nil).Times(1)

	recorder := suite.httpSuite.MakeTenantRequest(http.MethodGet, "/api/v1/users/me", nil, suite.tenantID, suite.userID)

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), suite.userID.String(), response.ID)
}

// TestGetCurrentUserUnknown tests a caller without a user row
func (suite *UserHandlerTestSuite) TestGetCurrentUserUnknown() {
	suite.mockUserService.EXPECT().GetUser(gomock.Any(), suite.userID, suite.tenantID).
		Return(nil, apperrors.ErrUserNotFound).Times(1)

	recorder := suite.httpSuite.MakeTenantRequest(http.MethodGet, "/api/v1/users/me", nil, suite.tenantID, suite.userID)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
