//go:build integration
// +build integration

package repository

import (
	"context"
	"strings"
	"testing"

	"erp-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	ctx           context.Context
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

func (suite *UserRepositoryTestSuite) TearDownSuite() { suite.baseTestSuite.TeardownTestSuite() }
func (suite *UserRepositoryTestSuite) SetupTest()     { suite.baseTestSuite.SetupTest() }
func (suite *UserRepositoryTestSuite) TearDownTest()  { suite.baseTestSuite.TearDownTest() }

func (suite *UserRepositoryTestSuite) TestCreateAndLookup() {
	tenantID := uuid.New()
	user := testutils.NewUserFactory(tenantID).Create()
	user.Email = "  Planner@Example.COM "
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	found, err := suite.repo.GetByEmail(suite.ctx, tenantID, "planner@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	found, err = suite.repo.GetByID(suite.ctx, user.ID, tenantID)
	suite.Require().NoError(err)
	suite.Equal(strings.ToLower("planner@example.com"), found.Email)

	_, err = suite.repo.GetByEmail(suite.ctx, uuid.New(), "planner@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *UserRepositoryTestSuite) TestDuplicateEmailPerTenant() {
	tenantID := uuid.New()
	first := testutils.NewUserFactory(tenantID).Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	dup := testutils.NewUserFactory(tenantID).Create()
	dup.Email = first.Email
	suite.True(IsDuplicateKey(suite.repo.Create(suite.ctx, dup)))

	elsewhere := testutils.NewUserFactory(uuid.New()).Create()
	elsewhere.Email = first.Email
	suite.NoError(suite.repo.Create(suite.ctx, elsewhere))
}

func (suite *UserRepositoryTestSuite) TestListByTenant() {
	tenantID := uuid.New()
	factory := testutils.NewUserFactory(tenantID)
	for _, name := range []string{"Zoe", "Ana"} {
		user := factory.Create()
		user.FullName = name
		suite.Require().NoError(suite.repo.Create(suite.ctx, user))
	}

	users, total, err := suite.repo.ListByTenant(suite.ctx, tenantID, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Equal("Ana", users[0].FullName)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
