//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-portal-backend/internal/database/models"
	"team-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.WithRole(models.RoleManager)

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique constraint on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := suite.factories.User.WithEmail("same@test.com")
	suite.NoError(suite.repo.Create(user1))

	user2 := suite.factories.User.WithEmail("same@test.com")
	err := suite.repo.Create(user2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmail tests looking up a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("lookup@test.com")
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("lookup@test.com")
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.True(found.CheckPassword("password123"))

	_, err = suite.repo.GetByEmail("missing@test.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByID tests looking up a user by id
func (suite *UserRepositoryTestSuite) TestGetByID() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, found.Email)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCheckEmailExists tests the existence probe
func (suite *UserRepositoryTestSuite) TestCheckEmailExists() {
	user := suite.factories.User.WithEmail("probe@test.com")
	suite.Require().NoError(suite.repo.Create(user))

	exists, err := suite.repo.CheckEmailExists("probe@test.com")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.CheckEmailExists("absent@test.com")
	suite.NoError(err)
	suite.False(exists)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
