package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"ramsvik.no/Olsmak/pkg/repository"
)

type UserTestSuite struct {
	RepositorySuite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *UserTestSuite) TestAddUser_AssignsUUID() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery("^INSERT INTO \"users\" (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("100"))
	suite.mock.ExpectCommit()

	user, err := suite.repository.AddUser(context.Background(), "Ola", "ola@example.com", "$2a$10$hash")
	suite.Require().NoError(err)

	suite.Equal(uint(100), user.ID)
	suite.NotEqual(uuid.Nil, user.UUID)
	suite.Equal("ola@example.com", user.Email)
}

func (suite *UserTestSuite) TestGetUserByEmail_GetsUser() {
	userUUID := uuid.New()

	suite.mock.ExpectQuery("^SELECT (.+) FROM \"users\" (.+)").
		WithArgs("ola@example.com", 1).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "uuid", "name", "email"}).
				AddRow(100, userUUID.String(), "Ola", "ola@example.com"))

	user, err := suite.repository.GetUserByEmail(context.Background(), "ola@example.com")
	suite.Require().NoError(err)
	suite.Equal("Ola", user.Name)
	suite.Equal(userUUID, user.UUID)
}

func (suite *UserTestSuite) TestGetUserByEmail_NotFound() {
	suite.mock.ExpectQuery("^SELECT (.+) FROM \"users\" (.+)").
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserByEmail(context.Background(), "nobody@example.com")
	suite.Nil(user)
	suite.ErrorIs(err, repository.ErrUserNotFound)
}

func (suite *UserTestSuite) TestGetUserByUUID_NotFound() {
	userUUID := uuid.New()

	suite.mock.ExpectQuery("^SELECT (.+) FROM \"users\" (.+)").
		WithArgs(userUUID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := suite.repository.GetUserByUUID(context.Background(), userUUID)
	suite.Nil(user)
	suite.ErrorIs(err, repository.ErrUserNotFound)
}
