package server_test

import (
	"context"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/BrewWolf/mocks"
	"droscher.com/BrewWolf/pkg/auth"
	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/server"
	"droscher.com/BrewWolf/pkg/server/api"
)

type UserTestSuite struct {
	suite.Suite
	userRepo     *mocks.UserRepository
	service      *server.UserServer
	observedLogs *observer.ObservedLogs
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) SetupTest() {
	suite.userRepo = mocks.NewUserRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.service = server.NewUserServer(suite.userRepo, zap.New(observedZapCore))
}

func (suite *UserTestSuite) TestAddUser() {
	ctx := context.Background()
	user := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}
	suite.userRepo.On("AddUser", ctx, "alice", "alice@example.com").Return(user, nil)

	result, err := suite.service.AddUser(ctx, connect.NewRequest(&api.AddUserRequest{Name: "alice", Email: "alice@example.com"}))
	suite.Require().NoError(err)
	suite.Equal(user.ID.String(), result.Msg.User.ID)
}

func (suite *UserTestSuite) TestAddUser_Duplicate() {
	ctx := context.Background()
	suite.userRepo.On("AddUser", ctx, "alice", "alice@example.com").Return(nil, repository.ErrDuplicateKey)

	result, err := suite.service.AddUser(ctx, connect.NewRequest(&api.AddUserRequest{Name: "alice", Email: "alice@example.com"}))
	suite.Nil(result)
	suite.Equal(connect.CodeAlreadyExists, connect.CodeOf(err))
}

func (suite *UserTestSuite) TestGetUserByEmail_NotFound() {
	ctx := context.Background()
	suite.userRepo.On("GetUserFromEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

	result, err := suite.service.GetUserByEmail(ctx, connect.NewRequest(&api.GetUserByEmailRequest{Email: "nobody@example.com"}))
	suite.Nil(result)
	suite.Equal(connect.CodeNotFound, connect.CodeOf(err))
}

func (suite *UserTestSuite) TestDeleteUser_DeletesCaller() {
	user := &model.User{ID: uuid.New(), Username: "alice"}
	ctx := context.WithValue(context.Background(), auth.UserKey{}, user)
	suite.userRepo.On("DeleteUser", ctx, user.ID).Return(nil)

	result, err := suite.service.DeleteUser(ctx, connect.NewRequest(&api.DeleteUserRequest{}))
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(1, suite.observedLogs.FilterMessage("user deleted").Len())
}

func (suite *UserTestSuite) TestDeleteUser_Unauthenticated() {
	result, err := suite.service.DeleteUser(context.Background(), connect.NewRequest(&api.DeleteUserRequest{}))
	suite.Nil(result)
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
}
