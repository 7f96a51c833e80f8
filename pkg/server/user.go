package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/pkg/auth"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/server/api"
)

type UserServer struct {
	repository repository.UserRepository
	logger     *zap.Logger
}

func NewUserServer(repository repository.UserRepository, logger *zap.Logger) *UserServer {
	return &UserServer{repository: repository, logger: logger}
}

func (u *UserServer) AddUser(ctx context.Context, request *connect.Request[api.AddUserRequest]) (*connect.Response[api.AddUserResponse], error) {
	user, err := u.repository.AddUser(ctx, request.Msg.Name, request.Msg.Email)
	if err != nil {
		return nil, toConnectError(u.logger, err)
	}

	return connect.NewResponse(&api.AddUserResponse{User: api.UserFromModel(*user)}), nil
}

func (u *UserServer) GetUserByEmail(ctx context.Context, request *connect.Request[api.GetUserByEmailRequest]) (*connect.Response[api.GetUserByEmailResponse], error) {
	user, err := u.repository.GetUserFromEmail(ctx, request.Msg.Email)
	if err != nil {
		return nil, toConnectError(u.logger, err)
	}

	return connect.NewResponse(&api.GetUserByEmailResponse{User: api.UserFromModel(*user)}), nil
}

// DeleteUser removes the calling user, their beers and the ratings of those
// beers.
func (u *UserServer) DeleteUser(ctx context.Context, _ *connect.Request[api.DeleteUserRequest]) (*connect.Response[api.DeleteUserResponse], error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	if err := u.repository.DeleteUser(ctx, user.ID); err != nil {
		return nil, toConnectError(u.logger, err)
	}

	u.logger.Info("user deleted", zap.Stringer("user_id", user.ID))

	return connect.NewResponse(&api.DeleteUserResponse{}), nil
}
