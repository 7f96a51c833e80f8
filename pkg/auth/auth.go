package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/configs"
	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
)

type UserKey struct{}

var (
	ErrNoUser          = errors.New("no authenticated user")
	errMissingHeader   = errors.New("authorization header not found")
	errHeaderFormat    = errors.New("authorization format must be Bearer {token}")
	errInvalidToken    = errors.New("invalid token")
	errMissingIdentity = errors.New("unable to get user id from token")
)

type userLookup interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	users  userLookup
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, users userLookup, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, users: users, logger: logger}
}

// UserFromContext returns the user the interceptor authenticated.
func UserFromContext(ctx context.Context) (*model.User, error) {
	user, found := ctx.Value(UserKey{}).(*model.User)
	if !found || user == nil {
		return nil, ErrNoUser
	}

	return user, nil
}

func (a *Manager) GrpcAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			user, err := a.authenticate(ctx, req.Header())
			if err != nil {
				return nil, err
			}

			ctx = context.WithValue(ctx, UserKey{}, user)

			return next(ctx, req)
		}
	}
}

func (a *Manager) authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("unexpected signing method: %v", token.Header["alg"]))
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("error parsing token: %w", err))
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errInvalidToken)
	}

	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token audience mismatch", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errInvalidToken)
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errMissingIdentity)
	}

	user, err := a.users.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("user not found"))
		}

		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, errors.New("error authenticating user"))
	}

	return user, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, connect.NewError(connect.CodeUnauthenticated, errMissingHeader)
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, connect.NewError(connect.CodeUnauthenticated, errHeaderFormat)
	}

	return &token, nil
}
