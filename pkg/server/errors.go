package server

import (
	"errors"
	"fmt"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
)

var (
	ErrInvalidInput      = errors.New("bad request")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrLookupUnavailable = errors.New("beer lookup unavailable")
)

// toConnectError picks the status a client sees for a repository or model
// error. Unexpected errors are logged and hidden behind CodeInternal.
func toConnectError(logger *zap.Logger, err error) error {
	var connectErr *connect.Error

	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, model.ErrValidation), errors.Is(err, ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, repository.ErrReferentialIntegrity):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, repository.ErrDuplicateKey):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, repository.ErrConstraint):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrPermissionDenied):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, ErrLookupUnavailable):
		logger.Warn("beer lookup unavailable", zap.Error(err))

		return connect.NewError(connect.CodeUnavailable, ErrLookupUnavailable)
	}

	logger.Error("unexpected error", zap.Error(err))

	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}

func parseID(field string, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", ErrInvalidInput, field)
	}

	return id, nil
}
