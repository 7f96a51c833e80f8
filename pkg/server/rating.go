package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/pkg/auth"
	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/server/api"
)

type beerLookup interface {
	GetBeer(ctx context.Context, id uuid.UUID) (*model.Beer, error)
}

type RatingServer struct {
	ratingRepository repository.RatingRepository
	beerRepository   beerLookup
	logger           *zap.Logger
}

func NewRatingServer(ratingRepo repository.RatingRepository, beerRepo beerLookup, logger *zap.Logger) *RatingServer {
	return &RatingServer{ratingRepository: ratingRepo, beerRepository: beerRepo, logger: logger}
}

func (r *RatingServer) AddRating(ctx context.Context, request *connect.Request[api.AddRatingRequest]) (*connect.Response[api.AddRatingResponse], error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	beerID, err := parseID("beer_id", request.Msg.BeerID)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	if request.Msg.User != "" && request.Msg.User != user.Username {
		return nil, toConnectError(r.logger, fmt.Errorf("%w: ratings are recorded under the caller's username", ErrPermissionDenied))
	}

	rating := model.NewRating(beerID, user.Username)
	rating.Comment = request.Msg.Comment
	rating.Public = request.Msg.Public

	if request.Msg.Rating != nil {
		rating.Rating = *request.Msg.Rating
	}

	created, err := r.ratingRepository.AddRating(ctx, rating)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	return connect.NewResponse(&api.AddRatingResponse{Rating: api.RatingFromModel(*created)}), nil
}

func (r *RatingServer) GetRating(ctx context.Context, request *connect.Request[api.GetRatingRequest]) (*connect.Response[api.GetRatingResponse], error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	id, err := parseID("id", request.Msg.ID)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	rating, err := r.ratingRepository.GetRating(ctx, id)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	visible, err := r.visibleTo(ctx, rating, user)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	// hidden ratings look the same as missing ones
	if !visible {
		return nil, toConnectError(r.logger, repository.ErrNotFound)
	}

	return connect.NewResponse(&api.GetRatingResponse{Rating: api.RatingFromModel(*rating)}), nil
}

// ListRatings returns the ratings of a beer the caller may see: all of them
// for the beer's creator, otherwise the public ones and the caller's own.
func (r *RatingServer) ListRatings(ctx context.Context, request *connect.Request[api.ListRatingsRequest]) (*connect.Response[api.ListRatingsResponse], error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	beerID, err := parseID("beer_id", request.Msg.BeerID)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	beer, err := r.beerRepository.GetBeer(ctx, beerID)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	ratings, err := r.ratingRepository.GetRatingsForBeer(ctx, beerID, request.Msg.PublicOnly)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	if beer.CreatorID != user.ID {
		visible := ratings[:0]

		for _, rating := range ratings {
			if rating.Public || rating.User == user.Username {
				visible = append(visible, rating)
			}
		}

		ratings = visible
	}

	return connect.NewResponse(&api.ListRatingsResponse{Ratings: api.RatingsFromModel(ratings)}), nil
}

func (r *RatingServer) UpdateRating(ctx context.Context, request *connect.Request[api.UpdateRatingRequest]) (*connect.Response[api.UpdateRatingResponse], error) {
	rating, err := r.ownedRating(ctx, request.Msg.ID)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	if request.Msg.User != nil && *request.Msg.User != rating.User {
		return nil, toConnectError(r.logger, fmt.Errorf("%w: a rating cannot be moved to another user", ErrPermissionDenied))
	}

	if request.Msg.Rating != nil {
		rating.Rating = *request.Msg.Rating
	}

	if request.Msg.Comment != nil {
		rating.Comment = *request.Msg.Comment
	}

	if request.Msg.Public != nil {
		rating.Public = *request.Msg.Public
	}

	updated, err := r.ratingRepository.UpdateRating(ctx, *rating)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	return connect.NewResponse(&api.UpdateRatingResponse{Rating: api.RatingFromModel(*updated)}), nil
}

func (r *RatingServer) DeleteRating(ctx context.Context, request *connect.Request[api.DeleteRatingRequest]) (*connect.Response[api.DeleteRatingResponse], error) {
	rating, err := r.ownedRating(ctx, request.Msg.ID)
	if err != nil {
		return nil, toConnectError(r.logger, err)
	}

	if err := r.ratingRepository.DeleteRating(ctx, rating.ID); err != nil {
		return nil, toConnectError(r.logger, err)
	}

	return connect.NewResponse(&api.DeleteRatingResponse{}), nil
}

// visibleTo applies the same rule as ListRatings: public ratings, the
// caller's own, and every rating of a beer the caller created.
func (r *RatingServer) visibleTo(ctx context.Context, rating *model.Rating, user *model.User) (bool, error) {
	if rating.Public || rating.User == user.Username {
		return true, nil
	}

	beer, err := r.beerRepository.GetBeer(ctx, rating.BeerID)
	if err != nil {
		return false, err
	}

	return beer.CreatorID == user.ID, nil
}

// ownedRating loads a rating the caller wrote. Ratings carry a free-text
// label rather than a user reference, so ownership is the label matching the
// caller's username, which is unique.
func (r *RatingServer) ownedRating(ctx context.Context, rawID string) (*model.Rating, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	id, err := parseID("id", rawID)
	if err != nil {
		return nil, err
	}

	rating, err := r.ratingRepository.GetRating(ctx, id)
	if err != nil {
		return nil, err
	}

	if rating.User != user.Username {
		return nil, fmt.Errorf("%w: rating belongs to %q", ErrPermissionDenied, rating.User)
	}

	return rating, nil
}
