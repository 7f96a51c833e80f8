package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/pkg/auth"
	"droscher.com/BrewWolf/pkg/integrations"
	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/server/api"
)

type BeerServer struct {
	repository   repository.BeerRepository
	integrations []integrations.Integration
	logger       *zap.Logger
}

func NewBeerServer(repository repository.BeerRepository, lookups []integrations.Integration, logger *zap.Logger) *BeerServer {
	return &BeerServer{repository: repository, integrations: lookups, logger: logger}
}

func (b *BeerServer) FindBeer(ctx context.Context, request *connect.Request[api.FindBeerRequest]) (*connect.Response[api.FindBeerResponse], error) {
	beers := make([]*api.Beer, 0)

	var errs error

	failed := 0

	for _, integration := range b.integrations {
		foundBeers, err := integration.FindBeer(ctx, request.Msg.Query)
		if err != nil {
			b.logger.Error("failed beer search", zap.String("integration", integration.Name()), zap.Error(err))

			errs = multierr.Append(errs, fmt.Errorf("%s: %w", integration.Name(), err))
			failed++

			continue
		}

		beers = append(beers, api.BeersFromModel(foundBeers)...)
	}

	if failed > 0 && failed == len(b.integrations) {
		return nil, toConnectError(b.logger, fmt.Errorf("%w: %w", ErrLookupUnavailable, errs))
	}

	return connect.NewResponse(&api.FindBeerResponse{Beers: beers}), nil
}

// AddBeer records a beer created by the calling user.
func (b *BeerServer) AddBeer(ctx context.Context, request *connect.Request[api.AddBeerRequest]) (*connect.Response[api.AddBeerResponse], error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	if request.Msg.Beer == nil {
		return nil, toConnectError(b.logger, fmt.Errorf("%w: beer is required", ErrInvalidInput))
	}

	beer := api.BeerToModel(request.Msg.Beer)
	beer.CreatorID = user.ID

	newBeer, err := b.repository.AddBeer(ctx, beer)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	b.logger.Info("beer added", zap.Stringer("beer_id", newBeer.ID), zap.Stringer("creator_id", user.ID))

	return connect.NewResponse(&api.AddBeerResponse{Beer: api.BeerFromModel(*newBeer)}), nil
}

func (b *BeerServer) GetBeer(ctx context.Context, request *connect.Request[api.GetBeerRequest]) (*connect.Response[api.GetBeerResponse], error) {
	id, err := parseID("id", request.Msg.ID)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	beer, err := b.repository.GetBeer(ctx, id)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	return connect.NewResponse(&api.GetBeerResponse{Beer: api.BeerFromModel(*beer)}), nil
}

func (b *BeerServer) ListBeers(ctx context.Context, _ *connect.Request[api.ListBeersRequest]) (*connect.Response[api.ListBeersResponse], error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	beers, err := b.repository.GetBeersByCreator(ctx, user.ID)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	apiBeers := make([]*api.Beer, 0, len(beers))
	for _, beer := range beers {
		apiBeers = append(apiBeers, api.BeerFromModel(*beer))
	}

	return connect.NewResponse(&api.ListBeersResponse{Beers: apiBeers}), nil
}

func (b *BeerServer) UpdateBeer(ctx context.Context, request *connect.Request[api.UpdateBeerRequest]) (*connect.Response[api.UpdateBeerResponse], error) {
	if request.Msg.Beer == nil {
		return nil, toConnectError(b.logger, fmt.Errorf("%w: beer is required", ErrInvalidInput))
	}

	existing, err := b.ownedBeer(ctx, request.Msg.Beer.ID)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	changes := api.BeerToModel(request.Msg.Beer)
	existing.Name = changes.Name
	existing.Brewery = changes.Brewery
	existing.BeerType = changes.BeerType

	updated, err := b.repository.UpdateBeer(ctx, *existing)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	return connect.NewResponse(&api.UpdateBeerResponse{Beer: api.BeerFromModel(*updated)}), nil
}

// DeleteBeer removes a beer, and with it every rating of it. Only the creator
// may do this.
func (b *BeerServer) DeleteBeer(ctx context.Context, request *connect.Request[api.DeleteBeerRequest]) (*connect.Response[api.DeleteBeerResponse], error) {
	beer, err := b.ownedBeer(ctx, request.Msg.ID)
	if err != nil {
		return nil, toConnectError(b.logger, err)
	}

	if err := b.repository.DeleteBeer(ctx, beer.ID); err != nil {
		return nil, toConnectError(b.logger, err)
	}

	return connect.NewResponse(&api.DeleteBeerResponse{}), nil
}

func (b *BeerServer) ownedBeer(ctx context.Context, rawID string) (*model.Beer, error) {
	user, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	}

	id, err := parseID("id", rawID)
	if err != nil {
		return nil, err
	}

	beer, err := b.repository.GetBeer(ctx, id)
	if err != nil {
		return nil, err
	}

	if beer.CreatorID != user.ID {
		b.logger.Warn("beer change by non-creator", zap.Stringer("beer_id", id), zap.Stringer("user_id", user.ID))

		return nil, fmt.Errorf("%w: only the creator may change a beer", ErrPermissionDenied)
	}

	return beer, nil
}
