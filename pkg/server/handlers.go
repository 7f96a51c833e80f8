package server

import (
	"net/http"

	"github.com/bufbuild/connect-go"

	"droscher.com/BrewWolf/pkg/server/api"
)

// Every service speaks connect's unary protocol with the JSON codec in
// pkg/server/api. Each returns the path prefix to mount and its handler.

func NewUserServiceHandler(svc *UserServer, public []connect.HandlerOption, authenticated []connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(api.UserServiceAddUserProcedure, connect.NewUnaryHandler(api.UserServiceAddUserProcedure, svc.AddUser, withCodec(public)...))
	mux.Handle(api.UserServiceGetUserByEmailProcedure, connect.NewUnaryHandler(api.UserServiceGetUserByEmailProcedure, svc.GetUserByEmail, withCodec(authenticated)...))
	mux.Handle(api.UserServiceDeleteUserProcedure, connect.NewUnaryHandler(api.UserServiceDeleteUserProcedure, svc.DeleteUser, withCodec(authenticated)...))

	return "/" + api.UserServiceName + "/", mux
}

func NewBeerServiceHandler(svc *BeerServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(api.BeerServiceAddBeerProcedure, connect.NewUnaryHandler(api.BeerServiceAddBeerProcedure, svc.AddBeer, opts...))
	mux.Handle(api.BeerServiceGetBeerProcedure, connect.NewUnaryHandler(api.BeerServiceGetBeerProcedure, svc.GetBeer, opts...))
	mux.Handle(api.BeerServiceListBeersProcedure, connect.NewUnaryHandler(api.BeerServiceListBeersProcedure, svc.ListBeers, opts...))
	mux.Handle(api.BeerServiceUpdateBeerProcedure, connect.NewUnaryHandler(api.BeerServiceUpdateBeerProcedure, svc.UpdateBeer, opts...))
	mux.Handle(api.BeerServiceDeleteBeerProcedure, connect.NewUnaryHandler(api.BeerServiceDeleteBeerProcedure, svc.DeleteBeer, opts...))
	mux.Handle(api.BeerServiceFindBeerProcedure, connect.NewUnaryHandler(api.BeerServiceFindBeerProcedure, svc.FindBeer, opts...))

	return "/" + api.BeerServiceName + "/", mux
}

func NewRatingServiceHandler(svc *RatingServer, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(api.RatingServiceAddRatingProcedure, connect.NewUnaryHandler(api.RatingServiceAddRatingProcedure, svc.AddRating, opts...))
	mux.Handle(api.RatingServiceGetRatingProcedure, connect.NewUnaryHandler(api.RatingServiceGetRatingProcedure, svc.GetRating, opts...))
	mux.Handle(api.RatingServiceListRatingsProcedure, connect.NewUnaryHandler(api.RatingServiceListRatingsProcedure, svc.ListRatings, opts...))
	mux.Handle(api.RatingServiceUpdateRatingProcedure, connect.NewUnaryHandler(api.RatingServiceUpdateRatingProcedure, svc.UpdateRating, opts...))
	mux.Handle(api.RatingServiceDeleteRatingProcedure, connect.NewUnaryHandler(api.RatingServiceDeleteRatingProcedure, svc.DeleteRating, opts...))

	return "/" + api.RatingServiceName + "/", mux
}

func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}
