package api

const (
	UserServiceName   = "brewwolf.v1.UserService"
	BeerServiceName   = "brewwolf.v1.BeerService"
	RatingServiceName = "brewwolf.v1.RatingService"
)

const (
	UserServiceAddUserProcedure        = "/" + UserServiceName + "/AddUser"
	UserServiceGetUserByEmailProcedure = "/" + UserServiceName + "/GetUserByEmail"
	UserServiceDeleteUserProcedure     = "/" + UserServiceName + "/DeleteUser"

	BeerServiceAddBeerProcedure    = "/" + BeerServiceName + "/AddBeer"
	BeerServiceGetBeerProcedure    = "/" + BeerServiceName + "/GetBeer"
	BeerServiceListBeersProcedure  = "/" + BeerServiceName + "/ListBeers"
	BeerServiceUpdateBeerProcedure = "/" + BeerServiceName + "/UpdateBeer"
	BeerServiceDeleteBeerProcedure = "/" + BeerServiceName + "/DeleteBeer"
	BeerServiceFindBeerProcedure   = "/" + BeerServiceName + "/FindBeer"

	RatingServiceAddRatingProcedure    = "/" + RatingServiceName + "/AddRating"
	RatingServiceGetRatingProcedure    = "/" + RatingServiceName + "/GetRating"
	RatingServiceListRatingsProcedure  = "/" + RatingServiceName + "/ListRatings"
	RatingServiceUpdateRatingProcedure = "/" + RatingServiceName + "/UpdateRating"
	RatingServiceDeleteRatingProcedure = "/" + RatingServiceName + "/DeleteRating"
)
