package api

import (
	"github.com/google/uuid"

	"droscher.com/BrewWolf/pkg/model"
)

func UserFromModel(user model.User) *User {
	return &User{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}

func BeersFromModel(beers []model.Beer) []*Beer {
	apiBeers := make([]*Beer, 0, len(beers))

	for _, beer := range beers {
		apiBeers = append(apiBeers, BeerFromModel(beer))
	}

	return apiBeers
}

func BeerFromModel(beer model.Beer) *Beer {
	apiBeer := Beer{
		Name:     beer.Name,
		Brewery:  beer.Brewery,
		BeerType: beer.BeerType,
	}

	// lookup candidates have not been saved yet
	if beer.ID != uuid.Nil {
		apiBeer.ID = beer.ID.String()
	}

	if beer.CreatorID != uuid.Nil {
		apiBeer.CreatorID = beer.CreatorID.String()
	}

	return &apiBeer
}

// BeerToModel copies the descriptive fields. Identifiers are resolved by the
// caller, which knows which ones it trusts.
func BeerToModel(apiBeer *Beer) model.Beer {
	return model.Beer{
		Name:     apiBeer.Name,
		Brewery:  apiBeer.Brewery,
		BeerType: apiBeer.BeerType,
	}
}

func RatingsFromModel(ratings []*model.Rating) []*Rating {
	apiRatings := make([]*Rating, 0, len(ratings))

	for _, rating := range ratings {
		apiRatings = append(apiRatings, RatingFromModel(*rating))
	}

	return apiRatings
}

func RatingFromModel(rating model.Rating) *Rating {
	return &Rating{
		ID:          rating.ID.String(),
		BeerID:      rating.BeerID.String(),
		User:        rating.User,
		Rating:      rating.Rating,
		CreatedDate: rating.CreatedDate,
		Comment:     rating.Comment,
		Public:      rating.Public,
	}
}
