package api

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Beer struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Brewery   string `json:"brewery"`
	BeerType  string `json:"beer_type"`
	CreatorID string `json:"creator_id,omitempty"`
}

type Rating struct {
	ID          string    `json:"id"`
	BeerID      string    `json:"beer_id"`
	User        string    `json:"user"`
	Rating      int       `json:"rating"`
	CreatedDate time.Time `json:"created_date"`
	Comment     string    `json:"comment"`
	Public      bool      `json:"public"`
}

type AddUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AddUserResponse struct {
	User *User `json:"user"`
}

type GetUserByEmailRequest struct {
	Email string `json:"email"`
}

type GetUserByEmailResponse struct {
	User *User `json:"user"`
}

type DeleteUserRequest struct{}

type DeleteUserResponse struct{}

type AddBeerRequest struct {
	Beer *Beer `json:"beer"`
}

type AddBeerResponse struct {
	Beer *Beer `json:"beer"`
}

type GetBeerRequest struct {
	ID string `json:"id"`
}

type GetBeerResponse struct {
	Beer *Beer `json:"beer"`
}

type ListBeersRequest struct{}

type ListBeersResponse struct {
	Beers []*Beer `json:"beers"`
}

type UpdateBeerRequest struct {
	Beer *Beer `json:"beer"`
}

type UpdateBeerResponse struct {
	Beer *Beer `json:"beer"`
}

type DeleteBeerRequest struct {
	ID string `json:"id"`
}

type DeleteBeerResponse struct{}

type FindBeerRequest struct {
	Query string `json:"query"`
}

type FindBeerResponse struct {
	Beers []*Beer `json:"beers"`
}

// AddRatingRequest leaves Rating nil to take the default score. Ratings are
// always recorded under the caller's username; User may be left empty or
// repeat it.
type AddRatingRequest struct {
	BeerID  string `json:"beer_id"`
	User    string `json:"user,omitempty"`
	Rating  *int   `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
	Public  bool   `json:"public,omitempty"`
}

type AddRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type GetRatingRequest struct {
	ID string `json:"id"`
}

type GetRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type ListRatingsRequest struct {
	BeerID     string `json:"beer_id"`
	PublicOnly bool   `json:"public_only,omitempty"`
}

type ListRatingsResponse struct {
	Ratings []*Rating `json:"ratings"`
}

// UpdateRatingRequest changes only the fields that are set. User cannot
// change.
type UpdateRatingRequest struct {
	ID      string  `json:"id"`
	User    *string `json:"user,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
	Public  *bool   `json:"public,omitempty"`
}

type UpdateRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type DeleteRatingRequest struct {
	ID string `json:"id"`
}

type DeleteRatingResponse struct{}
