package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
)

type RatingTestSuite struct {
	RepositorySuite
}

func TestRatingTestSuite(t *testing.T) {
	suite.Run(t, new(RatingTestSuite))
}

func (suite *RatingTestSuite) TestAddRating_AddsRating() {
	beerID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ratings" ("id","user","rating","created_date","comment","public","beer_id") VALUES ($1,$2,$3,$4,$5,$6,$7)`)).
		WithArgs(sqlmock.AnyArg(), "alice", 5, sqlmock.AnyArg(), "", false, beerID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	result, err := suite.repository.AddRating(context.Background(), model.NewRating(beerID, "alice"))
	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEqual(uuid.Nil, result.ID)
	suite.False(result.CreatedDate.IsZero())
	suite.Equal(5, result.Rating)
}

func (suite *RatingTestSuite) TestAddRating_RejectsOutOfRange() {
	for _, value := range []int{0, 6, 7} {
		suite.mock.ExpectBegin()
		suite.mock.ExpectRollback()

		rating := model.NewRating(uuid.New(), "alice")
		rating.Rating = value

		result, err := suite.repository.AddRating(context.Background(), rating)
		suite.Nil(result)
		suite.Require().ErrorIs(err, model.ErrOutOfRange)
	}
}

func (suite *RatingTestSuite) TestAddRating_UnknownBeer() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "ratings"`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: `insert or update on table "ratings" violates foreign key constraint "fk_ratings_beer"`})
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddRating(context.Background(), model.NewRating(uuid.New(), "alice"))
	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrReferentialIntegrity)
}

func (suite *RatingTestSuite) TestAddRating_DuplicateID() {
	rating := model.NewRating(uuid.New(), "alice")
	rating.ID = uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "ratings"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "ratings_pkey"`})
	suite.mock.ExpectRollback()

	result, err := suite.repository.AddRating(context.Background(), rating)
	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrDuplicateKey)
}

func (suite *RatingTestSuite) TestGetRating_NotFound() {
	id := uuid.New()

	suite.mock.ExpectQuery(`^SELECT \* FROM "ratings" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result, err := suite.repository.GetRating(context.Background(), id)
	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *RatingTestSuite) TestGetRatingsForBeer_PublicOnly() {
	beerID := uuid.New()
	created := time.Date(2019, 12, 12, 1, 15, 0, 0, time.UTC)

	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ratings" WHERE beer_id = $1 AND public = $2 ORDER BY created_date DESC`)).
		WithArgs(beerID.String(), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user", "rating", "created_date", "comment", "public", "beer_id"}).
			AddRow(uuid.NewString(), "alice", 4, created, "nice", true, beerID.String()))

	ratings, err := suite.repository.GetRatingsForBeer(context.Background(), beerID, true)
	suite.Require().NoError(err)
	suite.Require().Len(ratings, 1)
	suite.Equal("alice", ratings[0].User)
	suite.Equal(4, ratings[0].Rating)
	suite.Equal(created, ratings[0].CreatedDate)
	suite.True(ratings[0].Public)
}

func (suite *RatingTestSuite) TestUpdateRating_KeepsCreatedDate() {
	rating := model.NewRating(uuid.New(), "alice")
	rating.ID = uuid.New()
	rating.Rating = 3
	rating.Comment = "better cold"
	rating.CreatedDate = time.Now()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "ratings" SET "user"=$1,"rating"=$2,"comment"=$3,"public"=$4 WHERE "id" = $5`)).
		WithArgs("alice", 3, "better cold", false, rating.ID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	result, err := suite.repository.UpdateRating(context.Background(), rating)
	suite.Require().NoError(err)
	suite.Equal(3, result.Rating)
}

func (suite *RatingTestSuite) TestUpdateRating_RejectsOutOfRange() {
	rating := model.NewRating(uuid.New(), "alice")
	rating.ID = uuid.New()
	rating.Rating = 6

	suite.mock.ExpectBegin()
	suite.mock.ExpectRollback()

	result, err := suite.repository.UpdateRating(context.Background(), rating)
	suite.Nil(result)
	suite.ErrorIs(err, model.ErrOutOfRange)
}

func (suite *RatingTestSuite) TestDeleteRating_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ratings" WHERE id = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteRating(context.Background(), uuid.New())
	suite.ErrorIs(err, repository.ErrNotFound)
}
