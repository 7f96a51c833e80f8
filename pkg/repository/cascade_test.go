package repository_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/BrewWolf/configs"
	"droscher.com/BrewWolf/pkg/model"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/schema"
)

// CascadeTestSuite runs against a real sqlite file so foreign keys and
// cascades are enforced by an actual engine.
type CascadeTestSuite struct {
	suite.Suite
	repo *repository.Repository
	user *model.User
}

func TestCascadeTestSuite(t *testing.T) {
	suite.Run(t, new(CascadeTestSuite))
}

func (suite *CascadeTestSuite) SetupTest() {
	logger := zaptest.NewLogger(suite.T())
	conf := &configs.Config{DB: configs.DB{
		Driver:             configs.DriverSQLite,
		Path:               filepath.Join(suite.T().TempDir(), "brewwolf.db"),
		MaxIdleConnections: 1,
		MaxOpenConnections: 1,
	}}

	repo, err := repository.Open(conf, logger)
	suite.Require().NoError(err)
	suite.Require().NoError(schema.Apply(context.Background(), repo.DB, logger))

	suite.repo = repo
	suite.user, err = repo.AddUser(context.Background(), "alice", "alice@example.com")
	suite.Require().NoError(err)
}

func (suite *CascadeTestSuite) TearDownTest() {
	suite.repo.Close()
}

func (suite *CascadeTestSuite) addBeer(name string, creator uuid.UUID) *model.Beer {
	beer, err := suite.repo.AddBeer(context.Background(), model.Beer{Name: name, Brewery: "Acme", BeerType: "IPA", CreatorID: creator})
	suite.Require().NoError(err)

	return beer
}

func (suite *CascadeTestSuite) addRating(beerID uuid.UUID, value int) *model.Rating {
	rating := model.NewRating(beerID, "alice")
	rating.Rating = value

	result, err := suite.repo.AddRating(context.Background(), rating)
	suite.Require().NoError(err)

	return result
}

func (suite *CascadeTestSuite) countRatings(beerID uuid.UUID) int64 {
	var count int64
	suite.Require().NoError(suite.repo.DB.Model(&model.Rating{}).Where("beer_id = ?", beerID).Count(&count).Error)

	return count
}

func (suite *CascadeTestSuite) TestExampleBeerAndRatings() {
	ctx := context.Background()
	beer := suite.addBeer("Pale Ale", suite.user.ID)
	suite.NotEqual(uuid.Nil, beer.ID)

	rating := suite.addRating(beer.ID, 5)
	suite.Equal(5, rating.Rating)
	suite.Empty(rating.Comment)
	suite.False(rating.Public)

	bad := model.NewRating(beer.ID, "alice")
	bad.Rating = 7

	result, err := suite.repo.AddRating(ctx, bad)
	suite.Nil(result)
	suite.Require().ErrorIs(err, model.ErrOutOfRange)

	loaded, err := suite.repo.GetBeer(ctx, beer.ID)
	suite.Require().NoError(err)
	suite.Equal("Pale Ale", loaded.Name)
	suite.Equal("alice", loaded.Creator.Username)
}

func (suite *CascadeTestSuite) TestUniqueIDs() {
	beer := suite.addBeer("Pale Ale", suite.user.ID)
	seen := map[uuid.UUID]bool{beer.ID: true}

	for range 20 {
		rating := suite.addRating(beer.ID, 3)
		suite.False(seen[rating.ID])
		seen[rating.ID] = true
	}
}

func (suite *CascadeTestSuite) TestRatingForMissingBeer() {
	result, err := suite.repo.AddRating(context.Background(), model.NewRating(uuid.New(), "alice"))
	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrReferentialIntegrity)
}

func (suite *CascadeTestSuite) TestBeerForMissingCreator() {
	result, err := suite.repo.AddBeer(context.Background(), model.Beer{Name: "Pale Ale", Brewery: "Acme", BeerType: "IPA", CreatorID: uuid.New()})
	suite.Nil(result)
	suite.ErrorIs(err, repository.ErrReferentialIntegrity)
}

func (suite *CascadeTestSuite) TestLongValuesRejected() {
	ctx := context.Background()
	beer := suite.addBeer("Pale Ale", suite.user.ID)

	rating := model.NewRating(beer.ID, strings.Repeat("u", model.MaxNameLength+1))
	_, err := suite.repo.AddRating(ctx, rating)
	suite.Require().ErrorIs(err, model.ErrTooLong)

	rating = model.NewRating(beer.ID, "alice")
	rating.Comment = strings.Repeat("c", model.MaxCommentLength+1)
	_, err = suite.repo.AddRating(ctx, rating)
	suite.Require().ErrorIs(err, model.ErrTooLong)

	suite.Zero(suite.countRatings(beer.ID))
}

func (suite *CascadeTestSuite) TestUpdateKeepsCreatedDate() {
	ctx := context.Background()
	beer := suite.addBeer("Pale Ale", suite.user.ID)
	created := suite.addRating(beer.ID, 2)

	before, err := suite.repo.GetRating(ctx, created.ID)
	suite.Require().NoError(err)

	before.Rating = 4
	before.Comment = "grew on me"
	before.Public = true
	before.CreatedDate = time.Now().Add(48 * time.Hour)

	_, err = suite.repo.UpdateRating(ctx, *before)
	suite.Require().NoError(err)

	after, err := suite.repo.GetRating(ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(4, after.Rating)
	suite.Equal("grew on me", after.Comment)
	suite.True(after.Public)
	suite.True(after.CreatedDate.Before(time.Now().Add(time.Minute)))
	suite.WithinDuration(created.CreatedDate, after.CreatedDate, time.Second)
}

func (suite *CascadeTestSuite) TestPublicFilter() {
	ctx := context.Background()
	beer := suite.addBeer("Pale Ale", suite.user.ID)

	public := model.NewRating(beer.ID, "bob")
	public.Public = true
	_, err := suite.repo.AddRating(ctx, public)
	suite.Require().NoError(err)
	suite.addRating(beer.ID, 1)

	all, err := suite.repo.GetRatingsForBeer(ctx, beer.ID, false)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	visible, err := suite.repo.GetRatingsForBeer(ctx, beer.ID, true)
	suite.Require().NoError(err)
	suite.Require().Len(visible, 1)
	suite.Equal("bob", visible[0].User)
}

func (suite *CascadeTestSuite) TestDeleteBeerDeletesRatings() {
	ctx := context.Background()
	kept := suite.addBeer("Kept", suite.user.ID)
	doomed := suite.addBeer("Doomed", suite.user.ID)
	suite.addRating(kept.ID, 4)
	suite.addRating(doomed.ID, 1)
	suite.addRating(doomed.ID, 2)

	suite.Require().NoError(suite.repo.DeleteBeer(ctx, doomed.ID))

	suite.Zero(suite.countRatings(doomed.ID))
	suite.Equal(int64(1), suite.countRatings(kept.ID))

	_, err := suite.repo.GetBeer(ctx, doomed.ID)
	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *CascadeTestSuite) TestDeleteUserDeletesBeersAndRatings() {
	ctx := context.Background()
	other, err := suite.repo.AddUser(ctx, "bob", "bob@example.com")
	suite.Require().NoError(err)

	mine := suite.addBeer("Mine", suite.user.ID)
	theirs := suite.addBeer("Theirs", other.ID)
	suite.addRating(mine.ID, 5)
	suite.addRating(theirs.ID, 5)

	suite.Require().NoError(suite.repo.DeleteUser(ctx, suite.user.ID))

	beers, err := suite.repo.GetBeersByCreator(ctx, suite.user.ID)
	suite.Require().NoError(err)
	suite.Empty(beers)
	suite.Zero(suite.countRatings(mine.ID))
	suite.Equal(int64(1), suite.countRatings(theirs.ID))

	_, err = suite.repo.GetUserByUUID(ctx, suite.user.ID)
	suite.ErrorIs(err, repository.ErrNotFound)
}

// Rows removed behind the repository's back still cascade through the
// declared foreign keys.
func (suite *CascadeTestSuite) TestDatabaseConstraintsCascade() {
	beer := suite.addBeer("Pale Ale", suite.user.ID)
	suite.addRating(beer.ID, 3)

	suite.Require().NoError(suite.repo.DB.Exec("DELETE FROM users WHERE id = ?", suite.user.ID).Error)

	var beers int64
	suite.Require().NoError(suite.repo.DB.Model(&model.Beer{}).Count(&beers).Error)
	suite.Zero(beers)
	suite.Zero(suite.countRatings(beer.ID))
}

func (suite *CascadeTestSuite) TestUpdateBeerCannotMoveOwnership() {
	ctx := context.Background()
	other, err := suite.repo.AddUser(ctx, "bob", "bob@example.com")
	suite.Require().NoError(err)

	beer := suite.addBeer("Pale Ale", suite.user.ID)
	beer.CreatorID = other.ID
	beer.Name = "Pale Ale (2024)"

	_, err = suite.repo.UpdateBeer(ctx, *beer)
	suite.Require().NoError(err)

	loaded, err := suite.repo.GetBeer(ctx, beer.ID)
	suite.Require().NoError(err)
	suite.Equal("Pale Ale (2024)", loaded.Name)
	suite.Equal(suite.user.ID, loaded.CreatorID)
}

func (suite *CascadeTestSuite) TestDuplicateUsernameRejected() {
	user, err := suite.repo.AddUser(context.Background(), "alice", "other@example.com")
	suite.Nil(user)
	suite.ErrorIs(err, repository.ErrDuplicateKey)
}
