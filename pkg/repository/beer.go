package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BrewWolf/pkg/model"
)

type BeerRepository interface {
	AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	DeleteBeer(ctx context.Context, id uuid.UUID) error
	GetBeer(ctx context.Context, id uuid.UUID) (*model.Beer, error)
	GetBeersByCreator(ctx context.Context, creatorID uuid.UUID) ([]*model.Beer, error)
	UpdateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
}

func (r *Repository) AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&beer)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &beer, nil
}

func (r *Repository) GetBeer(ctx context.Context, id uuid.UUID) (*model.Beer, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).Joins("Creator").Where(`"beers"."id" = ?`, id).First(&beer)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &beer, nil
}

func (r *Repository) GetBeersByCreator(ctx context.Context, creatorID uuid.UUID) ([]*model.Beer, error) {
	var beers []*model.Beer

	result := r.DB.WithContext(ctx).Where("creator_id = ?", creatorID).Order("name, brewery").Find(&beers)
	if result.Error != nil {
		r.Logger.Error("error getting beers for creator", zap.Stringer("creator_id", creatorID), zap.Error(result.Error))

		return nil, translateError(result.Error)
	}

	return beers, nil
}

// UpdateBeer rewrites the descriptive columns. The creator is fixed at
// creation and never changes.
func (r *Repository) UpdateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	if beer.ID == uuid.Nil {
		return nil, ErrNotFound
	}

	result := r.DB.WithContext(ctx).Model(&beer).
		Select("name", "brewery", "beer_type").
		Updates(&beer)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &beer, nil
}

// DeleteBeer removes the beer and its ratings.
func (r *Repository) DeleteBeer(ctx context.Context, id uuid.UUID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ratings := tx.Where("beer_id = ?", id).Delete(&model.Rating{})
		if ratings.Error != nil {
			return ratings.Error
		}

		result := tx.Delete(&model.Beer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		r.Logger.Info("deleted beer", zap.Stringer("beer_id", id), zap.Int64("ratings", ratings.RowsAffected))

		return nil
	})

	return translateError(err)
}
