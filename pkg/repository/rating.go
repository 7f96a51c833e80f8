package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"droscher.com/BrewWolf/pkg/model"
)

type RatingRepository interface {
	AddRating(ctx context.Context, rating model.Rating) (*model.Rating, error)
	DeleteRating(ctx context.Context, id uuid.UUID) error
	GetRating(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	GetRatingsForBeer(ctx context.Context, beerID uuid.UUID, publicOnly bool) ([]*model.Rating, error)
	UpdateRating(ctx context.Context, rating model.Rating) (*model.Rating, error)
}

func (r *Repository) AddRating(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&rating)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &rating, nil
}

func (r *Repository) GetRating(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	var rating model.Rating

	result := r.DB.WithContext(ctx).Where("id = ?", id).First(&rating)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &rating, nil
}

func (r *Repository) GetRatingsForBeer(ctx context.Context, beerID uuid.UUID, publicOnly bool) ([]*model.Rating, error) {
	var ratings []*model.Rating

	query := r.DB.WithContext(ctx).Where("beer_id = ?", beerID)
	if publicOnly {
		query = query.Where("public = ?", true)
	}

	if result := query.Order("created_date DESC").Find(&ratings); result.Error != nil {
		return nil, translateError(result.Error)
	}

	return ratings, nil
}

// UpdateRating writes the mutable columns only. id, beer_id and created_date
// keep the values they were inserted with.
func (r *Repository) UpdateRating(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	if rating.ID == uuid.Nil {
		return nil, ErrNotFound
	}

	result := r.DB.WithContext(ctx).Model(&rating).
		Select("user", "rating", "comment", "public").
		Updates(&rating)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return &rating, nil
}

func (r *Repository) DeleteRating(ctx context.Context, id uuid.UUID) error {
	result := r.DB.WithContext(ctx).Delete(&model.Rating{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
