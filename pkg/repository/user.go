package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BrewWolf/pkg/model"
)

type UserRepository interface {
	AddUser(ctx context.Context, name string, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

func (r *Repository) GetUserByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserFromEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User

	result := r.DB.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, name string, email string) (*model.User, error) {
	user := model.User{
		ID:       uuid.New(),
		Username: name,
		Email:    email,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &user, nil
}

// DeleteUser removes the user along with every beer they created and every
// rating of those beers.
func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		beers := tx.Model(&model.Beer{}).Select("id").Where("creator_id = ?", id)

		ratings := tx.Where("beer_id IN (?)", beers).Delete(&model.Rating{})
		if ratings.Error != nil {
			return ratings.Error
		}

		deletedBeers := tx.Where("creator_id = ?", id).Delete(&model.Beer{})
		if deletedBeers.Error != nil {
			return deletedBeers.Error
		}

		result := tx.Delete(&model.User{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		r.Logger.Info("deleted user",
			zap.Stringer("user_id", id),
			zap.Int64("beers", deletedBeers.RowsAffected),
			zap.Int64("ratings", ratings.RowsAffected))

		return nil
	})

	return translateError(err)
}
