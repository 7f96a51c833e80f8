package model

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// Rating.User is a free-text label for whoever rated the beer, not a
// reference to the users table.
type Rating struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	User        string    `gorm:"size:200;not null"`
	Rating      int       `gorm:"not null;default:5;check:chk_ratings_rating,rating >= 1 AND rating <= 5"`
	CreatedDate time.Time `gorm:"not null;autoCreateTime;<-:create"`
	Comment     string    `gorm:"size:256;not null;default:''"`
	Public      bool      `gorm:"not null;default:false"`
	BeerID      uuid.UUID `gorm:"type:uuid;not null;index"`

	Beer Beer `gorm:"foreignKey:BeerID;constraint:OnDelete:CASCADE;"`
}

// NewRating returns a rating carrying the column defaults.
func NewRating(beerID uuid.UUID, user string) Rating {
	return Rating{BeerID: beerID, User: user, Rating: DefaultRating}
}

func (r *Rating) Validate() error {
	errs := multierr.Combine(
		checkText("user", r.User, MaxNameLength, true),
		checkRange("rating", r.Rating, MinRating, MaxRating),
		checkText("comment", r.Comment, MaxCommentLength, false),
	)

	if r.BeerID == uuid.Nil {
		errs = multierr.Append(errs, &FieldError{Field: "beer", Err: ErrRequired})
	}

	return errs
}

func (r *Rating) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	// always stamped by the insert itself
	r.CreatedDate = time.Time{}

	return nil
}

func (r *Rating) BeforeSave(_ *gorm.DB) error {
	return r.Validate()
}
