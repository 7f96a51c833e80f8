package model

import (
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

type Beer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:200;not null"`
	Brewery   string    `gorm:"size:200;not null"`
	BeerType  string    `gorm:"size:200;not null"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;index;<-:create"`

	Creator User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE;"`
}

// Validate reports every field violation, not just the first.
func (b *Beer) Validate() error {
	errs := multierr.Combine(
		checkText("name", b.Name, MaxNameLength, true),
		checkText("brewery", b.Brewery, MaxNameLength, true),
		checkText("beer_type", b.BeerType, MaxNameLength, true),
	)

	if b.CreatorID == uuid.Nil {
		errs = multierr.Append(errs, &FieldError{Field: "creator", Err: ErrRequired})
	}

	return errs
}

func (b *Beer) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	return nil
}

func (b *Beer) BeforeSave(_ *gorm.DB) error {
	return b.Validate()
}
