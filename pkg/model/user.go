package model

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const (
	maxUsernameLength = 150
	maxEmailLength    = 254
)

// User is owned by the authentication subsystem. Only what the beers table
// needs to reference it, and what the auth interceptor needs to find it, is
// modelled here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"size:150;not null;uniqueIndex"`
	Email     string    `gorm:"size:254;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"<-:create"`
}

func (u *User) Validate() error {
	return multierr.Combine(
		checkText("username", u.Username, maxUsernameLength, true),
		checkText("email", u.Email, maxEmailLength, true),
	)
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	return nil
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	return u.Validate()
}
