package models

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. The password is stored as a bcrypt
// hash and is never serialized.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	FirstName string    `json:"firstName" gorm:"type:text;not null" validate:"required,min=3,max=8"`
	LastName  string    `json:"lastName" gorm:"type:text;not null" validate:"required,min=3,max=8"`
	Email     string    `json:"email" gorm:"type:text;not null;uniqueIndex" validate:"required,email"`
	Photo     string    `json:"photo" gorm:"type:text;not null;default:'default.jpg'"`
	Password  string    `json:"-" gorm:"type:text;not null" validate:"required"`
}

// PublicUser is the denormalized view embedded in comment responses.
// It carries neither the password nor the email.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Photo     string    `json:"photo"`
}

// Public returns the fields of u that are safe to embed anywhere.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Photo:     u.Photo,
	}
}

// Validate checks the field invariants before the user is persisted.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeSave normalizes profile fields: names are capitalized
// (first rune upper, rest lower) and the email is lowercased.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.FirstName = capitalize(u.FirstName)
	u.LastName = capitalize(u.LastName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Photo == "" {
		u.Photo = "default.jpg"
	}
	return nil
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
