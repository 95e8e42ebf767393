package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog is an authored post owned by exactly one user. The author reference
// is set at creation time and no code path reassigns it afterwards.
//
// Comments is a derived collection resolved by reverse lookup on
// Comment.BlogID; it is loaded eagerly for reads but never written through
// this struct. No foreign-key constraints are declared: referential
// integrity is enforced by required fields at creation, and the delete
// cascade is performed explicitly by the blog service.
type Blog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" gorm:"type:text;not null" validate:"required"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required"`
	Image       string    `json:"image" gorm:"type:text;not null" validate:"required"`
	CreatedAt   time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	AuthorID    uuid.UUID `json:"authorId" gorm:"type:uuid;not null;index" validate:"required"`

	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;references:ID;constraint:-"`
	Comments []Comment `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:-"`
}

// Validate checks the required-field invariants before persisting.
func (b *Blog) Validate() error {
	return validate.Struct(b)
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}
