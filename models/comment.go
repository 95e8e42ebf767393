package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is a reply to a blog, owned by exactly one user. Both references
// are required at creation; the storage layer itself does not enforce them,
// so a skipped check can leave a dangling reference.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Body      string    `json:"comment" gorm:"column:comment;type:text;not null" validate:"required"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index" validate:"required"`
	BlogID    uuid.UUID `json:"blogId" gorm:"type:uuid;not null;index" validate:"required"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:-"`
	Blog *Blog `json:"-" gorm:"foreignKey:BlogID;references:ID;constraint:-"`
}

// Validate checks the required-field invariants before persisting.
func (c *Comment) Validate() error {
	return validate.Struct(c)
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return nil
}
