package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserProfile holds the browsable profile attached one-to-one to a User.
// Age is denormalized from User.DateOfBirth at signup so profile listing
// does not recompute it per row.
type UserProfile struct {
	gorm.Model

	UserID    uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	User      User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Age       int            `gorm:"not null" json:"age"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Interests pq.StringArray `gorm:"type:text[]" json:"interests"`
}
