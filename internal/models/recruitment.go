package models

import "gorm.io/gorm"

// Recruitment is a public board post where a user invites others to an
// activity. The timeline lists posts newest first.
type Recruitment struct {
	gorm.Model

	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title   string `gorm:"type:varchar(100);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
}
