package models

import "gorm.io/gorm"

// Message is one persisted chat message. Rows are append-only: a message is
// never updated, and is deleted only as a cascade of room deletion.
type Message struct {
	gorm.Model

	RoomID   uint   `gorm:"not null;index" json:"room_id"`
	SenderID uint   `gorm:"not null" json:"sender_id"`
	Content  string `gorm:"type:text;not null" json:"content"`

	Sender User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
}
