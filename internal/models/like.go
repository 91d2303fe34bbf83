package models

import "gorm.io/gorm"

// UserLike records that Sender liked Receiver. The pair is unique; liking
// twice is a toggle handled at the storage layer. Two UserLike rows in
// opposite directions form a mutual match.
type UserLike struct {
	gorm.Model

	SenderID   uint `gorm:"not null;uniqueIndex:idx_like_pair" json:"sender_id"`
	ReceiverID uint `gorm:"not null;uniqueIndex:idx_like_pair" json:"receiver_id"`

	Sender   User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
}
