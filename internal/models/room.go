package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Room is a persistent two-party chat channel. PairKey is the canonical
// "minID:maxID" of the two member user ids; its unique index is what makes
// concurrent get-or-create race-free (at most one room per unordered pair).
type Room struct {
	gorm.Model

	PairKey string       `gorm:"type:text;not null;uniqueIndex" json:"-"`
	Members []RoomMember `gorm:"constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// RoomMember binds one user to one room. Membership is immutable: members
// are only ever removed by deleting the room itself.
type RoomMember struct {
	gorm.Model

	RoomID uint `gorm:"not null;uniqueIndex:idx_room_member" json:"room_id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_room_member" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// PairKey canonicalizes an unordered user-id pair into the lookup key used
// by the rooms unique index.
func PairKey(a, b uint) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// GroupKey derives the broadcast group name for a room. Every chat session
// bound to the same room joins the hub under this key.
func GroupKey(roomID uint) string {
	return fmt.Sprintf("chat:%d", roomID)
}
