package storage

import (
	"errors"
	"log"

	"matchmeet/backend/internal/models"

	"gorm.io/gorm"
)

const maxRoomMembers = 2

// GetOrCreateRoomWithMembers returns the room shared by exactly the two
// given users, creating it atomically if it does not exist. Creation of the
// room row and both member rows happens in one transaction, so a partial
// room is never observable. Two requests racing to create the same pair are
// serialized by the unique index on the canonical pair key: the loser
// retries the lookup and returns the winner's room.
func (s *Service) GetOrCreateRoomWithMembers(users []models.User) (*models.Room, error) {
	if len(users) != maxRoomMembers || users[0].ID == users[1].ID {
		log.Printf("WARNING: invalid room membership requested (%d users)", len(users))
		return nil, ErrInvalidMembership
	}

	pairKey := models.PairKey(users[0].ID, users[1].ID)

	room, err := s.findRoomByPairKey(pairKey)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room = &models.Room{PairKey: pairKey}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		for _, user := range users {
			member := models.RoomMember{RoomID: room.ID, UserID: user.ID}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
			room.Members = append(room.Members, member)
		}
		return nil
	})
	if err != nil {
		// Lost the creation race: the pair key now exists, fetch the winner.
		if existing, lookupErr := s.findRoomByPairKey(pairKey); lookupErr == nil {
			return existing, nil
		}
		log.Printf("ERROR: failed to create room for pair %s: %v", pairKey, err)
		return nil, err
	}
	return room, nil
}

func (s *Service) findRoomByPairKey(pairKey string) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Members").Where("pair_key = ?", pairKey).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Service) GetRoomByID(roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Members").First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		log.Printf("ERROR: failed to get room %d: %v", roomID, err)
		return nil, err
	}
	return &room, nil
}

// IsRoomMember reports whether the user is bound to the room. The websocket
// handler uses this as the authorization precondition before a session opens.
func (s *Service) IsRoomMember(roomID, userID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.RoomMember{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetOppositeMember returns the other member of a two-party room. A room
// without a second member violates the creation invariant and surfaces as
// ErrNoOppositeUser, never as a placeholder user.
func (s *Service) GetOppositeMember(roomID, currentUserID uint) (*models.User, error) {
	var member models.RoomMember
	err := s.DB.Preload("User").
		Where("room_id = ? AND user_id <> ?", roomID, currentUserID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("ERROR: room %d has no opposite member for user %d", roomID, currentUserID)
		return nil, ErrNoOppositeUser
	}
	if err != nil {
		return nil, err
	}
	return &member.User, nil
}

// EvictRoomIfEmpty deletes the room and its memberships if and only if the
// room holds no messages. The existence check and the deletes share one
// transaction, so a message racing in is either visible to the check or
// serialized behind the delete. Evicting a room that is already gone is a
// no-op.
func (s *Service) EvictRoomIfEmpty(roomID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Message{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		if err := tx.Unscoped().Where("room_id = ?", roomID).Delete(&models.RoomMember{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Room{}, roomID).Error
	})
}

// RoomOverview is one row of a user's room list: the room, who they are
// talking to, and the newest message if any.
type RoomOverview struct {
	Room         models.Room     `json:"room"`
	OppositeUser models.User     `json:"opposite_user"`
	LastMessage  *models.Message `json:"last_message,omitempty"`
}

// ListRoomsForUser returns every room the user belongs to, newest activity
// first, each with the opposite member and last message resolved.
func (s *Service) ListRoomsForUser(userID uint) ([]RoomOverview, error) {
	var memberships []models.RoomMember
	err := s.DB.Where("user_id = ?", userID).Find(&memberships).Error
	if err != nil {
		return nil, err
	}

	overviews := make([]RoomOverview, 0, len(memberships))
	for _, membership := range memberships {
		room, err := s.GetRoomByID(membership.RoomID)
		if err != nil {
			return nil, err
		}
		opposite, err := s.GetOppositeMember(room.ID, userID)
		if err != nil {
			return nil, err
		}

		overview := RoomOverview{Room: *room, OppositeUser: *opposite}
		var last models.Message
		err = s.DB.Preload("Sender").
			Where("room_id = ?", room.ID).
			Order("created_at desc").
			First(&last).Error
		if err == nil {
			overview.LastMessage = &last
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}
