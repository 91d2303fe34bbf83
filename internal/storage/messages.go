package storage

import (
	"log"

	"matchmeet/backend/internal/models"

	"gorm.io/gorm"
)

// CreateMessage persists one chat message with trimmed content and returns
// it with the sender resolved, so callers can build the outbound event
// without a second lookup. Sender and room must both exist.
func (s *Service) CreateMessage(senderID, roomID uint, content string) (*models.Message, error) {
	msg := models.Message{RoomID: roomID, SenderID: senderID, Content: content}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var sender models.User
		if err := tx.First(&sender, senderID).Error; err != nil {
			return err
		}
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			return err
		}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		msg.Sender = sender
		return nil
	})
	if err != nil {
		log.Printf("ERROR: failed to save message for room %d: %v", roomID, err)
		return nil, err
	}
	return &msg, nil
}

// ListRoomMessages returns the room's full history ordered by creation time
// ascending, senders preloaded. An unknown room yields an empty history.
func (s *Service) ListRoomMessages(roomID uint) ([]models.Message, error) {
	var history []models.Message
	err := s.DB.Preload("Sender").
		Where("room_id = ?", roomID).
		Order("created_at asc").
		Find(&history).Error
	if err != nil {
		log.Printf("ERROR: failed to load history for room %d: %v", roomID, err)
		return nil, err
	}
	return history, nil
}

func (s *Service) RoomHasMessages(roomID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).Where("room_id = ?", roomID).Count(&count).Error
	return count > 0, err
}
