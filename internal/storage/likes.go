package storage

import (
	"errors"

	"matchmeet/backend/internal/models"

	"gorm.io/gorm"
)

// ToggleLike creates the sender→receiver like, or removes it if it already
// exists. Returns true when the like now exists.
func (s *Service) ToggleLike(senderID, receiverID uint) (bool, error) {
	if _, err := s.GetUserByID(receiverID); err != nil {
		return false, err
	}

	var like models.UserLike
	err := s.DB.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		like = models.UserLike{SenderID: senderID, ReceiverID: receiverID}
		if err := s.DB.Create(&like).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.DB.Unscoped().Delete(&like).Error; err != nil {
		return false, err
	}
	return false, nil
}

// LikeOverview splits a user's like graph three ways: mutual matches, likes
// sent and not yet returned, likes received and not yet returned.
type LikeOverview struct {
	Matched  []models.User `json:"matched"`
	Sent     []models.User `json:"sent"`
	Received []models.User `json:"received"`
}

func (s *Service) LikeOverview(userID uint) (*LikeOverview, error) {
	var sentLikes []models.UserLike
	if err := s.DB.Preload("Receiver").Where("sender_id = ?", userID).Find(&sentLikes).Error; err != nil {
		return nil, err
	}
	var receivedLikes []models.UserLike
	if err := s.DB.Preload("Sender").Where("receiver_id = ?", userID).Find(&receivedLikes).Error; err != nil {
		return nil, err
	}

	sentTo := make(map[uint]models.User, len(sentLikes))
	for _, like := range sentLikes {
		sentTo[like.ReceiverID] = like.Receiver
	}
	receivedFrom := make(map[uint]models.User, len(receivedLikes))
	for _, like := range receivedLikes {
		receivedFrom[like.SenderID] = like.Sender
	}

	overview := &LikeOverview{
		Matched:  []models.User{},
		Sent:     []models.User{},
		Received: []models.User{},
	}
	for id, user := range sentTo {
		if _, mutual := receivedFrom[id]; mutual {
			overview.Matched = append(overview.Matched, user)
		} else {
			overview.Sent = append(overview.Sent, user)
		}
	}
	for id, user := range receivedFrom {
		if _, mutual := sentTo[id]; !mutual {
			overview.Received = append(overview.Received, user)
		}
	}
	return overview, nil
}
