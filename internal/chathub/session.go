package chathub

import "matchmeet/backend/internal/models"

// Session is one live connection bound to one room's broadcast group. The
// hub only needs identity, the group key, and a non-blocking way to hand
// the session an event; the transport behind it is the session's business.
type Session interface {
	// GetSessionID returns the unique id of this connection, for logging.
	GetSessionID() string
	// GetGroupKey returns the broadcast group the session is joined to.
	GetGroupKey() string
	// GetSendChannel returns the channel the hub delivers events into.
	GetSendChannel() chan<- models.ChatEvent
}

// MessageStore is the slice of the storage layer a chat session touches:
// history replay, message persistence, and room eviction on teardown.
type MessageStore interface {
	CreateMessage(senderID, roomID uint, content string) (*models.Message, error)
	ListRoomMessages(roomID uint) ([]models.Message, error)
	EvictRoomIfEmpty(roomID uint) error
}
