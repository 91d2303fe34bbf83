package models

import (
	"strings"
	"time"
)

// InboundFrame is the client-to-server chat payload. Fields are pointers so
// that a missing key can be told apart from a zero value: the frame is
// dropped unless all three keys are present.
type InboundFrame struct {
	SenderID *uint   `json:"sender_id"`
	RoomID   *uint   `json:"room_id"`
	Message  *string `json:"message"`
}

// MissingField returns the name of the first absent required field, or "".
func (f *InboundFrame) MissingField() string {
	switch {
	case f.SenderID == nil:
		return "sender_id"
	case f.RoomID == nil:
		return "room_id"
	case f.Message == nil:
		return "message"
	}
	return ""
}

// TrimmedMessage returns the message text with surrounding whitespace
// removed. An empty result means the frame must be discarded.
func (f *InboundFrame) TrimmedMessage() string {
	if f.Message == nil {
		return ""
	}
	return strings.TrimSpace(*f.Message)
}

// ChatEvent is the server-to-client chat frame, used both for history
// replay and live broadcast, and as the pub/sub payload between server
// processes. CreatedAt is ISO-8601.
type ChatEvent struct {
	Message   string `json:"message"`
	Sender    string `json:"sender"`
	CreatedAt string `json:"created_at"`
}

// NewChatEvent builds the outbound frame for a persisted message.
func NewChatEvent(msg *Message) ChatEvent {
	return ChatEvent{
		Message:   msg.Content,
		Sender:    msg.Sender.Username,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339Nano),
	}
}

// Valid reports whether the event carries all three required fields.
func (e ChatEvent) Valid() bool {
	return e.Message != "" && e.Sender != "" && e.CreatedAt != ""
}

// GroupEvent is a ChatEvent tagged with the broadcast group it was published
// to. This is what the hub receives from the pub/sub subscription.
type GroupEvent struct {
	GroupKey string
	Event    ChatEvent
}
